package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Pankaj72885/create-waskit/internal/branding"
	"github.com/Pankaj72885/create-waskit/internal/config"
	"github.com/Pankaj72885/create-waskit/internal/output"
)

// BuildInfo is injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

var verboseFlag bool

// NewRootCmd creates the root command. Running it scaffolds a project.
func NewRootCmd(build BuildInfo) *cobra.Command {
	opts := &createOptions{}

	rootCmd := &cobra.Command{
		Use:   branding.CLIName() + " [directory]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a new web project from a starter template, adjusts it to
your choices, and optionally initializes git and installs dependencies.

Settings are read from ` + config.FilePath() + ` and ` + branding.EnvPrefix() + `_* environment
variables such as ` + branding.EnvVar(config.KeyTemplatesDir) + `.

Source: ` + branding.RepoURL(),
		Example: "  " + branding.CLIName() + " my-app --template react-typescript --git\n" +
			"  " + branding.CLIName() + " . -t vanilla --tailwind=false --skip-install",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(verboseFlag)
			config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	opts.addFlags(rootCmd)

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd(build))
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the command tree and returns the process exit code.
func Execute(version, commit, date string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCmd(BuildInfo{Version: version, Commit: commit, Date: date})
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		output.Error(err.Error())
	}
	return ExitCodeFromError(err)
}
