package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pankaj72885/create-waskit/internal/config"
	"github.com/Pankaj72885/create-waskit/internal/installer"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write settings stored at ` + config.FilePath() + `.

Keys:
  ` + strings.Join(config.Keys, "\n  "),
	}
	cmd.AddCommand(newConfigGetCmd(), newConfigSetCmd())
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. css.dependencies takes a comma-separated list.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := checkConfigValue(key, value); err != nil {
				return err
			}
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !config.IsKnownKey(key) {
				return fmt.Errorf("%w: unknown config key %q", ErrUsage, key)
			}
			if key == config.KeyCSSDependencies {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.Settings().CSSDependencies, ","))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(key))
			return nil
		},
	}
}

// checkConfigValue rejects values that would only fail later, at scaffold
// time.
func checkConfigValue(key, value string) error {
	if !config.IsKnownKey(key) {
		return fmt.Errorf("%w: unknown config key %q", ErrUsage, key)
	}
	switch key {
	case config.KeyPrimaryManager, config.KeyFallbackManager:
		if _, err := installer.Lookup(value); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
	}
	return nil
}
