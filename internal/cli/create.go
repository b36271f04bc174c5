package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Pankaj72885/create-waskit/internal/config"
	"github.com/Pankaj72885/create-waskit/internal/git"
	"github.com/Pankaj72885/create-waskit/internal/installer"
	"github.com/Pankaj72885/create-waskit/internal/output"
	"github.com/Pankaj72885/create-waskit/internal/platform"
	"github.com/Pankaj72885/create-waskit/internal/prompt"
	"github.com/Pankaj72885/create-waskit/internal/registry"
	"github.com/Pankaj72885/create-waskit/internal/scaffold"
	"github.com/Pankaj72885/create-waskit/templates"
)

// cssFrameworkName is how the optional CSS framework is shown to the user.
const cssFrameworkName = "Tailwind CSS"

type createOptions struct {
	force       bool
	skipInstall bool
	git         bool
	template    string
	tailwind    bool
	yes         bool
}

func (o *createOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVarP(&o.force, "force", "f", false, "Write into an existing directory without asking")
	f.BoolVarP(&o.skipInstall, "skip-install", "s", false, "Do not install dependencies")
	f.BoolVarP(&o.git, "git", "g", false, "Initialize a git repository with an initial commit")
	f.StringVarP(&o.template, "template", "t", "", "Template id (see '"+cmd.Name()+" list')")
	f.BoolVar(&o.tailwind, "tailwind", true, "Include "+cssFrameworkName+" (asked when not given)")
	f.BoolVarP(&o.yes, "yes", "y", false, "Never prompt; use flags and configured defaults")
}

// loadCatalog returns the template catalog and the file system its paths
// resolve against. A configured templates_dir replaces the embedded set.
func loadCatalog(settings config.Values) (*registry.Catalog, platform.FileSystem, error) {
	fsys := platform.TemplateFS(templates.FS, settings.TemplatesDir)
	root := templates.Root
	if settings.TemplatesDir != "" {
		root = "."
	}

	catalog, err := registry.Load(platform.IOFS(fsys), root)
	if err != nil {
		return nil, nil, err
	}
	if err := catalog.Verify(fsys); err != nil {
		return nil, nil, err
	}
	return catalog, fsys, nil
}

func runCreate(cmd *cobra.Command, args []string, opts *createOptions) error {
	settings := config.Settings()

	catalog, templateFS, err := loadCatalog(settings)
	if err != nil {
		return err
	}

	interactive := !opts.yes && output.IsInteractive()
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

	choices, err := collectChoices(cmd, args, opts, settings, catalog, p, interactive)
	if err != nil {
		return err
	}

	req, err := scaffold.NewRequest(choices.dir, scaffold.Options{
		TemplateID:          choices.template,
		IncludeCSSFramework: choices.css,
		InitGit:             opts.git,
		Force:               opts.force,
		SkipInstall:         opts.skipInstall,
	})
	if err != nil {
		return err
	}

	coord, err := newCoordinator(cmd, settings, catalog, templateFS, p, interactive)
	if err != nil {
		return err
	}

	output.Debug("scaffolding", "dir", req.TargetDir, "name", req.ProjectName, "template", req.TemplateID,
		"css", req.IncludeCSSFramework, "git", req.InitGit, "install", !req.SkipInstall)

	res, err := coord.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), req, res)
	return nil
}

type choices struct {
	dir      string
	template string
	css      bool
}

// collectChoices fills in everything the flags left open, prompting when
// interactive and falling back to configured defaults otherwise.
func collectChoices(cmd *cobra.Command, args []string, opts *createOptions, settings config.Values,
	catalog *registry.Catalog, p *prompt.Prompter, interactive bool) (choices, error) {
	var c choices
	var err error

	switch {
	case len(args) == 1:
		c.dir = args[0]
	case interactive:
		if c.dir, err = p.AskDirectory(settings.DefaultDirectory); err != nil {
			return c, err
		}
	default:
		c.dir = settings.DefaultDirectory
	}

	switch {
	case opts.template != "":
		c.template = opts.template
	case interactive:
		if c.template, err = p.SelectTemplate(catalog.List(), settings.Template); err != nil {
			return c, err
		}
	case settings.Template != "":
		c.template = settings.Template
	default:
		return c, fmt.Errorf("%w: no template given; pass --template (one of %v)", ErrUsage, catalog.IDs())
	}

	switch {
	case cmd.Flags().Changed("tailwind"):
		c.css = opts.tailwind
	case interactive:
		if c.css, err = p.AskCSSFramework(cssFrameworkName); err != nil {
			return c, err
		}
	default:
		c.css = true
	}
	return c, nil
}

func newCoordinator(cmd *cobra.Command, settings config.Values, catalog *registry.Catalog,
	templateFS platform.FileSystem, p *prompt.Prompter, interactive bool) (*scaffold.Coordinator, error) {
	runner := &installer.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}

	inst, err := installer.New(runner, settings.PrimaryManager, settings.FallbackManager,
		settings.PrimaryConstraint, output.Logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	project := platform.ProjectFS()
	coord := &scaffold.Coordinator{
		Catalog:   catalog,
		Templates: templateFS,
		Project:   project,
		Installer: inst,
		Git: &git.Initializer{
			Runner:        runner,
			CommitMessage: settings.CommitMessage,
			FS:            project,
			Logger:        output.Logger,
		},
		CSSDependencies: settings.CSSDependencies,
		Progress:        output.RunWithSpinner,
		Logger:          output.Logger,
	}
	if interactive {
		coord.Confirm = p.ConfirmOverwrite
	}
	return coord, nil
}

func printResult(w io.Writer, req scaffold.Request, res *scaffold.Result) {
	if res.Cancelled {
		fmt.Fprintf(w, "Cancelled: %s already exists. Re-run with --force to write into it.\n",
			output.StyleNoun.Render(req.TargetDir))
		return
	}

	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Created %s from the %s template",
		output.StyleNoun.Render(req.ProjectName), output.StyleNoun.Render(res.Template.ID))))
	if res.GitInitialized {
		fmt.Fprintln(w, output.FormatCheckmark("Initialized a git repository"))
	}
	if res.Install != nil && res.Install.OK() {
		fmt.Fprintln(w, output.FormatCheckmark("Installed dependencies with "+res.Install.Ran.Name))
	}
	if len(res.Warnings) > 0 {
		fmt.Fprintln(w, "\nFinished with warnings:")
		fmt.Fprint(w, output.FormatWarnings(res.Warnings))
	}
	fmt.Fprintln(w, "\n"+output.StyleSummary.Render("Next steps:"))
	fmt.Fprint(w, output.FormatNextSteps(res.NextSteps))
}
