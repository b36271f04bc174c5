package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/Pankaj72885/create-waskit/internal/installer"
	"github.com/Pankaj72885/create-waskit/internal/mutate"
	"github.com/Pankaj72885/create-waskit/internal/output"
	"github.com/Pankaj72885/create-waskit/internal/platform"
	"github.com/Pankaj72885/create-waskit/internal/registry"
)

// Confirmer asks whether an existing target may be written into.
type Confirmer func(target string) (bool, error)

// Installer is the dependency-install step.
type Installer interface {
	Preferred() installer.Manager
	Detect(ctx context.Context) installer.Detection
	Install(ctx context.Context, dir string, m installer.Manager) *installer.Result
}

// GitInitializer is the version-control step.
type GitInitializer interface {
	Init(ctx context.Context, dir string) error
}

// Coordinator runs scaffold requests. Catalog, Templates and Project are
// required; the rest may be nil.
type Coordinator struct {
	Catalog   *registry.Catalog
	Templates platform.FileSystem
	Project   platform.FileSystem

	// Confirm is consulted when the target exists and Force is off. A nil
	// Confirm declines.
	Confirm   Confirmer
	Installer Installer
	Git       GitInitializer

	// CSSDependencies are dropped from the manifest when the CSS framework
	// is declined.
	CSSDependencies []string

	// Progress wraps the copy step, e.g. with a spinner.
	Progress func(ctx context.Context, title string, fn func() error) error
	Logger   *log.Logger
}

// Result describes a finished run.
type Result struct {
	Trace    []State
	Final    State
	Target   string
	Template registry.Descriptor
	Files    []string
	Edits    *mutate.Report
	Warnings []string
	// GitInitialized is set when the repository and its first commit exist.
	GitInitialized bool
	Install        *installer.Result
	// Manager is the package manager the next steps refer to.
	Manager   installer.Manager
	Cancelled bool
	NextSteps []string
}

func (r *Result) enter(s State) {
	r.Trace = append(r.Trace, s)
	r.Final = s
}

func (r *Result) warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Run executes req. The returned error is non-nil only when the run aborted
// on a failure; a declined overwrite returns a Cancelled result and no error.
func (c *Coordinator) Run(ctx context.Context, req Request) (*Result, error) {
	res := &Result{Target: req.TargetDir}
	lg := c.logger()

	res.enter(Resolving)
	desc, err := c.Catalog.Resolve(req.TemplateID)
	if err != nil {
		res.enter(Aborted)
		return res, err
	}
	res.Template = desc
	lg.Debug("template resolved", "id", desc.ID, "path", desc.Path)

	res.enter(ConflictCheck)
	proceed, err := c.checkConflict(req)
	if err != nil {
		res.enter(Aborted)
		return res, err
	}
	if !proceed {
		res.Cancelled = true
		res.enter(Aborted)
		lg.Debug("overwrite declined", "target", req.TargetDir)
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		res.enter(Aborted)
		return res, err
	}

	res.enter(Copying)
	if err := c.progress(ctx, fmt.Sprintf("Copying %s template...", desc.ID), func() error {
		return c.copy(desc, req, res)
	}); err != nil {
		res.enter(Aborted)
		return res, err
	}
	lg.Debug("template copied", "files", len(res.Files), "target", req.TargetDir)

	opts := mutate.Options{
		ProjectName:         req.ProjectName,
		IncludeCSSFramework: req.IncludeCSSFramework,
		CSSDependencies:     c.CSSDependencies,
	}
	res.Edits = &mutate.Report{}

	res.enter(Mutating)
	if err := mutate.EditManifest(c.Project, req.TargetDir, opts, res.Edits); err != nil {
		res.warn("%v", err)
	}

	res.enter(CleaningFeature)
	if !req.IncludeCSSFramework {
		if err := mutate.RewriteFiles(c.Project, req.TargetDir, res.Edits); err != nil {
			res.warn("%v", err)
		}
	}
	res.Warnings = append(res.Warnings, res.Edits.Warnings...)
	lg.Debug("project edited", "report", res.Edits.Summary())

	if req.InitGit {
		res.enter(GitInit)
		c.initGit(ctx, req, res)
	}

	res.Manager = installer.Known["npm"]
	switch {
	case c.Installer == nil:
	case req.SkipInstall:
		res.Manager = c.Installer.Preferred()
	default:
		detection := c.Installer.Detect(ctx)
		res.Manager = detection.Manager
		if detection.Reason != "" {
			lg.Debug("using fallback package manager", "manager", detection.Manager.Name, "reason", detection.Reason)
		}
	}

	if !req.SkipInstall {
		res.enter(Installing)
		c.install(ctx, req, res)
	}

	res.NextSteps = nextSteps(req, res)
	res.enter(Done)
	return res, nil
}

// checkConflict returns true when the run may write into the target.
func (c *Coordinator) checkConflict(req Request) (bool, error) {
	exists, err := platform.Exists(c.Project, req.TargetDir)
	if err != nil {
		return false, &platform.CopyError{Op: "stat", Path: req.TargetDir, Err: err}
	}
	if !exists || req.Force {
		return true, nil
	}
	if c.Confirm == nil {
		return false, nil
	}
	return c.Confirm(req.TargetDir)
}

func (c *Coordinator) copy(desc registry.Descriptor, req Request, res *Result) error {
	files, err := platform.CopyTree(c.Templates, desc.Path, c.Project, req.TargetDir)
	res.Files = files
	if err != nil {
		return err
	}

	renamed, err := platform.RenameSpecialFiles(c.Project, req.TargetDir)
	if err != nil {
		return err
	}
	if len(renamed) > 0 {
		c.logger().Debug("renamed placeholder files", "files", renamed)
	}
	return nil
}

func (c *Coordinator) initGit(ctx context.Context, req Request, res *Result) {
	if c.Git == nil {
		res.warn("git initialization requested but unavailable")
		return
	}
	if err := c.Git.Init(ctx, req.TargetDir); err != nil {
		c.logger().Debug("git init failed", "err", err)
		res.warn("%v", err)
		return
	}
	res.GitInitialized = true
}

func (c *Coordinator) install(ctx context.Context, req Request, res *Result) {
	if c.Installer == nil {
		res.warn("dependency installation requested but no package manager is configured")
		return
	}
	res.Install = c.Installer.Install(ctx, req.TargetDir, res.Manager)
	res.Manager = res.Install.Ran
	if !res.Install.OK() {
		res.warn("%v", res.Install.Err)
	}
}

func (c *Coordinator) progress(ctx context.Context, title string, fn func() error) error {
	if c.Progress == nil {
		return fn()
	}
	return c.Progress(ctx, title, fn)
}

func (c *Coordinator) logger() *log.Logger {
	if c.Logger == nil {
		return output.Logger
	}
	return c.Logger
}

// nextSteps lists the commands the user runs to start developing.
func nextSteps(req Request, res *Result) []string {
	var steps []string
	if filepath.Clean(req.TargetDir) != "." {
		steps = append(steps, "cd "+quoteIfNeeded(req.TargetDir))
	}
	if res.Install == nil || !res.Install.OK() {
		steps = append(steps, res.Manager.InstallCommand())
	}
	steps = append(steps, res.Manager.DevCommand())
	return steps
}

func quoteIfNeeded(p string) string {
	for _, r := range p {
		if r == ' ' || r == '\t' || r == '\'' || r == '"' {
			return fmt.Sprintf("%q", p)
		}
	}
	return p
}
