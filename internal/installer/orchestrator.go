package installer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"

	"github.com/Pankaj72885/create-waskit/internal/output"
)

// ErrInstallFailed is wrapped by Result.Err when no manager succeeded.
var ErrInstallFailed = errors.New("dependency installation failed")

// Orchestrator picks a package manager and runs the install.
type Orchestrator struct {
	Runner   Runner
	Primary  Manager
	Fallback Manager
	// PrimaryConstraint, when set, is a semver constraint the primary's
	// reported version must satisfy, e.g. ">= 1.1".
	PrimaryConstraint string
	Logger            *log.Logger
}

// New builds an Orchestrator from manager names.
func New(runner Runner, primary, fallback, constraint string, logger *log.Logger) (*Orchestrator, error) {
	p, err := Lookup(primary)
	if err != nil {
		return nil, err
	}
	f, err := Lookup(fallback)
	if err != nil {
		return nil, err
	}
	if constraint != "" {
		if _, err := semver.NewConstraint(constraint); err != nil {
			return nil, fmt.Errorf("invalid %s version constraint %q: %w", p.Name, constraint, err)
		}
	}
	return &Orchestrator{
		Runner:            runner,
		Primary:           p,
		Fallback:          f,
		PrimaryConstraint: constraint,
		Logger:            logger,
	}, nil
}

// Preferred returns the configured primary without probing it.
func (o *Orchestrator) Preferred() Manager { return o.Primary }

// Detection is the outcome of probing the primary manager.
type Detection struct {
	Manager Manager
	// Version is the primary's reported version, empty when the probe failed.
	Version string
	// Reason explains why the fallback was chosen; empty when it was not.
	Reason string
}

// Detect runs "<primary> --version". The primary is selected when the probe
// succeeds and its version satisfies PrimaryConstraint; otherwise the
// fallback is. Detect never fails.
func (o *Orchestrator) Detect(ctx context.Context) Detection {
	out, err := o.Runner.Output(ctx, "", o.Primary.Name, "--version")
	if err != nil {
		d := Detection{Manager: o.Fallback, Reason: fmt.Sprintf("%s not available: %v", o.Primary.Name, err)}
		o.logger().Debug("package manager probe failed", "manager", o.Primary.Name, "err", err)
		return d
	}

	version := strings.TrimPrefix(strings.TrimSpace(firstLine(string(out))), "v")
	if reason := o.checkConstraint(version); reason != "" {
		o.logger().Debug("package manager version rejected", "manager", o.Primary.Name, "version", version, "reason", reason)
		return Detection{Manager: o.Fallback, Version: version, Reason: reason}
	}

	o.logger().Debug("package manager detected", "manager", o.Primary.Name, "version", version)
	return Detection{Manager: o.Primary, Version: version}
}

func (o *Orchestrator) checkConstraint(version string) string {
	if o.PrimaryConstraint == "" {
		return ""
	}
	c, err := semver.NewConstraint(o.PrimaryConstraint)
	if err != nil {
		return fmt.Sprintf("invalid constraint %q: %v", o.PrimaryConstraint, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Sprintf("%s reported unparseable version %q", o.Primary.Name, version)
	}
	if !c.Check(v) {
		return fmt.Sprintf("%s %s does not satisfy %s", o.Primary.Name, v, o.PrimaryConstraint)
	}
	return ""
}

// Attempt is one install invocation.
type Attempt struct {
	Manager Manager
	Err     error
}

// Result is the outcome of Install.
type Result struct {
	// Ran is the manager that ran last.
	Ran      Manager
	Attempts []Attempt
	FellBack bool
	Err      error
}

// OK reports whether the install succeeded.
func (r *Result) OK() bool { return r.Err == nil }

// Install runs m's install in dir. When m is the primary and it fails, the
// fallback is tried exactly once. Failure is reported in Result.Err.
func (o *Orchestrator) Install(ctx context.Context, dir string, m Manager) *Result {
	res := &Result{}

	err := o.attempt(ctx, dir, m, res)
	if err == nil {
		return res
	}

	canFallBack := m.Name == o.Primary.Name && o.Fallback.Name != "" && o.Fallback.Name != m.Name
	if !canFallBack || ctx.Err() != nil {
		res.Err = fmt.Errorf("%w: %s: %v", ErrInstallFailed, m.InstallCommand(), err)
		return res
	}

	o.logger().Warn("install failed, retrying with fallback", "manager", m.Name, "fallback", o.Fallback.Name, "err", err)
	res.FellBack = true
	if err := o.attempt(ctx, dir, o.Fallback, res); err != nil {
		res.Err = fmt.Errorf("%w: %s: %v", ErrInstallFailed, o.Fallback.InstallCommand(), err)
	}
	return res
}

func (o *Orchestrator) attempt(ctx context.Context, dir string, m Manager, res *Result) error {
	o.logger().Debug("running install", "cmd", m.InstallCommand(), "dir", dir)
	err := o.Runner.Run(ctx, dir, m.Name, m.InstallArgs...)
	res.Ran = m
	res.Attempts = append(res.Attempts, Attempt{Manager: m, Err: err})
	return err
}

func (o *Orchestrator) logger() *log.Logger {
	if o.Logger == nil {
		return output.Logger
	}
	return o.Logger
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
