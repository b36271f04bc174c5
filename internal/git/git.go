// Package git initializes a repository in a freshly scaffolded project.
package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/Pankaj72885/create-waskit/internal/installer"
	"github.com/Pankaj72885/create-waskit/internal/output"
)

// ErrGitFailed is matched by every StepError.
var ErrGitFailed = errors.New("git initialization failed")

// StepError reports the git step that failed. Later steps were not run.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("git %s: %v", e.Step, e.Err)
}

func (e *StepError) Is(target error) bool { return target == ErrGitFailed }

func (e *StepError) Unwrap() error { return e.Err }

// Initializer runs git init, add and commit.
type Initializer struct {
	Runner        installer.Runner
	CommitMessage string
	// FS, when set, is used to make sure .gitignore covers Ignore (or
	// DefaultIgnores) before anything is staged.
	FS     afero.Fs
	Ignore []string
	Logger *log.Logger
}

// Init creates a repository in dir with one commit holding every file. The
// steps run strictly in order; the first failure stops the sequence.
func (g *Initializer) Init(ctx context.Context, dir string) error {
	if g.FS != nil {
		patterns := g.Ignore
		if patterns == nil {
			patterns = DefaultIgnores
		}
		added, err := EnsureIgnored(g.FS, dir, patterns...)
		if err != nil {
			return &StepError{Step: "ignore", Err: err}
		}
		if len(added) > 0 {
			g.logger().Debug("extended .gitignore", "patterns", added)
		}
	}

	steps := []struct {
		name string
		args []string
	}{
		{"init", []string{"init"}},
		{"add", []string{"add", "-A"}},
		{"commit", []string{"commit", "-m", g.CommitMessage}},
	}

	for _, s := range steps {
		g.logger().Debug("running git", "step", s.name, "dir", dir)
		if err := g.Runner.Run(ctx, dir, "git", s.args...); err != nil {
			return &StepError{Step: s.name, Err: err}
		}
	}
	return nil
}

func (g *Initializer) logger() *log.Logger {
	if g.Logger == nil {
		return output.Logger
	}
	return g.Logger
}
