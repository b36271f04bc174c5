package output

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// RunWithSpinner executes action while a spinner with the given title is
// drawn. When stdout is not a terminal the action runs directly. The call
// returns only after action has returned, even when the spinner is
// interrupted first.
func RunWithSpinner(ctx context.Context, title string, action func() error) error {
	if !IsTTY() {
		return action()
	}
	return runWithSpinner(ctx, title, action, drawSpinner)
}

// spinFunc draws a spinner until wait returns.
type spinFunc func(ctx context.Context, title string, wait func()) error

func drawSpinner(ctx context.Context, title string, wait func()) error {
	return spinner.New().Context(ctx).Title(title).Action(wait).Run()
}

func runWithSpinner(ctx context.Context, title string, action func() error, spin spinFunc) error {
	errCh := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		errCh <- action()
		close(done)
	}()

	spinnerErr := spin(ctx, title, func() {
		select {
		case <-done:
		case <-ctx.Done():
		}
	})

	// The action owns files being written; never return while it runs.
	err := <-errCh
	if err == nil && spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return err
}
