package installer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pankaj72885/create-waskit/internal/exectest"
	"github.com/Pankaj72885/create-waskit/internal/output"
)

func newOrchestrator(t *testing.T, runner Runner, constraint string) *Orchestrator {
	t.Helper()
	o, err := New(runner, "bun", "npm", constraint, output.Discard())
	require.NoError(t, err)
	return o
}

func TestDetectPrimaryAvailable(t *testing.T) {
	runner := exectest.New().On("bun --version", "1.2.19\n", nil)
	d := newOrchestrator(t, runner, "").Detect(context.Background())

	assert.Equal(t, "bun", d.Manager.Name)
	assert.Equal(t, "1.2.19", d.Version)
	assert.Empty(t, d.Reason)
	assert.Equal(t, []string{"bun --version"}, runner.Commands())
}

func TestDetectPrimaryMissing(t *testing.T) {
	runner := exectest.New().On("bun --version", "", ErrNotFound)
	d := newOrchestrator(t, runner, "").Detect(context.Background())

	assert.Equal(t, "npm", d.Manager.Name)
	assert.Empty(t, d.Version)
	assert.Contains(t, d.Reason, "bun not available")
}

func TestDetectPrimaryNonzeroExit(t *testing.T) {
	runner := exectest.New().On("bun --version", "", &ExitError{Name: "bun", Code: 1})
	d := newOrchestrator(t, runner, "").Detect(context.Background())
	assert.Equal(t, "npm", d.Manager.Name)
}

func TestDetectConstraint(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		constraint string
		want       string
	}{
		{"satisfied", "1.2.19", ">= 1.1", "bun"},
		{"leading v", "v1.2.0\n", "^1.0", "bun"},
		{"too old", "1.0.4", ">= 1.1", "npm"},
		{"unparseable", "canary-build", ">= 1.1", "npm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := exectest.New().On("bun --version", tt.version, nil)
			d := newOrchestrator(t, runner, tt.constraint).Detect(context.Background())
			assert.Equal(t, tt.want, d.Manager.Name)
		})
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(exectest.New(), "cargo", "npm", "", nil)
	assert.ErrorContains(t, err, "unknown package manager")

	_, err = New(exectest.New(), "bun", "npm", "not a constraint", nil)
	assert.ErrorContains(t, err, "invalid bun version constraint")
}

func TestInstallPrimarySucceeds(t *testing.T) {
	runner := exectest.New()
	o := newOrchestrator(t, runner, "")

	res := o.Install(context.Background(), "/app", o.Primary)
	assert.True(t, res.OK())
	assert.False(t, res.FellBack)
	assert.Equal(t, "bun", res.Ran.Name)
	assert.Equal(t, []string{"bun install"}, runner.Commands())
	assert.Equal(t, "/app", runner.Calls[0].Dir)
}

func TestInstallFallsBackOnce(t *testing.T) {
	runner := exectest.New().On("bun install", "", &ExitError{Name: "bun", Code: 1})
	o := newOrchestrator(t, runner, "")

	res := o.Install(context.Background(), "/app", o.Primary)
	assert.True(t, res.OK())
	assert.True(t, res.FellBack)
	assert.Equal(t, "npm", res.Ran.Name)
	assert.Equal(t, []string{"bun install", "npm install"}, runner.Commands())
	require.Len(t, res.Attempts, 2)
	assert.Error(t, res.Attempts[0].Err)
	assert.NoError(t, res.Attempts[1].Err)
}

func TestInstallBothFail(t *testing.T) {
	runner := exectest.New().
		On("bun install", "", &ExitError{Name: "bun", Code: 1}).
		On("npm install", "", &ExitError{Name: "npm", Code: 254})
	o := newOrchestrator(t, runner, "")

	res := o.Install(context.Background(), "/app", o.Primary)
	assert.False(t, res.OK())
	assert.True(t, errors.Is(res.Err, ErrInstallFailed))
	assert.Contains(t, res.Err.Error(), "npm install")
	assert.Equal(t, []string{"bun install", "npm install"}, runner.Commands())
}

func TestInstallFallbackFailureIsFinal(t *testing.T) {
	runner := exectest.New().On("npm install", "", &ExitError{Name: "npm", Code: 1})
	o := newOrchestrator(t, runner, "")

	res := o.Install(context.Background(), "/app", o.Fallback)
	assert.False(t, res.OK())
	assert.False(t, res.FellBack)
	assert.Equal(t, []string{"npm install"}, runner.Commands())
}

func TestInstallSkipsFallbackWhenCancelled(t *testing.T) {
	runner := exectest.New().On("bun install", "", context.Canceled)
	o := newOrchestrator(t, runner, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := o.Install(ctx, "/app", o.Primary)
	assert.False(t, res.OK())
	assert.Equal(t, []string{"bun install"}, runner.Commands())
}

func TestManagerCommands(t *testing.T) {
	m, err := Lookup("Yarn")
	require.NoError(t, err)
	assert.Equal(t, "yarn install", m.InstallCommand())
	assert.Equal(t, "yarn dev", m.DevCommand())
	assert.Equal(t, "npm run dev", Known["npm"].DevCommand())
	assert.Equal(t, []string{"bun", "npm", "pnpm", "yarn"}, KnownNames())
}

func TestPreferredDoesNotProbe(t *testing.T) {
	runner := exectest.New()
	o := newOrchestrator(t, runner, "")

	assert.Equal(t, "bun", o.Preferred().Name)
	assert.Empty(t, runner.Commands())
}

func TestNilLoggerUsesGlobalLogger(t *testing.T) {
	prev := output.Logger
	t.Cleanup(func() { output.Logger = prev })
	output.Logger = output.Discard()

	o := &Orchestrator{Runner: exectest.New()}
	assert.Same(t, output.Logger, o.logger())
}
