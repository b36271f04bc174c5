package git

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pankaj72885/create-waskit/internal/exectest"
	"github.com/Pankaj72885/create-waskit/internal/output"
)

func TestEnsureIgnoredCreatesFile(t *testing.T) {
	fsys := afero.NewMemMapFs()

	added, err := EnsureIgnored(fsys, "/app", "node_modules", "dist")
	require.NoError(t, err)
	assert.Equal(t, []string{"node_modules", "dist"}, added)

	content, err := afero.ReadFile(fsys, "/app/.gitignore")
	require.NoError(t, err)
	assert.Equal(t, "node_modules\ndist\n", string(content))
}

func TestEnsureIgnoredRecognizesVariants(t *testing.T) {
	for _, existing := range []string{"node_modules\n", "node_modules/\n", "/node_modules\n", "  node_modules  \n"} {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/app/.gitignore", []byte(existing), 0o644))

		added, err := EnsureIgnored(fsys, "/app", "node_modules")
		require.NoError(t, err)
		assert.Empty(t, added, existing)

		content, err := afero.ReadFile(fsys, "/app/.gitignore")
		require.NoError(t, err)
		assert.Equal(t, existing, string(content))
	}
}

func TestEnsureIgnoredAppendsAfterMissingNewline(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/app/.gitignore", []byte("dist"), 0o644))

	_, err := EnsureIgnored(fsys, "/app", "node_modules", "node_modules/")
	require.NoError(t, err)

	content, err := afero.ReadFile(fsys, "/app/.gitignore")
	require.NoError(t, err)
	assert.Equal(t, "dist\nnode_modules\n", string(content))
}

func TestInitEnsuresIgnoreBeforeStaging(t *testing.T) {
	fsys := afero.NewMemMapFs()
	runner := exectest.New()
	g := &Initializer{Runner: runner, CommitMessage: "msg", FS: fsys, Logger: output.Discard()}

	require.NoError(t, g.Init(context.Background(), "/app"))

	content, err := afero.ReadFile(fsys, "/app/.gitignore")
	require.NoError(t, err)
	assert.Equal(t, "node_modules\n", string(content))
	assert.Len(t, runner.Calls, 3)
}

func TestInitIgnoreFailureStopsBeforeGit(t *testing.T) {
	runner := exectest.New()
	g := &Initializer{Runner: runner, CommitMessage: "msg", FS: afero.NewReadOnlyFs(afero.NewMemMapFs()), Logger: output.Discard()}

	err := g.Init(context.Background(), "/app")
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "ignore", stepErr.Step)
	assert.Empty(t, runner.Calls)
}
