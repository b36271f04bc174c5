//go:build integration

package integration_test

import (
	"encoding/json"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScaffoldReactTypeScriptWithoutTailwind runs the documented example:
// react-typescript, CSS framework declined, git on, force on, install skipped.
func TestScaffoldReactTypeScriptWithoutTailwind(t *testing.T) {
	requireGit(t)
	env := setupTestEnv(t)

	stdout, stderr, code := run(t, "",
		"my-app", "--template", "react-typescript", "--tailwind=false",
		"--git", "--force", "--skip-install", "--yes")
	require.Equal(t, 0, code, "stdout:\n%s\nstderr:\n%s", stdout, stderr)

	project := filepath.Join(env.WorkDir, "my-app")

	var pkg map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(project, "package.json"))), &pkg))
	assert.Equal(t, "my-app", pkg["name"])
	for _, section := range []string{"dependencies", "devDependencies"} {
		deps, _ := pkg[section].(map[string]interface{})
		for _, key := range []string{"tailwindcss", "@tailwindcss/vite", "@tailwindcss/postcss", "postcss", "autoprefixer"} {
			assert.NotContains(t, deps, key, section)
		}
	}

	assert.NotContains(t, readFile(t, filepath.Join(project, "index.html")), "class=")
	assert.NotContains(t, readFile(t, filepath.Join(project, "vite.config.ts")), "tailwindcss")
	assertFileExists(t, filepath.Join(project, ".gitignore"))
	assertNotExists(t, filepath.Join(project, "_gitignore"))
	assertNotExists(t, filepath.Join(project, "node_modules"))

	subjects, err := exec.Command("git", "-C", project, "log", "--format=%s").Output()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(subjects), "\n"), "expected exactly one commit")

	status, err := exec.Command("git", "-C", project, "status", "--porcelain").Output()
	require.NoError(t, err)
	assert.Empty(t, string(status), "commit should hold every file")

	assert.Contains(t, stdout, "cd my-app")
	assert.Contains(t, stdout, "run dev")
}

func TestScaffoldKeepsTailwindByDefault(t *testing.T) {
	env := setupTestEnv(t)

	_, stderr, code := run(t, "", "site", "-t", "vanilla", "-s", "-y")
	require.Equal(t, 0, code, stderr)

	project := filepath.Join(env.WorkDir, "site")
	assert.Contains(t, readFile(t, filepath.Join(project, "src", "style.css")), `@import "tailwindcss";`)
	assert.Contains(t, readFile(t, filepath.Join(project, "package.json")), `"name": "site"`)
	assertNotExists(t, filepath.Join(project, ".git"))
}

func TestDeclinedOverwriteLeavesDirectoryUntouched(t *testing.T) {
	env := setupTestEnv(t)
	project := filepath.Join(env.WorkDir, "taken")
	writeFile(t, filepath.Join(project, "notes.txt"), "keep me")
	before := listTree(t, project)

	stdout, _, code := run(t, "", "taken", "-t", "vanilla", "-s", "-y")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Cancelled")
	assert.Equal(t, before, listTree(t, project))
	assert.Equal(t, "keep me", readFile(t, filepath.Join(project, "notes.txt")))
}

func TestUnknownTemplateExitsWithUsageError(t *testing.T) {
	env := setupTestEnv(t)

	_, _, code := run(t, "", "app", "-t", "svelte-kit", "-s", "-y")
	assert.Equal(t, 2, code)
	assertNotExists(t, filepath.Join(env.WorkDir, "app"))
}

func TestInvalidNameExitsWithUsageError(t *testing.T) {
	env := setupTestEnv(t)

	_, _, code := run(t, "", "My App", "-t", "vanilla", "-s", "-y")
	assert.Equal(t, 2, code)
	assertNotExists(t, filepath.Join(env.WorkDir, "My App"))
}

func TestBrokenTemplatesDirExitsWithCatalogError(t *testing.T) {
	env := setupTestEnv(t)
	tplDir := filepath.Join(env.HomeDir, "templates")
	writeFile(t, filepath.Join(tplDir, "templates.yaml"), "ghost:\n  name: Ghost\n  description: no tree\n")
	t.Setenv("WASKIT_TEMPLATES_DIR", tplDir)

	_, _, code := run(t, "", "app", "-t", "ghost", "-s", "-y")
	assert.Equal(t, 4, code)
}

func TestCustomTemplatesDir(t *testing.T) {
	env := setupTestEnv(t)
	tplDir := filepath.Join(env.HomeDir, "templates")
	writeFile(t, filepath.Join(tplDir, "templates.yaml"), "mini:\n  name: Mini\n  description: smallest\n")
	writeFile(t, filepath.Join(tplDir, "mini", "package.json"), "{\n  \"name\": \"mini\"\n}\n")
	writeFile(t, filepath.Join(tplDir, "mini", "_gitignore"), "dist\n")
	t.Setenv("WASKIT_TEMPLATES_DIR", tplDir)

	stdout, stderr, code := run(t, "", "list")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "mini")

	_, stderr, code = run(t, "", "tiny", "-t", "mini", "-s", "-y")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "{\n  \"name\": \"tiny\"\n}\n", readFile(t, filepath.Join(env.WorkDir, "tiny", "package.json")))
	assertFileExists(t, filepath.Join(env.WorkDir, "tiny", ".gitignore"))
}

func TestListJSON(t *testing.T) {
	setupTestEnv(t)

	stdout, _, code := run(t, "", "list", "--json")
	require.Equal(t, 0, code)

	var entries []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"vanilla", "vanilla-typescript", "react", "react-typescript"}, ids)
}

func TestConfigRoundTrip(t *testing.T) {
	env := setupTestEnv(t)

	_, stderr, code := run(t, "", "config", "set", "package_manager.primary", "pnpm")
	require.Equal(t, 0, code, stderr)
	assertFileExists(t, filepath.Join(env.HomeDir, ".create-waskit", "config.yaml"))

	stdout, _, code := run(t, "", "config", "get", "package_manager.primary")
	require.Equal(t, 0, code)
	assert.Equal(t, "pnpm\n", stdout)

	_, _, code = run(t, "", "config", "set", "package_manager.primary", "cargo")
	assert.Equal(t, 2, code)
}
