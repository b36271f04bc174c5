package manifest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reactManifest = `{
  "name": "react-typescript",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "tsc -b && vite build"
  },
  "dependencies": {
    "react": "^19.1.0",
    "tailwindcss": "^4.1.11"
  },
  "devDependencies": {
    "@tailwindcss/vite": "^4.1.11",
    "autoprefixer": "^10.4.21",
    "vite": "^7.0.4"
  }
}
`

func TestParseAndRoundTrip(t *testing.T) {
	p, err := Parse([]byte(reactManifest))
	require.NoError(t, err)
	assert.Equal(t, "react-typescript", p.Name())

	out, err := p.Bytes()
	require.NoError(t, err)
	assert.Equal(t, reactManifest, string(out), "untouched manifest should round-trip")
}

func TestSetNameKeepsOrder(t *testing.T) {
	p, err := Parse([]byte(reactManifest))
	require.NoError(t, err)
	require.NoError(t, p.SetName("my-app"))

	out, err := p.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), "{\n  \"name\": \"my-app\",\n  \"private\": true,")
	assert.Equal(t, "my-app", p.Name())
}

func TestSetNameAddsMissingName(t *testing.T) {
	p, err := Parse([]byte(`{"version":"1.0.0"}`))
	require.NoError(t, err)
	require.NoError(t, p.SetName("fresh"))

	out, err := p.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"fresh\",\n  \"version\": \"1.0.0\"\n}\n", string(out))
}

func TestRemoveDependencies(t *testing.T) {
	p, err := Parse([]byte(reactManifest))
	require.NoError(t, err)

	removed, err := p.RemoveDependencies("tailwindcss", "@tailwindcss/vite", "postcss", "autoprefixer")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"dependencies/tailwindcss",
		"devDependencies/@tailwindcss/vite",
		"devDependencies/autoprefixer",
	}, removed)

	deps, err := p.Dependencies("dependencies")
	require.NoError(t, err)
	assert.Equal(t, []string{"react"}, deps)

	dev, err := p.Dependencies("devDependencies")
	require.NoError(t, err)
	assert.Equal(t, []string{"vite"}, dev)
}

func TestRemoveDependenciesEmptiesSection(t *testing.T) {
	p, err := Parse([]byte(`{"name":"x","devDependencies":{"tailwindcss":"4"}}`))
	require.NoError(t, err)

	_, err = p.RemoveDependencies("tailwindcss")
	require.NoError(t, err)

	out, err := p.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"x\",\n  \"devDependencies\": {}\n}\n", string(out))
}

func TestRemoveDependenciesWithoutSections(t *testing.T) {
	p, err := Parse([]byte(`{"name":"x"}`))
	require.NoError(t, err)

	removed, err := p.RemoveDependencies("tailwindcss")
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, input := range []string{
		``,
		`{"name": "x",}`,
		`["not", "an", "object"]`,
		`"string"`,
		`{"name": "x"} trailing`,
	} {
		_, err := Parse([]byte(input))
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, ErrMalformed), input)
	}
}

func TestBytesDoesNotEscapeHTML(t *testing.T) {
	p, err := Parse([]byte(`{"name":"x","scripts":{"build":"tsc && vite build"}}`))
	require.NoError(t, err)

	out, err := p.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"build": "tsc && vite build"`)
}
