// Package branding holds the product identity baked into the binary from
// branding.yaml. The home directory and environment prefix derive from it, so
// a renamed build keeps its settings apart from the stock tool.
package branding

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// Identity names the tool in help text, paths and environment variables.
type Identity struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	RepoURL     string `yaml:"repo_url"`
}

var fallback = Identity{
	CLIName:     "create-waskit",
	DisplayName: "WasKit",
	Description: "Scaffold a new web project from a starter template",
	HomeDir:     ".create-waskit",
	EnvPrefix:   "WASKIT",
	RepoURL:     "https://github.com/Pankaj72885/create-waskit",
}

var (
	envPrefixPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	cliNamePattern   = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

// Parse reads an identity document. Fields left out keep the built-in value;
// a command name or env prefix that cannot be used as such is an error.
func Parse(data []byte) (Identity, error) {
	id := fallback
	if err := yaml.Unmarshal(data, &id); err != nil {
		return fallback, fmt.Errorf("parsing branding: %w", err)
	}
	if !cliNamePattern.MatchString(id.CLIName) {
		return fallback, fmt.Errorf("cli_name %q must be lowercase letters, digits and dashes", id.CLIName)
	}
	if !envPrefixPattern.MatchString(id.EnvPrefix) {
		return fallback, fmt.Errorf("env_prefix %q must be uppercase letters, digits and underscores", id.EnvPrefix)
	}
	if id.HomeDir == "" {
		id.HomeDir = "." + id.CLIName
	}
	return id, nil
}

var (
	once    sync.Once
	current Identity
)

// Current returns the embedded identity. A broken branding.yaml falls back
// to the built-in values.
func Current() Identity {
	once.Do(func() {
		current, _ = Parse(rawBranding)
	})
	return current
}

func CLIName() string { return Current().CLIName }

func DisplayName() string { return Current().DisplayName }

func Description() string { return Current().Description }

// HomeDir is the directory under $HOME holding user settings.
func HomeDir() string { return Current().HomeDir }

func EnvPrefix() string { return Current().EnvPrefix }

func RepoURL() string { return Current().RepoURL }

// EnvVar maps a config key to its environment variable, so
// "templates_dir" becomes WASKIT_TEMPLATES_DIR.
func EnvVar(key string) string {
	return EnvPrefix() + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
