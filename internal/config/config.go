package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Pankaj72885/create-waskit/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyTemplate          = "template"
	KeyDefaultDirectory  = "default_directory"
	KeyPrimaryManager    = "package_manager.primary"
	KeyFallbackManager   = "package_manager.fallback"
	KeyPrimaryConstraint = "package_manager.primary_constraint"
	KeyCommitMessage     = "git.commit_message"
	KeyCSSDependencies   = "css.dependencies"
	KeyTemplatesDir      = "templates_dir"
)

// Keys lists every configuration key in display order.
var Keys = []string{
	KeyTemplate,
	KeyDefaultDirectory,
	KeyPrimaryManager,
	KeyFallbackManager,
	KeyPrimaryConstraint,
	KeyCommitMessage,
	KeyCSSDependencies,
	KeyTemplatesDir,
}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// DefaultCSSDependencies are the manifest keys removed when the user declines
// the CSS framework.
var DefaultCSSDependencies = []string{
	"tailwindcss",
	"@tailwindcss/vite",
	"@tailwindcss/postcss",
	"postcss",
	"autoprefixer",
}

// Values is a typed snapshot of the settings used by a scaffold run.
type Values struct {
	Template          string
	DefaultDirectory  string
	PrimaryManager    string
	FallbackManager   string
	PrimaryConstraint string
	CommitMessage     string
	CSSDependencies   []string
	TemplatesDir      string
}

// Dir returns the path to the config directory (~/.create-waskit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// SetDefaults registers the built-in value for every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTemplate, "")
	v.SetDefault(KeyDefaultDirectory, "waskit-project")
	v.SetDefault(KeyPrimaryManager, "bun")
	v.SetDefault(KeyFallbackManager, "npm")
	v.SetDefault(KeyPrimaryConstraint, "")
	v.SetDefault(KeyCommitMessage, "Initial commit from "+branding.CLIName())
	v.SetDefault(KeyCSSDependencies, DefaultCSSDependencies)
	v.SetDefault(KeyTemplatesDir, "")
}

// Load initializes Viper to read from the config file and environment.
// Nested keys map to env vars with underscores, e.g.
// package_manager.primary → WASKIT_PACKAGE_MANAGER_PRIMARY. Earlier state of
// the global instance is discarded.
func Load() {
	viper.Reset()
	SetDefaults(viper.GetViper())
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Settings returns the current values from the global Viper instance.
func Settings() Values {
	return FromViper(viper.GetViper())
}

// FromViper reads a Values snapshot from v.
func FromViper(v *viper.Viper) Values {
	deps := v.GetStringSlice(KeyCSSDependencies)
	if len(deps) == 0 {
		deps = append([]string(nil), DefaultCSSDependencies...)
	}
	return Values{
		Template:          v.GetString(KeyTemplate),
		DefaultDirectory:  v.GetString(KeyDefaultDirectory),
		PrimaryManager:    v.GetString(KeyPrimaryManager),
		FallbackManager:   v.GetString(KeyFallbackManager),
		PrimaryConstraint: v.GetString(KeyPrimaryConstraint),
		CommitMessage:     v.GetString(KeyCommitMessage),
		CSSDependencies:   deps,
		TemplatesDir:      v.GetString(KeyTemplatesDir),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	if key == KeyCSSDependencies {
		viper.Set(key, splitList(value))
	} else {
		viper.Set(key, value)
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// splitList turns "a, b,c" into ["a", "b", "c"].
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
