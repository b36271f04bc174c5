// Package config manages user-level settings stored at
// ~/.create-waskit/config.yaml with WASKIT_* environment overrides. It covers
// the default template, the preferred and fallback package managers, the git
// commit message, and the dependency keys stripped when the CSS framework is
// declined.
package config
