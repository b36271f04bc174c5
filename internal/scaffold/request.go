package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrInvalidName indicates a target whose last path segment is not a usable
// package name.
var ErrInvalidName = errors.New("invalid project name")

// maxNameLength is the npm registry limit.
const maxNameLength = 214

// namePattern accepts lowercase URL-safe package names, optionally scoped.
var namePattern = regexp.MustCompile(`^(?:@[a-z0-9-*~][a-z0-9-*._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)

var reservedNames = map[string]bool{
	"node_modules": true,
	"favicon.ico":  true,
}

// Options are the user choices for a Request.
type Options struct {
	TemplateID          string
	IncludeCSSFramework bool
	InitGit             bool
	Force               bool
	SkipInstall         bool
}

// Request is the validated intent for one scaffold run. It is built once by
// NewRequest and not modified afterwards.
type Request struct {
	// TargetDir is the directory as the user gave it, cleaned.
	TargetDir string
	// ProjectName is derived from the last segment of TargetDir.
	ProjectName string
	Options
}

// NewRequest validates target and derives the project name from its final
// path segment. "." resolves to the current directory's name.
func NewRequest(target string, opts Options) (Request, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return Request{}, fmt.Errorf("%w: empty target directory", ErrInvalidName)
	}
	target = filepath.Clean(target)

	base := filepath.Base(target)
	if base == "." || base == ".." {
		abs, err := filepath.Abs(target)
		if err != nil {
			return Request{}, fmt.Errorf("resolving %s: %w", target, err)
		}
		base = filepath.Base(abs)
	}

	if err := ValidateName(base); err != nil {
		return Request{}, err
	}
	if strings.TrimSpace(opts.TemplateID) == "" {
		return Request{}, fmt.Errorf("no template selected")
	}

	return Request{TargetDir: target, ProjectName: base, Options: opts}, nil
}

// ValidateName reports whether name can be used as the package name.
func ValidateName(name string) error {
	switch {
	case name == "" || name == string(filepath.Separator):
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	case len(name) > maxNameLength:
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidName, name, maxNameLength)
	case reservedNames[name]:
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	case strings.ToLower(name) != name:
		return fmt.Errorf("%w: %q must be lowercase", ErrInvalidName, name)
	case strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_"):
		return fmt.Errorf("%w: %q must not start with . or _", ErrInvalidName, name)
	case !namePattern.MatchString(name):
		return fmt.Errorf("%w: %q may only contain lowercase letters, digits, and - . _ ~", ErrInvalidName, name)
	}
	return nil
}
