package git

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// IgnoreFile is the ignore file at the repository root.
const IgnoreFile = ".gitignore"

// DefaultIgnores are patterns every generated repository must ignore.
var DefaultIgnores = []string{"node_modules"}

// EnsureIgnored appends each pattern that dir/.gitignore does not already
// cover, creating the file when absent. "node_modules", "node_modules/" and
// "/node_modules" all count as covering node_modules. It returns the patterns
// it added.
func EnsureIgnored(fsys afero.Fs, dir string, patterns ...string) ([]string, error) {
	p := filepath.Join(dir, IgnoreFile)

	content, err := afero.ReadFile(fsys, p)
	if err != nil {
		if ok, _ := afero.Exists(fsys, p); ok {
			return nil, fmt.Errorf("reading %s: %w", IgnoreFile, err)
		}
		content = nil
	}

	present := make(map[string]bool)
	for _, l := range strings.Split(string(content), "\n") {
		present[normalizeIgnore(l)] = true
	}

	var added []string
	for _, pattern := range patterns {
		if present[normalizeIgnore(pattern)] {
			continue
		}
		present[normalizeIgnore(pattern)] = true
		added = append(added, pattern)
	}
	if len(added) == 0 {
		return nil, nil
	}

	// Ensure there's a newline before our addition.
	out := string(content)
	if len(out) > 0 && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	out += strings.Join(added, "\n") + "\n"

	if err := afero.WriteFile(fsys, p, []byte(out), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", IgnoreFile, err)
	}
	return added, nil
}

func normalizeIgnore(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "/")
	return strings.TrimSuffix(line, "/")
}
