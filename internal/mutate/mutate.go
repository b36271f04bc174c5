package mutate

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/Pankaj72885/create-waskit/internal/manifest"
	"github.com/Pankaj72885/create-waskit/internal/platform"
)

// ErrEdit marks a file that could not be read, parsed or written back.
var ErrEdit = errors.New("project edit failed")

// EditError wraps a failure for one project file.
type EditError struct {
	File string
	Err  error
}

func (e *EditError) Error() string {
	return fmt.Sprintf("editing %s: %v", e.File, e.Err)
}

func (e *EditError) Is(target error) bool { return target == ErrEdit }

func (e *EditError) Unwrap() error { return e.Err }

// Options are the user choices applied to a copied project.
type Options struct {
	ProjectName         string
	IncludeCSSFramework bool
	// CSSDependencies are the manifest keys dropped when the framework is
	// declined.
	CSSDependencies []string
}

// Report lists what Apply touched. Paths are relative to the project root.
type Report struct {
	Edited              []string
	Skipped             []string
	RemovedDependencies []string
	// Warnings holds schema issues found in the rewritten manifest.
	Warnings []string
}

// Rule binds a rewrite to the files it applies to.
type Rule struct {
	Role Role
	// Locate returns candidate paths relative to the project root. Missing
	// candidates are skipped.
	Locate func(fsys afero.Fs, dir string) []string
}

// buildConfigExtensions is the search order for the Vite config.
var buildConfigExtensions = []string{".js", ".ts", ".mjs", ".mts", ".cjs", ".cts"}

// Rules is the rewrite table applied when the CSS framework is declined.
var Rules = []Rule{
	{Role: RoleCSSEntry, Locate: fixed("src/index.css", "src/style.css")},
	{Role: RoleMarkup, Locate: fixed("index.html")},
	{Role: RoleBuildConfig, Locate: locateBuildConfig},
}

func fixed(paths ...string) func(afero.Fs, string) []string {
	return func(afero.Fs, string) []string { return paths }
}

// locateBuildConfig returns the first vite.config.* present in the project
// root, or the .js name so a miss is reported as skipped.
func locateBuildConfig(fsys afero.Fs, dir string) []string {
	for _, ext := range buildConfigExtensions {
		name := "vite.config" + ext
		if ok, _ := platform.Exists(fsys, filepath.Join(dir, name)); ok {
			return []string{name}
		}
	}
	return []string{"vite.config" + buildConfigExtensions[0]}
}

// Apply edits the project at dir. The manifest is always edited when present;
// the rewrite table runs only when the CSS framework is declined. The first
// failing file stops the run with an *EditError; the report covers what was
// done up to that point.
func Apply(fsys afero.Fs, dir string, opts Options) (*Report, error) {
	report := &Report{}
	if err := EditManifest(fsys, dir, opts, report); err != nil {
		return report, err
	}
	if opts.IncludeCSSFramework {
		return report, nil
	}
	return report, RewriteFiles(fsys, dir, report)
}

// EditManifest sets the package name and, when the CSS framework is
// declined, drops its dependency keys. A missing manifest is recorded as
// skipped; a malformed one is an *EditError.
func EditManifest(fsys afero.Fs, dir string, opts Options, report *Report) error {
	p := filepath.Join(dir, manifest.FileName)
	data, err := afero.ReadFile(fsys, p)
	if err != nil {
		if ok, _ := platform.Exists(fsys, p); !ok {
			report.Skipped = append(report.Skipped, manifest.FileName)
			return nil
		}
		return &EditError{File: manifest.FileName, Err: err}
	}

	pkg, err := manifest.Parse(data)
	if err != nil {
		return &EditError{File: manifest.FileName, Err: err}
	}
	if err := pkg.SetName(opts.ProjectName); err != nil {
		return &EditError{File: manifest.FileName, Err: err}
	}
	if !opts.IncludeCSSFramework {
		removed, err := pkg.RemoveDependencies(opts.CSSDependencies...)
		if err != nil {
			return &EditError{File: manifest.FileName, Err: err}
		}
		report.RemovedDependencies = removed
	}

	out, err := pkg.Bytes()
	if err != nil {
		return &EditError{File: manifest.FileName, Err: err}
	}

	result, err := manifest.Validate(out)
	if err != nil {
		return &EditError{File: manifest.FileName, Err: err}
	}
	if !result.Valid {
		report.Warnings = append(report.Warnings, manifest.FileName+": "+result.Summary())
	}

	if err := afero.WriteFile(fsys, p, out, platform.FilePerm); err != nil {
		return &EditError{File: manifest.FileName, Err: err}
	}
	report.Edited = append(report.Edited, manifest.FileName)
	return nil
}

// RewriteFiles runs every rule in Rules against the project at dir and
// records the outcome in report.
func RewriteFiles(fsys afero.Fs, dir string, report *Report) error {
	for _, rule := range Rules {
		rewrite := rewriterFor(rule.Role)
		for _, rel := range rule.Locate(fsys, dir) {
			changed, found, err := rewriteFile(fsys, filepath.Join(dir, filepath.FromSlash(rel)), rewrite)
			if err != nil {
				return &EditError{File: rel, Err: err}
			}
			switch {
			case !found:
				report.Skipped = append(report.Skipped, rel)
			case changed:
				report.Edited = append(report.Edited, rel)
			}
		}
	}
	return nil
}

// rewriteFile applies fn to the whole file. found is false when the file does
// not exist; an unchanged file is not written.
func rewriteFile(fsys afero.Fs, p string, fn func(string) string) (changed, found bool, err error) {
	data, err := afero.ReadFile(fsys, p)
	if err != nil {
		if ok, _ := platform.Exists(fsys, p); !ok {
			return false, false, nil
		}
		return false, true, err
	}

	before := string(data)
	after := fn(before)
	if after == before {
		return false, true, nil
	}
	if err := afero.WriteFile(fsys, p, []byte(after), platform.FilePerm); err != nil {
		return false, true, err
	}
	return true, true, nil
}

// Summary renders the report for debug logging.
func (r *Report) Summary() string {
	edited := append([]string(nil), r.Edited...)
	sort.Strings(edited)
	return fmt.Sprintf("edited=[%s] skipped=[%s] removed=[%s]",
		strings.Join(edited, " "), strings.Join(r.Skipped, " "), strings.Join(r.RemovedDependencies, " "))
}
