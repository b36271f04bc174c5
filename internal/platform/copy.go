package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// ErrIOFailure marks a failed read or write while materializing a tree.
var ErrIOFailure = errors.New("i/o failure")

// CopyError reports the operation and path that failed during CopyTree.
type CopyError struct {
	Op   string // "mkdir", "read", "write", "readdir", "stat", "rename"
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Is lets errors.Is match ErrIOFailure.
func (e *CopyError) Is(target error) bool { return target == ErrIOFailure }

func (e *CopyError) Unwrap() error { return e.Err }

// excludedNames are never copied out of a template tree.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// specialFiles are renamed after copy. Packaging tools drop dotfiles, so
// templates carry them under a placeholder name.
var specialFiles = map[string]string{
	"_gitignore": ".gitignore",
}

// CopyTree copies srcDir in src onto dstDir in dst. Directories are created
// as needed, regular files are copied byte-for-byte, and same-path files in
// dst are overwritten. Files that exist only in dst are left alone. Symlinks
// and other special files are skipped.
//
// It returns the slash-separated paths of the files written, relative to
// dstDir, in walk order. The first failure aborts the copy with a *CopyError;
// whatever was written before it stays on disk.
func CopyTree(src FileSystem, srcDir string, dst FileSystem, dstDir string) ([]string, error) {
	info, err := src.Stat(srcDir)
	if err != nil {
		return nil, &CopyError{Op: "stat", Path: srcDir, Err: err}
	}
	if !info.IsDir() {
		return nil, &CopyError{Op: "stat", Path: srcDir, Err: fmt.Errorf("not a directory")}
	}

	var files []string
	if err := copyDir(src, srcDir, dst, dstDir, "", &files); err != nil {
		return files, err
	}
	return files, nil
}

// copyDir recursively copies src to dst, excluding entries in excludedNames.
func copyDir(src FileSystem, srcDir string, dst FileSystem, dstDir, rel string, files *[]string) error {
	if err := dst.MkdirAll(dstDir, DirPerm); err != nil {
		return &CopyError{Op: "mkdir", Path: dstDir, Err: err}
	}

	// afero.ReadDir returns entries sorted by name.
	entries, err := afero.ReadDir(src, srcDir)
	if err != nil {
		return &CopyError{Op: "readdir", Path: srcDir, Err: err}
	}

	for _, entry := range entries {
		if shouldExclude(entry.Name()) {
			continue
		}

		// Source paths stay slash-separated so io/fs backed sources accept them.
		srcPath := path.Join(srcDir, entry.Name())
		dstPath := filepath.Join(dstDir, entry.Name())
		relPath := path.Join(rel, entry.Name())

		switch {
		case entry.IsDir():
			if err := copyDir(src, srcPath, dst, dstPath, relPath, files); err != nil {
				return err
			}
		case entry.Mode().IsRegular():
			if err := copyFile(src, srcPath, dst, dstPath); err != nil {
				return err
			}
			*files = append(*files, relPath)
		}
		// Skip symlinks and other special files during copy.
	}

	return nil
}

// copyFile streams a single file from src to dst, truncating any existing
// destination file.
func copyFile(src FileSystem, srcPath string, dst FileSystem, dstPath string) error {
	in, err := src.Open(srcPath)
	if err != nil {
		return &CopyError{Op: "read", Path: srcPath, Err: err}
	}
	defer in.Close()

	out, err := dst.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return &CopyError{Op: "write", Path: dstPath, Err: err}
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return &CopyError{Op: "write", Path: dstPath, Err: err}
	}
	if err := out.Close(); err != nil {
		return &CopyError{Op: "write", Path: dstPath, Err: err}
	}
	return nil
}

// shouldExclude returns true if the name should be excluded during copy.
func shouldExclude(name string) bool {
	return excludedNames[name]
}

// RenameSpecialFiles renames placeholder files at the top of dir to their
// real names, replacing any file already there. It returns the new names.
func RenameSpecialFiles(fsys FileSystem, dir string) ([]string, error) {
	names := make([]string, 0, len(specialFiles))
	for from := range specialFiles {
		names = append(names, from)
	}
	sort.Strings(names)

	var renamed []string
	for _, from := range names {
		to := specialFiles[from]
		oldPath := filepath.Join(dir, from)
		newPath := filepath.Join(dir, to)

		ok, err := afero.Exists(fsys, oldPath)
		if err != nil {
			return renamed, &CopyError{Op: "stat", Path: oldPath, Err: err}
		}
		if !ok {
			continue
		}

		if exists, _ := afero.Exists(fsys, newPath); exists {
			if err := fsys.Remove(newPath); err != nil {
				return renamed, &CopyError{Op: "rename", Path: newPath, Err: err}
			}
		}
		if err := fsys.Rename(oldPath, newPath); err != nil {
			return renamed, &CopyError{Op: "rename", Path: oldPath, Err: err}
		}
		renamed = append(renamed, to)
	}
	return renamed, nil
}
