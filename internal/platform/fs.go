package platform

import (
	"io/fs"

	"github.com/spf13/afero"
)

// FileSystem is the capability every file-touching component depends on.
type FileSystem = afero.Fs

// TemplateFS returns the file system templates are read from. An empty dir
// selects the embedded tree; otherwise dir on the host file system is used,
// with template paths resolved relative to it.
func TemplateFS(embedded fs.FS, dir string) FileSystem {
	if dir == "" {
		return afero.FromIOFS{FS: embedded}
	}
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// ProjectFS returns the file system projects are written to.
func ProjectFS() FileSystem {
	return afero.NewOsFs()
}

// IOFS exposes fsys through the io/fs interfaces, for readers such as the
// catalog loader that only need fs.FS.
func IOFS(fsys FileSystem) fs.FS {
	return afero.NewIOFS(fsys)
}

// Exists reports whether path exists in fsys.
func Exists(fsys FileSystem, path string) (bool, error) {
	return afero.Exists(fsys, path)
}
