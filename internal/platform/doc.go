// Package platform provides the file-system capability used by the
// scaffolder and the tree copier built on it. The template source and the
// project destination are both afero file systems, selected once at startup:
// the embedded template tree or an on-disk override for the source, the host
// file system for the destination, and in-memory file systems in tests.
package platform
