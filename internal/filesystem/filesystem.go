// in: internal/filesystem/filesystem.go
package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"
)

// Filesystem is the subset of file operations needed to read comparison inputs.
// afero.Fs satisfies it, so callers can hand in the OS filesystem or an
// in-memory one interchangeably.
type Filesystem interface {
	Open(name string) (afero.File, error)
	Stat(name string) (fs.FileInfo, error)
}

// DefaultFS returns the filesystem of the host operating system, wrapped read-only.
func DefaultFS() Filesystem {
	return ReadOnly(afero.NewOsFs())
}

// NewMemFS returns an empty in-memory filesystem.
func NewMemFS() afero.Fs {
	return afero.NewMemMapFs()
}

// ReadOnly wraps fsys so that any attempt to create or modify a file fails.
func ReadOnly(fsys afero.Fs) Filesystem {
	return afero.NewReadOnlyFs(fsys)
}
