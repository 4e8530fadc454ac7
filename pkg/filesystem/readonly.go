package filesystem

import (
	"fmt"
	"io/fs"

	"github.com/arthur-debert/bannerkit/pkg/types"
	"github.com/spf13/afero"
)

// MaxReadSize bounds a single ReadFile. Identity files are a few kilobytes;
// anything this large is not one.
const MaxReadSize = 4 << 20

// readOnly implements types.FS over an afero filesystem that refuses writes
type readOnly struct {
	fs afero.Fs
}

// NewAferoFS returns a read-only types.FS over fsys
func NewAferoFS(fsys afero.Fs) types.FS {
	return &readOnly{fs: afero.NewReadOnlyFs(fsys)}
}

// NewOS returns a read-only types.FS over the host filesystem
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

func (r *readOnly) Stat(name string) (fs.FileInfo, error) {
	return r.fs.Stat(name)
}

// ReadFile reads a regular file whole. Directories and files larger than
// MaxReadSize fail with fs.ErrInvalid.
func (r *readOnly) ReadFile(name string) ([]byte, error) {
	info, err := r.fs.Stat(name)
	if err != nil {
		return nil, err
	}

	switch {
	case info.IsDir():
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	case info.Size() > MaxReadSize:
		return nil, &fs.PathError{
			Op:   "read",
			Path: name,
			Err:  fmt.Errorf("%w: %d bytes, limit %d", fs.ErrInvalid, info.Size(), MaxReadSize),
		}
	}
	return afero.ReadFile(r.fs, name)
}
