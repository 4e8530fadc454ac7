package types

import (
	"io/fs"
)

// FS is the read-only filesystem interface bannerkit needs. Identity files
// are read through it and the launcher probe stats through it.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}
