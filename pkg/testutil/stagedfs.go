package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"
	"testing"

	"github.com/arthur-debert/bannerkit/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// StageRoot is the directory StagedFS content is written below.
const StageRoot = "/stage"

// StagedFS implements types.FS over an in-memory afero filesystem that
// holds an unpacked archive below StageRoot.
type StagedFS struct {
	mem afero.Fs

	mu         sync.Mutex
	errorPaths map[string]error
	readCount  int
}

var _ types.FS = (*StagedFS)(nil)

// NewStagedFS writes files, keyed by archive-relative path, below StageRoot.
func NewStagedFS(t testing.TB, files map[string]string) *StagedFS {
	t.Helper()

	s := &StagedFS{
		mem:        afero.NewMemMapFs(),
		errorPaths: make(map[string]error),
	}
	require.NoError(t, s.mem.MkdirAll(StageRoot, 0755))
	for name, content := range files {
		s.WriteFile(t, filepath.Join(StageRoot, name), content)
	}
	return s
}

// WriteFile writes content at an absolute path, creating parents.
func (s *StagedFS) WriteFile(t testing.TB, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(s.mem, path, []byte(content), 0644))
}

// WithError makes every access to path fail with err
func (s *StagedFS) WithError(path string, err error) *StagedFS {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errorPaths[filepath.Clean(path)] = err
	return s
}

// Reads returns how many ReadFile calls were made
func (s *StagedFS) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readCount
}

func (s *StagedFS) injected(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorPaths[filepath.Clean(path)]
}

// Stat implements types.FS
func (s *StagedFS) Stat(name string) (fs.FileInfo, error) {
	if err := s.injected(name); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return s.mem.Stat(name)
}

// ReadFile implements types.FS
func (s *StagedFS) ReadFile(name string) ([]byte, error) {
	s.mu.Lock()
	s.readCount++
	s.mu.Unlock()

	if err := s.injected(name); err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return afero.ReadFile(s.mem, name)
}

// Path joins segments with the platform separator, the way archive
// listings arrive on the host.
func Path(segments ...string) string {
	return filepath.Join(segments...)
}
