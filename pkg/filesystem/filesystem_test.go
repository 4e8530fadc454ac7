package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFSReadFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/stage/SubModule.xml", []byte("<Module/>"), 0644))

	fsys := NewAferoFS(mem)

	data, err := fsys.ReadFile("/stage/SubModule.xml")
	require.NoError(t, err)
	assert.Equal(t, "<Module/>", string(data))

	_, err = fsys.ReadFile("/stage")
	assert.ErrorIs(t, err, fs.ErrInvalid)

	_, err = fsys.ReadFile("/stage/missing.xml")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestAferoFSRefusesOversizedFiles(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/stage/SubModule.xml", make([]byte, MaxReadSize+1), 0644))

	_, err := NewAferoFS(mem).ReadFile("/stage/SubModule.xml")

	assert.ErrorIs(t, err, fs.ErrInvalid)
}

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steam_api64.dll")
	require.NoError(t, os.WriteFile(path, []byte{0x4d, 0x5a}, 0644))

	fsys := NewOS()

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.Size())

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, 2)
}
