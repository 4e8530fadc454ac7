package testutil

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagedFS(t *testing.T) {
	s := NewStagedFS(t, map[string]string{Path("ModA", "SubModule.xml"): "<Module/>"})

	data, err := s.ReadFile(Path(StageRoot, "ModA", "SubModule.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<Module/>", string(data))

	info, err := s.Stat(Path(StageRoot, "ModA"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = s.ReadFile(Path(StageRoot, "missing.xml"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, 2, s.Reads())
}

func TestStagedFSWithError(t *testing.T) {
	s := NewStagedFS(t, map[string]string{"SubModule.xml": "<Module/>"}).
		WithError(Path(StageRoot, "SubModule.xml"), fs.ErrPermission)

	_, err := s.ReadFile(Path(StageRoot, "SubModule.xml"))
	assert.True(t, errors.Is(err, fs.ErrPermission))

	_, err = s.Stat(Path(StageRoot, "SubModule.xml"))
	assert.True(t, errors.Is(err, fs.ErrPermission))
}
