// pkg/installer/submodule_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: testutil.StagedFS
// PURPOSE: Test submodule instruction building and name resolution

package installer

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bannerkit/pkg/classifier"
	"github.com/arthur-debert/bannerkit/pkg/errors"
	"github.com/arthur-debert/bannerkit/pkg/game"
	"github.com/arthur-debert/bannerkit/pkg/testutil"
	"github.com/arthur-debert/bannerkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stagedInstaller(t *testing.T, staged map[string]string) *SubmoduleInstaller {
	t.Helper()
	return NewSubmoduleInstaller(testutil.NewStagedFS(t, staged), 2)
}

func TestSubmoduleSingleUnit(t *testing.T) {
	files := []string{p("Modules", "ModA", "SubModule.xml"), p("Modules", "ModA", "bin", "x.dll")}
	require.True(t, classifier.TestSubmodules(files, game.ID).Supported)

	result, err := stagedInstaller(t, nil).Install(files, "/stage")

	require.NoError(t, err)
	assert.Equal(t, []types.CopyInstruction{
		types.NewCopy(p("Modules", "ModA", "SubModule.xml"), p("Modules", "ModA", "SubModule.xml")),
		types.NewCopy(p("Modules", "ModA", "bin", "x.dll"), p("Modules", "ModA", "bin", "x.dll")),
	}, result.Instructions)
}

func TestSubmoduleMultipleUnitsKeepAnchorOrder(t *testing.T) {
	files := []string{
		p("Pack", "Beta"),
		p("Pack", "Beta", "SubModule.xml"),
		p("Pack", "Beta", "ModuleData", "items.xml"),
		p("Pack", "Alpha", "SubModule.XML"),
		p("Pack", "Alpha", "bin", "Win64_Shipping_Client", "Alpha.dll"),
		p("Pack", "readme.txt"),
	}

	result, err := stagedInstaller(t, nil).Install(files, "/stage")

	require.NoError(t, err)
	assert.Equal(t, []types.CopyInstruction{
		types.NewCopy(p("Pack", "Beta", "SubModule.xml"), p("Modules", "Beta", "SubModule.xml")),
		types.NewCopy(p("Pack", "Beta", "ModuleData", "items.xml"), p("Modules", "Beta", "ModuleData", "items.xml")),
		types.NewCopy(p("Pack", "Alpha", "SubModule.XML"), p("Modules", "Alpha", "SubModule.XML")),
		types.NewCopy(p("Pack", "Alpha", "bin", "Win64_Shipping_Client", "Alpha.dll"), p("Modules", "Alpha", "bin", "Win64_Shipping_Client", "Alpha.dll")),
	}, result.Instructions)
}

func TestSubmoduleOrderIndependentOfScheduling(t *testing.T) {
	var files []string
	for i := 0; i < 20; i++ {
		files = append(files, p(fmt.Sprintf("Mod%02d", i), "SubModule.xml"))
	}

	staged := testutil.NewStagedFS(t, nil)
	inst := NewSubmoduleInstaller(staged, 0)

	first, err := inst.Install(files, "/stage")
	require.NoError(t, err)
	require.Len(t, first.Instructions, 20)
	for i, ins := range first.Instructions {
		assert.Equal(t, p("Modules", fmt.Sprintf("Mod%02d", i), "SubModule.xml"), ins.Destination)
	}

	second, err := inst.Install(files, "/stage")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Zero(t, staged.Reads(), "folder names never touch the staging dir")
}

func TestSubmoduleNameFromDocument(t *testing.T) {
	staged := map[string]string{
		"SubModule.xml": `<Module><Name value="Calradia Plus"/><Id value="CalradiaPlus"/></Module>`,
	}
	files := []string{"SubModule.xml", p("bin", "Win64_Shipping_Client", "CalradiaPlus.dll"), "bin"}

	result, err := stagedInstaller(t, staged).Install(files, "/stage")

	require.NoError(t, err)
	assert.Equal(t, []types.CopyInstruction{
		types.NewCopy("SubModule.xml", p("Modules", "CalradiaPlus", "SubModule.xml")),
		types.NewCopy(p("bin", "Win64_Shipping_Client", "CalradiaPlus.dll"), p("Modules", "CalradiaPlus", "bin", "Win64_Shipping_Client", "CalradiaPlus.dll")),
	}, result.Instructions)
}

func TestSubmoduleMalformedIdentityAbortsBuild(t *testing.T) {
	staged := map[string]string{"SubModule.xml": "<Module><Id value="}
	files := []string{
		p("Good", "SubModule.xml"),
		p("Good", "good.dll"),
		"SubModule.xml",
	}

	result, err := stagedInstaller(t, staged).Install(files, "/stage")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDataInvalid))
	assert.Nil(t, result.Instructions, "no partial instructions escape")
}

func TestSubmoduleIdentityWithTwoRootsAbortsBuild(t *testing.T) {
	staged := map[string]string{"SubModule.xml": `<Module><Id value="X"/></Module><Other/>`}

	result, err := stagedInstaller(t, staged).Install([]string{"SubModule.xml"}, "/stage")

	assert.True(t, errors.IsErrorCode(err, errors.ErrDataInvalid))
	assert.Nil(t, result.Instructions)
}

func TestSubmoduleMissingIdentityFileOnDisk(t *testing.T) {
	result, err := stagedInstaller(t, nil).Install([]string{"SubModule.xml"}, "/stage")

	assert.True(t, errors.IsErrorCode(err, errors.ErrDataInvalid))
	assert.Empty(t, result.Instructions)
}

func TestSubmoduleOverlappingUnitsDuplicateFiles(t *testing.T) {
	staged := map[string]string{"SubModule.xml": `<Module><Id value="Outer"/></Module>`}
	files := []string{
		"SubModule.xml",
		p("Inner", "SubModule.xml"),
		p("Inner", "inner.dll"),
	}

	result, err := stagedInstaller(t, staged).Install(files, "/stage")

	require.NoError(t, err)
	assert.Equal(t, []types.CopyInstruction{
		types.NewCopy("SubModule.xml", p("Modules", "Outer", "SubModule.xml")),
		types.NewCopy(p("Inner", "SubModule.xml"), p("Modules", "Outer", "Inner", "SubModule.xml")),
		types.NewCopy(p("Inner", "inner.dll"), p("Modules", "Outer", "Inner", "inner.dll")),
		types.NewCopy(p("Inner", "SubModule.xml"), p("Modules", "Inner", "SubModule.xml")),
		types.NewCopy(p("Inner", "inner.dll"), p("Modules", "Inner", "inner.dll")),
	}, result.Instructions)
}

func TestSubmoduleSkipsDirectoryMarkers(t *testing.T) {
	files := []string{
		p("ModA"),
		p("ModA", "SubModule.xml"),
		p("ModA", "ModuleData"),
		p("ModA", "ModuleData") + string(filepath.Separator),
	}

	result, err := stagedInstaller(t, nil).Install(files, "/stage")

	require.NoError(t, err)
	require.Len(t, result.Instructions, 1)
	assert.Equal(t, p("Modules", "ModA", "SubModule.xml"), result.Instructions[0].Destination)
}
