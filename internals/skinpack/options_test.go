package skinpack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const packID = "file/MCV_SkinPack"

func TestPatchOptionsAppends(t *testing.T) {
	content := "fov:0.5\nresourcePacks:[\"other/Pack\"]\nlang:en_us\n"

	patched, changed := patchOptions(content, packID)
	assert.True(t, changed)
	assert.Equal(t, "fov:0.5\nresourcePacks:[\"other/Pack\",\"file/MCV_SkinPack\"]\nlang:en_us\n", patched)
}

func TestPatchOptionsIsIdempotent(t *testing.T) {
	content := "resourcePacks:[\"file/MCV_SkinPack\"]\n"

	patched, changed := patchOptions(content, packID)
	assert.False(t, changed)
	assert.Equal(t, content, patched)

	// patching the result again yields the identical content
	once, _ := patchOptions("resourcePacks:[]\n", packID)
	twice, changedAgain := patchOptions(once, packID)
	assert.False(t, changedAgain)
	assert.Equal(t, once, twice)
}

func TestPatchOptionsAddsMissingKey(t *testing.T) {
	patched, changed := patchOptions("fov:0.5\nlang:en_us\n", packID)
	assert.True(t, changed)
	assert.Equal(t, "fov:0.5\nlang:en_us\nresourcePacks:[\"file/MCV_SkinPack\"]\n", patched)
}

func TestPatchOptionsLeavesBrokenValueAlone(t *testing.T) {
	content := "resourcePacks:not json at all\nfov:0.5\n"

	patched, changed := patchOptions(content, packID)
	assert.False(t, changed, "a broken list must never be rewritten")
	assert.Equal(t, content, patched)
}

func TestPatchOptionsPreservesUnrelatedLines(t *testing.T) {
	content := "a:1\nb:2\nresourcePacks:[\"x\",\"y\"]\nc:3\nd:4\n"

	patched, _ := patchOptions(content, packID)
	assert.Contains(t, patched, "a:1\nb:2\n")
	assert.Contains(t, patched, "\nc:3\nd:4\n")
	assert.Contains(t, patched, "\"x\",\"y\",\"file/MCV_SkinPack\"")
}

func TestRegisterCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.txt")

	require.NoError(t, Register(path, packID))

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "resourcePacks:[\"file/MCV_SkinPack\"]\n", string(buf))

	// registering again leaves the file as is
	require.NoError(t, Register(path, packID))
	buf2, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(buf), string(buf2))
}
