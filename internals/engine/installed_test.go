package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcvglass/mcv/internals/datadir"
)

func mkdirVersion(layout *datadir.Layout, id string) error {
	return os.MkdirAll(filepath.Join(layout.VersionsDir(), id), 0755)
}

func TestInstalledVersions(t *testing.T) {
	layout := testLayout(t)
	c := New(layout)

	ids, err := c.InstalledVersions()
	require.NoError(t, err)
	assert.Empty(t, ids, "missing versions dir is not an error")

	writeManifest(t, layout, "1.20.1", `{"id": "1.20.1"}`)
	writeManifest(t, layout, "1.19.4", `{"id": "1.19.4"}`)
	writeManifest(t, layout, "fabric-loader-0.14.21-1.20.1", `{"id": "fabric-loader-0.14.21-1.20.1"}`)

	ids, err = c.InstalledVersions()
	require.NoError(t, err)
	assert.Equal(t, []string{"1.19.4", "1.20.1", "fabric-loader-0.14.21-1.20.1"}, ids)
}

func TestInstalledVersionsSkipsIncomplete(t *testing.T) {
	layout := testLayout(t)
	c := New(layout)

	writeManifest(t, layout, "1.20.1", `{"id": "1.20.1"}`)
	// a directory without its json is a half-finished install
	require.NoError(t, mkdirVersion(layout, "1.20.2"))

	ids, err := c.InstalledVersions()
	require.NoError(t, err)
	assert.Equal(t, []string{"1.20.1"}, ids)
}

func TestFindLoaderVersion(t *testing.T) {
	layout := testLayout(t)
	c := New(layout)

	writeManifest(t, layout, "1.20.1", `{}`)
	writeManifest(t, layout, "fabric-loader-0.15.0-1.20.1", `{}`)
	writeManifest(t, layout, "fabric-loader-0.14.21-1.20.1", `{}`)
	writeManifest(t, layout, "1.20.1-forge-47.2.0", `{}`)

	id, err := c.FindLoaderVersion("fabric", "1.20.1")
	require.NoError(t, err)
	assert.Equal(t, "fabric-loader-0.14.21-1.20.1", id, "smallest id wins the tie-break")

	id, err = c.FindLoaderVersion("forge", "1.20.1")
	require.NoError(t, err)
	assert.Equal(t, "1.20.1-forge-47.2.0", id)

	id, err = c.FindLoaderVersion("fabric", "1.19.4")
	require.NoError(t, err)
	assert.Empty(t, id, "no match for a different base version")
}
