package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcvglass/mcv/internals/datadir"
)

func TestOfflineSession(t *testing.T) {
	a := OfflineSession("MCVPlayer")
	b := OfflineSession("MCVPlayer")
	other := OfflineSession("SomebodyElse")

	assert.Equal(t, a.UUID, b.UUID, "same username must map to the same uuid")
	assert.NotEqual(t, a.UUID, other.UUID, "different usernames must map to different uuids")
	assert.Equal(t, "offline-token", a.Token)

	// python's uuid3(NAMESPACE_DNS, …) equivalent, pinned so configs
	// written by older launcher versions keep their identity
	assert.Equal(t, "8ca5f0df-df0f-358f-977b-0fd2c24a3b09", OfflineSession("MCVPlayer").UUID)
}

func TestHeapFlags(t *testing.T) {
	for ram := 2; ram <= 16; ram++ {
		flags := HeapFlags(ram)
		require.Len(t, flags, 2)

		assert.Equal(t, "-Xms2G", flags[0], "initial heap caps at 2G")
		assert.Equal(t, fmt.Sprintf("-Xmx%dG", ram), flags[1])
	}
}

func TestHeapFlagsDerived(t *testing.T) {
	// ram 0 derives from system memory; only the invariants matter here
	flags := HeapFlags(0)
	require.Len(t, flags, 2)

	var initial, max int
	_, err := fmt.Sscanf(flags[0], "-Xms%dG", &initial)
	require.NoError(t, err)
	_, err = fmt.Sscanf(flags[1], "-Xmx%dG", &max)
	require.NoError(t, err)

	assert.LessOrEqual(t, initial, max)
	assert.GreaterOrEqual(t, max, 2)
	assert.LessOrEqual(t, max, 8)
}

func TestSubstituteAll(t *testing.T) {
	vars := map[string]string{
		"auth_player_name": "MCVPlayer",
		"version_name":     "1.20.1",
	}
	got := substituteAll(
		[]string{"--username", "${auth_player_name}", "--version", "${version_name}", "--clientId", "${clientid}"},
		vars,
	)
	assert.Equal(t, []string{"--username", "MCVPlayer", "--version", "1.20.1", "--clientId", ""}, got)
}

func testLayout(t *testing.T) *datadir.Layout {
	t.Helper()
	return &datadir.Layout{Root: t.TempDir()}
}

func writeManifest(t *testing.T, layout *datadir.Layout, id string, body string) {
	t.Helper()
	dir := filepath.Join(layout.VersionsDir(), id)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), []byte(body), 0644))
}

const vanillaManifest = `{
	"id": "1.20.1",
	"mainClass": "net.minecraft.client.main.Main",
	"assets": "5",
	"type": "release",
	"minecraftArguments": "--username ${auth_player_name} --uuid ${auth_uuid} --accessToken ${auth_access_token}"
}`

func TestBuildLaunchCmd(t *testing.T) {
	layout := testLayout(t)
	writeManifest(t, layout, "1.20.1", vanillaManifest)

	c := New(layout)
	cmd, err := c.BuildLaunchCmd(context.Background(), "1.20.1", &LaunchOptions{
		Username: "MCVPlayer",
		RamGB:    4,
		JavaBin:  "/opt/java/bin/java",
	})
	require.NoError(t, err)

	assert.Equal(t, "/opt/java/bin/java", cmd.Path)
	assert.Contains(t, cmd.Args, "-Xms2G")
	assert.Contains(t, cmd.Args, "-Xmx4G")
	assert.Contains(t, cmd.Args, "-XX:+UseG1GC")
	assert.Contains(t, cmd.Args, "net.minecraft.client.main.Main")
	assert.Contains(t, cmd.Args, "MCVPlayer")
	assert.Contains(t, cmd.Args, OfflineSession("MCVPlayer").UUID)
	assert.NotContains(t, cmd.Args, "${auth_player_name}", "no templates may leak into the argv")
	assert.Equal(t, layout.Root, cmd.Dir)
}

func TestBuildLaunchCmdMergesParent(t *testing.T) {
	layout := testLayout(t)
	writeManifest(t, layout, "1.20.1", vanillaManifest)
	writeManifest(t, layout, "fabric-loader-0.14.21-1.20.1", `{
		"id": "fabric-loader-0.14.21-1.20.1",
		"inheritsFrom": "1.20.1",
		"mainClass": "net.fabricmc.loader.impl.launch.knot.KnotClient"
	}`)

	c := New(layout)
	cmd, err := c.BuildLaunchCmd(context.Background(), "fabric-loader-0.14.21-1.20.1", &LaunchOptions{
		Username: "MCVPlayer",
		RamGB:    2,
		JavaBin:  "java",
	})
	require.NoError(t, err)

	assert.Contains(t, cmd.Args, "net.fabricmc.loader.impl.launch.knot.KnotClient")
	// heap pair for the 2G floor
	assert.Contains(t, cmd.Args, "-Xms2G")
	assert.Contains(t, cmd.Args, "-Xmx2G")
	// classpath ends in the parent jar
	joined := fmt.Sprint(cmd.Args)
	assert.Contains(t, joined, "1.20.1.jar")
}
