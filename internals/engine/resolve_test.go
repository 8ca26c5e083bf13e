package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExplicitVersionSkipsManifest(t *testing.T) {
	var manifestHits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		manifestHits++
		fmt.Fprint(w, `{"latest": {"release": "1.20.1"}, "versions": []}`)
	}))
	defer srv.Close()

	layout := testLayout(t)
	writeManifest(t, layout, "1.20.1", vanillaManifest)

	c := New(layout)
	c.Mojang.ManifestURL = srv.URL

	res, err := c.Resolve(context.Background(), "1.20.1", "vanilla", "java", nil)
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", res.BaseID)
	assert.Equal(t, "1.20.1", res.LaunchID)
	assert.Equal(t, 0, manifestHits, "an explicit version must not query the version manifest")
}

func TestResolveLatestQueriesManifestOnce(t *testing.T) {
	var manifestHits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		manifestHits++
		fmt.Fprint(w, `{"latest": {"release": "1.20.1"}, "versions": [{"id": "1.20.1", "type": "release", "url": ""}]}`)
	}))
	defer srv.Close()

	layout := testLayout(t)
	writeManifest(t, layout, "1.20.1", vanillaManifest)

	c := New(layout)
	c.Mojang.ManifestURL = srv.URL

	res, err := c.Resolve(context.Background(), "latest", "vanilla", "java", nil)
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", res.LaunchID)
	assert.Equal(t, 1, manifestHits)
}

func TestResolveReusesInstalledFabric(t *testing.T) {
	layout := testLayout(t)
	writeManifest(t, layout, "1.20.1", vanillaManifest)
	writeManifest(t, layout, "fabric-loader-0.14.21-1.20.1", `{
		"id": "fabric-loader-0.14.21-1.20.1",
		"inheritsFrom": "1.20.1",
		"mainClass": "net.fabricmc.loader.impl.launch.knot.KnotClient"
	}`)

	c := New(layout)
	// unreachable meta api proves no install attempt happens
	c.Fabric.SetBaseURL("http://127.0.0.1:0")

	res, err := c.Resolve(context.Background(), "1.20.1", "Fabric", "java", nil)
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", res.BaseID)
	assert.Equal(t, "fabric-loader-0.14.21-1.20.1", res.LaunchID)
}

func TestResolveInstallsFabricWhenMissing(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/versions/loader/1.20.1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"loader": {"version": "0.15.0", "stable": true}}]`)
	})
	mux.HandleFunc("/versions/loader/1.20.1/0.15.0/profile/json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": "fabric-loader-0.15.0-1.20.1",
			"inheritsFrom": "1.20.1",
			"mainClass": "net.fabricmc.loader.impl.launch.knot.KnotClient"
		}`)
	})

	layout := testLayout(t)
	writeManifest(t, layout, "1.20.1", vanillaManifest)

	c := New(layout)
	c.Fabric.SetBaseURL(srv.URL)

	res, err := c.Resolve(context.Background(), "1.20.1", "fabric", "java", nil)
	require.NoError(t, err)
	assert.Equal(t, "fabric-loader-0.15.0-1.20.1", res.LaunchID)

	// the written profile now counts as installed
	installed, err := c.InstalledVersions()
	require.NoError(t, err)
	assert.Contains(t, installed, "fabric-loader-0.15.0-1.20.1")
}

func TestResolveFetchesFabricLibraries(t *testing.T) {
	var libServed bool

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/versions/loader/1.20.1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"loader": {"version": "0.15.0", "stable": true}}]`)
	})
	mux.HandleFunc("/versions/loader/1.20.1/0.15.0/profile/json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"id": "fabric-loader-0.15.0-1.20.1",
			"inheritsFrom": "1.20.1",
			"mainClass": "net.fabricmc.loader.impl.launch.knot.KnotClient",
			"libraries": [
				{"name": "net.fabricmc:fabric-loader:0.15.0", "url": "%s/maven/"}
			]
		}`, srv.URL)
	})
	mux.HandleFunc("/maven/net/fabricmc/fabric-loader/0.15.0/fabric-loader-0.15.0.jar", func(w http.ResponseWriter, r *http.Request) {
		libServed = true
		w.Write([]byte("jar bytes"))
	})

	layout := testLayout(t)
	writeManifest(t, layout, "1.20.1", vanillaManifest)

	c := New(layout)
	c.Fabric.SetBaseURL(srv.URL)

	res, err := c.Resolve(context.Background(), "1.20.1", "fabric", "java", nil)
	require.NoError(t, err)
	assert.Equal(t, "fabric-loader-0.15.0-1.20.1", res.LaunchID)

	// the loader jar must exist locally, the classpath is built from it
	assert.True(t, libServed, "the loader library must be downloaded")
	jar := filepath.Join(layout.LibrariesDir(), "net", "fabricmc", "fabric-loader", "0.15.0", "fabric-loader-0.15.0.jar")
	_, statErr := os.Stat(jar)
	assert.NoError(t, statErr)
}

func TestResolveFetchesLibrariesOfReusedLoader(t *testing.T) {
	var libServed bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		libServed = true
		w.Write([]byte("jar bytes"))
	}))
	defer srv.Close()

	layout := testLayout(t)
	writeManifest(t, layout, "1.20.1", vanillaManifest)
	writeManifest(t, layout, "fabric-loader-0.15.0-1.20.1", fmt.Sprintf(`{
		"id": "fabric-loader-0.15.0-1.20.1",
		"inheritsFrom": "1.20.1",
		"mainClass": "net.fabricmc.loader.impl.launch.knot.KnotClient",
		"libraries": [
			{"name": "net.fabricmc:fabric-loader:0.15.0", "url": "%s/maven/"}
		]
	}`, srv.URL))

	c := New(layout)

	res, err := c.Resolve(context.Background(), "1.20.1", "fabric", "java", nil)
	require.NoError(t, err)
	assert.Equal(t, "fabric-loader-0.15.0-1.20.1", res.LaunchID)
	assert.True(t, libServed, "reusing an installed loader must still repair missing libraries")
}

func TestResolveUnknownLoader(t *testing.T) {
	layout := testLayout(t)
	writeManifest(t, layout, "1.20.1", vanillaManifest)

	c := New(layout)
	_, err := c.Resolve(context.Background(), "1.20.1", "quilt", "java", nil)
	assert.Error(t, err)
}
