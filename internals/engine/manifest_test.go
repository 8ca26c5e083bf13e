package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchManifestFetchesUnknownVanilla(t *testing.T) {
	var manifestHits int

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/version.json", func(w http.ResponseWriter, r *http.Request) {
		manifestHits++
		fmt.Fprint(w, vanillaManifest)
	})
	mux.HandleFunc("/index.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"latest": {"release": "1.20.1", "snapshot": "1.20.1"},
			"versions": [{"id": "1.20.1", "type": "release", "url": "%s/version.json"}]
		}`, srv.URL)
	})

	layout := testLayout(t)
	c := New(layout)
	c.Mojang.ManifestURL = srv.URL + "/index.json"

	man, err := c.LaunchManifest(context.Background(), "1.20.1")
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", man.ID)
	assert.Equal(t, 1, manifestHits)

	// second load reads from disk
	man, err = c.LaunchManifest(context.Background(), "1.20.1")
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", man.ID)
	assert.Equal(t, 1, manifestHits, "cached manifest must not be fetched again")
}

func TestLaunchManifestUnknownVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"latest": {"release": "1.20.1"}, "versions": []}`)
	}))
	defer srv.Close()

	c := New(testLayout(t))
	c.Mojang.ManifestURL = srv.URL

	_, err := c.LaunchManifest(context.Background(), "not-a-version")
	assert.ErrorIs(t, err, ErrUnknownVersion)
}
