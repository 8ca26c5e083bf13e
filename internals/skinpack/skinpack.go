// Package skinpack generates the resource pack that gives every player
// model the configured skin, and registers it in minecrafts options
// file. The pack is rebuilt from scratch on every run.
package skinpack

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMarker is stored as skin path when the embedded default skin
// is selected
const DefaultMarker = "DefaultEmbedded"

// legacyURLFragment identifies the pre-4.0 hosted default skin url,
// which now maps to the embedded one
const legacyURLFragment = "minimal-steve"

// packFormat is the resource pack format minecraft expects.
// 15 matches 1.20.x
const packFormat = 15

//go:embed default-skin.png
var defaultSkin []byte

// Source describes where the skin texture comes from
type Source struct {
	// Type is "url" or "file"
	Type string
	Path string
}

// Embedded is the default skin source
func Embedded() Source {
	return Source{Type: "url", Path: DefaultMarker}
}

// Warning is a non-fatal problem during skin resolution. The pack is
// still written (with the embedded default), launching continues.
type Warning struct {
	msg string
}

func (w *Warning) Error() string { return w.msg }

// Build rebuilds the skin pack directory from scratch: manifest plus
// the resolved texture in both player model slots (wide and slim).
// A *Warning return means the skin source could not be used and the
// embedded default was written instead.
func Build(ctx context.Context, dir string, source Source) error {
	if err := os.RemoveAll(dir); err != nil {
		return err
	}

	textureDir := filepath.Join(dir, "assets", "minecraft", "textures", "entity", "player")
	for _, sub := range []string{"wide", "slim"} {
		if err := os.MkdirAll(filepath.Join(textureDir, sub), 0755); err != nil {
			return err
		}
	}

	if err := writeManifest(dir); err != nil {
		return err
	}

	skin, warn := resolve(ctx, source)

	// both body models get the same texture
	slots := []string{
		filepath.Join(textureDir, "wide", "steve.png"),
		filepath.Join(textureDir, "slim", "alex.png"),
	}
	for _, slot := range slots {
		if err := os.WriteFile(slot, skin, 0644); err != nil {
			return err
		}
	}

	if warn != nil {
		return warn
	}
	return nil
}

func writeManifest(dir string) error {
	manifest := map[string]any{
		"pack": map[string]any{
			"pack_format": packFormat,
			"description": "MCV Custom Skin",
		},
	}
	buf, err := json.Marshal(manifest)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "pack.mcmeta"), buf, 0644)
}

// resolve returns the texture bytes for a skin source. It never fails
// hard: any problem falls back to the embedded default plus a Warning.
func resolve(ctx context.Context, source Source) ([]byte, *Warning) {
	switch source.Type {
	case "file":
		buf, err := os.ReadFile(source.Path)
		if err != nil {
			return defaultSkin, &Warning{fmt.Sprintf("local skin file missing (%s), using embedded default", source.Path)}
		}
		return buf, nil

	default: // "url"
		if source.Path == DefaultMarker || strings.Contains(source.Path, legacyURLFragment) {
			return defaultSkin, nil
		}

		buf, err := download(ctx, source.Path)
		if err != nil {
			return defaultSkin, &Warning{fmt.Sprintf("skin download failed (%v), using embedded default", err)}
		}
		return buf, nil
	}
}

func download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return nil, fmt.Errorf("invalid status code: %s", res.Status)
	}
	return io.ReadAll(res.Body)
}
