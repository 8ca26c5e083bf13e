package engine

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mcvglass/mcv/internals/downloadmgr"
	"github.com/mcvglass/mcv/internals/minecraft"
)

// EnsureVersion makes sure all files needed to launch the given
// version id exist locally: the version json, the client jar, the
// libraries and the assets. onProgress receives overall completion in
// percent. Nothing is downloaded when everything is present already.
func (c *Client) EnsureVersion(ctx context.Context, id string, onProgress func(p int)) error {
	man, err := c.LaunchManifest(ctx, id)
	if err != nil {
		return err
	}
	return c.ensureFiles(ctx, man, onProgress)
}

func (c *Client) ensureFiles(ctx context.Context, man *minecraft.LaunchManifest, onProgress func(p int)) error {
	mgr := downloadmgr.New()
	mgr.OnProgress = onProgress

	// client jar
	// manifests without a downloads section (loader profiles, very old
	// versions) ship no client jar of their own
	jar := filepath.Join(c.Layout.VersionsDir(), man.MinecraftVersion(), man.JarName())
	if _, err := os.Stat(jar); os.IsNotExist(err) && man.Downloads.Client.URL != "" {
		item := downloadmgr.NewHTTPItem(man.Downloads.Client.URL, jar)
		item.Sha1 = man.Downloads.Client.Sha1
		mgr.Add(item)
	}

	// libraries
	for _, lib := range c.missingLibraries(man) {
		item := downloadmgr.NewHTTPItem(lib.DownloadURL(), filepath.Join(c.Layout.LibrariesDir(), lib.Filepath()))
		item.Sha1 = lib.Sha1()
		mgr.Add(item)
	}

	// assets
	missingAssets, err := c.missingAssets(ctx, man)
	if err != nil {
		return err
	}
	for _, asset := range missingAssets {
		target := filepath.Join(c.Layout.AssetsDir(), "objects", asset.UnixPath())
		mgr.Add(downloadmgr.NewHTTPItem(asset.DownloadURL(), target))
	}

	return mgr.Start(ctx)
}

func (c *Client) missingLibraries(man *minecraft.LaunchManifest) minecraft.Libraries {
	missing := make(minecraft.Libraries, 0)

	for _, lib := range man.Libraries.Required() {
		path := filepath.Join(c.Layout.LibrariesDir(), lib.Filepath())
		if _, err := os.Stat(path); err == nil {
			continue
		}
		missing = append(missing, lib)
	}

	return missing
}

// missingAssets reads (or first downloads) the asset index of the
// manifest and returns all objects not present locally
func (c *Client) missingAssets(ctx context.Context, man *minecraft.LaunchManifest) ([]minecraft.AssetObject, error) {
	if man.AssetIndex.URL == "" {
		// loader-only manifest with no own assets
		return nil, nil
	}

	indexPath := filepath.Join(c.Layout.AssetsDir(), "indexes", man.Assets+".json")
	buf, err := os.ReadFile(indexPath)
	if err != nil {
		item := downloadmgr.NewHTTPItem(man.AssetIndex.URL, indexPath)
		item.Sha1 = man.AssetIndex.Sha1
		if err := item.Download(ctx); err != nil {
			return nil, err
		}
		buf, err = os.ReadFile(indexPath)
		if err != nil {
			return nil, err
		}
	}

	index := minecraft.AssetIndex{}
	if err := json.Unmarshal(buf, &index); err != nil {
		return nil, err
	}

	missing := make([]minecraft.AssetObject, 0)
	for _, asset := range index.Objects {
		file := filepath.Join(c.Layout.AssetsDir(), "objects", asset.UnixPath())
		if _, err := os.Stat(file); os.IsNotExist(err) {
			missing = append(missing, asset)
		}
	}

	return missing, nil
}
