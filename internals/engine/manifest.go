package engine

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mcvglass/mcv/internals/downloadmgr"
	"github.com/mcvglass/mcv/internals/minecraft"
)

// LaunchManifest returns the (merged) manifest for a version id.
// Loader manifests inherit from their vanilla parent; the parent is
// fetched from mojang when it is not on disk yet.
func (c *Client) LaunchManifest(ctx context.Context, id string) (*minecraft.LaunchManifest, error) {
	man, err := c.readManifest(ctx, id)
	if err != nil {
		return nil, err
	}

	if man.InheritsFrom != "" {
		parent, err := c.readManifest(ctx, man.InheritsFrom)
		if err != nil {
			return nil, errors.Wrapf(err, "loading parent manifest %s", man.InheritsFrom)
		}
		man.MergeWith(parent)
	}

	return man, nil
}

func (c *Client) manifestPath(id string) string {
	return filepath.Join(c.Layout.VersionsDir(), id, id+".json")
}

// readManifest loads a single version manifest from disk, fetching the
// vanilla one from mojang first if needed
func (c *Client) readManifest(ctx context.Context, id string) (*minecraft.LaunchManifest, error) {
	buf, err := os.ReadFile(c.manifestPath(id))
	if os.IsNotExist(err) {
		if err := c.fetchVanillaManifest(ctx, id); err != nil {
			return nil, err
		}
		buf, err = os.ReadFile(c.manifestPath(id))
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	man := &minecraft.LaunchManifest{}
	if err := json.Unmarshal(buf, man); err != nil {
		return nil, errors.Wrapf(err, "corrupt version manifest for %s", id)
	}
	return man, nil
}

// fetchVanillaManifest downloads the version json for a published
// minecraft release into the versions directory
func (c *Client) fetchVanillaManifest(ctx context.Context, id string) error {
	release, err := c.Mojang.FindRelease(ctx, id)
	if err != nil {
		return err
	}
	if release == nil {
		return errors.Wrap(ErrUnknownVersion, id)
	}

	item := downloadmgr.NewHTTPItem(release.URL, c.manifestPath(id))
	item.Sha1 = release.Sha1
	return item.Download(ctx)
}
