package engine

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mcvglass/mcv/internals/downloadmgr"
	"github.com/mcvglass/mcv/internals/forge"
)

// InstallFabric installs the newest stable fabric loader for the given
// base version by writing its launch profile into the versions
// directory. The caller rescans afterwards to pick up the new id.
func (c *Client) InstallFabric(ctx context.Context, baseID string) error {
	loaderVersion, err := c.Fabric.LatestLoader(ctx, baseID)
	if err != nil {
		return err
	}

	profile, err := c.Fabric.LaunchProfile(ctx, baseID, loaderVersion)
	if err != nil {
		return err
	}

	// the profile knows its own version id
	var idHolder struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(profile, &idHolder); err != nil || idHolder.ID == "" {
		return errors.New("fabric meta returned an unusable launch profile")
	}

	path := c.manifestPath(idHolder.ID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, profile, 0644)
}

// InstallForge resolves the promoted forge build for the base version,
// downloads the official installer jar and runs it with the given java
// runtime. forge.ErrUnsupportedVersion passes through untouched so the
// caller can tell "no build exists" from an install failure.
func (c *Client) InstallForge(ctx context.Context, baseID string, javaBin string, onProgress func(p int)) error {
	fullVersion, err := c.Forge.PromotedVersion(ctx, baseID)
	if err != nil {
		return err
	}

	installer := filepath.Join(c.Layout.Root, "forge-installer.jar")
	if err := downloadmgr.FetchWithProgress(ctx, forge.InstallerURL(fullVersion), installer, onProgress); err != nil {
		return err
	}
	defer os.Remove(installer)

	// the installer refuses to run against a dir without a launcher profile
	if err := c.ensureLauncherProfiles(); err != nil {
		return err
	}

	return forge.RunInstaller(ctx, javaBin, installer, c.Layout.Root)
}

func (c *Client) ensureLauncherProfiles() error {
	path := filepath.Join(c.Layout.Root, "launcher_profiles.json")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(`{"profiles":{}}`+"\n"), 0644)
}
