package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/mcvglass/mcv/internals/forge"
)

var (
	// ErrInstall wraps failures while getting the base version's files
	// onto disk
	ErrInstall = errors.New("version files could not be installed")
	// ErrLoaderInstall wraps failures while installing a mod loader
	ErrLoaderInstall = errors.New("mod loader could not be installed")
)

// Resolved is the outcome of version and loader resolution. BaseID is
// the vanilla version, LaunchID the id the game actually starts with
// (identical for vanilla, the loader's own id otherwise).
type Resolved struct {
	BaseID   string
	LaunchID string
}

// Resolve turns a version alias plus loader choice into a launchable
// version id, installing whatever is missing along the way.
//
// The alias "latest" (or an empty one) is resolved against the mojang
// version manifest. Explicit aliases are used as-is and never trigger
// a manifest query on their own.
func (c *Client) Resolve(ctx context.Context, alias string, loader string, javaBin string, onProgress func(p int)) (*Resolved, error) {
	baseID := alias
	if baseID == "" || baseID == "latest" {
		latest, err := c.Mojang.LatestRelease(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "resolving latest release")
		}
		baseID = latest
	}

	if err := c.EnsureVersion(ctx, baseID, onProgress); err != nil {
		if errors.Is(err, ErrUnknownVersion) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInstall, err)
	}

	res := &Resolved{BaseID: baseID, LaunchID: baseID}

	switch strings.ToLower(loader) {
	case "", "vanilla":
		return res, nil
	case "fabric":
		id, err := c.resolveLoader(ctx, "fabric", baseID, func() error {
			return c.InstallFabric(ctx, baseID)
		})
		if err != nil {
			return nil, err
		}
		res.LaunchID = id
	case "forge":
		id, err := c.resolveLoader(ctx, "forge", baseID, func() error {
			return c.InstallForge(ctx, baseID, javaBin, onProgress)
		})
		if err != nil {
			return nil, err
		}
		res.LaunchID = id
	default:
		return nil, errors.Errorf("unknown loader %q", loader)
	}

	// the loader manifest brings its own libraries (loader jar,
	// mappings). ensure them like the base files, fresh install and
	// reuse alike
	if res.LaunchID != res.BaseID {
		if err := c.EnsureVersion(ctx, res.LaunchID, onProgress); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoaderInstall, err)
		}
	}

	return res, nil
}

// resolveLoader reuses an already installed loader version when one
// exists and installs one otherwise. The rescan after installing
// guards against installers that finish without leaving a version
// behind.
func (c *Client) resolveLoader(ctx context.Context, marker string, baseID string, install func() error) (string, error) {
	id, err := c.FindLoaderVersion(marker, baseID)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	if err := install(); err != nil {
		// "no forge build for this version" is a user-facing answer,
		// not an install failure
		if errors.Is(err, forge.ErrUnsupportedVersion) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrLoaderInstall, err)
	}

	id, err = c.FindLoaderVersion(marker, baseID)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrLoaderNotFound
	}
	return id, nil
}
