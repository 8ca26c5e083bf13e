// Package mojang talks to the mojang "piston-meta" launcher api.
// Only the version manifest is consumed; no account endpoints.
package mojang

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const versionManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

var (
	// TypeSnapshot is a snapshot release
	TypeSnapshot = "snapshot"
	// TypeRelease is a full "normal" release
	TypeRelease = "release"
)

// Client fetches the minecraft version manifest
type Client struct {
	rest *resty.Client
	// ManifestURL can be pointed at a test server
	ManifestURL string
}

// New returns a new piston-meta client
func New() *Client {
	return &Client{
		rest:        resty.New(),
		ManifestURL: versionManifestURL,
	}
}

// Release is a released minecraft version
type Release struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Time        string `json:"time"`
	ReleaseTime string `json:"releaseTime"`
	Sha1        string `json:"sha1"`
}

// ReleaseResponse is the response from the piston-meta version manifest
type ReleaseResponse struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []Release `json:"versions"`
}

// Releases returns all published minecraft versions
func (c *Client) Releases(ctx context.Context) (*ReleaseResponse, error) {
	parsed := &ReleaseResponse{}
	res, err := c.rest.R().
		SetContext(ctx).
		SetResult(parsed).
		ForceContentType("application/json").
		Get(c.ManifestURL)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("version manifest request failed: %s", res.Status())
	}
	return parsed, nil
}

// LatestRelease returns the id of the current stable release
func (c *Client) LatestRelease(ctx context.Context) (string, error) {
	releases, err := c.Releases(ctx)
	if err != nil {
		return "", err
	}
	return releases.Latest.Release, nil
}

// FindRelease returns the release entry for the given version id
func (c *Client) FindRelease(ctx context.Context, id string) (*Release, error) {
	releases, err := c.Releases(ctx)
	if err != nil {
		return nil, err
	}
	for i := range releases.Versions {
		if releases.Versions[i].ID == id {
			return &releases.Versions[i], nil
		}
	}
	return nil, nil
}
