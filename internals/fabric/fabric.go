// Package fabric talks to meta.fabricmc.net to install the fabric loader.
package fabric

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const metaAPI = "https://meta.fabricmc.net/v2"

// Client fetches loader versions and launch profiles from the fabric meta api
type Client struct {
	rest *resty.Client
}

// New returns a new fabric meta client
func New() *Client {
	return &Client{rest: resty.New().SetBaseURL(metaAPI)}
}

// SetBaseURL points the client at a different api root (used in tests)
func (c *Client) SetBaseURL(url string) {
	c.rest.SetBaseURL(url)
}

// LoaderEntry is one entry of the loader list for a game version
type LoaderEntry struct {
	Loader struct {
		Version string `json:"version"`
		Stable  bool   `json:"stable"`
	} `json:"loader"`
}

// LatestLoader returns the newest stable loader version for the given
// minecraft version
func (c *Client) LatestLoader(ctx context.Context, gameVersion string) (string, error) {
	var entries []LoaderEntry
	res, err := c.rest.R().
		SetContext(ctx).
		SetResult(&entries).
		ForceContentType("application/json").
		SetPathParam("game", gameVersion).
		Get("/versions/loader/{game}")
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", fmt.Errorf("fabric loader list request failed: %s", res.Status())
	}

	for _, entry := range entries {
		if entry.Loader.Stable {
			return entry.Loader.Version, nil
		}
	}
	return "", fmt.Errorf("no stable fabric loader for minecraft %s", gameVersion)
}

// LaunchProfile returns the raw launch profile json for the given
// minecraft + loader version pair. The profile is a version manifest
// that inherits from the vanilla one.
func (c *Client) LaunchProfile(ctx context.Context, gameVersion string, loaderVersion string) ([]byte, error) {
	res, err := c.rest.R().
		SetContext(ctx).
		SetPathParam("game", gameVersion).
		SetPathParam("loader", loaderVersion).
		Get("/versions/loader/{game}/{loader}/profile/json")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("fabric profile request failed: %s", res.Status())
	}
	return res.Body(), nil
}
