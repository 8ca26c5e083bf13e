// Package forge resolves and installs the forge mod loader.
// Forge has no profile api; installation runs the official installer
// jar with a local java runtime.
package forge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	promotionsURL = "https://files.minecraftforge.net/net/minecraftforge/forge/promotions_slim.json"
	mavenRoot     = "https://maven.minecraftforge.net/net/minecraftforge/forge"
)

// ErrUnsupportedVersion is returned when forge publishes no build for
// the requested minecraft version. Not retryable.
var ErrUnsupportedVersion = errors.New("forge does not support this minecraft version")

// Client resolves promoted forge builds
type Client struct {
	rest *resty.Client
	// PromotionsURL can be pointed at a test server
	PromotionsURL string
}

// New returns a new forge promotions client
func New() *Client {
	return &Client{rest: resty.New(), PromotionsURL: promotionsURL}
}

type promotions struct {
	Promos map[string]string `json:"promos"`
}

// PromotedVersion returns the "<mc>-<forge>" version string of the
// recommended (or, failing that, latest) forge build for the given
// minecraft version. ErrUnsupportedVersion if there is neither.
func (c *Client) PromotedVersion(ctx context.Context, mcVersion string) (string, error) {
	var promos promotions
	res, err := c.rest.R().
		SetContext(ctx).
		SetResult(&promos).
		ForceContentType("application/json").
		Get(c.PromotionsURL)
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", fmt.Errorf("forge promotions request failed: %s", res.Status())
	}

	if v, ok := promos.Promos[mcVersion+"-recommended"]; ok {
		return mcVersion + "-" + v, nil
	}
	if v, ok := promos.Promos[mcVersion+"-latest"]; ok {
		return mcVersion + "-" + v, nil
	}
	return "", ErrUnsupportedVersion
}

// InstallerURL returns the download url of the installer jar for a
// full "<mc>-<forge>" version
func InstallerURL(fullVersion string) string {
	return fmt.Sprintf("%s/%s/forge-%s-installer.jar", mavenRoot, fullVersion, fullVersion)
}

// RunInstaller executes the downloaded installer jar against the given
// data directory. The installer writes the forge version json and the
// processed client files into that directory.
func RunInstaller(ctx context.Context, javaBin string, installerJar string, dataDir string) error {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, javaBin, "-jar", installerJar, "--installClient", dataDir)
	cmd.Stdout = &out
	cmd.Stderr = &out
	cmd.Dir = dataDir

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("forge installer failed: %w\n%s", err, tail(out.String(), 20))
	}
	return nil
}

// tail returns the last n lines of s
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
