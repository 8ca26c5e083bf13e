package engine

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// InstalledVersions returns the ids of all locally installed versions,
// sorted lexicographically. A version counts as installed when its
// directory contains the matching <id>.json.
func (c *Client) InstalledVersions() ([]string, error) {
	entries, err := os.ReadDir(c.Layout.VersionsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		manifest := filepath.Join(c.Layout.VersionsDir(), e.Name(), e.Name()+".json")
		if _, err := os.Stat(manifest); err == nil {
			ids = append(ids, e.Name())
		}
	}

	sort.Strings(ids)
	return ids, nil
}

// FindLoaderVersion scans the installed versions for one that belongs
// to the given loader marker ("fabric", "forge") and base version.
// Multiple matches are possible (several loader builds for one base
// version); the lexicographically smallest id wins so repeated runs
// always pick the same one.
func (c *Client) FindLoaderVersion(marker string, baseID string) (string, error) {
	installed, err := c.InstalledVersions()
	if err != nil {
		return "", err
	}

	for _, id := range installed {
		lower := strings.ToLower(id)
		if strings.Contains(lower, marker) && strings.Contains(id, baseID) {
			return id, nil
		}
	}
	return "", nil
}
