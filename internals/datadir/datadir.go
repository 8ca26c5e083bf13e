package datadir

import (
	"os"
	"path/filepath"
)

// Name of the directory holding all launcher data. Lives inside the
// user config dir (%APPDATA% on windows).
const Name = "MCV_LauncherData"

// SkinPackName is the folder name of the generated skin resource pack.
// The id minecraft uses in options.txt is "file/" + SkinPackName.
const SkinPackName = "MCV_SkinPack"

// Layout describes the launcher data directory. All components get their
// paths from here instead of global constants.
type Layout struct {
	// Root is the directory containing everything required to run minecraft
	Root string
}

// Detect returns the default layout inside the user config directory
func Detect() (*Layout, error) {
	confDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &Layout{Root: filepath.Join(confDir, Name)}, nil
}

// MkdirAll creates the root & runtime directories if they are missing
func (l *Layout) MkdirAll() error {
	return os.MkdirAll(l.RuntimeDir(), 0755)
}

// RuntimeDir returns the path to the portable java runtime directory
func (l *Layout) RuntimeDir() string {
	return filepath.Join(l.Root, "runtime")
}

// VersionsDir returns the path to the versions directory
func (l *Layout) VersionsDir() string {
	return filepath.Join(l.Root, "versions")
}

// AssetsDir returns the path to the assets directory
func (l *Layout) AssetsDir() string {
	return filepath.Join(l.Root, "assets")
}

// LibrariesDir returns the path to the libraries directory
func (l *Layout) LibrariesDir() string {
	return filepath.Join(l.Root, "libraries")
}

// ModsDir returns the path to the mods directory
func (l *Layout) ModsDir() string {
	return filepath.Join(l.Root, "mods")
}

// SkinPackDir returns the path of the generated skin resource pack
func (l *Layout) SkinPackDir() string {
	return filepath.Join(l.Root, "resourcepacks", SkinPackName)
}

// OptionsFile returns the path to minecrafts options.txt
func (l *Layout) OptionsFile() string {
	return filepath.Join(l.Root, "options.txt")
}

// ConfigFile returns the path of the persisted launcher config
func (l *Layout) ConfigFile() string {
	return filepath.Join(l.Root, "config.json")
}
