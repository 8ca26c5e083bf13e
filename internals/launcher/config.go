package launcher

import "github.com/mcvglass/mcv/internals/skinpack"

// Loader names, as stored in the config file
const (
	LoaderVanilla = "Vanilla"
	LoaderFabric  = "Fabric"
	LoaderForge   = "Forge"
)

// Config is the persisted launch configuration
type Config struct {
	Username string `json:"username" mapstructure:"username"`
	RamGB    int    `json:"ram_gb" mapstructure:"ram_gb"`
	Version  string `json:"version" mapstructure:"version"`
	Loader   string `json:"loader" mapstructure:"loader"`
	SkinType string `json:"skin_type" mapstructure:"skin_type"`
	SkinPath string `json:"skin_path" mapstructure:"skin_path"`
}

// DefaultConfig returns the configuration used when nothing was saved yet
func DefaultConfig() Config {
	return Config{
		Username: "MCVPlayer",
		RamGB:    4,
		Version:  "latest",
		Loader:   LoaderVanilla,
		SkinType: "url",
		SkinPath: skinpack.DefaultMarker,
	}
}
