// Package engine owns everything between "version id" and "running
// game": manifest resolution, file installation, loader installation
// and launch command construction.
package engine

import (
	"errors"

	"github.com/mcvglass/mcv/internals/datadir"
	"github.com/mcvglass/mcv/internals/fabric"
	"github.com/mcvglass/mcv/internals/forge"
	"github.com/mcvglass/mcv/internals/mojang"
)

var (
	// ErrUnknownVersion is returned when a version id exists neither
	// locally nor in the mojang version manifest
	ErrUnknownVersion = errors.New("supplied version could not be found")
	// ErrLoaderNotFound is returned when a loader install finished but
	// no matching version id showed up afterwards
	ErrLoaderNotFound = errors.New("loader install left no matching version behind")
)

// Client implements installation and command building on top of the
// launcher data directory
type Client struct {
	Layout *datadir.Layout
	Mojang *mojang.Client
	Fabric *fabric.Client
	Forge  *forge.Client
}

// New returns a Client operating on the given data directory
func New(layout *datadir.Layout) *Client {
	return &Client{
		Layout: layout,
		Mojang: mojang.New(),
		Fabric: fabric.New(),
		Forge:  forge.New(),
	}
}
