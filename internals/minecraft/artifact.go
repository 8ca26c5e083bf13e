package minecraft

import "encoding/json"

// Artifact is a downloadable file entry in a launch manifest: the
// client jar itself or a library jar. Path is empty for the client.
type Artifact struct {
	Path string `json:"path,omitempty"`
	Sha1 string `json:"sha1"`
	// Size in bytes. json.Number because some manifests quote it
	Size json.Number `json:"size"`
	URL  string      `json:"url"`
}
