package minecraft

import "encoding/json"

// Artifact is an object describing a "thing" that can be downloaded
// It is used to download libraries and the minecraft client itself
type Artifact struct {
	// Path of the jar file relative to the libraries folder
	// Path is not set for the minecraft client itself
	Path string `json:"path,omitempty"`
	Sha1 string `json:"sha1"`
	// Size in bytes
	Size json.Number `json:"size,omitempty"`
	// URL to download the jar file
	URL string `json:"url"`
}

// SizeBytes returns the size or 0 if it is unknown
func (a Artifact) SizeBytes() int64 {
	n, err := a.Size.Int64()
	if err != nil {
		return 0
	}
	return n
}
