package minecraft

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// AssetBaseURL is where asset objects are downloaded from
const AssetBaseURL = "https://resources.download.minecraft.net/"

// AssetIndex is just a map containing AssetObjects
type AssetIndex struct {
	Objects map[string]AssetObject `json:"objects"`
	// Virtual and MapToResources are set for legacy asset indexes
	Virtual        bool `json:"virtual,omitempty"`
	MapToResources bool `json:"map_to_resources,omitempty"`
}

// Names returns the asset names in sorted order
func (a *AssetIndex) Names() []string {
	names := maps.Keys(a.Objects)
	slices.Sort(names)
	return names
}

// AssetObject is one minecraft asset
type AssetObject struct {
	Hash string `json:"hash"`
	Size int    `json:"size"`
}

// UnixPath returns the path including the folder
// example: fe/fe32f3b8…
func (a *AssetObject) UnixPath() string {
	return a.Hash[:2] + "/" + a.Hash
}

// DownloadURL returns the download url for this asset. base defaults to AssetBaseURL
func (a *AssetObject) DownloadURL(base string) string {
	if base == "" {
		base = AssetBaseURL
	}
	return strings.TrimSuffix(base, "/") + "/" + a.UnixPath()
}
