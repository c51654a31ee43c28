package minecraft

// DefaultVersionIndexURL is the index of all official versions
const DefaultVersionIndexURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

// Version types used in the index
const (
	VersionTypeRelease  = "release"
	VersionTypeSnapshot = "snapshot"
	VersionTypeOldBeta  = "old_beta"
	VersionTypeOldAlpha = "old_alpha"
)

// VersionIndex is the list of all versions that can be installed
type VersionIndex struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []VersionIndexEntry `json:"versions"`
}

// VersionIndexEntry points to the manifest of a single version
type VersionIndexEntry struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	Time            string `json:"time,omitempty"`
	ReleaseTime     string `json:"releaseTime"`
	Sha1            string `json:"sha1"`
	ComplianceLevel int    `json:"complianceLevel"`
}

// Find returns the entry with the given id
func (v *VersionIndex) Find(id string) (*VersionIndexEntry, bool) {
	for i := range v.Versions {
		if v.Versions[i].ID == id {
			return &v.Versions[i], true
		}
	}
	return nil, false
}

// VersionInfo is a short description of a version, used for listings
type VersionInfo struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	ReleaseTime     string `json:"releaseTime"`
	ComplianceLevel int    `json:"complianceLevel"`
}
