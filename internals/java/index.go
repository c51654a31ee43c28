package java

// DefaultIndexURL lists every java runtime mojang provides, per platform
const DefaultIndexURL = "https://launchermeta.mojang.com/v1/products/java-runtime/2ec0cc96c44e5a76b9c8b7c39df7210883d12871/all.json"

// RuntimeIndex maps platform -> component -> available versions
type RuntimeIndex map[string]map[string][]RuntimeEntry

// RuntimeEntry is one available version of a runtime component
type RuntimeEntry struct {
	Availability struct {
		Group    int `json:"group"`
		Progress int `json:"progress"`
	} `json:"availability"`
	Manifest Download `json:"manifest"`
	Version  struct {
		Name     string `json:"name"`
		Released string `json:"released"`
	} `json:"version"`
}

// Download is a file that can be downloaded
type Download struct {
	Sha1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// Types of a ManifestFile
const (
	TypeFile      = "file"
	TypeDirectory = "directory"
	TypeLink      = "link"
)

// FileManifest lists every file of one runtime version, keyed by relative path
type FileManifest struct {
	Files map[string]ManifestFile `json:"files"`
}

// ManifestFile is a file, directory or link of a runtime
type ManifestFile struct {
	Type       string         `json:"type"`
	Downloads  *FileDownloads `json:"downloads,omitempty"`
	Executable bool           `json:"executable,omitempty"`
	// Target is set for links. It is relative to the directory of the link
	Target string `json:"target,omitempty"`
}

// FileDownloads are the variants a file can be downloaded as
type FileDownloads struct {
	Raw  *Download `json:"raw,omitempty"`
	LZMA *Download `json:"lzma,omitempty"`
}

// Information describes the runtime version that would be installed
type Information struct {
	Name     string `json:"name"`
	Released string `json:"released"`
}
