package instances

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/platform"
	"github.com/stretchr/testify/require"
)

var linux = platform.Info{OS: platform.Linux, Arch: "amd64", Version: "6.1.0"}

func sha(b []byte) string {
	s := sha1.Sum(b)
	return hex.EncodeToString(s[:])
}

// fakeMojang serves a version index, version manifests and arbitrary files
type fakeMojang struct {
	*httptest.Server

	mu       sync.Mutex
	files    map[string][]byte
	index    minecraft.VersionIndex
	requests map[string]int
}

func newFakeMojang(t *testing.T) *fakeMojang {
	t.Helper()
	f := &fakeMojang{files: map[string][]byte{}, requests: map[string]int{}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeMojang) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests[r.URL.Path]++

	if r.URL.Path == "/version_manifest_v2.json" {
		json.NewEncoder(w).Encode(f.index)
		return
	}
	body, ok := f.files[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Write(body)
}

// serve makes body available at path and returns the url
func (f *fakeMojang) serve(path string, body []byte) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = body
	return f.URL + path
}

func (f *fakeMojang) hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[path]
}

// publish serves the manifest and adds it to the version index
func (f *fakeMojang) publish(t *testing.T, man *minecraft.LaunchManifest) []byte {
	t.Helper()
	body, err := json.Marshal(man)
	require.NoError(t, err)
	url := f.serve("/v1/packages/"+man.ID+".json", body)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.index.Versions = append(f.index.Versions, minecraft.VersionIndexEntry{
		ID:          man.ID,
		Type:        man.Type,
		URL:         url,
		ReleaseTime: man.ReleaseTime,
		Sha1:        sha(body),
	})
	return body
}

func newTestInstance(t *testing.T, f *fakeMojang) *Instance {
	t.Helper()
	var client *http.Client
	if f != nil {
		client = f.Client()
	}
	inst := New(t.TempDir(), client)
	inst.Platform = linux
	inst.Java.SetPlatform(linux)
	if f != nil {
		inst.VersionIndexURL = f.URL + "/version_manifest_v2.json"
		inst.ResourcesURL = f.URL + "/resources"
		inst.Java.IndexURL = f.URL + "/runtime/all.json"
	}
	return inst
}

// writeManifest places a manifest in the versions directory like an installed version
func writeManifest(t *testing.T, inst *Instance, man *minecraft.LaunchManifest) {
	t.Helper()
	body, err := json.Marshal(man)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(inst.VersionDir(man.ID), os.ModePerm))
	require.NoError(t, os.WriteFile(inst.manifestPath(man.ID), body, 0644))
}

// vanilla returns a minimal launchable manifest
func vanilla(id string) *minecraft.LaunchManifest {
	return &minecraft.LaunchManifest{
		ID:        id,
		Type:      "release",
		MainClass: "net.minecraft.client.main.Main",
		Arguments: minecraft.Arguments{
			Game: []minecraft.Argument{
				minecraft.LiteralArgument("--username"),
				minecraft.LiteralArgument("${auth_player_name}"),
				minecraft.LiteralArgument("--version"),
				minecraft.LiteralArgument("${version_name}"),
			},
		},
	}
}

// zipFile returns a zip archive containing the given files
func zipFile(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func fileContent(t *testing.T, p string) string {
	t.Helper()
	buf, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(buf)
}

func TestInstance_Dirs(t *testing.T) {
	inst := New("/games/mc", nil)
	want := map[string]string{
		inst.VersionsDir():          "/games/mc/versions",
		inst.VersionDir("1.20"):     "/games/mc/versions/1.20",
		inst.AssetsDir():            "/games/mc/assets",
		inst.LibrariesDir():         "/games/mc/libraries",
		inst.NativesDir("1.20"):     "/games/mc/versions/1.20/natives",
		inst.manifestPath("1.20.1"): "/games/mc/versions/1.20.1/1.20.1.json",
	}
	for got, expected := range want {
		if got != filepath.FromSlash(expected) {
			t.Errorf("got %s, want %s", got, filepath.FromSlash(expected))
		}
	}
}

func writeFile(p string, content string) error {
	if err := os.MkdirAll(filepath.Dir(p), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(content), 0644)
}
