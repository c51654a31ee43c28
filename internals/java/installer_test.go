package java

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/minepkg/mclaunch/internals/cache"
	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/minepkg/mclaunch/internals/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz/lzma"
)

func sha(b []byte) string {
	s := sha1.Sum(b)
	return hex.EncodeToString(s[:])
}

type runtimeServer struct {
	*httptest.Server
	files map[string][]byte
}

// newRuntimeServer serves a runtime index with one "java-runtime-gamma" component for linux.
// files are served below /files/
func newRuntimeServer(t *testing.T, manifest func(base string) FileManifest) *runtimeServer {
	t.Helper()
	rs := &runtimeServer{files: map[string][]byte{}}
	mux := http.NewServeMux()
	rs.Server = httptest.NewServer(mux)
	t.Cleanup(rs.Close)

	manifestBody, err := json.Marshal(manifest(rs.URL + "/files/"))
	require.NoError(t, err)

	index := RuntimeIndex{
		"linux": {
			"java-runtime-gamma": {{
				Manifest: Download{URL: rs.URL + "/manifest.json", Sha1: sha(manifestBody)},
			}},
			"jre-legacy": {},
		},
		"mac-os": {"java-runtime-gamma": {}},
	}
	index["linux"]["java-runtime-gamma"][0].Version.Name = "17.0.8"
	index["linux"]["java-runtime-gamma"][0].Version.Released = "2023-07-18T00:00:00+00:00"
	indexBody, err := json.Marshal(index)
	require.NoError(t, err)

	mux.HandleFunc("/all.json", func(w http.ResponseWriter, r *http.Request) { w.Write(indexBody) })
	mux.HandleFunc("/manifest.json", func(w http.ResponseWriter, r *http.Request) { w.Write(manifestBody) })
	mux.HandleFunc("/files/", func(w http.ResponseWriter, r *http.Request) {
		body, ok := rs.files[strings.TrimPrefix(r.URL.Path, "/files/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write(body)
	})
	return rs
}

func newTestInstaller(t *testing.T, rs *runtimeServer) (*Installer, string) {
	root := t.TempDir()
	inst := NewInstaller(root, rs.Client(), cache.New(rs.Client()))
	inst.IndexURL = rs.URL + "/all.json"
	inst.SetPlatform(platform.Info{OS: platform.Linux, Arch: "amd64"})
	return inst, root
}

func TestInstaller_Install(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("creates symlinks")
	}

	javaBin := []byte("#!/bin/sh\necho java\n")
	var compressed bytes.Buffer
	w, err := lzma.NewWriter(&compressed)
	require.NoError(t, err)
	w.Write(javaBin)
	require.NoError(t, w.Close())

	libjli := []byte("shared object")

	rs := newRuntimeServer(t, func(base string) FileManifest {
		m := FileManifest{Files: map[string]ManifestFile{}}
		m.Files["bin"] = ManifestFile{Type: TypeDirectory}
		m.Files["lib"] = ManifestFile{Type: TypeDirectory}

		java := ManifestFile{Type: TypeFile, Executable: true}
		java.Downloads = &FileDownloads{
			Raw:  &Download{URL: base + "java", Sha1: sha(javaBin)},
			LZMA: &Download{URL: base + "java.lzma", Sha1: sha(compressed.Bytes())},
		}
		m.Files["bin/java"] = java

		lib := ManifestFile{Type: TypeFile}
		lib.Downloads = &FileDownloads{Raw: &Download{URL: base + "libjli.so", Sha1: sha(libjli)}}
		m.Files["lib/libjli.so"] = lib

		m.Files["bin/libjli.so"] = ManifestFile{Type: TypeLink, Target: "../lib/libjli.so"}
		return m
	})
	// only the lzma variant of java is served
	rs.files["java.lzma"] = compressed.Bytes()
	rs.files["libjli.so"] = libjli

	inst, root := newTestInstaller(t, rs)
	require.NoError(t, inst.Install(context.Background(), "java-runtime-gamma"))

	base := filepath.Join(root, "runtime", "java-runtime-gamma", "linux")
	home := filepath.Join(base, "java-runtime-gamma")

	got, err := os.ReadFile(filepath.Join(home, "bin", "java"))
	require.NoError(t, err)
	assert.Equal(t, javaBin, got)

	stat, err := os.Stat(filepath.Join(home, "bin", "java"))
	require.NoError(t, err)
	assert.True(t, stat.Mode()&0100 != 0, "java should be executable")

	linked, err := os.ReadFile(filepath.Join(home, "bin", "libjli.so"))
	require.NoError(t, err)
	assert.Equal(t, libjli, linked)

	version, err := os.ReadFile(filepath.Join(base, ".version"))
	require.NoError(t, err)
	assert.Equal(t, "17.0.8", string(version))

	ledger, err := os.ReadFile(filepath.Join(base, "java-runtime-gamma.sha1"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(ledger)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "bin/java /#// "+sha(javaBin)+" "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "lib/libjli.so /#// "+sha(libjli)+" "), lines[1])

	exe, err := inst.Executable("java-runtime-gamma")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "bin", "java"), exe)
	assert.Equal(t, "17.0.8", inst.Runtime("java-runtime-gamma").Version())
}

func TestInstaller_LinkEscape(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"relative", "../../../../../../../../etc/passwd"},
		{"absolute", "/etc/passwd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newRuntimeServer(t, func(base string) FileManifest {
				return FileManifest{Files: map[string]ManifestFile{
					"bin/evil": {Type: TypeLink, Target: tt.target},
				}}
			})
			inst, root := newTestInstaller(t, rs)

			err := inst.Install(context.Background(), "java-runtime-gamma")
			require.ErrorIs(t, err, merrors.ErrPathEscape)

			_, err = os.Lstat(filepath.Join(root, "runtime", "java-runtime-gamma", "linux", "java-runtime-gamma", "bin", "evil"))
			assert.True(t, os.IsNotExist(err), "link should not be created")
		})
	}
}

func TestInstaller_FileEscape(t *testing.T) {
	rs := newRuntimeServer(t, func(base string) FileManifest {
		return FileManifest{Files: map[string]ManifestFile{
			"../../../../../escaped": {Type: TypeDirectory},
		}}
	})
	inst, _ := newTestInstaller(t, rs)
	require.ErrorIs(t, inst.Install(context.Background(), "java-runtime-gamma"), merrors.ErrPathEscape)
}

func TestInstaller_Missing(t *testing.T) {
	rs := newRuntimeServer(t, func(base string) FileManifest { return FileManifest{} })
	inst, _ := newTestInstaller(t, rs)
	ctx := context.Background()

	// unknown component
	require.ErrorIs(t, inst.Install(ctx, "java-runtime-omega"), merrors.ErrNotFound)
	// known but empty
	require.ErrorIs(t, inst.Install(ctx, "jre-legacy"), merrors.ErrNotFound)

	_, err := inst.Executable("java-runtime-gamma")
	require.ErrorIs(t, err, merrors.ErrNotFound)
}

func TestInstaller_ListAndInformation(t *testing.T) {
	rs := newRuntimeServer(t, func(base string) FileManifest { return FileManifest{} })
	inst, _ := newTestInstaller(t, rs)
	ctx := context.Background()

	components, err := inst.ListComponents(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"java-runtime-gamma", "jre-legacy"}, components)

	info, err := inst.Information(ctx, "java-runtime-gamma")
	require.NoError(t, err)
	assert.Equal(t, "17.0.8", info.Name)
	assert.Equal(t, "2023-07-18T00:00:00+00:00", info.Released)
}

func TestJava_Bin(t *testing.T) {
	tests := []struct {
		os   string
		want string
	}{
		{platform.Windows, filepath.Join("r", "c", "bin", "javaw.exe")},
		{platform.OSX, filepath.Join("r", "c", "jre.bundle", "Contents", "Home", "bin", "java")},
		{platform.Linux, filepath.Join("r", "c", "bin", "java")},
	}
	for _, tt := range tests {
		t.Run(tt.os, func(t *testing.T) {
			j := &Java{Component: "c", dir: "r", os: tt.os}
			assert.Equal(t, tt.want, j.Bin())
		})
	}
}
