package instances

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNatives(t *testing.T) {
	dir := t.TempDir()
	jar := filepath.Join(dir, "lwjgl-natives-linux.jar")
	require.NoError(t, os.WriteFile(jar, zipFile(t, map[string]string{
		"META-INF/MANIFEST.MF":    "Manifest-Version: 1.0",
		"liblwjgl64.so":           "lwjgl",
		"linux/x64/libglfw.so":    "glfw",
		"linux/x64/libglfw.so.sh": "excluded",
	}), 0644))

	natives := filepath.Join(dir, "natives")
	err := ExtractNatives(jar, natives, []string{"META-INF/", "linux/x64/libglfw.so.sh"})
	require.NoError(t, err)

	assert.Equal(t, "lwjgl", fileContent(t, filepath.Join(natives, "liblwjgl64.so")))
	assert.Equal(t, "glfw", fileContent(t, filepath.Join(natives, "linux", "x64", "libglfw.so")))
	assert.NoFileExists(t, filepath.Join(natives, "linux", "x64", "libglfw.so.sh"))
	assert.NoDirExists(t, filepath.Join(natives, "META-INF"))
}

func TestExtractNatives_Escape(t *testing.T) {
	dir := t.TempDir()
	jar := filepath.Join(dir, "evil.jar")
	require.NoError(t, os.WriteFile(jar, zipFile(t, map[string]string{
		"../evil.so": "evil",
	}), 0644))

	natives := filepath.Join(dir, "versions", "1.20", "natives")
	err := ExtractNatives(jar, natives, nil)
	assert.True(t, errors.Is(err, merrors.ErrPathEscape), "got %v", err)
	assert.NoFileExists(t, filepath.Join(dir, "versions", "1.20", "evil.so"))
}

func TestExtractNatives_NotAZip(t *testing.T) {
	dir := t.TempDir()
	jar := filepath.Join(dir, "broken.jar")
	require.NoError(t, os.WriteFile(jar, []byte("not a zip"), 0644))

	assert.Error(t, ExtractNatives(jar, filepath.Join(dir, "natives"), nil))
}
