package instances

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(versions []minecraft.VersionInfo) []string {
	s := make([]string, 0, len(versions))
	for _, v := range versions {
		s = append(s, v.ID)
	}
	return s
}

func TestGetInstalledVersions(t *testing.T) {
	inst := newTestInstance(t, nil)

	versions, err := inst.GetInstalledVersions()
	require.NoError(t, err)
	assert.Empty(t, versions)

	writeManifest(t, inst, vanilla("1.20"))
	writeManifest(t, inst, vanilla("1.19.4"))
	require.NoError(t, os.MkdirAll(inst.VersionDir("leftover"), os.ModePerm))
	require.NoError(t, writeFile(inst.manifestPath("broken"), "{"))

	versions, err = inst.GetInstalledVersions()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1.20", "1.19.4"}, ids(versions))
}

func TestGetAvailableVersions(t *testing.T) {
	f := newFakeMojang(t)
	f.publish(t, vanilla("1.20"))
	f.publish(t, vanilla("1.19.4"))
	inst := newTestInstance(t, f)

	writeManifest(t, inst, vanilla("1.20"))
	writeManifest(t, inst, vanilla("fabric-loader-0.14.21-1.20"))

	versions, err := inst.GetAvailableVersions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1.20", "1.19.4", "fabric-loader-0.14.21-1.20"}, ids(versions))
}

func TestGetLatestVersion(t *testing.T) {
	f := newFakeMojang(t)
	f.index.Latest.Release = "1.20.1"
	f.index.Latest.Snapshot = "23w31a"
	inst := newTestInstance(t, f)

	release, snapshot, err := inst.GetLatestVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", release)
	assert.Equal(t, "23w31a", snapshot)

	// the index is cached
	_, _, err = inst.GetLatestVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, f.hits("/version_manifest_v2.json"))
}

func Test_thatSemverLibraryDoesWhatWeWant(t *testing.T) {
	// minecraft versions are not always full semver versions
	for _, v := range []string{"1.20", "1.8.9", "1.20.1"} {
		if _, err := semver.NewVersion(v); err != nil {
			t.Errorf("semver library is broken, %s should be a valid version", v)
		}
	}
	for _, v := range []string{"23w31a", "1.20.1 Pre-Release 1", "b1.7.3"} {
		if _, err := semver.NewVersion(v); err == nil {
			t.Errorf("semver library is broken, %s should NOT be a valid version", v)
		}
	}
}

func TestFilterVersions(t *testing.T) {
	versions := []minecraft.VersionInfo{
		{ID: "23w31a"}, {ID: "1.20.1"}, {ID: "1.20"}, {ID: "1.19.4"}, {ID: "1.8.9"}, {ID: "b1.7.3"},
	}

	tests := []struct {
		constraint string
		want       []string
		wantErr    bool
	}{
		{constraint: "~1.20", want: []string{"1.20.1", "1.20"}},
		{constraint: ">=1.19 <1.20", want: []string{"1.19.4"}},
		{constraint: "*", want: []string{"1.20.1", "1.20", "1.19.4", "1.8.9"}},
		{constraint: "2.x", want: []string{}},
		{constraint: "not a constraint", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			got, err := FilterVersions(versions, tt.constraint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FilterVersions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestResolveRequirement(t *testing.T) {
	f := newFakeMojang(t)
	f.publish(t, vanilla("1.20.1"))
	f.publish(t, vanilla("1.20"))
	f.publish(t, vanilla("1.19.4"))
	inst := newTestInstance(t, f)

	v, err := inst.ResolveRequirement(context.Background(), "~1.19")
	require.NoError(t, err)
	assert.Equal(t, "1.19.4", v.ID)

	v, err = inst.ResolveRequirement(context.Background(), ">=1.20")
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", v.ID)

	_, err = inst.ResolveRequirement(context.Background(), ">=2.0")
	assert.Error(t, err)
}

func TestOutdatedVersions(t *testing.T) {
	f := newFakeMojang(t)
	f.publish(t, vanilla("1.20"))
	f.publish(t, vanilla("1.19.4"))
	inst := newTestInstance(t, f)

	_, err := inst.ResolveManifest(context.Background(), "1.20")
	require.NoError(t, err)
	// local copy differs from the published one
	old := vanilla("1.19.4")
	old.ComplianceLevel = 0
	old.Type = "snapshot"
	writeManifest(t, inst, old)
	writeManifest(t, inst, vanilla("custom"))

	outdated, err := inst.OutdatedVersions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1.19.4"}, outdated)

	require.NoError(t, inst.Refresh(context.Background(), "1.19.4"))
	assert.NoFileExists(t, inst.manifestPath("1.19.4"))
	// refreshing twice is fine
	require.NoError(t, inst.Refresh(context.Background(), "1.19.4"))
}

func TestRefresh_KeepsLocalOnlyVersions(t *testing.T) {
	f := newFakeMojang(t)
	f.publish(t, vanilla("1.20"))
	inst := newTestInstance(t, f)
	ctx := context.Background()

	loader := vanilla("fabric-loader")
	writeManifest(t, inst, loader)
	_, err := inst.ResolveManifest(ctx, "fabric-loader")
	require.NoError(t, err)

	err = inst.Refresh(ctx, "fabric-loader")
	require.ErrorIs(t, err, merrors.ErrNotFound)
	assert.FileExists(t, inst.manifestPath("fabric-loader"))

	_, err = inst.ResolveManifest(ctx, "fabric-loader")
	require.NoError(t, err)
}

func TestClean(t *testing.T) {
	inst := newTestInstance(t, nil)
	require.NoError(t, inst.Clean())

	natives := filepath.Join(inst.NativesDir("1.20"), "liblwjgl.so")
	leftover := filepath.Join(inst.LibrariesDir(), "com", "mojang", "patchy-1.1.jar.123.tmp")
	library := filepath.Join(inst.LibrariesDir(), "com", "mojang", "patchy-1.1.jar")
	save := filepath.Join(inst.Root, "saves", "world", "level.dat.tmp")
	modLeftover := filepath.Join(inst.Root, "mods", "sodium.jar.4711.tmp")
	userTmp := filepath.Join(inst.Root, "config", "settings.tmp")
	assetTmp := filepath.Join(inst.AssetsDir(), "notes.tmp")
	for _, p := range []string{natives, leftover, library, save, modLeftover, userTmp, assetTmp} {
		require.NoError(t, writeFile(p, "x"))
	}
	writeManifest(t, inst, vanilla("1.20"))

	require.NoError(t, inst.Clean())
	assert.NoDirExists(t, inst.NativesDir("1.20"))
	assert.NoFileExists(t, leftover)
	assert.FileExists(t, library)
	assert.FileExists(t, save)
	assert.FileExists(t, inst.manifestPath("1.20"))
	// only the install directories are cleaned, and only download leftovers
	assert.FileExists(t, modLeftover)
	assert.FileExists(t, userTmp)
	assert.FileExists(t, assetTmp)
}
