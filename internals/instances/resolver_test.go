package instances

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveManifest_Downloads(t *testing.T) {
	f := newFakeMojang(t)
	body := f.publish(t, vanilla("1.20"))
	inst := newTestInstance(t, f)

	man, err := inst.ResolveManifest(context.Background(), "1.20")
	require.NoError(t, err)
	assert.Equal(t, "1.20", man.ID)
	assert.Equal(t, "net.minecraft.client.main.Main", man.MainClass)

	// stored on disk with the checksum from the index
	sum, err := downloadmgr.Sha1File(inst.manifestPath("1.20"))
	require.NoError(t, err)
	assert.Equal(t, sha(body), sum)

	// second call uses the local file
	_, err = inst.ResolveManifest(context.Background(), "1.20")
	require.NoError(t, err)
	assert.Equal(t, 1, f.hits("/v1/packages/1.20.json"))
}

func TestResolveManifest_ChecksumMismatch(t *testing.T) {
	f := newFakeMojang(t)
	f.publish(t, vanilla("1.20"))
	// the served file changes after the index was published
	f.serve("/v1/packages/1.20.json", []byte(`{"id":"1.20","mainClass":"evil"}`))
	inst := newTestInstance(t, f)

	_, err := inst.ResolveManifest(context.Background(), "1.20")
	var checksumErr *merrors.ChecksumError
	require.ErrorAs(t, err, &checksumErr)
	assert.NoFileExists(t, inst.manifestPath("1.20"))
}

func TestResolveManifest_NotFound(t *testing.T) {
	f := newFakeMojang(t)
	f.publish(t, vanilla("1.20"))
	inst := newTestInstance(t, f)

	_, err := inst.ResolveManifest(context.Background(), "1.99")
	assert.True(t, errors.Is(err, merrors.ErrNotFound), "got %v", err)
}

func TestResolveManifest_InvalidJSON(t *testing.T) {
	inst := newTestInstance(t, nil)
	writeManifest(t, inst, vanilla("broken"))
	require.NoError(t, writeFile(inst.manifestPath("broken"), "{not json"))

	_, err := inst.ResolveManifest(context.Background(), "broken")
	assert.True(t, errors.Is(err, merrors.ErrSchema), "got %v", err)
}

func TestResolveManifest_Validates(t *testing.T) {
	inst := newTestInstance(t, nil)
	man := vanilla("no-main")
	man.MainClass = ""
	writeManifest(t, inst, man)

	_, err := inst.ResolveManifest(context.Background(), "no-main")
	var schemaErr *merrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "mainClass", schemaErr.Field)
}

func TestResolveManifest_Merge(t *testing.T) {
	inst := newTestInstance(t, nil)

	parent := vanilla("1.20.1")
	parent.Libraries = minecraft.Libraries{{Name: "com.mojang:brigadier:1.1.8"}}
	parent.Arguments.JVM = []minecraft.Argument{minecraft.LiteralArgument("-cp"), minecraft.LiteralArgument("${classpath}")}
	parent.Downloads = map[string]minecraft.Artifact{"client": {URL: "http://example.com/client.jar"}}
	writeManifest(t, inst, parent)

	child := &minecraft.LaunchManifest{
		ID:           "fabric-loader-0.14.21-1.20.1",
		InheritsFrom: "1.20.1",
		MainClass:    "net.fabricmc.loader.impl.launch.knot.KnotClient",
		Libraries:    minecraft.Libraries{{Name: "net.fabricmc:fabric-loader:0.14.21"}},
		Arguments: minecraft.Arguments{
			JVM: []minecraft.Argument{minecraft.LiteralArgument("-DFabricMcEmu= net.minecraft.client.main.Main ")},
		},
	}
	writeManifest(t, inst, child)

	man, err := inst.ResolveManifest(context.Background(), child.ID)
	require.NoError(t, err)

	assert.Equal(t, child.ID, man.ID)
	assert.Empty(t, man.InheritsFrom)
	assert.Equal(t, child.MainClass, man.MainClass)
	assert.Equal(t, "release", man.Type)
	require.Len(t, man.Libraries, 2)
	assert.Equal(t, "com.mojang:brigadier:1.1.8", man.Libraries[0].Name)
	assert.Equal(t, "net.fabricmc:fabric-loader:0.14.21", man.Libraries[1].Name)
	require.Len(t, man.Arguments.JVM, 3)
	assert.Equal(t, "-DFabricMcEmu= net.minecraft.client.main.Main ", man.Arguments.JVM[2].String())
	assert.Len(t, man.Arguments.Game, 4)
	assert.Contains(t, man.Downloads, "client")
}

// writeChain writes c0 -> c1 -> ... -> c{links} where the last one has no parent
func writeChain(t *testing.T, inst *Instance, links int) {
	for i := 0; i < links; i++ {
		man := &minecraft.LaunchManifest{ID: fmt.Sprintf("c%d", i), InheritsFrom: fmt.Sprintf("c%d", i+1)}
		writeManifest(t, inst, man)
	}
	writeManifest(t, inst, vanilla(fmt.Sprintf("c%d", links)))
}

func TestResolveManifest_RecursionLimit(t *testing.T) {
	tests := []struct {
		links   int
		wantErr bool
	}{
		{links: 1},
		{links: 8},
		{links: 9, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d links", tt.links), func(t *testing.T) {
			inst := newTestInstance(t, nil)
			writeChain(t, inst, tt.links)

			_, err := inst.ResolveManifest(context.Background(), "c0")
			if tt.wantErr {
				assert.True(t, errors.Is(err, merrors.ErrRecursionLimit), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveManifest_Cycle(t *testing.T) {
	inst := newTestInstance(t, nil)
	man := vanilla("loop")
	man.InheritsFrom = "loop"
	writeManifest(t, inst, man)

	_, err := inst.ResolveManifest(context.Background(), "loop")
	assert.True(t, errors.Is(err, merrors.ErrRecursionLimit), "got %v", err)
}

func TestResolveManifest_PathEscape(t *testing.T) {
	inst := newTestInstance(t, nil)

	_, err := inst.ResolveManifest(context.Background(), "../../etc")
	assert.True(t, errors.Is(err, merrors.ErrPathEscape), "got %v", err)
}
