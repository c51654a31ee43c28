package minecraft

import (
	"errors"
	"testing"

	"github.com/minepkg/mclaunch/internals/merrors"
)

const forgeMetadata = `<?xml version="1.0" encoding="UTF-8"?>
<metadata>
  <groupId>net.minecraftforge</groupId>
  <artifactId>forge</artifactId>
  <versioning>
    <latest>1.20.1-47.2.0</latest>
    <release>1.20.1-47.1.0</release>
    <versions>
      <version>1.20.1-47.1.0</version>
      <version>1.20.1-47.2.0</version>
    </versions>
  </versioning>
</metadata>`

func TestParseMavenMetadata(t *testing.T) {
	meta, err := ParseMavenMetadata(forgeMetadata)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Release != "1.20.1-47.1.0" {
		t.Errorf("Release = %s", meta.Release)
	}
	if meta.Latest != "1.20.1-47.2.0" {
		t.Errorf("Latest = %s", meta.Latest)
	}
	if len(meta.Versions) != 2 || meta.Versions[1] != "1.20.1-47.2.0" {
		t.Errorf("Versions = %v", meta.Versions)
	}

	_, err = ParseMavenMetadata("<metadata></metadata>")
	if !errors.Is(err, merrors.ErrSchema) {
		t.Errorf("expected schema error, got %v", err)
	}
}
