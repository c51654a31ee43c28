package minecraft

import (
	"reflect"
	"testing"
)

func TestAssetObject_DownloadURL(t *testing.T) {
	asset := AssetObject{Hash: "bdf48ef6b5d0d23bbb02e17d04865216179f510a"}

	tests := []struct {
		name string
		base string
		want string
	}{
		{"default", "", "https://resources.download.minecraft.net/bd/bdf48ef6b5d0d23bbb02e17d04865216179f510a"},
		{"mirror", "http://mirror.local/objects", "http://mirror.local/objects/bd/bdf48ef6b5d0d23bbb02e17d04865216179f510a"},
		{"trailing slash", "http://mirror.local/", "http://mirror.local/bd/bdf48ef6b5d0d23bbb02e17d04865216179f510a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := asset.DownloadURL(tt.base); got != tt.want {
				t.Errorf("DownloadURL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssetIndex_Names(t *testing.T) {
	index := AssetIndex{Objects: map[string]AssetObject{
		"minecraft/sounds/b.ogg": {},
		"icons/icon_16x16.png":   {},
		"minecraft/sounds/a.ogg": {},
	}}
	want := []string{"icons/icon_16x16.png", "minecraft/sounds/a.ogg", "minecraft/sounds/b.ogg"}
	if got := index.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
