package config

import (
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		kind    int
		value   string
		want    interface{}
		wantErr bool
	}{
		{configKindBool, "yes", true, false},
		{configKindBool, "OFF", false, false},
		{configKindBool, "maybe", false, true},
		{configKindString, "https://example.com", "https://example.com", false},
		{configKindFloat, "2.5", 2.5, false},
		{configKindFloat, "fast", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseValue(tt.kind, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigKeysHaveHelp(t *testing.T) {
	for key, entry := range config {
		if entry.help == "" {
			t.Errorf("config key %s has no help text", key)
		}
	}
}
