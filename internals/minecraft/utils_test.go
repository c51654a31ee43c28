package minecraft

import (
	"encoding/json"
	"testing"
)

func TestStringSlice(t *testing.T) {
	var s stringSlice
	err := json.Unmarshal([]byte(`["a", "b"]`), &s)
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "a b" || len(s) != 2 {
		t.Fatalf("Expected 'a b', got '%s'", s.String())
	}

	err = json.Unmarshal([]byte(`"a b"`), &s)
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "a b" || len(s) != 1 {
		t.Fatalf("Expected single 'a b', got '%s'", s.String())
	}

	if err := json.Unmarshal([]byte(`42`), &s); err == nil {
		t.Fatal("Expected an error for a number")
	}
}
