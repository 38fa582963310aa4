package domain

import (
	"errors"
	"testing"
)

func TestNormalizeID(t *testing.T) {
	tests := map[string]string{
		"PANTIN":      "pantin",
		"  Razo  ":    "razo",
		"baldaio":     "baldaio",
		"\tDoniños\n": "doniños",
	}
	for in, want := range tests {
		if got := NormalizeID(in); got != want {
			t.Errorf("NormalizeID(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestBeachValidate(t *testing.T) {
	valid := Beach{ID: "pantin", Name: "Pantín", Latitude: 43.63, Longitude: -8.11, Country: "España"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		beach Beach
	}{
		{"empty id", Beach{Name: "x"}},
		{"empty name", Beach{ID: "x", Name: "  "}},
		{"latitude out of range", Beach{ID: "x", Name: "x", Latitude: 91}},
		{"longitude out of range", Beach{ID: "x", Name: "x", Longitude: -181}},
	}

	for _, tt := range tests {
		err := tt.beach.Validate()
		if !errors.Is(err, ErrInvalidBeach) {
			t.Errorf("%s: expected ErrInvalidBeach, got %v", tt.name, err)
		}
	}
}

func TestProtectedSet(t *testing.T) {
	set := NewProtectedSet("Pantin", " ", "razo")

	if !set.Contains("pantin") {
		t.Error("Expected pantin to be protected")
	}
	if !set.Contains(" PANTIN ") {
		t.Error("Expected lookup to normalize the ID")
	}
	if set.Contains("baldaio") {
		t.Error("Expected baldaio not to be protected")
	}
	if set.Contains("") {
		t.Error("Blank IDs must not be protected")
	}

	var empty ProtectedSet
	if empty.Contains("pantin") {
		t.Error("Zero-value set must be empty")
	}
}
