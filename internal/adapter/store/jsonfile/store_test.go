package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.ngs.io/surf-api/internal/domain"
)

func sampleRegistry() map[string]domain.Beach {
	return map[string]domain.Beach{
		"pantin":  {ID: "pantin", Name: "Pantín", Latitude: 43.63, Longitude: -8.11, Country: "España"},
		"itacare": {ID: "itacare", Name: "Itacaré", Latitude: -14.28, Longitude: -38.99, Country: "Brasil"},
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "playas.json"))

	beaches, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if len(beaches) != 0 {
		t.Errorf("Expected empty registry, got %d entries", len(beaches))
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(filepath.Join(t.TempDir(), "data", "playas.json"))
	want := sampleRegistry()

	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestStore_FileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playas.json")
	s := NewStore(path)

	if err := s.Save(context.Background(), sampleRegistry()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, `"nombre": "Pantín"`) {
		t.Errorf("Expected literal non-ASCII name, got:\n%s", content)
	}
	if !strings.Contains(content, "\n    \"itacare\": {") {
		t.Errorf("Expected 4-space indentation, got:\n%s", content)
	}
	for _, key := range []string{`"lat"`, `"long"`, `"pais"`} {
		if !strings.Contains(content, key) {
			t.Errorf("Expected key %s in file, got:\n%s", key, content)
		}
	}
	if strings.Contains(content, `"ID"`) {
		t.Errorf("ID must only appear as the object key, got:\n%s", content)
	}
}

func TestStore_SaveRewritesWholeFile(t *testing.T) {
	ctx := context.Background()
	s := NewStore(filepath.Join(t.TempDir(), "playas.json"))

	if err := s.Save(ctx, sampleRegistry()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	only := map[string]domain.Beach{
		"razo": {ID: "razo", Name: "Razo", Latitude: 43.29, Longitude: -8.7, Country: "España"},
	}
	if err := s.Save(ctx, only); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, only) {
		t.Errorf("Expected file to contain only the last registry, got %+v", got)
	}
}

func TestStore_LoadNormalizesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playas.json")
	content := `{"Pantin": {"lat": 43.63, "long": -8.11, "nombre": "Pantín", "pais": "España"}}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, ok := got["pantin"]
	if !ok {
		t.Fatalf("Expected lowercase key, got %+v", got)
	}
	if b.ID != "pantin" || b.Name != "Pantín" {
		t.Errorf("Unexpected beach: %+v", b)
	}
}

func TestStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playas.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewStore(path).Load(context.Background())
	if !errors.Is(err, domain.ErrStorage) {
		t.Errorf("Expected ErrStorage, got %v", err)
	}
}
