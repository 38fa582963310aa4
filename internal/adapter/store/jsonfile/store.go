// Package jsonfile stores the beach registry as a single indented JSON file.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.ngs.io/surf-api/internal/domain"
)

// Store reads and writes the registry file.
type Store struct {
	path string
}

// NewStore creates a JSON file store at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the registry file. A missing file yields an empty registry.
func (s *Store) Load(_ context.Context) (map[string]domain.Beach, error) {
	//nolint:gosec // G304: Path comes from configuration.
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]domain.Beach{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", domain.ErrStorage, s.path, err)
	}

	raw := make(map[string]domain.Beach)
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrStorage, s.path, err)
		}
	}

	beaches := make(map[string]domain.Beach, len(raw))
	for id, b := range raw {
		b.ID = domain.NormalizeID(id)
		beaches[b.ID] = b
	}
	return beaches, nil
}

// Save rewrites the whole registry file. The new content is written to a
// temporary file in the same directory and renamed over the old one.
func (s *Store) Save(_ context.Context, beaches map[string]domain.Beach) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(beaches); err != nil {
		return fmt.Errorf("%w: failed to encode registry: %v", domain.ErrStorage, err)
	}

	dir := filepath.Dir(s.path)
	//nolint:gosec // G301: Standard data directory permissions.
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", domain.ErrStorage, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", domain.ErrStorage, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	//nolint:gosec // G302: Registry file is meant to be human-readable.
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: failed to chmod %s: %v", domain.ErrStorage, tmpName, err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: failed to write %s: %v", domain.ErrStorage, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %v", domain.ErrStorage, tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: failed to replace %s: %v", domain.ErrStorage, s.path, err)
	}
	return nil
}
