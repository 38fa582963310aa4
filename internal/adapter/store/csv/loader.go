// Package csv provides CSV-based beach seed loading.
package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go.ngs.io/surf-api/internal/domain"
)

var expectedHeaders = []string{"id", "nombre", "lat", "long", "pais"}

// BeachSource reads beaches from a CSV file or an http(s) URL.
type BeachSource struct {
	location   string
	httpClient *http.Client
}

// NewBeachSource creates a CSV beach source for a local path or URL.
func NewBeachSource(location string) *BeachSource {
	return &BeachSource{
		location:   location,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// LoadBeaches reads and validates every row of the source.
func (s *BeachSource) LoadBeaches(ctx context.Context) ([]domain.Beach, error) {
	data, err := s.loadBytes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read beach CSV %s: %w", s.location, err)
	}
	return ParseBeaches(bytes.NewReader(data))
}

// ParseBeaches parses a CSV with header id,nombre,lat,long,pais.
func ParseBeaches(r io.Reader) ([]domain.Beach, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	// Read header.
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Validate header.
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid CSV header: expected %v, got %v", expectedHeaders, header)
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid CSV header: expected column %d to be %s, got %s", i, expectedHeaders[i], h)
		}
	}

	beaches := make([]domain.Beach, 0)
	seen := make(map[string]bool)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %w", line, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %w", line, err)
		}

		b := domain.Beach{
			ID:        domain.NormalizeID(record[0]),
			Name:      strings.TrimSpace(record[1]),
			Latitude:  lat,
			Longitude: lon,
			Country:   strings.TrimSpace(record[4]),
		}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("line %d: %w: %s", line, domain.ErrDuplicateID, b.ID)
		}
		seen[b.ID] = true

		beaches = append(beaches, b)
	}

	return beaches, nil
}

func (s *BeachSource) loadBytes(ctx context.Context) ([]byte, error) {
	if !strings.HasPrefix(s.location, "http://") && !strings.HasPrefix(s.location, "https://") {
		//nolint:gosec // G304: Seed path comes from configuration.
		return os.ReadFile(s.location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}
	return io.ReadAll(resp.Body)
}
