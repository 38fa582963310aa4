// Package domain holds the beach registry and surf forecast types shared by
// the adapters, use cases and HTTP layer.
package domain

import (
	"fmt"
	"strings"
)

// Beach is a named, coordinate-tagged surf spot.
// The JSON tags match the on-disk registry format.
type Beach struct {
	ID        string  `json:"-"`
	Name      string  `json:"nombre"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"long"`
	Country   string  `json:"pais"`
}

// NormalizeID trims whitespace and lowercases a beach identifier.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Validate checks that a beach can be registered.
func (b Beach) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidBeach)
	}
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidBeach)
	}
	if b.Latitude < -90 || b.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrInvalidBeach)
	}
	if b.Longitude < -180 || b.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrInvalidBeach)
	}
	return nil
}

// ProtectedSet is an immutable set of beach IDs that may never be deleted.
type ProtectedSet struct {
	ids map[string]struct{}
}

// NewProtectedSet builds a ProtectedSet from the given IDs.
// IDs are normalized; blanks are ignored.
func NewProtectedSet(ids ...string) ProtectedSet {
	set := ProtectedSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		id = NormalizeID(id)
		if id == "" {
			continue
		}
		set.ids[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is protected.
func (p ProtectedSet) Contains(id string) bool {
	_, ok := p.ids[NormalizeID(id)]
	return ok
}
