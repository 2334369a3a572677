package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the on-disk JSON shape consumed by the CLI and demo:
// a property record plus optional simulation-parameter overrides.
//
// Example:
//
//	{
//	  "property": { "purchase_price": 300000, ... },
//	  "simulation": { "simulations": 5000, "years": 10 }
//	}
//
// Both sections are kept as plain mappings so that presence/absence of
// fields is observable (required-field checks, default merging).
type Document struct {
	Property   map[string]any `json:"property"`
	Simulation map[string]any `json:"simulation,omitempty"`
}

// LoadDocument reads and validates a property document from disk.
// The returned simulation map may be nil when the document omits it.
func LoadDocument(path string) (*PropertyProfile, map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.Property == nil {
		return nil, nil, fmt.Errorf("%s: missing \"property\" section", path)
	}
	profile, err := FromMap(doc.Property)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return profile, doc.Simulation, nil
}
