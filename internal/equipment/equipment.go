// Package equipment scans document text for regulated equipment types from
// the knowledge-base catalog.
package equipment

import (
	"strings"

	"github.com/orcnlabs/certcheck/internal/knowledge"
	"github.com/orcnlabs/certcheck/internal/normtext"
)

// Match returns every catalog entry whose normalized name occurs as a
// substring of the normalized document text, deduplicated by id and in
// catalog order. An empty result means "equipment unknown" and is a valid
// outcome, not an error.
func Match(documentText string, catalog []knowledge.EquipmentEntry) []knowledge.EquipmentEntry {
	text := normtext.Normalize(documentText)
	if text == "" {
		return nil
	}
	seen := make(map[string]struct{}, len(catalog))
	var matched []knowledge.EquipmentEntry
	for _, entry := range catalog {
		name := normtext.Normalize(entry.Name)
		if name == "" {
			continue
		}
		if !strings.Contains(text, name) {
			continue
		}
		if _, dup := seen[entry.ID]; dup {
			continue
		}
		seen[entry.ID] = struct{}{}
		matched = append(matched, entry)
	}
	return matched
}

// IDs projects the matched entries onto their ids, preserving order.
func IDs(entries []knowledge.EquipmentEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}
