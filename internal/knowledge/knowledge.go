// Package knowledge holds the read-only reference tables the analysis
// pipeline matches against: the equipment catalog, the requirement table,
// the standards catalog and the issuer registry. Tables are loaded once per
// batch run and never mutated afterwards.
package knowledge

// EquipmentEntry is one regulated equipment type from the catalog. Identity
// is ID; Name is the key matched against document text (accent- and
// case-insensitive substring).
type EquipmentEntry struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
}

// RequirementRule maps one equipment id to the standard ids mandatorily
// required for it. Order of StandardIDs is preserved in reports.
type RequirementRule struct {
	EquipmentID string   `json:"equipment_id" yaml:"equipment_id"`
	StandardIDs []string `json:"standard_ids" yaml:"standard_ids"`
}

// StandardInfo carries human-facing detail for a standard id. It is used
// only when rendering results, never for matching.
type StandardInfo struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	ReferenceURL string `json:"reference_url,omitempty" yaml:"reference_url,omitempty"`
}

// IssuerRecord maps a certifying body's registration number (CNPJ) to its
// display name. Lookup by registration is informational; issuer routing in
// the pipeline is keyed by literal text signatures.
type IssuerRecord struct {
	Registration string `json:"registration" yaml:"registration"`
	Name         string `json:"name" yaml:"name"`
}

// Base is the loaded knowledge base. An empty table means "no constraints
// available" for that concern, never an error.
type Base struct {
	Equipment    []EquipmentEntry
	Requirements []RequirementRule
	Standards    []StandardInfo
	Issuers      []IssuerRecord
}

// StandardByID returns the display record for a standard id.
func (b *Base) StandardByID(id string) (StandardInfo, bool) {
	for _, s := range b.Standards {
		if s.ID == id {
			return s, true
		}
	}
	return StandardInfo{}, false
}

// IssuerByRegistration returns the issuer record for a registration number.
func (b *Base) IssuerByRegistration(reg string) (IssuerRecord, bool) {
	if reg == "" {
		return IssuerRecord{}, false
	}
	for _, o := range b.Issuers {
		if o.Registration == reg {
			return o, true
		}
	}
	return IssuerRecord{}, false
}

// RequiredFor computes the ordered union of required standard ids over the
// given equipment ids. When the table carries duplicate rules for one
// equipment id only the first is effective.
func (b *Base) RequiredFor(equipmentIDs []string) []string {
	wanted := make(map[string]struct{}, len(equipmentIDs))
	for _, id := range equipmentIDs {
		wanted[id] = struct{}{}
	}
	applied := make(map[string]struct{}, len(equipmentIDs))
	seen := make(map[string]struct{})
	var required []string
	for _, rule := range b.Requirements {
		if _, ok := wanted[rule.EquipmentID]; !ok {
			continue
		}
		if _, dup := applied[rule.EquipmentID]; dup {
			continue
		}
		applied[rule.EquipmentID] = struct{}{}
		for _, sid := range rule.StandardIDs {
			if _, ok := seen[sid]; ok {
				continue
			}
			seen[sid] = struct{}{}
			required = append(required, sid)
		}
	}
	return required
}
