// Package compliance decides whether the standards extracted from a
// certificate satisfy the mandatory standards required for the equipment
// types it covers.
package compliance

import (
	"strings"

	"github.com/orcnlabs/certcheck/internal/knowledge"
	"github.com/orcnlabs/certcheck/internal/normtext"
)

// Result is the verdict for one document. NoEquipment and NoStandards keep
// the two degenerate failure modes distinguishable downstream: the first
// points at document quality, the second at the issuer's standards section.
type Result struct {
	Passed      bool     `json:"passed"`
	Missing     []string `json:"missing_standard_ids,omitempty"`
	NoEquipment bool     `json:"no_equipment,omitempty"`
	NoStandards bool     `json:"no_standards,omitempty"`
}

// Validate computes the verdict. It is total: empty inputs yield sentinel
// results, never an error.
//
// The required set is the ordered union of requirement rules over the
// matched equipment ids. A required id counts as verified when any
// extracted code contains it as a normalized substring; extracted codes may
// carry formatting the id does not ("ato100-rev2" satisfies "ato100"). An
// empty required set passes by definition: absence of a constraint is not a
// violation.
func Validate(matched []knowledge.EquipmentEntry, extracted []string, rules []knowledge.RequirementRule) Result {
	if len(matched) == 0 {
		return Result{Passed: false, NoEquipment: true}
	}

	base := knowledge.Base{Requirements: rules}
	ids := make([]string, 0, len(matched))
	for _, e := range matched {
		ids = append(ids, e.ID)
	}
	required := base.RequiredFor(ids)

	verified := make([]string, len(extracted))
	for i, code := range extracted {
		verified[i] = normtext.Normalize(code)
	}

	result := Result{NoStandards: len(extracted) == 0}
	for _, req := range required {
		if !anyContains(verified, normtext.Normalize(req)) {
			result.Missing = append(result.Missing, req)
		}
	}
	result.Passed = len(result.Missing) == 0
	return result
}

func anyContains(codes []string, needle string) bool {
	for _, code := range codes {
		if strings.Contains(code, needle) {
			return true
		}
	}
	return false
}
