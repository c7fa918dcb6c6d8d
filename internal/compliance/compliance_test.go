package compliance

import (
	"reflect"
	"testing"

	"github.com/orcnlabs/certcheck/internal/knowledge"
)

func eq(id string) knowledge.EquipmentEntry {
	return knowledge.EquipmentEntry{ID: id, Name: id}
}

func TestValidateNoEquipmentIdentified(t *testing.T) {
	got := Validate(nil, []string{"ato100"}, []knowledge.RequirementRule{
		{EquipmentID: "EQ1", StandardIDs: []string{"ato100"}},
	})
	if got.Passed || !got.NoEquipment || len(got.Missing) != 0 {
		t.Fatalf("Validate = %+v, want failed no-equipment with empty missing", got)
	}
}

func TestValidateContainmentSatisfies(t *testing.T) {
	got := Validate(
		[]knowledge.EquipmentEntry{eq("EQ1")},
		[]string{"ato100-rev2"},
		[]knowledge.RequirementRule{{EquipmentID: "EQ1", StandardIDs: []string{"ato100"}}},
	)
	if !got.Passed || len(got.Missing) != 0 {
		t.Fatalf("Validate = %+v, want passed via substring containment", got)
	}
}

func TestValidateEmptyExtractionReportsMissing(t *testing.T) {
	got := Validate(
		[]knowledge.EquipmentEntry{eq("EQ1")},
		nil,
		[]knowledge.RequirementRule{{EquipmentID: "EQ1", StandardIDs: []string{"ato100"}}},
	)
	if got.Passed || !got.NoStandards {
		t.Fatalf("Validate = %+v, want failed with no-standards signal", got)
	}
	if !reflect.DeepEqual(got.Missing, []string{"ato100"}) {
		t.Fatalf("Missing = %v, want [ato100]", got.Missing)
	}
}

func TestValidateRequirementVacuity(t *testing.T) {
	got := Validate([]knowledge.EquipmentEntry{eq("EQ9")}, nil, []knowledge.RequirementRule{
		{EquipmentID: "EQ1", StandardIDs: []string{"ato100"}},
	})
	if !got.Passed || len(got.Missing) != 0 {
		t.Fatalf("Validate = %+v, want vacuous pass for unconstrained equipment", got)
	}
}

func TestValidateUnionAcrossEquipment(t *testing.T) {
	got := Validate(
		[]knowledge.EquipmentEntry{eq("EQ1"), eq("EQ2")},
		[]string{"ato100", "iso 9001:2015"},
		[]knowledge.RequirementRule{
			{EquipmentID: "EQ1", StandardIDs: []string{"ato100", "resolucao680"}},
			{EquipmentID: "EQ2", StandardIDs: []string{"iso9001"}},
		},
	)
	if got.Passed {
		t.Fatalf("Validate = %+v, want failure", got)
	}
	// resolucao680 is absent; iso9001 is not a substring of "iso 9001:2015".
	if !reflect.DeepEqual(got.Missing, []string{"resolucao680", "iso9001"}) {
		t.Fatalf("Missing = %v, want [resolucao680 iso9001]", got.Missing)
	}
}

func TestValidateNormalizedContainment(t *testing.T) {
	got := Validate(
		[]knowledge.EquipmentEntry{eq("EQ1")},
		[]string{"RESOLUÇÃO680"},
		[]knowledge.RequirementRule{{EquipmentID: "EQ1", StandardIDs: []string{"resolucao680"}}},
	)
	if !got.Passed {
		t.Fatalf("Validate = %+v, want accent-insensitive containment to pass", got)
	}
}
