package disclosure

// FieldName identifies an extractable concentration field
type FieldName string

const (
	FieldWaterPercent    FieldName = "water_percent"
	FieldHCLPercent      FieldName = "hcl_percent"
	FieldProppantPercent FieldName = "proppant_percent"
)

// MergeRule describes a chemical name the source layout wraps across two
// lines. A line whose normalized text equals Prefix is joined with the next
// line when that line's normalized text starts with Suffix.
type MergeRule struct {
	Prefix string
	Suffix string
}

// DefaultMergeRules returns the known split chemical names
func DefaultMergeRules() []MergeRule {
	return []MergeRule{
		{Prefix: "hydrochloric", Suffix: "acid"},
		{Prefix: "crystalline", Suffix: "silica"},
	}
}

// MarkerRule binds a document marker to a concentration field. A marker is
// either a chemical label paired with its CAS registry number, or a bare CAS
// number. The rightmost numeric token on the first line containing the
// marker is taken as the percent-by-mass figure.
type MarkerRule struct {
	Name        string
	Field       FieldName
	Label       string // optional chemical label preceding the CAS number
	CAS         string
	Description string
}

// Marker returns the literal text that must appear on a line for the rule
// to match
func (r MarkerRule) Marker() string {
	if r.Label != "" {
		return r.Label + " " + r.CAS
	}
	return r.CAS
}

// DefaultMarkerRules returns the marker table for the FracFocus layout.
// New marker variants (alternate labels, additional CAS numbers per field)
// are added here without touching extraction logic; the first rule whose
// marker matches a line wins per field.
func DefaultMarkerRules() []MarkerRule {
	return []MarkerRule{
		{
			Name:        "water_by_label_cas",
			Field:       FieldWaterPercent,
			Label:       "Water",
			CAS:         "7732-18-5",
			Description: "Base water row, labeled with the water CAS number",
		},
		{
			Name:        "hcl_by_cas",
			Field:       FieldHCLPercent,
			CAS:         "7647-01-0",
			Description: "Hydrochloric acid row, matched on CAS alone",
		},
		{
			Name:        "proppant_by_cas",
			Field:       FieldProppantPercent,
			CAS:         "14808-60-7",
			Description: "Crystalline silica proppant row, matched on CAS alone",
		},
	}
}
