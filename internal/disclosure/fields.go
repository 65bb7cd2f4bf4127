package disclosure

import "github.com/wellsite-tools/fracfocus-mcp/internal/fluidcalc"

// ExtractedFields holds what a disclosure document yielded. Pointer fields
// distinguish "not found in the document" from a successfully parsed zero;
// only the calculation engine collapses unset to 0.
type ExtractedFields struct {
	TotalWaterVolumeGal *int64   `json:"total_water_volume_gal"`
	WaterPercent        *float64 `json:"water_percent"`
	HCLPercent          *float64 `json:"hcl_percent"`
	ProppantPercent     *float64 `json:"proppant_percent"`

	// GasPercent is never extracted from the document; it defaults to 0 and
	// is only ever filled in by explicit user input.
	GasPercent float64 `json:"gas_percent"`
}

// Input resolves the extracted fields into calculation inputs, substituting
// 0 for anything the document did not yield. Extraction only ever fills the
// first proppant slot.
func (f *ExtractedFields) Input() fluidcalc.Input {
	in := fluidcalc.Input{
		GasPercent:       f.GasPercent,
		GasType:          fluidcalc.GasNone,
		ProppantPercents: make([]float64, fluidcalc.ProppantSlots),
	}

	if f.TotalWaterVolumeGal != nil {
		in.TotalWaterVolumeGal = *f.TotalWaterVolumeGal
	}
	if f.WaterPercent != nil {
		in.WaterPercent = *f.WaterPercent
	}
	if f.HCLPercent != nil {
		in.HCLPercent = *f.HCLPercent
	}
	if f.ProppantPercent != nil {
		in.ProppantPercents[0] = *f.ProppantPercent
	}

	return in
}

// Overrides carries explicit user-supplied values that take precedence over
// whatever extraction yielded. Nil means "keep the extracted value".
type Overrides struct {
	TotalWaterVolumeGal *int64
	WaterPercent        *float64
	HCLPercent          *float64
	ProppantPercents    [fluidcalc.ProppantSlots]*float64
	GasPercent          *float64
	GasType             *fluidcalc.GasType
}

// Apply layers the overrides on top of a resolved input
func (o Overrides) Apply(in fluidcalc.Input) fluidcalc.Input {
	if o.TotalWaterVolumeGal != nil {
		in.TotalWaterVolumeGal = *o.TotalWaterVolumeGal
	}
	if o.WaterPercent != nil {
		in.WaterPercent = *o.WaterPercent
	}
	if o.HCLPercent != nil {
		in.HCLPercent = *o.HCLPercent
	}
	if len(in.ProppantPercents) < fluidcalc.ProppantSlots {
		padded := make([]float64, fluidcalc.ProppantSlots)
		copy(padded, in.ProppantPercents)
		in.ProppantPercents = padded
	}
	for i, p := range o.ProppantPercents {
		if p != nil {
			in.ProppantPercents[i] = *p
		}
	}
	if o.GasPercent != nil {
		in.GasPercent = *o.GasPercent
	}
	if o.GasType != nil {
		in.GasType = *o.GasType
	}
	return in
}
