package fluidcalc

import (
	"fmt"
	"math"
)

// Engineering constants used by the derivation. The acid solution density is
// fixed for a nominal 15% HCl solution and is not re-derived from the
// reported HCl percentage.
const (
	WaterDensityLbsPerGal        = 8.3454
	AcidSolutionDensityLbsPerGal = 8.95
	GallonsPerBarrel             = 42.0
	NitrogenYieldSCFPerLb        = 13.803
	PoundsPerTon                 = 2000.0
)

// ProppantSlots is the number of independent proppant concentration slots.
// Document extraction only ever fills the first; the rest exist for manual
// multi-proppant jobs.
const ProppantSlots = 6

// GasType identifies the energizing gas used on the job, if any
type GasType string

const (
	GasNone          GasType = "none"
	GasNitrogen      GasType = "nitrogen"
	GasCarbonDioxide GasType = "carbon-dioxide"
)

// ParseGasType maps a user-supplied string onto a known gas type
func ParseGasType(s string) (GasType, error) {
	switch GasType(s) {
	case GasNone, "":
		return GasNone, nil
	case GasNitrogen:
		return GasNitrogen, nil
	case GasCarbonDioxide:
		return GasCarbonDioxide, nil
	default:
		return GasNone, fmt.Errorf("unknown gas type: %q (must be none, nitrogen or carbon-dioxide)", s)
	}
}

// Input holds the fully resolved calculation inputs. Percentages are on a
// 0-100 scale. Fields the caller left unset are resolved to 0 before the
// engine sees them; tracking "unset vs parsed 0" is the extractor's job.
type Input struct {
	TotalWaterVolumeGal int64     `json:"total_water_volume_gal"`
	WaterPercent        float64   `json:"water_percent"`
	HCLPercent          float64   `json:"hcl_percent"`
	ProppantPercents    []float64 `json:"proppant_percents"`
	GasPercent          float64   `json:"gas_percent"`
	GasType             GasType   `json:"gas_type"`
}

// Result is the flat record of derived quantities. Gas outputs are nil when
// not applicable to the selected gas type; they are never reported as zero.
// ProppantToFluidRatio is NaN when the fracturing fluid volume is exactly 0.
type Result struct {
	TotalMassPercent       float64  `json:"total_mass_percent"`
	TotalWaterWeightLbs    float64  `json:"total_water_weight_lbs"`
	TotalAcidWeightLbs     float64  `json:"total_acid_weight_lbs"`
	TotalAcidVolumeGal     float64  `json:"total_acid_volume_gal"`
	TotalAcidVolumeBbl     float64  `json:"total_acid_volume_bbl"`
	TotalFFFluidVolumeGal  float64  `json:"total_ff_fluid_volume_gal"`
	TotalFFFluidVolumeBbl  float64  `json:"total_ff_fluid_volume_bbl"`
	TotalProppantWeightLbs float64  `json:"total_proppant_weight_lbs"`
	ProppantWeightTons     float64  `json:"proppant_weight_tons"`
	ProppantToFluidRatio   float64  `json:"proppant_to_fluid_ratio"`
	GasWeightLbs           *float64 `json:"gas_weight_lbs"`
	NitrogenVolumeSCF      *float64 `json:"nitrogen_volume_scf"`
	CO2WeightTons          *float64 `json:"co2_weight_tons"`
	Remark                 string   `json:"remark"`
}

// Calculate derives the fluid volume, weight and ratio quantities from the
// resolved inputs. It is a pure function: it never fails, substituting 0 or
// NaN where a quantity is undefined, and identical inputs always produce
// identical results.
func Calculate(in Input) *Result {
	result := &Result{}

	// Mass balance diagnostic: declared contributions should sum near 100
	result.TotalMassPercent = in.WaterPercent + in.HCLPercent + sumProppant(in.ProppantPercents)

	result.TotalWaterWeightLbs = float64(in.TotalWaterVolumeGal) * WaterDensityLbsPerGal

	if in.HCLPercent > 0 {
		result.TotalAcidWeightLbs = (in.HCLPercent / 100) * result.TotalWaterWeightLbs
		result.TotalAcidVolumeGal = result.TotalAcidWeightLbs / AcidSolutionDensityLbsPerGal
	}
	result.TotalAcidVolumeBbl = result.TotalAcidVolumeGal / GallonsPerBarrel

	// Fracturing fluid volume is net of the acid job volume. Not guarded
	// against going negative: an acid volume exceeding the base water volume
	// indicates bad inputs and should be visible, not masked.
	result.TotalFFFluidVolumeGal = float64(in.TotalWaterVolumeGal) - result.TotalAcidVolumeGal
	result.TotalFFFluidVolumeBbl = result.TotalFFFluidVolumeGal / GallonsPerBarrel

	result.TotalProppantWeightLbs = (sumProppant(in.ProppantPercents) / 100) * result.TotalWaterWeightLbs
	result.ProppantWeightTons = result.TotalProppantWeightLbs / PoundsPerTon

	if result.TotalFFFluidVolumeGal == 0 {
		// Undefined loading ratio, reported as a displayable sentinel
		result.ProppantToFluidRatio = math.NaN()
	} else {
		result.ProppantToFluidRatio = result.TotalProppantWeightLbs / result.TotalFFFluidVolumeGal
	}

	applyGasBranch(in, result)

	return result
}

// applyGasBranch fills in the gas outputs and remark for energized jobs
func applyGasBranch(in Input, result *Result) {
	if in.GasPercent <= 0 {
		result.Remark = "No gas contribution."
		return
	}

	gasWeight := (in.GasPercent / 100) * result.TotalWaterWeightLbs

	switch in.GasType {
	case GasNitrogen:
		nitrogenSCF := gasWeight * NitrogenYieldSCFPerLb
		result.GasWeightLbs = &gasWeight
		result.NitrogenVolumeSCF = &nitrogenSCF
		result.Remark = fmt.Sprintf(
			"Nitrogen energized job: %.2f lbs of nitrogen yields %.2f SCF at standard conditions.",
			gasWeight, nitrogenSCF)
	case GasCarbonDioxide:
		co2Tons := gasWeight / PoundsPerTon
		result.GasWeightLbs = &gasWeight
		result.CO2WeightTons = &co2Tons
		result.Remark = fmt.Sprintf(
			"CO2 energized job: %.2f lbs of carbon dioxide (%.2f tons).",
			gasWeight, co2Tons)
	default:
		result.Remark = "No gas contribution."
	}
}

func sumProppant(percents []float64) float64 {
	var total float64
	for _, p := range percents {
		total += p
	}
	return total
}
