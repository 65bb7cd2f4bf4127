package fluidcalc

// Acceptable band for the summed mass percentage. Disclosures routinely sum
// slightly off 100 due to rounding in the reported concentrations.
const (
	MassBalanceLowerBound = 90.0
	MassBalanceUpperBound = 110.0
)

// MassBalanceStatus classifies the summed mass percentage
type MassBalanceStatus string

const (
	MassBalanceInRange    MassBalanceStatus = "in_range"
	MassBalanceOutOfRange MassBalanceStatus = "out_of_range"
)

// CheckMassBalance classifies the total mass percentage against the
// acceptable band. Advisory only: it never alters the calculation result.
func CheckMassBalance(totalMassPercent float64) MassBalanceStatus {
	if totalMassPercent >= MassBalanceLowerBound && totalMassPercent <= MassBalanceUpperBound {
		return MassBalanceInRange
	}
	return MassBalanceOutOfRange
}
