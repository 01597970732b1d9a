package carbon

// Divisors for the everyday comparisons, in kg CO₂ per unit.
const (
	kgPerTreeYear    = 21     // absorbed by one tree in a year
	kgPerKmDriven    = 0.12   // average passenger car
	kgPerPhoneCharge = 0.011  // one full smartphone charge
	kgPerBulbHour60W = 0.0006 // one hour of a 60W incandescent bulb
)

// Equivalents puts an emitted mass into everyday terms.
type Equivalents struct {
	TreesNeeded  float64 `json:"treesNeeded"` // trees needed for a year to offset
	KmDriven     float64 `json:"kmDriven"`
	PhoneCharges float64 `json:"smartphones"`
	BulbHours    float64 `json:"lightBulb"`
}

// EquivalentsFor computes the comparisons for kg CO₂.
func EquivalentsFor(kg float64) Equivalents {
	return Equivalents{
		TreesNeeded:  kg / kgPerTreeYear,
		KmDriven:     kg / kgPerKmDriven,
		PhoneCharges: kg / kgPerPhoneCharge,
		BulbHours:    kg / kgPerBulbHour60W,
	}
}
