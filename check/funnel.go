// Package check classifies inputs against the oceanographic envelope
// the Gibbs-function fit was regressed over. The evaluator itself never
// range-checks: out-of-envelope inputs evaluate and simply lose
// accuracy, so callers who care run these checks separately.
package check

import "fmt"

// Envelope of the fit, the "oceanographic funnel" reduced to its
// bounding box in (SA, t, p).
const (
	MaxSalinity = 42.0    // g/kg
	MinTemp     = -2.5    // degC
	MaxTemp     = 40.0    // degC
	MaxPressure = 10000.0 // dbar
)

// InFunnel reports whether the point lies inside the fit's envelope.
func InFunnel(sa, t, p float64) bool {
	return sa >= 0 && sa <= MaxSalinity &&
		t >= MinTemp && t <= MaxTemp &&
		p >= 0 && p <= MaxPressure
}

// Validate returns a descriptive error for the first coordinate found
// outside the fit's envelope, or nil if the point is inside.
func Validate(sa, t, p float64) error {
	switch {
	case !(sa >= 0 && sa <= MaxSalinity):
		return fmt.Errorf("check: salinity %g g/kg outside [0, %g]", sa, MaxSalinity)
	case !(t >= MinTemp && t <= MaxTemp):
		return fmt.Errorf("check: temperature %g degC outside [%g, %g]", t, MinTemp, MaxTemp)
	case !(p >= 0 && p <= MaxPressure):
		return fmt.Errorf("check: pressure %g dbar outside [0, %g]", p, MaxPressure)
	}
	return nil
}
