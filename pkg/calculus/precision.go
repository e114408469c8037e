package calculus

import "math"

// DefaultLarge is the reciprocal sampling step used by the default
// precision policy. 10000 gives three trusted decimal digits and keeps a
// full-domain integral around forty thousand samples.
const DefaultLarge = 10000

// DefaultRootIterations is the Newton iteration count used when a caller
// has no reason to pick another one.
const DefaultRootIterations = 100

// lambertIterations is the fixed Newton budget for LambertW. The seed is
// the input value itself, which can start far from the root, so the
// budget is larger than DefaultRootIterations.
const lambertIterations = 150

// Precision is the policy every engine operation computes under.
//
// Large is the reciprocal of the sampling step and doubles as the
// finite-difference scale factor. Small and Accuracy are always derived
// from it; construct values with New so the three stay coherent.
type Precision struct {
	// Large is the single tunable knob: 1/Large is the sampling step.
	Large float64
	// Small is the finite-difference and integration step, 1/Large.
	Small float64
	// Accuracy is the number of decimal digits trusted in any result,
	// floor(log10(Large)) - 1.
	Accuracy int
}

// New derives a coherent precision policy from the reciprocal step size.
func New(large float64) Precision {
	return Precision{
		Large:    large,
		Small:    1 / large,
		Accuracy: int(math.Floor(math.Log10(large))) - 1,
	}
}

// Default is the process-wide precision policy used by the package-level
// operations.
var Default = New(DefaultLarge)

// Round rounds value to places decimal digits, rounding half away from
// zero toward positive infinity on the scaled value: scale by 10^places,
// add 0.5, floor, rescale. It is the single rounding primitive of the
// engine and is idempotent.
func Round(value float64, places int) float64 {
	prod := math.Pow(10, float64(places))
	return math.Floor(value*prod+0.5) / prod
}
