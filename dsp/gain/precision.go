package gain

import "fmt"

// Precision selects the math backend a [Converter] evaluates with.
type Precision int

const (
	// PrecisionFast uses bit-level float32 pow2/log2 approximations.
	PrecisionFast Precision = iota
	// PrecisionApprox uses the algo-approx float64 exp/log approximations.
	PrecisionApprox
	// PrecisionExact uses math.Pow and math.Log10.
	PrecisionExact

	precisionCount // sentinel for validation
)

var precisionNames = [precisionCount]string{
	"fast", "approx", "exact",
}

// String returns the name of the precision.
func (p Precision) String() string {
	if p.Valid() {
		return precisionNames[p]
	}
	return fmt.Sprintf("Precision(%d)", p)
}

// Valid reports whether p is a known precision.
func (p Precision) Valid() bool {
	return p >= 0 && p < precisionCount
}

// ParsePrecision returns the precision with the given name.
func ParsePrecision(name string) (Precision, error) {
	for p, n := range precisionNames {
		if n == name {
			return Precision(p), nil
		}
	}
	return 0, fmt.Errorf("gain: %w: %q", ErrInvalidPrecision, name)
}
