package gain

import (
	"math"

	"github.com/cwbudde/algo-gain/internal/fastapprox"
)

const (
	// DBToVoltage scales decibels into the exponent of an amplitude ratio.
	DBToVoltage float32 = 0.05
	// VoltageToDB scales a base-10 amplitude exponent back into decibels.
	VoltageToDB float32 = 20.0
	// UnityGain is the ratio that leaves a signal unchanged.
	UnityGain float32 = 1.0
	// ZeroDB is the decibel value of UnityGain.
	ZeroDB float32 = 0.0

	// Log2Of10 is log2(10).
	Log2Of10 float32 = math.Ln10 / math.Ln2
	// Log10Of2 is log10(2).
	Log10Of2 float32 = math.Ln2 / math.Ln10
)

// DBToRatio converts a decibel value to a linear amplitude ratio.
//
// Positive values amplify (ratio > 1), negative values attenuate toward but
// never reach zero.
func DBToRatio(db float32) float32 {
	return fastapprox.Pow2(db * DBToVoltage * Log2Of10)
}

// RatioToDB converts a linear amplitude ratio to decibels. It is the inverse
// of DBToRatio. ratio must be positive.
func RatioToDB(ratio float32) float32 {
	return fastapprox.Log2(ratio) * Log10Of2 * VoltageToDB
}
