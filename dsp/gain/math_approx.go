package gain

import (
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-gain/dsp/core"
)

// ln2 is the natural logarithm of 2, used for log base conversions.
const ln2 = 0.693147180559945309417232121458

// approxPower2 computes 2^x using fast approximation.
// Uses the identity: 2^x = e^(x * ln(2))
func approxPower2(x float64) float64 {
	return approx.FastExp(x * ln2)
}

// approxLog2 computes log2(x) using fast approximation.
// Uses the identity: log2(x) = ln(x) / ln(2)
func approxLog2(x float64) float64 {
	return approx.FastLog(x) / ln2
}

func approxDBToRatio(db float32) float32 {
	return float32(approxPower2(float64(db) * float64(DBToVoltage) * float64(Log2Of10)))
}

func approxRatioToDB(ratio float32) float32 {
	return float32(approxLog2(float64(ratio)) * float64(Log10Of2) * float64(VoltageToDB))
}

func exactDBToRatio(db float32) float32 {
	return float32(core.DBToLinear(float64(db)))
}

func exactRatioToDB(ratio float32) float32 {
	return float32(core.LinearToDB(float64(ratio)))
}
