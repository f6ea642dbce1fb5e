// Package gain converts amplitude scale factors between decibels and linear
// ratios.
//
// Decibels follow the amplitude convention: ratio = 10^(dB/20), so 0 dB is
// unity gain and -6 dB is roughly half amplitude. [DBToRatio] and
// [RatioToDB] evaluate the conversion through fast single-precision 2^x and
// log2(x) approximations, accurate to about 1e-4 relative error, which is
// far below audible resolution and several times cheaper than math.Pow.
//
// A [Converter] selects a different backend through [WithPrecision]:
// [PrecisionApprox] uses the algo-approx exponential and logarithm, and
// [PrecisionExact] uses the standard library.
//
// Neither direction validates its input. A zero or negative ratio has no
// logarithm; the value RatioToDB returns for it depends on the backend and
// must not be relied upon.
package gain
