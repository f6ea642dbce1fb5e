// Package convert narrows numeric values into float32 samples without
// overflowing.
//
// Every conversion saturates: a value whose magnitude exceeds the float32
// range becomes [MaxFloat32] or [MinFloat32] instead of an infinity, and NaN
// floating-point input becomes zero. The result is therefore always a finite
// float32. Conversions never fail and have no error channel.
//
// The generic [Float32] covers Go's built-in integer and floating-point
// types. 128-bit unsigned integers are represented by lukechampine.com/uint128
// and converted with [Uint128Float32]. The [Lossy] interface lets callers hold
// heterogeneous sources and convert them with a single method call:
//
//	var sources = []convert.Lossy{
//		convert.Of(1e308),
//		convert.Of(uint64(42)),
//		convert.Wide(uint128.Max),
//	}
//
// All functions are pure and safe for concurrent use.
package convert
