// Package fastapprox provides bit-level single-precision approximations of
// 2^x and log2(x).
//
// Both functions reinterpret the IEEE-754 float32 layout: the exponent field
// carries the integer part of the result and a small rational correction
// fixes up the mantissa. They trade a bounded error for speed:
//
//	Pow2: relative error below 1e-4 for x in [-126, 127]
//	Log2: absolute error below 2e-4 for positive normal x
//
// Inputs outside the documented domains are not checked. Log2 of zero returns
// -127 (the exponent of a zero bit pattern), Log2 of a negative value returns
// a meaningless finite number. Pow2 clips its argument to [-126, 127]: below
// it returns the smallest normal float32, above it returns about 2^127, so
// the result is always positive and finite for non-NaN input.
package fastapprox
