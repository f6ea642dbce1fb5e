package convert

import "lukechampine.com/uint128"

// Lossy is implemented by values that can narrow themselves to a finite float32.
type Lossy interface {
	Float32Lossy() float32
}

// Number wraps a built-in numeric value as a [Lossy].
type Number[T Source] struct {
	v T
}

// Of wraps v so it satisfies [Lossy].
func Of[T Source](v T) Number[T] {
	return Number[T]{v: v}
}

// Float32Lossy returns [Float32] of the wrapped value.
func (n Number[T]) Float32Lossy() float32 {
	return Float32(n.v)
}

// Wide is a 128-bit unsigned source.
type Wide uint128.Uint128

// Float32Lossy returns [Uint128Float32] of w.
func (w Wide) Float32Lossy() float32 {
	return Uint128Float32(uint128.Uint128(w))
}
