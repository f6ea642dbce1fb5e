package fastapprox

import "math"

const (
	// Pow2 clips its argument to [minExponent, maxExponent], the range whose
	// results are normal float32 values.
	minExponent = -126
	maxExponent = 127

	mantissaScale = 1 << 23
	mantissaMask  = 0x007fffff
	halfExponent  = 0x3f000000

	// 1 / 2^23, maps the raw bit pattern back into exponent units.
	invMantissaScale = 1.1920928955078125e-7
)

// Pow2 returns an approximation of 2^p.
func Pow2(p float32) float32 {
	var offset float32
	if p < 0 {
		offset = 1
	}

	clipp := p
	if clipp < minExponent {
		clipp = minExponent
	} else if clipp > maxExponent {
		clipp = maxExponent
	}

	w := int32(clipp)
	z := clipp - float32(w) + offset
	v := float32(mantissaScale) * (clipp + 121.2740575 + 27.7280233/(4.84252568-z) - 1.49012907*z)

	return math.Float32frombits(uint32(v))
}

// Log2 returns an approximation of log2(x).
func Log2(x float32) float32 {
	bits := math.Float32bits(x)
	mx := math.Float32frombits((bits & mantissaMask) | halfExponent)
	y := float32(bits) * invMantissaScale

	return y - 124.22551499 - 1.498030302*mx - 1.72587999/(0.3520887068+mx)
}
