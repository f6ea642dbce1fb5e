package convert

import (
	"math"
	"math/bits"

	"lukechampine.com/uint128"

	"github.com/cwbudde/algo-gain/dsp/core"
)

const (
	// MaxFloat32 is the largest finite float32, returned for positive overflow.
	MaxFloat32 float32 = math.MaxFloat32
	// MinFloat32 is the most negative finite float32, returned for negative overflow.
	MinFloat32 float32 = -math.MaxFloat32
)

// maxFloat32Hi is the high word of MaxFloat32 truncated to 128 bits:
// (2^24-1) << 104. The low word is zero.
const maxFloat32Hi = 0xffffff << 40

// Source is the set of numeric types that [Float32] accepts.
type Source interface {
	~float64 | ~float32 |
		~int | ~int32 | ~int64 |
		~uint | ~uint32 | ~uint64
}

// Float32 converts v to float32, clamping to [MinFloat32, MaxFloat32].
//
// Floating-point values are clamped in float64 before they are narrowed, so
// no out-of-range value ever reaches the float32 conversion. NaN returns 0.
// Integer values are bounds-checked the same way on both sides; for 64-bit
// and narrower integers the check never fires because their whole range fits
// inside float32's, but the conversion still rounds to the nearest float32.
// The maximum of such a type therefore does not become MaxFloat32: uint64's
// maximum converts to 2^64, not 3.4e38. Only floating-point and 128-bit
// sources can saturate.
func Float32[T Source](v T) float32 {
	if v != v {
		return 0
	}

	wide := float64(v)
	if wide > math.MaxFloat32 || wide < -math.MaxFloat32 {
		return float32(core.Clamp(wide, -math.MaxFloat32, math.MaxFloat32))
	}

	return float32(v)
}

// Uint128Float32 converts a 128-bit unsigned value to float32, returning
// MaxFloat32 for values above it. The result is rounded once, to nearest even,
// so values below 2^64 convert exactly as the same uint64 would.
func Uint128Float32(v uint128.Uint128) float32 {
	if v.Hi > maxFloat32Hi || (v.Hi == maxFloat32Hi && v.Lo != 0) {
		return MaxFloat32
	}

	if v.Hi == 0 {
		return float32(v.Lo)
	}

	// Shift the value down to 64 bits. Any discarded low bit is folded into
	// bit 0 so the float32 rounding still sees the value as above a tie.
	shift := bits.Len64(v.Hi)
	top := v.Hi<<(64-shift) | v.Lo>>shift
	if v.Lo&(uint64(1)<<shift-1) != 0 {
		top |= 1
	}

	return float32(math.Ldexp(float64(float32(top)), shift))
}

// Float32s converts src element-wise into dst and returns the filled slice.
// dst is reused when it has enough capacity.
func Float32s[T Source](dst []float32, src []T) []float32 {
	dst = core.EnsureLen(dst, len(src))
	for i, v := range src {
		dst[i] = Float32(v)
	}

	return dst
}
