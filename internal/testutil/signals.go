package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// LinearRamp returns n float32 values spaced evenly from start to end inclusive.
func LinearRamp(start, end float32, n int) []float32 {
	out := make([]float32, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (float64(end) - float64(start)) / float64(n-1)
	for i := range out {
		out[i] = float32(float64(start) + step*float64(i))
	}
	return out
}

// LogSpaced returns n float32 values spaced geometrically from start to end
// inclusive. start and end must be positive.
func LogSpaced(start, end float32, n int) []float32 {
	out := make([]float32, n)
	if n == 1 {
		out[0] = start
		return out
	}
	lo, hi := math.Log(float64(start)), math.Log(float64(end))
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = float32(math.Exp(lo + step*float64(i)))
	}
	return out
}
