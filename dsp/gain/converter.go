package gain

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gain/dsp/core"
)

// Converter converts between decibels and ratios with a configurable backend.
//
// DBToRatio and RatioToDB are safe for concurrent use. ApplyEnvelope and
// ApplyEnvelopeInPlace reuse an internal scratch buffer and are not.
type Converter struct {
	precision Precision
	toRatio   func(float32) float32
	toDB      func(float32) float32

	ratios []float64
}

// New creates a Converter. Without options it matches the package-level
// DBToRatio and RatioToDB.
func New(opts ...Option) (*Converter, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	c := &Converter{precision: cfg.precision}

	switch cfg.precision {
	case PrecisionApprox:
		c.toRatio, c.toDB = approxDBToRatio, approxRatioToDB
	case PrecisionExact:
		c.toRatio, c.toDB = exactDBToRatio, exactRatioToDB
	default:
		c.toRatio, c.toDB = DBToRatio, RatioToDB
	}

	return c, nil
}

// Precision returns the configured backend.
func (c *Converter) Precision() Precision {
	return c.precision
}

// DBToRatio converts decibels to a linear amplitude ratio.
func (c *Converter) DBToRatio(db float32) float32 {
	return c.toRatio(db)
}

// RatioToDB converts a positive linear amplitude ratio to decibels.
func (c *Converter) RatioToDB(ratio float32) float32 {
	return c.toDB(ratio)
}

// ApplyEnvelope writes src[i] * ratio(envDB[i]) to dst[i]. All three slices
// must have the same length.
func (c *Converter) ApplyEnvelope(dst, src []float64, envDB []float32) error {
	if len(dst) != len(src) || len(src) != len(envDB) {
		return fmt.Errorf("gain: %w: dst=%d src=%d envelope=%d",
			ErrLengthMismatch, len(dst), len(src), len(envDB))
	}

	vecmath.MulBlock(dst, src, c.fillRatios(envDB))

	return nil
}

// ApplyEnvelopeInPlace multiplies buf[i] by ratio(envDB[i]).
func (c *Converter) ApplyEnvelopeInPlace(buf []float64, envDB []float32) error {
	if len(buf) != len(envDB) {
		return fmt.Errorf("gain: %w: buf=%d envelope=%d",
			ErrLengthMismatch, len(buf), len(envDB))
	}

	vecmath.MulBlockInPlace(buf, c.fillRatios(envDB))

	return nil
}

func (c *Converter) fillRatios(envDB []float32) []float64 {
	c.ratios = core.EnsureLen(c.ratios, len(envDB))
	for i, db := range envDB {
		c.ratios[i] = float64(c.toRatio(db))
	}

	return c.ratios
}
