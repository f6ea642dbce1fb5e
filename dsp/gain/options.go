package gain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrecision is returned for an unknown [Precision].
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrLengthMismatch is returned when block arguments differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
)

const defaultPrecision = PrecisionFast

type config struct {
	precision Precision
}

func defaultConfig() config {
	return config{
		precision: defaultPrecision,
	}
}

// Option configures a [Converter].
type Option func(*config) error

// WithPrecision selects the math backend (default [PrecisionFast]).
func WithPrecision(p Precision) Option {
	return func(cfg *config) error {
		if !p.Valid() {
			return fmt.Errorf("gain: %w: %v", ErrInvalidPrecision, p)
		}

		cfg.precision = p

		return nil
	}
}
