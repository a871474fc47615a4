package wave

import (
	"fmt"
	"math"
)

// BaseStep is the phase advance, in radians, per column of a pixel
// with zero darkness.
const BaseStep = 0.05

// Config holds the parameters shared by every row.
type Config struct {
	// LineSpacing is the vertical distance between row baselines.
	LineSpacing float64
	// ColumnSpacing is the horizontal distance between column samples.
	// It must be positive.
	ColumnSpacing float64
	// MaxAmplitude is the peak offset of a fully dark pixel.
	MaxAmplitude float64
	// FrequencyGain scales the phase advance by darkness.
	FrequencyGain float64
	// WhiteThreshold is the brightness at and above which pixels are
	// not drawn.
	WhiteThreshold int

	OrganicMode bool
	// OrganicStrength bounds the organic jitter as a fraction of the
	// local amplitude.
	OrganicStrength float64
	// Seed seeds the organic jitter.
	Seed uint64
}

// DefaultConfig returns the default parameters.
func DefaultConfig() Config {
	return Config{
		LineSpacing:     2.0,
		ColumnSpacing:   1.0,
		MaxAmplitude:    3.0,
		FrequencyGain:   3.0,
		WhiteThreshold:  250,
		OrganicStrength: 0.2,
	}
}

// Validate reports an error wrapping [ErrInvalidInput] for the first
// out of range parameter.
func (c Config) Validate() error {
	params := []struct {
		name string
		v    float64
	}{
		{"line spacing", c.LineSpacing},
		{"column spacing", c.ColumnSpacing},
		{"max amplitude", c.MaxAmplitude},
		{"frequency gain", c.FrequencyGain},
		{"organic strength", c.OrganicStrength},
	}
	for _, p := range params {
		if p.v < 0 || math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s %v", ErrInvalidInput, p.name, p.v)
		}
	}
	if c.ColumnSpacing == 0 {
		return fmt.Errorf("%w: column spacing must be positive", ErrInvalidInput)
	}
	if c.WhiteThreshold < 0 || c.WhiteThreshold > 255 {
		return fmt.Errorf("%w: white threshold %d outside 0-255", ErrInvalidInput, c.WhiteThreshold)
	}
	return nil
}
