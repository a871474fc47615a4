package wave

import (
	"math"
	"math/rand/v2"
)

// minDarkness is the darkness below which a visible pixel is drawn as a
// flat line.
const minDarkness = 0.02

// Jitter is a source of organic noise in [-1, 1].
type Jitter interface {
	Next() float64
}

// Noise is smoothed uniform noise. Each value blends the previous one
// with a fresh uniform sample, so consecutive values drift instead of
// jumping while staying within [-1, 1].
type Noise struct {
	rng  *rand.Rand
	prev float64
}

// NewNoise returns a deterministic noise source for the given seed and
// stream. Rows use their index as the stream.
func NewNoise(seed, stream uint64) *Noise {
	return &Noise{rng: rand.New(rand.NewPCG(seed, stream))}
}

func (n *Noise) Next() float64 {
	u := n.rng.Float64()*2 - 1
	n.prev = 0.6*n.prev + 0.4*u
	return n.prev
}

// Amplitude returns the peak wave offset for a darkness.
func Amplitude(darkness, maxAmplitude float64) float64 {
	if darkness < minDarkness {
		return 0
	}
	return darkness * maxAmplitude
}

// Step returns the phase advance for one column of the given darkness.
// Darker pixels advance faster and so oscillate more often.
func Step(darkness, frequencyGain float64) float64 {
	return BaseStep * (1 + darkness*frequencyGain)
}

// Modulator turns darkness values into vertical offsets. The phase is
// owned by the caller.
type Modulator struct {
	maxAmplitude float64
	gain         float64
	strength     float64
	jitter       Jitter
}

// NewModulator returns a modulator for cfg. The jitter source is only
// used when cfg.OrganicMode is set and may be nil otherwise.
func NewModulator(cfg Config, jitter Jitter) (*Modulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Modulator{
		maxAmplitude: cfg.MaxAmplitude,
		gain:         cfg.FrequencyGain,
	}
	if cfg.OrganicMode && jitter != nil {
		m.jitter = jitter
		m.strength = cfg.OrganicStrength
	}
	return m, nil
}

// Advance steps phase for one column of the given darkness and returns
// the offset at the new phase.
func (m *Modulator) Advance(darkness, phase float64) (offset, newPhase float64) {
	newPhase = phase + Step(darkness, m.gain)
	amp := Amplitude(darkness, m.maxAmplitude)
	offset = math.Sin(newPhase) * amp
	if m.jitter != nil {
		// One draw per point, whatever the darkness.
		n := m.jitter.Next()
		offset += n * m.strength * amp
	}
	return offset, newPhase
}
