package wave

import "fmt"

// Point is a position in output coordinates.
type Point struct {
	X, Y float64
}

// Segment is an unbroken run of at least two points within one row.
type Segment struct {
	Row    int
	Points []Point
}

// BuildRow converts the brightness values of one row into segments.
// An invalid cfg is reported before any pixel is read.
// Runs of visible pixels become segments; a run of a single pixel is
// dropped. The jitter source is only consulted in organic mode.
//
// BuildRow keeps no state between calls, so rows may be built in any
// order.
func BuildRow(pixels []int, row int, cfg Config, jitter Jitter) ([]Segment, error) {
	mod, err := NewModulator(cfg, jitter)
	if err != nil {
		return nil, err
	}
	baseline := float64(row) * cfg.LineSpacing

	var (
		segments []Segment
		current  []Point
		phase    float64
	)
	flush := func() {
		if len(current) >= 2 {
			segments = append(segments, Segment{Row: row, Points: current})
		}
		current = nil
	}
	for x, b := range pixels {
		darkness, visible, err := Sample(b, cfg.WhiteThreshold)
		if err != nil {
			return nil, fmt.Errorf("row %d, column %d: %w", row, x, err)
		}
		if !visible {
			flush()
			continue
		}
		var offset float64
		offset, phase = mod.Advance(darkness, phase)
		current = append(current, Point{
			X: float64(x) * cfg.ColumnSpacing,
			Y: baseline + offset,
		})
	}
	flush()
	return segments, nil
}
