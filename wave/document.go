package wave

import (
	"context"
	"fmt"
	"sync"
)

// Style is the stroke styling of a document.
type Style struct {
	StrokeWidth float64
	StrokeColor string
}

// DefaultStyle is a thin black pen.
func DefaultStyle() Style {
	return Style{StrokeWidth: 0.5, StrokeColor: "black"}
}

// Document is the finished drawing: segments in row order, and left to
// right within a row.
type Document struct {
	Width, Height float64
	Style         Style
	Segments      []Segment
}

// Grid is a row-major raster of brightness values in 0-255.
type Grid [][]int

// Dims returns the width and height of the grid. Rows of unequal
// length are an error.
func (g Grid) Dims() (width, height int, err error) {
	if len(g) == 0 {
		return 0, 0, nil
	}
	width = len(g[0])
	for i, row := range g {
		if len(row) != width {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidInput, i, len(row), width)
		}
	}
	return width, len(g), nil
}

// Assemble concatenates the segments of each row, in row order, into a
// document sized for a width by height image.
func Assemble(rows [][]Segment, width, height int, cfg Config) *Document {
	doc := &Document{
		Width:  float64(width) * cfg.ColumnSpacing,
		Height: float64(height) * cfg.LineSpacing,
		Style:  DefaultStyle(),
	}
	for _, segs := range rows {
		doc.Segments = append(doc.Segments, segs...)
	}
	return doc
}

// Build converts every row of g and assembles the result. Rows are
// built by up to workers goroutines; the document does not depend on
// the number of workers. Build stops dispatching rows once ctx is done.
func Build(ctx context.Context, g Grid, cfg Config, workers int) (*Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	width, height, err := g.Dims()
	if err != nil {
		return nil, err
	}
	if width == 0 || height == 0 {
		return Assemble(nil, width, height, cfg), nil
	}

	rows := make([][]Segment, height)
	errs := make([]error, height)
	build := func(r int) {
		var jitter Jitter
		if cfg.OrganicMode {
			jitter = NewNoise(cfg.Seed, uint64(r))
		}
		rows[r], errs[r] = BuildRow(g[r], r, cfg, jitter)
	}

	workers = min(workers, height)
	Logger().Debug("building rows", "width", width, "height", height, "workers", max(workers, 1))
	if workers <= 1 {
		for r := range height {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			build(r)
			if errs[r] != nil {
				return nil, errs[r]
			}
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		wg.Add(workers)
		for range workers {
			go func() {
				defer wg.Done()
				for r := range jobs {
					build(r)
				}
			}()
		}
	dispatch:
		for r := range height {
			select {
			case <-ctx.Done():
				break dispatch
			case jobs <- r:
			}
		}
		close(jobs)
		wg.Wait()
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Lowest row first, regardless of completion order.
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}

	doc := Assemble(rows, width, height, cfg)
	Logger().Debug("document assembled", "segments", len(doc.Segments))
	return doc, nil
}
