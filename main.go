// Command polargraph converts an image into an SVG of horizontal wavy
// lines for pen plotters. The amplitude and frequency of each line
// follow the darkness of the pixels beneath it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"

	"github.com/fabienbrocklesby/polargraph/render"
	"github.com/fabienbrocklesby/polargraph/wave"
)

type options struct {
	input, output string
	preview       string
	previewScale  float64
	contrast      float64
	width         int
	strokeWidth   float64
	workers       int
	verbose       bool
	cfg           wave.Config
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{cfg: wave.DefaultConfig()}
	fs := flag.NewFlagSet("polargraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: polargraph [flags] input output.svg\n")
		fs.PrintDefaults()
	}
	fs.Float64Var(&opts.cfg.LineSpacing, "line-spacing", opts.cfg.LineSpacing, "Vertical spacing between lines in pixels")
	fs.Float64Var(&opts.cfg.ColumnSpacing, "column-spacing", opts.cfg.ColumnSpacing, "Horizontal spacing between samples")
	fs.Float64Var(&opts.cfg.MaxAmplitude, "amplitude", opts.cfg.MaxAmplitude, "Maximum wave amplitude for the darkest pixels")
	fs.Float64Var(&opts.cfg.FrequencyGain, "frequency-gain", opts.cfg.FrequencyGain, "Extra wave frequency for dark pixels")
	fs.BoolVar(&opts.cfg.OrganicMode, "organic", false, "Add organic variation to the paths")
	fs.Float64Var(&opts.cfg.OrganicStrength, "organic-strength", opts.cfg.OrganicStrength, "Organic variation as a fraction of the amplitude")
	fs.Uint64Var(&opts.cfg.Seed, "seed", 0, "Seed for organic variation (0 picks one at random)")
	fs.IntVar(&opts.cfg.WhiteThreshold, "white-threshold", opts.cfg.WhiteThreshold, "Brightness (0-255) at and above which pixels are skipped")
	fs.Float64Var(&opts.contrast, "contrast", 2.0, "Contrast enhancement factor")
	fs.IntVar(&opts.width, "width", 0, "Resample the input to this many columns (0 keeps the input size)")
	fs.Float64Var(&opts.strokeWidth, "stroke-width", wave.DefaultStyle().StrokeWidth, "Stroke width of the paths")
	fs.IntVar(&opts.workers, "workers", runtime.GOMAXPROCS(0), "Number of rows converted in parallel")
	fs.StringVar(&opts.preview, "preview", "", "Also write a PNG preview to this path")
	fs.Float64Var(&opts.previewScale, "preview-scale", 4, "Preview pixels per output unit")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging")

	// Flags may follow the positional arguments.
	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		pos = append(pos, args[0])
		args = args[1:]
	}
	if len(pos) != 2 {
		fs.Usage()
		return nil, errors.New("expected an input and an output path")
	}
	opts.input, opts.output = pos[0], pos[1]

	if opts.contrast < 0 || !finite(opts.contrast) {
		return nil, fmt.Errorf("%w: contrast factor %v", wave.ErrInvalidInput, opts.contrast)
	}
	if opts.strokeWidth <= 0 || !finite(opts.strokeWidth) {
		return nil, fmt.Errorf("%w: stroke width %v", wave.ErrInvalidInput, opts.strokeWidth)
	}
	if opts.previewScale <= 0 || !finite(opts.previewScale) {
		return nil, fmt.Errorf("%w: preview scale %v", wave.ErrInvalidInput, opts.previewScale)
	}
	if opts.cfg.OrganicMode && opts.cfg.Seed == 0 {
		opts.cfg.Seed = rand.Uint64()
	}
	return opts, opts.cfg.Validate()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func run(ctx context.Context, opts *options, log *slog.Logger) error {
	log.Info("loading image", "path", opts.input)
	img, err := LoadImage(opts.input)
	if err != nil {
		return fmt.Errorf("load %s: %w", opts.input, err)
	}
	gray := EnhanceContrast(Resize(Grayscale(img), opts.width), opts.contrast)
	b := gray.Bounds()
	log.Info("image size", "width", b.Dx(), "height", b.Dy())
	log.Info("parameters",
		"line_spacing", opts.cfg.LineSpacing,
		"max_amplitude", opts.cfg.MaxAmplitude,
		"organic", opts.cfg.OrganicMode,
		"seed", opts.cfg.Seed,
		"contrast", opts.contrast,
		"white_threshold", opts.cfg.WhiteThreshold,
	)

	doc, err := wave.Build(ctx, GridFromGray(gray), opts.cfg, opts.workers)
	if err != nil {
		return err
	}
	doc.Style.StrokeWidth = opts.strokeWidth
	log.Info("generated paths", "segments", len(doc.Segments))

	if err := writeFile(opts.output, func(w io.Writer) error {
		return render.WriteSVG(w, doc)
	}); err != nil {
		return err
	}
	log.Info("svg saved", "path", opts.output)

	if opts.preview != "" {
		if err := writeFile(opts.preview, func(w io.Writer) error {
			return render.WritePNG(w, doc, opts.previewScale)
		}); err != nil {
			return err
		}
		log.Info("preview saved", "path", opts.preview)
	}
	return nil
}

// writeFile creates path and fills it with write. The file is removed
// if writing fails.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "polargraph: %v\n", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	wave.SetLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, opts, log); err != nil {
		log.Error("conversion failed", "err", err)
		stop()
		os.Exit(1)
	}
}
