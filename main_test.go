package main

import (
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fabienbrocklesby/polargraph/wave"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"in.png", "out.svg", "-line-spacing", "3", "-organic", "-seed", "7", "--amplitude=5"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if opts.input != "in.png" || opts.output != "out.svg" {
		t.Errorf("paths %q %q", opts.input, opts.output)
	}
	cfg := opts.cfg
	if cfg.LineSpacing != 3 || cfg.MaxAmplitude != 5 || !cfg.OrganicMode || cfg.Seed != 7 {
		t.Errorf("config %+v", cfg)
	}
	if cfg.WhiteThreshold != 250 || opts.contrast != 2 {
		t.Errorf("defaults not applied: %+v contrast %v", cfg, opts.contrast)
	}
}

func TestParseArgsRandomSeed(t *testing.T) {
	opts, err := parseArgs([]string{"-organic", "a.png", "b.svg"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if opts.cfg.Seed == 0 {
		t.Error("organic mode without seed kept seed 0")
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := [][]string{
		{"only-input.png"},
		{"a.png", "b.svg", "c"},
		{"a.png", "b.svg", "-white-threshold", "300"},
		{"a.png", "b.svg", "-amplitude", "-1"},
		{"a.png", "b.svg", "-contrast", "-2"},
		{"a.png", "b.svg", "-contrast", "NaN"},
		{"a.png", "b.svg", "-contrast", "+Inf"},
		{"a.png", "b.svg", "-stroke-width", "NaN"},
		{"a.png", "b.svg", "-preview-scale", "Inf"},
		{"a.png", "b.svg", "-bogus"},
	}
	for _, args := range tests {
		if _, err := parseArgs(args, io.Discard); err == nil {
			t.Errorf("parseArgs(%q) succeeded", args)
		}
	}
	_, err := parseArgs([]string{"a.png", "b.svg", "-white-threshold", "300"}, io.Discard)
	if !errors.Is(err, wave.ErrInvalidInput) {
		t.Errorf("threshold error = %v, want ErrInvalidInput", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	img := image.NewGray(image.Rect(0, 0, 30, 12))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	// A dark bar across rows 4-7.
	for y := 4; y < 8; y++ {
		for x := 2; x < 28; x++ {
			img.Pix[y*img.Stride+x] = 40
		}
	}
	in := filepath.Join(dir, "in.png")
	f, err := os.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	opts, err := parseArgs([]string{in, filepath.Join(dir, "out.svg"), "-preview", filepath.Join(dir, "out.png"), "-workers", "3"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(context.Background(), opts, log); err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(opts.output)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(out), "<path"); n != 4 {
		t.Errorf("got %d paths, want 4", n)
	}
	if _, err := os.Stat(opts.preview); err != nil {
		t.Errorf("preview: %v", err)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	opts, err := parseArgs([]string{filepath.Join(dir, "nope.png"), filepath.Join(dir, "out.svg")}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(context.Background(), opts, log); err == nil {
		t.Fatal("missing input converted")
	}
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	failure := errors.New("disk full")
	err := writeFile(path, func(w io.Writer) error {
		io.WriteString(w, "<svg")
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("error = %v, want %v", err, failure)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial output left behind: %v", err)
	}

	if err := writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "<svg/>")
		return err
	}); err != nil {
		t.Fatal(err)
	}
	if b, err := os.ReadFile(path); err != nil || string(b) != "<svg/>" {
		t.Errorf("read back %q, %v", b, err)
	}
}
