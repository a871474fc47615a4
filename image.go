package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/fabienbrocklesby/polargraph/wave"
)

// LoadImage decodes the image at filePath, choosing the decoder by
// extension. SVG files are rasterised onto white.
func LoadImage(filePath string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var decode func(io.Reader) (image.Image, error)
	switch ext {
	case ".svg":
		return rasterizeSVG(data)
	case ".png":
		decode = png.Decode
	case ".jpg", ".jpeg":
		decode = jpeg.Decode
	case ".gif":
		decode = gif.Decode
	case ".bmp":
		decode = bmp.Decode
	case ".tif", ".tiff":
		decode = tiff.Decode
	case ".webp":
		decode = webp.Decode
	default:
		return nil, errors.New("unsupported image format: " + ext)
	}
	return decode(bytes.NewReader(data))
}

// Grayscale converts src to 8-bit luma, compositing translucent pixels
// onto white.
func Grayscale(src image.Image) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := src.At(x, y).RGBA()
			// Premultiplied, so adding the missing coverage as white
			// composites over a white background.
			bg := 0xffff - a
			r, g, b = r+bg, g+bg, b+bg
			gray := uint8(((299*r + 587*g + 114*b) / 1000) >> 8)
			dst.SetGray(x-bounds.Min.X, y-bounds.Min.Y, color.Gray{gray})
		}
	}
	return dst
}

// Resize scales src to the given width, keeping its aspect ratio. A
// width of zero or less returns src unchanged.
func Resize(src *image.Gray, width int) *image.Gray {
	b := src.Bounds()
	if width <= 0 || width == b.Dx() || b.Dx() == 0 {
		return src
	}
	height := int(math.Round(float64(b.Dy()) * float64(width) / float64(b.Dx())))
	dst := image.NewGray(image.Rect(0, 0, width, max(height, 1)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// EnhanceContrast scales each pixel's distance from the mean brightness
// by factor. A factor of 1 leaves the image unchanged, 0 yields a flat
// gray image.
func EnhanceContrast(src *image.Gray, factor float64) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(b)
	n := b.Dx() * b.Dy()
	if n == 0 {
		return dst
	}
	var sum int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += int(src.GrayAt(x, y).Y)
		}
	}
	mean := math.Round(float64(sum) / float64(n))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := mean + factor*(float64(src.GrayAt(x, y).Y)-mean)
			v = math.Max(0, math.Min(255, math.Round(v)))
			dst.SetGray(x, y, color.Gray{uint8(v)})
		}
	}
	return dst
}

// GridFromGray copies img into a brightness grid.
func GridFromGray(img *image.Gray) wave.Grid {
	b := img.Bounds()
	g := make(wave.Grid, b.Dy())
	for y := range g {
		row := make([]int, b.Dx())
		for x := range row {
			row[x] = int(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
		}
		g[y] = row
	}
	return g
}
