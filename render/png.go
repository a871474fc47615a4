package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/fabienbrocklesby/polargraph/wave"
)

// Rasterize strokes the segments of doc onto a white image, scale
// pixels per document unit.
func Rasterize(doc *wave.Document, scale float64) *image.RGBA {
	width := int(math.Ceil(doc.Width * scale))
	height := int(math.Ceil(doc.Height * scale))
	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	dasher := rasterx.NewDasher(b.Dx(), b.Dy(), scanner)
	stroke := doc.Style.StrokeWidth * scale * 64
	dasher.SetStroke(fixed.Int26_6(stroke), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	dasher.SetColor(color.Black)
	for _, s := range doc.Segments {
		for i, p := range s.Points {
			fp := rasterx.ToFixedP(p.X*scale, p.Y*scale)
			if i == 0 {
				dasher.Start(fp)
			} else {
				dasher.Line(fp)
			}
		}
		dasher.Stop(false)
	}
	dasher.Draw()
	return img
}

// WritePNG encodes a preview of doc.
func WritePNG(w io.Writer, doc *wave.Document, scale float64) error {
	return png.Encode(w, Rasterize(doc, scale))
}
