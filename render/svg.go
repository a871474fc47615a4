// Package render serializes wave documents as SVG for plotting and as
// raster previews.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/fabienbrocklesby/polargraph/wave"
)

// PathData formats a segment as SVG path data: a move to the first
// point followed by lines to the rest.
func PathData(s wave.Segment) string {
	var sb strings.Builder
	for i, p := range s.Points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		} else {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s %.2f,%.2f", cmd, p.X, p.Y)
	}
	return sb.String()
}

func dim(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// WriteSVG writes doc as an SVG document with one path element per
// segment.
func WriteSVG(w io.Writer, doc *wave.Document) error {
	out := bufio.NewWriter(w)
	canvas := svg.New(out)
	canvas.Startraw(
		fmt.Sprintf(`width="%s"`, dim(doc.Width)),
		fmt.Sprintf(`height="%s"`, dim(doc.Height)),
		fmt.Sprintf(`viewBox="0 0 %s %s"`, dim(doc.Width), dim(doc.Height)),
	)
	canvas.Group(
		`id="polargraph-paths"`,
		fmt.Sprintf(`stroke="%s"`, doc.Style.StrokeColor),
		fmt.Sprintf(`stroke-width="%s"`, strconv.FormatFloat(doc.Style.StrokeWidth, 'g', -1, 64)),
		`fill="none"`,
		`stroke-linecap="round"`,
		`stroke-linejoin="round"`,
	)
	for _, s := range doc.Segments {
		canvas.Path(PathData(s))
	}
	canvas.Gend()
	canvas.End()
	return out.Flush()
}
