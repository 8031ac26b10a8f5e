package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"
)

// SVGCanvas records primitives as SVG elements.
type SVGCanvas struct {
	w, h int
	sb   strings.Builder
}

// NewSVGCanvas returns an SVG canvas with a w×h viewport.
func NewSVGCanvas(w, h int) *SVGCanvas {
	return &SVGCanvas{w: w, h: h}
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// Clear implements Canvas. Earlier elements are discarded.
func (s *SVGCanvas) Clear(c color.Color) {
	s.sb.Reset()
	s.sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>
`, hexColor(c)))
}

// FillRect implements Canvas.
func (s *SVGCanvas) FillRect(x, y, w, h float64, c color.Color) {
	s.sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>
`, x, y, w, h, hexColor(c)))
}

// StrokeLine implements Canvas.
func (s *SVGCanvas) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	s.sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>
`, x0, y0, x1, y1, hexColor(c), width))
}

// StrokeArc implements Canvas. Arcs sweep clockwise on screen, which is SVG's
// positive sweep direction.
func (s *SVGCanvas) StrokeArc(cx, cy, r, start, end, width float64, c color.Color) {
	x0, y0 := cx+r*math.Cos(start), cy+r*math.Sin(start)
	x1, y1 := cx+r*math.Cos(end), cy+r*math.Sin(end)
	large := 0
	if end-start > math.Pi {
		large = 1
	}
	s.sb.WriteString(fmt.Sprintf(`<path d="M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f" fill="none" stroke="%s" stroke-width="%.2f"/>
`, x0, y0, r, r, large, x1, y1, hexColor(c), width))
}

// WriteTo writes the complete SVG document.
func (s *SVGCanvas) WriteTo(w io.Writer) (int64, error) {
	var doc strings.Builder
	doc.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, s.w, s.h, s.w, s.h))
	doc.WriteString(s.sb.String())
	doc.WriteString("</svg>\n")
	n, err := io.WriteString(w, doc.String())
	return int64(n), err
}
