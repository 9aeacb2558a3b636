package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/coulomb/internal/electro"
	"github.com/san-kum/coulomb/internal/sampling"
)

const (
	positiveColor = "#d62728"
	negativeColor = "#1f77b4"
	neutralColor  = "#000000"
	arrowColor    = "#2ca02c"
)

// ChargeColor is red for positive, blue for negative and black for neutral
// charges.
func ChargeColor(c electro.Charge) string {
	switch c.Sign() {
	case 1:
		return positiveColor
	case -1:
		return negativeColor
	default:
		return neutralColor
	}
}

// ChargeRadius grows with the square root of |q|, in pixels.
func ChargeRadius(c electro.Charge, scale float64) float64 {
	return scale * (math.Sqrt(math.Abs(c.Magnitude()))/2 + 1)
}

// FieldMapToSVG draws a unit arrow per regular sample along the in-plane
// field direction and a circle per charge.
func FieldMapToSVG(fm *sampling.FieldMap, charges []electro.Charge, width, height int) string {
	if fm == nil || len(fm.Samples) == 0 {
		return ""
	}

	g := fm.Grid
	sx := float64(width) / (g.Max[0] - g.Min[0])
	sy := float64(height) / (g.Max[1] - g.Min[1])
	toPx := func(u, v float64) (float64, float64) {
		return (u - g.Min[0]) * sx, float64(height) - (v-g.Min[1])*sy
	}

	cell := math.Min(float64(width)/float64(g.Nx), float64(height)/float64(g.Ny))
	arrowLen := 0.4 * cell

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<defs><marker id="head" markerWidth="6" markerHeight="6" refX="5" refY="3" orient="auto"><path d="M0,0 L6,3 L0,6 z" fill="%s"/></marker></defs>
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g stroke="%s" stroke-width="1" marker-end="url(#head)">
`, width, height, width, height, arrowColor, arrowColor))

	for _, s := range fm.Samples {
		if s.Singular() {
			continue
		}
		du, dv := g.Project(s.E)
		n := math.Hypot(du, dv)
		if n == 0 {
			continue
		}
		u, v := g.Project(s.At)
		x0, y0 := toPx(u, v)
		x1 := x0 + du/n*arrowLen
		y1 := y0 - dv/n*arrowLen
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x0, y0, x1, y1))
	}
	sb.WriteString("</g>\n")

	for _, c := range charges {
		u, v := g.Project(c.Location())
		cx, cy := toPx(u, v)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, ChargeRadius(c, 0.15*cell), ChargeColor(c)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ProfileToSVG creates a polyline of potential against distance along the
// line, skipping singular points.
func ProfileToSVG(p *sampling.Profile, width, height int, strokeColor string) string {
	points := make([]struct{ X, Y float64 }, 0, len(p.Points))
	for _, pt := range p.Points {
		if !pt.Singular() {
			points = append(points, struct{ X, Y float64 }{pt.S, pt.V})
		}
	}
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	rangeY *= 1.2

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
