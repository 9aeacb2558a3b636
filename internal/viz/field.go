package viz

import (
	"math"

	"github.com/san-kum/coulomb/internal/electro"
	"github.com/san-kum/coulomb/internal/sampling"
	"github.com/san-kum/coulomb/internal/vecmath"
)

// Renderer turns a sampled field into a displayable string.
type Renderer interface {
	Render(fm *sampling.FieldMap, charges []electro.Charge) string
}

// Viewport maps in-plane world coordinates of a grid onto canvas
// sub-pixels. The v axis points up.
type Viewport struct {
	Grid   sampling.Grid
	Canvas *Canvas
}

func (vp Viewport) ToPixel(r vecmath.Vector) (x, y int) {
	u, v := vp.Grid.Project(r)
	g := vp.Grid
	fx := (u - g.Min[0]) / (g.Max[0] - g.Min[0])
	fy := (g.Max[1] - v) / (g.Max[1] - g.Min[1])
	x = int(math.Round(fx * float64(vp.Canvas.PixelWidth()-1)))
	y = int(math.Round(fy * float64(vp.Canvas.PixelHeight()-1)))
	return
}

// FieldRenderer draws one stroke per regular sample along the in-plane
// field direction, then marks charges and singular samples.
type FieldRenderer struct {
	Width, Height int
	Stroke        int
	Styled        bool
	Probe         *vecmath.Vector
}

func NewFieldRenderer(w, h int) *FieldRenderer {
	return &FieldRenderer{Width: w, Height: h, Stroke: 3, Styled: true}
}

func (fr *FieldRenderer) Canvas(fm *sampling.FieldMap, charges []electro.Charge) *Canvas {
	c := NewCanvas(fr.Width, fr.Height)
	vp := Viewport{Grid: fm.Grid, Canvas: c}

	for _, s := range fm.Samples {
		x0, y0 := vp.ToPixel(s.At)
		if s.Singular() {
			c.Mark(x0, y0, '*')
			continue
		}
		du, dv := fm.Grid.Project(s.E)
		n := math.Hypot(du, dv)
		if n == 0 {
			c.Set(x0, y0)
			continue
		}
		l := float64(fr.Stroke)
		x1 := x0 + int(math.Round(du/n*l))
		y1 := y0 - int(math.Round(dv/n*l))
		c.DrawLine(x0, y0, x1, y1)
	}

	for _, q := range charges {
		x, y := vp.ToPixel(q.Location())
		c.Mark(x, y, ChargeMark(q.Sign()))
	}
	if fr.Probe != nil {
		x, y := vp.ToPixel(*fr.Probe)
		c.Mark(x, y, ProbeMark)
	}
	return c
}

func (fr *FieldRenderer) Render(fm *sampling.FieldMap, charges []electro.Charge) string {
	c := fr.Canvas(fm, charges)
	if !fr.Styled {
		return c.String()
	}
	return FieldStyle.Render(c.Render(styleMark))
}
