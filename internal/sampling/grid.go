package sampling

import (
	"fmt"

	"github.com/san-kum/coulomb/internal/electro"
	"github.com/san-kum/coulomb/internal/vecmath"
)

// Grid is an Nx by Ny lattice spanning [Min, Max] in the named plane
// ("xy", "xz" or "yz"), placed at Offset along the plane normal.
type Grid struct {
	Plane    string
	Min, Max [2]float64
	Offset   float64
	Nx, Ny   int
}

func (g Grid) Validate() error {
	switch g.Plane {
	case "xy", "xz", "yz":
	default:
		return fmt.Errorf("sampling: unknown plane %q: %w", g.Plane, electro.ErrValidation)
	}
	if g.Nx < 2 || g.Ny < 2 {
		return fmt.Errorf("sampling: grid %dx%d too small: %w", g.Nx, g.Ny, electro.ErrValidation)
	}
	if g.Max[0] <= g.Min[0] || g.Max[1] <= g.Min[1] {
		return fmt.Errorf("sampling: grid bounds %v..%v are degenerate: %w", g.Min, g.Max, electro.ErrValidation)
	}
	return nil
}

// Coords returns the in-plane coordinates of node (i, j).
func (g Grid) Coords(i, j int) (u, v float64) {
	u = g.Min[0] + (g.Max[0]-g.Min[0])*float64(i)/float64(g.Nx-1)
	v = g.Min[1] + (g.Max[1]-g.Min[1])*float64(j)/float64(g.Ny-1)
	return
}

// Embed maps in-plane coordinates to a 3-D point.
func (g Grid) Embed(u, v float64) vecmath.Vector {
	switch g.Plane {
	case "xz":
		return vecmath.Vec(u, g.Offset, v)
	case "yz":
		return vecmath.Vec(g.Offset, u, v)
	default:
		return vecmath.Vec(u, v, g.Offset)
	}
}

// Project is the inverse of Embed, dropping the normal component.
func (g Grid) Project(r vecmath.Vector) (u, v float64) {
	switch g.Plane {
	case "xz":
		return r.X(), r.Z()
	case "yz":
		return r.Y(), r.Z()
	default:
		return r.X(), r.Y()
	}
}

func (g Grid) Point(i, j int) vecmath.Vector {
	return g.Embed(g.Coords(i, j))
}

// Points lists every node, row by row (j outer, i inner).
func (g Grid) Points() []vecmath.Vector {
	pts := make([]vecmath.Vector, 0, g.Nx*g.Ny)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			pts = append(pts, g.Point(i, j))
		}
	}
	return pts
}

type FieldMap struct {
	Grid    Grid
	Samples []Sample
}

func (fm *FieldMap) At(i, j int) Sample {
	return fm.Samples[j*fm.Grid.Nx+i]
}

func (fm *FieldMap) Singular() []Sample {
	var out []Sample
	for _, s := range fm.Samples {
		if s.Singular() {
			out = append(out, s)
		}
	}
	return out
}

// SampleGrid evaluates src at every node of g.
func SampleGrid(src electro.Source, g Grid) (*FieldMap, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	pts := g.Points()
	fm := &FieldMap{Grid: g, Samples: make([]Sample, len(pts))}
	for k, r := range pts {
		fm.Samples[k] = Probe(src, r)
	}
	return fm, nil
}
