package sampling

import (
	"fmt"

	"github.com/san-kum/coulomb/internal/electro"
	"github.com/san-kum/coulomb/internal/vecmath"
)

// Line is N evenly spaced points from From to To inclusive.
type Line struct {
	From, To vecmath.Vector
	N        int
}

func (l Line) Point(k int) vecmath.Vector {
	t := float64(k) / float64(l.N-1)
	return l.From.Add(l.To.Sub(l.From).Scale(t))
}

type ProfilePoint struct {
	Sample
	S float64
}

// Profile is a line sweep; S is the distance from the line start.
type Profile struct {
	Line   Line
	Points []ProfilePoint
}

func SampleLine(src electro.Source, l Line) (*Profile, error) {
	if l.N < 2 {
		return nil, fmt.Errorf("sampling: line needs at least 2 points, got %d: %w", l.N, electro.ErrValidation)
	}
	if l.From == l.To {
		return nil, fmt.Errorf("sampling: zero-length line at %v: %w", l.From, electro.ErrValidation)
	}
	p := &Profile{Line: l, Points: make([]ProfilePoint, l.N)}
	for k := range p.Points {
		r := l.Point(k)
		p.Points[k] = ProfilePoint{Sample: Probe(src, r), S: r.Distance(l.From)}
	}
	return p, nil
}

// Potentials returns V along the line, skipping singular points.
func (p *Profile) Potentials() []float64 {
	out := make([]float64, 0, len(p.Points))
	for _, pt := range p.Points {
		if !pt.Singular() {
			out = append(out, pt.V)
		}
	}
	return out
}

// FieldMagnitudes returns |E| along the line, skipping singular points.
func (p *Profile) FieldMagnitudes() []float64 {
	out := make([]float64, 0, len(p.Points))
	for _, pt := range p.Points {
		if !pt.Singular() {
			out = append(out, pt.E.Norm())
		}
	}
	return out
}
