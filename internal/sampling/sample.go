package sampling

import (
	"github.com/san-kum/coulomb/internal/electro"
	"github.com/san-kum/coulomb/internal/vecmath"
)

type Sample struct {
	At  vecmath.Vector
	E   vecmath.Vector
	V   float64
	Err error
}

func (s Sample) Singular() bool {
	return s.Err != nil
}

// Probe evaluates field and potential at a single point.
func Probe(src electro.Source, r vecmath.Vector) Sample {
	s := Sample{At: r}
	e, err := src.FieldAt(r)
	if err != nil {
		s.Err = err
		return s
	}
	v, err := src.PotentialAt(r)
	if err != nil {
		s.Err = err
		return s
	}
	s.E, s.V = e, v
	return s
}
