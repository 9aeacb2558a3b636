package electro

import (
	"fmt"

	"github.com/san-kum/coulomb/internal/vecmath"
)

// Source is anything that yields a field and a potential at a point.
type Source interface {
	FieldAt(r vecmath.Vector) (vecmath.Vector, error)
	PotentialAt(r vecmath.Vector) (float64, error)
}

// System is a set of point charges whose contributions superpose
// linearly. Charges are held by value.
type System struct {
	charges []Charge
}

func NewSystem(charges ...Charge) *System {
	s := &System{charges: make([]Charge, len(charges))}
	copy(s.charges, charges)
	return s
}

func (s *System) Add(c Charge) {
	s.charges = append(s.charges, c)
}

func (s *System) Len() int {
	return len(s.charges)
}

func (s *System) At(i int) Charge {
	return s.charges[i]
}

// Charges returns a copy of the charges.
func (s *System) Charges() []Charge {
	out := make([]Charge, len(s.charges))
	copy(out, s.charges)
	return out
}

func (s *System) TotalCharge() float64 {
	q := 0.0
	for _, c := range s.charges {
		q += c.magnitude
	}
	return q
}

// DipoleMoment is Σ qᵢ·rᵢ about the origin.
func (s *System) DipoleMoment() vecmath.Vector {
	p := vecmath.Zero
	for _, c := range s.charges {
		p = p.Add(c.location.Scale(c.magnitude))
	}
	return p
}

// FieldAt is the vector sum of every charge's field at r. Any singular
// contribution fails the whole evaluation.
func (s *System) FieldAt(r vecmath.Vector) (vecmath.Vector, error) {
	e := vecmath.Zero
	for _, c := range s.charges {
		ei, err := EFieldIntensity(c, r)
		if err != nil {
			return vecmath.Zero, err
		}
		e = e.Add(ei)
	}
	return e, nil
}

// PotentialAt is the arithmetic sum of every charge's potential at r.
func (s *System) PotentialAt(r vecmath.Vector) (float64, error) {
	v := 0.0
	for _, c := range s.charges {
		vi, err := PotentialAt(c, r)
		if err != nil {
			return 0, err
		}
		v += vi
	}
	return v, nil
}

// ForceOn is the net force on charge i from every other charge.
func (s *System) ForceOn(i int) (vecmath.Vector, error) {
	if i < 0 || i >= len(s.charges) {
		return vecmath.Zero, fmt.Errorf("electro: charge index %d out of range [0, %d)", i, len(s.charges))
	}
	target := s.charges[i]
	f := vecmath.Zero
	for j, c := range s.charges {
		if j == i {
			continue
		}
		fj, err := ForceOn(c, target)
		if err != nil {
			return vecmath.Zero, err
		}
		f = f.Add(fj)
	}
	return f, nil
}

// Forces returns the net force on every charge, in order.
func (s *System) Forces() ([]vecmath.Vector, error) {
	out := make([]vecmath.Vector, len(s.charges))
	for i := range s.charges {
		f, err := s.ForceOn(i)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
