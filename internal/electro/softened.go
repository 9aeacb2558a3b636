package electro

import (
	"fmt"
	"math"

	"github.com/san-kum/coulomb/internal/vecmath"
)

// Softened is a regularized kernel that replaces d² by d² + ε². It is
// finite everywhere, including at a charge's own location, and converges
// to the exact operators for d ≫ ε.
type Softened struct {
	Epsilon float64
}

func NewSoftened(eps float64) (Softened, error) {
	if !(eps > 0) || math.IsInf(eps, 0) {
		return Softened{}, fmt.Errorf("softening length %g must be positive: %w", eps, ErrValidation)
	}
	return Softened{Epsilon: eps}, nil
}

func (s Softened) EFieldIntensity(c Charge, r vecmath.Vector) vecmath.Vector {
	v := r.Sub(c.location)
	d2 := v.Dot(v) + s.Epsilon*s.Epsilon
	return v.Scale(K * c.magnitude / (d2 * math.Sqrt(d2)))
}

func (s Softened) PotentialAt(c Charge, r vecmath.Vector) float64 {
	v := r.Sub(c.location)
	return K * c.magnitude / math.Sqrt(v.Dot(v)+s.Epsilon*s.Epsilon)
}

func (s Softened) ForceOn(self, other Charge) vecmath.Vector {
	return s.EFieldIntensity(self, other.location).Scale(other.magnitude)
}

func (s Softened) FieldOf(sys *System, r vecmath.Vector) vecmath.Vector {
	e := vecmath.Zero
	for _, c := range sys.charges {
		e = e.Add(s.EFieldIntensity(c, r))
	}
	return e
}

func (s Softened) PotentialOf(sys *System, r vecmath.Vector) float64 {
	v := 0.0
	for _, c := range sys.charges {
		v += s.PotentialAt(c, r)
	}
	return v
}

// ForcesOf returns the softened net force on every charge of sys, in order.
// Coincident charges exert no force on each other.
func (s Softened) ForcesOf(sys *System) []vecmath.Vector {
	out := make([]vecmath.Vector, len(sys.charges))
	for i, target := range sys.charges {
		f := vecmath.Zero
		for j, c := range sys.charges {
			if j != i {
				f = f.Add(s.ForceOn(c, target))
			}
		}
		out[i] = f
	}
	return out
}

// Bind returns a Source evaluating sys through the softened kernel.
func (s Softened) Bind(sys *System) Source {
	return softSource{soft: s, sys: sys}
}

type softSource struct {
	soft Softened
	sys  *System
}

func (ss softSource) FieldAt(r vecmath.Vector) (vecmath.Vector, error) {
	return ss.soft.FieldOf(ss.sys, r), nil
}

func (ss softSource) PotentialAt(r vecmath.Vector) (float64, error) {
	return ss.soft.PotentialOf(ss.sys, r), nil
}
