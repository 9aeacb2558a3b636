package electro

import (
	"fmt"

	"github.com/san-kum/coulomb/internal/vecmath"
)

// Charge is a point source: a signed magnitude in coulombs at a single
// location. The zero value is a neutral charge at the origin.
type Charge struct {
	magnitude float64
	location  vecmath.Vector
}

// New builds a charge from a coordinate slice, which must have exactly
// three elements.
func New(q float64, loc []float64) (Charge, error) {
	v, err := vecmath.FromSlice(loc)
	if err != nil {
		return Charge{}, &Error{Op: "new", Charge: Charge{magnitude: q}, Wrapped: err}
	}
	return Charge{magnitude: q, location: v}, nil
}

func NewAt(q float64, loc vecmath.Vector) Charge {
	return Charge{magnitude: q, location: loc}
}

func NewAtPoint(q float64, p vecmath.Point) Charge {
	return Charge{magnitude: q, location: p.Vector()}
}

func (c Charge) Magnitude() float64 { return c.magnitude }

// Coulomb is the magnitude under its physical name.
func (c Charge) Coulomb() float64 { return c.magnitude }

func (c Charge) Location() vecmath.Vector { return c.location }

func (c Charge) Point() vecmath.Point { return vecmath.PointOf(c.location) }

func (c *Charge) SetMagnitude(q float64) { c.magnitude = q }

func (c *Charge) SetCoulomb(q float64) { c.magnitude = q }

func (c *Charge) SetLocation(loc vecmath.Vector) { c.location = loc }

// SetLocationSlice replaces the location from a coordinate slice. On error
// the previous location is kept.
func (c *Charge) SetLocationSlice(loc []float64) error {
	v, err := vecmath.FromSlice(loc)
	if err != nil {
		return &Error{Op: "set location", Charge: *c, Wrapped: err}
	}
	c.location = v
	return nil
}

// Sign returns -1, 0 or +1.
func (c Charge) Sign() int {
	switch {
	case c.magnitude > 0:
		return 1
	case c.magnitude < 0:
		return -1
	default:
		return 0
	}
}

func (c Charge) String() string {
	return fmt.Sprintf("%gC@%v", c.magnitude, c.location)
}

// ForceOn returns the force exerted by c on other. See [ForceOn].
func (c Charge) ForceOn(other Charge) (vecmath.Vector, error) {
	return ForceOn(c, other)
}

func (c Charge) PotentialAt(r vecmath.Vector) (float64, error) {
	return PotentialAt(c, r)
}

func (c Charge) EFieldIntensity(r vecmath.Vector) (vecmath.Vector, error) {
	return EFieldIntensity(c, r)
}
