package electro

import (
	"github.com/san-kum/coulomb/internal/vecmath"
)

// K is Coulomb's constant in N·m²/C².
const K = 8.9875517923e9

// ForceOn returns the force exerted on other by self:
//
//	F = K·q_self·q_other·û / d²,  û = (other − self)/d
//
// Like charges push other away from self. Coincident charges fail with
// ErrDomain.
func ForceOn(self, other Charge) (vecmath.Vector, error) {
	r := other.location.Sub(self.location)
	u, err := r.Unit()
	if err != nil {
		return vecmath.Zero, &Error{Op: "force", Charge: self, At: other.location, Wrapped: err}
	}
	d2 := r.Dot(r)
	return u.Scale(K * self.magnitude * other.magnitude / d2), nil
}

// PotentialAt returns K·q/|c − r|. The potential is singular at the
// charge's own location, which is reported as ErrDomain.
func PotentialAt(c Charge, r vecmath.Vector) (float64, error) {
	d := c.location.Sub(r).Norm()
	if d == 0 {
		return 0, &Error{Op: "potential", Charge: c, At: r, Wrapped: vecmath.ErrDomain}
	}
	return K * c.magnitude / d, nil
}

// EFieldIntensity returns the field at r due to c, pointing away from c
// when q > 0.
func EFieldIntensity(c Charge, r vecmath.Vector) (vecmath.Vector, error) {
	v := r.Sub(c.location)
	u, err := v.Unit()
	if err != nil {
		return vecmath.Zero, &Error{Op: "field", Charge: c, At: r, Wrapped: err}
	}
	return u.Scale(K * c.magnitude / v.Dot(v)), nil
}
