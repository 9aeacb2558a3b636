package vecmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Dim is the fixed dimensionality of every vector and point.
const Dim = 3

type Vector mgl64.Vec3

// Zero is the origin.
var Zero = Vector{}

func Vec(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// FromSlice builds a Vector from exactly three coordinates.
func FromSlice(xs []float64) (Vector, error) {
	if len(xs) != Dim {
		return Zero, &DimensionError{Got: len(xs)}
	}
	return Vector{xs[0], xs[1], xs[2]}, nil
}

func (a Vector) X() float64 { return a[0] }
func (a Vector) Y() float64 { return a[1] }
func (a Vector) Z() float64 { return a[2] }

// Slice returns a fresh copy of the components.
func (a Vector) Slice() []float64 {
	return []float64{a[0], a[1], a[2]}
}

func (a Vector) Vec3() mgl64.Vec3 {
	return mgl64.Vec3(a)
}

func (a Vector) Add(b Vector) Vector {
	return Vector(a.Vec3().Add(b.Vec3()))
}

func (a Vector) Sub(b Vector) Vector {
	return Vector(a.Vec3().Sub(b.Vec3()))
}

func (a Vector) Scale(s float64) Vector {
	return Vector(a.Vec3().Mul(s))
}

func (a Vector) Neg() Vector {
	return a.Scale(-1)
}

// Divide returns a/s. It fails with ErrDomain when s is zero.
func (a Vector) Divide(s float64) (Vector, error) {
	if s == 0 {
		return Zero, fmt.Errorf("divide %v by zero: %w", a, ErrDomain)
	}
	return Vector{a[0] / s, a[1] / s, a[2] / s}, nil
}

func (a Vector) Dot(b Vector) float64 {
	return a.Vec3().Dot(b.Vec3())
}

func (a Vector) Cross(b Vector) Vector {
	return Vector(a.Vec3().Cross(b.Vec3()))
}

// Norm is the Euclidean length, always >= 0.
func (a Vector) Norm() float64 {
	return a.Vec3().Len()
}

func (a Vector) Distance(b Vector) float64 {
	return a.Sub(b).Norm()
}

// Unit returns a / |a|. The direction of the zero vector is undefined and
// reported as ErrDomain.
func (a Vector) Unit() (Vector, error) {
	n := a.Norm()
	if n == 0 {
		return Zero, fmt.Errorf("unit of zero vector: %w", ErrDomain)
	}
	return Vector{a[0] / n, a[1] / n, a[2] / n}, nil
}

func (a Vector) IsZero() bool {
	return a == Zero
}

func (a Vector) IsValid() bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (a Vector) Equal(b Vector) bool {
	return a == b
}

// ApproxEqual compares componentwise within an absolute tolerance.
func (a Vector) ApproxEqual(b Vector, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// ApproxEqualRel compares componentwise within rel times the larger of the
// two norms. Two zero vectors are always equal.
func (a Vector) ApproxEqualRel(b Vector, rel float64) bool {
	scale := math.Max(a.Norm(), b.Norm())
	if scale == 0 {
		return true
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > rel*scale {
			return false
		}
	}
	return true
}

func (a Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", a[0], a[1], a[2])
}
