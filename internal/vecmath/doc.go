// Package vecmath provides the geometric primitives used by the
// electrostatics kernel.
//
//   - [Vector]: immutable 3-component Euclidean vector
//   - [Point]: a location in space, wrapping a [Vector]
//
// Vector is a defined type over mgl64.Vec3 so values convert to and from
// the mathgl types for free. Operations that are undefined at zero
// (division by a zero scalar, the direction of a zero vector) return
// [ErrDomain] instead of producing Inf or NaN.
//
// # Example
//
//	r := vecmath.Vec(1, 0, 0).Sub(vecmath.Vec(0, 0, 0))
//	u, err := r.Unit()
package vecmath
