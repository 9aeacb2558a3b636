// Package electro computes electrostatic quantities produced by point
// charges:
//
//   - [ForceOn]: Coulomb force exerted by one charge on another
//   - [PotentialAt]: scalar potential of a charge at a point
//   - [EFieldIntensity]: field intensity of a charge at a point
//   - [System]: superposition of many charges
//
// All operators are pure functions of their arguments and of the fixed
// Coulomb constant [K], so they may be called from any goroutine.
//
// # Singularities
//
// Field quantities are undefined where the observation point coincides
// with a charge. Every operator reports that case as an [*Error] wrapping
// [ErrDomain]; nothing is clamped unless the caller opts into [Softened].
//
//	a := electro.NewAt(1e-6, vecmath.Vec(0, 0, 0))
//	b := electro.NewAt(-1e-6, vecmath.Vec(1, 0, 0))
//	f, err := electro.ForceOn(a, b) // points toward a
package electro
