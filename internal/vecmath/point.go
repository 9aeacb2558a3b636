package vecmath

// Point is a location in space. It carries no invariants beyond those of
// the wrapped Vector.
type Point struct {
	Loc Vector
}

func Pt(x, y, z float64) Point {
	return Point{Loc: Vec(x, y, z)}
}

func PointOf(v Vector) Point {
	return Point{Loc: v}
}

// Vector returns the underlying location unchanged.
func (p Point) Vector() Vector {
	return p.Loc
}

func (p Point) X() float64 { return p.Loc[0] }
func (p Point) Y() float64 { return p.Loc[1] }
func (p Point) Z() float64 { return p.Loc[2] }

func (p Point) String() string {
	return p.Loc.String()
}
