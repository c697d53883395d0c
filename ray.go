package raycast

// Ray is a half-line starting at Origin and extending along Direction.
//
// Direction does not need to be unit length; every intersection routine is
// homogeneous in its scale. Hit parameters (Hit.T) are expressed in units of
// Direction, so they are distances only when Direction is normalized.
type Ray struct {
	Origin    Point
	Direction Point
}

// At returns the point Origin + t*Direction.
func (r Ray) At(t float64) Point {
	return Point{
		X: r.Origin.X + r.Direction.X*t,
		Y: r.Origin.Y + r.Direction.Y*t,
	}
}

// Hit is the result of an intersection query.
//
// Point and T are only meaningful when OK is true.
type Hit struct {
	OK    bool
	Point Point
	T     float64
}

// Miss is the zero Hit.
var Miss = Hit{}

// hitAt builds a successful Hit at parameter t along r.
func hitAt(r Ray, t float64) Hit {
	return Hit{OK: true, Point: r.At(t), T: t}
}

// Nearer returns whichever of h and other lies closer to the ray origin.
// Misses lose against any hit; when both miss the result is a miss.
// Ties keep h.
func (h Hit) Nearer(other Hit) Hit {
	switch {
	case !other.OK:
		return h
	case !h.OK:
		return other
	case other.T < h.T:
		return other
	default:
		return h
	}
}
