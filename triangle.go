package raycast

import "math"

// Triangle is the right triangle spanned by a source point and a target
// point, with the right angle at Corner = (Target.X, Source.Y).
//
// The horizontal leg runs Source→Corner (adjacent to the angle at Source),
// the vertical leg runs Corner→Target (opposite to it).
type Triangle struct {
	Source, Corner, Target Point
}

// NewTriangle builds the triangle between source and target.
func NewTriangle(source, target Point) Triangle {
	return Triangle{
		Source: source,
		Corner: Point{X: target.X, Y: source.Y},
		Target: target,
	}
}

// Adjacent returns the signed horizontal leg.
func (t Triangle) Adjacent() float64 {
	return t.Corner.X - t.Source.X
}

// Opposite returns the signed vertical leg.
func (t Triangle) Opposite() float64 {
	return t.Target.Y - t.Corner.Y
}

// Hypotenuse returns the distance from Source to Target.
func (t Triangle) Hypotenuse() float64 {
	return math.Hypot(t.Adjacent(), t.Opposite())
}

// Direction returns the unit vector (cos, sin) of the angle at Source.
//
// When Source and Target coincide the hypotenuse is zero and both
// components are NaN. Intersection queries treat a NaN direction as a miss.
func (t Triangle) Direction() Point {
	hyp := t.Hypotenuse()
	return Point{X: t.Adjacent() / hyp, Y: t.Opposite() / hyp}
}

// Trig holds the trigonometric ratios of the angle at a triangle's source.
// It exists for display; geometry uses Triangle.Direction.
type Trig struct {
	Cos, Sin, Tan float64
}

// Ratios returns cos, sin and tan of the angle at Source.
// Tan is ±Inf for a vertical hypotenuse and NaN for a degenerate triangle.
func (t Triangle) Ratios() Trig {
	adj, opp := t.Adjacent(), t.Opposite()
	hyp := math.Hypot(adj, opp)
	return Trig{
		Cos: adj / hyp,
		Sin: opp / hyp,
		Tan: opp / adj,
	}
}

// DirectionToward returns the unit direction from source to target.
// See Triangle.Direction for the degenerate case.
func DirectionToward(source, target Point) Point {
	return NewTriangle(source, target).Direction()
}
