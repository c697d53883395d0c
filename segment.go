package raycast

import "math"

// Segment is a finite line segment from Start to End.
// It is parametrized as Start + s*(End-Start) with s in [0, 1].
type Segment struct {
	Start, End Point
}

// Seg is a convenience function to create a Segment.
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{Start: Point{X: x0, Y: y0}, End: Point{X: x1, Y: y1}}
}

// Delta returns End - Start.
func (s Segment) Delta() Point {
	return s.End.Sub(s.Start)
}

// Midpoint returns the point halfway between Start and End.
func (s Segment) Midpoint() Point {
	return s.Start.Lerp(s.End, 0.5)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.Delta().Length()
}

// IntersectSegment intersects ray with the closed segment seg.
//
// It solves origin + t*dir = start + s*(end-start) and reports a hit when
// 0 <= s <= 1 and t > 0; a point exactly at the ray origin is not a hit.
//
// t is recovered from whichever axis of the direction has the larger
// magnitude, so vertical rays are handled like any other. Parallel and
// collinear configurations have a zero denominator; the resulting Inf or NaN
// fails the range checks and the query reports a miss. The same holds for a
// zero or NaN direction.
func IntersectSegment(ray Ray, seg Segment) Hit {
	o, dir := ray.Origin, ray.Direction
	dx := seg.End.X - seg.Start.X
	dy := seg.End.Y - seg.Start.Y
	ox := seg.Start.X - o.X
	oy := seg.Start.Y - o.Y

	s := (dir.X*oy - dir.Y*ox) / (dx*dir.Y - dy*dir.X)
	if !(s >= 0 && s <= 1) {
		return Miss
	}

	var t float64
	if math.Abs(dir.X) >= math.Abs(dir.Y) {
		t = (ox + s*dx) / dir.X
	} else {
		t = (oy + s*dy) / dir.Y
	}
	if !(t > 0) || math.IsInf(t, 1) {
		return Miss
	}
	return hitAt(ray, t)
}
