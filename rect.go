package raycast

import "math"

// Rect is an axis-aligned rectangle with its minimum corner at (X, Y).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Min returns the minimum corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the maximum corner.
func (r Rect) Max() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// IntersectRect intersects ray with the boundary of rect.
//
// Each of the four edges is tested on its own and the crossing with the
// smallest positive parameter wins, which selects the near face for origins
// outside the rectangle and the exit face for origins inside it. Edge pairs
// parallel to the ray (zero direction component) are skipped.
func IntersectRect(ray Ray, rect Rect) Hit {
	o, dir := ray.Origin, ray.Direction
	best := math.Inf(1)

	if dir.X != 0 {
		for _, ex := range [2]float64{rect.X, rect.X + rect.Width} {
			t := (ex - o.X) / dir.X
			y := o.Y + t*dir.Y
			if t > 0 && t < best && y >= rect.Y && y <= rect.Y+rect.Height {
				best = t
			}
		}
	}

	if dir.Y != 0 {
		for _, ey := range [2]float64{rect.Y, rect.Y + rect.Height} {
			t := (ey - o.Y) / dir.Y
			x := o.X + t*dir.X
			if t > 0 && t < best && x >= rect.X && x <= rect.X+rect.Width {
				best = t
			}
		}
	}

	if math.IsInf(best, 1) {
		return Miss
	}
	return hitAt(ray, best)
}
