// Package raycast computes 2D ray intersections against finite line
// segments and axis-aligned rectangles.
//
// # Overview
//
// A [Ray] starts at an origin and extends along a direction. Two queries are
// provided:
//
//   - [IntersectSegment] solves the ray/segment system and reports the
//     forward hit inside the segment's [0, 1] parameter range.
//   - [IntersectRect] tests the four rectangle edges and keeps the nearest
//     forward crossing.
//
// Both are pure functions of their arguments. Numeric degeneracy (zero or
// NaN direction, parallel edges) is reported as a miss, never as a panic.
//
// # Directions from a pointer
//
// [NewTriangle] builds the right triangle between a source and a target
// point; its [Triangle.Direction] is the unit (cos, sin) of the angle at the
// source. [Triangle.Ratios] yields the same ratios plus the tangent for
// display.
//
// # Coordinate System
//
// Screen coordinates, as in gg:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The scene and render sub-packages build an interactive scene on top of
// these queries and draw it with gg.
package raycast
