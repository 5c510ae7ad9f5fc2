// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package qutee

import "golang.org/x/exp/constraints"

// Coordinate is the constraint for the types that may be used as
// coordinates of a Point.
//
// Integer coordinates are halved with integer division when a Boundary
// is split, so the two halves of an odd extent differ in size by one.
type Coordinate interface {
	constraints.Integer | constraints.Float
}

// A Point is an X, Y coordinate pair.
type Point[C Coordinate] struct {
	X C
	Y C
}

// Pt is shorthand for Point[C]{x, y}.
func Pt[C Coordinate](x, y C) Point[C] {
	return Point[C]{X: x, Y: y}
}

// PointFrom converts a raw coordinate pair, X first, into a Point.
func PointFrom[C Coordinate](xy [2]C) Point[C] {
	return Point[C]{X: xy[0], Y: xy[1]}
}

// Add returns the vector p+q.
func (p Point[C]) Add(q Point[C]) Point[C] {
	return Point[C]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point[C]) Sub(q Point[C]) Point[C] {
	return Point[C]{X: p.X - q.X, Y: p.Y - q.Y}
}

// In reports whether p lies within b.
func (p Point[C]) In(b Boundary[C]) bool {
	return b.Contains(p)
}

// isNaN reports whether either coordinate is a floating-point NaN.
func (p Point[C]) isNaN() bool {
	return p.X != p.X || p.Y != p.Y
}

// An AsPoint is an item which knows its own position. Items
// implementing AsPoint can be added to a QuadTree using Insert.
type AsPoint[C Coordinate] interface {
	AsPoint() Point[C]
}
