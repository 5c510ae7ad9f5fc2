// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package qutee

// An Area is a region of the plane which can be used to query a
// QuadTree.
//
// Intersects must return true whenever the area contains any point
// lying within the boundary b. It may return true in other cases, at
// the cost of visiting parts of the tree that yield nothing.
type Area[C Coordinate] interface {
	// Contains reports whether the point p lies within the area.
	Contains(p Point[C]) bool
	// Intersects reports whether the area may contain points lying
	// within the boundary b.
	Intersects(b Boundary[C]) bool
}

// A Boundary is an axis-aligned rectangle. It contains the points
// whose X-coordinate is in the half-open interval [Min.X, Max.X) and
// whose Y-coordinate is in [Min.Y, Max.Y).
//
// The zero value is an empty boundary which contains no points. A
// non-empty Boundary is obtained from NewBoundary or BetweenPoints.
type Boundary[C Coordinate] struct {
	min Point[C]
	max Point[C]
}

// NewBoundary returns the Boundary whose top-left corner is origin and
// which has the given width and height.
//
// An error matching ErrInvalidBoundary is returned if width or height
// is not positive, if origin has a NaN coordinate, or if the far
// corner origin+(width, height) overflows the coordinate type.
func NewBoundary[C Coordinate](origin Point[C], width, height C) (Boundary[C], error) {
	if origin.isNaN() {
		return Boundary[C]{}, wrapErr("origin %s has NaN coordinate", ErrInvalidBoundary, origin)
	}
	if !(width > 0) || !(height > 0) {
		return Boundary[C]{}, wrapErr("width %v and height %v must be positive", ErrInvalidBoundary, width, height)
	}
	far := origin.Add(Pt(width, height))
	if far.X <= origin.X || far.Y <= origin.Y {
		return Boundary[C]{}, wrapErr("far corner of origin %s with width %v and height %v overflows", ErrInvalidBoundary, origin, width, height)
	}
	return Boundary[C]{min: origin, max: far}, nil
}

// BetweenPoints returns the Boundary spanning the rectangle between two
// opposite corners, given in any order. The corner with the lesser
// coordinates is included in the boundary and the other is excluded.
//
// An error matching ErrInvalidBoundary is returned if the corners share
// an X- or Y-coordinate, or if either has a NaN coordinate.
func BetweenPoints[C Coordinate](a, b Point[C]) (Boundary[C], error) {
	if a.isNaN() || b.isNaN() {
		return Boundary[C]{}, wrapErr("corner %s or %s has NaN coordinate", ErrInvalidBoundary, a, b)
	}
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	if a.X == b.X || a.Y == b.Y {
		return Boundary[C]{}, wrapErr("corners %s and %s span no area", ErrInvalidBoundary, a, b)
	}
	return Boundary[C]{min: a, max: b}, nil
}

// MustBoundary returns b if err is nil and panics otherwise. It is
// intended for use with NewBoundary and BetweenPoints where the
// arguments are known to be valid, as in
//
//	b := qutee.MustBoundary(qutee.NewBoundary(qutee.Pt(0, 0), 10, 10))
func MustBoundary[C Coordinate](b Boundary[C], err error) Boundary[C] {
	if err != nil {
		panic(err)
	}
	return b
}

// Min returns the top-left corner of b, which b contains.
func (b Boundary[C]) Min() Point[C] {
	return b.min
}

// Max returns the bottom-right corner of b, which b does not contain.
func (b Boundary[C]) Max() Point[C] {
	return b.max
}

// Origin returns the top-left corner of b. It is the same as Min.
func (b Boundary[C]) Origin() Point[C] {
	return b.min
}

// Width returns the extent of b along the X-axis. For a Boundary built
// by BetweenPoints from signed integer corners far enough apart, the
// result may overflow.
func (b Boundary[C]) Width() C {
	return b.max.X - b.min.X
}

// Height returns the extent of b along the Y-axis. The same overflow
// caveat as for Width applies.
func (b Boundary[C]) Height() C {
	return b.max.Y - b.min.Y
}

// Empty reports whether b contains no points.
func (b Boundary[C]) Empty() bool {
	return !(b.min.X < b.max.X) || !(b.min.Y < b.max.Y)
}

// Contains reports whether the point p lies within b.
func (b Boundary[C]) Contains(p Point[C]) bool {
	return b.min.X <= p.X && p.X < b.max.X &&
		b.min.Y <= p.Y && p.Y < b.max.Y
}

// Intersects reports whether b and o share any point, i.e. whether
// their overlap has a non-empty area. Boundaries which merely touch
// along an edge do not intersect.
func (b Boundary[C]) Intersects(o Boundary[C]) bool {
	return max(b.min.X, o.min.X) < min(b.max.X, o.max.X) &&
		max(b.min.Y, o.min.Y) < min(b.max.Y, o.max.Y)
}

// Quadrants splits b at its midpoint into four sub-boundaries, in the
// order top-left, top-right, bottom-left, bottom-right. The quadrants
// are pairwise disjoint and together contain exactly the points of b.
//
// When an extent cannot be halved, as happens for an integer extent of
// one, the quadrants on the near side of the midpoint are empty.
func (b Boundary[C]) Quadrants() [4]Boundary[C] {
	mid := b.mid()
	return [4]Boundary[C]{
		{min: b.min, max: mid},
		{min: Point[C]{X: mid.X, Y: b.min.Y}, max: Point[C]{X: b.max.X, Y: mid.Y}},
		{min: Point[C]{X: b.min.X, Y: mid.Y}, max: Point[C]{X: mid.X, Y: b.max.Y}},
		{min: mid, max: b.max},
	}
}

// quadrantOf returns the index, in the order of Quadrants, of the
// quadrant containing p. p must lie within b.
func (b Boundary[C]) quadrantOf(p Point[C]) int {
	mid := b.mid()
	var i int
	if p.X >= mid.X {
		i |= 1
	}
	if p.Y >= mid.Y {
		i |= 2
	}
	return i
}

// divisible reports whether splitting b shrinks its quadrants along at
// least one axis.
func (b Boundary[C]) divisible() bool {
	mid := b.mid()
	return (b.min.X < mid.X && mid.X < b.max.X) ||
		(b.min.Y < mid.Y && mid.Y < b.max.Y)
}

func (b Boundary[C]) mid() Point[C] {
	return Point[C]{
		X: midpoint(b.min.X, b.max.X),
		Y: midpoint(b.min.Y, b.max.Y),
	}
}

// midpoint returns a value in [lo, hi] halfway between lo and hi,
// rounding toward lo for integers. If hi-lo overflows, which can happen
// with signed integers and with floats of huge magnitude, the halves
// are summed instead.
func midpoint[C Coordinate](lo, hi C) C {
	if d := hi - lo; d >= 0 {
		if m := lo + d/2; m <= hi {
			return m
		}
	}
	return min(max(lo/2+hi/2, lo), hi)
}
