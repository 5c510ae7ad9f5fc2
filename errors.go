// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package qutee

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when attempting to insert an item at
	// a point which lies outside the boundary of a QuadTree. The
	// concrete error returned by insertion is an *OutOfBoundsError,
	// which matches ErrOutOfBounds when tested with errors.Is.
	ErrOutOfBounds = textErr("out of bounds")
	// ErrInvalidBoundary is returned when attempting to construct a
	// Boundary which would contain no points: its width or height is
	// not positive, a coordinate is NaN, or its far corner cannot be
	// represented in the coordinate type.
	ErrInvalidBoundary = textErr("invalid boundary")
)

const packageName = "qutee: "

// OutOfBoundsError reports an attempt to insert an item at a point
// outside the boundary of a QuadTree. The tree is unchanged.
type OutOfBoundsError[C Coordinate] struct {
	// Boundary is the boundary of the tree that rejected the point.
	Boundary Boundary[C]
	// Point is the rejected point.
	Point Point[C]
}

func (err *OutOfBoundsError[C]) Error() string {
	return packageName + "point " + err.Point.String() + " is outside of area " + err.Boundary.String()
}

// Is reports whether target is ErrOutOfBounds.
func (err *OutOfBoundsError[C]) Is(target error) bool {
	return target == ErrOutOfBounds
}

func textErr(text string) error {
	return errors.New(packageName + text)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
