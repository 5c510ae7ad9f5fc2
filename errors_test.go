// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package qutee

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("textErr", func(t *testing.T) {
		assert.EqualError(t, textErr("foo"), "qutee: foo")
	})

	t.Run("wrapErr", func(t *testing.T) {
		cause := errors.New("the root cause")
		err := wrapErr("the error is %q by", cause, "caused")

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, err.Error(), `qutee: the error is "caused" by: the root cause`)
	})

	t.Run("textPanic", func(t *testing.T) {
		assert.PanicsWithValue(t, "qutee: foo", func() {
			textPanic("foo")
		})
	})

	t.Run("fmtPanic", func(t *testing.T) {
		assert.PanicsWithValue(t, "qutee: my bar is baz-ed to 10", func() {
			fmtPanic("my %s is %s-ed to %d", "bar", "baz", 10)
		})
	})
}

func TestOutOfBoundsError(t *testing.T) {
	err := &OutOfBoundsError[int]{
		Boundary: MustBoundary(BetweenPoints(Pt(1, 2), Pt(2, 3))),
		Point:    Pt(10, 20),
	}

	t.Run("Error", func(t *testing.T) {
		assert.EqualError(t, err, "qutee: point (10,20) is outside of area (1,2),(2,3)")
	})

	t.Run("Is", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.NotErrorIs(t, err, ErrInvalidBoundary)
	})

	t.Run("As", func(t *testing.T) {
		var target *OutOfBoundsError[int]
		wrapped := wrapErr("insert failed", err)

		assert.ErrorAs(t, wrapped, &target)
		assert.Equal(t, Pt(10, 20), target.Point)
	})

	t.Run("Float", func(t *testing.T) {
		err := &OutOfBoundsError[float64]{
			Boundary: MustBoundary(NewBoundary(Pt(-10.0, -10.0), 20, 20)),
			Point:    Pt(10.1, 5),
		}

		assert.EqualError(t, err, "qutee: point (10.1,5) is outside of area (-10,-10),(10,10)")
	})
}
