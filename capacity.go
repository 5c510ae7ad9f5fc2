// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package qutee

// A Capacity supplies the maximum number of items a QuadTree cell holds
// before it is split into quadrants. Capacity must return the same
// value, at least 1, every time it is called.
type Capacity interface {
	Capacity() int
}

// A ConstCapacity is a Capacity fixed by its type. It occupies no
// storage in a QuadTree or in any of its cells.
//
// Any zero-size struct type with a Capacity method is a ConstCapacity:
//
//	type Cap100 struct{}
//
//	func (Cap100) Capacity() int { return 100 }
type ConstCapacity interface {
	~struct{}
	Capacity
}

// DynCap is a Capacity chosen at run time. The value given when a
// QuadTree is created is copied into every cell of the tree.
type DynCap int

// Capacity returns c as an int.
func (c DynCap) Capacity() int { return int(c) }

// Cap4 is a ConstCapacity of 4 items per cell.
type Cap4 struct{}

// Cap8 is a ConstCapacity of 8 items per cell.
type Cap8 struct{}

// Cap16 is a ConstCapacity of 16 items per cell.
type Cap16 struct{}

// Cap32 is a ConstCapacity of 32 items per cell.
type Cap32 struct{}

// Cap64 is a ConstCapacity of 64 items per cell.
type Cap64 struct{}

func (Cap4) Capacity() int  { return 4 }
func (Cap8) Capacity() int  { return 8 }
func (Cap16) Capacity() int { return 16 }
func (Cap32) Capacity() int { return 32 }
func (Cap64) Capacity() int { return 64 }
