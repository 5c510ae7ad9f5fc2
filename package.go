// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package qutee provides a generic point quadtree: a two-dimensional
// spatial index which stores point-keyed items and supports insertion,
// rectangular region queries, and full traversal.
//
// A QuadTree is parameterized over its coordinate type (any integer or
// floating-point type), its item type (anything), and its capacity
// strategy. The capacity is the number of items a cell holds before it
// is split into four quadrants. It is either fixed by the type, using a
// zero-size type such as Cap16, or chosen when the tree is created,
// using DynCap.
//
// Every Boundary is half-open: it includes its top and left edges but
// not its bottom and right edges. This guarantees that a point lying on
// the line shared by two sibling quadrants belongs to exactly one of
// them.
//
// A QuadTree is not safe for concurrent use by multiple goroutines
// while it is being modified. Any number of goroutines may read it
// concurrently, using Query, Iter, All and Within, as long as no
// goroutine inserts into it at the same time.
package qutee
