// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package qutee

import (
	"context"
	"iter"
	"log/slog"
)

// A QuadTree is a point quadtree storing items of type T at points with
// coordinates of type C. Cap determines the number of items each cell
// holds before it is split into four quadrants.
//
// Use New, NewWithDynCap or NewWithConstCap to create a QuadTree. The
// zero value is not usable.
type QuadTree[C Coordinate, T any, Cap Capacity] struct {
	root         node[C, T, Cap]
	capacity     Cap
	len          int
	subdivisions int
	maxDepth     int
	logger       *slog.Logger
	metrics      MetricsCollector
}

// New creates an empty QuadTree covering boundary whose cells hold up
// to capacity.Capacity() items. Panics if boundary is empty or the
// capacity is less than 1.
func New[C Coordinate, T any, Cap Capacity](boundary Boundary[C], capacity Cap, opts ...Option) *QuadTree[C, T, Cap] {
	if boundary.Empty() {
		textPanic("empty boundary")
	}
	if c := capacity.Capacity(); c < 1 {
		fmtPanic("capacity must be at least 1 (got %d)", c)
	}
	o := buildOptions(opts)
	return &QuadTree[C, T, Cap]{
		root:     newNode[C, T](boundary, capacity, 0),
		capacity: capacity,
		maxDepth: o.maxDepth,
		logger:   o.logger,
		metrics:  o.metrics,
	}
}

// NewWithDynCap creates an empty QuadTree whose cell capacity is chosen
// at run time. Panics if boundary is empty or capacity is less than 1.
func NewWithDynCap[C Coordinate, T any](boundary Boundary[C], capacity int, opts ...Option) *QuadTree[C, T, DynCap] {
	return New[C, T](boundary, DynCap(capacity), opts...)
}

// NewWithConstCap creates an empty QuadTree whose cell capacity is
// fixed by the type Cap, for example:
//
//	tree := qutee.NewWithConstCap[int, string, qutee.Cap16](b)
//
// Panics if boundary is empty.
func NewWithConstCap[C Coordinate, T any, Cap ConstCapacity](boundary Boundary[C], opts ...Option) *QuadTree[C, T, Cap] {
	var capacity Cap
	return New[C, T](boundary, capacity, opts...)
}

// Boundary returns the boundary covered by the tree.
func (qt *QuadTree[C, T, Cap]) Boundary() Boundary[C] {
	return qt.root.boundary
}

// Capacity returns the number of items each cell holds before it is
// subdivided.
func (qt *QuadTree[C, T, Cap]) Capacity() int {
	return qt.capacity.Capacity()
}

// Len returns the number of items stored in the tree.
func (qt *QuadTree[C, T, Cap]) Len() int {
	return qt.len
}

// InsertAt stores item at point p.
//
// If p lies outside the tree's boundary the tree is left unchanged and
// an *OutOfBoundsError, which matches ErrOutOfBounds, is returned. No
// other error is possible.
func (qt *QuadTree[C, T, Cap]) InsertAt(p Point[C], item T) error {
	if !qt.root.boundary.Contains(p) {
		err := &OutOfBoundsError[C]{Boundary: qt.root.boundary, Point: p}
		if qt.logger.Enabled(context.Background(), slog.LevelDebug) {
			qt.logger.Debug("insert rejected", "point", p.String(), "boundary", qt.root.boundary.String())
		}
		qt.metrics.RecordInsert(err)
		return err
	}
	qt.root.insert(p, item, qt.maxDepth, qt.split)
	qt.len++
	qt.metrics.RecordInsert(nil)
	return nil
}

// Insert stores item at the point given by its AsPoint method. It is
// otherwise the same as InsertAt.
func Insert[C Coordinate, T AsPoint[C], Cap Capacity](qt *QuadTree[C, T, Cap], item T) error {
	return qt.InsertAt(item.AsPoint(), item)
}

func (qt *QuadTree[C, T, Cap]) split(n *node[C, T, Cap]) {
	qt.subdivisions++
	qt.metrics.RecordSubdivision(n.depth)
	if qt.logger.Enabled(context.Background(), slog.LevelDebug) {
		var items int
		for i := range n.children {
			items += len(n.children[i].entries)
		}
		qt.logger.Debug("cell subdivided",
			"depth", n.depth,
			"items", items,
			"boundary", n.boundary.String(),
		)
	}
}

// Query returns an iterator over the items whose points lie within the
// area a. Subtrees whose boundary does not intersect a are skipped
// without being examined.
//
// The tree must not be modified while the iterator is in use.
func (qt *QuadTree[C, T, Cap]) Query(a Area[C]) *Query[C, T, Cap] {
	q := &Query[C, T, Cap]{metrics: qt.metrics}
	q.area = a
	if a.Intersects(qt.root.boundary) {
		stackPush(&q.stack, &qt.root)
	}
	return q
}

// Iter returns an iterator over every item in the tree. Items are
// produced depth-first, visiting quadrants in the order given by
// Boundary.Quadrants, and in insertion order within each cell.
//
// The tree must not be modified while the iterator is in use.
func (qt *QuadTree[C, T, Cap]) Iter() *Iter[C, T, Cap] {
	it := &Iter[C, T, Cap]{}
	stackPush(&it.stack, &qt.root)
	return it
}

// All returns a sequence of every point and item in the tree, in the
// same order as Iter.
func (qt *QuadTree[C, T, Cap]) All() iter.Seq2[Point[C], T] {
	return func(yield func(Point[C], T) bool) {
		it := qt.Iter()
		for it.Next() {
			if !yield(it.Point(), it.Item()) {
				return
			}
		}
	}
}

// Within returns a sequence of the points and items lying within the
// area a, in the same order as Query.
func (qt *QuadTree[C, T, Cap]) Within(a Area[C]) iter.Seq2[Point[C], T] {
	return func(yield func(Point[C], T) bool) {
		q := qt.Query(a)
		for q.Next() {
			if !yield(q.Point(), q.Item()) {
				return
			}
		}
	}
}

// Stats describes the shape of a QuadTree.
type Stats struct {
	// Items is the number of items stored in the tree.
	Items int
	// Nodes is the total number of cells, including the root.
	Nodes int
	// Leaves is the number of cells which have not been subdivided.
	Leaves int
	// MaxDepth is the depth of the deepest cell. The root is at
	// depth 0.
	MaxDepth int
	// Subdivisions is the number of times a cell has been split.
	Subdivisions int
}

// Stats walks the tree and returns a description of its shape.
func (qt *QuadTree[C, T, Cap]) Stats() Stats {
	s := Stats{Subdivisions: qt.subdivisions}
	stack := []*node[C, T, Cap]{&qt.root}
	for len(stack) > 0 {
		n := stackPop(&stack)
		s.Nodes++
		s.MaxDepth = max(s.MaxDepth, n.depth)
		if n.leaf() {
			s.Leaves++
			s.Items += len(n.entries)
			continue
		}
		for i := range n.children {
			stackPush(&stack, &n.children[i])
		}
	}
	return s
}
