// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package qutee

// A traversal is the depth-first walk shared by Query and Iter. Rather
// than recursing, it keeps the cells still to be visited on an explicit
// stack, so that it can stop after each item and resume on the next
// call to next.
type traversal[C Coordinate, T any, Cap Capacity] struct {
	// area restricts the walk. If nil, nothing is pruned or filtered.
	area Area[C]
	// stack holds the cells not yet visited. The next cell to visit is
	// on top.
	stack []*node[C, T, Cap]
	// pending holds the entries of the current leaf not yet examined.
	pending []entry[C, T]
	// current is the entry most recently produced by next.
	current *entry[C, T]
	visited int
	yielded int
	done    bool
}

// next advances to the next matching entry, returning false once the
// walk is finished.
func (t *traversal[C, T, Cap]) next() bool {
	if t.done {
		return false
	}
	for {
		for len(t.pending) > 0 {
			e := &t.pending[0]
			t.pending = t.pending[1:]
			if t.area == nil || t.area.Contains(e.point) {
				t.current = e
				t.yielded++
				return true
			}
		}
		if len(t.stack) == 0 {
			t.current = nil
			t.done = true
			return false
		}
		n := stackPop(&t.stack)
		t.visited++
		if n.leaf() {
			t.pending = n.entries
			continue
		}
		// Push in reverse so the first quadrant is visited first.
		for i := len(n.children) - 1; i >= 0; i-- {
			c := &n.children[i]
			if t.area == nil || t.area.Intersects(c.boundary) {
				stackPush(&t.stack, c)
			}
		}
	}
}

func (t *traversal[C, T, Cap]) currentEntry() *entry[C, T] {
	if t.current == nil {
		textPanic("no current item: Next not called or returned false")
	}
	return t.current
}

// A Query is an iterator over the items of a QuadTree lying within an
// Area. It is obtained from QuadTree.Query.
//
// Call Next before each call to Item or Point, including the first:
//
//	q := tree.Query(b)
//	for q.Next() {
//		fmt.Println(q.Point(), q.Item())
//	}
//
// A Query is not restartable. Once Next returns false, create a new
// Query to search again.
type Query[C Coordinate, T any, Cap Capacity] struct {
	traversal[C, T, Cap]
	metrics MetricsCollector
}

// Next advances the query to the next matching item, which then becomes
// available through Item and Point. It returns false when there are no
// more matching items.
func (q *Query[C, T, Cap]) Next() bool {
	if q.traversal.next() {
		return true
	}
	if q.metrics != nil {
		q.metrics.RecordQuery(q.visited, q.yielded)
		q.metrics = nil
	}
	return false
}

// Item returns the current item. Panics if the last call to Next did
// not return true.
func (q *Query[C, T, Cap]) Item() T {
	return q.currentEntry().item
}

// Point returns the point at which the current item is stored. Panics
// if the last call to Next did not return true.
func (q *Query[C, T, Cap]) Point() Point[C] {
	return q.currentEntry().point
}

// Visited returns the number of cells examined so far. Cells pruned
// because they lie outside the queried area are not counted.
func (q *Query[C, T, Cap]) Visited() int {
	return q.visited
}

// An Iter is an iterator over every item of a QuadTree. It is obtained
// from QuadTree.Iter and is used the same way as a Query.
type Iter[C Coordinate, T any, Cap Capacity] struct {
	traversal[C, T, Cap]
}

// Next advances the iterator to the next item. It returns false when
// every item has been produced.
func (it *Iter[C, T, Cap]) Next() bool {
	return it.traversal.next()
}

// Item returns the current item. Panics if the last call to Next did
// not return true.
func (it *Iter[C, T, Cap]) Item() T {
	return it.currentEntry().item
}

// Point returns the point at which the current item is stored. Panics
// if the last call to Next did not return true.
func (it *Iter[C, T, Cap]) Point() Point[C] {
	return it.currentEntry().point
}

func stackPush[E any](s *[]E, e E) {
	*s = append(*s, e)
}

func stackPop[E any](s *[]E) E {
	old := *s
	n := len(old)
	x := old[n-1]
	var zero E
	old[n-1] = zero
	*s = old[0 : n-1]
	return x
}
