// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package qutee

// An entry is a single item stored in a node, together with the point
// it was inserted at.
type entry[C Coordinate, T any] struct {
	point Point[C]
	item  T
}

// A node is one cell of the quadtree.
//
// A leaf node holds its items directly in entries, in insertion order.
// A subdivided node has exactly four children, in the order given by
// Boundary.Quadrants, and no entries of its own. Every entry anywhere
// beneath a node lies within the node's boundary.
type node[C Coordinate, T any, Cap Capacity] struct {
	boundary Boundary[C]
	// capacity is the item limit of this node, copied from the parent
	// when the node is created. For a ConstCapacity it takes up no
	// space.
	capacity Cap
	// depth is the number of ancestors of the node. The root node is
	// at depth 0.
	depth    int
	entries  []entry[C, T]
	children *[4]node[C, T, Cap]
}

func newNode[C Coordinate, T any, Cap Capacity](b Boundary[C], capacity Cap, depth int) node[C, T, Cap] {
	return node[C, T, Cap]{boundary: b, capacity: capacity, depth: depth}
}

func (n *node[C, T, Cap]) leaf() bool {
	return n.children == nil
}

// saturated reports whether n must keep items beyond its capacity
// instead of subdividing, either because its boundary can no longer be
// halved or because it sits at the maximum depth. A maxDepth of zero
// means there is no depth limit.
func (n *node[C, T, Cap]) saturated(maxDepth int) bool {
	return (maxDepth > 0 && n.depth >= maxDepth) || !n.boundary.divisible()
}

// insert stores the item at point p in the subtree rooted at n, which
// must contain p. Every node subdivided on the way is passed to split
// after its entries have been handed down to its children.
func (n *node[C, T, Cap]) insert(p Point[C], item T, maxDepth int, split func(*node[C, T, Cap])) {
	for {
		if !n.leaf() {
			n = &n.children[n.boundary.quadrantOf(p)]
			continue
		}
		if len(n.entries) < n.capacity.Capacity() || n.saturated(maxDepth) {
			n.entries = append(n.entries, entry[C, T]{point: p, item: item})
			return
		}
		n.subdivide()
		if split != nil {
			split(n)
		}
	}
}

// subdivide replaces the entries of the leaf n with four children
// covering its quadrants, moving each entry into the child containing
// its point. Entries keep their relative order.
func (n *node[C, T, Cap]) subdivide() {
	q := n.boundary.Quadrants()
	n.children = &[4]node[C, T, Cap]{
		newNode[C, T](q[0], n.capacity, n.depth+1),
		newNode[C, T](q[1], n.capacity, n.depth+1),
		newNode[C, T](q[2], n.capacity, n.depth+1),
		newNode[C, T](q[3], n.capacity, n.depth+1),
	}
	for _, e := range n.entries {
		c := &n.children[n.boundary.quadrantOf(e.point)]
		c.entries = append(c.entries, e)
	}
	n.entries = nil
}
