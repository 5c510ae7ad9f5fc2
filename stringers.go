// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package qutee

import (
	"fmt"
	"strings"
)

// String returns the point formatted as "(x,y)".
func (p Point[C]) String() string {
	var b strings.Builder
	stringPoint(&b, p)
	return b.String()
}

// String returns the boundary formatted as its two corners,
// "(minX,minY),(maxX,maxY)".
func (b Boundary[C]) String() string {
	var sb strings.Builder
	stringPoint(&sb, b.min)
	sb.WriteByte(',')
	stringPoint(&sb, b.max)
	return sb.String()
}

// String returns a summary description of the tree.
func (qt *QuadTree[C, T, Cap]) String() string {
	return fmt.Sprintf("QuadTree{Boundary:%s,Capacity:%d,Len:%d}", qt.root.boundary, qt.capacity.Capacity(), qt.len)
}

func stringPoint[C Coordinate](b *strings.Builder, p Point[C]) {
	_, _ = fmt.Fprintf(b, "(%v,%v)", p.X, p.Y)
}
