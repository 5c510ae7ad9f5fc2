// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package qutee_test

import (
	"errors"
	"fmt"

	"github.com/Julian-Alberts/qutee"
)

func Example() {
	b := qutee.MustBoundary(qutee.NewBoundary(qutee.Pt(-10.0, -10.0), 20, 20))
	tree := qutee.NewWithDynCap[float64, string](b, 5)

	fmt.Println(tree.InsertAt(qutee.Pt(0.5, 0.1), "A"))
	fmt.Println(tree.InsertAt(qutee.Pt(-1.0, 1.0), "B"))
	err := tree.InsertAt(qutee.Pt(10.1, 5.0), "C")
	fmt.Println(err)
	fmt.Println(errors.Is(err, qutee.ErrOutOfBounds))

	q := tree.Query(qutee.MustBoundary(qutee.BetweenPoints(qutee.Pt(0.0, 0.0), qutee.Pt(1.0, 1.0))))
	for q.Next() {
		fmt.Println("query:", q.Item(), q.Point())
	}

	it := tree.Iter()
	for it.Next() {
		fmt.Println("iter:", it.Item())
	}
	// Output:
	// <nil>
	// <nil>
	// qutee: point (10.1,5) is outside of area (-10,-10),(10,10)
	// true
	// query: A (0.5,0.1)
	// iter: A
	// iter: B
}

func ExampleNewWithConstCap() {
	b := qutee.MustBoundary(qutee.NewBoundary(qutee.Pt(0, 0), 8, 8))
	tree := qutee.NewWithConstCap[int, string, qutee.Cap4](b)

	for i, p := range []qutee.Point[int]{
		qutee.Pt(1, 1),
		qutee.Pt(6, 1),
		qutee.Pt(1, 6),
		qutee.Pt(6, 6),
		qutee.Pt(2, 2),
	} {
		if err := tree.InsertAt(p, fmt.Sprint("item ", i)); err != nil {
			panic(err)
		}
	}

	fmt.Println(tree)
	fmt.Printf("%+v\n", tree.Stats())
	// Output:
	// QuadTree{Boundary:(0,0),(8,8),Capacity:4,Len:5}
	// {Items:5 Nodes:5 Leaves:4 MaxDepth:1 Subdivisions:1}
}

type Sighting struct {
	Species string
	X, Y    float64
}

func (s Sighting) AsPoint() qutee.Point[float64] {
	return qutee.Pt(s.X, s.Y)
}

func ExampleInsert() {
	b := qutee.MustBoundary(qutee.NewBoundary(qutee.Pt(0.0, 0.0), 100, 100))
	tree := qutee.NewWithDynCap[float64, Sighting](b, 16)

	for _, s := range []Sighting{
		{"heron", 12.5, 40},
		{"otter", 80, 75.25},
		{"kingfisher", 14, 38},
	} {
		if err := qutee.Insert(tree, s); err != nil {
			panic(err)
		}
	}

	near := qutee.MustBoundary(qutee.BetweenPoints(qutee.Pt(10.0, 35.0), qutee.Pt(20.0, 45.0)))
	for p, s := range tree.Within(near) {
		fmt.Println(s.Species, p)
	}
	// Output:
	// heron (12.5,40)
	// kingfisher (14,38)
}

func ExampleQuadTree_All() {
	b := qutee.MustBoundary(qutee.NewBoundary(qutee.Pt(0, 0), 10, 10))
	tree := qutee.NewWithDynCap[int, string](b, 1)
	_ = tree.InsertAt(qutee.Pt(6, 6), "a")
	_ = tree.InsertAt(qutee.Pt(1, 1), "b")
	_ = tree.InsertAt(qutee.Pt(6, 1), "c")
	_ = tree.InsertAt(qutee.Pt(1, 6), "d")
	_ = tree.InsertAt(qutee.Pt(2, 2), "e")

	for p, item := range tree.All() {
		fmt.Println(item, p)
	}
	// Output:
	// b (1,1)
	// e (2,2)
	// c (6,1)
	// d (1,6)
	// a (6,6)
}

func ExampleBetweenPoints() {
	b, err := qutee.BetweenPoints(qutee.Pt(5, 1), qutee.Pt(2, 4))
	fmt.Println(b, err)
	fmt.Println(b.Contains(qutee.Pt(2, 1)), b.Contains(qutee.Pt(5, 4)))

	_, err = qutee.BetweenPoints(qutee.Pt(1, 1), qutee.Pt(1, 4))
	fmt.Println(errors.Is(err, qutee.ErrInvalidBoundary))
	// Output:
	// (2,1),(5,4) <nil>
	// true false
	// true
}
