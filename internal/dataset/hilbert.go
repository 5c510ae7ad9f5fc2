// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dataset

import "sort"

const (
	// hilbertOrder is the order of the Hilbert curve used by
	// SortHilbert.
	hilbertOrder = 16
	// hilbertSide is the number of curve positions along each axis.
	hilbertSide = 1 << hilbertOrder
)

// hilbertSorter sorts records by precomputed curve keys without
// reflection.
type hilbertSorter struct {
	records []Record
	keys    []uint32
}

func (hs *hilbertSorter) Len() int {
	return len(hs.records)
}

func (hs *hilbertSorter) Less(i, j int) bool {
	return hs.keys[i] < hs.keys[j]
}

func (hs *hilbertSorter) Swap(i, j int) {
	hs.records[i], hs.records[j] = hs.records[j], hs.records[i]
	hs.keys[i], hs.keys[j] = hs.keys[j], hs.keys[i]
}

// SortHilbert orders records along a Hilbert curve spanning [0, size)
// on both axes, so that records next to each other in the slice are
// also near each other in the plane. Records outside the span are
// placed as if at its nearest edge. Records at the same curve position
// keep their relative order.
func SortHilbert(records []Record, size int) {
	hs := hilbertSorter{
		records: records,
		keys:    make([]uint32, len(records)),
	}
	for i, r := range records {
		hs.keys[i] = hilbertOfXY(hilbertScale(r.X, size), hilbertScale(r.Y, size))
	}
	sort.Stable(&hs)
}

// hilbertScale maps v in [0, size) onto [0, hilbertSide).
func hilbertScale(v, size int) uint32 {
	if size <= 0 || v <= 0 {
		return 0
	}
	if v >= size {
		v = size - 1
	}
	return uint32(uint64(v) * hilbertSide / uint64(size))
}

// hilbertOfXY returns the position of (x, y) along a Hilbert curve of
// order 16. Only the low 16 bits of x and y are used.
//
// Based on https://github.com/rawrunprotected/hilbert_curves, which is
// in the public domain.
func hilbertOfXY(x, y uint32) uint32 {
	a := x ^ y
	b := 0xFFFF ^ a
	c := 0xFFFF ^ (x | y)
	d := x & (y ^ 0xFFFF)

	A := a | (b >> 1)
	B := (a >> 1) ^ a
	C := ((c >> 1) ^ (b & (d >> 1))) ^ c
	D := ((a & (c >> 1)) ^ (d >> 1)) ^ d

	a, b, c, d = A, B, C, D
	A = (a & (a >> 2)) ^ (b & (b >> 2))
	B = (a & (b >> 2)) ^ (b & ((a ^ b) >> 2))
	C ^= (a & (c >> 2)) ^ (b & (d >> 2))
	D ^= (b & (c >> 2)) ^ ((a ^ b) & (d >> 2))

	a, b, c, d = A, B, C, D
	A = (a & (a >> 4)) ^ (b & (b >> 4))
	B = (a & (b >> 4)) ^ (b & ((a ^ b) >> 4))
	C ^= (a & (c >> 4)) ^ (b & (d >> 4))
	D ^= (b & (c >> 4)) ^ ((a ^ b) & (d >> 4))

	a, b, c, d = A, B, C, D
	C ^= (a & (c >> 8)) ^ (b & (d >> 8))
	D ^= (b & (c >> 8)) ^ ((a ^ b) & (d >> 8))

	a = C ^ (C >> 1)
	b = D ^ (D >> 1)

	i0 := x ^ y
	i1 := b | (0xFFFF ^ (i0 | a))

	return interleave(i1)<<1 | interleave(i0)
}

// interleave spreads the low 16 bits of v into the even bits of the
// result.
func interleave(v uint32) uint32 {
	v = (v | (v << 8)) & 0x00FF00FF
	v = (v | (v << 4)) & 0x0F0F0F0F
	v = (v | (v << 2)) & 0x33333333
	v = (v | (v << 1)) & 0x55555555
	return v
}
