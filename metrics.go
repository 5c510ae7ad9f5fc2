// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package qutee

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational
// metrics from a QuadTree. The quteeprom package provides an
// implementation backed by Prometheus.
//
// Query metrics may be recorded by several goroutines at once when
// queries run concurrently, so implementations must be safe for
// concurrent use.
type MetricsCollector interface {
	// RecordInsert is called after each insertion. err is nil if the
	// item was stored.
	RecordInsert(err error)

	// RecordSubdivision is called each time a cell is split into
	// quadrants. depth is the depth of the cell that was split.
	RecordSubdivision(depth int)

	// RecordQuery is called when a Query is exhausted. visited is the
	// number of cells whose contents were examined and yielded is the
	// number of items produced.
	RecordQuery(visited, yielded int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(error)    {}
func (NoopMetricsCollector) RecordSubdivision(int) {}
func (NoopMetricsCollector) RecordQuery(int, int)  {}

// BasicMetricsCollector provides simple in-memory metrics collection
// without external dependencies.
type BasicMetricsCollector struct {
	InsertCount       atomic.Int64
	InsertErrors      atomic.Int64
	Subdivisions      atomic.Int64
	MaxSplitDepth     atomic.Int64
	QueryCount        atomic.Int64
	QueryNodesVisited atomic.Int64
	QueryItemsYielded atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(err error) {
	b.InsertCount.Add(1)
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordSubdivision implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSubdivision(depth int) {
	b.Subdivisions.Add(1)
	for {
		cur := b.MaxSplitDepth.Load()
		if int64(depth) <= cur || b.MaxSplitDepth.CompareAndSwap(cur, int64(depth)) {
			return
		}
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(visited, yielded int) {
	b.QueryCount.Add(1)
	b.QueryNodesVisited.Add(int64(visited))
	b.QueryItemsYielded.Add(int64(yielded))
}

// BasicMetricsStats is a point-in-time snapshot of a
// BasicMetricsCollector.
type BasicMetricsStats struct {
	InsertCount       int64
	InsertErrors      int64
	Subdivisions      int64
	MaxSplitDepth     int64
	QueryCount        int64
	QueryNodesVisited int64
	QueryItemsYielded int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:       b.InsertCount.Load(),
		InsertErrors:      b.InsertErrors.Load(),
		Subdivisions:      b.Subdivisions.Load(),
		MaxSplitDepth:     b.MaxSplitDepth.Load(),
		QueryCount:        b.QueryCount.Load(),
		QueryNodesVisited: b.QueryNodesVisited.Load(),
		QueryItemsYielded: b.QueryItemsYielded.Load(),
	}
}
