// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quteeprom exports the operational metrics of a qutee.QuadTree
// to Prometheus.
//
// Create a Collector and pass it to the tree when it is created:
//
//	reg := prometheus.NewRegistry()
//	tree := qutee.NewWithConstCap[int, string, qutee.Cap16](b,
//		qutee.WithMetricsCollector(quteeprom.NewCollector(reg, "places")))
//
// Several trees may share one Collector. Trees needing separate metrics
// should use Collectors with different namespaces or registries.
package quteeprom

import (
	"errors"

	"github.com/Julian-Alberts/qutee"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultLabel = "result"

	resultOK          = "ok"
	resultOutOfBounds = "out_of_bounds"
	resultError       = "error"
)

// Collector is a qutee.MetricsCollector which records to Prometheus
// metrics.
type Collector struct {
	inserts      *prometheus.CounterVec
	subdivisions prometheus.Counter
	splitDepth   prometheus.Histogram
	queries      prometheus.Counter
	visited      prometheus.Histogram
	yielded      prometheus.Histogram
}

var _ qutee.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector whose metrics are registered with
// reg under the given namespace. If reg is nil, the metrics are
// created but not registered.
//
// Panics if any of the metrics is already registered with reg.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	f := promauto.With(reg)
	return &Collector{
		inserts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inserts_total",
			Help:      "The number of insertions attempted, by result.",
		}, []string{resultLabel}),

		subdivisions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subdivisions_total",
			Help:      "The number of cells split into quadrants.",
		}),

		splitDepth: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "subdivision_depth",
			Help:      "The depth of the cells split into quadrants.",
			Buckets:   prometheus.LinearBuckets(0, 4, 16),
		}),

		queries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "The number of queries run to completion.",
		}),

		visited: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_nodes_visited",
			Help:      "The number of cells examined by a query.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),

		yielded: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_items_yielded",
			Help:      "The number of items produced by a query.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}

// RecordInsert implements qutee.MetricsCollector.
func (c *Collector) RecordInsert(err error) {
	c.inserts.WithLabelValues(insertResult(err)).Inc()
}

// RecordSubdivision implements qutee.MetricsCollector.
func (c *Collector) RecordSubdivision(depth int) {
	c.subdivisions.Inc()
	c.splitDepth.Observe(float64(depth))
}

// RecordQuery implements qutee.MetricsCollector.
func (c *Collector) RecordQuery(visited, yielded int) {
	c.queries.Inc()
	c.visited.Observe(float64(visited))
	c.yielded.Observe(float64(yielded))
}

func insertResult(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, qutee.ErrOutOfBounds):
		return resultOutOfBounds
	default:
		return resultError
	}
}
