// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package qutee

import (
	"io"
	"log/slog"
)

type options struct {
	maxDepth int
	logger   *slog.Logger
	metrics  MetricsCollector
}

// Option configures a QuadTree when it is created.
type Option func(*options)

// WithMaxDepth limits the depth of the tree. A cell at depth d, where
// the root is at depth 0, is never subdivided and instead keeps every
// item routed to it, regardless of capacity.
//
// Without a depth limit, subdivision still stops at cells whose
// boundary is too small to be halved, so many items at the same point
// never cause unbounded growth. A limit is useful to bound the depth
// reached by clusters of nearby floating-point coordinates.
//
// A depth of zero or less means no limit. This is the default.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth < 0 {
			depth = 0
		}
		o.maxDepth = depth
	}
}

// WithLogger configures a structured logger. The tree logs subdivisions
// and rejected insertions at debug level.
//
// If nil is passed, log output is discarded. This is the default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// insertions, subdivisions and queries.
//
// If nil is passed, NoopMetricsCollector is used. This is the default.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	return o
}
