// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Julian-Alberts/qutee"
	"github.com/Julian-Alberts/qutee/internal/dataset"
	"github.com/Julian-Alberts/qutee/quteeprom"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/encoding/json"
	"golang.org/x/sync/errgroup"
)

type tree = qutee.QuadTree[int, dataset.Record, qutee.Cap16]

type report struct {
	Records  int                `json:"records"`
	Rejected int                `json:"rejected"`
	Tree     treeReport         `json:"tree"`
	Queries  []queryReport      `json:"queries"`
	Metrics  map[string]float64 `json:"metrics"`
}

type treeReport struct {
	Boundary     string `json:"boundary"`
	Capacity     int    `json:"capacity"`
	Items        int    `json:"items"`
	Nodes        int    `json:"nodes"`
	Leaves       int    `json:"leaves"`
	MaxDepth     int    `json:"max_depth"`
	Subdivisions int    `json:"subdivisions"`
}

type queryReport struct {
	Area     string        `json:"area"`
	Items    int           `json:"items"`
	ValueSum int           `json:"value_sum"`
	Visited  int           `json:"visited"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

func validateConfig(conf config) error {
	if conf.Data == "" {
		return errors.New("data file is empty")
	}
	if conf.Size <= 0 {
		return errors.New("size must be positive").WithTag("size", conf.Size)
	}
	if conf.Parallel <= 0 {
		return errors.New("parallel must be positive").WithTag("parallel", conf.Parallel)
	}
	if conf.MaxDepth < 0 {
		return errors.New("max depth must not be negative").WithTag("max_depth", conf.MaxDepth)
	}
	for _, q := range conf.Queries {
		if _, err := parseArea(q); err != nil {
			return err
		}
	}
	return nil
}

// parseArea parses a query area given as x1:y1:x2:y2, the coordinates of
// two opposite corners.
func parseArea(s string) (qutee.Boundary[int], error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 4 {
		return qutee.Boundary[int]{}, errors.New("query area must have the form x1:y1:x2:y2").
			WithTag("area", s)
	}

	var c [4]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return qutee.Boundary[int]{}, errors.New("invalid query area coordinate").
				WithTag("area", s).
				Wrap(err)
		}
		c[i] = v
	}

	b, err := qutee.BetweenPoints(qutee.Pt(c[0], c[1]), qutee.Pt(c[2], c[3]))
	if err != nil {
		return qutee.Boundary[int]{}, errors.New("invalid query area").
			WithTag("area", s).
			Wrap(err)
	}
	return b, nil
}

func generate(conf config) error {
	if err := dataset.Save(conf.Data, dataset.Random(conf.Generate, conf.Size, int64(conf.Seed))); err != nil {
		return err
	}

	logs.WithTag("records", conf.Generate).
		WithTag("file_name", conf.Data).
		Info("dataset generated")
	return nil
}

func run(ctx context.Context, conf config, logger *slog.Logger, out io.Writer) error {
	records, err := dataset.Load(conf.Data)
	if err != nil {
		return err
	}
	if conf.Sort {
		dataset.SortHilbert(records, conf.Size)
	}

	reg := prometheus.NewRegistry()
	t, rejected, err := build(records, conf, logger, quteeprom.NewCollector(reg, "qutee"))
	if err != nil {
		return err
	}
	if rejected > 0 {
		logs.Warn(errors.New("records outside of the indexed area were skipped").
			WithTag("rejected", rejected).
			WithTag("boundary", t.Boundary().String()))
	}
	logs.WithTag("records", len(records)).
		WithTag("items", t.Len()).
		Info("tree built")

	queries, err := runQueries(ctx, t, conf.Queries, conf.Parallel)
	if err != nil {
		return err
	}

	metrics, err := gatherMetrics(reg)
	if err != nil {
		return err
	}

	s := t.Stats()
	rep := report{
		Records:  len(records),
		Rejected: rejected,
		Tree: treeReport{
			Boundary:     t.Boundary().String(),
			Capacity:     t.Capacity(),
			Items:        s.Items,
			Nodes:        s.Nodes,
			Leaves:       s.Leaves,
			MaxDepth:     s.MaxDepth,
			Subdivisions: s.Subdivisions,
		},
		Queries: queries,
		Metrics: metrics,
	}

	var b []byte
	if conf.LogIndent {
		b, err = json.MarshalIndent(rep, "", "  ")
	} else {
		b, err = json.Marshal(rep)
	}
	if err != nil {
		return errors.New("encoding report failed").Wrap(err)
	}
	if _, err := out.Write(append(b, '\n')); err != nil {
		return errors.New("writing report failed").Wrap(err)
	}
	return nil
}

// build indexes records in a tree covering [0, conf.Size) on both axes.
// Records outside of it are counted and skipped.
func build(records []dataset.Record, conf config, logger *slog.Logger, m qutee.MetricsCollector) (*tree, int, error) {
	b, err := qutee.NewBoundary(qutee.Pt(0, 0), conf.Size, conf.Size)
	if err != nil {
		return nil, 0, errors.New("invalid size").
			WithTag("size", conf.Size).
			Wrap(err)
	}

	t := qutee.NewWithConstCap[int, dataset.Record, qutee.Cap16](b,
		qutee.WithMaxDepth(conf.MaxDepth),
		qutee.WithLogger(logger),
		qutee.WithMetricsCollector(m),
	)

	var rejected int
	for _, r := range records {
		switch err := qutee.Insert(t, r); err.(type) {
		case nil:
		case *qutee.OutOfBoundsError[int]:
			rejected++
		default:
			return nil, 0, errors.New("inserting record failed").Wrap(err)
		}
	}
	return t, rejected, nil
}

// runQueries runs the queries against t, at most parallel at a time.
// The tree is only read while the queries run.
func runQueries(ctx context.Context, t *tree, areas []string, parallel int) ([]queryReport, error) {
	reports := make([]queryReport, len(areas))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, s := range areas {
		g.Go(func() error {
			area, err := parseArea(s)
			if err != nil {
				return err
			}

			start := time.Now()
			rep := queryReport{Area: area.String()}
			q := t.Query(area)
			for q.Next() {
				rep.Items++
				rep.ValueSum += q.Item().Value
				if rep.Items%4096 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
			}
			rep.Visited = q.Visited()
			rep.Elapsed = time.Since(start)
			reports[i] = rep

			logs.WithTag("area", rep.Area).
				WithTag("items", rep.Items).
				WithTag("visited", rep.Visited).
				Info("query done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.New("running queries failed").Wrap(err)
	}
	return reports, nil
}

// gatherMetrics flattens the metrics in reg into a map keyed by metric
// name and label values. Histograms contribute their sample count and
// sum.
func gatherMetrics(reg *prometheus.Registry) (map[string]float64, error) {
	families, err := reg.Gather()
	if err != nil {
		return nil, errors.New("gathering metrics failed").Wrap(err)
	}

	metrics := make(map[string]float64)
	for _, f := range families {
		for _, m := range f.GetMetric() {
			key := f.GetName()
			var labels []string
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			if len(labels) > 0 {
				sort.Strings(labels)
				key += "{" + strings.Join(labels, ",") + "}"
			}

			switch {
			case m.GetCounter() != nil:
				metrics[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				metrics[key] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				metrics[key+"_count"] = float64(m.GetHistogram().GetSampleCount())
				metrics[key+"_sum"] = m.GetHistogram().GetSampleSum()
			}
		}
	}
	return metrics, nil
}
