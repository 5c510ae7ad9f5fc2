// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Julian-Alberts/qutee"
	"github.com/Julian-Alberts/qutee/internal/dataset"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArea(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"0:0:10:10", "(0,0),(10,10)"},
			{"10:10:0:0", "(0,0),(10,10)"},
			{" -5:3:5:-3 ", "(-5,-3),(5,3)"},
		}

		for _, testCase := range testCases {
			t.Run(testCase.input, func(t *testing.T) {
				b, err := parseArea(testCase.input)

				require.NoError(t, err)
				assert.Equal(t, testCase.expected, b.String())
			})
		}
	})

	t.Run("Error", func(t *testing.T) {
		for _, input := range []string{
			"",
			"1:2:3",
			"1:2:3:4:5",
			"a:2:3:4",
			"1:2:1:4",
			"1:2:3:2",
		} {
			_, err := parseArea(input)

			assert.Error(t, err, "Input %q.", input)
		}
	})
}

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*config)
		valid  bool
	}{
		{"Default", func(*config) {}, true},
		{"No Data", func(c *config) { c.Data = "" }, false},
		{"Zero Size", func(c *config) { c.Size = 0 }, false},
		{"Zero Parallel", func(c *config) { c.Parallel = 0 }, false},
		{"Negative Max Depth", func(c *config) { c.MaxDepth = -1 }, false},
		{"Bad Query", func(c *config) { c.Queries = append(c.Queries, "1:1:1:1") }, false},
		{"No Queries", func(c *config) { c.Queries = nil }, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			conf := defaultConfig()
			testCase.modify(&conf)

			err := validateConfig(conf)

			if testCase.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	conf := defaultConfig()
	conf.Size = 100
	m := &qutee.BasicMetricsCollector{}
	records := dataset.Random(1000, 120, 3)
	var inside int
	for _, r := range records {
		if r.X < 100 && r.Y < 100 {
			inside++
		}
	}

	tr, rejected, err := build(records, conf, nil, m)

	require.NoError(t, err)
	assert.Equal(t, inside, tr.Len())
	assert.Equal(t, len(records)-inside, rejected)
	assert.Equal(t, int64(len(records)), m.GetStats().InsertCount)
	assert.Equal(t, int64(rejected), m.GetStats().InsertErrors)
	assert.Equal(t, 16, tr.Capacity())
}

func TestRunQueries(t *testing.T) {
	conf := defaultConfig()
	conf.Size = 1000
	records := dataset.Random(20_000, 1000, 5)
	tr, _, err := build(records, conf, nil, nil)
	require.NoError(t, err)
	areas := []string{"0:0:1000:1000", "100:100:400:300", "999:999:998:998", "500:0:501:1000"}

	t.Run("Results", func(t *testing.T) {
		reports, err := runQueries(context.Background(), tr, areas, 2)

		require.NoError(t, err)
		require.Len(t, reports, len(areas))
		for i, s := range areas {
			area, err := parseArea(s)
			require.NoError(t, err)
			var items, sum int
			for _, r := range records {
				if area.Contains(r.AsPoint()) {
					items++
					sum += r.Value
				}
			}

			assert.Equal(t, area.String(), reports[i].Area)
			assert.Equal(t, items, reports[i].Items, "Query %s.", s)
			assert.Equal(t, sum, reports[i].ValueSum, "Query %s.", s)
			assert.Positive(t, reports[i].Visited)
		}
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := runQueries(ctx, tr, areas[:1], 1)

		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	conf := defaultConfig()
	conf.Data = filepath.Join(dir, "points.csv")
	conf.Size = 100
	conf.Queries = []string{"0:0:50:50", "90:90:200:200"}
	data := "10,10,1\n20,20,2\n60,60,3\n99,99,4\n100,5,5\n95,95,6\n"
	require.NoError(t, os.WriteFile(conf.Data, []byte(data), 0o644))
	var out bytes.Buffer

	err := run(context.Background(), conf, nil, &out)

	require.NoError(t, err)
	var rep report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	for i := range rep.Queries {
		rep.Queries[i].Elapsed = 0
	}
	assert.Equal(t, 6, rep.Records)
	assert.Equal(t, 1, rep.Rejected)
	assert.Equal(t, treeReport{
		Boundary: "(0,0),(100,100)",
		Capacity: 16,
		Items:    5,
		Nodes:    1,
		Leaves:   1,
	}, rep.Tree)
	assert.Equal(t, []queryReport{
		{Area: "(0,0),(50,50)", Items: 2, ValueSum: 3, Visited: 1},
		{Area: "(90,90),(200,200)", Items: 2, ValueSum: 10, Visited: 1},
	}, rep.Queries)
	assert.Equal(t, 5.0, rep.Metrics["qutee_inserts_total{result=ok}"])
	assert.Equal(t, 1.0, rep.Metrics["qutee_inserts_total{result=out_of_bounds}"])
	assert.Equal(t, 2.0, rep.Metrics["qutee_queries_total"])
	assert.Equal(t, 2.0, rep.Metrics["qutee_query_nodes_visited_sum"])
	assert.Equal(t, 0.0, rep.Metrics["qutee_subdivisions_total"])

	t.Run("Sorted", func(t *testing.T) {
		conf := conf
		conf.Sort = true
		var sorted bytes.Buffer

		require.NoError(t, run(context.Background(), conf, nil, &sorted))

		var rep2 report
		require.NoError(t, json.Unmarshal(sorted.Bytes(), &rep2))
		assert.Equal(t, rep.Tree, rep2.Tree)
		require.Len(t, rep2.Queries, 2)
		assert.Equal(t, 3, rep2.Queries[0].ValueSum)
		assert.Equal(t, 10, rep2.Queries[1].ValueSum)
	})

	t.Run("Missing Data", func(t *testing.T) {
		conf := conf
		conf.Data = filepath.Join(dir, "missing.csv")

		assert.Error(t, run(context.Background(), conf, nil, &out))
	})
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"generated.csv", "generated.csv.gz"} {
		t.Run(name, func(t *testing.T) {
			conf := defaultConfig()
			conf.Data = filepath.Join(dir, name)
			conf.Generate = 250
			conf.Size = 64

			require.NoError(t, generate(conf))

			records, err := dataset.Load(conf.Data)
			require.NoError(t, err)
			assert.Equal(t, dataset.Random(250, 64, 1), records)
		})
	}
}
