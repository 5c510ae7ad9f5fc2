// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command qutee indexes a CSV file of x,y,value records in a quadtree,
// runs area queries against it and prints a JSON report.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"syscall"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/joho/godotenv"
	"github.com/segmentio/encoding/json"
)

// The qutee version number. Set at build.
var version = "v0.1.0"

// Keeps the config struct from being obfuscated, which would garble the
// command-line options.
var _ = reflect.TypeOf(config{})

type config struct {
	Data      string   `cli:""        env:"QUTEE_DATA"       help:"CSV file of x,y,value records."`
	Generate  int      `cli:""        env:"QUTEE_GENERATE"   help:"Write this many random records to the data file and exit."`
	Seed      int      `cli:",hidden" env:"QUTEE_SEED"       help:"Seed for generated records."`
	Size      int      `cli:""        env:"QUTEE_SIZE"       help:"Width and height of the indexed area, whose origin is (0,0)."`
	Queries   []string `cli:""        env:"QUTEE_QUERIES"    help:"Comma separated query areas, each given as x1:y1:x2:y2."`
	Parallel  int      `cli:""        env:"QUTEE_PARALLEL"   help:"The maximum number of queries run at once."`
	MaxDepth  int      `cli:",hidden" env:"QUTEE_MAX_DEPTH"  help:"Depth at which cells stop subdividing. Zero means no limit."`
	Sort      bool     `cli:""        env:"QUTEE_SORT"       help:"Insert records in Hilbert curve order."`
	Report    string   `cli:""        env:"QUTEE_REPORT"     help:"File the JSON report is written to. Empty means standard output."`
	LogLevel  string   `cli:""        env:"QUTEE_LOG_LEVEL"  help:"Log level (debug|info|warning|error)."`
	LogIndent bool     `cli:""        env:"QUTEE_LOG_INDENT" help:"Indent logs and the report."`
	Version   bool     `cli:""        env:"-"                help:"Show version."`
	Help      bool     `cli:""        env:"-"                help:"Show help."`
}

func defaultConfig() config {
	return config{
		Data:     "points.csv",
		Seed:     1,
		Size:     32_768,
		Parallel: 4,
		Queries: []string{
			"0:0:32767:32767",
			"500:500:25000:25000",
			"15000:15000:20000:20000",
		},
		LogLevel: logs.InfoLevel.String(),
	}
}

func main() {
	conf := defaultConfig()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Indexes x,y,value records in a quadtree and reports on area queries.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	if conf.Generate > 0 {
		if err := generate(conf); err != nil {
			logs.Fatal(err)
		}
		return
	}

	out := io.Writer(os.Stdout)
	if conf.Report != "" {
		f, err := os.Create(conf.Report)
		if err != nil {
			logs.Fatal(errors.New("creating report file failed").
				WithTag("file_name", conf.Report).
				Wrap(err))
		}
		defer f.Close()
		out = f
	}

	logs.WithTag("version", version).
		WithTag("log_level", conf.LogLevel).
		WithTag("data", conf.Data).
		Info("starting qutee")

	if err := run(ctx, conf, treeLogger(conf.LogLevel), out); err != nil {
		logs.Fatal(err)
	}
}

// treeLogger returns the logger handed to the tree. The tree only logs
// at debug level, so it is silent unless debug logs are requested.
func treeLogger(level string) *slog.Logger {
	if !strings.EqualFold(level, "debug") {
		return nil
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
