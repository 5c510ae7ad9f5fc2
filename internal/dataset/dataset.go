// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package dataset reads and writes point records stored as CSV, one
// "x,y,value" record per line.
//
// Files whose names end in ".gz", ".zst" or ".lz4" are compressed with
// gzip, Zstandard or LZ4 respectively.
package dataset

import (
	"encoding/csv"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/Julian-Alberts/qutee"
	"github.com/aukilabs/go-tooling/pkg/errors"
)

const (
	// ErrTypeInvalidRecord is the type of the errors returned for a
	// record which cannot be parsed.
	ErrTypeInvalidRecord = "dataset_invalid_record"

	// ErrTypeIO is the type of the errors returned when the underlying
	// file or stream fails.
	ErrTypeIO = "dataset_io"
)

var fieldNames = [...]string{"x", "y", "value"}

// A Record is a value located at an integer point.
type Record struct {
	X     int
	Y     int
	Value int
}

// AsPoint returns the location of the record.
func (r Record) AsPoint() qutee.Point[int] {
	return qutee.Pt(r.X, r.Y)
}

// Read parses every record from r. Blank lines and lines starting with
// '#' are skipped.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(fieldNames)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	cr.ReuseRecord = true

	var records []Record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			if parseErr, ok := err.(*csv.ParseError); ok {
				return nil, errors.New("malformed record").
					WithType(ErrTypeInvalidRecord).
					WithTag("line", parseErr.Line).
					Wrap(err)
			}
			return nil, errors.New("reading records failed").
				WithType(ErrTypeIO).
				Wrap(err)
		}

		var values [len(fieldNames)]int
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				line, column := cr.FieldPos(i)
				return nil, errors.New("invalid " + fieldNames[i]).
					WithType(ErrTypeInvalidRecord).
					WithTag("line", line).
					WithTag("column", column).
					Wrap(err)
			}
			values[i] = v
		}
		records = append(records, Record{X: values[0], Y: values[1], Value: values[2]})
	}
}

// Load reads every record from the named file.
func Load(name string) ([]Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.New("opening dataset failed").
			WithType(ErrTypeIO).
			WithTag("file_name", name).
			Wrap(err)
	}
	defer f.Close()

	dec, err := newDecoder(f, name)
	if err != nil {
		return nil, errors.New("opening dataset failed").
			WithType(ErrTypeIO).
			WithTag("file_name", name).
			Wrap(err)
	}
	defer dec.Close()

	records, err := Read(dec)
	if err != nil {
		return nil, errors.New("loading dataset failed").
			WithType(errors.Type(err)).
			WithTag("file_name", name).
			Wrap(err)
	}
	return records, nil
}

// Save writes records to the named file, replacing it if it exists.
func Save(name string, records []Record) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.New("creating dataset failed").
			WithType(ErrTypeIO).
			WithTag("file_name", name).
			Wrap(err)
	}
	defer f.Close()

	enc, err := newEncoder(f, name)
	if err != nil {
		return errors.New("creating dataset failed").
			WithType(ErrTypeIO).
			WithTag("file_name", name).
			Wrap(err)
	}
	if err := Write(enc, records); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return errors.New("flushing dataset failed").
			WithType(ErrTypeIO).
			WithTag("file_name", name).
			Wrap(err)
	}
	if err := f.Close(); err != nil {
		return errors.New("closing dataset failed").
			WithType(ErrTypeIO).
			WithTag("file_name", name).
			Wrap(err)
	}
	return nil
}

// Write writes records to w in the format understood by Read.
func Write(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	row := make([]string, len(fieldNames))
	for _, r := range records {
		row[0] = strconv.Itoa(r.X)
		row[1] = strconv.Itoa(r.Y)
		row[2] = strconv.Itoa(r.Value)
		if err := cw.Write(row); err != nil {
			return errors.New("writing record failed").
				WithType(ErrTypeIO).
				Wrap(err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.New("writing records failed").
			WithType(ErrTypeIO).
			Wrap(err)
	}
	return nil
}

// Random returns n records at points uniformly distributed over
// [0, size) on both axes. The value of each record is its index. The
// same seed always produces the same records.
func Random(n, size int, seed int64) []Record {
	rng := rand.New(rand.NewSource(seed))
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			X:     rng.Intn(size),
			Y:     rng.Intn(size),
			Value: i,
		}
	}
	return records
}
