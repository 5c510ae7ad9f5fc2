// Copyright 2023 The qutee (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dataset

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressed datasets are recognized by the extension of the file name.
const (
	extGzip = ".gz"
	extZstd = ".zst"
	extLZ4  = ".lz4"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func compression(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// newDecoder wraps r, which reads the file with the given name, in the
// decompressor matching the file name extension.
func newDecoder(r io.Reader, name string) (io.ReadCloser, error) {
	switch compression(name) {
	case extGzip:
		return gzip.NewReader(r)
	case extZstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case extLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// newEncoder wraps w, which writes the file with the given name, in the
// compressor matching the file name extension. The returned writer must
// be closed to flush its output.
func newEncoder(w io.Writer, name string) (io.WriteCloser, error) {
	switch compression(name) {
	case extGzip:
		return gzip.NewWriter(w), nil
	case extZstd:
		return zstd.NewWriter(w)
	case extLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}
