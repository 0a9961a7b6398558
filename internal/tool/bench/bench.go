// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the decompression performance of this repository
// against other implementations. Individual implementations are referred to
// as codecs and registered per format, so the same harness can also report
// reference numbers for formats this repository does not implement.
//
// All codecs operate on whole buffers, matching the library's own API;
// stream-based implementations are adapted with a full read.
package bench

import (
	"bytes"
	"fmt"
	"path"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/dsnet/golib/strconv"
)

// Format identifies a compressed data format.
type Format int

const (
	FormatFlate Format = iota
	FormatXZ
)

func (f Format) String() string {
	switch f {
	case FormatFlate:
		return "fl"
	case FormatXZ:
		return "xz"
	default:
		return "unknown"
	}
}

// A Compressor compresses data at the given level in a single call.
type Compressor func(data []byte, level int) ([]byte, error)

// A Decompressor decompresses data in a single call.
type Decompressor func(data []byte) ([]byte, error)

var (
	Compressors   = make(map[Format]map[string]Compressor)
	Decompressors = make(map[Format]map[string]Decompressor)
)

func RegisterCompressor(f Format, name string, c Compressor) {
	if Compressors[f] == nil {
		Compressors[f] = make(map[string]Compressor)
	}
	Compressors[f][name] = c
}

func RegisterDecompressor(f Format, name string, d Decompressor) {
	if Decompressors[f] == nil {
		Decompressors[f] = make(map[string]Decompressor)
	}
	Decompressors[f][name] = d
}

// BenchmarkDecompressor measures a single decompressor on pre-compressed
// data and reports the result.
func BenchmarkDecompressor(input []byte, dec Decompressor, outputSize int64) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.SetBytes(outputSize)
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := dec(input); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
		}
	})
}

// Rate converts a benchmark result to MB/s.
func Rate(r testing.BenchmarkResult) float64 {
	if r.N == 0 || r.T == 0 {
		return 0
	}
	us := float64(r.T.Nanoseconds()) / 1e3 / float64(r.N)
	return float64(r.Bytes) / us
}

var reExp = regexp.MustCompile(`\.0*e\+0*`)

// BenchName names one benchmark configuration, rendering round sizes in
// scientific notation and other sizes with a binary prefix.
func BenchName(file string, level, size int) string {
	var sn string
	switch size {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12:
		sn = reExp.ReplaceAllString(fmt.Sprintf("%e", float64(size)), "e")
	default:
		s := strconv.FormatPrefix(float64(size), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%d:%s", path.Base(file), level, sn)
}

// RoundTrip compresses data with the named compressor and feeds the result
// to the named decompressor, reporting whether the data survived.
func RoundTrip(f Format, encName, decName string, data []byte, level int) (bool, error) {
	comp, err := Compressors[f][encName](data, level)
	if err != nil {
		return false, err
	}
	output, err := Decompressors[f][decName](comp)
	if err != nil {
		return false, err
	}
	return bytes.Equal(data, output), nil
}
