// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Benchmark tool to compare decompression performance between multiple
// implementations. Individual implementations are referred to as codecs.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark -files twain.txt -codecs std,kp,ds -levels 1,6,9 -sizes 1e5,1e6
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"time"

	"github.com/dsnet/golib/strconv"
	"github.com/rchikhi/libdeflate/internal/testutil"
	"github.com/rchikhi/libdeflate/internal/tool/bench"
)

const (
	defaultLevels = "1,6,9"
	defaultSizes  = "1e4,1e5,1e6"
	defaultCodecs = "std,kp,ds"
)

// The decompression benchmark decompresses pre-compressed data. For results
// to be comparable, the same encoder compresses the input for all trials;
// pick the first codec that has one registered.
var encRefs = []string{"std", "kp"}

func main() {
	f0 := flag.String("files", "", "List of input files to benchmark")
	f1 := flag.String("codecs", defaultCodecs, "List of codecs to benchmark")
	f2 := flag.String("levels", defaultLevels, "List of compression levels to benchmark")
	f3 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	flag.Parse()

	sep := regexp.MustCompile("[,:]")
	files := sep.Split(*f0, -1)
	codecs := sep.Split(*f1, -1)
	var levels, sizes []int
	for _, s := range sep.Split(*f2, -1) {
		lvl, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			panic("invalid level")
		}
		levels = append(levels, int(lvl))
	}
	for _, s := range sep.Split(*f3, -1) {
		size, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			panic("invalid size")
		}
		sizes = append(sizes, int(size))
	}

	var decs []string
	for _, c := range codecs {
		if _, ok := bench.Decompressors[bench.FormatFlate][c]; ok {
			decs = append(decs, c)
		}
	}
	sort.Strings(decs)

	enc := referenceCompressor()
	ts := time.Now()
	for _, file := range files {
		input, err := os.ReadFile(file)
		if err != nil {
			panic(err)
		}
		for _, lvl := range levels {
			for _, size := range sizes {
				data := testutil.ResizeData(input, size)
				comp, err := enc(data, lvl)
				if err != nil {
					panic(err)
				}
				fmt.Printf("%s\n", bench.BenchName(file, lvl, size))
				for _, dec := range decs {
					r := bench.BenchmarkDecompressor(comp, bench.Decompressors[bench.FormatFlate][dec], int64(len(data)))
					fmt.Printf("\t%-8s %8.2f MB/s\n", dec, bench.Rate(r))
				}
			}
		}
	}
	fmt.Printf("RUNTIME: %v\n", time.Since(ts))
}

func referenceCompressor() bench.Compressor {
	for _, c := range encRefs {
		if enc, ok := bench.Compressors[bench.FormatFlate][c]; ok {
			return enc
		}
	}
	for _, enc := range bench.Compressors[bench.FormatFlate] {
		return enc
	}
	panic("no compressors registered")
}
