// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package flate implements a whole-buffer decompressor for the DEFLATE
// compressed data format, described in RFC 1951.
//
// Unlike compress/flate in the standard library, this package does not
// operate on streams. The entire compressed input must be in memory, and the
// uncompressed output is written into a caller-provided buffer:
//
//	d := flate.NewDecompressor()
//	n, err := d.Decompress(input, output)
//
// The input must be a raw DEFLATE bitstream with no zlib or gzip envelope,
// and no checksum is verified. Dropping the streaming requirement allows the
// decoder to read input a machine word at a time and to look ahead past the
// end of the input, which is where most of its speed comes from.
package flate

import "runtime"

const endBlockSym = 256

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "flate: " + string(e) }

var (
	// ErrCorrupt is returned when the input is not a valid DEFLATE stream.
	ErrCorrupt error = Error("stream is corrupted")

	// ErrShortOutput is returned when a decoded literal or match does not
	// fit in the output buffer.
	ErrShortOutput error = Error("output buffer is too small")
)

// errRecover converts a panicked error back into a returned error.
// Decoding internals report failure by panicking with one of the sentinel
// errors above; the exported entry point defers this to unwind.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
