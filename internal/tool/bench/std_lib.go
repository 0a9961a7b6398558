// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"compress/flate"
	"io"
)

func init() {
	RegisterCompressor(FormatFlate, "std",
		func(data []byte, level int) ([]byte, error) {
			var buf bytes.Buffer
			zw, err := flate.NewWriter(&buf, level)
			if err != nil {
				return nil, err
			}
			if _, err := zw.Write(data); err != nil {
				return nil, err
			}
			if err := zw.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		})
	RegisterDecompressor(FormatFlate, "std",
		func(data []byte) ([]byte, error) {
			zr := flate.NewReader(bytes.NewReader(data))
			defer zr.Close()
			return io.ReadAll(zr)
		})
}
