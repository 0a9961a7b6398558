// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

func init() {
	RegisterCompressor(FormatFlate, "kp",
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
	RegisterDecompressor(FormatFlate, "kp",
		func(data []byte) ([]byte, error) {
			zr := flate.NewReader(bytes.NewReader(data))
			defer zr.Close()
			return io.ReadAll(zr)
		})
}
