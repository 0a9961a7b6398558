// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

// The xz codec is registered purely as a cross-format reference point; this
// repository implements no xz codec of its own.
func init() {
	RegisterCompressor(FormatXZ, "xz",
		func(data []byte, level int) ([]byte, error) {
			var buf bytes.Buffer
			zw, err := xz.NewWriter(&buf)
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
	RegisterDecompressor(FormatXZ, "xz",
		func(data []byte) ([]byte, error) {
			zr, err := xz.NewReader(bytes.NewReader(data))
			if err != nil {
				return nil, err
			}
			return io.ReadAll(zr)
		})
}
