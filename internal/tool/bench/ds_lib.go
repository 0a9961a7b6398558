// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"github.com/rchikhi/libdeflate/flate"
)

func init() {
	d := flate.NewDecompressor()
	RegisterDecompressor(FormatFlate, "ds",
		func(data []byte) ([]byte, error) {
			// The output size is not known in advance; grow the buffer
			// geometrically until the stream fits.
			out := make([]byte, 4*len(data)+1024)
			for {
				n, err := d.Decompress(data, out)
				if err == flate.ErrShortOutput {
					out = make([]byte, 2*len(out))
					continue
				}
				if err != nil {
					return nil, err
				}
				return out[:n], nil
			}
		})
}
