// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"fmt"
	"testing"

	"github.com/rchikhi/libdeflate/internal/testutil"
)

// TestCodecs tests that the output of each registered compressor is a valid
// input for each registered decompressor of the same format. This runs in
// O(n^2) in the number of registered codecs per format.
func TestCodecs(t *testing.T) {
	rand := testutil.NewRand(5)
	datas := map[string][]byte{
		"random":  rand.Bytes(1 << 14),
		"repeats": testutil.ResizeData(rand.Bytes(64), 1<<14),
		"zeros":   make([]byte, 1<<14),
	}

	const level = 6 // Default compression on all compressors
	for _, ft := range []Format{FormatFlate, FormatXZ} {
		for dataName, data := range datas {
			for encName := range Compressors[ft] {
				for decName := range Decompressors[ft] {
					name := fmt.Sprintf("Format:%v/Data:%v/Encoder:%v/Decoder:%v", ft, dataName, encName, decName)
					t.Run(name, func(t *testing.T) {
						ok, err := RoundTrip(ft, encName, decName, data, level)
						if err != nil {
							t.Fatalf("unexpected RoundTrip error: %v", err)
						}
						if !ok {
							t.Fatalf("data corrupted through %s -> %s", encName, decName)
						}
					})
				}
			}
		}
	}
}
