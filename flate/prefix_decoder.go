// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package flate

// buildDecodeTable compiles the canonical Huffman code described by lens
// into a direct-lookup decode table. lens provides, for each symbol, its
// codeword length in bits, or 0 if the symbol is unused; every length must
// already be <= maxLen, but the lengths are otherwise untrusted. results
// provides, per symbol, the decode result to pack into its entries.
//
// The table is indexed with bit-reversed codewords: the next tableBits bits
// of input, peeked LSB-first, select an entry directly. A symbol whose
// codeword is longer than tableBits lands in a subtable appended after the
// main table, reached through a pointer entry in the main slot shared by
// all codewords with that tableBits-bit prefix.
//
// sortedSyms is caller-provided scratch with room for len(lens) entries.
// It reports whether the lengths form a usable code; on false the table
// contents are unspecified and the caller must reject the stream.
func buildDecodeTable(table []uint32, lens []uint8, results []uint32, tableBits, maxLen uint, sortedSyms []uint16) bool {
	// Count how many symbols have each codeword length, including 0.
	var lenCounts [maxPrefixBits + 1]uint16
	for _, n := range lens {
		lenCounts[n]++
	}

	// Sort the symbols, primarily by increasing codeword length and
	// secondarily by increasing symbol value, by scattering each symbol
	// through a running offset for its length. offsets[n] starts as the
	// number of codewords shorter than n bits, including length 0.
	var offsets [maxPrefixBits + 1]uint16
	for n := uint(0); n < maxLen; n++ {
		offsets[n+1] = offsets[n] + lenCounts[n]
	}
	for sym, n := range lens {
		sortedSyms[offsets[n]] = uint16(sym)
		offsets[n]++
	}

	// Kraft check. A codeword of length n claims (1/2)^n of the codespace;
	// the lengths must not claim more than the whole of it.
	remainder := int32(1)
	for n := uint(1); n <= maxLen; n++ {
		remainder <<= 1
		remainder -= int32(lenCounts[n])
		if remainder < 0 {
			return false // Code is over-subscribed
		}
	}

	if remainder != 0 {
		// The code is incomplete. A malformed stream may still index the
		// table with arbitrary bits, so give every main slot a defined
		// default before deciding whether to proceed.
		entry := makeEntry(results[0], 1)
		for i := 0; i < 1<<tableBits; i++ {
			table[i] = entry
		}

		// A completely empty code is permitted; it can never be used by
		// a valid stream.
		if remainder == 1<<maxLen {
			return true
		}

		// Tolerate one used symbol with a codeword of length 1, treating
		// its codeword as "0". RFC 1951 is unclear here; zlib permits
		// this for the litlen and offset codes, and we extend the same
		// treatment to the precode.
		if remainder != 1<<(maxLen-1) || lenCounts[1] != 1 {
			return false
		}
	}

	// Generate the entries in canonical order, shortest codeword first, so
	// the main table fills before any subtable. codeword holds the next
	// canonical codeword in bit-reversed form.
	codewordLen := uint(1)
	for lenCounts[codewordLen] == 0 {
		codewordLen++
	}

	var (
		codeword    uint32
		curPrefix   = uint32(1 << tableBits) // Never a valid prefix
		curStart    uint
		curBits     = tableBits
		droppedBits uint
		tableMask   = uint32(1<<tableBits - 1)
	)

	for symIdx := offsets[0]; ; {
		sym := sortedSyms[symIdx]

		if codewordLen > tableBits && codeword&tableMask != curPrefix {
			// The codeword needs a subtable and its low tableBits bits
			// do not match the previous subtable's prefix: open a new
			// subtable after all tables allocated so far.
			curPrefix = codeword & tableMask
			curStart += 1 << curBits

			// Size the subtable. A codeword exceeding tableBits by n
			// needs at least 2^n entries, and more if fewer than 2^n
			// codewords of length tableBits+n remain: widen until the
			// remaining codewords can fill it completely. The only
			// incomplete code that survives validation is a single
			// length-1 codeword, which needs no subtable, so this
			// always terminates.
			curBits = codewordLen - tableBits
			remainder = int32(1) << curBits
			for {
				remainder -= int32(lenCounts[tableBits+curBits])
				if remainder <= 0 {
					break
				}
				curBits++
				remainder <<= 1
			}

			table[curPrefix] = huffSubtablePtr | makeEntry(uint32(curStart), uint32(curBits))
			droppedBits = tableBits
		}

		// Stamp the entry into every index whose low bits match the
		// codeword; the high bits are free and step by the codeword's
		// power-of-two stride.
		entry := makeEntry(results[sym], uint32(codewordLen-droppedBits))
		step := uint(1) << (codewordLen - droppedBits)
		for i := curStart + uint(codeword>>droppedBits); i < curStart+(1<<curBits); i += step {
			table[i] = entry
		}

		// Increment the codeword in bit-reversed order: clear the top
		// run of ones and set the bit above it.
		bit := uint32(1) << (codewordLen - 1)
		for codeword&bit != 0 {
			bit >>= 1
		}
		codeword &= bit - 1
		codeword |= bit

		if symIdx++; int(symIdx) == len(lens) {
			return true
		}
		lenCounts[codewordLen]--
		for lenCounts[codewordLen] == 0 {
			codewordLen++
		}
	}
}
