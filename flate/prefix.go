// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package flate

// Decode tables map the next chunk of input bits directly to a 32-bit entry.
// The bits of each entry are laid out as follows:
//
//	Bit  31:      subtable pointer flag (main table only)
//	Bit  30:      literal flag (litlen table only)
//	Bits 8..29:   decode result, a symbol or data derived from it
//	Bits 0..7:    codeword length (subtable index width for pointers)
//
// The decode result is precomputed per symbol so that the hot loop never has
// to translate a symbol through a second table: literal entries carry the
// literal byte, length entries carry the length base and extra-bit count,
// and offset entries carry the offset base and extra-bit count.

const (
	huffSubtablePtr = 1 << 31
	huffLiteral     = 1 << 30
	huffLengthMask  = 0xff
	huffResultShift = 8

	// Length results: base<<8 | extraBits, with base 0 reserved for the
	// end-of-block symbol.
	huffLengthBaseShift = 8
	huffExtraLengthMask = 0xff
	huffEndOfBlock      = 0

	// Offset results: base | extraBits<<16.
	huffExtraOffsetShift = 16
	huffOffsetBaseMask   = 1<<huffExtraOffsetShift - 1
)

const (
	maxPrefixBits = 15 // Longest litlen or offset codeword
	maxPreBits    = 7  // Longest precode codeword

	maxNumCLenSyms = 19
	maxNumLitSyms  = 288
	maxNumDistSyms = 32

	// Worst-case overrun of the codeword-length vector: a repeat of 138
	// zeros decoded when a single slot remained.
	maxLensOverrun = 137
)

// Table sizing. Each "enough" value is the worst-case entry count for the
// main table plus all subtables, as computed by zlib's enough utility for
// the (symbol count, table bits, max codeword length) triple. The table
// bits and enough values must change together.
const (
	precodeTableBits = 7
	litlenTableBits  = 10
	offsetTableBits  = 8

	precodeEnough = 128  // enough 19 7 7
	litlenEnough  = 1334 // enough 288 10 15
	offsetEnough  = 402  // enough 32 8 15
)

var (
	precodeResults [maxNumCLenSyms]uint32 // RFC section 3.2.7
	litlenResults  [maxNumLitSyms]uint32  // RFC section 3.2.5
	offsetResults  [maxNumDistSyms]uint32 // RFC section 3.2.5
)

// RFC section 3.2.7.
// The order in which precode codeword lengths are transmitted.
var clenLens = [maxNumCLenSyms]uint{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

func literalEntry(lit uint32) uint32 {
	return huffLiteral>>huffResultShift | lit
}

func lengthEntry(base, bits uint32) uint32 {
	return base<<huffLengthBaseShift | bits
}

func offsetEntry(base, bits uint32) uint32 {
	return base | bits<<huffExtraOffsetShift
}

func makeEntry(result, length uint32) uint32 {
	return result<<huffResultShift | length
}

func init() {
	initPrefixLUTs()
}

func initPrefixLUTs() {
	// There is no optimized result for the precode; the result is simply
	// the symbol value.
	for i := range precodeResults {
		precodeResults[i] = uint32(i)
	}

	// These come from the RFC section 3.2.5.
	for i := range litlenResults[:endBlockSym] {
		litlenResults[i] = literalEntry(uint32(i))
	}
	litlenResults[endBlockSym] = lengthEntry(huffEndOfBlock, 0)
	for i, base := 0, uint32(3); i < 28; i++ {
		nb := uint32(i/4 - 1)
		if i < 4 {
			nb = 0
		}
		litlenResults[endBlockSym+1+i] = lengthEntry(base, nb)
		base += 1 << nb
	}
	// Symbol 285 is (258, 0); the reserved symbols 286 and 287 repeat it
	// so that a lookup through the static litlen code stays in range.
	for i := 285; i < maxNumLitSyms; i++ {
		litlenResults[i] = lengthEntry(258, 0)
	}

	// These come from the RFC section 3.2.5. The reserved symbols 30 and
	// 31 continue the base/extra progression past the largest real offset,
	// decoding to offsets of at least 32769; the history check rejects them
	// only while fewer bytes than that have been produced.
	for i, base := 0, uint32(1); i < maxNumDistSyms; i++ {
		nb := uint32(i/2 - 1)
		if i < 2 {
			nb = 0
		}
		offsetResults[i] = offsetEntry(base, nb)
		base += 1 << nb
	}
}

// fillFixedLens writes the fixed codeword-length assignment of RFC section
// 3.2.6 into lens: the litlen lengths followed by 32 offset lengths of 5.
func fillFixedLens(lens []uint8) {
	for i := 0; i < 144; i++ {
		lens[i] = 8
	}
	for i := 144; i < 256; i++ {
		lens[i] = 9
	}
	for i := 256; i < 280; i++ {
		lens[i] = 7
	}
	for i := 280; i < maxNumLitSyms; i++ {
		lens[i] = 8
	}
	for i := maxNumLitSyms; i < maxNumLitSyms+maxNumDistSyms; i++ {
		lens[i] = 5
	}
}
