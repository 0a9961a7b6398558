// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package flate

// Decompressor holds the decode tables and scratch arrays needed to
// decompress a DEFLATE stream. It exists so that the tables, which are too
// large to comfortably live on the stack, can be reused across calls.
//
// A Decompressor may be reused after an error, but must not be used by
// multiple goroutines concurrently.
type Decompressor struct {
	rd  bitReader
	wnd window

	precodeTable [precodeEnough]uint32
	litlenTable  [litlenEnough]uint32
	offsetTable  [offsetEnough]uint32

	// The codeword-length vector for the litlen and offset codes, with
	// slack to absorb the worst-case run-length overrun while expanding a
	// dynamic header.
	lens        [maxNumLitSyms + maxNumDistSyms + maxLensOverrun]uint8
	precodeLens [maxNumCLenSyms]uint8
	sortedSyms  [maxNumLitSyms]uint16
}

// NewDecompressor returns a new Decompressor.
func NewDecompressor() *Decompressor {
	return new(Decompressor)
}

// Decompress decompresses the complete DEFLATE stream in and writes the
// uncompressed data to out. It returns the number of bytes written to out,
// which on failure counts the bytes produced before the error.
//
// The input must be a raw DEFLATE stream with no zlib or gzip framing.
// Decompress returns ErrCorrupt if the stream is malformed and
// ErrShortOutput if out is too small to hold the uncompressed data.
func (d *Decompressor) Decompress(in, out []byte) (n int, err error) {
	defer func() { n = d.wnd.Size() }()
	defer errRecover(&err)

	d.rd.Init(in)
	d.wnd.Init(out)
	for !d.decodeBlock() {
	}
	return d.wnd.Size(), nil
}

// decodeBlock decodes one DEFLATE block according to RFC section 3.2.3 and
// reports whether it was marked final. Errors unwind via panic; see
// errRecover.
func (d *Decompressor) decodeBlock() (final bool) {
	// Block header plus, for dynamic blocks, the three length counts.
	d.rd.FeedBits(1 + 2 + 5 + 5 + 4)

	final = d.rd.PopBits(1) == 1
	switch d.rd.PopBits(2) {
	case 0:
		// Stored block (RFC section 3.2.4).
		d.rd.AlignToByte()
		if d.rd.Remaining() < 4 {
			panic(ErrCorrupt)
		}
		size := d.rd.ReadUint16()
		if size != ^d.rd.ReadUint16() {
			panic(ErrCorrupt)
		}
		if int(size) > d.rd.Remaining() {
			panic(ErrCorrupt)
		}
		if int(size) > d.wnd.Avail() {
			panic(ErrShortOutput)
		}
		d.wnd.CopyUncompressed(&d.rd, int(size))
		return final
	case 1:
		// Fixed prefix block (RFC section 3.2.6).
		fillFixedLens(d.lens[:maxNumLitSyms+maxNumDistSyms])
		d.buildTables(maxNumLitSyms, maxNumDistSyms)
	case 2:
		// Dynamic prefix block (RFC section 3.2.7).
		d.readDynamicHeader()
	default:
		// Reserved block (RFC section 3.2.3).
		panic(ErrCorrupt)
	}

	d.decodeHuffmanData()
	return final
}

// readDynamicHeader reads a dynamic block header according to RFC section
// 3.2.7: the precode, then the run-length encoded codeword lengths of the
// litlen and offset codes, then both decode tables.
func (d *Decompressor) readDynamicHeader() {
	// The caller has already ensured these 14 bits.
	numLitlen := int(d.rd.PopBits(5)) + 257
	numOffset := int(d.rd.PopBits(5)) + 1
	numExplicit := int(d.rd.PopBits(4)) + 4
	if numLitlen > 286 || numOffset > 30 {
		panic(ErrCorrupt)
	}

	// All 19 precode lengths fit in one refill.
	d.rd.FeedBits(maxNumCLenSyms * 3)
	for i := 0; i < numExplicit; i++ {
		d.precodeLens[clenLens[i]] = uint8(d.rd.PopBits(3))
	}
	for i := numExplicit; i < maxNumCLenSyms; i++ {
		d.precodeLens[clenLens[i]] = 0
	}

	if !buildDecodeTable(d.precodeTable[:], d.precodeLens[:], precodeResults[:],
		precodeTableBits, maxPreBits, d.sortedSyms[:]) {
		panic(ErrCorrupt)
	}

	// Expand the joined length vector. One refill covers the longest
	// precode codeword plus the longest repeat operand. Repeat counts may
	// overrun the vector into its slack; the exact-fill check below
	// rejects such streams.
	total := numLitlen + numOffset
	i := 0
	for i < total {
		d.rd.FeedBits(maxPreBits + 7)

		// The precode never requires subtables: its table is indexed
		// with all maxPreBits bits at once.
		entry := d.precodeTable[d.rd.PeekBits(maxPreBits)]
		d.rd.SkipBits(uint(entry & huffLengthMask))
		presym := entry >> huffResultShift

		if presym < 16 {
			// Explicit codeword length.
			d.lens[i] = uint8(presym)
			i++
			continue
		}
		switch presym {
		case 16:
			// Repeat the previous length 3-6 times.
			if i == 0 {
				panic(ErrCorrupt)
			}
			rep := 3 + int(d.rd.PopBits(2))
			v := d.lens[i-1]
			for j := 0; j < rep; j++ {
				d.lens[i+j] = v
			}
			i += rep
		case 17:
			// Repeat zero 3-10 times.
			rep := 3 + int(d.rd.PopBits(3))
			for j := 0; j < rep; j++ {
				d.lens[i+j] = 0
			}
			i += rep
		default:
			// Repeat zero 11-138 times.
			rep := 11 + int(d.rd.PopBits(7))
			for j := 0; j < rep; j++ {
				d.lens[i+j] = 0
			}
			i += rep
		}
	}
	if i != total {
		panic(ErrCorrupt)
	}

	d.buildTables(numLitlen, numOffset)
}

// buildTables builds the offset and litlen decode tables from the joined
// length vector. The offset table is built first so that implementations
// which alias the length vector with the litlen table remain possible.
func (d *Decompressor) buildTables(numLitlen, numOffset int) {
	if !buildDecodeTable(d.offsetTable[:], d.lens[numLitlen:numLitlen+numOffset],
		offsetResults[:], offsetTableBits, maxPrefixBits, d.sortedSyms[:]) {
		panic(ErrCorrupt)
	}
	if !buildDecodeTable(d.litlenTable[:], d.lens[:numLitlen],
		litlenResults[:], litlenTableBits, maxPrefixBits, d.sortedSyms[:]) {
		panic(ErrCorrupt)
	}
}

// decodeHuffmanData runs the main decode loop of a fixed or dynamic block
// until the end-of-block symbol.
func (d *Decompressor) decodeHuffmanData() {
	for {
		// Decode a litlen symbol.
		d.rd.FeedBits(maxPrefixBits)
		entry := d.litlenTable[d.rd.PeekBits(litlenTableBits)]
		if entry&huffSubtablePtr != 0 {
			// Litlen subtable required (uncommon case).
			d.rd.SkipBits(litlenTableBits)
			entry = d.litlenTable[(entry>>huffResultShift)&0xffff+d.rd.PeekBits(uint(entry&huffLengthMask))]
		}
		d.rd.SkipBits(uint(entry & huffLengthMask))

		if entry&huffLiteral != 0 {
			if d.wnd.Avail() == 0 {
				panic(ErrShortOutput)
			}
			d.wnd.Push(byte(entry >> huffResultShift))
			continue
		}

		// Match or end-of-block. One full refill covers the extra length
		// bits, the offset codeword, and the extra offset bits.
		entry >>= huffResultShift
		d.rd.FeedBits(maxEnsureBits)
		length := int(entry>>huffLengthBaseShift) + int(d.rd.PopBits(uint(entry&huffExtraLengthMask)))
		if length == huffEndOfBlock {
			return
		}
		if length > d.wnd.Avail() {
			panic(ErrShortOutput)
		}

		// Decode the match offset.
		entry = d.offsetTable[d.rd.PeekBits(offsetTableBits)]
		if entry&huffSubtablePtr != 0 {
			// Offset subtable required (uncommon case).
			d.rd.SkipBits(offsetTableBits)
			entry = d.offsetTable[(entry>>huffResultShift)&0xffff+d.rd.PeekBits(uint(entry&huffLengthMask))]
		}
		d.rd.SkipBits(uint(entry & huffLengthMask))
		entry >>= huffResultShift
		offset := int(entry&huffOffsetBaseMask) + int(d.rd.PopBits(uint(entry>>huffExtraOffsetShift)))
		if offset > d.wnd.Size() {
			panic(ErrCorrupt)
		}

		d.wnd.CopyMatch(length, offset)
	}
}
