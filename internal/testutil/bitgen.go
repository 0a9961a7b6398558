// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/rchikhi/libdeflate/internal"
)

// The BitGen format allows bit-streams to be authored as a series of tokens,
// so that test vectors for bit-oriented formats can be scripted by hand with
// comments recording authorial intent. Tokens are separated by whitespace;
// the '#' character comments out the rest of its line.
//
// The first token must be "<<<" (little-endian) or ">>>" (big-endian),
// selecting how bits are packed into the bytes of the output stream.
// DEFLATE uses little-endian packing.
//
// The remaining tokens each append bits to the stream:
//
//	[01]{1,64}                      a bit-string
//	D<bits>:<decimal value>         a numeric value of the given bit-length
//	H<bits>:<hexadecimal value>     likewise, in hexadecimal
//	X:<hex bytes>                   literal bytes; stream must be byte-aligned
//
// A standalone "<" or ">" token switches the global bit-parsing mode between
// little-endian (the right-most or least-significant bits are emitted first;
// the default) and big-endian (the opposite). Prefixing a single bit-string
// or numeric token with "<" or ">" overrides the mode for that token only.
// Any token may carry a "*<count>" suffix to repeat it.
//
// If the stream does not end on a byte boundary, it is zero-padded to one.
func DecodeBitGen(str string) ([]byte, error) {
	toks, err := tokenizeBitGen(str)
	if err != nil {
		return nil, err
	}

	var bw bitGenWriter
	packBE := toks[0] == ">>>"
	parseBE := false
	for _, t := range toks[1:] {
		// Local and global bit-parsing mode modifiers.
		be := parseBE
		if t[0] == '<' || t[0] == '>' {
			be = t[0] == '>'
			if t = t[1:]; len(t) == 0 {
				parseBE = be
				continue
			}
		}

		// Quantifier suffix.
		rep := 1
		if i := strings.LastIndexByte(t, '*'); i >= 0 && reQnt.MatchString(t[i:]) {
			n, err := strconv.Atoi(t[i+1:])
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = t[:i], n
		}

		switch {
		case reBin.MatchString(t):
			var v uint64
			for _, b := range t {
				v = v<<1 | uint64(b-'0')
			}
			bw.writeBits(v, uint(len(t)), rep, be)
		case reNum.MatchString(t):
			i := strings.IndexByte(t, ':')
			base := 10
			if t[0] == 'H' {
				base = 16
			}
			nb, err1 := strconv.Atoi(t[1:i])
			v, err2 := strconv.ParseUint(t[i+1:], base, 64)
			if err1 != nil || err2 != nil || nb > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if nb < 64 && v>>uint(nb) > 0 {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			bw.writeBits(v, uint(nb), rep, be)
		case reRaw.MatchString(t):
			b, err := hex.DecodeString(t[2:])
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			if err := bw.writeBytes(bytes.Repeat(b, rep)); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}

	buf := bw.bytes()
	if packBE {
		for i, b := range buf {
			buf[i] = internal.ReverseLUT[b]
		}
	}
	return buf, nil
}

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reNum = regexp.MustCompile("^[DH][0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("^[*][0-9]+$")
)

func tokenizeBitGen(str string) ([]string, error) {
	var toks []string
	for _, line := range strings.Split(str, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		toks = append(toks, strings.Fields(line)...)
	}
	if len(toks) == 0 || (toks[0] != "<<<" && toks[0] != ">>>") {
		return nil, errors.New("testutil: unknown stream bit-packing mode")
	}
	return toks, nil
}

// bitGenWriter packs bits LSB-first into a growing byte slice.
type bitGenWriter struct {
	buf  []byte
	mask byte // Position of the next bit in the last byte; 0 means aligned
}

// writeBits appends the low nb bits of v, rep times. MSB-first emission is
// achieved by reversing the bits up front.
func (bw *bitGenWriter) writeBits(v uint64, nb uint, rep int, msbFirst bool) {
	if msbFirst {
		v = internal.ReverseUint64N(v, nb)
	}
	for ; rep > 0; rep-- {
		for i := uint(0); i < nb; i++ {
			if bw.mask == 0 {
				bw.mask = 0x01
				bw.buf = append(bw.buf, 0x00)
			}
			if v&(1<<i) != 0 {
				bw.buf[len(bw.buf)-1] |= bw.mask
			}
			bw.mask <<= 1
		}
	}
}

func (bw *bitGenWriter) writeBytes(buf []byte) error {
	if bw.mask != 0 {
		return errors.New("testutil: unaligned write")
	}
	bw.buf = append(bw.buf, buf...)
	return nil
}

func (bw *bitGenWriter) bytes() []byte { return bw.buf }
