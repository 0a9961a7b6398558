// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package flate

// The window is the LZ77 history. Since decompression is whole-buffer, the
// caller's output buffer serves directly as the window: every byte produced
// so far is addressable, so any offset up to the bytes written is valid and
// no separate ring or flushing is needed. When the output buffer runs out
// of room the stream cannot be represented and decoding fails with
// ErrShortOutput.
type window struct {
	buf  []byte // Caller-provided output buffer, doubles as the history
	next int    // Write cursor into buf
}

func (w *window) Init(buf []byte) {
	w.buf = buf
	w.next = 0
}

// Size returns the number of bytes produced so far.
func (w *window) Size() int { return w.next }

// Avail returns the remaining output capacity.
func (w *window) Avail() int { return len(w.buf) - w.next }

// Push appends a single literal byte. Requires Avail() > 0.
func (w *window) Push(c byte) {
	w.buf[w.next] = c
	w.next++
}

// CopyMatch copies a match of the given length starting offset bytes before
// the write cursor. Requires 0 < offset <= Size() and length <= Avail().
//
// Byte k of the match equals the byte at next-offset+(k mod offset), so an
// overlapping match (offset < length) replicates the last offset bytes.
// The copy loop below preserves that semantic while still using bulk copies:
// each pass copies from the already-written region only, at most doubling
// the bytes copied per pass.
func (w *window) CopyMatch(length, offset int) {
	dst, end := w.next, w.next+length
	if offset == 1 {
		// Run of a single byte.
		c := w.buf[dst-1]
		for i := dst; i < end; i++ {
			w.buf[i] = c
		}
	} else {
		src := dst - offset
		for dst < end {
			dst += copy(w.buf[dst:end], w.buf[src:dst])
		}
	}
	w.next = end
}

// CopyUncompressed copies n bytes of a stored block straight from the
// byte-aligned input. Requires n <= Avail() and n bytes of input.
func (w *window) CopyUncompressed(br *bitReader, n int) {
	br.CopyBytes(w.buf[w.next : w.next+n])
	w.next += n
}
