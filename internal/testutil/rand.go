// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand is a deterministic pseudo-random number generator built on an AES
// keystream. Unlike math/rand, its output for a given seed is stable across
// Go releases, so tests and benchmarks that derive data from it stay
// reproducible.
type Rand struct {
	stream cipher.Stream
	word   [8]byte
}

func NewRand(seed int) *Rand {
	var key, iv [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	block, _ := aes.NewCipher(key[:])
	return &Rand{stream: cipher.NewCTR(block, iv[:])}
}

// Int returns a non-negative pseudo-random int.
func (r *Rand) Int() int {
	for i := range r.word {
		r.word[i] = 0
	}
	r.stream.XORKeyStream(r.word[:], r.word[:])
	return int(binary.LittleEndian.Uint64(r.word[:]) &^ (1 << 63))
}

// Intn returns a pseudo-random int in [0, n).
func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// Bytes returns n pseudo-random bytes.
func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	r.stream.XORKeyStream(b, b)
	return b
}

// Perm returns a pseudo-random permutation of [0, n).
func (r *Rand) Perm(n int) []int {
	m := make([]int, n)
	for i := 0; i < n; i++ {
		j := r.Intn(i + 1)
		m[i] = m[j]
		m[j] = i
	}
	return m
}
