/*
 * Copyright (c) 2024 AlexHild
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// salsaChunk is the number of keystream bytes generated per refill.
const salsaChunk = 512

// Salsa20Source is a deterministic pseudo-random source backed by
// the Salsa20 keystream. Two sources with the same key produce the
// same stream, which makes sampling reproducible across runs and
// machines. It implements the golang.org/x/exp/rand Source
// interface.
type Salsa20Source struct {
	key   [32]byte
	nonce uint64
	buf   [salsaChunk]byte
	off   int
}

// NewSalsa20Source returns a Salsa20Source keyed with key, starting
// at the beginning of the keystream.
func NewSalsa20Source(key [32]byte) *Salsa20Source {
	return &Salsa20Source{key: key, off: salsaChunk}
}

// Uint64 returns the next 64 bits of the keystream.
func (s *Salsa20Source) Uint64() uint64 {
	if s.off == salsaChunk {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8
	return v
}

// Seed restarts the keystream at the given chunk offset. Seed(0)
// rewinds the source to its initial position; the key is unchanged.
func (s *Salsa20Source) Seed(seed uint64) {
	s.nonce = seed
	s.off = salsaChunk
}

// refill XORs a zero block against the keystream at the current
// nonce; successive refills use successive nonces, so the stream
// never repeats a block.
func (s *Salsa20Source) refill() {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.nonce)
	s.nonce++

	var in [salsaChunk]byte
	salsa20.XORKeyStream(s.buf[:], in[:], nonce[:], &s.key)
	s.off = 0
}
