// Copyright 2024 The cryptsuite Authors
// This file is part of the cryptsuite library.
//
// The cryptsuite library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The cryptsuite library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the cryptsuite library. If not, see <http://www.gnu.org/licenses/>.

package sha3

import "github.com/kittera/cryptosuite/crypto/keccak"

// Hasher is a streaming SHA-3/SHAKE instance. Writes absorb input and reads
// squeeze output; writing after the first Read panics. The fixed-output
// instances additionally implement hash.Hash.
type Hasher struct {
	sp        *keccak.Sponge
	buf       []byte // pending partial input block
	out       []byte // squeezed output not yet read
	capacity  int
	ds        byte
	size      int // fixed digest size; zero for XOF instances
	squeezing bool
}

func newHasher(capacity int, ds byte, size int) *Hasher {
	return &Hasher{sp: newSponge(capacity, ds), capacity: capacity, ds: ds, size: size}
}

// New224 returns a streaming SHA3-224 hash.
func New224() *Hasher { return newHasher(56, dsSHA3, 28) }

// New256 returns a streaming SHA3-256 hash.
func New256() *Hasher { return newHasher(64, dsSHA3, 32) }

// New384 returns a streaming SHA3-384 hash.
func New384() *Hasher { return newHasher(96, dsSHA3, 48) }

// New512 returns a streaming SHA3-512 hash.
func New512() *Hasher { return newHasher(128, dsSHA3, 64) }

// NewShake128 returns a streaming SHAKE128 XOF.
func NewShake128() *Hasher { return newHasher(32, dsShake, 0) }

// NewShake256 returns a streaming SHAKE256 XOF.
func NewShake256() *Hasher { return newHasher(64, dsShake, 0) }

// NewCShake128 returns a streaming cSHAKE128 XOF with the given function name
// and customization string. Both empty yields plain SHAKE128.
func NewCShake128(fname, custom []byte) *Hasher { return newCShake(32, fname, custom) }

// NewCShake256 returns a streaming cSHAKE256 XOF with the given function name
// and customization string. Both empty yields plain SHAKE256.
func NewCShake256(fname, custom []byte) *Hasher { return newCShake(64, fname, custom) }

func newCShake(capacity int, fname, custom []byte) *Hasher {
	if len(fname) == 0 && len(custom) == 0 {
		return newHasher(capacity, dsShake, 0)
	}
	h := newHasher(capacity, dsCShake, 0)
	h.Write(bytepad(append(encodeString(fname), encodeString(custom)...), h.sp.Rate()))
	return h
}

// Write absorbs p into the sponge. It never returns an error; it panics if
// called after Read.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.squeezing {
		panic("sha3: Write after Read")
	}
	h.buf = append(h.buf, p...)
	if full := len(h.buf) / h.sp.Rate() * h.sp.Rate(); full > 0 {
		h.sp.Duplex(h.buf[:full])
		h.buf = append(h.buf[:0], h.buf[full:]...)
	}
	return len(p), nil
}

// Read squeezes len(p) bytes of output. The first call pads and absorbs any
// pending input; subsequent calls extend the output stream. It never returns
// an error.
func (h *Hasher) Read(p []byte) (int, error) {
	if !h.squeezing {
		h.sp.AbsorbAll(h.buf)
		h.buf = nil
		h.squeezing = true
	}
	n := len(p)
	for len(p) > 0 {
		if len(h.out) == 0 {
			h.out = h.sp.Squeeze()
		}
		c := copy(p, h.out)
		h.out = h.out[c:]
		p = p[c:]
	}
	return n, nil
}

// Sum appends the digest of the data written so far to in. The hasher state
// is left intact, so callers can keep writing. Only valid on fixed-output
// instances.
func (h *Hasher) Sum(in []byte) []byte {
	if h.size == 0 {
		panic("sha3: Sum on an extendable-output instance")
	}
	dup := *h
	dup.sp = h.sp.Clone()
	dup.buf = append([]byte(nil), h.buf...)
	dup.out = append([]byte(nil), h.out...)
	out := make([]byte, dup.size)
	dup.Read(out)
	return append(in, out...)
}

// Size returns the digest size in bytes, or zero for XOF instances.
func (h *Hasher) Size() int { return h.size }

// BlockSize returns the sponge rate in bytes.
func (h *Hasher) BlockSize() int { return h.sp.Rate() }

// Reset restores the hasher to its initial state and rearms Write. cSHAKE
// prefixes absorbed at construction are not replayed; use a new instance
// instead.
func (h *Hasher) Reset() {
	h.sp = newSponge(h.capacity, h.ds)
	h.buf = nil
	h.out = nil
	h.squeezing = false
}
