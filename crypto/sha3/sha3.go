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

// Package sha3 implements the SHA-3 fixed-output hashes and the SHAKE,
// cSHAKE and KMACXOF extendable-output functions of FIPS 202 and
// NIST SP 800-185, built on the duplex sponge in crypto/keccak.
package sha3

import (
	"github.com/kittera/cryptosuite/crypto/keccak"
)

// Domain separation suffixes from FIPS 202 table 6 and SP 800-185.
const (
	dsSHA3   = 0x06
	dsShake  = 0x1f
	dsCShake = 0x04
)

func newSponge(capacity int, ds byte) *keccak.Sponge {
	pad := func(m []byte, rate int) []byte {
		return keccak.Pad101(m, rate, ds)
	}
	return keccak.NewSponge(keccak.F1600, pad, capacity)
}

// digest absorbs m into a fresh sponge and squeezes n bytes.
func digest(m []byte, capacity int, ds byte, n int) []byte {
	sp := newSponge(capacity, ds)
	sp.AbsorbAll(m)
	out := sp.Squeeze()
	for len(out) < n {
		out = append(out, sp.Squeeze()...)
	}
	return out[:n]
}

// Sum224 returns the SHA3-224 digest of m.
func Sum224(m []byte) [28]byte {
	var h [28]byte
	copy(h[:], digest(m, 56, dsSHA3, 28))
	return h
}

// Sum256 returns the SHA3-256 digest of m.
func Sum256(m []byte) [32]byte {
	var h [32]byte
	copy(h[:], digest(m, 64, dsSHA3, 32))
	return h
}

// Sum384 returns the SHA3-384 digest of m.
func Sum384(m []byte) [48]byte {
	var h [48]byte
	copy(h[:], digest(m, 96, dsSHA3, 48))
	return h
}

// Sum512 returns the SHA3-512 digest of m.
func Sum512(m []byte) [64]byte {
	var h [64]byte
	copy(h[:], digest(m, 128, dsSHA3, 64))
	return h
}

// ShakeSum128 returns n bytes of SHAKE128 output over m.
func ShakeSum128(m []byte, n int) []byte {
	return digest(m, 32, dsShake, n)
}

// ShakeSum256 returns n bytes of SHAKE256 output over m.
func ShakeSum256(m []byte, n int) []byte {
	return digest(m, 64, dsShake, n)
}

// cshake implements cSHAKE over the given capacity. With an empty function
// name and customization string it degrades to plain SHAKE, as SP 800-185
// requires.
func cshake(m []byte, n int, fname, custom []byte, capacity int) []byte {
	if len(fname) == 0 && len(custom) == 0 {
		return digest(m, capacity, dsShake, n)
	}
	rate := keccak.StateLen - capacity
	in := bytepad(append(encodeString(fname), encodeString(custom)...), rate)
	in = append(in, m...)
	return digest(in, capacity, dsCShake, n)
}

// CShakeSum128 returns n bytes of cSHAKE128 output over m with function name
// fname and customization string custom.
func CShakeSum128(m []byte, n int, fname, custom []byte) []byte {
	return cshake(m, n, fname, custom, 32)
}

// CShakeSum256 returns n bytes of cSHAKE256 output over m with function name
// fname and customization string custom.
func CShakeSum256(m []byte, n int, fname, custom []byte) []byte {
	return cshake(m, n, fname, custom, 64)
}

// kmacInput builds the cSHAKE input for KMACXOF: the padded key block, the
// message, and a right-encoded zero marking the extendable-output variant.
func kmacInput(key, m []byte, rate int) []byte {
	in := bytepad(encodeString(key), rate)
	in = append(in, m...)
	return append(in, rightEncode(0)...)
}

// KMACXOF128 returns n bytes of KMACXOF128 output over m under key with
// customization string custom.
func KMACXOF128(key, m []byte, n int, custom []byte) []byte {
	return cshake(kmacInput(key, m, 168), n, []byte("KMAC"), custom, 32)
}

// KMACXOF256 returns n bytes of KMACXOF256 output over m under key with
// customization string custom.
func KMACXOF256(key, m []byte, n int, custom []byte) []byte {
	return cshake(kmacInput(key, m, 136), n, []byte("KMAC"), custom, 64)
}
