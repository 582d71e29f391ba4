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

// Package math provides integer math utilities, in particular the signed
// big-endian (two's-complement) byte codec used by the curve point and
// signature wire formats.
package math

import "math/big"

var big1 = big.NewInt(1)

// SignedBytes returns the minimal two's-complement big-endian encoding of x.
// A nonnegative value whose top bit would be set gains a leading zero byte,
// so the encoding always round-trips through ParseSigned.
func SignedBytes(x *big.Int) []byte {
	switch x.Sign() {
	case 0:
		return []byte{0}
	case 1:
		b := x.Bytes()
		if b[0]&0x80 != 0 {
			return append([]byte{0}, b...)
		}
		return b
	}
	// Negative: find the shortest width n with x >= -(2^(8n-1)), then
	// encode x + 2^(8n) big-endian in n bytes.
	n := (x.BitLen() + 7) / 8
	if n == 0 {
		n = 1
	}
	min := new(big.Int).Lsh(big1, uint(8*n-1))
	min.Neg(min)
	if x.Cmp(min) < 0 {
		n++
	}
	tc := new(big.Int).Lsh(big1, uint(8*n))
	tc.Add(tc, x)
	b := tc.Bytes()
	out := make([]byte, n)
	for i := range out {
		out[i] = 0xff
	}
	copy(out[n-len(b):], b)
	return out
}

// PaddedSignedBytes returns the two's-complement big-endian encoding of x
// sign-extended to exactly n bytes. If the minimal encoding is longer than
// n bytes, only the low n bytes are kept.
func PaddedSignedBytes(x *big.Int, n int) []byte {
	b := SignedBytes(x)
	if len(b) >= n {
		return b[len(b)-n:]
	}
	out := make([]byte, n)
	if x.Sign() < 0 {
		for i := range out {
			out[i] = 0xff
		}
	}
	copy(out[n-len(b):], b)
	return out
}

// ParseSigned interprets b as a two's-complement big-endian integer.
// An empty slice parses as zero.
func ParseSigned(b []byte) *big.Int {
	x := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		x.Sub(x, new(big.Int).Lsh(big1, uint(8*len(b))))
	}
	return x
}
