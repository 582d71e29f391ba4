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

// Package keccak implements the Keccak-f[1600] permutation of FIPS 202 and a
// generic duplex sponge built on top of it.
package keccak

import (
	"encoding/binary"
	"math/bits"
)

// StateLen is the Keccak-f[1600] state size in bytes.
const StateLen = 200

const rounds = 24

var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rotationConstants and piLane drive the combined rho/pi step: lane piLane[i]
// receives the previous lane rotated by rotationConstants[i], starting the
// chase at lane 1.
var rotationConstants = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36,
	45, 55, 2, 14, 27, 41, 56, 8,
	25, 43, 62, 18, 39, 61, 20, 44,
}

var piLane = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16,
	8, 21, 24, 4, 15, 23, 19, 13,
	12, 2, 20, 14, 22, 9, 6, 1,
}

// f1600 applies the 24 rounds of Keccak-f[1600] to the lane form of the
// state. Lane (x, y) lives at index x + 5y.
func f1600(a *[25]uint64) {
	var bc [5]uint64
	for r := 0; r < rounds; r++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}
		// rho and pi
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piLane[i]
			bc[0] = a[j]
			a[j] = bits.RotateLeft64(t, rotationConstants[i])
			t = bc[0]
		}
		// chi, one row at a time with a snapshot of the row
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = a[j+i]
			}
			for i := 0; i < 5; i++ {
				a[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}
		// iota
		a[0] ^= roundConstants[r]
	}
}

// F1600 applies the Keccak-f[1600] permutation to a 200-byte state. Octet i
// belongs to lane i/8, little-endian within the lane.
func F1600(s *[StateLen]byte) {
	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(s[i*8:])
	}
	f1600(&a)
	for i := range a {
		binary.LittleEndian.PutUint64(s[i*8:], a[i])
	}
}
