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

// Package bitutil implements bit-level operations on byte slices.
package bitutil

// XORBytes sets dst[i] = a[i] ^ b[i] for every index. All three slices must
// have the same length; a mismatch is a programmer error and panics.
func XORBytes(dst, a, b []byte) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("bitutil: length mismatch in XORBytes")
	}
	for i := range a {
		dst[i] = a[i] ^ b[i]
	}
}
