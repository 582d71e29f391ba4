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

// String encoding helpers from NIST SP 800-185 section 2.3. Lengths here
// never exceed 64 bits, well under the 255-byte length field the standard
// allows.

// leftEncode encodes n as its minimal big-endian byte string prefixed with
// the byte count.
func leftEncode(n uint64) []byte {
	if n == 0 {
		return []byte{1, 0}
	}
	var b [9]byte
	i := 9
	for v := n; v > 0; v >>= 8 {
		i--
		b[i] = byte(v)
	}
	b[i-1] = byte(9 - i)
	return b[i-1:]
}

// rightEncode encodes n as its minimal big-endian byte string suffixed with
// the byte count.
func rightEncode(n uint64) []byte {
	if n == 0 {
		return []byte{0, 1}
	}
	var b [9]byte
	i := 9
	for v := n; v > 0; v >>= 8 {
		i--
		b[i] = byte(v)
	}
	out := append([]byte(nil), b[i:]...)
	return append(out, byte(9-i))
}

// encodeString prefixes s with the left-encoded bit length of s.
func encodeString(s []byte) []byte {
	return append(leftEncode(uint64(len(s))*8), s...)
}

// bytepad prepends the left-encoded block width w to x and zero-pads the
// result to a multiple of w bytes.
func bytepad(x []byte, w int) []byte {
	z := append(leftEncode(uint64(w)), x...)
	if rem := len(z) % w; rem != 0 {
		z = append(z, make([]byte, w-rem)...)
	}
	return z
}
