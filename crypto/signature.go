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

package crypto

import (
	"errors"
	"math/big"

	"github.com/kittera/cryptosuite/common/math"
	"github.com/kittera/cryptosuite/crypto/e521"
	"github.com/kittera/cryptosuite/crypto/sha3"
)

// ErrSignatureLength is returned for signature encodings too short to hold
// both components.
var ErrSignatureLength = errors.New("crypto: invalid signature encoding length")

// sigSplit is the fixed width of the serialized challenge field.
const sigSplit = 64

// Signature is a Schnorr signature: the challenge h and the response
// z = (k - h*s) mod R.
type Signature struct {
	H *big.Int
	Z *big.Int
}

// Sign produces a Schnorr signature over m under passphrase pw:
//
//	s <- 4 * int(KMACXOF256(pw, "", 64, "K"))
//	k <- 4 * int(KMACXOF256(s, m, 64, "N"))
//	U <- k*G
//	h <- int(KMACXOF256(U.x, m, 64, "T")), z <- (k - h*s) mod r
func Sign(m, pw []byte) *Signature {
	s := new(big.Int).SetBytes(sha3.KMACXOF256(pw, nil, keyLen, []byte("K")))
	s.Mul(s, four)
	sb := math.SignedBytes(s)
	k := new(big.Int).SetBytes(sha3.KMACXOF256(sb, m, keyLen, []byte("N")))
	k.Mul(k, four)
	u := e521.Generator().ScalarMult(k)
	h := new(big.Int).SetBytes(sha3.KMACXOF256(math.SignedBytes(u.X()), m, TagLen, []byte("T")))
	z := new(big.Int).Sub(k, new(big.Int).Mul(h, s))
	z.Mod(z, e521.R)
	zeroBytes(sb)
	s.SetInt64(0)
	k.SetInt64(0)
	return &Signature{H: h, Z: z}
}

// Verify reports whether sig is a valid signature over m under pub:
//
//	U <- z*G + h*V, accept iff int(KMACXOF256(U.x, m, 64, "T")) == h
//
// The received challenge is compared as-is, without reduction.
func Verify(sig *Signature, m []byte, pub *PublicKey) bool {
	u := e521.Generator().ScalarMult(sig.Z).Add(pub.Point.ScalarMult(sig.H))
	h := new(big.Int).SetBytes(sha3.KMACXOF256(math.SignedBytes(u.X()), m, TagLen, []byte("T")))
	return h.Cmp(sig.H) == 0
}

// Marshal serializes the signature as a fixed 64-byte signed challenge field
// followed by the minimal signed encoding of the response.
func (sig *Signature) Marshal() []byte {
	return append(math.PaddedSignedBytes(sig.H, sigSplit), math.SignedBytes(sig.Z)...)
}

// UnmarshalSignature parses a signature produced by Marshal: bytes [0, 64)
// as the signed big-endian challenge, the remainder as the signed big-endian
// response.
func UnmarshalSignature(b []byte) (*Signature, error) {
	if len(b) <= sigSplit {
		return nil, ErrSignatureLength
	}
	return &Signature{
		H: math.ParseSigned(b[:sigSplit]),
		Z: math.ParseSigned(b[sigSplit:]),
	}, nil
}
