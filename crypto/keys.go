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
	"io"
	"math/big"

	"github.com/kittera/cryptosuite/common/math"
	"github.com/kittera/cryptosuite/crypto/e521"
	"github.com/kittera/cryptosuite/crypto/sha3"
)

// PublicKey is a point V = s*G on E-521.
type PublicKey struct {
	Point *e521.Point
}

// PrivateKey is a passphrase-derived scalar together with its public point.
type PrivateKey struct {
	PublicKey
	s *big.Int
}

// DeriveKey derives a key pair from a passphrase:
//
//	s <- 4 * int(KMACXOF256(pw, "", 64, "K")), V <- s*G
//
// An empty passphrase is replaced by 64 bytes drawn from rnd (the process
// CSPRNG when rnd is nil), making the key unrecoverable by passphrase.
func DeriveKey(rnd io.Reader, pw []byte) (*PrivateKey, error) {
	if len(pw) == 0 {
		pw = make([]byte, keyLen)
		if _, err := io.ReadFull(reader(rnd), pw); err != nil {
			return nil, err
		}
	}
	s := new(big.Int).SetBytes(sha3.KMACXOF256(pw, nil, keyLen, []byte("K")))
	s.Mul(s, four)
	return &PrivateKey{
		PublicKey: PublicKey{Point: e521.Generator().ScalarMult(s)},
		s:         s,
	}, nil
}

// Scalar returns a copy of the private scalar.
func (k *PrivateKey) Scalar() *big.Int { return new(big.Int).Set(k.s) }

// Bytes returns the signed big-endian encoding of the private scalar.
func (k *PrivateKey) Bytes() []byte { return math.SignedBytes(k.s) }

// Marshal serializes the public point in the fixed 132-byte coordinate
// format.
func (pub *PublicKey) Marshal() []byte { return pub.Point.Marshal() }

// UnmarshalPublicKey parses a 132-byte public key encoding.
func UnmarshalPublicKey(b []byte) (*PublicKey, error) {
	p, err := e521.Unmarshal(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Point: p}, nil
}
