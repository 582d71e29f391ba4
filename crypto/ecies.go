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
	"crypto/subtle"
	"io"
	"math/big"

	"github.com/kittera/cryptosuite/common/bitutil"
	"github.com/kittera/cryptosuite/common/math"
	"github.com/kittera/cryptosuite/crypto/e521"
	"github.com/kittera/cryptosuite/crypto/sha3"
)

// EllipticCryptogram is the result of encryption under an E-521 public key:
// an ephemeral curve point, a ciphertext of the plaintext's length and a
// 64-byte authenticator.
type EllipticCryptogram struct {
	Z *e521.Point
	C []byte
	T []byte
}

// EncryptECIES encrypts m under the recipient's public key:
//
//	k <- 4 * int(random 64 bytes) mod p
//	W <- k*V, Z <- k*G
//	(ke || ka) <- KMACXOF256(W.x, "", 128, "P")
//	c <- m XOR KMACXOF256(ke, "", |m|, "PKE")
//	t <- KMACXOF256(ka, m, 64, "PKA")
//
// rnd supplies the ephemeral scalar; nil selects the process CSPRNG.
func EncryptECIES(rnd io.Reader, m []byte, pub *PublicKey) (*EllipticCryptogram, error) {
	kb := make([]byte, keyLen)
	if _, err := io.ReadFull(reader(rnd), kb); err != nil {
		return nil, err
	}
	k := new(big.Int).SetBytes(kb)
	k.Mul(k, four)
	k.Mod(k, e521.P)
	w := pub.Point.ScalarMult(k)
	z := e521.Generator().ScalarMult(k)
	ke, ka := splitKey(math.SignedBytes(w.X()), "P")
	c := make([]byte, len(m))
	bitutil.XORBytes(c, m, sha3.KMACXOF256(ke, nil, len(m), []byte("PKE")))
	t := sha3.KMACXOF256(ka, m, TagLen, []byte("PKA"))
	zeroBytes(ke)
	zeroBytes(ka)
	k.SetInt64(0)
	return &EllipticCryptogram{Z: z, C: c, T: t}, nil
}

// DecryptECIES reverses EncryptECIES using the recipient's passphrase. The
// recomputed scalar s = 4*int(KMACXOF256(pw, "", 64, "K")) is deliberately
// not reduced mod p, matching the key derivation it mirrors. The tag is
// verified in constant time; on mismatch it returns ErrAuth and no
// plaintext.
func DecryptECIES(cg *EllipticCryptogram, pw []byte) ([]byte, error) {
	s := new(big.Int).SetBytes(sha3.KMACXOF256(pw, nil, keyLen, []byte("K")))
	s.Mul(s, four)
	w := cg.Z.ScalarMult(s)
	s.SetInt64(0)
	ke, ka := splitKey(math.SignedBytes(w.X()), "P")
	m := make([]byte, len(cg.C))
	bitutil.XORBytes(m, cg.C, sha3.KMACXOF256(ke, nil, len(cg.C), []byte("PKE")))
	t := sha3.KMACXOF256(ka, m, TagLen, []byte("PKA"))
	ok := subtle.ConstantTimeCompare(t, cg.T) == 1
	zeroBytes(ke)
	zeroBytes(ka)
	if !ok {
		return nil, ErrAuth
	}
	return m, nil
}

// MarshalAux returns the point-and-tag auxiliary encoding Z_bytes || t. The
// ciphertext travels separately.
func (cg *EllipticCryptogram) MarshalAux() []byte {
	return append(cg.Z.Marshal(), cg.T...)
}

// UnmarshalEllipticAux parses a point-and-tag encoding produced by
// MarshalAux and attaches the separately transported ciphertext.
func UnmarshalEllipticAux(aux, c []byte) (*EllipticCryptogram, error) {
	if len(aux) < e521.PointLen+TagLen {
		return nil, ErrCryptogramLength
	}
	z, err := e521.Unmarshal(aux[:e521.PointLen])
	if err != nil {
		return nil, err
	}
	return &EllipticCryptogram{
		Z: z,
		C: c,
		T: append([]byte(nil), aux[e521.PointLen:]...),
	}, nil
}
