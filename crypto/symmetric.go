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
	"errors"
	"io"

	"github.com/kittera/cryptosuite/common/bitutil"
	"github.com/kittera/cryptosuite/crypto/sha3"
)

// ErrCryptogramLength is returned when a serialized cryptogram has an
// impossible size.
var ErrCryptogramLength = errors.New("crypto: invalid cryptogram encoding length")

// SymmetricCryptogram is the result of passphrase encryption: a 64-byte
// salt, a ciphertext of the plaintext's length and a 64-byte authenticator.
type SymmetricCryptogram struct {
	Z []byte
	C []byte
	T []byte
}

// EncryptSymmetric encrypts m under passphrase pw:
//
//	z <- random 64 bytes
//	(ke || ka) <- KMACXOF256(z || pw, "", 128, "S")
//	c <- m XOR KMACXOF256(ke, "", |m|, "SKE")
//	t <- KMACXOF256(ka, m, 64, "SKA")
//
// rnd supplies the salt; nil selects the process CSPRNG.
func EncryptSymmetric(rnd io.Reader, m, pw []byte) (*SymmetricCryptogram, error) {
	z := make([]byte, SaltLen)
	if _, err := io.ReadFull(reader(rnd), z); err != nil {
		return nil, err
	}
	ke, ka := splitKey(append(append([]byte(nil), z...), pw...), "S")
	c := make([]byte, len(m))
	bitutil.XORBytes(c, m, sha3.KMACXOF256(ke, nil, len(m), []byte("SKE")))
	t := sha3.KMACXOF256(ka, m, TagLen, []byte("SKA"))
	zeroBytes(ke)
	zeroBytes(ka)
	return &SymmetricCryptogram{Z: z, C: c, T: t}, nil
}

// DecryptSymmetric reverses EncryptSymmetric. The tag is verified in
// constant time; on mismatch it returns ErrAuth and no plaintext.
func DecryptSymmetric(cg *SymmetricCryptogram, pw []byte) ([]byte, error) {
	ke, ka := splitKey(append(append([]byte(nil), cg.Z...), pw...), "S")
	m := make([]byte, len(cg.C))
	bitutil.XORBytes(m, cg.C, sha3.KMACXOF256(ke, nil, len(cg.C), []byte("SKE")))
	t := sha3.KMACXOF256(ka, m, TagLen, []byte("SKA"))
	ok := subtle.ConstantTimeCompare(t, cg.T) == 1
	zeroBytes(ke)
	zeroBytes(ka)
	if !ok {
		return nil, ErrAuth
	}
	return m, nil
}

// MarshalAux returns the salt-and-tag auxiliary encoding z || t. The
// ciphertext travels separately.
func (cg *SymmetricCryptogram) MarshalAux() []byte {
	out := make([]byte, 0, SaltLen+TagLen)
	out = append(out, cg.Z...)
	return append(out, cg.T...)
}

// UnmarshalAux parses a salt-and-tag encoding produced by MarshalAux and
// attaches the separately transported ciphertext.
func UnmarshalAux(aux, c []byte) (*SymmetricCryptogram, error) {
	if len(aux) != SaltLen+TagLen {
		return nil, ErrCryptogramLength
	}
	return &SymmetricCryptogram{
		Z: append([]byte(nil), aux[:SaltLen]...),
		C: c,
		T: append([]byte(nil), aux[SaltLen:]...),
	}, nil
}
