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

// Package crypto provides the high-level schemes of the suite: passphrase
// key derivation, KMACXOF256-based symmetric authenticated encryption,
// ECDHIES-style elliptic authenticated encryption over E-521, and Schnorr
// signatures. All randomized operations take an injected entropy source and
// fall back to crypto/rand when given nil.
package crypto

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"github.com/kittera/cryptosuite/crypto/sha3"
)

const (
	// SaltLen is the salt size used by symmetric encryption.
	SaltLen = 64
	// TagLen is the authenticator size used by every scheme.
	TagLen = 64
	// keyLen is the size of one derived mask or MAC key.
	keyLen = 64
)

// ErrAuth is returned when an authentication tag does not verify. No
// plaintext is ever released alongside it.
var ErrAuth = errors.New("crypto: authentication failed")

var four = big.NewInt(4)

// reader returns r, or the process CSPRNG when r is nil.
func reader(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}

// splitKey derives a (mask key, MAC key) pair from key material under the
// given customization string.
func splitKey(key []byte, custom string) (ke, ka []byte) {
	kk := sha3.KMACXOF256(key, nil, 2*keyLen, []byte(custom))
	return kk[:keyLen], kk[keyLen:]
}

// zeroBytes wipes secret key material.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Hash computes the plain 64-byte hash of m, KMACXOF256 under the empty key
// with customization string "D".
func Hash(m []byte) []byte {
	return sha3.KMACXOF256(nil, m, TagLen, []byte("D"))
}

// Tag computes a 64-byte authentication tag over m under passphrase pw,
// KMACXOF256 with customization string "T".
func Tag(pw, m []byte) []byte {
	return sha3.KMACXOF256(pw, m, TagLen, []byte("T"))
}
