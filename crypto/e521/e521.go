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

// Package e521 implements arithmetic on the Edwards curve E-521,
// x² + y² = 1 - 376014·x²·y² over GF(2^521 - 1). The curve has cofactor 4
// and a prime-order subgroup of order R generated by the point with x = 4
// and even y.
package e521

import (
	"errors"
	"math/big"

	"github.com/kittera/cryptosuite/common/math"
)

var (
	// ErrNotOnCurve is returned when coordinates fail the curve equation.
	ErrNotOnCurve = errors.New("e521: point not on curve")
	// ErrNoSuchPoint is returned when decompression finds no square root.
	ErrNoSuchPoint = errors.New("e521: no point with the given x coordinate")
	// ErrPointLength is returned for byte encodings of the wrong size.
	ErrPointLength = errors.New("e521: invalid point encoding length")
)

const (
	// coordLen is the byte length of the field prime, and the fixed width
	// of one serialized coordinate.
	coordLen = 66
	// PointLen is the length of a point serialized by Marshal.
	PointLen = 2 * coordLen
)

var (
	one  = big.NewInt(1)
	four = big.NewInt(4)

	// P is the field prime 2^521 - 1.
	P = new(big.Int).Sub(new(big.Int).Lsh(one, 521), one)
	// D is the Edwards curve coefficient.
	D = big.NewInt(-376014)
	// R is the order of the prime subgroup; the curve carries 4R points.
	R = subgroupOrder()

	// gen is the fixed generator, decompressed once at package init.
	gen = mustGenerator()
)

// subgroupOrder returns 2^519 - 337554763258501705789107630418782636071904961214051226618635150085779108655765.
func subgroupOrder() *big.Int {
	t, ok := new(big.Int).SetString(
		"337554763258501705789107630418782636071904961214051226618635150085779108655765", 10)
	if !ok {
		panic("e521: bad subgroup order constant")
	}
	return t.Sub(new(big.Int).Lsh(one, 519), t)
}

func mustGenerator() *Point {
	g, err := Decompress(four, false)
	if err != nil {
		panic("e521: generator does not decompress: " + err.Error())
	}
	return g
}

// Point is an immutable point on E-521. The zero value is not valid; use
// Identity, Generator, NewPoint or Decompress.
type Point struct {
	x, y *big.Int
}

// Identity returns the neutral element (0, 1).
func Identity() *Point {
	return &Point{x: new(big.Int), y: big.NewInt(1)}
}

// Generator returns the base point G, the point with x = 4 and even y.
func Generator() *Point { return gen }

// NewPoint constructs a point from affine coordinates, reducing them mod P
// and validating the curve equation.
func NewPoint(x, y *big.Int) (*Point, error) {
	p := &Point{
		x: new(big.Int).Mod(x, P),
		y: new(big.Int).Mod(y, P),
	}
	if !p.onCurve() {
		return nil, ErrNotOnCurve
	}
	return p, nil
}

// X returns a copy of the x coordinate.
func (p *Point) X() *big.Int { return new(big.Int).Set(p.x) }

// Y returns a copy of the y coordinate.
func (p *Point) Y() *big.Int { return new(big.Int).Set(p.y) }

// Equal reports whether p and q are the same point.
func (p *Point) Equal(q *Point) bool {
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// IsIdentity reports whether p is the neutral element.
func (p *Point) IsIdentity() bool {
	return p.x.Sign() == 0 && p.y.Cmp(one) == 0
}

func (p *Point) onCurve() bool {
	if p.IsIdentity() {
		return true
	}
	x2 := fmul(p.x, p.x)
	y2 := fmul(p.y, p.y)
	lhs := fadd(x2, y2)
	rhs := fadd(one, fmul(D, fmul(x2, y2)))
	return lhs.Cmp(rhs) == 0
}

// Field helpers. All values stay reduced mod P.

func fadd(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), P)
}

func fsub(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), P)
}

func fmul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), P)
}

func finv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, P)
}

// Add returns p + q using the complete Edwards addition law.
func (p *Point) Add(q *Point) *Point {
	x1x2 := fmul(p.x, q.x)
	y1y2 := fmul(p.y, q.y)
	t := fmul(D, fmul(x1x2, y1y2))
	x3 := fmul(fadd(fmul(p.x, q.y), fmul(p.y, q.x)), finv(fadd(one, t)))
	y3 := fmul(fsub(y1y2, x1x2), finv(fsub(one, t)))
	return &Point{x: x3, y: y3}
}

// Double returns 2p.
func (p *Point) Double() *Point { return p.Add(p) }

// Neg returns the inverse (-x, y) of p.
func (p *Point) Neg() *Point {
	return &Point{
		x: new(big.Int).Mod(new(big.Int).Neg(p.x), P),
		y: new(big.Int).Set(p.y),
	}
}

// ScalarMult returns k*p by most-significant-bit-first double-and-add.
// k = 0 yields the identity; a negative k multiplies the negated point.
func (p *Point) ScalarMult(k *big.Int) *Point {
	if k.Sign() < 0 {
		return p.Neg().ScalarMult(new(big.Int).Neg(k))
	}
	r := Identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if k.Bit(i) == 1 {
			r = r.Add(p)
		}
	}
	return r
}

// Decompress recovers the point with the given x coordinate whose y has the
// given least-significant bit. It returns ErrNoSuchPoint when x is not the
// abscissa of any curve point.
func Decompress(x *big.Int, lsb bool) (*Point, error) {
	xr := new(big.Int).Mod(x, P)
	x2 := fmul(xr, xr)
	y2 := fmul(fsub(one, x2), finv(fsub(one, fmul(D, x2))))
	y := sqrtModP(y2, lsb)
	if y == nil {
		return nil, ErrNoSuchPoint
	}
	return NewPoint(xr, y)
}

// sqrtModP returns the square root of v mod P with the requested
// least-significant bit, or nil when v is a non-residue. It relies on
// P ≡ 3 (mod 4): the candidate root is v^((P+1)/4), verified by squaring.
func sqrtModP(v *big.Int, lsb bool) *big.Int {
	v = new(big.Int).Mod(v, P)
	e := new(big.Int).Rsh(new(big.Int).Add(P, one), 2)
	r := new(big.Int).Exp(v, e, P)
	var want uint
	if lsb {
		want = 1
	}
	if r.Bit(0) != want {
		r.Sub(P, r)
	}
	if fmul(r, r).Cmp(v) != 0 {
		return nil
	}
	return r
}

// Marshal serializes p as two fixed-width signed big-endian coordinate
// fields, x then y, sign-extended to 66 bytes each.
func (p *Point) Marshal() []byte {
	out := make([]byte, 0, PointLen)
	out = append(out, math.PaddedSignedBytes(p.x, coordLen)...)
	return append(out, math.PaddedSignedBytes(p.y, coordLen)...)
}

// Unmarshal parses a point serialized by Marshal. Inputs of any other length
// are rejected with ErrPointLength; coordinates off the curve with
// ErrNotOnCurve.
func Unmarshal(b []byte) (*Point, error) {
	if len(b) != PointLen {
		return nil, ErrPointLength
	}
	return NewPoint(math.ParseSigned(b[:coordLen]), math.ParseSigned(b[coordLen:]))
}
