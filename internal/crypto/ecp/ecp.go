// Package ecp implements arithmetic on the NIST short Weierstrass
// curves over GF(p): point addition and scalar multiplication in
// Jacobian coordinates, with curve specific fast reduction where one
// is defined.
//
// References:
//
//	SEC1  http://www.secg.org/
//	GECC  Guide to Elliptic Curve Cryptography - Hankerson, Menezes, Vanstone
//	FIPS 186-3  http://csrc.nist.gov/publications/fips/fips186-3/fips_186-3.pdf
package ecp

import (
	"math/big"

	"github.com/pkg/errors"
)

// Point is an affine curve point. NewPoint returns the point at
// infinity; the zero value of Point is not a valid point. A non-zero
// point satisfies Y^2 = X^3 - 3X + B (mod P) of
// its group whenever produced by this package. Inputs are trusted;
// membership validation is the caller's concern.
type Point struct {
	X, Y *big.Int

	inf bool
}

// NewPoint returns a new point set to the point at infinity.
func NewPoint() *Point {
	return &Point{inf: true}
}

// IsZero reports whether p is the point at infinity.
func (p *Point) IsZero() bool {
	return p.inf
}

// SetZero sets p to the point at infinity, releasing both coordinates.
func (p *Point) SetZero() {
	p.inf = true
	p.X = nil
	p.Y = nil
}

// Set copies q into p, reallocating the coordinate values.
func (p *Point) Set(q *Point) {
	if q.IsZero() {
		p.SetZero()
		return
	}
	p.inf = false
	p.X = new(big.Int).Set(q.X)
	p.Y = new(big.Int).Set(q.Y)
}

// SetXY sets p to the non-zero affine point (x, y), copying both values.
func (p *Point) SetXY(x, y *big.Int) {
	p.inf = false
	p.X = new(big.Int).Set(x)
	p.Y = new(big.Int).Set(y)
}

// ReadString imports a non-zero point from coordinate strings in the
// given radix.
func (p *Point) ReadString(radix int, x, y string) error {
	var ok bool
	p.inf = false
	if p.X, ok = new(big.Int).SetString(x, radix); !ok {
		return errors.Wrap(ErrInvalidInput, "x coordinate")
	}
	if p.Y, ok = new(big.Int).SetString(y, radix); !ok {
		return errors.Wrap(ErrInvalidInput, "y coordinate")
	}
	return nil
}

// Group holds the domain parameters of a curve: the field prime P, the
// constant B of the equation y^2 = x^3 - 3x + B, the base point G and
// its order N. A Group is read-only after construction and may be
// shared between goroutines.
type Group struct {
	P *big.Int
	B *big.Int
	G Point
	N *big.Int

	pbits  int
	reduce reduction
}

// ReadString imports the group parameters from strings in the given
// radix.
func (g *Group) ReadString(radix int, p, b, gx, gy, n string) error {
	var ok bool
	if g.P, ok = new(big.Int).SetString(p, radix); !ok {
		return errors.Wrap(ErrInvalidInput, "field prime")
	}
	if g.B, ok = new(big.Int).SetString(b, radix); !ok {
		return errors.Wrap(ErrInvalidInput, "curve constant")
	}
	if err := g.G.ReadString(radix, gx, gy); err != nil {
		return errors.Wrap(err, "base point")
	}
	if g.N, ok = new(big.Int).SetString(n, radix); !ok {
		return errors.Wrap(ErrInvalidInput, "group order")
	}
	g.pbits = g.P.BitLen()
	return nil
}

// Add computes R = P + Q.
func (g *Group) Add(r, p, q *Point) error {
	j := newJacobian()

	g.affToJac(j, p)
	if err := g.addMixed(j, j, q); err != nil {
		return err
	}
	return g.jacToAff(r, j)
}

// Mul computes R = k * P for a non-negative scalar k.
//
// The ladder performs one doubling and one mixed addition per scalar
// bit regardless of its value; the only bit dependent step is the
// final conditional copy. This gives a fixed pattern of point
// operations, not constant time at the integer level (math/big is not
// constant time).
func (g *Group) Mul(r *Point, k *big.Int, p *Point) error {
	if k.Sign() < 0 {
		return errors.Wrap(ErrInvalidInput, "negative scalar")
	}
	if k.Sign() == 0 {
		r.SetZero()
		return nil
	}

	q0, q1 := newJacobian(), newJacobian()
	q0.setZero()
	sel := [2]*jacobian{q0, q1}

	for pos := k.BitLen() - 1; ; pos-- {
		if err := g.doubleJac(q0, q0); err != nil {
			return err
		}
		if err := g.addMixed(q1, q0, p); err != nil {
			return err
		}
		q0.set(sel[k.Bit(pos)])

		if pos == 0 {
			break
		}
	}

	return g.jacToAff(r, q0)
}
