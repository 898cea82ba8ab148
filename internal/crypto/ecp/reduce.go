package ecp

import "math/big"

// reduction selects the modular reduction strategy of a group. The
// set of supported curves is closed, so a tagged variant is used
// rather than a function field.
type reduction int

const (
	reduceGeneric reduction = iota
	reduceP521
)

// modP reduces n into [0, P) in place, to be used after a
// multiplication.
//
// The quasi-reduction path expects 0 <= n < 2^(2*pbits) and leaves a
// value of at most pbits+1 bits, possibly negative, that is brought
// into range by a few additions or subtractions of P.
func (g *Group) modP(n *big.Int) error {
	if g.reduce == reduceGeneric {
		n.Mod(n, g.P)
		return nil
	}

	if n.Sign() < 0 || n.BitLen() > 2*g.pbits {
		return ErrBadReduction
	}

	switch g.reduce {
	case reduceP521:
		modP521(n)
	}

	for n.Sign() < 0 {
		n.Add(n, g.P)
	}
	for n.Cmp(g.P) >= 0 {
		n.Sub(n, g.P)
	}
	return nil
}

// modSub reduces n into [0, P) in place after a subtraction.
func (g *Group) modSub(n *big.Int) {
	for n.Sign() < 0 {
		n.Add(n, g.P)
	}
}

// modAdd reduces n into [0, P) in place after an addition or a small
// integer multiplication.
func (g *Group) modAdd(n *big.Int) {
	for n.Cmp(g.P) >= 0 {
		n.Sub(n, g.P)
	}
}

// p521Low masks the low 521 bits of a value.
var p521Low = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 521), big.NewInt(1))

// modP521 is the fast quasi-reduction modulo p521 = 2^521 - 1
// (FIPS 186-3 D.2.5): split N = H * 2^521 + L and replace N by H + L.
//
// Requires 0 <= N < 2^(2*521) on entry; guarantees only
// 0 <= N < 2^(521+1) on exit.
func modP521(n *big.Int) {
	if n.BitLen() <= 521 {
		return
	}

	l := new(big.Int).And(n, p521Low)
	n.Rsh(n, 521)
	n.Add(n, l)
}
