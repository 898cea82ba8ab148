package ecp

import (
	"math/big"

	"github.com/pkg/errors"
)

// jacobian is the internal point format used for fast addition,
// doubling and multiplication: (X, Y, Z) stands for the affine point
// (X/Z^2, Y/Z^3), and Z = 0 for the point at infinity (GECC ex. 3.20).
type jacobian struct {
	X, Y, Z *big.Int
}

func newJacobian() *jacobian {
	return &jacobian{new(big.Int), new(big.Int), new(big.Int)}
}

// setZero sets j to the conventional Jacobian zero (1, 1, 0).
func (j *jacobian) setZero() {
	j.X.SetInt64(1)
	j.Y.SetInt64(1)
	j.Z.SetInt64(0)
}

func (j *jacobian) set(p *jacobian) {
	j.X.Set(p.X)
	j.Y.Set(p.Y)
	j.Z.Set(p.Z)
}

// affToJac converts an affine point to Jacobian coordinates.
func (g *Group) affToJac(j *jacobian, a *Point) {
	if a.IsZero() {
		j.setZero()
		return
	}
	j.X.Set(a.X)
	j.Y.Set(a.Y)
	j.Z.SetInt64(1)
}

// jacToAff converts back to affine coordinates: (X/Z^2, Y/Z^3) mod P.
func (g *Group) jacToAff(a *Point, j *jacobian) error {
	if j.Z.Sign() == 0 {
		a.SetZero()
		return nil
	}

	zi := new(big.Int).ModInverse(j.Z, g.P)
	if zi == nil {
		return errors.Wrap(ErrNotInvertible, "projecting to affine")
	}
	zzi := new(big.Int).Mul(zi, zi)
	if err := g.modP(zzi); err != nil {
		return err
	}

	x := new(big.Int).Mul(j.X, zzi)
	if err := g.modP(x); err != nil {
		return err
	}
	y := new(big.Int).Mul(j.Y, zzi)
	if err := g.modP(y); err != nil {
		return err
	}
	y.Mul(y, zi)
	if err := g.modP(y); err != nil {
		return err
	}

	a.inf = false
	a.X = x
	a.Y = y
	return nil
}

// doubleJac computes R = 2 P in Jacobian coordinates (GECC 3.21).
// R may alias P. Uses the a = -3 shortcut for the tangent slope:
// 3 (X - Z^2)(X + Z^2) instead of 3 X^2 + a Z^4.
func (g *Group) doubleJac(r, p *jacobian) error {
	if p.Z.Sign() == 0 {
		r.setZero()
		return nil
	}

	t1 := new(big.Int).Mul(p.Z, p.Z)
	if err := g.modP(t1); err != nil {
		return err
	}
	t2 := new(big.Int).Sub(p.X, t1)
	g.modSub(t2)
	t1.Add(p.X, t1)
	g.modAdd(t1)
	t2.Mul(t2, t1)
	if err := g.modP(t2); err != nil {
		return err
	}
	t2.Mul(t2, three)
	g.modAdd(t2)

	y := new(big.Int).Lsh(p.Y, 1)
	g.modAdd(y)
	z := new(big.Int).Mul(y, p.Z)
	if err := g.modP(z); err != nil {
		return err
	}
	y.Mul(y, y)
	if err := g.modP(y); err != nil {
		return err
	}
	t3 := new(big.Int).Mul(y, p.X)
	if err := g.modP(t3); err != nil {
		return err
	}
	y.Mul(y, y)
	if err := g.modP(y); err != nil {
		return err
	}

	// Y = Y / 2 mod p: make Y even first, then right-shift. No
	// reduction needed afterwards.
	if y.Bit(0) == 1 {
		y.Add(y, g.P)
	}
	y.Rsh(y, 1)

	x := new(big.Int).Mul(t2, t2)
	if err := g.modP(x); err != nil {
		return err
	}
	t1.Lsh(t3, 1)
	g.modAdd(t1)
	x.Sub(x, t1)
	g.modSub(x)
	t1.Sub(t3, x)
	g.modSub(t1)
	t1.Mul(t1, t2)
	if err := g.modP(t1); err != nil {
		return err
	}
	y.Sub(t1, y)
	g.modSub(y)

	r.X, r.Y, r.Z = x, y, z
	return nil
}

// addMixed computes R = P + Q in mixed affine-Jacobian coordinates
// (GECC 3.22). R may alias P. Keeping Q affine saves three field
// multiplications per addition; the scalar ladder always adds the
// fixed base point, which stays affine throughout.
func (g *Group) addMixed(r *jacobian, p *jacobian, q *Point) error {
	// Trivial cases: P == 0 or Q == 0.
	if p.Z.Sign() == 0 {
		g.affToJac(r, q)
		return nil
	}
	if q.IsZero() {
		r.set(p)
		return nil
	}

	t1 := new(big.Int).Mul(p.Z, p.Z)
	if err := g.modP(t1); err != nil {
		return err
	}
	t2 := new(big.Int).Mul(t1, p.Z)
	if err := g.modP(t2); err != nil {
		return err
	}
	t1.Mul(t1, q.X)
	if err := g.modP(t1); err != nil {
		return err
	}
	t2.Mul(t2, q.Y)
	if err := g.modP(t2); err != nil {
		return err
	}
	t1.Sub(t1, p.X)
	g.modSub(t1)
	t2.Sub(t2, p.Y)
	g.modSub(t2)

	if t1.Sign() == 0 {
		if t2.Sign() == 0 {
			// P == Q
			return g.doubleJac(r, p)
		}
		// P == -Q
		r.setZero()
		return nil
	}

	z := new(big.Int).Mul(p.Z, t1)
	if err := g.modP(z); err != nil {
		return err
	}
	t3 := new(big.Int).Mul(t1, t1)
	if err := g.modP(t3); err != nil {
		return err
	}
	t4 := new(big.Int).Mul(t3, t1)
	if err := g.modP(t4); err != nil {
		return err
	}
	t3.Mul(t3, p.X)
	if err := g.modP(t3); err != nil {
		return err
	}
	t1.Lsh(t3, 1)
	g.modAdd(t1)
	x := new(big.Int).Mul(t2, t2)
	if err := g.modP(x); err != nil {
		return err
	}
	x.Sub(x, t1)
	g.modSub(x)
	x.Sub(x, t4)
	g.modSub(x)
	t3.Sub(t3, x)
	g.modSub(t3)
	t3.Mul(t3, t2)
	if err := g.modP(t3); err != nil {
		return err
	}
	t4.Mul(t4, p.Y)
	if err := g.modP(t4); err != nil {
		return err
	}
	y := new(big.Int).Sub(t3, t4)
	g.modSub(y)

	r.X, r.Y, r.Z = x, y, z
	return nil
}

var three = big.NewInt(3)
