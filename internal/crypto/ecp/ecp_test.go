package ecp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 2*G on secp192r1, from the GEC2 test vectors.
const (
	p192TwoGx = "DAFEBF5828783F2AD35534631588A3F629A70FB16982A888"
	p192TwoGy = "DD6BDA0D993DA0FA46B27BBC141B868F59331AFA5C7E93AB"
)

func TestNewPointIsZero(t *testing.T) {
	p := NewPoint()
	assert.True(t, p.IsZero())
}

func TestPointSetCopies(t *testing.T) {
	p := NewPoint()
	p.SetXY(big.NewInt(3), big.NewInt(7))

	q := NewPoint()
	q.Set(p)

	// Mutating the source must not reach the copy.
	p.X.SetInt64(99)
	assert.Equal(t, int64(3), q.X.Int64())
	assert.Equal(t, int64(7), q.Y.Int64())
}

func TestPointReadString(t *testing.T) {
	p := NewPoint()
	err := p.ReadString(16, "1A", "2B")
	assert.NoError(t, err)
	assert.Equal(t, int64(0x1A), p.X.Int64())
	assert.Equal(t, int64(0x2B), p.Y.Int64())
	assert.False(t, p.IsZero())
}

func TestPointReadStringInvalid(t *testing.T) {
	p := NewPoint()
	err := p.ReadString(16, "not-hex", "2B")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewGroupUnknownCurve(t *testing.T) {
	_, err := NewGroup(CurveID(0))
	assert.ErrorIs(t, err, ErrUnknownCurve)
}

func TestNewGroupParams(t *testing.T) {
	grp, err := NewGroup(SECP256R1)
	assert.NoError(t, err)
	assert.Equal(t, 256, grp.P.BitLen())
	assert.Equal(t, 256, grp.N.BitLen())
	assert.False(t, grp.G.IsZero())
}

func TestMulTwoG(t *testing.T) {
	grp, err := NewGroup(SECP192R1)
	assert.NoError(t, err)

	r := NewPoint()
	err = grp.Mul(r, big.NewInt(2), &grp.G)
	assert.NoError(t, err)

	wantX, _ := new(big.Int).SetString(p192TwoGx, 16)
	wantY, _ := new(big.Int).SetString(p192TwoGy, 16)
	assert.Zero(t, r.X.Cmp(wantX))
	assert.Zero(t, r.Y.Cmp(wantY))
}

func TestMulZeroScalar(t *testing.T) {
	grp, err := NewGroup(SECP256R1)
	assert.NoError(t, err)

	r := NewPoint()
	err = grp.Mul(r, big.NewInt(0), &grp.G)
	assert.NoError(t, err)
	assert.True(t, r.IsZero())
}

func TestMulNegativeScalar(t *testing.T) {
	grp, err := NewGroup(SECP256R1)
	assert.NoError(t, err)

	r := NewPoint()
	err = grp.Mul(r, big.NewInt(-1), &grp.G)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMulOrderGivesInfinity(t *testing.T) {
	for _, id := range []CurveID{SECP192R1, SECP224R1, SECP256R1, SECP384R1, SECP521R1} {
		grp, err := NewGroup(id)
		assert.NoError(t, err)

		r := NewPoint()
		err = grp.Mul(r, grp.N, &grp.G)
		assert.NoError(t, err, id.String())
		assert.True(t, r.IsZero(), id.String())
	}
}

func TestMulResultOnCurve(t *testing.T) {
	grp, err := NewGroup(SECP384R1)
	assert.NoError(t, err)

	k, _ := new(big.Int).SetString("0123456789ABCDEF0123456789ABCDEF", 16)
	r := NewPoint()
	err = grp.Mul(r, k, &grp.G)
	assert.NoError(t, err)
	assert.True(t, onCurve(grp, r))

	// Coordinates come back fully reduced.
	assert.True(t, r.X.Sign() >= 0 && r.X.Cmp(grp.P) < 0)
	assert.True(t, r.Y.Sign() >= 0 && r.Y.Cmp(grp.P) < 0)
}

func TestAddInverseGivesInfinity(t *testing.T) {
	grp, err := NewGroup(SECP256R1)
	assert.NoError(t, err)

	neg := NewPoint()
	neg.SetXY(grp.G.X, new(big.Int).Sub(grp.P, grp.G.Y))

	r := NewPoint()
	err = grp.Add(r, &grp.G, neg)
	assert.NoError(t, err)
	assert.True(t, r.IsZero())
}

func TestAddIdentity(t *testing.T) {
	grp, err := NewGroup(SECP224R1)
	assert.NoError(t, err)

	zero := NewPoint()
	r := NewPoint()

	err = grp.Add(r, &grp.G, zero)
	assert.NoError(t, err)
	assert.Zero(t, r.X.Cmp(grp.G.X))
	assert.Zero(t, r.Y.Cmp(grp.G.Y))

	err = grp.Add(r, zero, &grp.G)
	assert.NoError(t, err)
	assert.Zero(t, r.X.Cmp(grp.G.X))
	assert.Zero(t, r.Y.Cmp(grp.G.Y))
}

func TestAddEqualsDouble(t *testing.T) {
	grp, err := NewGroup(SECP192R1)
	assert.NoError(t, err)

	sum := NewPoint()
	err = grp.Add(sum, &grp.G, &grp.G)
	assert.NoError(t, err)

	dbl := NewPoint()
	err = grp.Mul(dbl, big.NewInt(2), &grp.G)
	assert.NoError(t, err)

	assert.Zero(t, sum.X.Cmp(dbl.X))
	assert.Zero(t, sum.Y.Cmp(dbl.Y))
}

// onCurve checks y^2 == x^3 - 3x + b mod p.
func onCurve(g *Group, p *Point) bool {
	if p.IsZero() {
		return false
	}
	y2 := new(big.Int).Mul(p.Y, p.Y)
	y2.Mod(y2, g.P)

	x3 := new(big.Int).Mul(p.X, p.X)
	x3.Mul(x3, p.X)
	ax := new(big.Int).Lsh(p.X, 1)
	ax.Add(ax, p.X)
	x3.Sub(x3, ax)
	x3.Add(x3, g.B)
	x3.Mod(x3, g.P)

	return y2.Cmp(x3) == 0
}
