package curves

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smallyu/go-ecp/pkg/ecc"
)

func TestByNameKnownCurves(t *testing.T) {
	for _, name := range []string{
		"secp192r1", "secp224r1", "secp256r1", "secp384r1", "secp521r1", "secp256k1",
	} {
		curve, err := ByName(name)
		assert.NoError(t, err, name)
		assert.Equal(t, name, curve.Name())
	}
}

func TestByNameCaseInsensitive(t *testing.T) {
	curve, err := ByName("SECP256R1")
	assert.NoError(t, err)
	assert.Equal(t, "secp256r1", curve.Name())
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("curve25519")
	assert.ErrorIs(t, err, ecc.ErrUnknownCurve)
}

func TestInfinityConvention(t *testing.T) {
	for _, name := range []string{"secp256r1", "secp256k1"} {
		curve, err := ByName(name)
		assert.NoError(t, err)

		// 0 * G is the point at infinity, reported as (nil, nil).
		x, y, err := curve.ScalarBaseMult(big.NewInt(0))
		assert.NoError(t, err, name)
		assert.Nil(t, x, name)
		assert.Nil(t, y, name)

		// n * G likewise.
		x, y, err = curve.ScalarBaseMult(curve.Order())
		assert.NoError(t, err, name)
		assert.Nil(t, x, name)
		assert.Nil(t, y, name)
	}
}

func TestAddWithInfinity(t *testing.T) {
	for _, name := range []string{"secp384r1", "secp256k1"} {
		curve, err := ByName(name)
		assert.NoError(t, err)

		gx, gy, err := curve.ScalarBaseMult(big.NewInt(1))
		assert.NoError(t, err, name)

		// G + 0 == G and 0 + G == G.
		x, y, err := curve.Add(gx, gy, nil, nil)
		assert.NoError(t, err, name)
		assert.Zero(t, x.Cmp(gx), name)
		assert.Zero(t, y.Cmp(gy), name)

		x, y, err = curve.Add(nil, nil, gx, gy)
		assert.NoError(t, err, name)
		assert.Zero(t, x.Cmp(gx), name)
		assert.Zero(t, y.Cmp(gy), name)
	}
}

func TestGroupLawAcrossImplementations(t *testing.T) {
	// 2G + 3G == 5G must hold on the engine-backed and the decred
	// curves alike.
	for _, name := range []string{"secp521r1", "secp256k1"} {
		curve, err := ByName(name)
		assert.NoError(t, err)

		x2, y2, err := curve.ScalarBaseMult(big.NewInt(2))
		assert.NoError(t, err, name)
		x3, y3, err := curve.ScalarBaseMult(big.NewInt(3))
		assert.NoError(t, err, name)
		x5, y5, err := curve.ScalarBaseMult(big.NewInt(5))
		assert.NoError(t, err, name)

		sx, sy, err := curve.Add(x2, y2, x3, y3)
		assert.NoError(t, err, name)
		assert.Zero(t, sx.Cmp(x5), name)
		assert.Zero(t, sy.Cmp(y5), name)
	}
}
