package curves

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecp/pkg/ecc"
)

// Secp256k1 exposes the decred secp256k1 implementation through the
// ecc.Curve interface. The Koblitz curve has a = 0 and is outside the
// ecp engine's a = -3 family.
type Secp256k1 struct{}

// NewSecp256k1 returns a new instance of the secp256k1 curve wrapper.
func NewSecp256k1() ecc.Curve {
	return &Secp256k1{}
}

func (c *Secp256k1) Name() string {
	return "secp256k1"
}

func (c *Secp256k1) Order() *big.Int {
	return secp256k1.S256().Params().N
}

func (c *Secp256k1) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int, error) {
	if k.Sign() == 0 {
		return nil, nil, nil
	}
	x, y := secp256k1.S256().ScalarBaseMult(k.Bytes())
	return infToNil(x, y)
}

func (c *Secp256k1) ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int, error) {
	if px == nil || py == nil || k.Sign() == 0 {
		return nil, nil, nil
	}
	x, y := secp256k1.S256().ScalarMult(px, py, k.Bytes())
	return infToNil(x, y)
}

func (c *Secp256k1) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int, error) {
	if x1 == nil || y1 == nil {
		return x2, y2, nil
	}
	if x2 == nil || y2 == nil {
		return x1, y1, nil
	}
	x, y := secp256k1.S256().Add(x1, y1, x2, y2)
	return infToNil(x, y)
}

// infToNil maps the (0, 0) encoding of the point at infinity used by
// crypto/elliptic style curves to the (nil, nil) convention of
// ecc.Curve.
func infToNil(x, y *big.Int) (*big.Int, *big.Int, error) {
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, nil, nil
	}
	return x, y, nil
}
