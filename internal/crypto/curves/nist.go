package curves

import (
	"math/big"

	"github.com/smallyu/go-ecp/internal/crypto/ecp"
	"github.com/smallyu/go-ecp/pkg/ecc"
)

// nistCurve adapts an ecp.Group to the ecc.Curve interface.
type nistCurve struct {
	id  ecp.CurveID
	grp *ecp.Group
}

func newNIST(id ecp.CurveID) (ecc.Curve, error) {
	grp, err := ecp.NewGroup(id)
	if err != nil {
		return nil, err
	}
	return &nistCurve{id: id, grp: grp}, nil
}

func (c *nistCurve) Name() string {
	return c.id.String()
}

func (c *nistCurve) Order() *big.Int {
	return new(big.Int).Set(c.grp.N)
}

func (c *nistCurve) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int, error) {
	return c.ScalarMult(c.grp.G.X, c.grp.G.Y, k)
}

func (c *nistCurve) ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int, error) {
	p := ecp.NewPoint()
	if px != nil && py != nil {
		p.SetXY(px, py)
	}

	r := ecp.NewPoint()
	if err := c.grp.Mul(r, k, p); err != nil {
		return nil, nil, err
	}
	if r.IsZero() {
		return nil, nil, nil
	}
	return r.X, r.Y, nil
}

func (c *nistCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int, error) {
	p, q := ecp.NewPoint(), ecp.NewPoint()
	if x1 != nil && y1 != nil {
		p.SetXY(x1, y1)
	}
	if x2 != nil && y2 != nil {
		q.SetXY(x2, y2)
	}

	r := ecp.NewPoint()
	if err := c.grp.Add(r, p, q); err != nil {
		return nil, nil, err
	}
	if r.IsZero() {
		return nil, nil, nil
	}
	return r.X, r.Y, nil
}
