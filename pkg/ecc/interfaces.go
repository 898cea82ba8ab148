package ecc

import "math/big"

// Curve is the group-operation interface shared by all supported curves.
// Points are affine coordinate pairs; the point at infinity is conveyed
// as the pair (nil, nil) on both input and output.
type Curve interface {
	// Name returns the lowercase SEC2 name of the curve.
	Name() string

	// Order returns the order n of the base point G.
	Order() *big.Int

	// ScalarBaseMult computes k * G.
	ScalarBaseMult(k *big.Int) (x, y *big.Int, err error)

	// ScalarMult computes k * P for P = (px, py).
	ScalarMult(px, py, k *big.Int) (x, y *big.Int, err error)

	// Add combines two points.
	Add(x1, y1, x2, y2 *big.Int) (x, y *big.Int, err error)
}
