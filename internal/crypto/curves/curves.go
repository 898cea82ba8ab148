// Package curves exposes the supported named curves behind the
// ecc.Curve interface. The five NIST prime curves are served by the
// internal ecp engine; secp256k1 is delegated to the decred
// implementation.
package curves

import (
	"strings"

	"github.com/smallyu/go-ecp/internal/crypto/ecp"
	"github.com/smallyu/go-ecp/pkg/ecc"
)

// ByName resolves a curve by its SEC2 name, case-insensitively.
func ByName(name string) (ecc.Curve, error) {
	switch strings.ToLower(name) {
	case "secp192r1":
		return newNIST(ecp.SECP192R1)
	case "secp224r1":
		return newNIST(ecp.SECP224R1)
	case "secp256r1":
		return newNIST(ecp.SECP256R1)
	case "secp384r1":
		return newNIST(ecp.SECP384R1)
	case "secp521r1":
		return newNIST(ecp.SECP521R1)
	case "secp256k1":
		return NewSecp256k1(), nil
	}
	return nil, ecc.ErrUnknownCurve
}
