//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecp/internal/crypto/curves"
	"github.com/smallyu/go-ecp/pkg/ecc"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECP WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECP", map[string]interface{}{
		"ScalarBaseMult": js.FuncOf(ScalarBaseMult),
		"ScalarMult":     js.FuncOf(ScalarMult),
		"Add":            js.FuncOf(Add),
	})

	<-c
}

// PointDTO carries a point across the JS boundary. Coordinates are
// hex strings; big.Int as a JSON number would lose precision in JS.
// A null point stands for the point at infinity.
type PointDTO struct {
	X string `json:"x"`
	Y string `json:"y"`
}

func encodePoint(x, y *big.Int) interface{} {
	if x == nil || y == nil {
		return nil
	}
	b, _ := json.Marshal(PointDTO{X: x.Text(16), Y: y.Text(16)})
	return string(b)
}

func decodeCoord(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex coordinate %q", s)
	}
	return n, nil
}

func lookupCurve(name string) (ecc.Curve, error) {
	return curves.ByName(name)
}

// ScalarBaseMult computes k * G.
// Arguments:
// 0: curve name (string)
// 1: scalar k as hex (string)
// Returns:
// JSON point or null for infinity, or an error string
func ScalarBaseMult(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, k)"
	}

	curve, err := lookupCurve(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, err := decodeCoord(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	x, y, err := curve.ScalarBaseMult(k)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return encodePoint(x, y)
}

// ScalarMult computes k * P.
// Arguments:
// 0: curve name (string)
// 1: Px as hex (string)
// 2: Py as hex (string)
// 3: scalar k as hex (string)
// Returns:
// JSON point or null for infinity, or an error string
func ScalarMult(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (curve, px, py, k)"
	}

	curve, err := lookupCurve(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	coords := make([]*big.Int, 3)
	for i := 1; i <= 3; i++ {
		coords[i-1], err = decodeCoord(args[i].String())
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
	}

	x, y, err := curve.ScalarMult(coords[0], coords[1], coords[2])
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return encodePoint(x, y)
}

// Add computes P + Q.
// Arguments:
// 0: curve name (string)
// 1-4: Px, Py, Qx, Qy as hex (strings)
// Returns:
// JSON point or null for infinity, or an error string
func Add(this js.Value, args []js.Value) interface{} {
	if len(args) != 5 {
		return "error: expected 5 arguments (curve, px, py, qx, qy)"
	}

	curve, err := lookupCurve(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	coords := make([]*big.Int, 4)
	for i := 1; i <= 4; i++ {
		coords[i-1], err = decodeCoord(args[i].String())
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
	}

	x, y, err := curve.Add(coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return encodePoint(x, y)
}
