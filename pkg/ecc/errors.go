package ecc

import "errors"

// Common errors returned by the curve registry.
var (
	ErrUnknownCurve = errors.New("ecc: unknown curve")
)
