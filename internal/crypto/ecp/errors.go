package ecp

import "errors"

// Common errors returned by the elliptic curve engine.
var (
	// ErrInvalidInput is returned when a string import receives
	// malformed coordinates or parameters.
	ErrInvalidInput = errors.New("ecp: invalid input")

	// ErrUnknownCurve is returned by NewGroup for an id outside the
	// supported set.
	ErrUnknownCurve = errors.New("ecp: unknown curve")

	// ErrBadReduction is returned when a fast quasi-reduction is fed
	// a negative value or one of more than 2*pbits bits.
	ErrBadReduction = errors.New("ecp: reduction argument out of range")

	// ErrNotInvertible is returned when a modular inverse does not
	// exist during projection to affine coordinates. It indicates a
	// corrupted group parameter.
	ErrNotInvertible = errors.New("ecp: value has no modular inverse")
)
