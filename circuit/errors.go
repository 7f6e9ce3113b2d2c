package circuit

import "errors"

var (
	// ErrLookup reports a gate, channel or result name that no table knows.
	ErrLookup = errors.New("lookup error")

	// ErrInvariantViolation reports a shape mismatch between index lists and
	// the modifiers or parameters attached to them.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrNotImplemented reports a declared capability that is not supported.
	ErrNotImplemented = errors.New("not implemented")
)
