package core

import "errors"

// Fatal faults. These are raised with panic and must never be recovered by callers.
var (
	ErrNotImplemented = errors.New("not implemented")
	ErrUnreachable    = errors.New("unreachable dispatch branch")
)

// Driver errors, returned by the scenario layer.
var (
	ErrSameCapability    = errors.New("f_xor requires exactly one trait1 and one trait2 argument")
	ErrUnknownValue      = errors.New("unknown value")
	ErrCapabilityMissing = errors.New("value does not implement the requested capability")
	ErrInvalidScenario   = errors.New("invalid scenario")
	ErrMismatch          = errors.New("result does not match expectation")
)
