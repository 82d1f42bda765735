package signal

import "errors"

// Errors returned (or panicked with) by the expression graph.
var (
	ErrDanglingSlot  = errors.New("signal: evaluation through empty slot")
	ErrNilNode       = errors.New("signal: slot target must not be nil")
	ErrNilSlot       = errors.New("signal: slot must not be nil")
	ErrNilParams     = errors.New("signal: generator requires signal data")
	ErrNotCombinator = errors.New("signal: node is not a combinator")
	ErrNotGenerator  = errors.New("signal: node is not a generator")
	ErrNotConstant   = errors.New("signal: node is not a constant")
	ErrUnknownKind   = errors.New("signal: unknown node kind")
	ErrUnknownParam  = errors.New("signal: unknown parameter")
)
