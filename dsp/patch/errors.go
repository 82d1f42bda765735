package patch

import "errors"

// Errors returned by graph operations.
var (
	ErrUnknownNode     = errors.New("patch: unknown node")
	ErrUnknownLink     = errors.New("patch: unknown link")
	ErrNotOutputPort   = errors.New("patch: source is not an output port")
	ErrNotInputPort    = errors.New("patch: destination is not an input port")
	ErrNoInputs        = errors.New("patch: constant nodes have no inputs")
	ErrNoOutput        = errors.New("patch: output nodes have no output port")
	ErrPortUnavailable = errors.New("patch: port not exposed by node")
	ErrCycle           = errors.New("patch: connection would create a cycle")
	ErrWrongCategory   = errors.New("patch: operation not supported for node category")
	ErrNotConstant     = errors.New("patch: node is not a constant")
	ErrNotEditable     = errors.New("patch: parameter is not bound to a constant")
	ErrIncomplete      = errors.New("patch: node is not fully wired")
	ErrTooManyNodes    = errors.New("patch: node id space exhausted")
)
