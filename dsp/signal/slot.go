package signal

import "fmt"

// Slot is a shared, rebindable reference to the node currently occupying a
// role. The *Slot pointer is the handle: copy it to share the role, call Set
// to swap the node behind it for every holder at once.
//
// The zero Slot is empty. Evaluating through an empty slot panics with an
// error wrapping ErrDanglingSlot; use Valid before sampling.
type Slot struct {
	node Node
}

// NewSlot returns a fresh handle referencing n. n may be nil, which yields an
// empty slot awaiting wiring.
func NewSlot(n Node) *Slot {
	return &Slot{node: n}
}

// Node returns the current target, or nil when the slot is empty.
func (s *Slot) Node() Node {
	if s == nil {
		return nil
	}
	return s.node
}

// Empty reports whether no node is bound.
func (s *Slot) Empty() bool {
	return s == nil || s.node == nil
}

// Set rebinds the slot. The change is visible through every copy of s.
func (s *Slot) Set(n Node) error {
	if s == nil {
		return ErrNilSlot
	}
	if n == nil {
		return ErrNilNode
	}
	s.node = n
	return nil
}

// Eval evaluates the current target at x.
func (s *Slot) Eval(x float64) float64 {
	if s.Empty() {
		panic(fmt.Errorf("eval at x=%v: %w", x, ErrDanglingSlot))
	}
	return s.node.Eval(x)
}

// Valid reports whether the slot is bound to a valid node.
func (s *Slot) Valid() bool {
	return !s.Empty() && s.node.Valid()
}

// Clone returns a new, independent handle wrapping a deep copy of the
// current target. Cloning an empty or nil slot yields a new empty slot.
func (s *Slot) Clone() *Slot {
	if s.Empty() {
		return &Slot{}
	}
	return &Slot{node: s.node.Clone()}
}
