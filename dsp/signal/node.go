package signal

import "fmt"

// Node is the polymorphic unit of the graph: it evaluates to a scalar for a
// given sample index.
type Node interface {
	// Eval returns the node value at sample index x.
	Eval(x float64) float64
	// Clone returns a deep, independent copy. Every owned slot is copied as a
	// new handle, so aliasing between nodes is not preserved.
	Clone() Node
	// Valid reports whether every slot reachable from the node is bound.
	Valid() bool
	// Kind reports the node variant.
	Kind() Kind
}

// Generator is a node driven by a SignalData parameter record.
type Generator interface {
	Node
	Params() *SignalData
}

// Combinator is a node with two child slots.
type Combinator interface {
	Node
	Left() *Slot
	Right() *Slot
	SetLeft(s *Slot) error
	SetRight(s *Slot) error
}

// IsComplex reports whether n is a two-child combinator.
func IsComplex(n Node) bool {
	_, ok := n.(Combinator)
	return ok
}

// AsCombinator returns n as a Combinator, or an error wrapping
// ErrNotCombinator.
func AsCombinator(n Node) (Combinator, error) {
	c, ok := n.(Combinator)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotCombinator, describe(n))
	}
	return c, nil
}

// AsGenerator returns n as a Generator, or an error wrapping ErrNotGenerator.
func AsGenerator(n Node) (Generator, error) {
	g, ok := n.(Generator)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotGenerator, describe(n))
	}
	return g, nil
}

// AsConstant returns n as a *Constant, or an error wrapping ErrNotConstant.
func AsConstant(n Node) (*Constant, error) {
	c, ok := n.(*Constant)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotConstant, describe(n))
	}
	return c, nil
}

// Children returns the slots owned by n: the five parameter slots of a
// generator, left and right of a combinator, nothing for a constant.
func Children(n Node) []*Slot {
	switch v := n.(type) {
	case Generator:
		return v.Params().Slots()
	case Combinator:
		return []*Slot{v.Left(), v.Right()}
	default:
		return nil
	}
}

// Reaches reports whether target is reachable from from by following child
// slots, including from == target. Shared sub-graphs are visited once.
func Reaches(from, target Node) bool {
	if from == nil || target == nil {
		return false
	}

	seen := make(map[Node]struct{})
	stack := []Node{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n == target {
			return true
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}

		for _, s := range Children(n) {
			if child := s.Node(); child != nil {
				stack = append(stack, child)
			}
		}
	}
	return false
}

// Constants returns the parameters of a generator whose slots currently
// reference a *Constant. These are the values an editor may change in place.
func Constants(n Node) map[Param]*Constant {
	g, ok := n.(Generator)
	if !ok {
		return nil
	}

	out := make(map[Param]*Constant)
	for _, p := range Params() {
		s, _ := g.Params().Slot(p)
		if c, ok := s.Node().(*Constant); ok {
			out[p] = c
		}
	}
	return out
}

func describe(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Kind().String()
}
