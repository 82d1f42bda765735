package patch

import (
	"fmt"

	"github.com/cwbudde/algo-synthgraph/dsp/render"
	"github.com/cwbudde/algo-synthgraph/dsp/signal"
)

// Parameter is the editor view of one generator input.
type Parameter struct {
	Port Port
	// Value is the bound constant, or zero when the input is driven by
	// another expression.
	Value    float64
	Editable bool
}

// Evaluate samples the node's expression at x.
func (g *Graph) Evaluate(id NodeID, x float64) (float64, error) {
	expr, err := g.complete(id)
	if err != nil {
		return 0, err
	}
	return expr.Eval(x), nil
}

// complete returns the node's expression if it is fully wired.
func (g *Graph) complete(id NodeID) (signal.Node, error) {
	expr, err := g.Expression(id)
	if err != nil {
		return nil, err
	}
	if !expr.Valid() {
		return nil, fmt.Errorf("%w: node %d", ErrIncomplete, id)
	}
	return expr, nil
}

func (g *Graph) constant(id NodeID) (*signal.Constant, error) {
	n, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	if n.category != CategoryConstant {
		return nil, fmt.Errorf("%w: %s node %d", ErrNotConstant, n.typeName(), id)
	}
	return signal.AsConstant(n.expr())
}

// Value returns the value of a constant node.
func (g *Graph) Value(id NodeID) (float64, error) {
	c, err := g.constant(id)
	if err != nil {
		return 0, err
	}
	return c.Value(), nil
}

// SetValue changes a constant node in place; every consumer wired to it sees
// the new value on its next evaluation.
func (g *Graph) SetValue(id NodeID, v float64) error {
	c, err := g.constant(id)
	if err != nil {
		return err
	}
	c.Set(v)
	return nil
}

// Parameters lists the exposed inputs of a generator. Inputs bound to a
// constant are editable.
func (g *Graph) Parameters(id NodeID) ([]Parameter, error) {
	n, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	if n.category != CategoryGenerator {
		return nil, fmt.Errorf("%w: %s node %d has no parameters", ErrWrongCategory, n.category, id)
	}

	consts := signal.Constants(n.expr())
	ports := g.inputs(n)
	out := make([]Parameter, 0, len(ports))
	for _, port := range ports {
		p, _ := port.param()
		param := Parameter{Port: port}
		if c, ok := consts[p]; ok {
			param.Value = c.Value()
			param.Editable = true
		}
		out = append(out, param)
	}
	return out, nil
}

// SetParameter changes the constant bound to a generator input. If that
// constant belongs to a constant node the node's value changes too.
func (g *Graph) SetParameter(id NodeID, port Port, v float64) error {
	n, err := g.lookup(id)
	if err != nil {
		return err
	}
	if n.category != CategoryGenerator {
		return fmt.Errorf("%w: %s node %d has no parameters", ErrWrongCategory, n.category, id)
	}
	if !hasPort(g.inputs(n), port) {
		return fmt.Errorf("%w: %v on %s node %d", ErrPortUnavailable, port, n.typeName(), id)
	}

	p, _ := port.param()
	c, ok := signal.Constants(n.expr())[p]
	if !ok {
		return fmt.Errorf("%w: %v on node %d", ErrNotEditable, port, id)
	}
	c.Set(v)
	return nil
}

// Render samples the node's expression into dst at x = 0..len(dst)-1.
func (g *Graph) Render(id NodeID, dst []float64) error {
	expr, err := g.complete(id)
	if err != nil {
		return err
	}
	return g.renderer.Render(expr, dst)
}

// RenderOutput renders the full configured duration of an output sink.
func (g *Graph) RenderOutput(id NodeID) ([]float64, error) {
	n, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	if n.category != CategoryOutput {
		return nil, fmt.Errorf("%w: %s node %d is not an output", ErrWrongCategory, n.category, id)
	}
	expr, err := g.complete(id)
	if err != nil {
		return nil, err
	}
	return g.renderer.RenderAll(expr)
}

// Preview samples the node for display, see render.Renderer.Preview.
func (g *Graph) Preview(id NodeID, dst []float64, opts ...render.PreviewOption) ([]float64, error) {
	expr, err := g.complete(id)
	if err != nil {
		return dst, err
	}
	return g.renderer.Preview(expr, dst, opts...)
}
