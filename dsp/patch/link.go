package patch

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-synthgraph/dsp/signal"
)

// LinkID identifies a link within a Graph.
type LinkID int

// Link records a connection from an output port to an input port.
type Link struct {
	ID       LinkID
	From     NodeID
	FromPort Port
	To       NodeID
	ToPort   Port
}

// Connect wires the output port of from into the input port of to and
// returns the link id. The consumer's slot for toPort is rebound to the
// producer's output handle, so later kind switches or value edits on the
// producer are seen by the consumer.
//
// Connecting the same ports twice returns the existing id. Connecting into an
// input that already has a link replaces that link. The carrier input of a
// frequency modulator only accepts generators; anything else fails with
// ErrPortUnavailable. On error the wiring is left unchanged.
func (g *Graph) Connect(from NodeID, fromPort Port, to NodeID, toPort Port) (LinkID, error) {
	if !fromPort.IsOutput() {
		return 0, fmt.Errorf("%w: %v", ErrNotOutputPort, fromPort)
	}
	if !toPort.IsInput() {
		return 0, fmt.Errorf("%w: %v", ErrNotInputPort, toPort)
	}

	src, err := g.lookup(from)
	if err != nil {
		return 0, err
	}
	dst, err := g.lookup(to)
	if err != nil {
		return 0, err
	}

	if src.category == CategoryOutput {
		return 0, fmt.Errorf("%w: node %d", ErrNoOutput, from)
	}
	if fromPort != PortOut {
		return 0, fmt.Errorf("%w: %v on node %d", ErrPortUnavailable, fromPort, from)
	}
	if dst.category == CategoryConstant {
		return 0, fmt.Errorf("%w: node %d", ErrNoInputs, to)
	}
	if !hasPort(g.inputs(dst), toPort) {
		return 0, fmt.Errorf("%w: %v on %s node %d", ErrPortUnavailable, toPort, dst.typeName(), to)
	}
	if toPort == PortLeft && dst.expr().Kind() == signal.KindFreqModulator && src.category != CategoryGenerator {
		return 0, fmt.Errorf("%w: fm carrier must be a generator, node %d is %s", ErrPortUnavailable, from, src.typeName())
	}
	if dst.category != CategoryOutput && signal.Reaches(src.expr(), dst.expr()) {
		return 0, fmt.Errorf("%w: %d -> %d", ErrCycle, from, to)
	}

	for _, l := range g.links {
		if l.From == from && l.FromPort == fromPort && l.To == to && l.ToPort == toPort {
			return l.ID, nil
		}
	}

	if err := g.bind(dst, toPort, src.slot); err != nil {
		return 0, err
	}

	for lid, l := range g.links {
		if l.To == to && l.ToPort == toPort {
			delete(g.links, lid)
		}
	}

	id := g.nextLink
	g.nextLink++
	g.links[id] = Link{ID: id, From: from, FromPort: fromPort, To: to, ToPort: toPort}
	return id, nil
}

// bind points the consumer's slot for port at the producer's handle.
func (g *Graph) bind(dst *node, port Port, s *signal.Slot) error {
	switch dst.category {
	case CategoryGenerator:
		p, _ := port.param()
		gen, err := signal.AsGenerator(dst.expr())
		if err != nil {
			return err
		}
		return gen.Params().Bind(p, s)
	case CategoryCombinator:
		c, err := signal.AsCombinator(dst.expr())
		if err != nil {
			return err
		}
		if port == PortLeft {
			return c.SetLeft(s)
		}
		return c.SetRight(s)
	case CategoryOutput:
		dst.slot = s
		return nil
	default:
		return fmt.Errorf("%w: node %d", ErrNoInputs, dst.id)
	}
}

// ConnectAttr is Connect for packed attribute ids as produced by Attr.
func (g *Graph) ConnectAttr(src, dst uint32) (LinkID, error) {
	from, fromPort := SplitAttr(src)
	to, toPort := SplitAttr(dst)
	return g.Connect(from, fromPort, to, toPort)
}

// Disconnect removes a link record. The consumer's slot keeps referencing
// the former producer until another link replaces it.
func (g *Graph) Disconnect(id LinkID) error {
	if _, ok := g.links[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownLink, id)
	}
	delete(g.links, id)
	return nil
}

// Links returns every link in id order.
func (g *Graph) Links() []Link {
	out := make([]Link, 0, len(g.links))
	for _, l := range g.links {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
