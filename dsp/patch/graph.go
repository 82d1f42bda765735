package patch

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-synthgraph/dsp/core"
	"github.com/cwbudde/algo-synthgraph/dsp/render"
	"github.com/cwbudde/algo-synthgraph/dsp/signal"
)

// NodeID identifies a node within a Graph. Ids start at 1 and fit in the low
// half of an attribute id.
type NodeID uint16

// Category is the editor-level class of a node.
type Category int

const (
	CategoryGenerator Category = iota
	CategoryCombinator
	CategoryConstant
	CategoryOutput
)

func (c Category) String() string {
	switch c {
	case CategoryGenerator:
		return "generator"
	case CategoryCombinator:
		return "combinator"
	case CategoryConstant:
		return "constant"
	case CategoryOutput:
		return "output"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// node is one editor node. For every category but the output sink, slot is
// the node's output handle and always bound. The sink's slot is its single
// upstream handle and stays nil until something is connected.
type node struct {
	id       NodeID
	category Category
	slot     *signal.Slot
}

func (n *node) expr() signal.Node {
	return n.slot.Node()
}

// typeName is the editor-facing type of the node.
func (n *node) typeName() string {
	if n.category == CategoryOutput {
		return "output"
	}
	return n.expr().Kind().String()
}

// Info describes a node for editors.
type Info struct {
	ID       NodeID
	Category Category
	Type     string
	Inputs   []Port
}

// Graph holds editor nodes and the links between them. It is not safe for
// concurrent use; mutations must not overlap a render of the same graph.
type Graph struct {
	cfg      core.ProcessorConfig
	renderer *render.Renderer
	nodes    map[NodeID]*node
	links    map[LinkID]Link
	nextNode NodeID
	nextLink LinkID
}

// New creates an empty graph. The sample rate fixes the time base of new
// generators and the integration rate of frequency modulators; the duration
// sizes output renders.
func New(opts ...core.ProcessorOption) *Graph {
	cfg := core.ApplyProcessorOptions(opts...)
	return &Graph{
		cfg:      cfg,
		renderer: render.NewRenderer(opts...),
		nodes:    make(map[NodeID]*node),
		links:    make(map[LinkID]Link),
		nextNode: 1,
		nextLink: 1,
	}
}

// Config returns the processor configuration of the graph.
func (g *Graph) Config() core.ProcessorConfig {
	return g.cfg
}

// Renderer returns the evaluation driver used for output renders.
func (g *Graph) Renderer() *render.Renderer {
	return g.renderer
}

func (g *Graph) add(category Category, slot *signal.Slot) (NodeID, error) {
	if g.nextNode == math.MaxUint16 {
		return 0, ErrTooManyNodes
	}
	id := g.nextNode
	g.nextNode++
	g.nodes[id] = &node{id: id, category: category, slot: slot}
	return id, nil
}

// AddGenerator creates a generator with default parameters.
func (g *Graph) AddGenerator(kind signal.Kind) (NodeID, error) {
	gen, err := signal.NewGenerator(kind, signal.NewSignalData(g.cfg.SampleRate))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrongCategory, err)
	}
	return g.add(CategoryGenerator, signal.NewSlot(gen))
}

// AddCombinator creates a combinator with both inputs unwired.
func (g *Graph) AddCombinator(kind signal.Kind) (NodeID, error) {
	c, err := signal.NewCombinator(kind, nil, nil, g.cfg.SampleRate)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrongCategory, err)
	}
	return g.add(CategoryCombinator, signal.NewSlot(c))
}

// AddConstant creates a constant node holding v.
func (g *Graph) AddConstant(v float64) (NodeID, error) {
	return g.add(CategoryConstant, signal.NewSlot(signal.NewConstant(v)))
}

// AddOutput creates an unconnected output sink.
func (g *Graph) AddOutput() (NodeID, error) {
	return g.add(CategoryOutput, nil)
}

// Add creates a node for any expression kind; constants start at zero.
func (g *Graph) Add(kind signal.Kind) (NodeID, error) {
	switch {
	case kind == signal.KindConstant:
		return g.AddConstant(0)
	case kind.IsGenerator():
		return g.AddGenerator(kind)
	case kind.IsCombinator():
		return g.AddCombinator(kind)
	default:
		return 0, fmt.Errorf("%w: %v", signal.ErrUnknownKind, kind)
	}
}

func (g *Graph) lookup(id NodeID) (*node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return n, nil
}

// Remove deletes a node and every link touching it. Consumers that were
// wired to the node keep referencing its output slot.
func (g *Graph) Remove(id NodeID) error {
	if _, err := g.lookup(id); err != nil {
		return err
	}
	for lid, l := range g.links {
		if l.From == id || l.To == id {
			delete(g.links, lid)
		}
	}
	delete(g.nodes, id)
	return nil
}

// SetKind switches a generator or combinator to another kind of the same
// category in place. Generators keep their SignalData and combinators keep
// their child slots, so existing wiring survives. Links into ports the new
// kind no longer exposes are dropped; the slots keep their values.
func (g *Graph) SetKind(id NodeID, kind signal.Kind) error {
	n, err := g.lookup(id)
	if err != nil {
		return err
	}

	var next signal.Node
	switch n.category {
	case CategoryGenerator:
		cur, _ := n.expr().(signal.Generator)
		next, err = signal.NewGenerator(kind, cur.Params())
	case CategoryCombinator:
		cur, _ := n.expr().(signal.Combinator)
		if kind == signal.KindFreqModulator && !cur.Left().Empty() {
			if _, ok := cur.Left().Node().(signal.Generator); !ok {
				return fmt.Errorf("%w: fm carrier of node %d is not a generator", ErrPortUnavailable, id)
			}
		}
		next, err = signal.NewCombinator(kind, cur.Left(), cur.Right(), g.cfg.SampleRate)
	default:
		return fmt.Errorf("%w: cannot change kind of %s node", ErrWrongCategory, n.category)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrongCategory, err)
	}

	if err := n.slot.Set(next); err != nil {
		return err
	}

	inputs := g.inputs(n)
	for lid, l := range g.links {
		if l.To == id && !hasPort(inputs, l.ToPort) {
			delete(g.links, lid)
		}
	}
	return nil
}

// inputs returns the input ports n currently exposes.
func (g *Graph) inputs(n *node) []Port {
	switch n.category {
	case CategoryGenerator:
		ports := []Port{PortAmplitude, PortFrequency, PortPhase}
		if n.expr().Kind() == signal.KindPulse {
			ports = append(ports, PortDuty)
		}
		return ports
	case CategoryCombinator:
		return []Port{PortLeft, PortRight}
	case CategoryOutput:
		return []Port{PortSignal}
	default:
		return nil
	}
}

func hasPort(ports []Port, p Port) bool {
	for _, q := range ports {
		if q == p {
			return true
		}
	}
	return false
}

// Inputs returns the input ports a node exposes.
func (g *Graph) Inputs(id NodeID) ([]Port, error) {
	n, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	return g.inputs(n), nil
}

func (g *Graph) info(n *node) Info {
	return Info{ID: n.id, Category: n.category, Type: n.typeName(), Inputs: g.inputs(n)}
}

// Node describes a node.
func (g *Graph) Node(id NodeID) (Info, error) {
	n, err := g.lookup(id)
	if err != nil {
		return Info{}, err
	}
	return g.info(n), nil
}

// Nodes describes every node in id order.
func (g *Graph) Nodes() []Info {
	out := make([]Info, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, g.info(n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Slot returns the node's shared output handle, or the sink's upstream
// handle (nil while unconnected).
func (g *Graph) Slot(id NodeID) (*signal.Slot, error) {
	n, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	return n.slot, nil
}

// Expression returns the expression currently behind a node, or
// ErrIncomplete for an unconnected sink.
func (g *Graph) Expression(id NodeID) (signal.Node, error) {
	n, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	if n.slot.Empty() {
		return nil, fmt.Errorf("%w: node %d has no upstream signal", ErrIncomplete, id)
	}
	return n.expr(), nil
}

// Valid reports whether the node's expression is fully wired.
func (g *Graph) Valid(id NodeID) bool {
	n, ok := g.nodes[id]
	return ok && n.slot.Valid()
}

// Clone adds a node of the same category holding a deep copy of id's
// expression. The copy shares no slots with the original.
func (g *Graph) Clone(id NodeID) (NodeID, error) {
	n, err := g.lookup(id)
	if err != nil {
		return 0, err
	}
	var slot *signal.Slot
	if n.slot != nil {
		slot = n.slot.Clone()
	}
	return g.add(n.category, slot)
}
