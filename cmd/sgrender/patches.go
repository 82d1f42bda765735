package main

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-synthgraph/dsp/patch"
	"github.com/cwbudde/algo-synthgraph/dsp/signal"
)

// voice holds the user-facing knobs every preset reads.
type voice struct {
	kind signal.Kind
	freq float64
	amp  float64
}

type preset struct {
	name  string
	about string
	build func(g *patch.Graph, v voice) (patch.NodeID, error)
}

var presets = []preset{
	{"sine", "single generator (see -kind) into the output", buildTone},
	{"fm", "sine carrier modulated by sawtooth + pulse", buildFM},
	{"sum", "generator plus a fifth above", buildSum},
	{"pulse", "pulse wave at 25% duty", buildPulse},
	{"noise", "white noise", buildNoise},
}

func lookupPreset(name string) (preset, error) {
	for _, p := range presets {
		if p.name == name {
			return p, nil
		}
	}

	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	sort.Strings(names)

	return preset{}, fmt.Errorf("unknown preset %q (available: %v)", name, names)
}

// builder wires a patch step by step and keeps the first error.
type builder struct {
	g   *patch.Graph
	err error
}

func (b *builder) constant(v float64) patch.NodeID {
	if b.err != nil {
		return 0
	}
	var id patch.NodeID
	id, b.err = b.g.AddConstant(v)
	return id
}

func (b *builder) node(kind signal.Kind) patch.NodeID {
	if b.err != nil {
		return 0
	}
	var id patch.NodeID
	id, b.err = b.g.Add(kind)
	return id
}

func (b *builder) output() patch.NodeID {
	if b.err != nil {
		return 0
	}
	var id patch.NodeID
	id, b.err = b.g.AddOutput()
	return id
}

func (b *builder) connect(from, to patch.NodeID, port patch.Port) {
	if b.err != nil {
		return
	}
	_, b.err = b.g.Connect(from, patch.PortOut, to, port)
}

// generator adds a generator with constant amplitude and frequency inputs.
func (b *builder) generator(kind signal.Kind, amp, freq float64) patch.NodeID {
	id := b.node(kind)
	b.connect(b.constant(amp), id, patch.PortAmplitude)
	b.connect(b.constant(freq), id, patch.PortFrequency)
	return id
}

func (b *builder) sink(src patch.NodeID) (patch.NodeID, error) {
	out := b.output()
	b.connect(src, out, patch.PortSignal)
	return out, b.err
}

func buildTone(g *patch.Graph, v voice) (patch.NodeID, error) {
	b := &builder{g: g}
	return b.sink(b.generator(v.kind, v.amp, v.freq))
}

func buildFM(g *patch.Graph, v voice) (patch.NodeID, error) {
	b := &builder{g: g}

	carrier := b.generator(signal.KindSine, v.amp, v.freq)
	saw := b.generator(signal.KindSawtooth, 0.2, 120)
	pulse := b.generator(signal.KindPulse, 0.2, 220)

	mod := b.node(signal.KindSum)
	b.connect(saw, mod, patch.PortLeft)
	b.connect(pulse, mod, patch.PortRight)

	fm := b.node(signal.KindFreqModulator)
	b.connect(carrier, fm, patch.PortLeft)
	b.connect(mod, fm, patch.PortRight)

	return b.sink(fm)
}

func buildSum(g *patch.Graph, v voice) (patch.NodeID, error) {
	b := &builder{g: g}

	root := b.generator(v.kind, v.amp/2, v.freq)
	fifth := b.generator(v.kind, v.amp/2, v.freq*1.5)

	sum := b.node(signal.KindSum)
	b.connect(root, sum, patch.PortLeft)
	b.connect(fifth, sum, patch.PortRight)

	return b.sink(sum)
}

func buildPulse(g *patch.Graph, v voice) (patch.NodeID, error) {
	b := &builder{g: g}

	p := b.generator(signal.KindPulse, v.amp, v.freq)
	b.connect(b.constant(0.25), p, patch.PortDuty)

	return b.sink(p)
}

func buildNoise(g *patch.Graph, v voice) (patch.NodeID, error) {
	b := &builder{g: g}

	n := b.node(signal.KindNoise)
	b.connect(b.constant(v.amp), n, patch.PortAmplitude)

	return b.sink(n)
}
