// Package patch implements the wiring protocol between a visual node editor
// and the signal expression graph.
//
// A [Graph] owns editor nodes of four categories: generators, combinators,
// constants and output sinks. Every node except the sink exposes one output
// port whose value is the node's shared [signal.Slot]; connecting that output
// to another node's input rebinds the matching slot of the consumer, keyed by
// the consumer's category and the symbolic input [Port]:
//
//	generator   amplitude, frequency, phase, duty (pulse only)
//	combinator  left, right
//	constant    no inputs
//	output      signal
//
// Ports are partitioned into an output range and an input range, so checking
// direction is a range comparison. A rejected connection leaves the existing
// wiring untouched. Removing a link never clears the slot it bound; the slot
// keeps its last assignment until something else is connected.
package patch
