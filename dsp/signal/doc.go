// Package signal implements a mutable, sample-evaluated signal expression
// graph.
//
// A graph is built from [Node] values: a [Constant], periodic generators
// ([Sine], [Cosine], [Triangle], [Sawtooth], [Pulse]), [Noise], and the
// binary combinators [Sum], [Product] and [FreqModulator]. Generators read
// their amplitude, frequency, time base, phase and duty cycle from a
// [SignalData] record whose fields are [Slot] handles, so every parameter is
// itself an expression.
//
// A *Slot is a shareable, rebindable reference. Every holder of the same
// *Slot observes [Slot.Set]; holders of independently constructed slots are
// never coupled, even when they start out pointing at the same node. This is
// what lets an editor route one node's output into several inputs and swap
// the node behind it live.
//
// Evaluation is single threaded. All nodes are pure functions of the sample
// index except [FreqModulator], which integrates its carrier frequency across
// successive calls and is only meaningful for strictly increasing, unit
// spaced indices starting below 1.
package signal
