package signal

import (
	"fmt"

	"github.com/cwbudde/algo-synthgraph/dsp/core"
)

// FreqModulator is a combinator whose left child (the carrier) must be a
// Generator and whose right child is the modulator.
//
// Each call integrates the carrier frequency scaled by (1 + modulator) one
// sample step forward:
//
//	acc += f(x) · (1 + m(x)) / sampleRate
//
// then evaluates the carrier at x = sampleRate with its frequency slot
// temporarily replaced by Constant(acc). Calls with x < 1 reset acc to zero.
//
// The integration is single-step and stateful. It is only meaningful for
// strictly increasing, unit-spaced indices; repeated or out-of-order indices
// yield values that drift from the continuous integral.
type FreqModulator struct {
	binary
	sampleRate float64
	acc        float64
}

// NewFreqModulator returns a modulator over carrier and modulator handles.
// A non-positive sampleRate falls back to the default processor rate.
func NewFreqModulator(carrier, modulator *Slot, sampleRate float64) *FreqModulator {
	if sampleRate <= 0 {
		sampleRate = core.DefaultProcessorConfig().SampleRate
	}
	return &FreqModulator{
		binary:     newBinary(carrier, modulator),
		sampleRate: sampleRate,
	}
}

// Eval advances the accumulator and evaluates the carrier. It panics when the
// carrier slot is empty or does not reference a Generator.
func (f *FreqModulator) Eval(x float64) float64 {
	if f.left.Empty() {
		panic(fmt.Errorf("frequency modulator carrier at x=%v: %w", x, ErrDanglingSlot))
	}
	carrier, err := AsGenerator(f.left.Node())
	if err != nil {
		panic(fmt.Errorf("frequency modulator carrier: %w", err))
	}
	data := carrier.Params()

	if x < 1 {
		f.acc = 0
	} else {
		f.acc += data.Frequency.Eval(x) * (1 + f.right.Eval(x)) / f.sampleRate
	}

	saved := data.Frequency
	data.Frequency = NewSlot(NewConstant(f.acc))
	defer func() { data.Frequency = saved }()

	return carrier.Eval(f.sampleRate)
}

// Valid additionally requires the carrier to be a Generator.
func (f *FreqModulator) Valid() bool {
	if !f.binary.Valid() {
		return false
	}
	_, ok := f.left.Node().(Generator)
	return ok
}

// Clone copies the children and the current accumulator.
func (f *FreqModulator) Clone() Node {
	return &FreqModulator{binary: f.clone(), sampleRate: f.sampleRate, acc: f.acc}
}

func (f *FreqModulator) Kind() Kind { return KindFreqModulator }

// Accumulator returns the integrated phase in cycles.
func (f *FreqModulator) Accumulator() float64 { return f.acc }

// SampleRate returns the integration rate.
func (f *FreqModulator) SampleRate() float64 { return f.sampleRate }

// Reset clears the accumulator, as an evaluation below index 1 would.
func (f *FreqModulator) Reset() { f.acc = 0 }
