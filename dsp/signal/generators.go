package signal

import (
	"math"
	"math/rand/v2"
)

const twoPi = 2 * math.Pi

// noiseStream is the fixed PCG stream selector used by Noise.
const noiseStream = 0x9e3779b97f4a7c15

// oscillator carries the SignalData shared by all generators.
type oscillator struct {
	data *SignalData
}

func (o *oscillator) Params() *SignalData { return o.data }

func (o *oscillator) Valid() bool { return o.data.Valid() }

// theta is the instantaneous phase 2π·f(x)·x/T(x) + φ(x).
func (o *oscillator) theta(x float64) float64 {
	d := o.data
	return twoPi*d.Frequency.Eval(x)*x/d.TimeBase.Eval(x) + d.Phase.Eval(x)
}

// Sine evaluates A·sin(θ).
type Sine struct{ oscillator }

// NewSine returns a sine generator reading data.
func NewSine(data *SignalData) *Sine { return &Sine{oscillator{data: data}} }

func (s *Sine) Eval(x float64) float64 {
	return s.data.Amplitude.Eval(x) * math.Sin(s.theta(x))
}

func (s *Sine) Clone() Node { return NewSine(s.data.Clone()) }

func (s *Sine) Kind() Kind { return KindSine }

// Cosine evaluates A·cos(θ).
type Cosine struct{ oscillator }

// NewCosine returns a cosine generator reading data.
func NewCosine(data *SignalData) *Cosine { return &Cosine{oscillator{data: data}} }

func (c *Cosine) Eval(x float64) float64 {
	return c.data.Amplitude.Eval(x) * math.Cos(c.theta(x))
}

func (c *Cosine) Clone() Node { return NewCosine(c.data.Clone()) }

func (c *Cosine) Kind() Kind { return KindCosine }

// Triangle evaluates A·(2/π)·(|((θ + 3π/2) mod 2π) − π| − π/2).
type Triangle struct{ oscillator }

// NewTriangle returns a triangle generator reading data.
func NewTriangle(data *SignalData) *Triangle { return &Triangle{oscillator{data: data}} }

func (t *Triangle) Eval(x float64) float64 {
	amp := t.data.Amplitude.Eval(x)
	return amp * (2 / math.Pi) * (math.Abs(math.Mod(t.theta(x)+3*math.Pi/2, twoPi)-math.Pi) - math.Pi/2)
}

func (t *Triangle) Clone() Node { return NewTriangle(t.data.Clone()) }

func (t *Triangle) Kind() Kind { return KindTriangle }

// Sawtooth evaluates A·(1/π)·((θ + π) mod 2π − π).
type Sawtooth struct{ oscillator }

// NewSawtooth returns a sawtooth generator reading data.
func NewSawtooth(data *SignalData) *Sawtooth { return &Sawtooth{oscillator{data: data}} }

func (s *Sawtooth) Eval(x float64) float64 {
	amp := s.data.Amplitude.Eval(x)
	return amp * (1 / math.Pi) * (math.Mod(s.theta(x)+math.Pi, twoPi) - math.Pi)
}

func (s *Sawtooth) Clone() Node { return NewSawtooth(s.data.Clone()) }

func (s *Sawtooth) Kind() Kind { return KindSawtooth }

// Pulse returns +A while the normalized cycle position (θ mod 2π)/2π is at
// most the duty cycle and −A otherwise.
type Pulse struct{ oscillator }

// NewPulse returns a pulse generator reading data.
func NewPulse(data *SignalData) *Pulse { return &Pulse{oscillator{data: data}} }

func (p *Pulse) Eval(x float64) float64 {
	amp := p.data.Amplitude.Eval(x)
	r := math.Mod(p.theta(x), twoPi) / twoPi
	if r <= p.data.Duty.Eval(x) {
		return amp
	}
	return -amp
}

func (p *Pulse) Clone() Node { return NewPulse(p.data.Clone()) }

func (p *Pulse) Kind() Kind { return KindPulse }

// Noise draws a uniform value in [-1, 1) scaled by A. The source is re-seeded
// from x + φ(x) on every call, so the output is a deterministic function of
// the index and the phase rather than a running stream.
type Noise struct{ oscillator }

// NewNoise returns a noise generator reading data.
func NewNoise(data *SignalData) *Noise { return &Noise{oscillator{data: data}} }

func (n *Noise) Eval(x float64) float64 {
	seed := math.Float64bits(x + n.data.Phase.Eval(x))
	rng := rand.New(rand.NewPCG(seed, noiseStream))
	return n.data.Amplitude.Eval(x) * (rng.Float64()*2 - 1)
}

func (n *Noise) Clone() Node { return NewNoise(n.data.Clone()) }

func (n *Noise) Kind() Kind { return KindNoise }

// NewGenerator builds a generator of the given kind around data. Switching
// the kind of a live generator is done by passing its existing Params.
func NewGenerator(kind Kind, data *SignalData) (Generator, error) {
	if data == nil {
		return nil, ErrNilParams
	}

	switch kind {
	case KindSine:
		return NewSine(data), nil
	case KindCosine:
		return NewCosine(data), nil
	case KindTriangle:
		return NewTriangle(data), nil
	case KindSawtooth:
		return NewSawtooth(data), nil
	case KindPulse:
		return NewPulse(data), nil
	case KindNoise:
		return NewNoise(data), nil
	default:
		return nil, wrapKind(kind, "generator")
	}
}
