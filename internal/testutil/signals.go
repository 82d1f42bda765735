package testutil

import "math"

// Sample evaluates fn at x = 0..n-1.
func Sample(fn func(x float64) float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = fn(float64(i))
	}
	return out
}

// DeterministicSine generates amplitude·sin(2π·freq·i/sampleRate + phase),
// the closed form a sine generator with constant parameters must match.
func DeterministicSine(freqHz, sampleRate, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freqHz*float64(i)/sampleRate+phase)
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
