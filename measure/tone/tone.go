// Package tone estimates the dominant partial and level of a rendered
// waveform. It is used to sanity-check graph renders: the frequency of a
// modulated carrier, the level after normalization, silence detection.
package tone

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synthgraph/dsp/core"
	"github.com/cwbudde/algo-synthgraph/dsp/window"
)

var (
	ErrEmptySignal       = errors.New("tone: empty signal")
	ErrInvalidSampleRate = errors.New("tone: sample rate must be positive and finite")
)

// Result holds the analysis of one buffer.
type Result struct {
	// PeakFrequency is the interpolated frequency of the strongest bin in Hz.
	PeakFrequency float64
	// PeakLevelDB is the amplitude of that partial in dBFS, corrected for the
	// window's coherent gain.
	PeakLevelDB float64
	RMS         float64
	Peak        float64
	FFTSize     int
}

// Analyze windows samples with a Hann window, zero-pads to the next power of
// two and locates the strongest spectral peak. Time-domain RMS and peak are
// computed on the raw samples.
func Analyze(samples []float64, sampleRate float64) (Result, error) {
	if len(samples) == 0 {
		return Result{}, ErrEmptySignal
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Result{}, ErrInvalidSampleRate
	}

	res := Result{}

	sum := 0.0
	for _, v := range samples {
		sum += v * v
		if a := math.Abs(v); a > res.Peak {
			res.Peak = a
		}
	}

	res.RMS = math.Sqrt(sum / float64(len(samples)))

	fftSize := max(nextPowerOf2(len(samples)), 2)
	res.FFTSize = fftSize

	windowed := make([]float64, len(samples))
	copy(windowed, samples)

	coeffs := window.Apply(window.TypeHann, windowed)

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, err
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, err
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	k := 0
	for i := 1; i < bins; i++ {
		if power[i] > power[k] {
			k = i
		}
	}

	binHz := sampleRate / float64(fftSize)
	res.PeakFrequency = (float64(k) + interpolate(power, k)) * binHz

	gain := window.Analyze(coeffs).CoherentGain * float64(len(coeffs))

	amp := 0.0
	if gain > 0 {
		amp = math.Sqrt(power[k]) / gain
		if k > 0 && k < bins-1 {
			amp *= 2
		}
	}

	res.PeakLevelDB = core.LinearToDB(amp)

	return res, nil
}

// interpolate fits a parabola through the log power of bins k-1, k, k+1 and
// returns the offset of its vertex in bins.
func interpolate(power []float64, k int) float64 {
	if k <= 0 || k >= len(power)-1 {
		return 0
	}

	a, b, c := power[k-1], power[k], power[k+1]
	if a <= 0 || b <= 0 || c <= 0 {
		return 0
	}

	a, b, c = math.Log(a), math.Log(b), math.Log(c)

	den := a - 2*b + c
	if den == 0 {
		return 0
	}

	return 0.5 * (a - c) / den
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
