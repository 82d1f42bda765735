package window

import "math"

// Analysis holds the spectral properties of a window that level
// measurements need.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes gain, noise bandwidth and scallop loss of coeffs.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return Analysis{}
	}

	res := Analysis{
		CoherentGain: sum / float64(n),
		ENBW:         float64(n) * sumSq / (sum * sum),
	}

	// Half a bin off centre.
	dcRef := dftMagSq(coeffs, 0)
	half := dftMagSq(coeffs, 0.5/float64(n))
	if dcRef > 0 && half > 0 {
		res.ScallopLossdB = 10 * math.Log10(half/dcRef)
	}

	return res
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}
