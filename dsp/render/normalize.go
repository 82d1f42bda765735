package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptyInput is returned by Normalize for an empty buffer.
var ErrEmptyInput = errors.New("render: input must not be empty")

// Peak returns the largest absolute sample value.
func Peak(data []float64) float64 {
	maxAbs := 0.0
	for _, v := range data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}
	return maxAbs
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("render: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(data))
	maxAbs := Peak(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
