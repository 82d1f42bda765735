package tone

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-synthgraph/dsp/render"
	"github.com/cwbudde/algo-synthgraph/dsp/signal"
	"github.com/cwbudde/algo-synthgraph/internal/testutil"
)

func TestAnalyzeSine(t *testing.T) {
	t.Parallel()

	const sampleRate = 48000.0

	x := testutil.DeterministicSine(440, sampleRate, 0.5, 0, 4800)

	res, err := Analyze(x, sampleRate)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if res.FFTSize != 8192 {
		t.Fatalf("FFTSize = %d, want 8192", res.FFTSize)
	}

	binHz := sampleRate / float64(res.FFTSize)
	if math.Abs(res.PeakFrequency-440) > binHz/2 {
		t.Fatalf("PeakFrequency = %v, want 440 within %v", res.PeakFrequency, binHz/2)
	}

	if math.Abs(res.PeakLevelDB-(-6.02)) > 1.5 {
		t.Fatalf("PeakLevelDB = %v, want about -6 dB", res.PeakLevelDB)
	}

	testutil.RequireNearlyEqual(t, res.RMS, 0.5/math.Sqrt2, 1e-3)
	testutil.RequireNearlyEqual(t, res.Peak, 0.5, 1e-3)
}

func TestAnalyzeRenderedPulse(t *testing.T) {
	t.Parallel()

	const sampleRate = 8000.0

	pulse := signal.NewPulse(signal.NewSignalDataWith(sampleRate, 0.5, 250, 0, 0.5))
	buf := make([]float64, 4096)

	if err := render.NewRenderer().Render(pulse, buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	res, err := Analyze(buf, sampleRate)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// A square wave's fundamental dominates its odd harmonics.
	if math.Abs(res.PeakFrequency-250) > sampleRate/float64(res.FFTSize) {
		t.Fatalf("PeakFrequency = %v, want 250", res.PeakFrequency)
	}

	testutil.RequireNearlyEqual(t, res.Peak, 0.5, 1e-12)
	testutil.RequireNearlyEqual(t, res.RMS, 0.5, 1e-12)
}

func TestAnalyzeSilence(t *testing.T) {
	t.Parallel()

	res, err := Analyze(make([]float64, 100), 44100)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if res.RMS != 0 || res.Peak != 0 {
		t.Fatalf("RMS/Peak = %v/%v, want 0", res.RMS, res.Peak)
	}

	if !math.IsInf(res.PeakLevelDB, -1) {
		t.Fatalf("PeakLevelDB = %v, want -Inf", res.PeakLevelDB)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	t.Parallel()

	if _, err := Analyze(nil, 44100); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("empty error = %v", err)
	}

	for _, sr := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Analyze([]float64{1}, sr); !errors.Is(err, ErrInvalidSampleRate) {
			t.Fatalf("sampleRate %v error = %v", sr, err)
		}
	}
}

func TestAnalyzeSingleSample(t *testing.T) {
	t.Parallel()

	res, err := Analyze([]float64{0.25}, 100)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if res.FFTSize != 2 || res.Peak != 0.25 {
		t.Fatalf("res = %+v", res)
	}
}
