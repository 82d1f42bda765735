package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synthgraph/internal/testutil"
)

func TestSignalDataDefaults(t *testing.T) {
	t.Parallel()

	d := NewSignalData(44100)
	want := map[Param]float64{
		ParamAmplitude: 0.5,
		ParamFrequency: 440,
		ParamTimeBase:  44100,
		ParamPhase:     0,
		ParamDuty:      0.5,
	}
	for p, v := range want {
		s, err := d.Slot(p)
		if err != nil {
			t.Fatalf("Slot(%v): %v", p, err)
		}
		if got := s.Eval(123); got != v {
			t.Fatalf("%v = %v, want %v", p, got, v)
		}
	}
	if _, err := d.Slot(Param(42)); err == nil {
		t.Fatal("expected error for unknown param")
	}
}

func TestSineScenario(t *testing.T) {
	t.Parallel()

	s := NewSine(NewSignalData(44100))

	if got := s.Eval(0); got != 0 {
		t.Fatalf("Eval(0) = %v, want 0", got)
	}

	f, x, tb := 440.0, 11025.0, 44100.0
	want := 0.5 * math.Sin(2*math.Pi*f*x/tb)
	testutil.RequireNearlyEqual(t, s.Eval(x), want, 1e-12)
}

func TestSineMatchesClosedForm(t *testing.T) {
	t.Parallel()

	s := NewSine(NewSignalDataWith(48000, 0.8, 1000, 0.25, 0.5))
	got := testutil.Sample(s.Eval, 256)
	want := testutil.DeterministicSine(1000, 48000, 0.8, 0.25, 256)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestConstantAmplitudeExact(t *testing.T) {
	t.Parallel()

	s := NewSine(NewSignalData(44100))
	if err := s.Params().Bind(ParamAmplitude, NewSlot(NewConstant(0.3))); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	f, tb := 440.0, 44100.0
	for _, x := range []float64{0, 1, 17, 100, 11025, 44099} {
		want := 0.3 * math.Sin(2*math.Pi*f*x/tb)
		if got := s.Eval(x); got != want {
			t.Fatalf("Eval(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestPulseScenario(t *testing.T) {
	t.Parallel()

	p := NewPulse(NewSignalDataWith(100, 1, 1, 0, 0.5))

	for period := 0; period < 3; period++ {
		base := float64(period * 100)
		for x := 1; x < 50; x++ {
			if got := p.Eval(base + float64(x)); got != 1 {
				t.Fatalf("Eval(%v) = %v, want +1", base+float64(x), got)
			}
		}
		for x := 51; x < 100; x++ {
			if got := p.Eval(base + float64(x)); got != -1 {
				t.Fatalf("Eval(%v) = %v, want -1", base+float64(x), got)
			}
		}
	}
	// The duty boundary belongs to the high half: r <= duty.
	for x, want := range map[float64]float64{0: 1, 50: 1, 51: -1, 100: 1, 150: 1, 199: -1} {
		if got := p.Eval(x); got != want {
			t.Fatalf("Eval(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestPulseDuty(t *testing.T) {
	t.Parallel()

	d := NewSignalDataWith(100, 1, 1, 0, 0.25)
	p := NewPulse(d)
	if got := p.Eval(20); got != 1 {
		t.Fatalf("Eval(20) = %v, want +1", got)
	}
	if got := p.Eval(30); got != -1 {
		t.Fatalf("Eval(30) = %v, want -1", got)
	}
}

func TestTriangleAndSawtooth(t *testing.T) {
	t.Parallel()

	data := func() *SignalData { return NewSignalDataWith(4, 1, 1, 0, 0.5) }

	tri := NewTriangle(data())
	testutil.RequireSliceNearlyEqual(t, testutil.Sample(tri.Eval, 4), []float64{0, 1, 0, -1}, 1e-12)

	saw := NewSawtooth(data())
	testutil.RequireNearlyEqual(t, saw.Eval(0), 0, 1e-12)
	testutil.RequireNearlyEqual(t, saw.Eval(1), 0.5, 1e-12)
	testutil.RequireNearlyEqual(t, saw.Eval(3), -0.5, 1e-12)
}

func TestCosine(t *testing.T) {
	t.Parallel()

	c := NewCosine(NewSignalDataWith(4, 2, 1, 0, 0.5))
	testutil.RequireNearlyEqual(t, c.Eval(0), 2, 1e-12)
	testutil.RequireNearlyEqual(t, c.Eval(2), -2, 1e-12)
}

func TestNoiseDeterministicInIndexAndPhase(t *testing.T) {
	t.Parallel()

	n := NewNoise(NewSignalDataWith(44100, 0.7, 440, 0, 0.5))

	a := testutil.Sample(n.Eval, 64)
	b := testutil.Sample(n.Eval, 64)
	testutil.RequireSliceNearlyEqual(t, a, b, 0)

	distinct := false
	for i, v := range a {
		if v < -0.7 || v >= 0.7 {
			t.Fatalf("noise[%d] = %v outside [-0.7, 0.7)", i, v)
		}
		if i > 0 && v != a[0] {
			distinct = true
		}
	}
	if !distinct {
		t.Fatal("noise is constant across indices")
	}

	// Same x + phase sum gives the same draw.
	shifted := NewNoise(NewSignalDataWith(44100, 0.7, 440, 3, 0.5))
	if shifted.Eval(5) != n.Eval(8) {
		t.Fatal("noise must depend only on x + phase")
	}
}

func TestNewGeneratorKeepsParams(t *testing.T) {
	t.Parallel()

	d := NewSignalData(44100)
	for _, k := range GeneratorKinds() {
		g, err := NewGenerator(k, d)
		if err != nil {
			t.Fatalf("NewGenerator(%v): %v", k, err)
		}
		if g.Kind() != k {
			t.Fatalf("kind = %v, want %v", g.Kind(), k)
		}
		if g.Params() != d {
			t.Fatalf("%v does not share the given signal data", k)
		}
	}

	if _, err := NewGenerator(KindSum, d); err == nil {
		t.Fatal("expected error for combinator kind")
	}
	if _, err := NewGenerator(KindSine, nil); err == nil {
		t.Fatal("expected error for nil data")
	}
}

func TestGeneratorValidity(t *testing.T) {
	t.Parallel()

	s := NewSine(NewSignalData(44100))
	if !s.Valid() {
		t.Fatal("default sine must be valid")
	}

	s.Params().Phase = NewSlot(nil)
	if s.Valid() {
		t.Fatal("sine with empty phase slot must be invalid")
	}
}
