package window

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synthgraph/internal/testutil"
)

func TestGenerateHann(t *testing.T) {
	t.Parallel()

	n := 9
	w := Generate(TypeHann, n)
	for i, v := range w {
		want := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		testutil.RequireNearlyEqual(t, v, want, 1e-12)
	}

	testutil.RequireNearlyEqual(t, w[0], 0, 1e-12)
	testutil.RequireNearlyEqual(t, w[4], 1, 1e-12)
}

func TestGenerateEdgeCases(t *testing.T) {
	t.Parallel()

	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
	if w := Generate(TypeBlackman, 1); len(w) != 1 || w[0] != 1 {
		t.Fatalf("Generate(1) = %v, want [1]", w)
	}
	for _, v := range Generate(Type(99), 8) {
		if v != 1 {
			t.Fatalf("unknown type coefficient = %v, want 1", v)
		}
	}
}

func TestGeneratePeriodic(t *testing.T) {
	t.Parallel()

	w := Generate(TypeHann, 4, WithPeriodic())
	testutil.RequireSliceNearlyEqual(t, w, []float64{0, 0.5, 1, 0.5}, 1e-12)
}

func TestApply(t *testing.T) {
	t.Parallel()

	buf := []float64{2, 2, 2, 2, 2}
	coeffs := Apply(TypeHann, buf)
	for i := range buf {
		testutil.RequireNearlyEqual(t, buf[i], 2*coeffs[i], 1e-12)
	}
	if Apply(TypeHann, nil) != nil {
		t.Fatal("Apply(nil) returned coefficients")
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ     Type
		gain    float64
		enbw    float64
		scallop float64
	}{
		{TypeRectangular, 1, 1, -3.92},
		{TypeHann, 0.5, 1.5, -1.42},
		{TypeHamming, 0.54, 1.36, -1.75},
		{TypeBlackman, 0.42, 1.73, -1.10},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			t.Parallel()

			a := Analyze(Generate(tt.typ, 4096, WithPeriodic()))
			testutil.RequireNearlyEqual(t, a.CoherentGain, tt.gain, 1e-3)
			testutil.RequireNearlyEqual(t, a.ENBW, tt.enbw, 0.01)
			testutil.RequireNearlyEqual(t, a.ScallopLossdB, tt.scallop, 0.02)
		})
	}

	if a := Analyze(nil); a != (Analysis{}) {
		t.Fatalf("Analyze(nil) = %+v", a)
	}
}
