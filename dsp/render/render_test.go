package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-synthgraph/dsp/core"
	"github.com/cwbudde/algo-synthgraph/dsp/signal"
	"github.com/cwbudde/algo-synthgraph/internal/testutil"
)

func TestRenderMatchesClosedForm(t *testing.T) {
	t.Parallel()

	r := NewRenderer(core.WithSampleRate(8000))
	sine := signal.NewSine(signal.NewSignalDataWith(8000, 0.5, 440, 0, 0.5))

	got := make([]float64, 512)
	if err := r.Render(sine, got); err != nil {
		t.Fatalf("Render: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, testutil.DeterministicSine(440, 8000, 0.5, 0, 512), 1e-12)
}

func TestRenderRejectsInvalidGraph(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	dst := testutil.DC(7, 8)

	err := r.Render(signal.NewSum(signal.NewSlot(signal.NewConstant(1)), nil), dst)
	if !errors.Is(err, ErrInvalidGraph) {
		t.Fatalf("error = %v, want ErrInvalidGraph", err)
	}
	if diff := cmp.Diff(testutil.DC(7, 8), dst); diff != "" {
		t.Errorf("dst modified (-want +got):\n%s", diff)
	}

	if err := r.Render(nil, dst); !errors.Is(err, ErrNilNode) {
		t.Fatalf("error = %v, want ErrNilNode", err)
	}
}

func TestRenderAllLength(t *testing.T) {
	t.Parallel()

	r := NewRenderer(core.WithSampleRate(1000), core.WithDuration(0.25))
	out, err := r.RenderAll(signal.NewConstant(0.5))
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	if diff := cmp.Diff(testutil.DC(0.5, 250), out); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}

	buf := make([]float64, 0, 300)
	reused, err := r.RenderInto(buf, signal.NewConstant(1))
	if err != nil {
		t.Fatalf("RenderInto: %v", err)
	}
	if len(reused) != 250 || cap(reused) != 300 {
		t.Fatalf("len=%d cap=%d, want 250/300", len(reused), cap(reused))
	}
}

func fmPatch(rate float64) signal.Node {
	carrier := signal.NewSine(signal.NewSignalDataWith(rate, 0.5, 440, 0, 0.5))
	mod := signal.NewSine(signal.NewSignalDataWith(rate, 0.5, 3, 0, 0.5))
	return signal.NewFreqModulator(signal.NewSlot(carrier), signal.NewSlot(mod), rate)
}

func TestUnmodulatedFMTracksCarrier(t *testing.T) {
	t.Parallel()

	r := NewRenderer(core.WithSampleRate(8000), core.WithDuration(0.25))
	fm := signal.NewFreqModulator(
		signal.NewSlot(signal.NewSine(signal.NewSignalDataWith(8000, 0.5, 440, 0, 0.5))),
		signal.NewSlot(signal.NewConstant(0)),
		8000,
	)

	got, err := r.RenderAll(fm)
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}

	// The integrated phase accumulates rounding error; the closed form does not.
	d, err := testutil.MaxAbsDiff(got, testutil.DeterministicSine(440, 8000, 0.5, 0, len(got)))
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}
	if d > 1e-9 {
		t.Fatalf("max deviation from carrier = %g, want <= 1e-9", d)
	}
}

func TestStreamMatchesRenderAll(t *testing.T) {
	t.Parallel()

	r := NewRenderer(core.WithSampleRate(8000), core.WithDuration(0.1), core.WithBlockSize(96))

	want, err := r.RenderAll(fmPatch(8000))
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}

	var (
		got     []float64
		offsets []int
	)
	err = r.Stream(fmPatch(8000), len(want), func(offset int, block []float64) error {
		offsets = append(offsets, offset)
		got = append(got, block...)
		return nil
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
	if offsets[1] != 96 || len(offsets) != 9 {
		t.Fatalf("offsets = %v", offsets)
	}
}

func TestStreamStopsOnError(t *testing.T) {
	t.Parallel()

	r := NewRenderer(core.WithBlockSize(4))
	errStop := errors.New("stop")

	calls := 0
	err := r.Stream(signal.NewConstant(0), 100, func(int, []float64) error {
		calls++
		if calls == 2 {
			return errStop
		}
		return nil
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("error = %v, want errStop", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}

	if err := r.Stream(signal.NewConstant(0), 10, nil); !errors.Is(err, ErrNilCallback) {
		t.Fatalf("error = %v, want ErrNilCallback", err)
	}
}
