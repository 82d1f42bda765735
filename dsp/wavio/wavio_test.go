package wavio

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-synthgraph/internal/testutil"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{16, 24, 32} {
		t.Run(strconv.Itoa(bits), func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out.wav")
			in := testutil.DeterministicSine(440, 8000, 0.8, 0, 800)

			if err := WriteFile(path, in, 8000, bits); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			got, sr, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if sr != 8000 {
				t.Fatalf("sample rate = %d, want 8000", sr)
			}

			eps := 2 / fullScale(bits)
			testutil.RequireSliceNearlyEqual(t, got, in, eps)
		})
	}
}

func TestWriteClips(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := WriteFile(path, []float64{2, -2, 0}, 44100, 16); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, _, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, -1, 0}, 1e-4)
}

func TestWriteRejects(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := WriteFile(path, []float64{0}, 44100, 8); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Fatalf("bit depth error = %v", err)
	}
	if err := WriteFile(path, []float64{0}, 0, 16); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("sample rate error = %v", err)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "garbage.wav")
	if err := os.WriteFile(path, []byte("definitely not RIFF data"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadFile(path); !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("error = %v, want ErrInvalidFile", err)
	}
}
