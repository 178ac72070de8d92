package wavelet

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestDWTHaar(t *testing.T) {
	w, err := Lookup("haar")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	cA, cD, err := DWT([]float64{1, 2, 3, 4}, w, ModeSymmetric)
	if err != nil {
		t.Fatalf("DWT() error = %v", err)
	}
	s := 1 / math.Sqrt2
	testutil.RequireSliceNearlyEqual(t, cA, []float64{3 * s, 7 * s}, 1e-15)
	testutil.RequireSliceNearlyEqual(t, cD, []float64{-s, -s}, 1e-15)
}

// db2 annihilates linear trends, so interior details of a ramp vanish and
// only the boundary coefficients depend on the extension mode.
func TestDWTDb2RampModes(t *testing.T) {
	w, err := Lookup("db2")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	interiorA := []float64{2.310789, 5.139216, 7.967643, 10.79607}
	tests := []struct {
		mode          Mode
		firstA, lastA float64
		firstD, lastD float64
	}{
		{ModeSymmetric, 1.767767, 13.788582, -0.612372, 0.612372},
		{ModeReflect, 3.087246, 13.693848, -0.965926, 0.258819},
		{ModeZero, -0.034675, 12.711829, -0.12941, -3.406124},
		{ModeConstant, 1.284804, 13.659173, -0.482963, 0.12941},
		{ModePeriodic, 12.677154, 12.677154, -3.535534, -3.535534},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			cA, cD, err := DWT(x, w, tt.mode)
			if err != nil {
				t.Fatalf("DWT() error = %v", err)
			}
			wantA := append(append([]float64{tt.firstA}, interiorA...), tt.lastA)
			wantD := []float64{tt.firstD, 0, 0, 0, 0, tt.lastD}
			testutil.RequireSliceNearlyEqual(t, cA, wantA, 1e-6)
			testutil.RequireSliceNearlyEqual(t, cD, wantD, 1e-6)
		})
	}
}

func TestCoeffLen(t *testing.T) {
	tests := []struct{ n, f, want int }{
		{1000, 8, 503}, {503, 8, 255}, {255, 8, 131}, {4, 2, 2}, {5, 2, 3}, {0, 8, 0},
	}
	for _, tt := range tests {
		if got := CoeffLen(tt.n, tt.f); got != tt.want {
			t.Fatalf("CoeffLen(%d, %d) = %d, want %d", tt.n, tt.f, got, tt.want)
		}
	}
}

func TestDWTIDWTRoundTrip(t *testing.T) {
	for _, name := range Names() {
		w, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup() error = %v", err)
		}
		for m := range modeNames {
			for _, n := range []int{10, 33, 64} {
				x := testutil.DeterministicNoise(int64(n), 1, n)
				cA, cD, err := DWT(x, w, m)
				if err != nil {
					t.Fatalf("DWT() error = %v", err)
				}
				y, err := IDWT(cA, cD, w)
				if err != nil {
					t.Fatalf("IDWT() error = %v", err)
				}
				if len(y) < n {
					t.Fatalf("%s/%v/%d: len = %d, want >= %d", name, m, n, len(y), n)
				}
				testutil.RequireSliceNearlyEqual(t, y[:n], x, 1e-12)
			}
		}
	}
}

func TestDWTErrors(t *testing.T) {
	w, _ := Lookup("db4")
	if _, _, err := DWT(nil, w, ModeSymmetric); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if _, _, err := DWT([]float64{1}, Wavelet{}, ModeSymmetric); !errors.Is(err, ErrUnknownWavelet) {
		t.Fatalf("err = %v, want ErrUnknownWavelet", err)
	}
	if _, err := IDWT([]float64{1, 2}, []float64{1}, w); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
	if _, err := IDWT([]float64{1}, []float64{1}, w); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch for too-short bands", err)
	}
}
