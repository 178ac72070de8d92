package pipeline

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.OutputPath = filepath.Join(t.TempDir(), "wavelet_data.csv")
	return cfg
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Samples != 1000 || cfg.Start != 0 || cfg.Stop != 10 {
		t.Errorf("grid = %d over [%v, %v]", cfg.Samples, cfg.Start, cfg.Stop)
	}
	if cfg.Wavelet != "db4" || cfg.Level != 3 {
		t.Errorf("wavelet = %s level %d", cfg.Wavelet, cfg.Level)
	}
	if cfg.OutputPath != "wavelet_data.csv" {
		t.Errorf("output = %q", cfg.OutputPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero samples", func(c *Config) { c.Samples = 0 }},
		{"empty interval", func(c *Config) { c.Stop = c.Start }},
		{"negative level", func(c *Config) { c.Level = -1 }},
		{"no output", func(c *Config) { c.OutputPath = "" }},
		{"negative preview", func(c *Config) { c.PreviewRows = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	core, logs := observer.New(zapcore.InfoLevel)
	var stdout bytes.Buffer

	res, err := New(
		WithConfig(cfg),
		WithClock(fixedClock(start)),
		WithLogger(zap.New(core)),
		WithStdout(&stdout),
	).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Time) != 1000 || res.Time[0] != 0 || res.Time[999] != 10 {
		t.Fatalf("time axis = %d samples [%v, %v]", len(res.Time), res.Time[0], res.Time[len(res.Time)-1])
	}
	for i, want := range []int{131, 131, 255, 503} {
		if len(res.Bands[i]) != want {
			t.Errorf("band %d length = %d, want %d", i, len(res.Bands[i]), want)
		}
	}
	for i, ti := range res.Time {
		want := math.Sin(2*math.Pi*2*ti) + 0.5*math.Sin(2*math.Pi*10*ti) + 0.25*math.Sin(2*math.Pi*20*ti)
		if math.Abs(res.Signal[i]-want) > 1e-12 {
			t.Fatalf("signal[%d] = %v, want %v", i, res.Signal[i], want)
		}
	}

	rows := readCSV(t, cfg.OutputPath)
	if len(rows) != 1001 {
		t.Fatalf("csv rows = %d, want 1001", len(rows))
	}
	wantHeader := "timestamp,original_signal,approximation_L3,detail_L3,detail_L2,detail_L1"
	if got := strings.Join(rows[0], ","); got != wantHeader {
		t.Fatalf("header = %q", got)
	}
	if rows[1][0] != "2024-03-01 12:00:00.000000" || rows[1000][0] != "2024-03-01 12:00:00.999000" {
		t.Errorf("timestamps = %q .. %q", rows[1][0], rows[1000][0])
	}

	out := stdout.String()
	for _, want := range []string{"First few rows of the CSV:", "Table info:", "1000 entries", "Diagnostics:"} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q", want)
		}
	}

	done := logs.FilterMessage("stage done").All()
	if len(done) != 6 {
		t.Fatalf("stage logs = %d, want 6", len(done))
	}
	if got := done[1].ContextMap()["stage"]; got != StageDecompose {
		t.Errorf("second stage = %v", got)
	}
}

func TestRunDiffersOnlyInTimestamps(t *testing.T) {
	var files []string
	for i, start := range []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, 6, 15, 8, 30, 0, 0, time.Local),
	} {
		cfg := testConfig(t)
		cfg.OutputPath = filepath.Join(t.TempDir(), "run.csv")
		if _, err := New(WithConfig(cfg), WithClock(fixedClock(start)), WithStdout(&bytes.Buffer{})).Run(context.Background()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		files = append(files, cfg.OutputPath)
	}

	a, b := readCSV(t, files[0]), readCSV(t, files[1])
	if len(a) != len(b) {
		t.Fatalf("row counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if i > 0 && a[i][0] == b[i][0] {
			t.Fatalf("row %d: timestamps should differ", i)
		}
		if strings.Join(a[i][1:], ",") != strings.Join(b[i][1:], ",") {
			t.Fatalf("row %d differs outside the timestamp column", i)
		}
	}
}

func TestRunInjectedDecomposer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Samples = 8
	cfg.Level = 2
	cfg.Tones = 0

	var gotName string
	var gotLevel int
	fake := wavelet.DecomposerFunc(func(x []float64, name string, level int) ([][]float64, error) {
		gotName, gotLevel = name, level
		return [][]float64{{1}, {2}, {3, 4, 5}}, nil
	})

	res, err := New(WithConfig(cfg), WithDecomposer(fake), WithStdout(&bytes.Buffer{})).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gotName != "db4" || gotLevel != 2 {
		t.Fatalf("decomposer called with %q level %d", gotName, gotLevel)
	}

	col, err := res.Table.Column("detail_L1")
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, col.Values, []float64{3, 4, 5, math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()}, 0)

	rows := readCSV(t, cfg.OutputPath)
	if len(rows) != 9 || len(rows[0]) != 5 {
		t.Fatalf("csv shape = %d x %d", len(rows), len(rows[0]))
	}
	if rows[2][2] != "" {
		t.Errorf("approximation row 1 = %q, want empty", rows[2][2])
	}
}

func TestRunErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name   string
		modify func(*Config)
		opts   []Option
		want   error
		stage  string
	}{
		{
			name:   "unknown wavelet",
			modify: func(c *Config) { c.Wavelet = "nope" },
			want:   wavelet.ErrUnknownWavelet,
			stage:  StageDecompose,
		},
		{
			name:   "level too high",
			modify: func(c *Config) { c.Level = 9 },
			want:   wavelet.ErrLevelTooHigh,
			stage:  StageDecompose,
		},
		{
			name: "decomposer failure",
			opts: []Option{WithDecomposer(wavelet.DecomposerFunc(func([]float64, string, int) ([][]float64, error) {
				return nil, boom
			}))},
			want:  boom,
			stage: StageDecompose,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			if tt.modify != nil {
				tt.modify(&cfg)
			}
			opts := append([]Option{WithConfig(cfg), WithStdout(&bytes.Buffer{})}, tt.opts...)
			_, err := New(opts...).Run(context.Background())
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.stage) {
				t.Errorf("err %q does not name stage %q", err, tt.stage)
			}
			if _, statErr := os.Stat(cfg.OutputPath); !os.IsNotExist(statErr) {
				t.Error("no file should be written when decomposition fails")
			}
		})
	}
}

func TestRunWriteError(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputPath = filepath.Join(t.TempDir(), "missing", "out.csv")
	_, err := New(WithConfig(cfg), WithStdout(&bytes.Buffer{})).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), StageWrite) {
		t.Fatalf("err = %v, want write stage failure", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Samples = -5
	if _, err := New(WithConfig(cfg)).Run(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := testConfig(t)
	_, err := New(WithConfig(cfg), WithStdout(&bytes.Buffer{})).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestNewDefaults(t *testing.T) {
	p := New(nil, WithLogger(nil), WithDecomposer(nil), WithClock(nil), WithStdout(nil))
	if p.decomposer == nil || p.log == nil || p.now == nil || p.stdout == nil {
		t.Fatal("nil options must keep defaults")
	}
	if p.Config() != DefaultConfig() {
		t.Fatal("default config not applied")
	}
}
