// Package pipeline runs the wavelet export end to end: synthesize the signal,
// decompose it, align the bands into a table, write the CSV and print the
// diagnostics.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/signal"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
	"github.com/cwbudde/algo-wavelet/export"
	"github.com/cwbudde/algo-wavelet/report"
)

// Stage names used in logs and error wrapping.
const (
	StageGenerate  = "generate"
	StageDecompose = "decompose"
	StageBuild     = "build"
	StageWrite     = "write"
	StagePreview   = "preview"
	StageReport    = "report"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(p *Pipeline) {
		p.cfg = cfg
	}
}

// WithDecomposer sets the wavelet decomposition capability.
func WithDecomposer(d wavelet.Decomposer) Option {
	return func(p *Pipeline) {
		if d != nil {
			p.decomposer = d
		}
	}
}

// WithClock sets the source of the first timestamp.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithStdout sets the destination of the preview and report.
func WithStdout(w io.Writer) Option {
	return func(p *Pipeline) {
		if w != nil {
			p.stdout = w
		}
	}
}

// Pipeline is a configured, single-shot export run.
type Pipeline struct {
	cfg        Config
	decomposer wavelet.Decomposer
	now        func() time.Time
	log        *zap.Logger
	stdout     io.Writer
}

// New creates a pipeline with DefaultConfig, the symmetric-mode transform,
// the wall clock, a no-op logger and os.Stdout.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:        DefaultConfig(),
		decomposer: wavelet.NewTransform(),
		now:        time.Now,
		log:        zap.NewNop(),
		stdout:     os.Stdout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Config returns the run configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Result carries every intermediate product of a run.
type Result struct {
	Time   []float64
	Signal []float64
	Bands  [][]float64
	Table  *export.Table
	Report report.Report
}

// Run executes all stages in order. The context is checked between stages;
// the first failing stage aborts the run and its error is returned wrapped
// with the stage name.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	cfg := p.cfg
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	res := &Result{}
	stages := []struct {
		name string
		run  func() error
	}{
		{StageGenerate, func() error { return p.generate(res) }},
		{StageDecompose, func() error { return p.decompose(res) }},
		{StageBuild, func() error { return p.build(res) }},
		{StageWrite, func() error { return export.WriteFile(cfg.OutputPath, res.Table) }},
		{StagePreview, func() error { return p.preview(res) }},
		{StageReport, func() error { return p.report(res) }},
	}

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline %s: %w", s.name, err)
		}
		began := time.Now()
		if err := s.run(); err != nil {
			p.log.Error("stage failed", zap.String("stage", s.name), zap.Error(err))
			return nil, fmt.Errorf("pipeline %s: %w", s.name, err)
		}
		p.log.Info("stage done", append(p.stageFields(s.name, res), zap.Duration("elapsed", time.Since(began)))...)
	}
	return res, nil
}

func (p *Pipeline) generate(res *Result) error {
	g := signal.NewGenerator(
		core.WithSamples(p.cfg.Samples),
		core.WithInterval(p.cfg.Start, p.cfg.Stop),
	)
	t, x, err := g.Generate(signal.DefaultComponents()...)
	if err != nil {
		return err
	}
	res.Time, res.Signal = t, x
	return nil
}

func (p *Pipeline) decompose(res *Result) error {
	bands, err := p.decomposer.Decompose(res.Signal, p.cfg.Wavelet, p.cfg.Level)
	if err != nil {
		return err
	}
	res.Bands = bands
	return nil
}

func (p *Pipeline) build(res *Result) error {
	tbl, err := export.Build(p.now(), res.Signal, res.Bands, p.cfg.Level)
	if err != nil {
		return err
	}
	res.Table = tbl
	return nil
}

func (p *Pipeline) preview(res *Result) error {
	if _, err := fmt.Fprintln(p.stdout, "First few rows of the CSV:"); err != nil {
		return err
	}
	if err := export.Head(p.stdout, res.Table, p.cfg.PreviewRows); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.stdout, "\nTable info:"); err != nil {
		return err
	}
	return export.Info(p.stdout, res.Table)
}

func (p *Pipeline) report(res *Result) error {
	r, err := report.Analyze(res.Time, res.Table, p.cfg.Tones)
	if err != nil {
		return err
	}
	res.Report = r
	if _, err := fmt.Fprintln(p.stdout, "\nDiagnostics:"); err != nil {
		return err
	}
	return r.Write(p.stdout)
}

func (p *Pipeline) stageFields(stage string, res *Result) []zap.Field {
	fields := []zap.Field{zap.String("stage", stage)}
	switch stage {
	case StageGenerate:
		fields = append(fields, zap.Int("samples", len(res.Signal)))
	case StageDecompose:
		lens := make([]int, len(res.Bands))
		for i, b := range res.Bands {
			lens[i] = len(b)
		}
		fields = append(fields,
			zap.String("wavelet", p.cfg.Wavelet),
			zap.Int("level", p.cfg.Level),
			zap.Ints("bands", lens),
		)
	case StageBuild:
		fields = append(fields, zap.Int("rows", res.Table.Len()), zap.Strings("columns", res.Table.Header()))
	case StageWrite:
		fields = append(fields, zap.String("path", p.cfg.OutputPath))
	}
	return fields
}
