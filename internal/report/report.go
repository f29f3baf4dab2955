// Package report runs the matops pipeline: load two matrices, compute their
// sum, difference and product and both determinants, and render the results.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matops/internal/config"
	"github.com/katalvlaran/matops/matrix"
	"github.com/katalvlaran/matops/matrixio"
)

// ErrUsage is returned when the number of inputs is not two.
var ErrUsage = errors.New("report: exactly two matrix files are required")

// Result labels, in output order.
const (
	LabelSum        = "Sum"
	LabelDifference = "Difference"
	LabelProduct    = "Product"
	LabelDet1       = "Determinant of matrix 1"
	LabelDet2       = "Determinant of matrix 2"
)

// OpsError lists the operations that failed while the run continued.
type OpsError struct {
	Labels []string
	Errs   []error
}

func (e *OpsError) Error() string {
	return fmt.Sprintf("%d operation(s) failed: %s", len(e.Labels), strings.Join(e.Labels, ", "))
}

// Unwrap exposes every cause to errors.Is / errors.As.
func (e *OpsError) Unwrap() []error { return e.Errs }

// Runner executes one report. It holds no per-run state and can be reused.
type Runner struct {
	cfg    *config.Config
	out    io.Writer
	logger *log.Logger
	calc   *matrix.Calculator
}

// New builds a Runner writing results to out and diagnostics to logger.
// A nil cfg means config.DefaultConfig(); a nil logger discards diagnostics.
func New(cfg *config.Config, out io.Writer, logger *log.Logger) *Runner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var opts []matrix.Option
	if cfg.Determinant.MaxOrder > 0 {
		opts = append(opts, matrix.WithMaxOrder(cfg.Determinant.MaxOrder))
	}
	if cfg.Log.Verbose {
		opts = append(opts, matrix.WithObserver(logObserver{logger: logger}))
	}

	return &Runner{cfg: cfg, out: out, logger: logger, calc: matrix.NewCalculator(opts...)}
}

// operation is one line of the report: exactly one of mat or scalar is set.
type operation struct {
	label  string
	mat    func() (matrix.Matrix, error)
	scalar func() (float64, error)
}

// Run loads paths[0] and paths[1] and reports every operation in order.
//
// Errors:
//   - ErrUsage when len(paths) != 2 (nothing is loaded or computed).
//   - a *matrixio.LoadError when either input cannot be loaded.
//   - with stop_on_error, the first failing operation's error;
//     otherwise an *OpsError after all operations ran.
//   - ctx.Err() when the context ends between operations.
func (r *Runner) Run(ctx context.Context, paths []string) error {
	if len(paths) != 2 {
		return fmt.Errorf("%w (got %d)", ErrUsage, len(paths))
	}

	a, err := r.load(paths[0])
	if err != nil {
		return err
	}
	b, err := r.load(paths[1])
	if err != nil {
		return err
	}

	ops := []operation{
		{label: LabelSum, mat: func() (matrix.Matrix, error) { return r.calc.Add(a, b) }},
		{label: LabelDifference, mat: func() (matrix.Matrix, error) { return r.calc.Sub(a, b) }},
		{label: LabelProduct, mat: func() (matrix.Matrix, error) { return r.calc.Mul(a, b) }},
		{label: LabelDet1, scalar: func() (float64, error) { return r.calc.Determinant(a) }},
		{label: LabelDet2, scalar: func() (float64, error) { return r.calc.Determinant(b) }},
	}

	sink := r.newSink()
	var failed OpsError
	for _, op := range ops {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = r.runOne(op, sink); err != nil {
			r.logger.Printf("%s failed: %v", op.label, err)
			if r.cfg.StopOnError {
				return fmt.Errorf("%s: %w", op.label, err)
			}
			failed.Labels = append(failed.Labels, op.label)
			failed.Errs = append(failed.Errs, err)
			continue
		}
		r.logger.Printf("%s computed", op.label)
	}

	if err = sink.flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if len(failed.Labels) > 0 {
		return &failed
	}

	return nil
}

func (r *Runner) load(path string) (*matrix.Dense, error) {
	r.logger.Printf("Reading matrix from %s", path)
	m, err := matrixio.Load(path)
	if err != nil {
		return nil, err
	}
	r.logger.Printf("Loaded %s matrix from %s", m.Shape(), path)

	return m, nil
}

// runOne computes op and hands the outcome to sink. Only computation errors
// are returned; write errors are kept by the sink and surface on flush.
func (r *Runner) runOne(op operation, sink resultSink) error {
	if op.mat != nil {
		m, err := op.mat()
		if err != nil {
			sink.failure(op.label, err)
			return err
		}
		sink.matrix(op.label, m)
		return nil
	}

	v, err := op.scalar()
	if err != nil {
		sink.failure(op.label, err)
		return err
	}
	sink.scalar(op.label, v)

	return nil
}

// resultSink renders report lines in one output format.
type resultSink interface {
	matrix(label string, m matrix.Matrix)
	scalar(label string, v float64)
	failure(label string, err error)
	flush() error
}

func (r *Runner) newSink() resultSink {
	if r.cfg.Output.Format == config.FormatYAML {
		return &yamlSink{w: r.out}
	}

	return &textSink{w: r.out, prec: r.cfg.Precision()}
}

// textSink streams labeled, tab-separated lines as results arrive.
type textSink struct {
	w    io.Writer
	prec int
	err  error
}

func (s *textSink) matrix(label string, m matrix.Matrix) {
	if s.err == nil {
		s.err = matrixio.WriteMatrix(s.w, label, m, s.prec)
	}
}

func (s *textSink) scalar(label string, v float64) {
	if s.err == nil {
		s.err = matrixio.WriteScalar(s.w, label, v, s.prec)
	}
}

func (s *textSink) failure(label string, err error) {
	if s.err == nil {
		s.err = matrixio.WriteFailure(s.w, label, err)
	}
}

func (s *textSink) flush() error { return s.err }

// yamlResult is one entry of the YAML report.
type yamlResult struct {
	Label string      `yaml:"label"`
	Rows  [][]float64 `yaml:"rows,omitempty"`
	Value *float64    `yaml:"value,omitempty"`
	Error string      `yaml:"error,omitempty"`
}

// yamlSink buffers results and writes a single document on flush.
type yamlSink struct {
	w       io.Writer
	results []yamlResult
	err     error
}

func (s *yamlSink) matrix(label string, m matrix.Matrix) {
	rows, err := matrixio.Rows(m)
	if err != nil && s.err == nil {
		s.err = err
	}
	s.results = append(s.results, yamlResult{Label: label, Rows: rows})
}

func (s *yamlSink) scalar(label string, v float64) {
	s.results = append(s.results, yamlResult{Label: label, Value: &v})
}

func (s *yamlSink) failure(label string, err error) {
	s.results = append(s.results, yamlResult{Label: label, Error: err.Error()})
}

func (s *yamlSink) flush() error {
	if s.err != nil {
		return s.err
	}
	enc := yaml.NewEncoder(s.w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Results []yamlResult `yaml:"results"`
	}{s.results}); err != nil {
		return err
	}

	return enc.Close()
}
