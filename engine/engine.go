package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	rdf2go "github.com/deiu/rdf2go"
	"golang.org/x/sync/errgroup"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/reader"
	"github.com/c360studio/semshape/report"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/validator"
)

// Engine runs shape validation over data graphs. It holds no cross-run
// state; a single Engine is safe for concurrent use.
type Engine struct {
	opts Options
	log  *slog.Logger
}

// New creates an Engine, applying defaults to unset options.
func New(opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{opts: opts, log: opts.Logger}
}

// Parse turns a shapes graph into a reusable shape model. A model parsed
// once can validate many data graphs via ValidateModel.
func (e *Engine) Parse(shapes graph.Reader) ([]*shape.Shape, error) {
	r := reader.New(reader.Options{
		MaxPatternLength: e.opts.MaxPatternLength,
		PatternTimeout:   e.opts.PatternTimeout,
		MaxListDepth:     e.opts.MaxListDepth,
	}, e.log)
	return r.Parse(shapes)
}

// Validate parses the shapes graph and validates the data graph against it.
// A parse failure is fatal and returned immediately; constraint violations
// are never an error, they are the report's content.
func (e *Engine) Validate(ctx context.Context, data, shapes graph.Reader) (*report.Report, error) {
	model, err := e.Parse(shapes)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return e.ValidateModel(ctx, data, model)
}

// unit is one independent piece of validation work.
type unit struct {
	shape *shape.Shape
	focus rdf2go.Term
}

// ValidateModel validates the data graph against a pre-parsed shape model.
func (e *Engine) ValidateModel(ctx context.Context, data graph.Reader, model []*shape.Shape) (*report.Report, error) {
	runsTotal.Inc()
	start := time.Now()
	defer func() { runDuration.Observe(time.Since(start).Seconds()) }()

	if e.opts.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Deadline)
		defer cancel()
	}
	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	units := buildUnits(data, model)
	env := &validator.Env{SubclassClosure: e.opts.SubclassClosure}

	var (
		mu        sync.Mutex
		results   []report.Result
		truncated bool
	)

	var grp errgroup.Group
	grp.SetLimit(e.opts.Parallelism)

	for _, u := range units {
		if runCtx.Err() != nil {
			// In-flight workers still read truncated under mu.
			mu.Lock()
			truncated = true
			mu.Unlock()
			break
		}
		grp.Go(func() error {
			// The slot may have been acquired after cancellation; skip
			// rather than start late work.
			if runCtx.Err() != nil {
				mu.Lock()
				truncated = true
				mu.Unlock()
				return nil
			}

			unitsTotal.Inc()
			res := e.runUnit(data, u, env)

			mu.Lock()
			results = append(results, res...)
			if e.opts.FailFast && !truncated {
				for _, r := range res {
					if r.Severity == shape.Violation {
						truncated = true
						stop()
						break
					}
				}
			}
			mu.Unlock()
			return nil
		})
	}
	_ = grp.Wait()

	if err := ctx.Err(); err != nil && !truncated {
		truncated = true
	}

	for _, r := range results {
		resultsTotal.WithLabelValues(r.Severity.String()).Inc()
	}
	return report.New(results, truncated), nil
}

// runUnit validates one (shape, focus node) pair, converting a validator
// panic into a non-fatal internal-error result so one failing unit cannot
// abort its siblings.
func (e *Engine) runUnit(data graph.Reader, u unit, env *validator.Env) (res []report.Result) {
	defer func() {
		if r := recover(); r != nil {
			unitPanicsTotal.Inc()
			e.log.Error("validator failed",
				slog.String("shape", u.shape.Label()),
				slog.String("focus", u.focus.RawValue()),
				slog.Any("panic", r))
			res = []report.Result{{
				Severity:  shape.Warning,
				FocusNode: u.focus,
				ShapeID:   u.shape.ID,
				Path:      u.shape.Path,
				Component: report.InternalErrorComponent,
				Message:   fmt.Sprintf("validator failed: %v", r),
			}}
		}
	}()
	return validator.Validate(data, u.focus, u.shape, env)
}

// buildUnits forms the cross product of each shape's focus nodes with the
// shapes that apply to them: the node shape itself when it carries
// constraints, and each of its property shapes.
func buildUnits(data graph.Reader, model []*shape.Shape) []unit {
	var units []unit
	for _, s := range model {
		for _, focus := range Targets(s, data) {
			if !s.Constraints.Empty() {
				units = append(units, unit{shape: s, focus: focus})
			}
			for _, p := range s.Properties {
				units = append(units, unit{shape: p, focus: focus})
			}
		}
	}
	return units
}
