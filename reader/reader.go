package reader

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/shape"
)

// Defaults for the defensive parsing limits.
const (
	DefaultMaxPatternLength = 500
	DefaultPatternTimeout   = 100 * time.Millisecond
	DefaultMaxListDepth     = 100
)

// maxQualifiedDepth bounds nested qualified-value-shape recursion so that a
// cyclic shape reference degrades into a dropped constraint.
const maxQualifiedDepth = 32

// Options configures the reader's defensive limits. Zero values take the
// package defaults.
type Options struct {
	// MaxPatternLength rejects pattern constraints longer than this many bytes.
	MaxPatternLength int
	// PatternTimeout bounds the wall-clock time spent compiling one pattern.
	PatternTimeout time.Duration
	// MaxListDepth bounds traversal of sh:in value lists.
	MaxListDepth int
}

func (o Options) withDefaults() Options {
	if o.MaxPatternLength <= 0 {
		o.MaxPatternLength = DefaultMaxPatternLength
	}
	if o.PatternTimeout <= 0 {
		o.PatternTimeout = DefaultPatternTimeout
	}
	if o.MaxListDepth <= 0 {
		o.MaxListDepth = DefaultMaxListDepth
	}
	return o
}

// Reader parses shapes graphs into shape models.
type Reader struct {
	opts Options
	log  *slog.Logger

	// patterns memoizes compiled patterns for the model being parsed.
	patterns map[string]*shape.Pattern
}

// New creates a Reader. A nil logger falls back to slog.Default().
func New(opts Options, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{opts: opts.withDefaults(), log: logger}
}

// Parse extracts every shape from the shapes graph. Subjects typed as node
// shapes parse with their owned property shapes; subjects typed as property
// shapes but not owned by any node shape parse standalone. A graph yielding
// no shapes at all returns ErrNoShapes.
func (r *Reader) Parse(g graph.Reader) ([]*shape.Shape, error) {
	// Fresh memo per model: compiled patterns are scoped to one shapes-graph
	// identity and discarded with the model.
	r.patterns = make(map[string]*shape.Pattern)

	owned := make(map[string]bool)
	for _, t := range g.WithPredicate(termProperty) {
		owned[graph.Key(t.Object)] = true
	}

	var shapes []*shape.Shape
	for _, s := range g.Subjects(termType, termNodeShape) {
		shapes = append(shapes, r.parseNodeShape(g, s, 0))
	}
	for _, s := range g.Subjects(termType, termPropertyShape) {
		if owned[graph.Key(s)] {
			continue
		}
		if ps := r.parsePropertyShape(g, s, 0); ps != nil {
			shapes = append(shapes, ps)
		}
	}

	if len(shapes) == 0 {
		return nil, fmt.Errorf("parse shapes graph: %w", ErrNoShapes)
	}

	sort.Slice(shapes, func(i, j int) bool {
		return graph.Key(shapes[i].ID) < graph.Key(shapes[j].ID)
	})
	return shapes, nil
}

// parseNodeShape builds a node shape: targets, severity, message, its own
// constraints, and every owned property shape.
func (r *Reader) parseNodeShape(g graph.Reader, id rdf2go.Term, depth int) *shape.Shape {
	sh := &shape.Shape{ID: id, Kind: shape.NodeKind}
	sh.Targets = r.parseTargets(g, id)
	sh.Severity, sh.Message = r.parseSeverityMessage(g, id)
	sh.Constraints = r.parseConstraints(g, id, depth)

	for _, child := range g.Objects(id, termProperty) {
		if ps := r.parsePropertyShape(g, child, depth); ps != nil {
			sh.Properties = append(sh.Properties, ps)
		}
	}
	return sh
}

// parsePropertyShape builds a property shape. A missing or non-IRI path is a
// soft skip: the property shape is dropped with a warning and the caller
// continues.
func (r *Reader) parsePropertyShape(g graph.Reader, id rdf2go.Term, depth int) *shape.Shape {
	path := g.One(id, termPath)
	if path == nil {
		r.log.Warn("skipping property shape without sh:path",
			slog.String("shape", id.RawValue()))
		return nil
	}
	if _, ok := graph.AsIRI(path); !ok {
		r.log.Warn("skipping property shape with non-IRI sh:path",
			slog.String("shape", id.RawValue()),
			slog.String("path", path.String()))
		return nil
	}

	sh := &shape.Shape{ID: id, Kind: shape.PropertyKind, Path: path}
	sh.Targets = r.parseTargets(g, id)
	sh.Severity, sh.Message = r.parseSeverityMessage(g, id)
	sh.Constraints = r.parseConstraints(g, id, depth)
	return sh
}

// parseShapeAt parses the object of a qualified-value-shape reference: a
// subject with sh:path parses as a property shape, anything else as a node
// shape.
func (r *Reader) parseShapeAt(g graph.Reader, id rdf2go.Term, depth int) *shape.Shape {
	if g.One(id, termPath) != nil {
		return r.parsePropertyShape(g, id, depth)
	}
	return r.parseNodeShape(g, id, depth)
}

// parseTargets collects the shape's target declarations in a fixed
// per-kind order so models parse deterministically.
func (r *Reader) parseTargets(g graph.Reader, id rdf2go.Term) []shape.Target {
	kinds := []struct {
		pred rdf2go.Term
		kind shape.TargetKind
	}{
		{termTargetClass, shape.TargetClass},
		{termTargetNode, shape.TargetNode},
		{termTargetSubjectsOf, shape.TargetSubjectsOf},
		{termTargetObjectsOf, shape.TargetObjectsOf},
	}

	var targets []shape.Target
	for _, k := range kinds {
		for _, term := range g.Objects(id, k.pred) {
			targets = append(targets, shape.Target{Kind: k.kind, Term: term})
		}
	}
	return targets
}

func (r *Reader) parseSeverityMessage(g graph.Reader, id rdf2go.Term) (shape.Severity, string) {
	severity := shape.Violation
	if term := g.One(id, termSeverity); term != nil {
		if iri, ok := graph.AsIRI(term); ok {
			if sev, known := shape.ParseSeverity(iri.RawValue()); known {
				severity = sev
			} else {
				r.log.Warn("unknown sh:severity, defaulting to Violation",
					slog.String("shape", id.RawValue()),
					slog.String("severity", iri.RawValue()))
			}
		}
	}

	message := ""
	if term := g.One(id, termMessage); term != nil {
		if lit, ok := graph.AsLiteral(term); ok {
			message = lit.Value
		}
	}
	return severity, message
}
