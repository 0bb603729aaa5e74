package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	rdf2go "github.com/deiu/rdf2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/reader"
	"github.com/c360studio/semshape/report"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary/rdfvoc"
	"github.com/c360studio/semshape/vocabulary/shacl"
	"github.com/c360studio/semshape/vocabulary/xsd"
)

func lit(v string) rdf2go.Term { return rdf2go.NewLiteral(v) }

func intLit(v string) rdf2go.Term {
	return rdf2go.NewLiteralWithDatatype(v, rdf2go.NewResource(xsd.Integer))
}

// personShapes builds a shapes graph: ex:PersonShape targets ex:Person and
// requires exactly one ex:name.
func personShapes() *graph.Store {
	var b builder
	ns := iri("ex:PersonShape")
	ps := iri("ex:PersonNameShape")
	b.add(ns, rdfvoc.Type, iri(shacl.NodeShape))
	b.add(ns, shacl.TargetClass, iri("ex:Person"))
	b.add(ns, shacl.Property, ps)
	b.add(ps, shacl.Path, iri("ex:name"))
	b.add(ps, shacl.MinCount, intLit("1"))
	b.add(ps, shacl.MaxCount, intLit("1"))
	return b.store()
}

func TestNoIntersectingTargetsConforms(t *testing.T) {
	var data builder
	data.add(iri("ex:rex"), rdfvoc.Type, iri("ex:Dog"))

	rep, err := New(Options{}).Validate(context.Background(), data.store(), personShapes())
	require.NoError(t, err)
	assert.True(t, rep.Conforms())
	assert.Zero(t, rep.Len())
	assert.False(t, rep.Truncated())
}

func TestCardinalityAcrossFocusNodes(t *testing.T) {
	var data builder
	data.add(iri("ex:alice"), rdfvoc.Type, iri("ex:Person"))
	data.add(iri("ex:alice"), "ex:name", lit("Alice"))
	data.add(iri("ex:bob"), rdfvoc.Type, iri("ex:Person"))
	data.add(iri("ex:carol"), rdfvoc.Type, iri("ex:Person"))
	data.add(iri("ex:carol"), "ex:name", lit("Carol"))
	data.add(iri("ex:carol"), "ex:name", lit("Caroline"))

	rep, err := New(Options{}).Validate(context.Background(), data.store(), personShapes())
	require.NoError(t, err)
	assert.False(t, rep.Conforms())

	violations := rep.Violations()
	require.Len(t, violations, 2)
	// Sorted by focus node: bob (too few) then carol (too many).
	assert.Equal(t, "ex:bob", violations[0].FocusNode.RawValue())
	assert.Equal(t, shacl.MinCountConstraintComponent, violations[0].Component)
	assert.Equal(t, "0", violations[0].Details["actual"])
	assert.Equal(t, "ex:carol", violations[1].FocusNode.RawValue())
	assert.Equal(t, shacl.MaxCountConstraintComponent, violations[1].Component)
	assert.Equal(t, "2", violations[1].Details["actual"])
}

func TestIdempotence(t *testing.T) {
	var data builder
	for i := 0; i < 20; i++ {
		person := iri(fmt.Sprintf("ex:p%02d", i))
		data.add(person, rdfvoc.Type, iri("ex:Person"))
		if i%2 == 0 {
			data.add(person, "ex:name", lit(fmt.Sprintf("Person %d", i)))
		}
	}

	e := New(Options{Parallelism: 8})
	first, err := e.Validate(context.Background(), data.store(), personShapes())
	require.NoError(t, err)
	second, err := e.Validate(context.Background(), data.store(), personShapes())
	require.NoError(t, err)

	require.Equal(t, first.Len(), second.Len())
	for i := range first.Results() {
		a, b := first.Results()[i], second.Results()[i]
		assert.Equal(t, graph.Key(a.FocusNode), graph.Key(b.FocusNode))
		assert.Equal(t, graph.Key(a.ShapeID), graph.Key(b.ShapeID))
		assert.Equal(t, a.Component, b.Component)
		assert.Equal(t, a.Message, b.Message)
	}
}

func TestAdversarialPatternInput(t *testing.T) {
	var shapes builder
	ps := iri("ex:CodeShape")
	shapes.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	shapes.add(ps, shacl.TargetSubjectsOf, iri("ex:code"))
	shapes.add(ps, shacl.Path, iri("ex:code"))
	shapes.add(ps, shacl.Pattern, lit("^(a+)+$"))

	var data builder
	data.add(iri("ex:thing"), "ex:code", lit(strings.Repeat("a", 100000)+"b"))

	start := time.Now()
	rep, err := New(Options{PatternTimeout: 100 * time.Millisecond}).
		Validate(context.Background(), data.store(), shapes.store())
	require.NoError(t, err)

	// Linear-time matching: the run must finish promptly, reporting the
	// mismatch rather than hanging.
	assert.Less(t, time.Since(start), 5*time.Second)
	require.Len(t, rep.Violations(), 1)
	assert.Equal(t, shacl.PatternConstraintComponent, rep.Violations()[0].Component)
}

func TestNumericBoundEndToEnd(t *testing.T) {
	var shapes builder
	ps := iri("ex:RegisterShape")
	shapes.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	shapes.add(ps, shacl.TargetSubjectsOf, iri("ex:value"))
	shapes.add(ps, shacl.Path, iri("ex:value"))
	shapes.add(ps, shacl.Datatype, iri(xsd.Integer))
	shapes.add(ps, shacl.MaxInclusive, intLit("255"))

	var data builder
	data.add(iri("ex:r1"), "ex:value", intLit("300"))
	data.add(iri("ex:r2"), "ex:value", intLit("100"))

	rep, err := New(Options{}).Validate(context.Background(), data.store(), shapes.store())
	require.NoError(t, err)

	violations := rep.Violations()
	require.Len(t, violations, 1)
	assert.Equal(t, "ex:r1", violations[0].FocusNode.RawValue())
	assert.Equal(t, "300", violations[0].Details["actual"])
	assert.Equal(t, "<= 255", violations[0].Details["expected"])
}

func TestFailFastTruncates(t *testing.T) {
	var data builder
	for i := 0; i < 50; i++ {
		data.add(iri(fmt.Sprintf("ex:p%02d", i)), rdfvoc.Type, iri("ex:Person"))
	}

	rep, err := New(Options{FailFast: true, Parallelism: 1}).
		Validate(context.Background(), data.store(), personShapes())
	require.NoError(t, err)

	assert.True(t, rep.Truncated())
	assert.False(t, rep.Conforms())
	assert.Less(t, rep.Len(), 50)
}

// Exercises the fail-fast path with many workers racing on the truncated
// flag; run under the race detector.
func TestFailFastParallel(t *testing.T) {
	var data builder
	for i := 0; i < 2000; i++ {
		data.add(iri(fmt.Sprintf("ex:p%04d", i)), rdfvoc.Type, iri("ex:Person"))
	}

	rep, err := New(Options{FailFast: true, Parallelism: 8}).
		Validate(context.Background(), data.store(), personShapes())
	require.NoError(t, err)

	assert.True(t, rep.Truncated())
	assert.False(t, rep.Conforms())
}

func TestDeadlineTruncates(t *testing.T) {
	var data builder
	for i := 0; i < 50; i++ {
		data.add(iri(fmt.Sprintf("ex:p%02d", i)), rdfvoc.Type, iri("ex:Person"))
	}

	rep, err := New(Options{Deadline: time.Nanosecond}).
		Validate(context.Background(), data.store(), personShapes())
	require.NoError(t, err)
	assert.True(t, rep.Truncated())
}

func TestParseErrorIsFatal(t *testing.T) {
	var data builder
	data.add(iri("ex:alice"), "ex:name", lit("Alice"))

	_, err := New(Options{}).Validate(context.Background(), data.store(), (&builder{}).store())
	require.Error(t, err)
	assert.ErrorIs(t, err, reader.ErrNoShapes)
}

func TestValidatorPanicBecomesInternalErrorResult(t *testing.T) {
	// A hand-built model with a nil compiled regexp makes the string
	// validator fail at runtime; the engine must convert that into a
	// result instead of crashing the run.
	broken := &shape.Shape{
		ID:   iri("ex:BrokenShape"),
		Kind: shape.NodeKind,
		Targets: []shape.Target{
			{Kind: shape.TargetNode, Term: iri("ex:alice")},
		},
		Properties: []*shape.Shape{
			{
				ID:   iri("ex:BrokenNameShape"),
				Kind: shape.PropertyKind,
				Path: iri("ex:name"),
				Constraints: shape.ConstraintSet{
					Pattern: &shape.Pattern{Source: "^x$", Regexp: nil},
				},
			},
		},
	}

	var data builder
	data.add(iri("ex:alice"), "ex:name", lit("Alice"))

	rep, err := New(Options{}).ValidateModel(context.Background(), data.store(), []*shape.Shape{broken})
	require.NoError(t, err)

	results := rep.BySeverity(shape.Warning)
	require.Len(t, results, 1)
	assert.Equal(t, report.InternalErrorComponent, results[0].Component)
	// An internal error flags a tooling defect, not a data violation.
	assert.True(t, rep.Conforms())
}

func TestModelReuseAcrossDataGraphs(t *testing.T) {
	e := New(Options{})
	model, err := e.Parse(personShapes())
	require.NoError(t, err)

	var good builder
	good.add(iri("ex:alice"), rdfvoc.Type, iri("ex:Person"))
	good.add(iri("ex:alice"), "ex:name", lit("Alice"))

	var bad builder
	bad.add(iri("ex:bob"), rdfvoc.Type, iri("ex:Person"))

	repGood, err := e.ValidateModel(context.Background(), good.store(), model)
	require.NoError(t, err)
	assert.True(t, repGood.Conforms())

	repBad, err := e.ValidateModel(context.Background(), bad.store(), model)
	require.NoError(t, err)
	assert.False(t, repBad.Conforms())
}
