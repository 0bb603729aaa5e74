package reader

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	rdf2go "github.com/deiu/rdf2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary/rdfvoc"
	"github.com/c360studio/semshape/vocabulary/shacl"
	"github.com/c360studio/semshape/vocabulary/xsd"
)

// builder accumulates triples for a test graph.
type builder struct {
	triples []*rdf2go.Triple
}

func (b *builder) add(s rdf2go.Term, p string, o rdf2go.Term) *builder {
	b.triples = append(b.triples, rdf2go.NewTriple(s, rdf2go.NewResource(p), o))
	return b
}

func (b *builder) store() *graph.Store {
	return graph.FromTriples(b.triples)
}

// list adds an RDF collection of the given values and returns its head.
func (b *builder) list(prefix string, values ...rdf2go.Term) rdf2go.Term {
	if len(values) == 0 {
		return rdf2go.NewResource(rdfvoc.Nil)
	}
	cells := make([]rdf2go.Term, len(values))
	for i := range values {
		cells[i] = rdf2go.NewBlankNode(fmt.Sprintf("%s%d", prefix, i))
	}
	for i, v := range values {
		b.add(cells[i], rdfvoc.First, v)
		if i == len(values)-1 {
			b.add(cells[i], rdfvoc.Rest, rdf2go.NewResource(rdfvoc.Nil))
		} else {
			b.add(cells[i], rdfvoc.Rest, cells[i+1])
		}
	}
	return cells[0]
}

func iri(v string) rdf2go.Term { return rdf2go.NewResource(v) }

func intLit(v string) rdf2go.Term {
	return rdf2go.NewLiteralWithDatatype(v, rdf2go.NewResource(xsd.Integer))
}

func newTestReader(opts Options) *Reader {
	return New(opts, nil)
}

func TestParseEmptyGraphFails(t *testing.T) {
	var b builder
	b.add(iri("ex:alice"), "ex:name", rdf2go.NewLiteral("Alice"))

	_, err := newTestReader(Options{}).Parse(b.store())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoShapes)
}

func TestParseNodeShape(t *testing.T) {
	var b builder
	ns := iri("ex:PersonShape")
	ps := iri("ex:PersonNameShape")
	b.add(ns, rdfvoc.Type, iri(shacl.NodeShape))
	b.add(ns, shacl.TargetClass, iri("ex:Person"))
	b.add(ns, shacl.Property, ps)
	b.add(ps, shacl.Path, iri("ex:name"))
	b.add(ps, shacl.MinCount, intLit("1"))
	b.add(ps, shacl.MaxCount, intLit("1"))
	b.add(ps, shacl.Datatype, iri(xsd.String))
	b.add(ps, shacl.Pattern, rdf2go.NewLiteral("^[A-Z][a-zA-Z0-9_]*$"))
	b.add(ps, shacl.MinLength, intLit("2"))
	b.add(ps, shacl.SeverityProp, iri(shacl.Warning))
	b.add(ps, shacl.Message, rdf2go.NewLiteral("name must be capitalised"))

	shapes, err := newTestReader(Options{}).Parse(b.store())
	require.NoError(t, err)
	require.Len(t, shapes, 1)

	ns0 := shapes[0]
	assert.Equal(t, shape.NodeKind, ns0.Kind)
	require.Len(t, ns0.Targets, 1)
	assert.Equal(t, shape.TargetClass, ns0.Targets[0].Kind)
	assert.Equal(t, "ex:Person", ns0.Targets[0].Term.RawValue())

	require.Len(t, ns0.Properties, 1)
	p := ns0.Properties[0]
	assert.Equal(t, shape.PropertyKind, p.Kind)
	assert.Equal(t, "ex:name", p.Path.RawValue())
	require.NotNil(t, p.Constraints.MinCount)
	assert.Equal(t, 1, *p.Constraints.MinCount)
	require.NotNil(t, p.Constraints.MaxCount)
	assert.Equal(t, 1, *p.Constraints.MaxCount)
	require.NotNil(t, p.Constraints.Datatype)
	assert.Equal(t, xsd.String, p.Constraints.Datatype.RawValue())
	require.NotNil(t, p.Constraints.Pattern)
	assert.True(t, p.Constraints.Pattern.Regexp.MatchString("MyVar"))
	assert.False(t, p.Constraints.Pattern.Regexp.MatchString("myVar"))
	require.NotNil(t, p.Constraints.MinLength)
	assert.Equal(t, 2, *p.Constraints.MinLength)
	assert.Equal(t, shape.Warning, p.Severity)
	assert.Equal(t, "name must be capitalised", p.Message)
}

func TestPropertyShapeWithoutPathSkipped(t *testing.T) {
	var b builder
	ns := iri("ex:Shape")
	good := iri("ex:good")
	bad := iri("ex:bad")
	b.add(ns, rdfvoc.Type, iri(shacl.NodeShape))
	b.add(ns, shacl.Property, good)
	b.add(ns, shacl.Property, bad)
	b.add(good, shacl.Path, iri("ex:name"))
	b.add(bad, shacl.MinCount, intLit("1")) // no sh:path

	shapes, err := newTestReader(Options{}).Parse(b.store())
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Len(t, shapes[0].Properties, 1)
}

func TestStandalonePropertyShape(t *testing.T) {
	var b builder
	ps := iri("ex:NameShape")
	b.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	b.add(ps, shacl.TargetSubjectsOf, iri("ex:name"))
	b.add(ps, shacl.Path, iri("ex:name"))
	b.add(ps, shacl.MinLength, intLit("3"))

	shapes, err := newTestReader(Options{}).Parse(b.store())
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Equal(t, shape.PropertyKind, shapes[0].Kind)
	require.Len(t, shapes[0].Targets, 1)
	assert.Equal(t, shape.TargetSubjectsOf, shapes[0].Targets[0].Kind)
}

func TestOversizedPatternDropped(t *testing.T) {
	var b builder
	ps := iri("ex:NameShape")
	b.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	b.add(ps, shacl.Path, iri("ex:name"))
	b.add(ps, shacl.Pattern, rdf2go.NewLiteral("aaaaaaaaaaaa"))
	b.add(ps, shacl.MinCount, intLit("1"))

	shapes, err := newTestReader(Options{MaxPatternLength: 10}).Parse(b.store())
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Nil(t, shapes[0].Constraints.Pattern)
	// The rest of the shape still parsed.
	require.NotNil(t, shapes[0].Constraints.MinCount)
}

func TestInvalidPatternDropped(t *testing.T) {
	var b builder
	ps := iri("ex:NameShape")
	b.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	b.add(ps, shacl.Path, iri("ex:name"))
	b.add(ps, shacl.Pattern, rdf2go.NewLiteral("(["))

	shapes, err := newTestReader(Options{}).Parse(b.store())
	require.NoError(t, err)
	assert.Nil(t, shapes[0].Constraints.Pattern)
}

func TestPatternCompileTimeout(t *testing.T) {
	orig := compileRegexp
	compileRegexp = func(src string) (*regexp.Regexp, error) {
		time.Sleep(200 * time.Millisecond)
		return regexp.Compile(src)
	}
	defer func() { compileRegexp = orig }()

	var b builder
	ps := iri("ex:NameShape")
	b.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	b.add(ps, shacl.Path, iri("ex:name"))
	b.add(ps, shacl.Pattern, rdf2go.NewLiteral("^(a+)+$"))
	b.add(ps, shacl.MinCount, intLit("1"))

	start := time.Now()
	shapes, err := newTestReader(Options{PatternTimeout: 10 * time.Millisecond}).Parse(b.store())
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 150*time.Millisecond)
	assert.Nil(t, shapes[0].Constraints.Pattern)
	require.NotNil(t, shapes[0].Constraints.MinCount)
}

func TestInListAtDepthBoundParses(t *testing.T) {
	var b builder
	ps := iri("ex:ColourShape")
	values := make([]rdf2go.Term, 5)
	for i := range values {
		values[i] = rdf2go.NewLiteral(fmt.Sprintf("colour-%d", i))
	}
	b.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	b.add(ps, shacl.Path, iri("ex:colour"))
	b.add(ps, shacl.In, b.list("c", values...))

	shapes, err := newTestReader(Options{MaxListDepth: 5}).Parse(b.store())
	require.NoError(t, err)
	assert.Len(t, shapes[0].Constraints.In, 5)
}

func TestInListOverDepthBoundDropped(t *testing.T) {
	var b builder
	ps := iri("ex:ColourShape")
	values := make([]rdf2go.Term, 6)
	for i := range values {
		values[i] = rdf2go.NewLiteral(fmt.Sprintf("colour-%d", i))
	}
	b.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	b.add(ps, shacl.Path, iri("ex:colour"))
	b.add(ps, shacl.In, b.list("c", values...))
	b.add(ps, shacl.MinCount, intLit("1"))

	shapes, err := newTestReader(Options{MaxListDepth: 5}).Parse(b.store())
	require.NoError(t, err)
	assert.Nil(t, shapes[0].Constraints.In)
	require.NotNil(t, shapes[0].Constraints.MinCount)
}

func TestCyclicInListDropped(t *testing.T) {
	var b builder
	ps := iri("ex:ColourShape")
	cell := rdf2go.NewBlankNode("cycle")
	b.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	b.add(ps, shacl.Path, iri("ex:colour"))
	b.add(ps, shacl.In, cell)
	b.add(cell, rdfvoc.First, rdf2go.NewLiteral("red"))
	b.add(cell, rdfvoc.Rest, cell) // cycle back to itself

	shapes, err := newTestReader(Options{MaxListDepth: 10}).Parse(b.store())
	require.NoError(t, err)
	assert.Nil(t, shapes[0].Constraints.In)
}

func TestNonNumericBoundDropped(t *testing.T) {
	var b builder
	ps := iri("ex:AgeShape")
	b.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	b.add(ps, shacl.Path, iri("ex:age"))
	b.add(ps, shacl.MinInclusive, rdf2go.NewLiteral("young"))
	b.add(ps, shacl.MaxInclusive, intLit("120"))

	shapes, err := newTestReader(Options{}).Parse(b.store())
	require.NoError(t, err)
	assert.Nil(t, shapes[0].Constraints.MinInclusive)
	require.NotNil(t, shapes[0].Constraints.MaxInclusive)
	assert.Equal(t, int64(120), shapes[0].Constraints.MaxInclusive.Int)
}

func TestNonLiteralCountDropped(t *testing.T) {
	var b builder
	ps := iri("ex:NameShape")
	b.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	b.add(ps, shacl.Path, iri("ex:name"))
	b.add(ps, shacl.MinCount, iri("ex:notANumber"))

	shapes, err := newTestReader(Options{}).Parse(b.store())
	require.NoError(t, err)
	assert.Nil(t, shapes[0].Constraints.MinCount)
}

func TestQualifiedShapeParsed(t *testing.T) {
	var b builder
	ps := iri("ex:MemberShape")
	nested := iri("ex:AdminShape")
	b.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	b.add(ps, shacl.Path, iri("ex:member"))
	b.add(ps, shacl.QualifiedValueShape, nested)
	b.add(ps, shacl.QualifiedMinCount, intLit("2"))
	b.add(nested, shacl.Class, iri("ex:Admin"))

	shapes, err := newTestReader(Options{}).Parse(b.store())
	require.NoError(t, err)
	q := shapes[0].Constraints.Qualified
	require.NotNil(t, q)
	require.NotNil(t, q.MinCount)
	assert.Equal(t, 2, *q.MinCount)
	assert.Nil(t, q.MaxCount)
	require.NotNil(t, q.Shape)
	require.NotNil(t, q.Shape.Constraints.Class)
	assert.Equal(t, "ex:Admin", q.Shape.Constraints.Class.RawValue())
}

func TestQualifiedSelfReferenceTerminates(t *testing.T) {
	var b builder
	ps := iri("ex:LoopShape")
	b.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	b.add(ps, shacl.Path, iri("ex:child"))
	b.add(ps, shacl.QualifiedValueShape, ps) // refers to itself
	b.add(ps, shacl.QualifiedMinCount, intLit("1"))

	done := make(chan struct{})
	var shapes []*shape.Shape
	var err error
	go func() {
		shapes, err = newTestReader(Options{}).Parse(b.store())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("parse did not terminate on cyclic qualified shape")
	}
	require.NoError(t, err)
	require.Len(t, shapes, 1)
}

func TestUnknownSeverityDefaultsToViolation(t *testing.T) {
	var b builder
	ps := iri("ex:NameShape")
	b.add(ps, rdfvoc.Type, iri(shacl.PropertyShape))
	b.add(ps, shacl.Path, iri("ex:name"))
	b.add(ps, shacl.SeverityProp, iri("ex:Catastrophic"))

	shapes, err := newTestReader(Options{}).Parse(b.store())
	require.NoError(t, err)
	assert.Equal(t, shape.Violation, shapes[0].Severity)
}
