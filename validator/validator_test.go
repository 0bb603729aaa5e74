package validator

import (
	"testing"

	rdf2go "github.com/deiu/rdf2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary/rdfvoc"
	"github.com/c360studio/semshape/vocabulary/xsd"
)

// The table is assigned in init rather than a package-level literal; every
// family must be present and wired before the first Validate call.
func TestDispatchTablePopulated(t *testing.T) {
	comps := Components()
	require.Len(t, comps, 5)

	var names []string
	for _, c := range comps {
		require.NotNil(t, c.Applies, c.Name)
		require.NotNil(t, c.Check, c.Name)
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"cardinality", "type", "string", "value", "qualified"}, names)
}

// Test fixtures shared by the per-family tests.

func iri(v string) rdf2go.Term { return rdf2go.NewResource(v) }

func lit(v string) rdf2go.Term { return rdf2go.NewLiteral(v) }

func typed(v, datatype string) rdf2go.Term {
	return rdf2go.NewLiteralWithDatatype(v, rdf2go.NewResource(datatype))
}

func intLit(v string) rdf2go.Term { return typed(v, xsd.Integer) }

type builder struct {
	triples []*rdf2go.Triple
}

func (b *builder) add(s rdf2go.Term, p string, o rdf2go.Term) *builder {
	b.triples = append(b.triples, rdf2go.NewTriple(s, rdf2go.NewResource(p), o))
	return b
}

func (b *builder) typeOf(s rdf2go.Term, class string) *builder {
	return b.add(s, rdfvoc.Type, iri(class))
}

func (b *builder) store() *graph.Store { return graph.FromTriples(b.triples) }

func count(n int) *int { return &n }

func num(lexical string) *shape.Numeric {
	l := rdf2go.NewLiteral(lexical).(*rdf2go.Literal)
	n, ok := shape.ParseNumeric(l)
	if !ok {
		panic("test fixture is not numeric: " + lexical)
	}
	return &n
}

// propertyShape builds a property shape on ex:p with the given constraints.
func propertyShape(cs shape.ConstraintSet) *shape.Shape {
	return &shape.Shape{
		ID:          iri("ex:TestShape"),
		Kind:        shape.PropertyKind,
		Path:        iri("ex:p"),
		Constraints: cs,
	}
}
