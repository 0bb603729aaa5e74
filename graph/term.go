package graph

import (
	"sort"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/vocabulary/xsd"
)

// IRI builds an IRI term.
func IRI(value string) rdf2go.Term { return rdf2go.NewResource(value) }

// Key returns a stable string key for a term, suitable for map keys and
// deterministic ordering. The N-Triples form from String() is unique per
// term value.
func Key(t rdf2go.Term) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// AsLiteral returns the term as a literal, if it is one.
func AsLiteral(t rdf2go.Term) (*rdf2go.Literal, bool) {
	l, ok := t.(*rdf2go.Literal)
	return l, ok
}

// AsIRI returns the term as an IRI resource, if it is one.
func AsIRI(t rdf2go.Term) (*rdf2go.Resource, bool) {
	r, ok := t.(*rdf2go.Resource)
	return r, ok
}

// datatypeKey normalizes a literal datatype for comparison: a plain literal
// (no datatype, no language tag) is an xsd:string literal under RDF 1.1.
func datatypeKey(l *rdf2go.Literal) string {
	if l.Language != "" {
		return "@" + l.Language
	}
	if l.Datatype == nil {
		return xsd.String
	}
	return l.Datatype.RawValue()
}

// TermEqual reports term equality. Two literals are equal only when their
// lexical forms and (normalized) datatypes agree; IRIs and blank nodes
// compare by identifier.
func TermEqual(a, b rdf2go.Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	la, aok := a.(*rdf2go.Literal)
	lb, bok := b.(*rdf2go.Literal)
	if aok != bok {
		return false
	}
	if aok {
		return la.Value == lb.Value && datatypeKey(la) == datatypeKey(lb)
	}
	return a.Equal(b)
}

// SortTerms orders terms deterministically by their key.
func SortTerms(terms []rdf2go.Term) {
	sort.Slice(terms, func(i, j int) bool {
		return Key(terms[i]) < Key(terms[j])
	})
}
