package validator

import (
	"fmt"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/report"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary/rdfvoc"
	"github.com/c360studio/semshape/vocabulary/shacl"
	"github.com/c360studio/semshape/vocabulary/xsd"
)

var (
	termType       = rdf2go.NewResource(rdfvoc.Type)
	termSubClassOf = rdf2go.NewResource(rdfvoc.SubClassOf)
)

// checkType enforces datatype constraints on literal values and class
// constraints on IRI/blank-node values.
func checkType(g graph.Reader, focus rdf2go.Term, s *shape.Shape, env *Env) []report.Result {
	var out []report.Result
	for _, v := range valueNodes(g, focus, s) {
		if s.Constraints.Datatype != nil {
			out = append(out, checkDatatype(s, focus, v)...)
		}
		if s.Constraints.Class != nil {
			out = append(out, checkClass(g, s, focus, v, env)...)
		}
	}
	return out
}

func checkDatatype(s *shape.Shape, focus, v rdf2go.Term) []report.Result {
	want := s.Constraints.Datatype.RawValue()

	lit, ok := graph.AsLiteral(v)
	if !ok {
		return []report.Result{newResult(s, focus, shacl.DatatypeConstraintComponent,
			fmt.Sprintf("value %s is not a literal", v.String()),
			map[string]string{"actual": v.String(), "expected": want})}
	}

	got := literalDatatype(lit)
	if got != want {
		return []report.Result{newResult(s, focus, shacl.DatatypeConstraintComponent,
			fmt.Sprintf("value %q has datatype %s, expected %s", lit.Value, got, want),
			map[string]string{"actual": got, "expected": want})}
	}
	return nil
}

// literalDatatype resolves a literal's effective datatype under RDF 1.1:
// plain literals are xsd:string, language-tagged ones rdf:langString.
func literalDatatype(l *rdf2go.Literal) string {
	if l.Language != "" {
		return rdfvoc.LangString
	}
	if l.Datatype == nil {
		return xsd.String
	}
	return l.Datatype.RawValue()
}

func checkClass(g graph.Reader, s *shape.Shape, focus, v rdf2go.Term, env *Env) []report.Result {
	want := s.Constraints.Class

	if _, isLit := graph.AsLiteral(v); isLit {
		return []report.Result{newResult(s, focus, shacl.ClassConstraintComponent,
			fmt.Sprintf("value %s is a literal, expected an instance of %s", v.String(), want.RawValue()),
			map[string]string{"actual": v.String(), "expected": want.RawValue()})}
	}

	if hasType(g, v, want, env.SubclassClosure) {
		return nil
	}
	return []report.Result{newResult(s, focus, shacl.ClassConstraintComponent,
		fmt.Sprintf("value %s is not an instance of %s", v.String(), want.RawValue()),
		map[string]string{"actual": v.String(), "expected": want.RawValue()})}
}

// hasType reports whether node carries rdf:type class. With closure enabled
// it also accepts any declared type reachable from class via rdfs:subClassOf.
func hasType(g graph.Reader, node, class rdf2go.Term, closure bool) bool {
	for _, typ := range g.Objects(node, termType) {
		if graph.TermEqual(typ, class) {
			return true
		}
		if closure && subClassOf(g, typ, class) {
			return true
		}
	}
	return false
}

// subClassOf walks rdfs:subClassOf transitively from sub towards super,
// keeping a seen set so cyclic hierarchies terminate.
func subClassOf(g graph.Reader, sub, super rdf2go.Term) bool {
	seen := map[string]bool{graph.Key(sub): true}
	frontier := []rdf2go.Term{sub}
	for len(frontier) > 0 {
		next := frontier[0]
		frontier = frontier[1:]
		for _, parent := range g.Objects(next, termSubClassOf) {
			if graph.TermEqual(parent, super) {
				return true
			}
			k := graph.Key(parent)
			if seen[k] {
				continue
			}
			seen[k] = true
			frontier = append(frontier, parent)
		}
	}
	return false
}
