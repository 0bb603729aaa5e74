package engine

import (
	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary/rdfvoc"
)

var termType = rdf2go.NewResource(rdfvoc.Type)

// Targets computes the focus nodes a shape applies to: the union over its
// target declarations, deduplicated and sorted for deterministic scheduling.
func Targets(s *shape.Shape, g graph.Reader) []rdf2go.Term {
	seen := make(map[string]bool)
	var out []rdf2go.Term
	add := func(t rdf2go.Term) {
		k := graph.Key(t)
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, t)
	}

	for _, target := range s.Targets {
		switch target.Kind {
		case shape.TargetClass:
			for _, subj := range g.Subjects(termType, target.Term) {
				add(subj)
			}
		case shape.TargetNode:
			// Explicit nodes are focus nodes whether or not the data graph
			// mentions them.
			add(target.Term)
		case shape.TargetSubjectsOf:
			for _, subj := range g.Subjects(target.Term, nil) {
				add(subj)
			}
		case shape.TargetObjectsOf:
			for _, t := range g.WithPredicate(target.Term) {
				add(t.Object)
			}
		}
	}

	graph.SortTerms(out)
	return out
}
