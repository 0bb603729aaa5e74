package validator

import (
	"fmt"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/report"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary/shacl"
)

// checkQualified counts the path values that conform to the nested shape and
// checks that count against the qualified bounds.
func checkQualified(g graph.Reader, focus rdf2go.Term, s *shape.Shape, env *Env) []report.Result {
	q := s.Constraints.Qualified

	conforming := 0
	for _, v := range valueNodes(g, focus, s) {
		if conforms(g, v, q.Shape, env) {
			conforming++
		}
	}

	var out []report.Result
	if q.MinCount != nil && conforming < *q.MinCount {
		out = append(out, newResult(s, focus, shacl.QualifiedMinCountConstraintComponent,
			fmt.Sprintf("expected at least %d value(s) conforming to %s, found %d",
				*q.MinCount, q.Shape.Label(), conforming),
			map[string]string{
				"actual":   fmt.Sprintf("%d", conforming),
				"expected": fmt.Sprintf(">= %d", *q.MinCount),
			}))
	}
	if q.MaxCount != nil && conforming > *q.MaxCount {
		out = append(out, newResult(s, focus, shacl.QualifiedMaxCountConstraintComponent,
			fmt.Sprintf("expected at most %d value(s) conforming to %s, found %d",
				*q.MaxCount, q.Shape.Label(), conforming),
			map[string]string{
				"actual":   fmt.Sprintf("%d", conforming),
				"expected": fmt.Sprintf("<= %d", *q.MaxCount),
			}))
	}
	return out
}
