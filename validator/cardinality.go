package validator

import (
	"fmt"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/report"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary/shacl"
)

// checkCardinality counts the values of the path on the focus node and
// checks both bounds independently.
func checkCardinality(g graph.Reader, focus rdf2go.Term, s *shape.Shape, _ *Env) []report.Result {
	actual := len(valueNodes(g, focus, s))
	var out []report.Result

	if s.Constraints.MinCount != nil && actual < *s.Constraints.MinCount {
		out = append(out, newResult(s, focus, shacl.MinCountConstraintComponent,
			fmt.Sprintf("expected at least %d value(s), found %d", *s.Constraints.MinCount, actual),
			map[string]string{
				"actual":   fmt.Sprintf("%d", actual),
				"expected": fmt.Sprintf(">= %d", *s.Constraints.MinCount),
			}))
	}
	if s.Constraints.MaxCount != nil && actual > *s.Constraints.MaxCount {
		out = append(out, newResult(s, focus, shacl.MaxCountConstraintComponent,
			fmt.Sprintf("expected at most %d value(s), found %d", *s.Constraints.MaxCount, actual),
			map[string]string{
				"actual":   fmt.Sprintf("%d", actual),
				"expected": fmt.Sprintf("<= %d", *s.Constraints.MaxCount),
			}))
	}
	return out
}
