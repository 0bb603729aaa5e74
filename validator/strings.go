package validator

import (
	"fmt"
	"unicode/utf8"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/report"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary/shacl"
)

// checkString applies the pre-compiled pattern and the minimum-length bound
// to every literal value. The two checks are independent: a value failing
// both produces two results.
func checkString(g graph.Reader, focus rdf2go.Term, s *shape.Shape, _ *Env) []report.Result {
	var out []report.Result
	for _, v := range valueNodes(g, focus, s) {
		lit, ok := graph.AsLiteral(v)
		if !ok {
			continue
		}

		if p := s.Constraints.Pattern; p != nil && !p.Regexp.MatchString(lit.Value) {
			out = append(out, newResult(s, focus, shacl.PatternConstraintComponent,
				fmt.Sprintf("value %q does not match pattern %q", lit.Value, p.Source),
				map[string]string{"actual": lit.Value, "expected": p.Source}))
		}

		if min := s.Constraints.MinLength; min != nil {
			if length := utf8.RuneCountInString(lit.Value); length < *min {
				out = append(out, newResult(s, focus, shacl.MinLengthConstraintComponent,
					fmt.Sprintf("value %q has length %d, expected at least %d", lit.Value, length, *min),
					map[string]string{
						"actual":   fmt.Sprintf("%d", length),
						"expected": fmt.Sprintf(">= %d", *min),
					}))
			}
		}
	}
	return out
}
