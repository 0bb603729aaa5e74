package validator

import (
	"fmt"
	"strings"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/report"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary/shacl"
)

// checkValue enforces the enumeration, required-value, and numeric-range
// constraints. Term equality throughout is datatype-aware.
func checkValue(g graph.Reader, focus rdf2go.Term, s *shape.Shape, _ *Env) []report.Result {
	values := valueNodes(g, focus, s)
	var out []report.Result

	if len(s.Constraints.In) > 0 {
		out = append(out, checkIn(s, focus, values)...)
	}
	if s.Constraints.HasValue != nil {
		out = append(out, checkHasValue(s, focus, values)...)
	}
	if s.Constraints.MinInclusive != nil || s.Constraints.MaxInclusive != nil {
		out = append(out, checkRange(s, focus, values)...)
	}
	return out
}

// checkIn requires every value to equal one of the enumerated entries.
func checkIn(s *shape.Shape, focus rdf2go.Term, values []rdf2go.Term) []report.Result {
	allowed := make([]string, len(s.Constraints.In))
	for i, t := range s.Constraints.In {
		allowed[i] = t.String()
	}

	var out []report.Result
	for _, v := range values {
		admitted := false
		for _, entry := range s.Constraints.In {
			if graph.TermEqual(v, entry) {
				admitted = true
				break
			}
		}
		if !admitted {
			out = append(out, newResult(s, focus, shacl.InConstraintComponent,
				fmt.Sprintf("value %s is not one of the admitted values", v.String()),
				map[string]string{"actual": v.String(), "expected": strings.Join(allowed, ", ")}))
		}
	}
	return out
}

// checkHasValue requires at least one value equal to the required term.
func checkHasValue(s *shape.Shape, focus rdf2go.Term, values []rdf2go.Term) []report.Result {
	for _, v := range values {
		if graph.TermEqual(v, s.Constraints.HasValue) {
			return nil
		}
	}
	return []report.Result{newResult(s, focus, shacl.HasValueConstraintComponent,
		fmt.Sprintf("missing required value %s", s.Constraints.HasValue.String()),
		map[string]string{"expected": s.Constraints.HasValue.String()})}
}

// checkRange compares each value numerically against the inclusive bounds.
// A non-numeric value under a numeric bound is itself a violation.
func checkRange(s *shape.Shape, focus rdf2go.Term, values []rdf2go.Term) []report.Result {
	var out []report.Result
	for _, v := range values {
		lit, ok := graph.AsLiteral(v)
		var n shape.Numeric
		if ok {
			n, ok = shape.ParseNumeric(lit)
		}
		if !ok {
			component := shacl.MinInclusiveConstraintComponent
			if s.Constraints.MinInclusive == nil {
				component = shacl.MaxInclusiveConstraintComponent
			}
			out = append(out, newResult(s, focus, component,
				fmt.Sprintf("value %s is not numeric", v.String()),
				map[string]string{"actual": v.String(), "expected": "a numeric literal"}))
			continue
		}

		if min := s.Constraints.MinInclusive; min != nil && n.Compare(*min) < 0 {
			out = append(out, newResult(s, focus, shacl.MinInclusiveConstraintComponent,
				fmt.Sprintf("value %s is below the minimum %s", n, min),
				map[string]string{"actual": n.String(), "expected": ">= " + min.String()}))
		}
		if max := s.Constraints.MaxInclusive; max != nil && n.Compare(*max) > 0 {
			out = append(out, newResult(s, focus, shacl.MaxInclusiveConstraintComponent,
				fmt.Sprintf("value %s is above the maximum %s", n, max),
				map[string]string{"actual": n.String(), "expected": "<= " + max.String()}))
		}
	}
	return out
}
