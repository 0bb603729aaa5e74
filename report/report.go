// Package report holds the aggregated outcome of a validation run: an
// immutable, queryable collection of results.
package report

import (
	"encoding/json"
	"sort"

	rdf2go "github.com/deiu/rdf2go"
	"github.com/google/uuid"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/shape"
)

// InternalErrorComponent identifies results synthesized from a validator
// that failed at runtime rather than from a constraint check.
const InternalErrorComponent = "https://semspec.dev/ontology/semshape/InternalError"

// Result is one validation outcome for a (focus node, shape) pair.
type Result struct {
	Severity  shape.Severity
	FocusNode rdf2go.Term
	ShapeID   rdf2go.Term
	// Path is the constrained predicate; nil for node-shape results.
	Path rdf2go.Term
	// Component is the constraint component IRI behind this result.
	Component string
	Message   string
	// Details carries actual/expected values for the failing check.
	Details map[string]string
}

// MarshalJSON renders terms in their N-Triples form for downstream tooling.
func (r Result) MarshalJSON() ([]byte, error) {
	type wire struct {
		Severity  string            `json:"severity"`
		FocusNode string            `json:"focus_node"`
		ShapeID   string            `json:"shape"`
		Path      string            `json:"path,omitempty"`
		Component string            `json:"constraint_component"`
		Message   string            `json:"message"`
		Details   map[string]string `json:"details,omitempty"`
	}
	w := wire{
		Severity:  r.Severity.String(),
		FocusNode: graph.Key(r.FocusNode),
		ShapeID:   graph.Key(r.ShapeID),
		Component: r.Component,
		Message:   r.Message,
		Details:   r.Details,
	}
	if r.Path != nil {
		w.Path = graph.Key(r.Path)
	}
	return json.Marshal(w)
}

// Report is the aggregated outcome of one validation run. It is constructed
// fresh per run and never mutated afterwards.
type Report struct {
	runID     string
	conforms  bool
	truncated bool
	results   []Result
}

// New builds a report from the collected results. Results are sorted by
// (focus node, shape, path, component) so that identical inputs always
// produce identical reports regardless of scheduling order. truncated marks
// reports cut short by fail-fast or a deadline.
func New(results []Result, truncated bool) *Report {
	sorted := make([]Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if ka, kb := graph.Key(a.FocusNode), graph.Key(b.FocusNode); ka != kb {
			return ka < kb
		}
		if ka, kb := graph.Key(a.ShapeID), graph.Key(b.ShapeID); ka != kb {
			return ka < kb
		}
		if ka, kb := graph.Key(a.Path), graph.Key(b.Path); ka != kb {
			return ka < kb
		}
		if a.Component != b.Component {
			return a.Component < b.Component
		}
		return a.Message < b.Message
	})

	conforms := true
	for _, r := range sorted {
		if r.Severity == shape.Violation {
			conforms = false
			break
		}
	}

	return &Report{
		runID:     uuid.NewString(),
		conforms:  conforms,
		truncated: truncated,
		results:   sorted,
	}
}

// RunID identifies this validation run.
func (r *Report) RunID() string { return r.runID }

// Conforms reports whether no result carries Violation severity.
func (r *Report) Conforms() bool { return r.conforms }

// Truncated reports whether the run stopped early (fail-fast or deadline);
// a truncated report may omit violations that further units would have found.
func (r *Report) Truncated() bool { return r.truncated }

// Results returns the sorted results. Callers must not mutate the slice.
func (r *Report) Results() []Result { return r.results }

// Len reports the number of results.
func (r *Report) Len() int { return len(r.results) }

// BySeverity returns the results carrying the given severity.
func (r *Report) BySeverity(sev shape.Severity) []Result {
	var out []Result
	for _, res := range r.results {
		if res.Severity == sev {
			out = append(out, res)
		}
	}
	return out
}

// Violations returns the results that affect conformance.
func (r *Report) Violations() []Result { return r.BySeverity(shape.Violation) }

// GroupByFocus groups results by focus-node key.
func (r *Report) GroupByFocus() map[string][]Result {
	out := make(map[string][]Result)
	for _, res := range r.results {
		k := graph.Key(res.FocusNode)
		out[k] = append(out[k], res)
	}
	return out
}

// MarshalJSON renders the whole report.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		RunID     string   `json:"run_id"`
		Conforms  bool     `json:"conforms"`
		Truncated bool     `json:"truncated,omitempty"`
		Results   []Result `json:"results"`
	}{r.runID, r.conforms, r.truncated, r.results})
}
