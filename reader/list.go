package reader

import (
	"fmt"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/graph"
)

// walkList traverses an RDF collection iteratively, bounded by maxDepth
// entries. The explicit counter replaces call-stack recursion, so neither a
// long list nor a cyclic one (which never reaches rdf:nil) can exhaust the
// stack or loop forever.
func walkList(g graph.Reader, head rdf2go.Term, maxDepth int) ([]rdf2go.Term, error) {
	var out []rdf2go.Term
	cur := head
	for steps := 0; ; steps++ {
		if graph.TermEqual(cur, termNil) {
			return out, nil
		}
		if steps >= maxDepth {
			return nil, fmt.Errorf("list at %s: %w", head.RawValue(), ErrListTooDeep)
		}
		first := g.One(cur, termFirst)
		rest := g.One(cur, termRest)
		if first == nil || rest == nil {
			return nil, fmt.Errorf("malformed list cell at %s", cur.RawValue())
		}
		out = append(out, first)
		cur = rest
	}
}
