package graph

import (
	rdf2go "github.com/deiu/rdf2go"
)

// Store is an indexed, immutable view over a triple collection. It satisfies
// Reader with map lookups instead of linear scans, so the cost of a
// validation run scales with the focus nodes touched rather than with the
// size of the data graph.
type Store struct {
	bySubject   map[string][]*rdf2go.Triple
	byPredicate map[string][]*rdf2go.Triple
	size        int
}

// NewStore indexes every triple of g. The graph must not be mutated while
// the store is in use.
func NewStore(g *rdf2go.Graph) *Store {
	var triples []*rdf2go.Triple
	for t := range g.IterTriples() {
		triples = append(triples, t)
	}
	return FromTriples(triples)
}

// FromTriples indexes an explicit triple slice. Useful for merging several
// parsed graphs into one data graph.
func FromTriples(triples []*rdf2go.Triple) *Store {
	s := &Store{
		bySubject:   make(map[string][]*rdf2go.Triple),
		byPredicate: make(map[string][]*rdf2go.Triple),
	}
	for _, t := range triples {
		if t == nil || t.Subject == nil || t.Predicate == nil || t.Object == nil {
			continue
		}
		sk := Key(t.Subject)
		pk := Key(t.Predicate)
		s.bySubject[sk] = append(s.bySubject[sk], t)
		s.byPredicate[pk] = append(s.byPredicate[pk], t)
		s.size++
	}
	return s
}

// Describe returns every triple whose subject is s.
func (s *Store) Describe(subject rdf2go.Term) []*rdf2go.Triple {
	if subject == nil {
		return nil
	}
	return s.bySubject[Key(subject)]
}

// WithPredicate returns every triple whose predicate is p.
func (s *Store) WithPredicate(p rdf2go.Term) []*rdf2go.Triple {
	if p == nil {
		return nil
	}
	return s.byPredicate[Key(p)]
}

// Objects returns the objects of all (s, p, *) triples, in insertion order.
func (s *Store) Objects(subject, predicate rdf2go.Term) []rdf2go.Term {
	var out []rdf2go.Term
	for _, t := range s.Describe(subject) {
		if TermEqual(t.Predicate, predicate) {
			out = append(out, t.Object)
		}
	}
	return out
}

// Subjects returns the distinct subjects of all (*, p, o) triples. A nil
// object matches any object.
func (s *Store) Subjects(predicate, object rdf2go.Term) []rdf2go.Term {
	seen := make(map[string]bool)
	var out []rdf2go.Term
	for _, t := range s.WithPredicate(predicate) {
		if object != nil && !TermEqual(t.Object, object) {
			continue
		}
		k := Key(t.Subject)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t.Subject)
	}
	return out
}

// One returns the object of one (s, p, *) triple, or nil when none exists.
func (s *Store) One(subject, predicate rdf2go.Term) rdf2go.Term {
	for _, t := range s.Describe(subject) {
		if TermEqual(t.Predicate, predicate) {
			return t.Object
		}
	}
	return nil
}

// Len reports the number of indexed triples.
func (s *Store) Len() int { return s.size }
