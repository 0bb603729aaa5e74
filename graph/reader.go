package graph

import (
	rdf2go "github.com/deiu/rdf2go"
)

// Reader is the read-only triple access contract the engine validates
// against. Both the data graph and the shapes graph are supplied through it.
// Implementations must be safe for concurrent readers.
type Reader interface {
	// Describe returns every triple whose subject is s.
	Describe(s rdf2go.Term) []*rdf2go.Triple

	// WithPredicate returns every triple whose predicate is p.
	WithPredicate(p rdf2go.Term) []*rdf2go.Triple

	// Objects returns the objects of all (s, p, *) triples.
	Objects(s, p rdf2go.Term) []rdf2go.Term

	// Subjects returns the distinct subjects of all (*, p, o) triples.
	// A nil object matches any object.
	Subjects(p, o rdf2go.Term) []rdf2go.Term

	// One returns the object of one (s, p, *) triple, or nil when none exists.
	One(s, p rdf2go.Term) rdf2go.Term

	// Len reports the number of triples in the collection.
	Len() int
}
