// Package graph provides the read-only query surface the validation engine
// uses over an in-memory triple collection.
//
// Turtle parsing and serialization are the responsibility of the rdf2go
// collaborator; this package only indexes an already-parsed collection so
// that per-focus-node lookups during validation are cheap. A Store is
// immutable after construction, which is what makes the engine's concurrent
// validation units safe without locking.
package graph
