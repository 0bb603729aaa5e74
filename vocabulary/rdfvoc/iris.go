// Package rdfvoc provides IRI constants for the core RDF and RDFS
// vocabularies used by the validation engine.
package rdfvoc

// Namespace is the base IRI prefix for RDF syntax terms.
const Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// RDFSNamespace is the base IRI prefix for RDF Schema terms.
const RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

const (
	// Type is the rdf:type predicate.
	Type = Namespace + "type"

	// First is the head predicate of an RDF collection cell.
	First = Namespace + "first"

	// Rest is the tail predicate of an RDF collection cell.
	Rest = Namespace + "rest"

	// Nil terminates an RDF collection.
	Nil = Namespace + "nil"

	// LangString is the datatype of language-tagged literals.
	LangString = Namespace + "langString"
)

const (
	// SubClassOf is the rdfs:subClassOf predicate, read only when the
	// engine's opt-in subclass closure mode is enabled.
	SubClassOf = RDFSNamespace + "subClassOf"

	// Label is the rdfs:label predicate.
	Label = RDFSNamespace + "label"
)
