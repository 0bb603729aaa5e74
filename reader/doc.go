// Package reader parses a shapes graph into the shape model.
//
// Parsing is deliberately forgiving below the shape level: a malformed
// constraint value is dropped with a logged warning and the rest of the
// shape still parses. Only a shapes graph with no identifiable shapes at all
// is a hard error. Three defensive limits protect the parser from hostile
// input: a byte bound and a compile deadline on regular-expression
// constraints, and a depth bound on RDF value lists (which also terminates
// cyclic lists).
package reader
