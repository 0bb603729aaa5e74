// Package shacl provides IRI constants for the W3C Shapes Constraint
// Language vocabulary.
//
// Only the subset read by the shapes reader is declared here: shape typing,
// target declarations, the single-predicate path, and the core constraint
// parameters. The tables are plain constants — initialized once, never
// mutated.
package shacl
