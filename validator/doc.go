// Package validator implements the constraint components: cardinality,
// type, string, value, and qualified checks.
//
// Every validator is a pure function of the data graph, the focus node, and
// the shape. No component short-circuits another; a focus node collects
// every applicable violation, not just the first. That purity is what lets
// the engine run units concurrently without coordination.
package validator
