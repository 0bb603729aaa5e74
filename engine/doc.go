// Package engine orchestrates a validation run: it parses (or accepts) a
// shape model, selects each shape's focus nodes, fans the independent
// (shape, focus node) units out over a bounded worker pool, and aggregates
// the results into a report.
//
// Fail-fast and deadline handling are cooperative: in-flight units run to
// completion, only future scheduling stops, and the report is flagged as
// truncated.
package engine
