package shape

import (
	"regexp"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/vocabulary/shacl"
)

// Kind distinguishes node shapes from property shapes.
type Kind int

const (
	// NodeKind constrains a focus node as a whole.
	NodeKind Kind = iota
	// PropertyKind constrains the values of one outgoing predicate.
	PropertyKind
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	if k == PropertyKind {
		return "property"
	}
	return "node"
}

// Severity classifies validation results. Only Violation affects report
// conformance.
type Severity int

const (
	Violation Severity = iota
	Warning
	Info
)

// String returns the severity's local SHACL name.
func (s Severity) String() string {
	switch s {
	case Warning:
		return "Warning"
	case Info:
		return "Info"
	default:
		return "Violation"
	}
}

// IRI returns the severity's SHACL vocabulary IRI.
func (s Severity) IRI() string {
	switch s {
	case Warning:
		return shacl.Warning
	case Info:
		return shacl.Info
	default:
		return shacl.Violation
	}
}

// ParseSeverity maps a SHACL severity IRI to a Severity.
func ParseSeverity(iri string) (Severity, bool) {
	switch iri {
	case shacl.Violation:
		return Violation, true
	case shacl.Warning:
		return Warning, true
	case shacl.Info:
		return Info, true
	}
	return Violation, false
}

// TargetKind identifies one of the four supported target selectors.
type TargetKind int

const (
	// TargetClass selects all instances of a class.
	TargetClass TargetKind = iota
	// TargetNode selects one explicit node.
	TargetNode
	// TargetSubjectsOf selects subjects of triples with a predicate.
	TargetSubjectsOf
	// TargetObjectsOf selects objects of triples with a predicate.
	TargetObjectsOf
)

// Target is one target declaration on a shape. Term is the class IRI, the
// explicit node, or the predicate IRI, depending on Kind.
type Target struct {
	Kind TargetKind
	Term rdf2go.Term
}

// Pattern is a compiled, bounds-checked regular expression constraint. The
// reader guarantees Regexp is non-nil on every pattern it admits.
type Pattern struct {
	Source string
	Regexp *regexp.Regexp
}

// Qualified is the parameter block of a qualified-value-shape constraint:
// among the values on the path, between MinCount and MaxCount (each bound
// optional) must conform to Shape.
type Qualified struct {
	Shape    *Shape
	MinCount *int
	MaxCount *int
}

// ConstraintSet is the closed set of constraint parameters a shape may
// carry. Every field is independently optional; a nil (or empty) field means
// the constraint is absent. A parameter that failed defensive parsing is
// simply absent — never half-built.
type ConstraintSet struct {
	MinCount *int
	MaxCount *int

	Datatype rdf2go.Term
	Class    rdf2go.Term

	Pattern   *Pattern
	MinLength *int

	In       []rdf2go.Term
	HasValue rdf2go.Term

	MinInclusive *Numeric
	MaxInclusive *Numeric

	Qualified *Qualified
}

// Empty reports whether no constraint parameter is present.
func (c *ConstraintSet) Empty() bool {
	return c.MinCount == nil && c.MaxCount == nil &&
		c.Datatype == nil && c.Class == nil &&
		c.Pattern == nil && c.MinLength == nil &&
		len(c.In) == 0 && c.HasValue == nil &&
		c.MinInclusive == nil && c.MaxInclusive == nil &&
		c.Qualified == nil
}

// Shape is one parsed shape. For PropertyKind shapes Path names the single
// constrained predicate; for NodeKind shapes Properties holds the child
// property shapes and Constraints applies to the focus node itself.
type Shape struct {
	ID          rdf2go.Term
	Kind        Kind
	Targets     []Target
	Path        rdf2go.Term
	Properties  []*Shape
	Constraints ConstraintSet
	Severity    Severity
	Message     string
}

// Label returns a short identifier for log and result messages.
func (s *Shape) Label() string {
	if s == nil || s.ID == nil {
		return "(anonymous shape)"
	}
	return s.ID.RawValue()
}
