package shacl

// Namespace is the base IRI prefix for SHACL vocabulary terms.
const Namespace = "http://www.w3.org/ns/shacl#"

// Shape class IRIs.
const (
	// NodeShape types a subject as a shape constraining whole nodes.
	NodeShape = Namespace + "NodeShape"

	// PropertyShape types a subject as a shape constraining one property path.
	PropertyShape = Namespace + "PropertyShape"
)

// Structural predicates linking shapes together.
const (
	// Property links a node shape to one of its property shapes.
	Property = Namespace + "property"

	// Path declares the predicate a property shape constrains.
	Path = Namespace + "path"
)

// Target declaration predicates.
const (
	// TargetClass selects all instances of a class as focus nodes.
	TargetClass = Namespace + "targetClass"

	// TargetNode selects an explicit node as a focus node.
	TargetNode = Namespace + "targetNode"

	// TargetSubjectsOf selects the subjects of all triples using a predicate.
	TargetSubjectsOf = Namespace + "targetSubjectsOf"

	// TargetObjectsOf selects the objects of all triples using a predicate.
	TargetObjectsOf = Namespace + "targetObjectsOf"
)

// Constraint parameter predicates.
const (
	// MinCount is the minimum number of values on the path.
	MinCount = Namespace + "minCount"

	// MaxCount is the maximum number of values on the path.
	MaxCount = Namespace + "maxCount"

	// Datatype requires literal values with an exact datatype.
	Datatype = Namespace + "datatype"

	// Class requires values typed as a given class.
	Class = Namespace + "class"

	// Pattern requires literal values matching a regular expression.
	Pattern = Namespace + "pattern"

	// MinLength is the minimum lexical length of literal values.
	MinLength = Namespace + "minLength"

	// In enumerates the admissible values as an RDF list.
	In = Namespace + "in"

	// HasValue requires at least one value equal to a given term.
	HasValue = Namespace + "hasValue"

	// MinInclusive is the inclusive lower numeric bound.
	MinInclusive = Namespace + "minInclusive"

	// MaxInclusive is the inclusive upper numeric bound.
	MaxInclusive = Namespace + "maxInclusive"

	// QualifiedValueShape is the nested shape qualified values must conform to.
	QualifiedValueShape = Namespace + "qualifiedValueShape"

	// QualifiedMinCount is the minimum number of conforming qualified values.
	QualifiedMinCount = Namespace + "qualifiedMinCount"

	// QualifiedMaxCount is the maximum number of conforming qualified values.
	QualifiedMaxCount = Namespace + "qualifiedMaxCount"

	// SeverityProp overrides the severity of results produced by a shape.
	SeverityProp = Namespace + "severity"

	// Message overrides the message of results produced by a shape.
	Message = Namespace + "message"
)

// Severity IRIs.
const (
	// Violation is the default result severity; affects conformance.
	Violation = Namespace + "Violation"

	// Warning marks advisory results; does not affect conformance.
	Warning = Namespace + "Warning"

	// Info marks informational results; does not affect conformance.
	Info = Namespace + "Info"
)

// Constraint component IRIs used to identify the rule behind a result.
const (
	MinCountConstraintComponent          = Namespace + "MinCountConstraintComponent"
	MaxCountConstraintComponent          = Namespace + "MaxCountConstraintComponent"
	DatatypeConstraintComponent          = Namespace + "DatatypeConstraintComponent"
	ClassConstraintComponent             = Namespace + "ClassConstraintComponent"
	PatternConstraintComponent           = Namespace + "PatternConstraintComponent"
	MinLengthConstraintComponent         = Namespace + "MinLengthConstraintComponent"
	InConstraintComponent                = Namespace + "InConstraintComponent"
	HasValueConstraintComponent          = Namespace + "HasValueConstraintComponent"
	MinInclusiveConstraintComponent      = Namespace + "MinInclusiveConstraintComponent"
	MaxInclusiveConstraintComponent      = Namespace + "MaxInclusiveConstraintComponent"
	QualifiedMinCountConstraintComponent = Namespace + "QualifiedMinCountConstraintComponent"
	QualifiedMaxCountConstraintComponent = Namespace + "QualifiedMaxCountConstraintComponent"
)
