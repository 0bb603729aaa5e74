// Package xsd provides IRI constants for the XML Schema datatypes that
// appear in datatype and numeric-range constraints.
package xsd

// Namespace is the base IRI prefix for XSD datatype terms.
const Namespace = "http://www.w3.org/2001/XMLSchema#"

const (
	String  = Namespace + "string"
	Boolean = Namespace + "boolean"

	Integer            = Namespace + "integer"
	Int                = Namespace + "int"
	Long               = Namespace + "long"
	Short              = Namespace + "short"
	Byte               = Namespace + "byte"
	NonNegativeInteger = Namespace + "nonNegativeInteger"
	PositiveInteger    = Namespace + "positiveInteger"
	UnsignedInt        = Namespace + "unsignedInt"

	Decimal = Namespace + "decimal"
	Float   = Namespace + "float"
	Double  = Namespace + "double"

	Date     = Namespace + "date"
	DateTime = Namespace + "dateTime"
	AnyURI   = Namespace + "anyURI"
)

// integerTypes are the XSD datatypes whose value space is integral.
var integerTypes = map[string]bool{
	Integer:            true,
	Int:                true,
	Long:               true,
	Short:              true,
	Byte:               true,
	NonNegativeInteger: true,
	PositiveInteger:    true,
	UnsignedInt:        true,
}

// decimalTypes are the XSD datatypes whose value space is fractional.
var decimalTypes = map[string]bool{
	Decimal: true,
	Float:   true,
	Double:  true,
}

// IsIntegral reports whether iri names an integral XSD datatype.
func IsIntegral(iri string) bool { return integerTypes[iri] }

// IsNumeric reports whether iri names a numeric XSD datatype.
func IsNumeric(iri string) bool { return integerTypes[iri] || decimalTypes[iri] }
