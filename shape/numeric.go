package shape

import (
	"strconv"
	"strings"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/vocabulary/xsd"
)

// Numeric is the parsed value of a numeric literal, keeping the original
// lexical form for messages. Integral values keep exact int64 precision;
// comparisons fall back to float64 when either side is fractional.
type Numeric struct {
	Lexical  string
	Integral bool
	Int      int64
	Float    float64
}

// ParseNumeric parses a literal into a Numeric. It returns false when the
// literal's runtime value is not actually numeric, either because its
// datatype is non-numeric or because the lexical form does not parse.
func ParseNumeric(l *rdf2go.Literal) (Numeric, bool) {
	if l == nil || l.Language != "" {
		return Numeric{}, false
	}
	if l.Datatype != nil && !xsd.IsNumeric(l.Datatype.RawValue()) {
		return Numeric{}, false
	}
	lex := strings.TrimSpace(l.Value)
	if i, err := strconv.ParseInt(lex, 10, 64); err == nil {
		return Numeric{Lexical: lex, Integral: true, Int: i, Float: float64(i)}, true
	}
	// Untyped literals must look integral or fractional; anything else is
	// not a number.
	f, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		return Numeric{}, false
	}
	return Numeric{Lexical: lex, Float: f}, true
}

// Compare returns -1, 0, or 1 ordering n against o.
func (n Numeric) Compare(o Numeric) int {
	if n.Integral && o.Integral {
		switch {
		case n.Int < o.Int:
			return -1
		case n.Int > o.Int:
			return 1
		}
		return 0
	}
	switch {
	case n.Float < o.Float:
		return -1
	case n.Float > o.Float:
		return 1
	}
	return 0
}

// String returns the original lexical form.
func (n Numeric) String() string { return n.Lexical }
