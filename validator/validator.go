package validator

import (
	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/report"
	"github.com/c360studio/semshape/shape"
)

// Env carries run-scoped validation settings shared by all components.
type Env struct {
	// SubclassClosure makes class constraints honor transitive
	// rdfs:subClassOf relations. Off by default: exact rdf:type match.
	SubclassClosure bool
}

// Func checks one constraint family for a (focus node, shape) pair. An empty
// result slice means the pair conforms to that family.
type Func func(g graph.Reader, focus rdf2go.Term, s *shape.Shape, env *Env) []report.Result

// Component is one entry of the fixed dispatch table.
type Component struct {
	Name    string
	Applies func(c *shape.ConstraintSet) bool
	Check   Func
}

// components is the closed dispatch table. Adding a constraint kind means
// adding exactly one entry here. Assigned in init because the qualified
// entry reaches Validate through conforms, which a composite literal
// initializer would turn into an initialization cycle.
var components []Component

func init() {
	components = []Component{
		{
			Name:    "cardinality",
			Applies: func(c *shape.ConstraintSet) bool { return c.MinCount != nil || c.MaxCount != nil },
			Check:   checkCardinality,
		},
		{
			Name:    "type",
			Applies: func(c *shape.ConstraintSet) bool { return c.Datatype != nil || c.Class != nil },
			Check:   checkType,
		},
		{
			Name:    "string",
			Applies: func(c *shape.ConstraintSet) bool { return c.Pattern != nil || c.MinLength != nil },
			Check:   checkString,
		},
		{
			Name: "value",
			Applies: func(c *shape.ConstraintSet) bool {
				return len(c.In) > 0 || c.HasValue != nil || c.MinInclusive != nil || c.MaxInclusive != nil
			},
			Check: checkValue,
		},
		{
			Name:    "qualified",
			Applies: func(c *shape.ConstraintSet) bool { return c.Qualified != nil },
			Check:   checkQualified,
		},
	}
}

// Components returns the dispatch table.
func Components() []Component { return components }

// Validate runs every applicable component for the pair and collects all
// results.
func Validate(g graph.Reader, focus rdf2go.Term, s *shape.Shape, env *Env) []report.Result {
	if env == nil {
		env = &Env{}
	}
	var out []report.Result
	for _, c := range components {
		if !c.Applies(&s.Constraints) {
			continue
		}
		out = append(out, c.Check(g, focus, s, env)...)
	}
	return out
}

// valueNodes returns the nodes a shape's constraints apply to: the values of
// the path for a property shape, or the focus node itself for a node shape.
func valueNodes(g graph.Reader, focus rdf2go.Term, s *shape.Shape) []rdf2go.Term {
	if s.Path != nil {
		return g.Objects(focus, s.Path)
	}
	return []rdf2go.Term{focus}
}

// conforms reports whether node satisfies every constraint of nested,
// including its child property shapes. Used by the qualified component.
func conforms(g graph.Reader, node rdf2go.Term, nested *shape.Shape, env *Env) bool {
	if len(Validate(g, node, nested, env)) > 0 {
		return false
	}
	for _, p := range nested.Properties {
		if len(Validate(g, node, p, env)) > 0 {
			return false
		}
	}
	return true
}

// newResult builds a result carrying the shape's severity and, when the
// shape declares sh:message, that message instead of the generated one.
func newResult(s *shape.Shape, focus rdf2go.Term, component, message string, details map[string]string) report.Result {
	if s.Message != "" {
		message = s.Message
	}
	return report.Result{
		Severity:  s.Severity,
		FocusNode: focus,
		ShapeID:   s.ID,
		Path:      s.Path,
		Component: component,
		Message:   message,
		Details:   details,
	}
}
