package reader

import (
	"log/slog"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/shape"
)

// parseConstraints extracts every constraint parameter present on the
// subject. Each parameter is vetted independently: a value of the wrong term
// kind, an oversized or non-compiling pattern, or an over-deep list drops
// just that parameter with a warning.
func (r *Reader) parseConstraints(g graph.Reader, id rdf2go.Term, depth int) shape.ConstraintSet {
	var cs shape.ConstraintSet

	cs.MinCount = r.extractCount(g, id, termMinCount, "sh:minCount")
	cs.MaxCount = r.extractCount(g, id, termMaxCount, "sh:maxCount")
	cs.Datatype = r.extractIRI(g, id, termDatatype, "sh:datatype")
	cs.Class = r.extractIRI(g, id, termClass, "sh:class")

	if lit := r.extractLiteral(g, id, termPattern, "sh:pattern"); lit != nil {
		p, err := r.compilePattern(lit.Value)
		if err != nil {
			r.log.Warn("dropping sh:pattern constraint",
				slog.String("shape", id.RawValue()),
				slog.String("error", err.Error()))
		} else {
			cs.Pattern = p
		}
	}

	cs.MinLength = r.extractCount(g, id, termMinLength, "sh:minLength")

	if head := g.One(id, termIn); head != nil {
		values, err := walkList(g, head, r.opts.MaxListDepth)
		if err != nil {
			r.log.Warn("dropping sh:in constraint",
				slog.String("shape", id.RawValue()),
				slog.String("error", err.Error()))
		} else {
			cs.In = values
		}
	}

	cs.HasValue = g.One(id, termHasValue)
	cs.MinInclusive = r.extractNumeric(g, id, termMinInclusive, "sh:minInclusive")
	cs.MaxInclusive = r.extractNumeric(g, id, termMaxInclusive, "sh:maxInclusive")
	cs.Qualified = r.parseQualified(g, id, depth)

	return cs
}

// parseQualified extracts a qualified-value-shape constraint, parsing the
// nested shape with a recursion bound so cyclic references terminate.
func (r *Reader) parseQualified(g graph.Reader, id rdf2go.Term, depth int) *shape.Qualified {
	ref := g.One(id, termQualifiedValueShape)
	if ref == nil {
		return nil
	}
	if depth >= maxQualifiedDepth {
		r.log.Warn("dropping sh:qualifiedValueShape: nesting exceeds bound",
			slog.String("shape", id.RawValue()),
			slog.Int("depth", depth))
		return nil
	}

	nested := r.parseShapeAt(g, ref, depth+1)
	if nested == nil {
		return nil
	}
	return &shape.Qualified{
		Shape:    nested,
		MinCount: r.extractCount(g, id, termQualifiedMinCount, "sh:qualifiedMinCount"),
		MaxCount: r.extractCount(g, id, termQualifiedMaxCount, "sh:qualifiedMaxCount"),
	}
}

// extractCount admits a literal whose runtime value is a non-negative
// integer.
func (r *Reader) extractCount(g graph.Reader, id, pred rdf2go.Term, name string) *int {
	term := g.One(id, pred)
	if term == nil {
		return nil
	}
	lit, ok := graph.AsLiteral(term)
	if !ok {
		r.warnDrop(id, name, "value is not a literal")
		return nil
	}
	n, ok := shape.ParseNumeric(lit)
	if !ok || !n.Integral || n.Int < 0 {
		r.warnDrop(id, name, "value is not a non-negative integer")
		return nil
	}
	v := int(n.Int)
	return &v
}

// extractIRI admits an IRI-valued parameter.
func (r *Reader) extractIRI(g graph.Reader, id, pred rdf2go.Term, name string) rdf2go.Term {
	term := g.One(id, pred)
	if term == nil {
		return nil
	}
	if _, ok := graph.AsIRI(term); !ok {
		r.warnDrop(id, name, "value is not an IRI")
		return nil
	}
	return term
}

// extractLiteral admits a literal-valued parameter.
func (r *Reader) extractLiteral(g graph.Reader, id, pred rdf2go.Term, name string) *rdf2go.Literal {
	term := g.One(id, pred)
	if term == nil {
		return nil
	}
	lit, ok := graph.AsLiteral(term)
	if !ok {
		r.warnDrop(id, name, "value is not a literal")
		return nil
	}
	return lit
}

// extractNumeric admits a literal whose runtime value is numeric.
func (r *Reader) extractNumeric(g graph.Reader, id, pred rdf2go.Term, name string) *shape.Numeric {
	lit := r.extractLiteral(g, id, pred, name)
	if lit == nil {
		return nil
	}
	n, ok := shape.ParseNumeric(lit)
	if !ok {
		r.warnDrop(id, name, "value is not numeric")
		return nil
	}
	return &n
}

func (r *Reader) warnDrop(id rdf2go.Term, name, reason string) {
	r.log.Warn("dropping constraint",
		slog.String("shape", id.RawValue()),
		slog.String("constraint", name),
		slog.String("reason", reason))
}
