package reader

import (
	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semshape/vocabulary/rdfvoc"
	"github.com/c360studio/semshape/vocabulary/shacl"
)

// Pre-built query terms for the vocabulary subset the reader understands.
var (
	termType  = rdf2go.NewResource(rdfvoc.Type)
	termFirst = rdf2go.NewResource(rdfvoc.First)
	termRest  = rdf2go.NewResource(rdfvoc.Rest)
	termNil   = rdf2go.NewResource(rdfvoc.Nil)

	termNodeShape     = rdf2go.NewResource(shacl.NodeShape)
	termPropertyShape = rdf2go.NewResource(shacl.PropertyShape)
	termProperty      = rdf2go.NewResource(shacl.Property)
	termPath          = rdf2go.NewResource(shacl.Path)

	termTargetClass      = rdf2go.NewResource(shacl.TargetClass)
	termTargetNode       = rdf2go.NewResource(shacl.TargetNode)
	termTargetSubjectsOf = rdf2go.NewResource(shacl.TargetSubjectsOf)
	termTargetObjectsOf  = rdf2go.NewResource(shacl.TargetObjectsOf)

	termMinCount     = rdf2go.NewResource(shacl.MinCount)
	termMaxCount     = rdf2go.NewResource(shacl.MaxCount)
	termDatatype     = rdf2go.NewResource(shacl.Datatype)
	termClass        = rdf2go.NewResource(shacl.Class)
	termPattern      = rdf2go.NewResource(shacl.Pattern)
	termMinLength    = rdf2go.NewResource(shacl.MinLength)
	termIn           = rdf2go.NewResource(shacl.In)
	termHasValue     = rdf2go.NewResource(shacl.HasValue)
	termMinInclusive = rdf2go.NewResource(shacl.MinInclusive)
	termMaxInclusive = rdf2go.NewResource(shacl.MaxInclusive)

	termQualifiedValueShape = rdf2go.NewResource(shacl.QualifiedValueShape)
	termQualifiedMinCount   = rdf2go.NewResource(shacl.QualifiedMinCount)
	termQualifiedMaxCount   = rdf2go.NewResource(shacl.QualifiedMaxCount)

	termSeverity = rdf2go.NewResource(shacl.SeverityProp)
	termMessage  = rdf2go.NewResource(shacl.Message)
)
