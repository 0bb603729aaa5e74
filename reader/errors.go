package reader

import "errors"

// ErrNoShapes is returned when the shapes graph contains no subject that can
// be identified as a shape. This is the only fatal parse condition.
var ErrNoShapes = errors.New("shapes graph contains no shapes")

// ErrListTooDeep marks a value list longer than the configured depth bound.
// It aborts parsing of that constraint only.
var ErrListTooDeep = errors.New("value list exceeds configured depth bound")

// ErrPatternTimeout marks a regular expression whose compilation exceeded
// the configured deadline. The constraint is dropped.
var ErrPatternTimeout = errors.New("pattern compilation exceeded deadline")
