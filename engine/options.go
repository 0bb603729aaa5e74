package engine

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/c360studio/semshape/reader"
)

// Options configures one Engine. The zero value of every field falls back
// to its default; there is no implicit global state.
type Options struct {
	// MaxPatternLength bounds pattern constraint sources, in bytes.
	MaxPatternLength int
	// PatternTimeout bounds the wall-clock time compiling one pattern.
	PatternTimeout time.Duration
	// MaxListDepth bounds sh:in list traversal.
	MaxListDepth int
	// Parallelism is the validation worker pool width. Defaults to the
	// logical core count.
	Parallelism int
	// FailFast stops scheduling new units after the first violation and
	// returns a truncated report.
	FailFast bool
	// Deadline, when positive, bounds the whole run; units not yet scheduled
	// when it expires are skipped and the report is flagged truncated.
	Deadline time.Duration
	// SubclassClosure makes class constraints honor transitive
	// rdfs:subClassOf relations. Off by default.
	SubclassClosure bool
	// Logger receives parse warnings and unit failures. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxPatternLength: reader.DefaultMaxPatternLength,
		PatternTimeout:   reader.DefaultPatternTimeout,
		MaxListDepth:     reader.DefaultMaxListDepth,
		Parallelism:      runtime.NumCPU(),
	}
}

func (o Options) withDefaults() Options {
	if o.MaxPatternLength <= 0 {
		o.MaxPatternLength = reader.DefaultMaxPatternLength
	}
	if o.PatternTimeout <= 0 {
		o.PatternTimeout = reader.DefaultPatternTimeout
	}
	if o.MaxListDepth <= 0 {
		o.MaxListDepth = reader.DefaultMaxListDepth
	}
	if o.Parallelism <= 0 {
		o.Parallelism = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
