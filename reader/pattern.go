package reader

import (
	"fmt"
	"regexp"
	"time"

	"github.com/c360studio/semshape/shape"
)

// compileRegexp is a seam for tests that need to exercise the deadline path;
// production code always compiles with the standard library's linear-time
// engine.
var compileRegexp = regexp.Compile

// compilePattern admits a pattern constraint: the source must fit the byte
// bound, and compilation must finish inside the configured deadline. The
// compile runs on its own goroutine so an overrun abandons only that unit of
// work; the goroutine's eventual result is discarded.
func (r *Reader) compilePattern(src string) (*shape.Pattern, error) {
	if len(src) > r.opts.MaxPatternLength {
		return nil, fmt.Errorf("pattern length %d exceeds limit %d", len(src), r.opts.MaxPatternLength)
	}
	if p, ok := r.patterns[src]; ok {
		return p, nil
	}

	type outcome struct {
		re  *regexp.Regexp
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		re, err := compileRegexp(src)
		done <- outcome{re: re, err: err}
	}()

	timer := time.NewTimer(r.opts.PatternTimeout)
	defer timer.Stop()

	select {
	case out := <-done:
		if out.err != nil {
			return nil, fmt.Errorf("compile pattern: %w", out.err)
		}
		p := &shape.Pattern{Source: src, Regexp: out.re}
		r.patterns[src] = p
		return p, nil
	case <-timer.C:
		return nil, ErrPatternTimeout
	}
}
