package music

import (
	"fmt"
	"regexp"

	"github.com/monument-ringing/monument/bells"
)

// Pattern is one music pattern: a regular expression matched against a row's
// bell-symbol string (bells.Row.Key()), e.g. "^65" for "65 at the front" on
// Major, or ".*8$" for "8 at the back". This stands in for the dedicated
// pattern-matching engine spec.md §1 names as out of scope.
type Pattern struct {
	raw *regexp.Regexp
	src string
}

// NewPattern compiles a music pattern. The pattern is an ordinary RE2
// expression over the bell-symbol alphabet (see bells.Row.Key); anchors
// (^/$) behave as usual over the fixed-length row string.
func NewPattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("music: bad pattern %q: %w", expr, err)
	}
	return Pattern{raw: re, src: expr}, nil
}

// MustPattern is NewPattern but panics on a bad expression; for call sites
// building patterns from compile-time constants.
func MustPattern(expr string) Pattern {
	p, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pattern's source expression.
func (p Pattern) String() string { return p.src }

// Match reports whether row satisfies the pattern.
func (p Pattern) Match(row bells.Row) bool {
	return p.raw.MatchString(string(row.Key()))
}
