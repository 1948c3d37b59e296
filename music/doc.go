// Package music is a thin adapter over row pattern matching: scoring chunks
// by how many of their rows match a configured set of music patterns.
//
// The spec (spec.md §1) calls out "music-pattern matching primitives
// (regex/pattern engine over rows)" as an out-of-scope external
// collaborator — a production build would depend on a dedicated pattern
// engine supporting the full bell-music grammar (wildcards, runs,
// reverses). This package stands in for that collaborator with the
// smallest adapter that can still exercise the rest of the engine: a
// Pattern wraps a standard-library regexp matched against a Row's bell-symbol
// string (bells.Row.Key()), the same way Aman-CERP/amanmcp's
// internal/search.PatternClassifier matches free text — rows just happen to
// be drawn from a small, fixed alphabet instead of English.
package music
