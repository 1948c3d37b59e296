package music

import "github.com/monument-ringing/monument/bells"

// Type is one configured music type: a set of patterns, the weight each
// match contributes to a chunk's score, and the constraints spec.md §6
// attaches to it (count_range, non_duffer, stroke_set).
//
// A Weight of zero is a legal, display-only music type (spec.md's original
// distinguishes "show" patterns from scoring ones; SPEC_FULL §3 folds that
// into the existing Weight field rather than adding new surface).
type Type struct {
	Name     string
	Patterns []Pattern
	Weight   float32

	// CountMin/CountMax bound the total number of matches this type may
	// contribute across a whole composition; zero CountMax means unbounded.
	CountMin, CountMax int

	// NonDuffer marks a type whose matches count as "interesting" — a chunk
	// contributing zero rows across every non-duffer type is a duffer
	// (spec.md §3 Chunk.duffer).
	NonDuffer bool

	// Strokes restricts matching to the given set of strokes; nil/empty
	// means both strokes count.
	Strokes []bells.Stroke
}

// appliesAt reports whether t should be checked at the given stroke.
func (t Type) appliesAt(s bells.Stroke) bool {
	if len(t.Strokes) == 0 {
		return true
	}
	for _, want := range t.Strokes {
		if want == s {
			return true
		}
	}
	return false
}

// StrokeSpecific reports whether t only scores at particular strokes — the
// flag graph.Build uses to reject odd-length chunks (spec.md §4.2).
func (t Type) StrokeSpecific() bool {
	return len(t.Strokes) > 0 && len(t.Strokes) < 2
}

// Contribution is one music type's contribution to a span of rows: total
// score and, for diagnostics/output, a per-pattern match count.
type Contribution struct {
	Score          float32
	Counts         []int
	StrokeSpecific bool
}

// ScoreRows totals each type's contribution across rows, which must be given
// in ringing order starting at startStroke. It is called once per chunk, per
// part (spec.md §4.2 "music breakdown by iterating rows of each part's
// course head"); callers sum per-part contributions themselves.
func ScoreRows(types []Type, rows []bells.Row, startStroke bells.Stroke) []Contribution {
	out := make([]Contribution, len(types))
	for ti, t := range types {
		counts := make([]int, len(t.Patterns))
		var score float32
		for ri, row := range rows {
			stroke := bells.StrokeAt(startStroke, ri)
			if !t.appliesAt(stroke) {
				continue
			}
			for pi, p := range t.Patterns {
				if p.Match(row) {
					counts[pi]++
					score += t.Weight
				}
			}
		}
		out[ti] = Contribution{Score: score, Counts: counts, StrokeSpecific: t.StrokeSpecific()}
	}
	return out
}
