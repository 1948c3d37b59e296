package falseness

import (
	"github.com/monument-ringing/monument/bells"
)

// RowRange identifies one full lead of one method — the unit falseness is
// computed over, since Monument's chunks never split a lead (spec.md §4.1).
type RowRange struct {
	Method int
}

// Link is one falseness relation: a chunk covering Range at course head c is
// false against a chunk covering Range at course head c.Mul(T) — spec.md
// §4.1's "(R2, t)" pair, with t = r2⁻¹·r1 for the colliding rows.
type Link struct {
	Range RowRange
	T     bells.Row
}

// Entry is one RowRange's falseness data: either the range is false against
// itself (SelfFalse, meaning the method's own lead repeats a row — methods
// are rejected before reaching this point in ordinary use) or a list of
// Links to other ranges.
type Entry struct {
	SelfFalse bool
	Links     []Link
}

// Table maps a RowRange to its Entry.
type Table struct {
	entries map[RowRange]Entry
}

// Lookup returns r's Entry, or a zero Entry (no falseness at all) if r was
// never registered — ranges with no colliding rows are simply absent.
func (t *Table) Lookup(r RowRange) Entry {
	return t.entries[r]
}

// Build computes the falseness table for a set of methods, whose leads are
// relative to a course head of rounds. Candidate transpositions are limited
// to those preserving every bell fixed by every method's lead end and by the
// part head (spec.md §4.1's "fixed-bell partitioning" rationale): without
// that restriction the enumeration is quadratic in plain-course length and
// intractable, since every row of every lead would need comparing against
// every row of every other lead regardless of whether the course heads that
// would make them coincide are even reachable.
func Build(methods []*bells.Method, partHead bells.Row) (*Table, error) {
	stage := partHead.Stage()
	fixed := fixedBells(methods, partHead, stage)

	t := &Table{entries: make(map[RowRange]Entry)}
	for i, mi := range methods {
		for j := i; j < len(methods); j++ {
			mj := methods[j]
			links, selfFalse := collide(mi, mj, i == j, fixed)
			if selfFalse {
				t.entries[RowRange{Method: i}] = Entry{SelfFalse: true}
				if i != j {
					t.entries[RowRange{Method: j}] = Entry{SelfFalse: true}
				}
				continue
			}
			if len(links) == 0 {
				continue
			}
			t.addLinks(RowRange{Method: i}, RowRange{Method: j}, links)
		}
	}
	return t, nil
}

// collide enumerates, for every pair of rows (one from mi's lead, one from
// mj's lead) whose bells fixed by `fixed` agree, the transposition
// t = r2⁻¹·r1 relating them (spec.md §4.1). When mi==mj, the trivial i==j
// self-pair is skipped; a pair i != j within the same method's own lead
// that yields t == rounds means the lead itself repeats a row, which
// collapses the range to SelfFalse. Any other t from such a pair is kept as
// an ordinary link back to the same range.
func collide(mi, mj *bells.Method, same bool, fixed []bool) (links []Link, selfFalse bool) {
	seen := make(map[bells.RowKey]bells.Row)
	for i := 0; i < mi.LeadLen(); i++ {
		r1 := mi.RowAt(i)
		if !matchesFixed(r1, fixed) {
			continue
		}
		for j := 0; j < mj.LeadLen(); j++ {
			if same && i == j {
				continue
			}
			r2 := mj.RowAt(j)
			if !matchesFixed(r2, fixed) {
				continue
			}
			t := r2.Inverse().MustMul(r1)
			if same && t.IsRounds() {
				selfFalse = true
				continue
			}
			if _, ok := seen[t.Key()]; ok {
				continue
			}
			seen[t.Key()] = t
		}
	}
	if selfFalse {
		return nil, true
	}
	for _, t := range seen {
		links = append(links, Link{T: t})
	}
	return links, false
}

func (t *Table) addLinks(r1, r2 RowRange, links []Link) {
	e1 := t.entries[r1]
	if r1 == r2 {
		for _, l := range links {
			e1.Links = append(e1.Links, Link{Range: r2, T: l.T})
			e1.Links = append(e1.Links, Link{Range: r1, T: l.T.Inverse()})
		}
		t.entries[r1] = e1
		return
	}

	e2 := t.entries[r2]
	for _, l := range links {
		e1.Links = append(e1.Links, Link{Range: r2, T: l.T})
		e2.Links = append(e2.Links, Link{Range: r1, T: l.T.Inverse()})
	}
	t.entries[r1] = e1
	t.entries[r2] = e2
}

// matchesFixed reports whether row places every fixed bell at its own
// position (the coarse filter that keeps the enumeration tractable).
func matchesFixed(row bells.Row, fixed []bool) bool {
	for bell, isFixed := range fixed {
		if isFixed && row.PlaceOf(bell) != bell {
			return false
		}
	}
	return true
}

// fixedBells returns, for each bell, whether it is fixed by every method's
// lead-end permutation and by the part head — the bells that never move
// between any two course heads reachable in this query.
func fixedBells(methods []*bells.Method, partHead bells.Row, stage bells.Stage) []bool {
	fixed := make([]bool, int(stage))
	for b := range fixed {
		fixed[b] = true
	}
	mark := func(perm bells.Row) {
		for b := range fixed {
			if perm.PlaceOf(b) != b {
				fixed[b] = false
			}
		}
	}
	mark(partHead)
	for _, m := range methods {
		mark(m.LeadEnd)
	}
	return fixed
}
