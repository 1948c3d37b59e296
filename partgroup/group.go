package partgroup

import (
	"errors"
	"fmt"

	"github.com/monument-ringing/monument/bells"
)

// ErrNotFinite is returned when repeated multiplication of a part head
// against itself fails to recur to rounds within maxOrder steps — almost
// always a part head that is not actually a valid group generator for the
// ringing's stage.
var ErrNotFinite = errors.New("partgroup: part head does not generate a finite group")

const maxOrder = 10000

// Rotation is an element of G, represented as its index into Group.rows
// (0 is always identity).
type Rotation int

// Group is the cyclic group generated by a composition's part head.
type Group struct {
	rows  []bells.Row // rows[r] is the Row for Rotation r
	index map[bells.RowKey]Rotation
}

// NewGroup computes the closure of partHead: rows[0] = rounds,
// rows[i] = rows[i-1].Mul(partHead), until rounds recurs.
func NewGroup(partHead bells.Row) (*Group, error) {
	rounds := bells.Rounds(partHead.Stage())
	rows := []bells.Row{rounds}
	index := map[bells.RowKey]Rotation{rounds.Key(): 0}

	cur := rounds
	for i := 1; i < maxOrder; i++ {
		cur = cur.MustMul(partHead)
		if cur.IsRounds() {
			return &Group{rows: rows, index: index}, nil
		}
		if _, dup := index[cur.Key()]; dup {
			// partHead isn't a clean generator (it revisits a non-identity
			// row before returning to rounds); reject rather than loop.
			return nil, fmt.Errorf("%w: part head cycles without recurring to rounds", ErrNotFinite)
		}
		index[cur.Key()] = Rotation(len(rows))
		rows = append(rows, cur)
	}
	return nil, fmt.Errorf("%w: after %d parts", ErrNotFinite, maxOrder)
}

// Size is |G|, the number of parts a composition in this group has.
func (g *Group) Size() int { return len(g.rows) }

// Row returns the Row represented by rotation r (mod |G|).
func (g *Group) Row(r Rotation) bells.Row {
	return g.rows[g.normalize(r)]
}

// Mul composes two rotations: Row(a.Mul(b)) == Row(a).Mul(Row(b)).
func (g *Group) Mul(a, b Rotation) Rotation {
	row := g.Row(a).MustMul(g.Row(b))
	r, ok := g.index[row.Key()]
	if !ok {
		// Can only happen if the caller passes a rotation from a different
		// group; out of scope for a well-formed Monument query.
		panic("partgroup: rotation product outside group")
	}
	return r
}

// Inverse returns -r mod |G|, satisfying Mul(r, Inverse(r)) == 0.
func (g *Group) Inverse(r Rotation) Rotation {
	return g.normalize(Rotation(len(g.rows)) - g.normalize(r))
}

func (g *Group) normalize(r Rotation) Rotation {
	n := Rotation(len(g.rows))
	r %= n
	if r < 0 {
		r += n
	}
	return r
}

// Canonicalize returns the lexicographically smallest row of row's orbit
// under G (row' = g.Row(rot).Mul(row) over every rotation) together with
// the rotation that produced it: canonical == g.Row(rotation).Mul(row).
//
// Two course heads c, c' are equivalent iff c' = g·c for some g∈G
// (spec.md §3); Canonicalize lets the graph builder use one map key per
// orbit while still recovering which group element was actually reached.
func (g *Group) Canonicalize(row bells.Row) (canonical bells.Row, rotation Rotation) {
	canonical = row
	rotation = 0
	for r := Rotation(1); r < Rotation(len(g.rows)); r++ {
		candidate := g.Row(r).MustMul(row)
		if rowLess(candidate, canonical) {
			canonical = candidate
			rotation = r
		}
	}
	return canonical, rotation
}

func rowLess(a, b bells.Row) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
