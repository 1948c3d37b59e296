package compose

import (
	"github.com/monument-ringing/monument/bells"
	"github.com/monument-ringing/monument/partgroup"
)

// BuildRows regenerates the exact row sequence of one part of comp —
// spec.md §4.5: "copying the corresponding sub-range of the method's
// plain course" for every path element. Each element's own course head is
// recovered from its already-resolved StartRow (courseHead =
// StartRow.Mul(RowAt(StartSubLeadIdx).Inverse())) rather than threaded
// through separately; a call's effect is already folded into the next
// element's course head by the time Reconstruct built it, so no
// call-specific adjustment is needed here.
func BuildRows(methods []*bells.Method, comp *Composition) []bells.Row {
	var rows []bells.Row
	for _, elem := range comp.Path {
		method := methods[elem.Method]
		courseHead := elem.StartRow.MustMul(method.RowAt(elem.StartSubLeadIdx).Inverse())
		for r := 0; r < elem.PerPartLength; r++ {
			rows = append(rows, courseHead.MustMul(method.RowAt(elem.StartSubLeadIdx+r)))
		}
	}
	return rows
}

// ExtendParts copy-extends one part's rows to the full parts count —
// spec.md §4.5's "copy-extend to the full parts count" — by transposing
// the part's rows under every rotation of group in turn.
func ExtendParts(rows []bells.Row, group *partgroup.Group) []bells.Row {
	out := make([]bells.Row, 0, len(rows)*group.Size())
	for p := 0; p < group.Size(); p++ {
		partHead := group.Row(partgroup.Rotation(p))
		for _, r := range rows {
			out = append(out, partHead.MustMul(r))
		}
	}
	return out
}
