package query

import (
	"github.com/monument-ringing/monument/bells"
	"github.com/monument-ringing/monument/partgroup"
)

// Validate checks q against the rejection rules of spec.md §7 that can be
// decided without building the search graph: empty method list, duplicate
// shorthands, calls referencing nonexistent labels, insufficient calling
// positions for the stage, and a multi-part query whose start and end rows
// differ (a part head g != identity can never reconcile StartRow with a
// different EndRow, since every part must start and finish the same way).
func (q *Query) Validate() error {
	if len(q.Methods) == 0 {
		return validationErr(ErrNoMethods, "methods")
	}

	if err := q.validateShorthands(); err != nil {
		return err
	}

	group, err := partgroup.NewGroup(q.PartHead)
	if err != nil {
		return err
	}
	if group.Size() > 1 && !q.StartRow.Equal(q.EndRow) {
		return validationErr(ErrDifferentStartEndRowInMultipart, "start_row/end_row")
	}

	if err := q.validateCallLabels(); err != nil {
		return err
	}
	if err := q.validateCallingPositions(); err != nil {
		return err
	}
	return nil
}

func (q *Query) validateShorthands() error {
	seen := make(map[string]bool, len(q.Methods))
	for _, m := range q.Methods {
		if seen[m.Shorthand] {
			return validationErr(ErrDuplicateShorthand, m.Shorthand)
		}
		seen[m.Shorthand] = true
	}
	return nil
}

func (q *Query) validateCallLabels() error {
	labels := make(map[string]bool)
	for _, m := range q.Methods {
		ml := m.LeadLabels
		if len(ml) == 0 {
			ml = []string{"LE"}
		}
		for _, l := range ml {
			labels[l] = true
		}
	}
	for _, c := range q.Calls {
		if !labels[c.LabelFrom] {
			return validationErr(ErrUndefinedLabel, c.LabelFrom)
		}
		if !labels[c.LabelTo] {
			return validationErr(ErrUndefinedLabel, c.LabelTo)
		}
	}
	return nil
}

func (q *Query) validateCallingPositions() error {
	n := int(q.Stage)
	for _, c := range q.Calls {
		if len(c.CallingPositions) == 0 {
			continue // derived lazily by Resolve via DefaultCallingPositions
		}
		if len(c.CallingPositions) != n {
			return validationErr(ErrWrongCallingPositionsLength, c.Symbol)
		}
	}
	return nil
}

// ResolvedMethod pairs a MethodSpec with its compiled bells.Method.
type ResolvedMethod struct {
	Spec   MethodSpec
	Method *bells.Method
}

// ResolvedCall pairs a CallSpec with its compiled bells.Call, including any
// lazily-derived default calling positions.
type ResolvedCall struct {
	Spec CallSpec
	Call bells.Call
}

// Resolved is the bells-level compilation of a validated Query: every method
// and call has its generated rows/transposition ready for the graph builder.
type Resolved struct {
	Query   *Query
	Group   *partgroup.Group
	Methods []ResolvedMethod
	Calls   []ResolvedCall
}

// Resolve validates q and compiles every method and call into its bells
// representation. It is the single entry point package graph's Layout
// implementation (see layout.go) is built from.
func Resolve(q *Query) (*Resolved, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	group, err := partgroup.NewGroup(q.PartHead)
	if err != nil {
		return nil, err
	}

	methods := make([]ResolvedMethod, len(q.Methods))
	for i, spec := range q.Methods {
		m, err := bells.NewMethod(spec.Title, spec.Shorthand, spec.PlaceNotation, q.Stage)
		if err != nil {
			return nil, err
		}
		methods[i] = ResolvedMethod{Spec: spec, Method: m}
	}

	calls := make([]ResolvedCall, len(q.Calls))
	for i, spec := range q.Calls {
		transposition, err := bells.PlaceNotationRow(spec.PlaceNotation, q.Stage)
		if err != nil {
			return nil, err
		}
		positions := spec.CallingPositions
		if len(positions) == 0 {
			positions, err = DefaultCallingPositions(q.Stage, spec.PlaceNotation)
			if err != nil {
				return nil, err
			}
		}
		calls[i] = ResolvedCall{
			Spec: spec,
			Call: bells.Call{
				Symbol:           spec.Symbol,
				DebugSymbol:      spec.DebugSymbol,
				LabelFrom:        spec.LabelFrom,
				LabelTo:          spec.LabelTo,
				Transposition:    transposition,
				CallingPositions: positions,
				Weight:           spec.Weight,
			},
		}
	}

	return &Resolved{Query: q, Group: group, Methods: methods, Calls: calls}, nil
}
