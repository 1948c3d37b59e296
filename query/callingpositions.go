package query

import (
	"fmt"

	"github.com/monument-ringing/monument/bells"
)

// namedCallingPositions are the single-letter calling positions the
// original implementation knows by name, assigned front to back before the
// M/W/H (middle/wrong/home) special cases are applied from the back.
const namedCallingPositions = "LIBFVXSEN"

// DefaultCallingPositions derives the conventional calling-position letters
// for a call with the given place notation on the given stage, following
// the original implementation's default_calling_positions (SPEC_FULL §3,
// spec.md §8 scenario 2) exactly: single-letter names front to back,
// "B"/"T" replacing "I"/"B" at places 2/3 when the call's own place
// notation holds 2nds, then M/W/H assigned from the back (swapped for odd
// stages), falling back to "<n>ths" once the named alphabet runs out.
func DefaultCallingPositions(stage bells.Stage, placeNotation string) ([]string, error) {
	n := int(stage)
	positions := make([]string, n)
	for i := range positions {
		if i < len(namedCallingPositions) {
			positions[i] = string(namedCallingPositions[i])
		} else {
			positions[i] = fmt.Sprintf("%dths", i+1)
		}
	}

	transposition, err := bells.PlaceNotationRow(placeNotation, stage)
	if err != nil {
		return nil, err
	}

	// Edge case: if 2nds are made, I/B at places 2/3 become B/T.
	if transposition.PlaceOf(1) == 1 {
		setPosition(positions, 1, "B")
		setPosition(positions, 2, "T")
	}

	replaceFromEnd := func(fromEnd int, letter string) {
		place := n - 1 - fromEnd
		if place >= 4 {
			setPosition(positions, place, letter)
		}
	}
	if n%2 == 0 {
		replaceFromEnd(2, "M")
		replaceFromEnd(1, "W")
		replaceFromEnd(0, "H")
	} else {
		replaceFromEnd(2, "W")
		replaceFromEnd(1, "M")
		replaceFromEnd(0, "H")
	}

	return positions, nil
}

func setPosition(positions []string, idx int, value string) {
	if idx >= 0 && idx < len(positions) {
		positions[idx] = value
	}
}
