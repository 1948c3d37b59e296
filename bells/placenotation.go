package bells

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadPlaceNotation is returned when a place-notation token cannot be parsed.
var ErrBadPlaceNotation = errors.New("bells: bad place notation")

// tokenToRow converts a single place-notation token ("x", "-", or a digit
// string of places made, e.g. "14") into the Row it transposes by.
//
// A cross ("x"/"-") requires an even stage: every pair of adjacent positions
// swaps. A places token holds the listed (1-indexed) bells fixed and swaps
// every other adjacent pair, scanning left to right — the standard
// place-notation-to-permutation rule.
func tokenToRow(token string, stage Stage) (Row, error) {
	n := int(stage)
	if token == "x" || token == "X" || token == "-" {
		if n%2 != 0 {
			return nil, fmt.Errorf("%w: cross %q on odd stage %d", ErrBadPlaceNotation, token, stage)
		}
		row := make(Row, n)
		for i := 0; i < n; i += 2 {
			row[i], row[i+1] = i+1, i
		}
		return row, nil
	}

	fixed := make([]bool, n)
	for _, r := range token {
		bell, err := symbolToBell(r)
		if err != nil {
			return nil, fmt.Errorf("%w: token %q: %v", ErrBadPlaceNotation, token, err)
		}
		if bell < 0 || bell >= n {
			return nil, fmt.Errorf("%w: place %d out of range for stage %d", ErrBadPlaceNotation, bell+1, stage)
		}
		fixed[bell] = true
	}

	row := make(Row, n)
	for i := 0; i < n; {
		if fixed[i] {
			row[i] = i
			i++
			continue
		}
		if i+1 < n && !fixed[i+1] {
			row[i], row[i+1] = i+1, i
			i += 2
			continue
		}
		// No partner available (e.g. the top bell on an odd stage): it must
		// stay put even though it wasn't named explicitly.
		row[i] = i
		i++
	}
	return row, nil
}

// symbolToBell maps a single bell symbol rune (as used in bellSymbols) to its
// 0-indexed bell number.
func symbolToBell(r rune) (int, error) {
	idx := strings.IndexRune(bellSymbols, r)
	if idx < 0 {
		return 0, fmt.Errorf("unknown bell symbol %q", r)
	}
	return idx, nil
}

// PlaceNotationRow converts a single place-notation token ("x" or a digit
// string of places made, e.g. "14") into the Row it transposes by. Unlike
// ParsePlaceNotation, which expects one token per row of a whole lead, this
// is for call transpositions and other single-token uses (default calling
// positions, call place notation).
func PlaceNotationRow(token string, stage Stage) (Row, error) {
	return tokenToRow(token, stage)
}

// ParsePlaceNotation splits a fully expanded, per-row place notation string
// (tokens separated by '.' or ',') into the sequence of transposition Rows
// it applies, one per row of the lead.
func ParsePlaceNotation(notation string, stage Stage) ([]Row, error) {
	fields := strings.FieldsFunc(notation, func(r rune) bool { return r == '.' || r == ',' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty notation", ErrBadPlaceNotation)
	}
	rows := make([]Row, 0, len(fields))
	for _, f := range fields {
		row, err := tokenToRow(f, stage)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CallingPositionBell returns the 1-indexed place this function assigns to
// the calling-position letters W (n-3), M (n-1) and H (n) on a stage of n
// bells; any other letter is an error. Nothing in this module calls it:
// DefaultCallingPositions in package query assigns M, W and H itself.
func CallingPositionBell(stage Stage, letter byte) (int, error) {
	n := int(stage)
	switch letter {
	case 'W':
		if n < 4 {
			return 0, fmt.Errorf("%w: W undefined below stage 4", ErrBadPlaceNotation)
		}
		return n - 3, nil
	case 'M':
		if n < 2 {
			return 0, fmt.Errorf("%w: M undefined below stage 2", ErrBadPlaceNotation)
		}
		return n - 1, nil
	case 'H':
		return n, nil
	default:
		return 0, fmt.Errorf("%w: unknown calling position %q", ErrBadPlaceNotation, letter)
	}
}
