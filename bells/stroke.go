package bells

// Stroke is which half of a whole pull a row is rung at: handstroke (odd rows,
// 1-indexed from rounds) or backstroke (even rows). Stroke-specific music
// patterns (spec.md §4.2 "Stroke consistency") only score rows at one of the
// two.
type Stroke uint8

const (
	// Hand is handstroke.
	Hand Stroke = iota
	// Back is backstroke.
	Back
)

func (s Stroke) String() string {
	if s == Back {
		return "back"
	}
	return "hand"
}

// Other returns the opposite stroke.
func (s Stroke) Other() Stroke {
	if s == Hand {
		return Back
	}
	return Hand
}

// StrokeAt returns the stroke of the row at 0-indexed position idx after a
// block that opened at startStroke (position 0 rings at startStroke, position
// 1 at its opposite, and so on).
func StrokeAt(startStroke Stroke, idx int) Stroke {
	if idx%2 == 0 {
		return startStroke
	}
	return startStroke.Other()
}
