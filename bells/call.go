package bells

// Call specifies a local modification of the place notation at a labelled
// point in a lead (normally the lead end): what it transposes by, how it is
// displayed, and its search weight.
type Call struct {
	Symbol      string // short display symbol, e.g. "B" for a bob
	DebugSymbol string // unambiguous symbol used in diagnostics
	LabelFrom   string // label this call attaches from, usually "LE"
	LabelTo     string // label it attaches to, usually "LE"

	Transposition Row // place-notation transposition applied at the label

	// CallingPositions gives, per place (1-indexed bell position the call
	// lands on), the calling-position string announced for it.
	CallingPositions []string

	// Weight is added to a chunk's score when the chunk ends with this call;
	// conventionally negative (a calling cost), per spec.md §3.
	Weight float32
}

// BaseCalls returns a "near" bob and single for the given stage, both
// attached from and to "LE" with weight -1: the bob's place notation names
// places (n-2, n-1, n); the single's names place n-2 alone, so the last two
// bells swap. The Near calls preset named in spec.md §6.
func BaseCalls(stage Stage) ([]Call, error) {
	n := int(stage)
	if n < 3 {
		return nil, ErrBadPlaceNotation
	}
	bobNotation := placesString(n-2, n-1, n)
	bob, err := tokenToRow(bobNotation, stage)
	if err != nil {
		return nil, err
	}
	singleNotation := placesString(n - 2)
	single, err := tokenToRow(singleNotation, stage)
	if err != nil {
		return nil, err
	}

	return []Call{
		{
			Symbol: "-", DebugSymbol: "bob",
			LabelFrom: "LE", LabelTo: "LE",
			Transposition: bob,
			Weight:        -1,
		},
		{
			Symbol: "s", DebugSymbol: "single",
			LabelFrom: "LE", LabelTo: "LE",
			Transposition: single,
			Weight:        -1,
		},
	}, nil
}

func placesString(bells ...int) string {
	out := make([]byte, 0, len(bells))
	for _, b := range bells {
		if b-1 >= 0 && b-1 < len(bellSymbols) {
			out = append(out, bellSymbols[b-1])
		}
	}
	return string(out)
}
