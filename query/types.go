package query

import (
	"github.com/monument-ringing/monument/bells"
	"github.com/monument-ringing/monument/music"
)

// SpliceStyle controls how method-shorthand labels are attached when a
// composition changes method, for display in the reconstructed call string
// (spec.md §6).
type SpliceStyle uint8

const (
	// LeadLabels shows a shorthand at every lead, spliced or not.
	LeadLabels SpliceStyle = iota
	// CallLocations shows a shorthand only where a call also falls.
	CallLocations
	// Calls shows a shorthand only alongside an actual call symbol.
	Calls
)

// LengthRange is an inclusive [Min, Max] row-count bound.
type LengthRange struct {
	Min, Max int
}

// Contains reports whether length falls within the range, inclusive.
func (r LengthRange) Contains(length int) bool {
	return length >= r.Min && length <= r.Max
}

// CountRange is an inclusive [Min, Max] bound on a per-method or per-music-
// type count; a zero Max means unbounded.
type CountRange struct {
	Min, Max int
}

// Unbounded reports whether r places no upper bound.
func (r CountRange) Unbounded() bool { return r.Max <= 0 }

// MethodSpec is one method entry in a query: its place notation (or a title
// to resolve via the out-of-scope method library — left to the caller,
// spec.md §1), shorthand, which sub-lead indices may start/end a chunk, and
// its permitted row-count range.
type MethodSpec struct {
	Title         string
	Shorthand     string
	PlaceNotation string

	// StartIndices names the sub-lead indices (within the method's lead)
	// at which a composition may start; empty means "lead starts only"
	// ({0}). EndIndices is carried but not read by Layout: chunks always
	// run to the lead end.
	StartIndices []int
	EndIndices   []int

	// LeadLabels names the labels a call may attach from/to within this
	// method's lead, e.g. {"LE"}; empty defaults to {"LE"} (the lead end).
	LeadLabels []string

	// CourseMasks restricts which course heads this method may be rung at,
	// expressed the same way music patterns are (a regex over the course
	// head's bell-symbol string); empty means no restriction.
	CourseMasks []music.Pattern

	Count CountRange
}

// CallSpec is one call entry (spec.md §3 Call / §6 calls).
type CallSpec struct {
	Symbol      string
	DebugSymbol string
	LabelFrom   string
	LabelTo     string

	PlaceNotation string

	// CallingPositions gives, per place the call can land on, the calling
	// position string announced for it. Empty means "derive the default
	// list from stage and place notation" (SPEC_FULL §3).
	CallingPositions []string

	Weight float32
}

// CourseHeadWeight is a bonus or penalty applied to every row matching
// Pattern, independently of any music type (spec.md §6
// course_head_weights, SPEC_FULL §3: evaluated per row, not once per
// chunk).
type CourseHeadWeight struct {
	Pattern music.Pattern
	Weight  float32
}

// MusicTypeSpec is one music.Type plus the count range spec.md §6 attaches
// to it at the query surface. Neither Count nor music.Type's own
// CountMin/CountMax is enforced by the graph builder, the passes or the
// search.
type MusicTypeSpec struct {
	music.Type
	Count CountRange
}

// Query is the input to graph construction: every method and call is given
// by its place-notation string — resolving titles against a method library
// and parsing calling-position shorthand is the caller's job (spec.md §1);
// Resolve (see validate.go) compiles those strings into bells.Method and
// bells.Call values.
type Query struct {
	Stage bells.Stage

	StartRow bells.Row
	EndRow   bells.Row
	PartHead bells.Row

	Methods []MethodSpec
	Calls   []CallSpec

	CourseHeadWeights []CourseHeadWeight
	MusicTypes        []MusicTypeSpec

	LengthRange LengthRange
	NumComps    int
	AllowFalse  bool

	StartStroke  bells.Stroke
	SpliceStyle  SpliceStyle
	SpliceWeight float32
	MaxDufferRows int

	GraphSizeLimit int
}
