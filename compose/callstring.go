package compose

import (
	"strings"

	"github.com/monument-ringing/monument/bells"
)

// MethodDisplay is the per-method detail FormatCallString needs: its
// shorthand letter(s) and lead length (to know how many leads one path
// element covers, via bells.NumLeadsCovered).
type MethodDisplay struct {
	Shorthand string
	LeadLen   int
}

// CallDisplay is the per-call detail FormatCallString needs.
type CallDisplay struct {
	Symbol           string
	DebugSymbol      string
	CallingPositions []string
}

// Style selects between the two call-string renderings spec.md §6 names.
type Style struct {
	// ShowMethodShorthand interleaves a method shorthand per lead covered
	// — spec.md's splice_style == LeadLabels.
	ShowMethodShorthand bool
	// CallingPositions renders a call as symbol+position (spec.md's
	// splice_style == CallingPositions); when false a call is wrapped in
	// brackets instead (the spliced/positional display), per the Open
	// Question resolution below.
	CallingPositions bool
}

// observationBell is the bell whose place after a call selects its
// calling-position string — conventionally the heaviest bell (the tenor),
// 0-indexed as stage-1. This is the coursewise convention spec.md §9's
// Open Question picks over the leadwise alternative ("reconstruct with
// the coursewise semantics described in §6 unless leadwise is explicitly
// requested" — this module never requests leadwise).
func observationBell(stage int) int { return stage - 1 }

// FormatCallString renders comp's call string bit-exact with spec.md §6:
// a snap-start "<" prefix when the first element begins mid-lead, a
// snap-finish ">" suffix when the last ends mid-lead, method shorthands
// interleaved per lead covered when style.ShowMethodShorthand, and calls
// rendered per style.CallingPositions.
func FormatCallString(comp *Composition, stage int, methods []MethodDisplay, calls []CallDisplay, style Style) string {
	if len(comp.Path) == 0 {
		return ""
	}

	var sb strings.Builder
	if comp.Path[0].StartSubLeadIdx != 0 {
		sb.WriteString("<")
	}

	for _, elem := range comp.Path {
		if elem.Call >= 0 && elem.Call < len(calls) {
			writeCall(&sb, calls[elem.Call], elem.StartRow.PlaceOf(observationBell(stage)), style)
		}
		if style.ShowMethodShorthand {
			md := methods[elem.Method]
			n := bells.NumLeadsCovered(md.LeadLen, elem.StartSubLeadIdx, elem.PerPartLength)
			for i := 0; i < n; i++ {
				sb.WriteString(md.Shorthand)
			}
		}
	}

	last := comp.Path[len(comp.Path)-1]
	lastMethod := methods[last.Method]
	if lastMethod.LeadLen > 0 && (last.StartSubLeadIdx+last.PerPartLength)%lastMethod.LeadLen != 0 {
		sb.WriteString(">")
	}
	return sb.String()
}

func writeCall(sb *strings.Builder, cd CallDisplay, pos int, style Style) {
	if style.CallingPositions && pos >= 0 && pos < len(cd.CallingPositions) {
		sb.WriteString(cd.Symbol)
		sb.WriteString(cd.CallingPositions[pos])
		return
	}
	sb.WriteString("[")
	sb.WriteString(cd.Symbol)
	sb.WriteString("]")
}

