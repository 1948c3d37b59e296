// Package compose turns a search path back into a readable composition —
// spec.md §4.5. Reconstruct walks a search.CompPath's flattened link
// sequence against the graph it was found in, recovering each chunk's
// concrete starting row via a RowResolver (query.Layout, in practice)
// rather than re-deriving course heads from scratch. BuildRows and
// ExtendParts then regenerate the full row block one part at a time, and
// FormatCallString renders the call string spec.md §6 describes.
package compose
