// Package falseness precomputes, once per query, which pairs of row ranges
// collide under which course-head transposition (spec.md §4.1). The graph
// builder (package graph, via the Layout a query assembles) consults the
// resulting Table once per expanded chunk rather than comparing rows
// directly — the whole point of doing this up front is that a composition
// search never again pays for an O(chunk length) row comparison.
//
// A RowRange here is always one full lead of one method, identified by
// method index; Monument's chunk boundaries only ever fall on lead ends
// (spec.md's calling positions are lead-end calls), so "chunk" and "lead of
// a method" coincide for falseness purposes.
package falseness
