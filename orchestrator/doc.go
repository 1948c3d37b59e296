// Package orchestrator runs a query's optimised graph end to end: split it
// by start chunk (package graph), hand each sub-graph its own
// search.Searcher on its own goroutine, and stream Comp/Progress/Aborting
// updates back to a caller-supplied callback over a bounded channel —
// spec.md §4.6 and §5's concurrency model. The only shared mutable state
// is a single *atomic.Bool abort flag; everything else (frontier, prefix
// bitsets, sub-graph) is thread-local, per spec.md §5's "Global mutable
// state: none" design note.
package orchestrator
