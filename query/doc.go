// Package query is Monument's external Query Representation (spec.md §6):
// methods, calls, music preferences, part head, length range and search
// weights. It also assembles a graph.Layout over those inputs — the
// Dijkstra expansion in package graph only knows how to walk whatever a
// Layout reports, and query is where the method/call/music/falseness detail
// that answers "what chunks exist and where do they lead" actually lives.
//
// Parsing a query from TOML or CLI flags is out of scope (spec.md §1); this
// package only models the already-parsed structure and validates it.
package query
