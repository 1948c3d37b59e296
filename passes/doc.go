// Package passes implements the optimisation pipeline of spec.md §4.3:
// pluggable graph rewrites applied to a fixed point before handing the
// graph to package search. A Pass is a tagged variant — Single,
// OneDirection, or BothDirections — dispatched through a function pointer
// rather than an interface hierarchy, per the Design Notes' "avoid
// inheritance; prefer a small trait or function-pointer dispatch".
//
// graph.DirectionalView (package graph) is what lets the distance and
// reachability passes share one implementation for both the forward
// (distance-from-rounds) and backward (distance-to-rounds) orientation.
// StripDangling and RequiredChunks read the graph's
// Starts/Ends/Successors/Predecessors fields directly instead.
package passes
