// Package search implements the best-first prefix search of spec.md §4.4:
// a max-heap frontier of CompPrefix values ordered by per-row average
// score, each carrying a bits-and-blooms/bitset mask of chunks it can no
// longer visit (already false with something on the path) and a
// reference-counted CompPath recording how it got there.
//
// The frontier itself is a small container/heap.Interface, the same idiom
// the graph package's Dijkstra frontier uses; the falseness exclusion test
// is the one hot-path operation spec.md calls out by name (§4.4 "Pruning
// effectiveness"), which is exactly what bits-and-blooms/bitset's
// InPlaceUnion/Test pair are for.
package search
