// Command monument is the cobra CLI entrypoint over packages query,
// graph, passes, search, compose and orchestrator: resolve a query,
// build and optimise its graph, run the worker pool, and print every
// completed composition's call string (SPEC_FULL.md §0, §1).
//
// Parsing a query file's concrete format is left to a caller-supplied
// QueryLoader (see queryloader.go); this module stays out of that to
// avoid pulling in a TOML dependency the retrieval pack never carried.
package main
