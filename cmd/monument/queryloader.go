package main

import (
	"errors"

	"github.com/monument-ringing/monument/query"
)

// ErrNoQueryLoader is returned by the stub QueryLoader this module ships
// with. Parsing a query file's concrete format (TOML, or CLI flags) is out
// of scope (spec.md §1); a caller embedding this CLI supplies a real
// QueryLoader to NewRootCmd instead of relying on the stub.
var ErrNoQueryLoader = errors.New("monument: no QueryLoader configured")

// QueryLoader turns a file path into a query.Query. The one-method shape
// lets this module depend on the interface without importing any
// particular file format's parsing library itself.
type QueryLoader interface {
	Load(path string) (query.Query, error)
}

// stubQueryLoader is the default QueryLoader: it always fails, so a binary
// built from this module alone reports a clear configuration error instead
// of silently doing nothing.
type stubQueryLoader struct{}

func (stubQueryLoader) Load(string) (query.Query, error) {
	return query.Query{}, ErrNoQueryLoader
}
