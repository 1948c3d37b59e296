package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monument-ringing/monument/query"
)

func TestNewRootCmdRegistersSubcommands(t *testing.T) {
	cmd := NewRootCmd(nil)
	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["search"])
	assert.True(t, names["version"])
}

func TestNewRootCmdFallsBackToStubLoader(t *testing.T) {
	cmd := NewRootCmd(nil)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"search", "query.toml"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoQueryLoader)
}

// failingLoader always returns a query that fails validation, exercising
// runSearch's error wrapping past a successful Load.
type failingLoader struct{}

func (failingLoader) Load(string) (query.Query, error) {
	return query.Query{}, nil // no methods: Resolve -> Validate rejects it
}

func TestRunSearchWrapsResolveError(t *testing.T) {
	cmd := NewRootCmd(failingLoader{})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"search", "query.toml"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrNoMethods)
}
