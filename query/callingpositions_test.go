package query_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monument-ringing/monument/bells"
	"github.com/monument-ringing/monument/query"
)

func TestDefaultCallingPositionsRejectsBadPlaceNotation(t *testing.T) {
	_, err := query.DefaultCallingPositions(bells.Stage(8), "(unclosed")
	assert.ErrorIs(t, err, bells.ErrBadPlaceNotation)
}

func TestDefaultCallingPositionsFallsBackBeyondNamedAlphabet(t *testing.T) {
	positions, err := query.DefaultCallingPositions(bells.Stage(13), "14")
	require.NoError(t, err)
	require.Len(t, positions, 13)
	// "LIBFVXSEN" only names 9 letters (indices 0..8); M/W/H claim the back
	// three (indices 10..12 on an odd stage), leaving index 9 unclaimed.
	assert.Equal(t, "10ths", positions[9])
}

func ExampleDefaultCallingPositions() {
	positions, err := query.DefaultCallingPositions(bells.Stage(8), "14")
	if err != nil {
		panic(err)
	}
	fmt.Println(positions)

	positions, err = query.DefaultCallingPositions(bells.Stage(8), "1234")
	if err != nil {
		panic(err)
	}
	fmt.Println(positions)
	// Output:
	// [L I B F V M W H]
	// [L B T F V M W H]
}
