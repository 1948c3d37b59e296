package bells_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monument-ringing/monument/bells"
)

func TestRounds(t *testing.T) {
	r := bells.Rounds(6)
	assert.Equal(t, bells.Row{0, 1, 2, 3, 4, 5}, r)
	assert.True(t, r.IsRounds())
	assert.Equal(t, bells.Stage(6), r.Stage())
}

func TestRowValidate(t *testing.T) {
	require.NoError(t, bells.Row{0, 1, 2, 3}.Validate())

	err := bells.Row{0, 1, 4, 3}.Validate()
	assert.ErrorIs(t, err, bells.ErrBadBell)

	err = bells.Row{0, 0, 2, 3}.Validate()
	assert.ErrorIs(t, err, bells.ErrNotPermutation)
}

func TestRowMul(t *testing.T) {
	// a*b defined by (a*b)[i] = a[b[i]]
	a := bells.Row{1, 0, 2} // swap 1&2
	b := bells.Row{0, 2, 1} // swap 2&3
	got, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, bells.Row{1, 2, 0}, got)

	_, err = a.Mul(bells.Rounds(4))
	assert.ErrorIs(t, err, bells.ErrStageMismatch)
}

func TestRowMulIdentity(t *testing.T) {
	a := bells.Row{2, 0, 1}
	rounds := bells.Rounds(3)

	left, err := rounds.Mul(a)
	require.NoError(t, err)
	assert.True(t, left.Equal(a))

	right, err := a.Mul(rounds)
	require.NoError(t, err)
	assert.True(t, right.Equal(a))
}

func TestRowInverse(t *testing.T) {
	a := bells.Row{2, 0, 1}
	inv := a.Inverse()
	got := inv.MustMul(a)
	assert.True(t, got.IsRounds())
}

func TestRowPlaceOf(t *testing.T) {
	a := bells.Row{2, 0, 1}
	assert.Equal(t, 1, a.PlaceOf(0))
	assert.Equal(t, 2, a.PlaceOf(1))
	assert.Equal(t, 0, a.PlaceOf(2))
	assert.Equal(t, -1, a.PlaceOf(9))
}

func TestRowKeyRoundTrips(t *testing.T) {
	a := bells.Row{2, 0, 1}
	b := bells.Row{2, 0, 1}
	assert.Equal(t, a.Key(), b.Key())

	c := bells.Row{0, 2, 1}
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestRowClone(t *testing.T) {
	a := bells.Row{0, 1, 2}
	b := a.Clone()
	b[0] = 2
	assert.Equal(t, bells.Row{0, 1, 2}, a)
	assert.Equal(t, bells.Row{2, 1, 2}, b)
}
