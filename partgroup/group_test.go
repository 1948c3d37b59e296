package partgroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monument-ringing/monument/bells"
	"github.com/monument-ringing/monument/partgroup"
)

func TestNewGroupTrivialPartHead(t *testing.T) {
	group, err := partgroup.NewGroup(bells.Rounds(4))
	require.NoError(t, err)
	assert.Equal(t, 1, group.Size())
	assert.True(t, group.Row(0).IsRounds())
}

func TestNewGroupSelfInversePartHead(t *testing.T) {
	group, err := partgroup.NewGroup(bells.Row{1, 0, 3, 2})
	require.NoError(t, err)
	require.Equal(t, 2, group.Size())
	assert.True(t, group.Row(0).IsRounds())
	assert.True(t, group.Row(1).Equal(bells.Row{1, 0, 3, 2}))
}

func TestGroupMulAndInverse(t *testing.T) {
	group, err := partgroup.NewGroup(bells.Row{1, 0, 3, 2})
	require.NoError(t, err)

	assert.Equal(t, partgroup.Rotation(0), group.Mul(1, 1), "the part head composed with itself is rounds")
	assert.Equal(t, partgroup.Rotation(1), group.Inverse(1), "a self-inverse part head is its own inverse rotation")
	assert.Equal(t, partgroup.Rotation(0), group.Inverse(0))

	// Mul must agree with multiplying the represented Rows directly.
	product := group.Row(1).MustMul(group.Row(1))
	assert.True(t, product.Equal(group.Row(group.Mul(1, 1))))
}

func TestGroupInverseNormalizesOutOfRangeRotations(t *testing.T) {
	group, err := partgroup.NewGroup(bells.Row{1, 0, 3, 2})
	require.NoError(t, err)

	assert.Equal(t, group.Inverse(1), group.Inverse(partgroup.Rotation(3)), "3 mod 2 == 1")
	assert.Equal(t, group.Inverse(0), group.Inverse(partgroup.Rotation(-2)), "-2 mod 2 == 0")
}

func TestCanonicalizePicksSmallestRepresentative(t *testing.T) {
	group, err := partgroup.NewGroup(bells.Row{1, 0, 3, 2})
	require.NoError(t, err)

	canonical, rotation := group.Canonicalize(bells.Row{1, 0, 3, 2})
	assert.True(t, canonical.IsRounds(), "rounds is lexicographically smaller than the part head itself")
	assert.Equal(t, partgroup.Rotation(1), rotation)

	canonical, rotation = group.Canonicalize(bells.Rounds(4))
	assert.True(t, canonical.IsRounds(), "rounds is already its own orbit's smallest representative")
	assert.Equal(t, partgroup.Rotation(0), rotation)
}

func TestCanonicalizeTrivialGroupIsIdentity(t *testing.T) {
	group, err := partgroup.NewGroup(bells.Rounds(4))
	require.NoError(t, err)

	row := bells.Row{2, 3, 0, 1}
	canonical, rotation := group.Canonicalize(row)
	assert.True(t, canonical.Equal(row))
	assert.Equal(t, partgroup.Rotation(0), rotation)
}
