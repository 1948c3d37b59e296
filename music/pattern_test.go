package music_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monument-ringing/monument/bells"
	"github.com/monument-ringing/monument/music"
)

func TestPatternMatch(t *testing.T) {
	p, err := music.NewPattern("^12")
	require.NoError(t, err)

	assert.True(t, p.Match(bells.Row{0, 1, 2, 3}), `"1234" starts with "12"`)
	assert.False(t, p.Match(bells.Row{1, 0, 2, 3}), `"2134" does not start with "12"`)
}

func TestPatternString(t *testing.T) {
	p := music.MustPattern("8$")
	assert.Equal(t, "8$", p.String())
}

func TestNewPatternRejectsBadRegexp(t *testing.T) {
	_, err := music.NewPattern("(unclosed")
	assert.Error(t, err)
}

func TestMustPatternPanicsOnBadRegexp(t *testing.T) {
	assert.Panics(t, func() { music.MustPattern("(unclosed") })
}
