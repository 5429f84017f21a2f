package feen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("C")
	require.NoError(t, err)
	assert.Equal(t, SideFirst, s.ActiveSide())
	assert.Equal(t, "C", s.Dump())

	s, err = ParseStyle("s")
	require.NoError(t, err)
	assert.Equal(t, SideSecond, s.ActiveSide())
	assert.Equal(t, "s", s.Dump())
}

func TestParseStyle_Rejects(t *testing.T) {
	for _, input := range []string{"", "CC", "1", "+", " C"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseStyle(input)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestNewStyle_ForcesCase(t *testing.T) {
	s, err := NewStyle('c', SideFirst)
	require.NoError(t, err)
	assert.Equal(t, byte('C'), s.Letter())

	s, err = NewStyle('C', SideSecond)
	require.NoError(t, err)
	assert.Equal(t, byte('c'), s.Letter())

	_, err = NewStyle('1', SideFirst)
	assert.ErrorIs(t, err, ErrSyntax)
}
