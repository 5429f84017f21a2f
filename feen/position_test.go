package feen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition_RoundTrip(t *testing.T) {
	records := []string{
		"rnb/3/PPP 2PQ/p C",
		"8/8/8/8/8/8/8/8 / c",
		"r/n//p/q///k/b//R/Q P/p S",
	}
	for _, rec := range records {
		t.Run(rec, func(t *testing.T) {
			pos, err := ParsePosition(rec)
			require.NoError(t, err)
			assert.Equal(t, rec, pos.Dump())
		})
	}
}

func TestParsePosition_CanonicalizesReserves(t *testing.T) {
	pos, err := ParsePosition("3/3 2B3P/pp c")
	require.NoError(t, err)
	assert.Equal(t, "3/3 3P2B/2p c", pos.Dump())
}

func TestParsePosition_FieldCount(t *testing.T) {
	for _, rec := range []string{"", "8", "8 /", "8 / C extra", "8  / C"} {
		t.Run(rec, func(t *testing.T) {
			_, err := ParsePosition(rec)
			require.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestParsePosition_StrictReserves(t *testing.T) {
	opts := DefaultPositionOptions()
	opts.Strict = true

	_, err := ParsePositionWithOptions("3/3 2B3P/ c", opts)
	require.ErrorIs(t, err, ErrSyntax)

	pos, err := ParsePositionWithOptions("3/3 3P2B/ c", opts)
	require.NoError(t, err)
	assert.Equal(t, "3/3 3P2B/ c", pos.Dump())
}

func TestParsePosition_PropagatesFieldErrors(t *testing.T) {
	_, err := ParsePosition("3//3/ / C")
	require.ErrorIs(t, err, ErrSyntax)

	_, err = ParsePosition("3/3 0P/ C")
	require.ErrorIs(t, err, ErrCount)

	_, err = ParsePosition("3/3 / CC")
	require.ErrorIs(t, err, ErrSyntax)
}

func TestNewPosition(t *testing.T) {
	pl, err := ParsePlacement("2/2")
	require.NoError(t, err)
	h, err := ParseHands("P/")
	require.NoError(t, err)
	st, err := ParseStyle("G")
	require.NoError(t, err)

	pos, err := NewPosition(pl, h, st)
	require.NoError(t, err)
	assert.Equal(t, "2/2 P/ G", pos.Dump())

	_, err = NewPosition(nil, h, st)
	assert.ErrorIs(t, err, ErrBounds)
}
