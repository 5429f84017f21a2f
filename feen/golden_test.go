package feen

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestGoldenCanonical pins the canonical serialization of a spread of
// records: regular boards, irregular multi-dimensional structures, merged
// and reordered reserves, promoted and intermediate piece states.
func TestGoldenCanonical(t *testing.T) {
	records := []string{
		"rnbqkbnr/8/8/8/8/8/8/RNBQKBNR / C",
		"3/3 2B3P/pp c",
		"r/n//p/q///k/b//R/Q 2PP'/-pq S",
		"8 10P/10p c",
		"2B'1 P'P/+p' g",
	}

	var sb strings.Builder
	for _, rec := range records {
		pos, err := ParsePosition(rec)
		require.NoError(t, err, "record %q", rec)
		sb.WriteString(pos.Dump())
		sb.WriteByte('\n')
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "canonical", []byte(sb.String()))
}

// TestGoldenCanonical_Stable re-parses every golden line and dumps it again:
// the canonical form must be a fixed point.
func TestGoldenCanonical_Stable(t *testing.T) {
	records := []string{
		"rnbqkbnr/8/8/8/8/8/8/RNBQKBNR / C",
		"3/3 3P2B/2p c",
		"r/n//p/q///k/b//R/Q 2PP'/-pq S",
		"8 10P/10p c",
		"2B'1 PP'/+p' g",
	}
	for _, rec := range records {
		pos, err := ParsePosition(rec)
		require.NoError(t, err)
		require.Equal(t, rec, pos.Dump())
	}
}
