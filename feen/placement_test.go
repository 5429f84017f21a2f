package feen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlacement_SingleRank(t *testing.T) {
	p, err := ParsePlacement("8")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Dimension())
	assert.Equal(t, 1, p.RankCount())
	assert.Len(t, p.Rank(0), 8)
	assert.Empty(t, p.Separators())
}

func TestParsePlacement_RoundTripRegular(t *testing.T) {
	p, err := ParsePlacement("3/3")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Dimension())
	assert.Equal(t, "3/3", p.Dump())
}

func TestParsePlacement_RoundTripIrregular(t *testing.T) {
	// Ranks r n p q k b R Q joined with separator depths 1 2 1 3 1 2 1:
	// mixed depths and non-uniform section sizes must survive exactly.
	src := "r/n//p/q///k/b//R/Q"
	p, err := ParsePlacement(src)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Dimension())
	assert.Equal(t, 8, p.RankCount())
	assert.Equal(t, []int{1, 2, 1, 3, 1, 2, 1}, p.Separators())
	assert.Equal(t, src, p.Dump())
}

func TestParsePlacement_RoundTripIrregularWidths(t *testing.T) {
	for _, src := range []string{"r2/3q/p", "8/rnbqkbnr", "2/k//8/1"} {
		t.Run(src, func(t *testing.T) {
			p, err := ParsePlacement(src)
			require.NoError(t, err)
			assert.Equal(t, src, p.Dump())
		})
	}
}

func TestParsePlacement_DimensionInference(t *testing.T) {
	tests := []struct {
		input string
		dim   int
	}{
		{"8", 1},
		{"8/8", 2},
		{"8/8/8", 2},
		{"8//8", 3},
		{"8/8//8", 3},
		{"k////k", 5},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePlacement(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.dim, p.Dimension())
		})
	}
}

// Content never contributes to dimension: "8" and "8/8" describe the same
// eight-empty-cell ranks yet differ in dimension solely due to the
// separator.
func TestParsePlacement_StructureIndependentOfContent(t *testing.T) {
	one, err := ParsePlacement("8")
	require.NoError(t, err)
	two, err := ParsePlacement("8/8")
	require.NoError(t, err)

	assert.Equal(t, 1, one.Dimension())
	assert.Equal(t, 2, two.Dimension())
	assert.Equal(t, one.Rank(0), two.Rank(0))
	assert.Equal(t, one.Rank(0), two.Rank(1))
}

func TestParsePlacement_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty field", ""},
		{"only separator", "/"},
		{"leading separator", "/8"},
		{"trailing separator", "8/"},
		{"trailing deep separator", "8//"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlacement(tt.input)
			require.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestParsePlacement_RankIndexInErrors(t *testing.T) {
	_, err := ParsePlacement("8/8/r*n")
	require.ErrorIs(t, err, ErrSyntax)
	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 2, ce.Rank)
	assert.Equal(t, 1, ce.Col)
}

func TestNewPlacement_Validation(t *testing.T) {
	rank := []Cell{EmptyCell(), OccupiedCell("K")}

	_, err := NewPlacement(nil, nil, DefaultPlacementOptions())
	assert.ErrorIs(t, err, ErrBounds)

	_, err = NewPlacement([][]Cell{rank, rank}, nil, DefaultPlacementOptions())
	assert.ErrorIs(t, err, ErrBounds)

	_, err = NewPlacement([][]Cell{rank, rank}, []int{0}, DefaultPlacementOptions())
	assert.ErrorIs(t, err, ErrBounds)

	_, err = NewPlacement([][]Cell{rank, {}}, []int{1}, DefaultPlacementOptions())
	assert.ErrorIs(t, err, ErrSyntax)

	p, err := NewPlacement([][]Cell{rank, rank}, []int{2}, DefaultPlacementOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, p.Dimension())
	assert.Equal(t, "1K//1K", p.Dump())
}

func TestGroups_TwoDimensional(t *testing.T) {
	p, err := ParsePlacement("rn/pq")
	require.NoError(t, err)

	g := p.Groups()
	require.False(t, g.IsLeaf())
	require.Len(t, g.Children(), 2)
	for i, child := range g.Children() {
		assert.True(t, child.IsLeaf())
		assert.Equal(t, p.Rank(i), child.Rank())
	}
}

func TestGroups_ThreeDimensional(t *testing.T) {
	p, err := ParsePlacement("r/n//p/q")
	require.NoError(t, err)
	require.Equal(t, 3, p.Dimension())

	g := p.Groups()
	require.Len(t, g.Children(), 2)
	for gi, section := range g.Children() {
		require.Len(t, section.Children(), 2, "section %d", gi)
		for ri, leaf := range section.Children() {
			require.True(t, leaf.IsLeaf())
			assert.Equal(t, p.Rank(gi*2+ri), leaf.Rank())
		}
	}
}

func TestGroups_IrregularSectionSizes(t *testing.T) {
	p, err := ParsePlacement("r/n/b//q")
	require.NoError(t, err)

	g := p.Groups()
	require.Len(t, g.Children(), 2)
	assert.Len(t, g.Children()[0].Children(), 3)
	assert.Len(t, g.Children()[1].Children(), 1)
}

func TestGroups_DepthEqualsDimension(t *testing.T) {
	p, err := ParsePlacement("k///k")
	require.NoError(t, err)
	require.Equal(t, 4, p.Dimension())

	depth := 0
	for g := p.Groups(); !g.IsLeaf(); g = g.Children()[0] {
		depth++
	}
	assert.Equal(t, 3, depth)
}

func TestCheckUniform(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"8/8", true},
		{"rn/pq//RN/PQ", true},
		{"8/7", false},
		{"r/n//p", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePlacement(tt.input)
			require.NoError(t, err)
			if tt.ok {
				assert.NoError(t, p.CheckUniform())
			} else {
				assert.ErrorIs(t, p.CheckUniform(), ErrBounds)
			}
		})
	}
}
