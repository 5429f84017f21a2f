package feen

import (
	"strings"
)

// RankSeparator is the delimiter between ranks in a placement field. A
// maximal run of k separators crosses k dimension boundaries at once.
const RankSeparator = '/'

// Placement is an immutable board configuration: an ordered non-empty
// sequence of ranks plus the separator depth between each adjacent pair.
// Irregular rank widths and irregular section sizes are first-class; the
// flat (ranks, separators) pair is the sole serialization source of truth.
type Placement struct {
	ranks [][]Cell
	seps  []int
	dim   int
	codec PieceCodec
}

// PlacementOptions configures placement parsing and construction.
type PlacementOptions struct {
	// Codec resolves piece tokens. Defaults to BasicPieceCodec.
	Codec PieceCodec
}

// DefaultPlacementOptions returns the default configuration.
func DefaultPlacementOptions() PlacementOptions {
	return PlacementOptions{Codec: BasicPieceCodec{}}
}

// ParsePlacement parses a placement field with the default options.
func ParsePlacement(text string) (*Placement, error) {
	return ParsePlacementWithOptions(text, DefaultPlacementOptions())
}

// ParsePlacementWithOptions parses a placement field. The field must be
// pre-trimmed and non-empty; the parse fails fast at the first violation.
func ParsePlacementWithOptions(text string, opts PlacementOptions) (*Placement, error) {
	codec := opts.Codec
	if codec == nil {
		codec = BasicPieceCodec{}
	}
	rankTexts, seps, err := scanSeparators(text)
	if err != nil {
		return nil, err
	}
	ranks := make([][]Cell, len(rankTexts))
	for i, rt := range rankTexts {
		cells, err := parseRankCells(rt, codec, i)
		if err != nil {
			return nil, err
		}
		ranks[i] = cells
	}
	return &Placement{ranks: ranks, seps: seps, dim: dimensionOf(seps), codec: codec}, nil
}

// NewPlacement builds a placement directly from cells and separator depths,
// for callers that construct positions programmatically and dump them. The
// separator slice must hold exactly one positive depth per adjacent rank
// pair, and every rank must be non-empty.
func NewPlacement(ranks [][]Cell, separators []int, opts PlacementOptions) (*Placement, error) {
	codec := opts.Codec
	if codec == nil {
		codec = BasicPieceCodec{}
	}
	if len(ranks) == 0 {
		return nil, boundsErr("placement needs at least one rank")
	}
	if len(separators) != len(ranks)-1 {
		return nil, boundsErr("separator count %d does not match %d ranks", len(separators), len(ranks))
	}
	for i, r := range ranks {
		if len(r) == 0 {
			return nil, syntaxErr(i, -1, "empty rank")
		}
	}
	for _, d := range separators {
		if d < 1 {
			return nil, boundsErr("separator depth %d: want >= 1", d)
		}
	}
	rc := make([][]Cell, len(ranks))
	for i, r := range ranks {
		rc[i] = append([]Cell(nil), r...)
	}
	sc := append([]int(nil), separators...)
	return &Placement{ranks: rc, seps: sc, dim: dimensionOf(sc), codec: codec}, nil
}

// scanSeparators splits a placement field into rank substrings and the depth
// of each separator run between them.
func scanSeparators(text string) ([]string, []int, error) {
	if text == "" {
		return nil, nil, syntaxErr(-1, -1, "empty placement field")
	}
	var (
		ranks []string
		seps  []int
	)
	start := 0
	i := 0
	for i < len(text) {
		if text[i] != RankSeparator {
			i++
			continue
		}
		if i == start {
			return nil, nil, syntaxErr(len(ranks), start, "empty rank")
		}
		ranks = append(ranks, text[start:i])
		depth := 0
		for i < len(text) && text[i] == RankSeparator {
			depth++
			i++
		}
		seps = append(seps, depth)
		start = i
	}
	if start == len(text) {
		// Field ended on a separator run.
		return nil, nil, syntaxErr(len(ranks), start, "empty rank")
	}
	ranks = append(ranks, text[start:])
	return ranks, seps, nil
}

func dimensionOf(seps []int) int {
	dim := 1
	for _, d := range seps {
		if d+1 > dim {
			dim = d + 1
		}
	}
	return dim
}

// Dimension returns 1 + the maximum separator depth (1 if none).
func (p *Placement) Dimension() int {
	return p.dim
}

// RankCount returns the number of ranks.
func (p *Placement) RankCount() int {
	return len(p.ranks)
}

// Rank returns the cells of rank i in original order. The returned slice is
// shared; callers must treat it as read-only.
func (p *Placement) Rank(i int) []Cell {
	return p.ranks[i]
}

// Separators returns the separator depths between adjacent ranks. The
// returned slice is shared; callers must treat it as read-only.
func (p *Placement) Separators() []int {
	return p.seps
}

// Dump regenerates the exact source text: rank renderings joined by
// depth-many separator characters. parse(dump(p)) is structurally identical
// to p, including for irregular structures.
func (p *Placement) Dump() string {
	var sb strings.Builder
	for i, r := range p.ranks {
		if i > 0 {
			for k := 0; k < p.seps[i-1]; k++ {
				sb.WriteByte(RankSeparator)
			}
		}
		renderRankCells(&sb, r, p.codec)
	}
	return sb.String()
}

// Group is one node of the derived hierarchical view: either a leaf holding
// a single rank, or an interior node holding sub-groups one dimension down.
type Group struct {
	rank     []Cell
	children []*Group
}

// IsLeaf reports whether the group is a single rank.
func (g *Group) IsLeaf() bool {
	return g.children == nil
}

// Rank returns the leaf rank (read-only), or nil for interior nodes.
func (g *Group) Rank() []Cell {
	return g.rank
}

// Children returns the sub-groups of an interior node.
func (g *Group) Children() []*Group {
	return g.children
}

// Groups returns the hierarchical projection of the placement: a nested
// structure of depth Dimension, grouping ranks at every separator boundary
// from the deepest dimension down. It is derived on demand and read-only;
// the flat representation remains authoritative.
func (p *Placement) Groups() *Group {
	return groupWindow(p.ranks, p.seps, p.dim-1)
}

// groupWindow recursively partitions a rank/separator window at boundaries
// of exactly maxDepth. Separators strictly inside a sub-window are, by
// construction, of lesser depth.
func groupWindow(ranks [][]Cell, seps []int, maxDepth int) *Group {
	if maxDepth == 0 {
		return &Group{rank: ranks[0]}
	}
	g := &Group{children: []*Group{}}
	start := 0
	for i, d := range seps {
		if d == maxDepth {
			g.children = append(g.children, groupWindow(ranks[start:i+1], seps[start:i], maxDepth-1))
			start = i + 1
		}
	}
	g.children = append(g.children, groupWindow(ranks[start:], seps[start:], maxDepth-1))
	return g
}

// CheckUniform is an opt-in validation pass layered on the core: it reports
// a Bounds error if rank widths differ anywhere, or if sibling group sizes
// differ at any level of the hierarchical view. The core itself never
// requires uniformity.
func (p *Placement) CheckUniform() error {
	width := len(p.ranks[0])
	for i, r := range p.ranks {
		if len(r) != width {
			return boundsErr("rank %d has width %d, want %d", i, len(r), width)
		}
	}
	return checkUniformGroups(p.Groups())
}

func checkUniformGroups(g *Group) error {
	if g.IsLeaf() {
		return nil
	}
	size := -1
	for _, c := range g.children {
		n := len(c.children)
		if c.IsLeaf() {
			n = 1
		}
		if size == -1 {
			size = n
		} else if n != size {
			return boundsErr("sibling groups of size %d and %d", size, n)
		}
		if err := checkUniformGroups(c); err != nil {
			return err
		}
	}
	return nil
}
