package feen

import (
	"strconv"
	"strings"
)

// MaxRunLength bounds the empty-cell run a single numeral may encode.
// Larger runs in otherwise well-formed input are rejected with a Count
// error rather than silently allocating unbounded cell slices.
const MaxRunLength = 9999

// Cell is one board square: empty, or occupied by a piece.
type Cell struct {
	piece    Piece
	occupied bool
}

// EmptyCell returns the empty cell value.
func EmptyCell() Cell {
	return Cell{}
}

// OccupiedCell returns a cell holding p.
func OccupiedCell(p Piece) Cell {
	return Cell{piece: p, occupied: true}
}

// IsEmpty reports whether the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// Piece returns the occupying piece and whether the cell is occupied.
func (c Cell) Piece() (Piece, bool) {
	return c.piece, c.occupied
}

// parseRankCells tokenizes one rank substring into cells. rank is the rank
// index used only for error context; col offsets in errors are relative to
// the rank text. A single left-to-right cursor pass, no backtracking.
func parseRankCells(text string, codec PieceCodec, rank int) ([]Cell, error) {
	var cells []Cell
	i := 0
	for i < len(text) {
		b := text[i]
		switch {
		case b >= '0' && b <= '9':
			if b == '0' {
				return nil, countErr(rank, i, "empty-run count with leading zero")
			}
			start := i
			for i < len(text) && text[i] >= '0' && text[i] <= '9' {
				i++
			}
			n, err := strconv.Atoi(text[start:i])
			if err != nil || n > MaxRunLength {
				return nil, countErr(rank, start, "empty-run count %s exceeds %d", text[start:i], MaxRunLength)
			}
			for k := 0; k < n; k++ {
				cells = append(cells, EmptyCell())
			}

		case b == '[':
			start := i
			depth := 0
			for ; i < len(text); i++ {
				if text[i] == '[' {
					depth++
				} else if text[i] == ']' {
					depth--
					if depth == 0 {
						break
					}
				}
			}
			if depth != 0 {
				return nil, syntaxErr(rank, start, "unterminated bracket")
			}
			tok := text[start+1 : i]
			i++ // past the closing bracket
			p, err := codec.ParsePiece(tok)
			if err != nil {
				return nil, pieceErr(rank, start, err)
			}
			cells = append(cells, OccupiedCell(p))

		case b == '+' || b == '-' || isASCIILetter(b):
			start := i
			if b == '+' || b == '-' {
				i++
				if i >= len(text) || !isASCIILetter(text[i]) {
					return nil, syntaxErr(rank, start, "piece prefix %q not followed by a letter", b)
				}
			}
			i++ // the letter
			if i < len(text) && text[i] == '\'' {
				i++
			}
			p, err := codec.ParsePiece(text[start:i])
			if err != nil {
				return nil, pieceErr(rank, start, err)
			}
			cells = append(cells, OccupiedCell(p))

		default:
			return nil, syntaxErr(rank, i, "unexpected character %q", b)
		}
	}
	return cells, nil
}

// renderRankCells is the inverse of parseRankCells: consecutive empty cells
// collapse to their decimal count, occupied cells render through the codec.
func renderRankCells(sb *strings.Builder, cells []Cell, codec PieceCodec) {
	run := 0
	for _, c := range cells {
		if c.IsEmpty() {
			run++
			continue
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
			run = 0
		}
		sb.WriteString(codec.RenderPiece(c.piece))
	}
	if run > 0 {
		sb.WriteString(strconv.Itoa(run))
	}
}
