package feen

import (
	"sort"
	"strconv"
	"strings"
)

// HandSeparator divides the first player's reserve section from the second
// player's. Exactly one occurrence is required.
const HandSeparator = '/'

// MaxHandQuantity bounds a single reserve entry's count.
const MaxHandQuantity = 9999

// Hands holds the pieces in reserve for both sides: one multiset per side,
// mapping each piece to a quantity of at least one. Every piece in a side's
// multiset carries the letter case that side owns. Immutable after
// construction.
type Hands struct {
	first  map[Piece]int // uppercase section
	second map[Piece]int // lowercase section
	codec  PieceCodec
}

// HandsOptions configures reserve-field parsing and construction.
type HandsOptions struct {
	// Codec resolves piece tokens. Defaults to BasicPieceCodec.
	Codec PieceCodec

	// Strict rejects input that is not already in canonical form: duplicate
	// entries for one piece, or entries out of canonical order. The lenient
	// default merges duplicates and reorders on dump.
	Strict bool
}

// DefaultHandsOptions returns the lenient default configuration.
func DefaultHandsOptions() HandsOptions {
	return HandsOptions{Codec: BasicPieceCodec{}}
}

// handEntry is one tokenized reserve entry, transient during parsing.
type handEntry struct {
	piece Piece
	qty   int
	col   int // offset of the entry in the section text, for errors
}

// ParseHands parses a reserve field with the lenient defaults.
func ParseHands(text string) (*Hands, error) {
	return ParseHandsWithOptions(text, DefaultHandsOptions())
}

// ParseHandsWithOptions parses a reserve field `upper "/" lower`. Either
// section may be empty; the separator is mandatory and must occur exactly
// once.
func ParseHandsWithOptions(text string, opts HandsOptions) (*Hands, error) {
	codec := opts.Codec
	if codec == nil {
		codec = BasicPieceCodec{}
	}
	sep := strings.IndexByte(text, HandSeparator)
	if sep < 0 {
		return nil, syntaxErr(-1, -1, "reserve field %q: missing section separator", text)
	}
	if strings.IndexByte(text[sep+1:], HandSeparator) >= 0 {
		return nil, syntaxErr(-1, sep+1+strings.IndexByte(text[sep+1:], HandSeparator), "extra section separator")
	}
	first, err := parseHandSection(text[:sep], SideFirst, codec, opts.Strict)
	if err != nil {
		return nil, err
	}
	second, err := parseHandSection(text[sep+1:], SideSecond, codec, opts.Strict)
	if err != nil {
		return nil, err
	}
	return &Hands{first: first, second: second, codec: codec}, nil
}

// NewHands builds a reserve directly from per-side multisets, validating
// that every quantity is positive and every piece's letter case agrees with
// its side.
func NewHands(first, second map[Piece]int, opts HandsOptions) (*Hands, error) {
	codec := opts.Codec
	if codec == nil {
		codec = BasicPieceCodec{}
	}
	h := &Hands{
		first:  make(map[Piece]int, len(first)),
		second: make(map[Piece]int, len(second)),
		codec:  codec,
	}
	for side, src := range map[Side]map[Piece]int{SideFirst: first, SideSecond: second} {
		dst := h.first
		if side == SideSecond {
			dst = h.second
		}
		for p, q := range src {
			if q < 1 {
				return nil, boundsErr("piece %q with quantity %d in %s hand", codec.RenderPiece(p), q, side)
			}
			parts := splitPieceToken(codec.RenderPiece(p))
			if !parts.conforms || sideOfLetter(parts.letter) != side {
				return nil, syntaxErr(-1, -1, "piece %q does not belong to the %s hand", codec.RenderPiece(p), side)
			}
			dst[p] = q
		}
	}
	return h, nil
}

// parseHandSection tokenizes one side's section and accumulates it into a
// multiset. In strict mode the entry sequence must already be merged and in
// canonical order.
func parseHandSection(text string, side Side, codec PieceCodec, strict bool) (map[Piece]int, error) {
	entries, err := tokenizeHandSection(text, side, codec)
	if err != nil {
		return nil, err
	}
	if strict {
		if err := checkCanonicalEntries(entries, codec); err != nil {
			return nil, err
		}
	}
	out := make(map[Piece]int, len(entries))
	for _, e := range entries {
		out[e.piece] += e.qty
	}
	return out, nil
}

// tokenizeHandSection splits section text into entries. Grammar per entry:
// count? prefix? LETTER suffix?, with the letter's case fixed by side.
func tokenizeHandSection(text string, side Side, codec PieceCodec) ([]handEntry, error) {
	var entries []handEntry
	i := 0
	for i < len(text) {
		start := i
		qty := 1
		if text[i] >= '0' && text[i] <= '9' {
			ds := i
			for i < len(text) && text[i] >= '0' && text[i] <= '9' {
				i++
			}
			digits := text[ds:i]
			if digits[0] == '0' {
				return nil, countErr(-1, ds, "reserve count with leading zero")
			}
			n, err := strconv.Atoi(digits)
			if err != nil || n > MaxHandQuantity {
				return nil, countErr(-1, ds, "reserve count %s exceeds %d", digits, MaxHandQuantity)
			}
			if n < 2 {
				return nil, countErr(-1, ds, "reserve count %d: singular pieces omit the count", n)
			}
			qty = n
		}
		ts := i
		if i < len(text) && (text[i] == '+' || text[i] == '-') {
			i++
		}
		if i >= len(text) || !isASCIILetter(text[i]) {
			return nil, syntaxErr(-1, ts, "expected piece letter in reserve section")
		}
		if sideOfLetter(text[i]) != side {
			return nil, syntaxErr(-1, i, "letter %q has the wrong case for the %s hand", text[i], side)
		}
		i++
		if i < len(text) && text[i] == '\'' {
			i++
		}
		p, err := codec.ParsePiece(text[ts:i])
		if err != nil {
			return nil, pieceErr(-1, ts, err)
		}
		entries = append(entries, handEntry{piece: p, qty: qty, col: start})
	}
	return entries, nil
}

// checkCanonicalEntries rejects entry sequences that are not already fully
// merged and in canonical order. Strict parsing detects non-canonical input
// instead of silently normalizing it.
func checkCanonicalEntries(entries []handEntry, codec PieceCodec) error {
	seen := make(map[Piece]bool, len(entries))
	for _, e := range entries {
		if seen[e.piece] {
			return syntaxErr(-1, e.col, "duplicate reserve entry %q", codec.RenderPiece(e.piece))
		}
		seen[e.piece] = true
	}
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if !canonicalLess(prev.qty, codec.RenderPiece(prev.piece), cur.qty, codec.RenderPiece(cur.piece)) {
			return syntaxErr(-1, cur.col, "reserve entry %q out of canonical order", codec.RenderPiece(cur.piece))
		}
	}
	return nil
}

// canonicalLess is the 5-key total order over a side's merged entries:
// quantity descending, base letter ascending case-folded, uppercase before
// lowercase, prefix '-' before '+' before none, suffix none before
// apostrophe. Tokens outside the piece grammar sort after conforming ones,
// bytewise, so the order stays total for exotic codecs.
func canonicalLess(qa int, ta string, qb int, tb string) bool {
	if qa != qb {
		return qa > qb
	}
	pa, pb := splitPieceToken(ta), splitPieceToken(tb)
	if pa.conforms != pb.conforms {
		return pa.conforms
	}
	if !pa.conforms {
		return ta < tb
	}
	if la, lb := lowerLetter(pa.letter), lowerLetter(pb.letter); la != lb {
		return la < lb
	}
	if ua, ub := isUpperLetter(pa.letter), isUpperLetter(pb.letter); ua != ub {
		return ua
	}
	if pa.prefix != pb.prefix {
		return prefixRank(pa.prefix) < prefixRank(pb.prefix)
	}
	return pa.suffix < pb.suffix
}

func prefixRank(b byte) int {
	switch b {
	case '-':
		return 0
	case '+':
		return 1
	default:
		return 2
	}
}

// Count returns the quantity of p held by side (0 if absent).
func (h *Hands) Count(side Side, p Piece) int {
	if side == SideFirst {
		return h.first[p]
	}
	return h.second[p]
}

// Size returns the total number of pieces held by side.
func (h *Hands) Size(side Side) int {
	m := h.first
	if side == SideSecond {
		m = h.second
	}
	total := 0
	for _, q := range m {
		total += q
	}
	return total
}

// Pieces returns side's reserve in canonical order as (piece, quantity)
// pairs.
func (h *Hands) Pieces(side Side) []HandPiece {
	m := h.first
	if side == SideSecond {
		m = h.second
	}
	out := make([]HandPiece, 0, len(m))
	for p, q := range m {
		out = append(out, HandPiece{Piece: p, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool {
		return canonicalLess(out[i].Quantity, h.codec.RenderPiece(out[i].Piece),
			out[j].Quantity, h.codec.RenderPiece(out[j].Piece))
	})
	return out
}

// HandPiece is one canonical reserve entry: a piece and its quantity.
type HandPiece struct {
	Piece    Piece
	Quantity int
}

// Dump serializes both sections in canonical form: entries in canonical
// order, quantities above one rendered as a decimal count prefix, sections
// joined by the separator. An empty side renders as the empty string.
func (h *Hands) Dump() string {
	var sb strings.Builder
	h.dumpSection(&sb, SideFirst)
	sb.WriteByte(HandSeparator)
	h.dumpSection(&sb, SideSecond)
	return sb.String()
}

func (h *Hands) dumpSection(sb *strings.Builder, side Side) {
	for _, hp := range h.Pieces(side) {
		if hp.Quantity > 1 {
			sb.WriteString(strconv.Itoa(hp.Quantity))
		}
		sb.WriteString(h.codec.RenderPiece(hp.Piece))
	}
}
