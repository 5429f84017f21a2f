// Package feen implements FEEN, a rule-agnostic board-game position
// notation.
//
// FEEN encodes, in one line, an arbitrarily-dimensioned board configuration,
// the multiset of pieces each side holds in reserve, and the active style.
// It is designed to be:
//   - Rule-agnostic (no legality, no move generation)
//   - Dimension-agnostic (1D ranks through irregular N-D structures)
//   - Losslessly round-trippable (parse(dump(p)) == p, exactly)
//   - Canonical (one deterministic string per logical reserve multiset)
//
// # Placement
//
// A placement field is a sequence of ranks separated by runs of '/'. The run
// length is the separator depth: how many dimension boundaries are crossed
// at that point. Dimension = 1 + the maximum depth present (1 if none).
// Within a rank, a decimal numeral compresses that many consecutive empty
// cells, and anything else is a piece token resolved by a PieceCodec.
// Irregular rank widths and section sizes are first-class and round-trip
// exactly.
//
//	8/8/8/8/8/8/8/8        two-dimensional, eight empty ranks of eight
//	rnb//RNB               depth-2 separator: a 3D structure
//	r2/3q/p                irregular widths, preserved verbatim
//
// # Reserves
//
// A reserve field is `upper "/" lower`: the first player's pieces (uppercase
// letters), then the second player's (lowercase). An entry is an optional
// decimal count (omitted when 1), then a piece token. Dumping always emits
// the canonical form: entries merged, ordered by quantity descending then
// letter, counts prefixed only above one.
//
//	3P2B/p    three P, two B in the first hand; one p in the second
//
// # Strict and lenient parsing
//
// Lenient parsing accepts unmerged or unordered reserve entries and merges
// them. Strict parsing rejects anything that is not already the canonical
// string, for callers that need to detect non-canonical input rather than
// normalize it.
//
// Parsing is pure and synchronous. All values are immutable after
// construction and safe for concurrent reads.
package feen
