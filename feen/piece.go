package feen

import (
	"fmt"
)

// Piece is an opaque piece identity produced by a PieceCodec. Equality is by
// value; the canonical textual form is recovered through RenderPiece of the
// codec that produced it. The codec layer owns piece semantics; this package
// never interprets a Piece beyond the token grammar stated in PieceCodec.
type Piece string

// PieceCodec turns piece token text into Piece values and back. The placement
// and hands codecs invoke it for every occupied cell and every reserve entry.
//
// Contract: RenderPiece(p) of a successfully parsed token s equals s whenever
// s is already in canonical textual form, and the rendered form matches the
// grammar `prefix? letter suffix?` with prefix one of '+' '-', letter a single
// ASCII letter whose case encodes the owning side, and suffix an apostrophe.
// Implementations must be stateless and reentrant.
type PieceCodec interface {
	ParsePiece(token string) (Piece, error)
	RenderPiece(p Piece) string
}

// BasicPieceCodec implements the single-letter piece token grammar: an
// optional '+' or '-' prefix, exactly one ASCII letter, an optional apostrophe
// suffix. Parsed tokens are kept verbatim as their canonical form.
type BasicPieceCodec struct{}

// ParsePiece validates token against the basic grammar.
func (BasicPieceCodec) ParsePiece(token string) (Piece, error) {
	rest := token
	if rest == "" {
		return "", fmt.Errorf("empty piece token")
	}
	if rest[0] == '+' || rest[0] == '-' {
		rest = rest[1:]
	}
	if rest == "" {
		return "", fmt.Errorf("piece token %q: prefix without letter", token)
	}
	if !isASCIILetter(rest[0]) {
		return "", fmt.Errorf("piece token %q: expected ASCII letter, found %q", token, rest[0])
	}
	rest = rest[1:]
	if rest == "'" {
		rest = ""
	}
	if rest != "" {
		return "", fmt.Errorf("piece token %q: trailing %q after piece letter", token, rest)
	}
	return Piece(token), nil
}

// RenderPiece returns the canonical token text.
func (BasicPieceCodec) RenderPiece(p Piece) string {
	return string(p)
}

// pieceParts are the canonical-ordering attributes of a piece, derived from
// its rendered token. Tokens outside the stated grammar sort after all
// conforming tokens, bytewise on the full text, so exotic codecs still get a
// deterministic dump.
type pieceParts struct {
	prefix    byte // '+', '-', or 0
	letter    byte // 0 if the token does not match the grammar
	suffix    byte // apostrophe or 0
	conforms  bool
	canonical string
}

func splitPieceToken(tok string) pieceParts {
	parts := pieceParts{canonical: tok}
	rest := tok
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		parts.prefix = rest[0]
		rest = rest[1:]
	}
	if rest == "" || !isASCIILetter(rest[0]) {
		return parts
	}
	parts.letter = rest[0]
	rest = rest[1:]
	if rest == "'" {
		parts.suffix = '\''
		rest = ""
	}
	parts.conforms = rest == ""
	return parts
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isUpperLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func lowerLetter(b byte) byte {
	if isUpperLetter(b) {
		return b + ('a' - 'A')
	}
	return b
}

func upperLetter(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
