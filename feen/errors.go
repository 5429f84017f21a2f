package feen

import (
	"fmt"
)

// ErrorKind classifies codec failures.
type ErrorKind uint8

const (
	// KindSyntax is a structural grammar violation: unexpected character,
	// empty rank, missing or extra section separator, wrong-case letter,
	// unterminated bracket.
	KindSyntax ErrorKind = iota

	// KindCount is an invalid run length or reserve quantity: leading zero,
	// literal 0 or 1 quantity, or a magnitude above the configured ceiling.
	KindCount

	// KindPiece is a failure delegated from the PieceCodec.
	KindPiece

	// KindBounds is an internal structural-invariant violation, such as a
	// separator-count mismatch in direct construction. Unreachable through
	// the parsing entry points.
	KindBounds
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindCount:
		return "count"
	case KindPiece:
		return "piece"
	case KindBounds:
		return "bounds"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Error is a codec failure with positional context. Rank is the zero-based
// rank index and Col the zero-based byte offset within the field or rank
// text; either is -1 when not determinable.
type Error struct {
	Kind ErrorKind
	Msg  string
	Rank int
	Col  int
	Err  error // underlying PieceCodec error, if any
}

func (e *Error) Error() string {
	switch {
	case e.Rank >= 0 && e.Col >= 0:
		return fmt.Sprintf("%s error: %s (rank %d, col %d)", e.Kind, e.Msg, e.Rank, e.Col)
	case e.Rank >= 0:
		return fmt.Sprintf("%s error: %s (rank %d)", e.Kind, e.Msg, e.Rank)
	case e.Col >= 0:
		return fmt.Sprintf("%s error: %s (col %d)", e.Kind, e.Msg, e.Col)
	default:
		return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is one of the kind sentinels (ErrSyntax,
// ErrCount, ErrPiece, ErrBounds) matching this error's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Kind == e.Kind
}

// Kind sentinels for errors.Is matching.
var (
	ErrSyntax = &Error{Kind: KindSyntax, Rank: -1, Col: -1}
	ErrCount  = &Error{Kind: KindCount, Rank: -1, Col: -1}
	ErrPiece  = &Error{Kind: KindPiece, Rank: -1, Col: -1}
	ErrBounds = &Error{Kind: KindBounds, Rank: -1, Col: -1}
)

// syntaxErr builds a Syntax error with optional positional context.
func syntaxErr(rank, col int, format string, args ...interface{}) *Error {
	return &Error{Kind: KindSyntax, Msg: fmt.Sprintf(format, args...), Rank: rank, Col: col}
}

// countErr builds a Count error with optional positional context.
func countErr(rank, col int, format string, args ...interface{}) *Error {
	return &Error{Kind: KindCount, Msg: fmt.Sprintf(format, args...), Rank: rank, Col: col}
}

// pieceErr wraps a PieceCodec failure with positional context.
func pieceErr(rank, col int, err error) *Error {
	return &Error{Kind: KindPiece, Msg: err.Error(), Rank: rank, Col: col, Err: err}
}

// boundsErr builds a Bounds error.
func boundsErr(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBounds, Msg: fmt.Sprintf(format, args...), Rank: -1, Col: -1}
}
