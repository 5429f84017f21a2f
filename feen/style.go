package feen

import (
	"fmt"
)

// Side identifies one of the two players. The first player owns uppercase
// letters throughout the notation; the second player owns lowercase.
type Side uint8

const (
	SideFirst Side = iota
	SideSecond
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideFirst:
		return "first"
	case SideSecond:
		return "second"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// sideOfLetter maps a letter's case to the owning side.
func sideOfLetter(b byte) Side {
	if isUpperLetter(b) {
		return SideFirst
	}
	return SideSecond
}

// Style is the active-style field: a single ASCII letter whose case names the
// side to move.
type Style struct {
	letter byte
}

// ParseStyle parses the style/turn field. The field is exactly one ASCII
// letter; anything else is a Syntax error.
func ParseStyle(text string) (Style, error) {
	if len(text) != 1 || !isASCIILetter(text[0]) {
		return Style{}, syntaxErr(-1, -1, "style field %q: want a single ASCII letter", text)
	}
	return Style{letter: text[0]}, nil
}

// NewStyle builds a style field for the given letter, forcing its case to
// match side.
func NewStyle(letter byte, side Side) (Style, error) {
	if !isASCIILetter(letter) {
		return Style{}, syntaxErr(-1, -1, "style letter %q: want an ASCII letter", letter)
	}
	if side == SideFirst {
		return Style{letter: upperLetter(letter)}, nil
	}
	return Style{letter: lowerLetter(letter)}, nil
}

// Letter returns the style letter as written.
func (s Style) Letter() byte {
	return s.letter
}

// ActiveSide returns the side to move, encoded by the letter's case.
func (s Style) ActiveSide() Side {
	return sideOfLetter(s.letter)
}

// Dump regenerates the style field text.
func (s Style) Dump() string {
	return string(s.letter)
}
