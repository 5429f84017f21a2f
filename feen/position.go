package feen

import (
	"strings"
)

// FieldSeparator joins the three fields of a complete position record.
const FieldSeparator = ' '

// Position is a complete FEEN record: board placement, both reserves, and
// the active-style field. Immutable after construction.
type Position struct {
	placement *Placement
	hands     *Hands
	style     Style
}

// PositionOptions configures position parsing.
type PositionOptions struct {
	// Codec resolves piece tokens in both the placement and the reserves.
	// Defaults to BasicPieceCodec.
	Codec PieceCodec

	// Strict applies canonical-form validation to the reserve field.
	Strict bool
}

// DefaultPositionOptions returns the lenient default configuration.
func DefaultPositionOptions() PositionOptions {
	return PositionOptions{Codec: BasicPieceCodec{}}
}

// ParsePosition parses a complete record with the lenient defaults.
func ParsePosition(text string) (*Position, error) {
	return ParsePositionWithOptions(text, DefaultPositionOptions())
}

// ParsePositionWithOptions parses `placement SP reserves SP style`: exactly
// three fields joined by single spaces.
func ParsePositionWithOptions(text string, opts PositionOptions) (*Position, error) {
	fields := strings.Split(text, string(FieldSeparator))
	if len(fields) != 3 {
		return nil, syntaxErr(-1, -1, "position record has %d fields, want 3", len(fields))
	}
	placement, err := ParsePlacementWithOptions(fields[0], PlacementOptions{Codec: opts.Codec})
	if err != nil {
		return nil, err
	}
	hands, err := ParseHandsWithOptions(fields[1], HandsOptions{Codec: opts.Codec, Strict: opts.Strict})
	if err != nil {
		return nil, err
	}
	style, err := ParseStyle(fields[2])
	if err != nil {
		return nil, err
	}
	return &Position{placement: placement, hands: hands, style: style}, nil
}

// NewPosition assembles a record from already-constructed parts.
func NewPosition(placement *Placement, hands *Hands, style Style) (*Position, error) {
	if placement == nil || hands == nil {
		return nil, boundsErr("position needs a placement and hands")
	}
	return &Position{placement: placement, hands: hands, style: style}, nil
}

// Placement returns the board placement.
func (p *Position) Placement() *Placement {
	return p.placement
}

// Hands returns both reserves.
func (p *Position) Hands() *Hands {
	return p.hands
}

// Style returns the active-style field.
func (p *Position) Style() Style {
	return p.style
}

// Dump serializes the record: three canonical fields joined by single
// spaces. The reserve field always comes out canonical regardless of the
// form it was parsed from.
func (p *Position) Dump() string {
	var sb strings.Builder
	sb.WriteString(p.placement.Dump())
	sb.WriteByte(FieldSeparator)
	sb.WriteString(p.hands.Dump())
	sb.WriteByte(FieldSeparator)
	sb.WriteString(p.style.Dump())
	return sb.String()
}
