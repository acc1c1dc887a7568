// Package piece defines the packed piece codes that live on a board square.
// A code is a piece type in the bottom three bits plus exactly one color
// flag. An empty square is the zero code.
package piece

import (
	"errors"
	"fmt"
)

// Code is a packed piece: type bits | color flag.
type Code uint8

const (
	Empty  Code = 0
	Pawn   Code = 1
	Knight Code = 2
	Bishop Code = 3
	Rook   Code = 4
	Queen  Code = 5
	King   Code = 6

	White Code = 8
	Black Code = 16

	TypeMask Code = 0b111
)

var ErrUnknownSymbol = errors.New("unknown piece symbol")

var values = [...]int{
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

var symbols = [...]rune{
	Pawn:   'p',
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
	King:   'k',
}

// New packs a piece type with a color flag.
func New(t, color Code) Code {
	return (t & TypeMask) | color
}

// Type returns the type bits only.
func (c Code) Type() Code {
	return c & TypeMask
}

// Color returns White, Black, or Empty if no color flag is set.
func (c Code) Color() Code {
	switch {
	case c&White != 0:
		return White
	case c&Black != 0:
		return Black
	}
	return Empty
}

func (c Code) IsEmpty() bool {
	return c == Empty
}

func (c Code) IsWhite() bool {
	return c&White != 0
}

// SameColor reports whether two codes agree on the white flag. This is the
// friend/enemy test used by move generation and mobility. It only
// looks at the white bit, so an empty square compares equal to black.
func SameColor(a, b Code) bool {
	return a&White == b&White
}

// Value is the material value of the piece type. Unknown types are worth 0.
func (c Code) Value() int {
	t := c.Type()
	if int(t) >= len(values) {
		return 0
	}
	return values[t]
}

// Symbol renders the code as a single character: uppercase for white,
// lowercase for black, '.' for an empty square or an unrecognised code.
func (c Code) Symbol() rune {
	t := c.Type()
	if t == Empty || int(t) >= len(symbols) || c.Color() == Empty {
		return '.'
	}
	r := symbols[t]
	if c.IsWhite() {
		return r - 'a' + 'A'
	}
	return r
}

func (c Code) String() string {
	return string(c.Symbol())
}

// FromSymbol is the inverse of Symbol.
func FromSymbol(r rune) (Code, error) {
	if r == '.' {
		return Empty, nil
	}
	color := Black
	lower := r
	if r >= 'A' && r <= 'Z' {
		color = White
		lower = r - 'A' + 'a'
	}
	for t, s := range symbols {
		if s != 0 && s == lower {
			return New(Code(t), color), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
}

// ColorName returns "white" or "black" for a color flag.
func ColorName(color Code) string {
	switch color {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

// Opponent flips a color flag.
func Opponent(color Code) Code {
	if color == White {
		return Black
	}
	return White
}
