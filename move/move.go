// Package move defines a chess move as a bare (from, to) pair. A move
// carries no captured piece and no special flags; castling is just a two
// square king displacement.
package move

import (
	"strings"

	"github.com/domino14/rookery/board"
)

// Move is a from-square and a to-square.
type Move struct {
	From board.Square
	To   board.Square
}

// New is shorthand for Move{from, to}.
func New(from, to board.Square) Move {
	return Move{From: from, To: to}
}

// String renders coordinate notation, e.g. e2e4.
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ShortDescription is what the logs and the shell print.
func (m Move) ShortDescription() string {
	return m.String()
}

// Equals compares both squares.
func (m Move) Equals(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// ListString joins moves with spaces.
func ListString(moves []Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
