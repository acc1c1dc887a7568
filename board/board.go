// Package board holds the mutable chess position that the whole search tree
// shares. Moves are applied and reverted in place; nothing here validates
// that a move is legal.
package board

import (
	"github.com/domino14/rookery/piece"
)

// Snapshot is the exact layout of all 64 squares in row-major order. It is
// comparable, so it can key a map directly.
type Snapshot [Dim * Dim]piece.Code

// Position is an 8x8 grid of piece codes plus the side to move.
type Position struct {
	squares [Dim][Dim]piece.Code
	turn    piece.Code
}

var backRank = [Dim]piece.Code{
	piece.Rook, piece.Knight, piece.Bishop, piece.Queen,
	piece.King, piece.Bishop, piece.Knight, piece.Rook,
}

// NewStartingPosition sets up the standard initial position with white to move.
func NewStartingPosition() *Position {
	p := &Position{turn: piece.White}
	for col := 0; col < Dim; col++ {
		p.squares[0][col] = piece.New(backRank[col], piece.Black)
		p.squares[1][col] = piece.New(piece.Pawn, piece.Black)
		p.squares[6][col] = piece.New(piece.Pawn, piece.White)
		p.squares[7][col] = piece.New(backRank[col], piece.White)
	}
	return p
}

// NewEmptyPosition returns a board with no pieces.
func NewEmptyPosition(turn piece.Code) *Position {
	return &Position{turn: turn}
}

// GetPiece reads a square. The square is not bounds-checked.
func (p *Position) GetPiece(sq Square) piece.Code {
	return p.squares[sq.Row][sq.Col]
}

// SetPiece writes a square unconditionally. The square is not bounds-checked.
func (p *Position) SetPiece(sq Square, c piece.Code) {
	p.squares[sq.Row][sq.Col] = c
}

// MakeMove moves whatever is on from to to, clearing from, and returns the
// code that was on to. Side to move is not touched.
func (p *Position) MakeMove(from, to Square) piece.Code {
	moving := p.GetPiece(from)
	captured := p.GetPiece(to)
	p.SetPiece(to, moving)
	p.SetPiece(from, piece.Empty)
	return captured
}

// UndoMove reverses MakeMove. It is an exact inverse only when calls are
// paired in LIFO order with the same arguments.
func (p *Position) UndoMove(from, to Square, captured piece.Code) {
	moving := p.GetPiece(to)
	p.SetPiece(from, moving)
	p.SetPiece(to, captured)
}

// Apply makes the move and returns the matching undo. Callers defer the
// returned func so the board is restored on every return path.
func (p *Position) Apply(from, to Square) func() {
	captured := p.MakeMove(from, to)
	return func() {
		p.UndoMove(from, to, captured)
	}
}

// IsValidSquare is true when the square is on the board.
func (p *Position) IsValidSquare(sq Square) bool {
	return IsValidSquare(sq)
}

func (p *Position) SideToMove() piece.Code {
	return p.turn
}

func (p *Position) SetSideToMove(c piece.Code) {
	p.turn = c
}

// ToggleSideToMove flips between the white and black flags.
func (p *Position) ToggleSideToMove() {
	p.turn = piece.Opponent(p.turn)
}

// Snapshot copies out the layout. The side to move is not part of it.
func (p *Position) Snapshot() Snapshot {
	var s Snapshot
	for row := 0; row < Dim; row++ {
		copy(s[row*Dim:(row+1)*Dim], p.squares[row][:])
	}
	return s
}

// Copy returns an independent clone.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// CopyFrom overwrites this position with other.
func (p *Position) CopyFrom(other *Position) {
	p.squares = other.squares
	p.turn = other.turn
}

// Equals compares every square and the side to move.
func (p *Position) Equals(other *Position) bool {
	return p.squares == other.squares && p.turn == other.turn
}

// Pieces counts the occupied squares.
func (p *Position) Pieces() int {
	n := 0
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			if p.squares[row][col] != piece.Empty {
				n++
			}
		}
	}
	return n
}
