// Package movegen contains all the move-generating functions. Moves are
// pseudo-legal: each piece follows its own movement rules, but nothing checks
// whether the mover's king is left attacked.
package movegen

import (
	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/move"
	"github.com/domino14/rookery/piece"
)

// MoveGenerator enumerates moves for the position's side to move.
type MoveGenerator interface {
	GenAll(pos *board.Position) []move.Move
}

type offset struct{ dr, dc int }

var (
	knightOffsets = []offset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = []offset{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	bishopDirections = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirections   = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirections  = append(append([]offset{}, bishopDirections...), rookDirections...)
)

// Generator is the standard pseudo-legal generator. The zero value is ready
// to use and it holds no state between calls.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GenAll scans the board row-major and appends the moves of every piece whose
// color flag equals the side to move. The order is deterministic; the search
// relies on it for tie-breaking.
func (g *Generator) GenAll(pos *board.Position) []move.Move {
	side := pos.SideToMove()
	var moves []move.Move
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			sq := board.Sq(row, col)
			pc := pos.GetPiece(sq)
			if pc == piece.Empty || pc.Color() != side {
				continue
			}
			moves = appendPieceMoves(moves, pos, sq, pc)
		}
	}
	return moves
}

// PieceMoves generates the moves of whatever stands on sq, regardless of
// whose turn it is.
func PieceMoves(pos *board.Position, sq board.Square) []move.Move {
	pc := pos.GetPiece(sq)
	if pc == piece.Empty {
		return nil
	}
	return appendPieceMoves(nil, pos, sq, pc)
}

func appendPieceMoves(moves []move.Move, pos *board.Position, sq board.Square, pc piece.Code) []move.Move {
	switch pc.Type() {
	case piece.Pawn:
		return appendPawnMoves(moves, pos, sq, pc)
	case piece.Knight:
		return appendStepMoves(moves, pos, sq, pc, knightOffsets)
	case piece.Bishop:
		return appendSlidingMoves(moves, pos, sq, pc, bishopDirections)
	case piece.Rook:
		return appendSlidingMoves(moves, pos, sq, pc, rookDirections)
	case piece.Queen:
		return appendSlidingMoves(moves, pos, sq, pc, queenDirections)
	case piece.King:
		return appendKingMoves(moves, pos, sq, pc)
	}
	return moves
}
