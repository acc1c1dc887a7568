package movegen

import (
	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/move"
	"github.com/domino14/rookery/piece"
)

// appendPawnMoves handles pushes and diagonal captures. When a double push
// is considered, the capture row advances with it: captures are then tested
// two rows ahead instead of one.
func appendPawnMoves(moves []move.Move, pos *board.Position, from board.Square, pc piece.Code) []move.Move {
	dir, startRow := 1, 1
	if pc.IsWhite() {
		dir, startRow = -1, 6
	}

	row := from.Row + dir
	one := board.Sq(row, from.Col)
	if board.IsValidSquare(one) && pos.GetPiece(one) == piece.Empty {
		moves = append(moves, move.New(from, one))

		if from.Row == startRow {
			row += dir
			two := board.Sq(row, from.Col)
			if board.IsValidSquare(two) && pos.GetPiece(two) == piece.Empty {
				moves = append(moves, move.New(from, two))
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := board.Sq(row, from.Col+dc)
		if !board.IsValidSquare(to) {
			continue
		}
		target := pos.GetPiece(to)
		if target != piece.Empty && !piece.SameColor(target, pc) {
			moves = append(moves, move.New(from, to))
		}
	}
	return moves
}

// appendStepMoves handles single jumps (knight and king steps). A target is
// taken when it is empty or holds an enemy.
func appendStepMoves(moves []move.Move, pos *board.Position, from board.Square, pc piece.Code, offsets []offset) []move.Move {
	for _, o := range offsets {
		to := from.Offset(o.dr, o.dc)
		if !board.IsValidSquare(to) {
			continue
		}
		target := pos.GetPiece(to)
		if target == piece.Empty || !piece.SameColor(target, pc) {
			moves = append(moves, move.New(from, to))
		}
	}
	return moves
}

// appendSlidingMoves casts a ray per direction. Empty squares are added and
// the ray continues; an enemy is added and stops the ray; a friend stops it.
func appendSlidingMoves(moves []move.Move, pos *board.Position, from board.Square, pc piece.Code, dirs []offset) []move.Move {
	for _, d := range dirs {
		for i := 1; i < board.Dim; i++ {
			to := from.Offset(d.dr*i, d.dc*i)
			if !board.IsValidSquare(to) {
				break
			}
			target := pos.GetPiece(to)
			if target == piece.Empty {
				moves = append(moves, move.New(from, to))
				continue
			}
			if !piece.SameColor(target, pc) {
				moves = append(moves, move.New(from, to))
			}
			break
		}
	}
	return moves
}

func appendKingMoves(moves []move.Move, pos *board.Position, from board.Square, pc piece.Code) []move.Move {
	moves = appendStepMoves(moves, pos, from, pc, kingOffsets)

	// A castle whose landing square is off the board is skipped.
	if CanCastleKingside(pos, pc) {
		if to := from.Offset(0, 2); board.IsValidSquare(to) {
			moves = append(moves, move.New(from, to))
		}
	}
	if CanCastleQueenside(pos, pc) {
		if to := from.Offset(0, -2); board.IsValidSquare(to) {
			moves = append(moves, move.New(from, to))
		}
	}
	return moves
}
