package evaluation

import (
	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/piece"
)

type direction struct{ dr, dc int }

var (
	diagonals  = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonal = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allLines   = append(append([]direction{}, diagonals...), orthogonal...)
	jumps      = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// Mobility counts the squares a knight, bishop, rook or queen could move to.
// Pawns and kings have no mobility term. Castling and pawn rules play no
// part, so this is computed here rather than with movegen.
func Mobility(pos *board.Position, sq board.Square, pc piece.Code) int {
	switch pc.Type() {
	case piece.Bishop:
		return rayMobility(pos, sq, pc, diagonals)
	case piece.Rook:
		return rayMobility(pos, sq, pc, orthogonal)
	case piece.Queen:
		return rayMobility(pos, sq, pc, allLines)
	case piece.Knight:
		n := 0
		for _, d := range jumps {
			to := sq.Offset(d.dr, d.dc)
			if !board.IsValidSquare(to) {
				continue
			}
			target := pos.GetPiece(to)
			if target == piece.Empty || !piece.SameColor(target, pc) {
				n++
			}
		}
		return n
	}
	return 0
}

func rayMobility(pos *board.Position, sq board.Square, pc piece.Code, dirs []direction) int {
	n := 0
	for _, d := range dirs {
		for i := 1; i < board.Dim; i++ {
			to := sq.Offset(d.dr*i, d.dc*i)
			if !board.IsValidSquare(to) {
				break
			}
			target := pos.GetPiece(to)
			if target == piece.Empty {
				n++
				continue
			}
			if !piece.SameColor(target, pc) {
				n++
			}
			break
		}
	}
	return n
}
