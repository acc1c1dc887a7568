package movegen

import (
	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/piece"
)

// Castling is only checked by AND-ing the codes on the king and rook home
// squares. Nothing verifies the squares between them are empty or that any
// square is attacked, and the rook is never moved by move application.

// castleRow is 0 for a white mover and 7 for a black one.
func castleRow(king piece.Code) int {
	if king.IsWhite() {
		return 0
	}
	return 7
}

func castleMask(king piece.Code) piece.Code {
	return piece.King | piece.Rook | (king & piece.White)
}

// CanCastleKingside tests the e and h files of the castle row.
func CanCastleKingside(pos *board.Position, king piece.Code) bool {
	row := castleRow(king)
	return pos.GetPiece(board.Sq(row, 4))&pos.GetPiece(board.Sq(row, 7)) == castleMask(king)
}

// CanCastleQueenside tests the e and a files of the castle row.
func CanCastleQueenside(pos *board.Position, king piece.Code) bool {
	row := castleRow(king)
	return pos.GetPiece(board.Sq(row, 4))&pos.GetPiece(board.Sq(row, 0)) == castleMask(king)
}
