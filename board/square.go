package board

import "fmt"

// Dim is the number of rows and columns on a chess board.
const Dim = 8

// A Square is a (row, col) coordinate. Row 0 is black's back rank and row 7
// is white's back rank.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// IsValidSquare is true when both coordinates are on the board.
func IsValidSquare(sq Square) bool {
	return sq.Row >= 0 && sq.Row < Dim && sq.Col >= 0 && sq.Col < Dim
}

// Offset returns the square dr rows and dc columns away. The result may be
// off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// Index is the row-major index 0..63.
func (s Square) Index() int {
	return s.Row*Dim + s.Col
}

// String renders the square as file and rank, so row 0 col 0 is "a8".
func (s Square) String() string {
	if !IsValidSquare(s) {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, Dim-s.Row)
}
