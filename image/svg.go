// Package image renders a position as an SVG diagram.
package image

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/move"
	"github.com/domino14/rookery/piece"
)

type Options struct {
	SquareSize int
	LightColor string
	DarkColor  string
	// Highlight squares get a translucent overlay.
	Highlight      []board.Square
	HighlightColor string
	Coordinates    bool
}

func DefaultOptions() Options {
	return Options{
		SquareSize:     60,
		LightColor:     "#f0d9b5",
		DarkColor:      "#b58863",
		HighlightColor: "#cdd26a",
		Coordinates:    true,
	}
}

// HighlightMove marks a move's from and to squares.
func (o Options) HighlightMove(m move.Move) Options {
	o.Highlight = []board.Square{m.From, m.To}
	return o
}

var glyphs = map[piece.Code]string{
	piece.Pawn:   "♙♟",
	piece.Knight: "♘♞",
	piece.Bishop: "♗♝",
	piece.Rook:   "♖♜",
	piece.Queen:  "♕♛",
	piece.King:   "♔♚",
}

func glyph(c piece.Code) string {
	g, ok := glyphs[c.Type()]
	if !ok {
		return ""
	}
	r := []rune(g)
	if c.IsWhite() {
		return string(r[0])
	}
	return string(r[1])
}

// WriteSVG draws the board with row 0 at the top.
func WriteSVG(w io.Writer, pos *board.Position, opts Options) {
	sz := opts.SquareSize
	if sz <= 0 {
		sz = DefaultOptions().SquareSize
	}
	margin := 0
	if opts.Coordinates {
		margin = sz / 3
	}
	side := board.Dim*sz + margin

	canvas := svg.New(w)
	canvas.Start(side, side)
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			color := opts.LightColor
			if (row+col)%2 == 1 {
				color = opts.DarkColor
			}
			canvas.Rect(margin+col*sz, row*sz, sz, sz, "fill:"+color)
		}
	}
	for _, sq := range opts.Highlight {
		if !board.IsValidSquare(sq) {
			continue
		}
		canvas.Rect(margin+sq.Col*sz, sq.Row*sz, sz, sz,
			fmt.Sprintf("fill:%s;fill-opacity:0.6", opts.HighlightColor))
	}
	fontSize := sz * 4 / 5
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			c := pos.GetPiece(board.Sq(row, col))
			g := glyph(c)
			if g == "" {
				continue
			}
			canvas.Text(margin+col*sz+sz/2, row*sz+sz*3/4, g,
				fmt.Sprintf("text-anchor:middle;font-size:%dpx", fontSize))
		}
	}
	if opts.Coordinates {
		labelStyle := fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:#444", margin*2/3)
		for i := 0; i < board.Dim; i++ {
			canvas.Text(margin/2, i*sz+sz/2+margin/4, fmt.Sprint(board.Dim-i), labelStyle)
			canvas.Text(margin+i*sz+sz/2, board.Dim*sz+margin*3/4, string(rune('a'+i)), labelStyle)
		}
	}
	canvas.End()
}
