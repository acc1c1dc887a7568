package image

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/move"
	"github.com/domino14/rookery/piece"
)

func wellFormed(data []byte) error {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func TestStartingPositionSVG(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	WriteSVG(&buf, board.NewStartingPosition(), DefaultOptions())
	is.NoErr(wellFormed(buf.Bytes()))

	out := buf.String()
	is.Equal(strings.Count(out, "<rect"), 64)
	is.Equal(strings.Count(out, "♙"), 8)
	is.Equal(strings.Count(out, "♟"), 8)
	is.Equal(strings.Count(out, "♔"), 1)
	is.Equal(strings.Count(out, "♚"), 1)
}

func TestHighlightMove(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	opts := DefaultOptions().HighlightMove(move.New(board.Sq(6, 4), board.Sq(4, 4)))
	opts.Highlight = append(opts.Highlight, board.Sq(9, 9))
	WriteSVG(&buf, board.NewStartingPosition(), opts)
	is.NoErr(wellFormed(buf.Bytes()))
	// off-board squares are skipped.
	is.Equal(strings.Count(buf.String(), "<rect"), 66)
}

func TestEmptyBoardNoCoordinates(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Coordinates = false
	opts.SquareSize = 10
	WriteSVG(&buf, board.NewEmptyPosition(piece.White), opts)
	is.NoErr(wellFormed(buf.Bytes()))
	is.True(strings.Contains(buf.String(), `width="80"`))
	is.True(!strings.Contains(buf.String(), "<text"))
}
