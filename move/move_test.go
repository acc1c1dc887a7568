package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/rookery/board"
)

func TestMoveString(t *testing.T) {
	is := is.New(t)
	m := New(board.Sq(6, 4), board.Sq(4, 4))
	is.Equal(m.String(), "e2e4")
	is.Equal(m.ShortDescription(), "e2e4")

	castle := New(board.Sq(7, 4), board.Sq(7, 6))
	is.Equal(castle.String(), "e1g1")
}

func TestEquals(t *testing.T) {
	is := is.New(t)
	a := New(board.Sq(1, 1), board.Sq(2, 1))
	b := New(board.Sq(1, 1), board.Sq(2, 1))
	c := New(board.Sq(1, 1), board.Sq(3, 1))
	is.True(a.Equals(b))
	is.True(!a.Equals(c))
	is.Equal(a, b)
}

func TestListString(t *testing.T) {
	is := is.New(t)
	is.Equal(ListString(nil), "")
	is.Equal(ListString([]Move{
		New(board.Sq(6, 4), board.Sq(4, 4)),
		New(board.Sq(1, 4), board.Sq(3, 4)),
	}), "e2e4 e7e5")
}
