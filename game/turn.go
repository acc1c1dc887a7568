package game

import (
	"fmt"

	"github.com/domino14/rookery/move"
	"github.com/domino14/rookery/piece"
)

// Turn is one entry in a game's history. Value and Nodes are zero for
// moves that were not chosen by the solver.
type Turn struct {
	Number   int
	Side     piece.Code
	Move     move.Move
	Captured piece.Code
	Value    int
	Nodes    uint64
}

func (t Turn) String() string {
	s := fmt.Sprintf("%d. %s %s", t.Number, piece.ColorName(t.Side), t.Move.ShortDescription())
	if !t.Captured.IsEmpty() {
		s += fmt.Sprintf(" x%c", t.Captured.Symbol())
	}
	if t.Nodes > 0 {
		s += fmt.Sprintf(" (value %d, %d nodes)", t.Value, t.Nodes)
	}
	return s
}
