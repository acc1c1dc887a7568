package evaluation

import (
	"github.com/domino14/rookery/board"
)

// Evaluator scores a position. Positive favors white.
type Evaluator interface {
	Evaluate(pos *board.Position) int
}
