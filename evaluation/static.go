// Package evaluation contains the static position evaluator: material,
// piece-square bonuses and a mobility count, summed with white positive and
// black negative.
package evaluation

import (
	"fmt"

	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/piece"
)

// Components is an evaluation split by term.
type Components struct {
	Material   int
	Positional int
	Mobility   int
}

func (c Components) Total() int {
	return c.Material + c.Positional + c.Mobility
}

func (c Components) String() string {
	return fmt.Sprintf("material %d, positional %d, mobility %d (total %d)",
		c.Material, c.Positional, c.Mobility, c.Total())
}

// StaticEvaluator is stateless; the zero value works.
type StaticEvaluator struct{}

func NewStaticEvaluator() *StaticEvaluator {
	return &StaticEvaluator{}
}

func (e *StaticEvaluator) Evaluate(pos *board.Position) int {
	return e.Breakdown(pos).Total()
}

// Breakdown evaluates every occupied square. Anything without the white flag
// counts for black.
func (e *StaticEvaluator) Breakdown(pos *board.Position) Components {
	var c Components
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			sq := board.Sq(row, col)
			pc := pos.GetPiece(sq)
			if pc == piece.Empty {
				continue
			}
			material := pc.Value()
			mobility := Mobility(pos, sq, pc)
			if pc.IsWhite() {
				c.Material += material
				c.Positional += squareBonus(pc.Type(), row, col)
				c.Mobility += mobility
			} else {
				c.Material -= material
				c.Positional -= squareBonus(pc.Type(), 7-row, col)
				c.Mobility -= mobility
			}
		}
	}
	return c
}

func squareBonus(t piece.Code, row, col int) int {
	tbl, ok := tables[t]
	if !ok {
		return 0
	}
	return tbl[row][col]
}
