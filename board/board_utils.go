package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/rookery/piece"
)

var (
	ErrBadLayout = errors.New("bad board layout")
)

// ToDisplayText dumps the board one rank per line, row 0 first, symbols
// separated by a single space.
func (p *Position) ToDisplayText() string {
	var sb strings.Builder
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(p.squares[row][col].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FromLayout builds a position from eight rows of eight piece symbols, row 0
// first. Spaces inside a row are ignored, so the output of ToDisplayText
// reads back in.
func FromLayout(rows []string, turn piece.Code) (*Position, error) {
	if len(rows) != Dim {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrBadLayout, Dim, len(rows))
	}
	p := NewEmptyPosition(turn)
	for row, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len([]rune(line)) != Dim {
			return nil, fmt.Errorf("%w: row %d has %d squares", ErrBadLayout, row, len([]rune(line)))
		}
		for col, r := range []rune(line) {
			c, err := piece.FromSymbol(r)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %w", ErrBadLayout, row, err)
			}
			p.squares[row][col] = c
		}
	}
	return p, nil
}

// FromText is FromLayout over a multi-line string. Blank lines are skipped.
func FromText(text string, turn piece.Code) (*Position, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.TrimSpace(line))
	}
	return FromLayout(rows, turn)
}
