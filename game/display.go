package game

import (
	"fmt"
	"strings"

	"github.com/domino14/rookery/piece"
)

// ToDisplayText is the board plus a few status lines.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	rows := strings.Split(strings.TrimSuffix(g.pos.ToDisplayText(), "\n"), "\n")
	for i, r := range rows {
		fmt.Fprintf(&sb, "%d  %s\n", 8-i, r)
	}
	sb.WriteString("   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Turn %d, %s to move (%s)\n", len(g.history)+1,
		piece.ColorName(g.pos.SideToMove()), g.playing)
	if t, ok := g.LastTurn(); ok {
		fmt.Fprintf(&sb, "Last: %s\n", t)
	}
	return sb.String()
}
