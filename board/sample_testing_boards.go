package board

// This file contains some sample boards, used mostly for testing and for
// loading into the shell.

import (
	"fmt"
	"sort"

	"github.com/domino14/rookery/piece"
)

// Layout is a text representation of a board, row 0 first.
type Layout string

const (
	// StartingLayout is the standard initial position.
	StartingLayout Layout = `
r n b q k b n r
p p p p p p p p
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
P P P P P P P P
R N B Q K B N R
`
	// RookRayLayout has a white rook on c4 looking at a black pawn on e4.
	RookRayLayout Layout = `
. . . . k . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . R . p . . .
. . . . . . . .
. . . . . . . .
. . . . K . . .
`
	// HangingQueenLayout leaves a black queen where a white knight can take it.
	HangingQueenLayout Layout = `
. . . . k . . .
. . . . . . . .
. . . q . . . .
. . . . . . . .
. . . . N . . .
. . . . . . . .
. . . . . . . .
. . . . K . . .
`
	// SparseEndgameLayout is a small position used for exhaustive search checks.
	SparseEndgameLayout Layout = `
. . . . k . . .
. . . . . . . .
. . . . . . . .
. . . b . . . .
. . . . . . . .
. . N . . . . .
. . . . . . . .
R . . . K . . .
`
	// LoneKingLayout has only a white king on h1. It cannot castle.
	LoneKingLayout Layout = `
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . K
`
)

var sampleLayouts = map[string]Layout{
	"start":         StartingLayout,
	"rookray":       RookRayLayout,
	"hangingqueen":  HangingQueenLayout,
	"sparseendgame": SparseEndgameLayout,
	"loneking":      LoneKingLayout,
}

// SetToLayout replaces this position's squares with the given layout,
// keeping the side to move.
func (p *Position) SetToLayout(l Layout) error {
	np, err := FromText(string(l), p.turn)
	if err != nil {
		return err
	}
	p.CopyFrom(np)
	return nil
}

// SampleLayout looks up a named layout.
func SampleLayout(name string) (Layout, error) {
	l, ok := sampleLayouts[name]
	if !ok {
		return "", fmt.Errorf("%w: no sample layout named %q", ErrBadLayout, name)
	}
	return l, nil
}

// SampleLayoutNames lists the named layouts in sorted order.
func SampleLayoutNames() []string {
	names := make([]string, 0, len(sampleLayouts))
	for n := range sampleLayouts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// MustFromLayout is for tests and fixtures.
func MustFromLayout(l Layout, turn piece.Code) *Position {
	p, err := FromText(string(l), turn)
	if err != nil {
		panic(err)
	}
	return p
}
