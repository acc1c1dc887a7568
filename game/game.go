// Package game drives a search-played chess game: it alternates the side to
// move, keeps the turn history and can take turns back.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/move"
	"github.com/domino14/rookery/movegen"
	"github.com/domino14/rookery/piece"
	"github.com/domino14/rookery/search"
)

const DefaultDepth = 4

var (
	ErrNoLegalMoves  = errors.New("no legal moves")
	ErrNothingToUndo = errors.New("no turns to undo")
	ErrIllegalMove   = errors.New("move was not generated for this position")
)

type PlayState int

const (
	Playing PlayState = iota
	NoLegalMoves
	TurnLimit
)

func (p PlayState) String() string {
	switch p {
	case Playing:
		return "playing"
	case NoLegalMoves:
		return "no-legal-moves"
	case TurnLimit:
		return "turn-limit"
	}
	return "unknown"
}

// Game owns a position and plays it forward with a solver. It does not
// know anything about checkmate; a game ends when the side to move has no
// generated moves or when a turn limit is hit.
type Game struct {
	pos     *board.Position
	movegen movegen.MoveGenerator
	solver  *search.Solver

	whiteDepth int
	blackDepth int

	history []Turn
	playing PlayState
}

// NewGame takes ownership of pos.
func NewGame(pos *board.Position, gen movegen.MoveGenerator, solver *search.Solver) *Game {
	return &Game{
		pos:        pos,
		movegen:    gen,
		solver:     solver,
		whiteDepth: DefaultDepth,
		blackDepth: DefaultDepth,
		playing:    Playing,
	}
}

// SetDepth sets the search depth used when side is on move.
func (g *Game) SetDepth(side piece.Code, depth int) {
	if side == piece.Black {
		g.blackDepth = depth
	} else {
		g.whiteDepth = depth
	}
}

func (g *Game) Depth(side piece.Code) int {
	if side == piece.Black {
		return g.blackDepth
	}
	return g.whiteDepth
}

// PlayTurn searches for the side to move and plays the result.
func (g *Game) PlayTurn() (Turn, error) {
	side := g.pos.SideToMove()
	m, val, ok := g.solver.SearchWithValue(g.pos, g.Depth(side))
	if !ok {
		g.playing = NoLegalMoves
		log.Info().Str("side", piece.ColorName(side)).Int("turn", len(g.history)+1).
			Msg("no-legal-moves")
		return Turn{}, ErrNoLegalMoves
	}
	t := g.apply(m)
	t.Value = val
	t.Nodes = g.solver.Nodes()
	g.history[len(g.history)-1] = t
	return t, nil
}

// PlayMove plays a move chosen outside the solver. It must be one of the
// moves generated for the current position.
func (g *Game) PlayMove(m move.Move) (Turn, error) {
	moves := g.movegen.GenAll(g.pos)
	if !lo.Contains(moves, m) {
		return Turn{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	return g.apply(m), nil
}

func (g *Game) apply(m move.Move) Turn {
	side := g.pos.SideToMove()
	captured := g.pos.MakeMove(m.From, m.To)
	g.pos.ToggleSideToMove()
	t := Turn{
		Number:   len(g.history) + 1,
		Side:     side,
		Move:     m,
		Captured: captured,
	}
	g.history = append(g.history, t)
	g.playing = Playing
	return t
}

// UnplayLastTurn takes back the last turn, whoever played it.
func (g *Game) UnplayLastTurn() error {
	if len(g.history) == 0 {
		return ErrNothingToUndo
	}
	t := g.history[len(g.history)-1]
	g.pos.ToggleSideToMove()
	g.pos.UndoMove(t.Move.From, t.Move.To, t.Captured)
	g.history = g.history[:len(g.history)-1]
	g.playing = Playing
	return nil
}

// PlayRandomOpening plays up to n uniformly random generated moves and
// returns how many were played.
func (g *Game) PlayRandomOpening(n int) int {
	played := 0
	for ; played < n; played++ {
		moves := g.movegen.GenAll(g.pos)
		if len(moves) == 0 {
			g.playing = NoLegalMoves
			break
		}
		g.apply(moves[frand.Intn(len(moves))])
	}
	log.Debug().Int("plies", played).Msg("played-random-opening")
	return played
}

// Play calls PlayTurn until the side to move has no moves or the history
// reaches maxTurns turns. maxTurns <= 0 means no limit. The context is
// checked between turns.
func (g *Game) Play(ctx context.Context, maxTurns int) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if maxTurns > 0 && len(g.history) >= maxTurns {
			g.playing = TurnLimit
			log.Info().Int("turns", len(g.history)).Msg("turn-limit-reached")
			return nil
		}
		t, err := g.PlayTurn()
		if errors.Is(err, ErrNoLegalMoves) {
			return nil
		}
		if err != nil {
			return err
		}
		log.Info().
			Int("turn", t.Number).
			Str("side", piece.ColorName(t.Side)).
			Str("move", t.Move.ShortDescription()).
			Int("value", t.Value).
			Uint64("nodes", t.Nodes).
			Msg("played-turn")
	}
}

func (g *Game) Position() *board.Position {
	return g.pos
}

func (g *Game) Solver() *search.Solver {
	return g.solver
}

func (g *Game) MoveGenerator() movegen.MoveGenerator {
	return g.movegen
}

func (g *Game) History() []Turn {
	return g.history
}

func (g *Game) State() PlayState {
	return g.playing
}

func (g *Game) Turn() int {
	return len(g.history)
}

func (g *Game) LastTurn() (Turn, bool) {
	if len(g.history) == 0 {
		return Turn{}, false
	}
	return g.history[len(g.history)-1], true
}
