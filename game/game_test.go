package game

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/evaluation"
	"github.com/domino14/rookery/move"
	"github.com/domino14/rookery/movegen"
	"github.com/domino14/rookery/piece"
	"github.com/domino14/rookery/search"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func newTestGame(pos *board.Position, depth int) *Game {
	gen := movegen.NewGenerator()
	g := NewGame(pos, gen, search.NewSolver(gen, evaluation.NewStaticEvaluator()))
	g.SetDepth(piece.White, depth)
	g.SetDepth(piece.Black, depth)
	return g
}

func TestPlayTurnAlternatesSides(t *testing.T) {
	is := is.New(t)
	g := newTestGame(board.NewStartingPosition(), 2)

	t1, err := g.PlayTurn()
	is.NoErr(err)
	is.Equal(t1.Number, 1)
	is.Equal(t1.Side, piece.White)
	is.True(t1.Nodes > 0)
	is.Equal(g.Position().SideToMove(), piece.Black)

	t2, err := g.PlayTurn()
	is.NoErr(err)
	is.Equal(t2.Side, piece.Black)
	is.Equal(g.Position().SideToMove(), piece.White)
	is.Equal(len(g.History()), 2)
	is.Equal(g.State(), Playing)
}

func TestUnplayRestoresPosition(t *testing.T) {
	is := is.New(t)
	g := newTestGame(board.NewStartingPosition(), 1)
	for i := 0; i < 3; i++ {
		_, err := g.PlayTurn()
		is.NoErr(err)
	}
	for i := 0; i < 3; i++ {
		is.NoErr(g.UnplayLastTurn())
	}
	is.True(g.Position().Equals(board.NewStartingPosition()))
	is.Equal(g.Turn(), 0)
	is.True(errors.Is(g.UnplayLastTurn(), ErrNothingToUndo))
}

func TestCaptureIsRecorded(t *testing.T) {
	is := is.New(t)
	pos := board.MustFromLayout(board.HangingQueenLayout, piece.White)
	g := newTestGame(pos, 1)
	turn, err := g.PlayTurn()
	is.NoErr(err)
	is.Equal(turn.Move, move.New(board.Sq(4, 4), board.Sq(2, 3)))
	is.Equal(turn.Captured, piece.New(piece.Queen, piece.Black))
	is.True(strings.Contains(turn.String(), "xq"))

	is.NoErr(g.UnplayLastTurn())
	is.True(g.Position().Equals(board.MustFromLayout(board.HangingQueenLayout, piece.White)))
}

func TestNoLegalMoves(t *testing.T) {
	is := is.New(t)
	pos := board.NewEmptyPosition(piece.White)
	pos.SetPiece(board.Sq(0, 4), piece.New(piece.King, piece.Black))
	g := newTestGame(pos, 2)
	_, err := g.PlayTurn()
	is.True(errors.Is(err, ErrNoLegalMoves))
	is.Equal(g.State(), NoLegalMoves)
	is.Equal(g.Turn(), 0)

	// Play stops quietly.
	is.NoErr(g.Play(context.Background(), 10))
	is.Equal(g.State(), NoLegalMoves)
}

func TestPlayMove(t *testing.T) {
	is := is.New(t)
	g := newTestGame(board.NewStartingPosition(), 1)
	_, err := g.PlayMove(move.New(board.Sq(6, 4), board.Sq(3, 4)))
	is.True(errors.Is(err, ErrIllegalMove))

	turn, err := g.PlayMove(move.New(board.Sq(6, 4), board.Sq(4, 4)))
	is.NoErr(err)
	is.Equal(turn.Side, piece.White)
	is.Equal(turn.Nodes, uint64(0))
	is.Equal(g.Position().GetPiece(board.Sq(4, 4)), piece.New(piece.Pawn, piece.White))
	is.Equal(g.Position().SideToMove(), piece.Black)
}

func TestPlayRandomOpening(t *testing.T) {
	is := is.New(t)
	g := newTestGame(board.NewStartingPosition(), 1)
	is.Equal(g.PlayRandomOpening(4), 4)
	is.Equal(g.Turn(), 4)
	for i, turn := range g.History() {
		if i%2 == 0 {
			is.Equal(turn.Side, piece.White)
		} else {
			is.Equal(turn.Side, piece.Black)
		}
	}
	for g.Turn() > 0 {
		is.NoErr(g.UnplayLastTurn())
	}
	is.True(g.Position().Equals(board.NewStartingPosition()))

	empty := newTestGame(board.NewEmptyPosition(piece.White), 1)
	is.Equal(empty.PlayRandomOpening(3), 0)
	is.Equal(empty.State(), NoLegalMoves)
}

func TestPlayStopsAtTurnLimit(t *testing.T) {
	is := is.New(t)
	g := newTestGame(board.NewStartingPosition(), 1)
	is.NoErr(g.Play(context.Background(), 6))
	is.Equal(g.Turn(), 6)
	is.Equal(g.State(), TurnLimit)
	is.True(strings.Contains(g.ToDisplayText(), "turn-limit"))
}

func TestPlayHonorsCancelledContext(t *testing.T) {
	is := is.New(t)
	g := newTestGame(board.NewStartingPosition(), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	is.True(errors.Is(g.Play(ctx, 10), context.Canceled))
	is.Equal(g.Turn(), 0)
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	g := newTestGame(board.NewStartingPosition(), 1)
	txt := g.ToDisplayText()
	is.True(strings.HasPrefix(txt, "8  r n b q k b n r\n"))
	is.True(strings.Contains(txt, "   a b c d e f g h\n"))
	is.True(strings.Contains(txt, "Turn 1, white to move (playing)"))
}
