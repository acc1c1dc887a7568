package shell

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/config"
	"github.com/domino14/rookery/game"
	"github.com/domino14/rookery/piece"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func testController(t *testing.T) (*ShellController, *bytes.Buffer) {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDepth, 1)
	var buf bytes.Buffer
	return newController(cfg, &buf), &buf
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"svg -size 40 /tmp/board.svg",
			&shellcmd{"svg", []string{"/tmp/board.svg"}, map[string]string{"size": "40"}},
			nil},
		{"cache clear",
			&shellcmd{"cache", []string{"clear"}, map[string]string{}},
			nil},
		{`svg "/tmp/my board.svg" `,
			&shellcmd{"svg", []string{"/tmp/my board.svg"}, map[string]string{}},
			nil},
		{"best -depth",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func TestGenAndPlay(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)

	resp, err := sc.standardModeSwitch("gen")
	is.NoErr(err)
	lines := strings.Split(resp.message, "\n")
	is.Equal(len(lines), 20)
	is.Equal(lines[0], "  1: a2a3   P")

	_, err = sc.standardModeSwitch("play 21")
	is.True(err != nil)
	_, err = sc.standardModeSwitch("play 2")
	is.NoErr(err)
	is.Equal(sc.game.Position().GetPiece(board.Sq(4, 0)), piece.New(piece.Pawn, piece.White))
	is.Equal(sc.game.Position().SideToMove(), piece.Black)

	// the numbered list is gone once a move is played.
	_, err = sc.standardModeSwitch("play 1")
	is.True(err != nil)

	_, err = sc.standardModeSwitch("undo")
	is.NoErr(err)
	is.True(sc.game.Position().Equals(board.NewStartingPosition()))
	_, err = sc.standardModeSwitch("undo")
	is.True(errors.Is(err, game.ErrNothingToUndo))
}

func TestNewLayoutAndBest(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	resp, err := sc.standardModeSwitch("new hangingqueen -side white")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "white to move"))

	resp, err = sc.standardModeSwitch("best -depth 1 -hist true")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "best: e4d6 value: "))

	_, err = sc.standardModeSwitch("new nosuchlayout")
	is.True(errors.Is(err, board.ErrBadLayout))
}

func TestBestWithoutMoves(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	sc.newGame(board.NewEmptyPosition(piece.White))
	_, err := sc.standardModeSwitch("best")
	is.True(errors.Is(err, game.ErrNoLegalMoves))
}

func TestSetUpdatesGame(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	_, err := sc.standardModeSwitch("set black-depth 3")
	is.NoErr(err)
	is.Equal(sc.game.Depth(piece.Black), 3)
	is.Equal(sc.game.Depth(piece.White), 1)

	_, err = sc.standardModeSwitch("set side-aware true")
	is.NoErr(err)
	is.True(sc.game.Solver().SideAware())

	_, err = sc.standardModeSwitch("set threads 2")
	is.NoErr(err)
	is.Equal(sc.game.Solver().Threads(), 2)

	_, err = sc.standardModeSwitch("set search-log /tmp/x")
	is.True(err != nil)
	_, err = sc.standardModeSwitch("set depth deep")
	is.True(err != nil)
}

func TestAutoplay(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	resp, err := sc.standardModeSwitch("autoplay -turns 4 -opening 2")
	is.NoErr(err)
	is.Equal(sc.game.Turn(), 4)
	is.True(strings.Contains(resp.message, "ended: turn-limit after 4 turns (2 random)"))
	is.True(strings.Contains(resp.message, "nodes per turn: n=2"))
}

func TestSVGAndPerftAndCache(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	path := filepath.Join(t.TempDir(), "board.svg")
	_, err := sc.standardModeSwitch("svg " + path)
	is.NoErr(err)
	data, err := os.ReadFile(path)
	is.NoErr(err)
	is.True(bytes.Contains(data, []byte("<svg")))

	resp, err := sc.standardModeSwitch("perft 2")
	is.NoErr(err)
	is.Equal(resp.message, "perft(2) = 400")

	_, err = sc.standardModeSwitch("best -depth 2")
	is.NoErr(err)
	resp, err = sc.standardModeSwitch("cache")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "entries: 20\n"))
	_, err = sc.standardModeSwitch("cache clear")
	is.NoErr(err)
	is.Equal(sc.game.Solver().TranspositionTable().Len(), 0)
}

func TestExecuteWritesOutput(t *testing.T) {
	is := is.New(t)
	sc, buf := testController(t)
	sig := make(chan os.Signal, 1)
	sc.Execute(sig, "help")
	is.True(strings.Contains(buf.String(), "Commands:"))
	buf.Reset()
	sc.Execute(sig, "frobnicate")
	is.True(strings.HasPrefix(buf.String(), "Error: unrecognized command"))
	sc.Execute(sig, "exit")
	is.Equal(len(sig), 1)
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	c := &ShellCompleter{}
	line := []rune("pe")
	got, n := c.Do(line, len(line))
	is.Equal(n, 2)
	is.Equal(got, [][]rune{[]rune("rft")})

	line = []rune("new hang")
	got, n = c.Do(line, len(line))
	is.Equal(n, 4)
	is.Equal(got, [][]rune{[]rune("ingqueen")})
}
