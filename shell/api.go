package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/config"
	"github.com/domino14/rookery/game"
	"github.com/domino14/rookery/image"
	"github.com/domino14/rookery/move"
	"github.com/domino14/rookery/movegen"
	"github.com/domino14/rookery/piece"
	"github.com/domino14/rookery/search"
	"github.com/domino14/rookery/stats"
)

const histogramBins = 10

func (c *shellcmd) intOption(key string, def int) (int, error) {
	v, ok := c.options[key]
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("option -%s: %w", key, err)
	}
	return i, nil
}

func (c *shellcmd) boolOption(key string) bool {
	return strings.ToLower(c.options[key]) == "true"
}

func parseSide(s string) (piece.Code, error) {
	switch strings.ToLower(s) {
	case "", "w", "white":
		return piece.White, nil
	case "b", "black":
		return piece.Black, nil
	}
	return piece.Empty, fmt.Errorf("unknown side %q", s)
}

func (sc *ShellController) newPosition(cmd *shellcmd) (*Response, error) {
	name := "start"
	if len(cmd.args) > 0 {
		name = cmd.args[0]
	}
	side, err := parseSide(cmd.options["side"])
	if err != nil {
		return nil, err
	}
	l, err := board.SampleLayout(name)
	if err != nil {
		return nil, err
	}
	pos, err := board.FromText(string(l), side)
	if err != nil {
		return nil, err
	}
	sc.newGame(pos)
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.config.ToDisplayText()), nil
	}
	key := cmd.args[0]
	if len(cmd.args) == 1 {
		return msg(fmt.Sprintf("%s: %v", key, sc.config.Get(key))), nil
	}
	val := cmd.args[1]
	switch key {
	case config.ConfigDepth, config.ConfigWhiteDepth, config.ConfigBlackDepth,
		config.ConfigThreads, config.ConfigMaxTurns, config.ConfigRandomOpeningPlies:
		i, err := strconv.Atoi(val)
		if err != nil {
			return nil, err
		}
		sc.config.Set(key, i)
	case config.ConfigSideAware, config.ConfigDebug:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, err
		}
		sc.config.Set(key, b)
	default:
		return nil, fmt.Errorf("%q cannot be set from the shell", key)
	}
	sc.applyConfig()
	return msg("set " + key + " to " + val), nil
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	pos := sc.game.Position()
	sc.curGenMoves = sc.gen.GenAll(pos)
	if len(sc.curGenMoves) == 0 {
		return msg("no moves for " + piece.ColorName(pos.SideToMove())), nil
	}
	rows := lo.Map(sc.curGenMoves, func(m move.Move, i int) string {
		return fmt.Sprintf("%3d: %-6s %c", i+1, m.ShortDescription(), pos.GetPiece(m.From).Symbol())
	})
	return msg(strings.Join(rows, "\n")), nil
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	c := sc.evaluator.Breakdown(sc.game.Position())
	return msg(c.String()), nil
}

func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	pos := sc.game.Position()
	depth, err := cmd.intOption("depth", sc.game.Depth(pos.SideToMove()))
	if err != nil {
		return nil, err
	}
	solver := sc.game.Solver()
	m, val, ok := solver.SearchWithValue(pos, depth)
	if !ok {
		return nil, game.ErrNoLegalMoves
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "best: %s value: %d nodes: %d\n", m.ShortDescription(), val, solver.Nodes())
	if cmd.boolOption("hist") {
		sb.WriteString(rootValueHistogram(solver.LastRootValues()))
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

// rootValueHistogram plots finite root values. Roots with no reply score
// +/-Infinity and would swamp the bins.
func rootValueHistogram(rvs []search.RootValue) string {
	finite := lo.FilterMap(rvs, func(rv search.RootValue, _ int) (float64, bool) {
		return float64(rv.Value), rv.Value != search.Infinity && rv.Value != -search.Infinity
	})
	if len(finite) == 0 {
		return "no finite root values\n"
	}
	h := histogram.Hist(histogramBins, finite)
	var buf bytes.Buffer
	if err := histogram.Fprint(&buf, h, histogram.Linear(40)); err != nil {
		log.Err(err).Msg("printing-histogram")
	}
	return buf.String()
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <index from gen>")
	}
	idx, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if len(sc.curGenMoves) == 0 {
		return nil, errors.New("please generate some moves first with gen")
	}
	if idx < 1 || idx > len(sc.curGenMoves) {
		return nil, fmt.Errorf("move %d outside range 1-%d", idx, len(sc.curGenMoves))
	}
	if _, err := sc.game.PlayMove(sc.curGenMoves[idx-1]); err != nil {
		return nil, err
	}
	sc.curGenMoves = nil
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) engineTurn(cmd *shellcmd) (*Response, error) {
	if _, err := sc.game.PlayTurn(); err != nil {
		return nil, err
	}
	sc.curGenMoves = nil
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	if err := sc.game.UnplayLastTurn(); err != nil {
		return nil, err
	}
	sc.curGenMoves = nil
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	maxTurns, err := cmd.intOption("turns", sc.config.GetInt(config.ConfigMaxTurns))
	if err != nil {
		return nil, err
	}
	opening, err := cmd.intOption("opening", sc.config.GetInt(config.ConfigRandomOpeningPlies))
	if err != nil {
		return nil, err
	}
	start := sc.game.Turn()
	sc.game.PlayRandomOpening(opening)
	searchedFrom := sc.game.Turn()
	limit := 0
	if maxTurns > 0 {
		limit = start + maxTurns
	}
	if err := sc.game.Play(context.Background(), limit); err != nil {
		return nil, err
	}
	sc.curGenMoves = nil

	var nodes, values stats.Statistic
	for _, t := range sc.game.History()[searchedFrom:] {
		nodes.Push(float64(t.Nodes))
		if t.Value != search.Infinity && t.Value != -search.Infinity {
			values.PushInt(t.Value)
		}
	}
	captures := lo.CountBy(sc.game.History()[start:], func(t game.Turn) bool {
		return !t.Captured.IsEmpty()
	})
	var sb strings.Builder
	sb.WriteString(sc.game.ToDisplayText())
	fmt.Fprintf(&sb, "\nended: %s after %d turns (%d random), %d captures\n",
		sc.game.State(), sc.game.Turn()-start, searchedFrom-start, captures)
	fmt.Fprintf(&sb, "nodes per turn: %s\n", nodes.String())
	fmt.Fprintf(&sb, "value per turn: %s", values.String())
	return msg(sb.String()), nil
}

func (sc *ShellController) svg(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: svg <path>")
	}
	opts := image.DefaultOptions()
	size, err := cmd.intOption("size", opts.SquareSize)
	if err != nil {
		return nil, err
	}
	opts.SquareSize = size
	if t, ok := sc.game.LastTurn(); ok {
		opts = opts.HighlightMove(t.Move)
	}
	f, err := os.Create(cmd.args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	image.WriteSVG(f, sc.game.Position(), opts)
	return msg("wrote " + cmd.args[0]), nil
}

func (sc *ShellController) perft(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: perft <depth> [-threads n]")
	}
	depth, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	threads, err := cmd.intOption("threads", sc.config.GetInt(config.ConfigThreads))
	if err != nil {
		return nil, err
	}
	var n uint64
	if threads > 1 {
		n = movegen.PerftThreaded(sc.gen, sc.game.Position(), depth, threads)
	} else {
		n = movegen.Perft(sc.gen, sc.game.Position(), depth)
	}
	return msg(fmt.Sprintf("perft(%d) = %d", depth, n)), nil
}

func (sc *ShellController) cache(cmd *shellcmd) (*Response, error) {
	tt := sc.game.Solver().TranspositionTable()
	if len(cmd.args) > 0 && cmd.args[0] == "clear" {
		sc.game.Solver().ClearCache()
		return msg("cache cleared"), nil
	}
	st := tt.Stats()
	hitRate := 0.0
	if st.Lookups > 0 {
		hitRate = float64(st.Hits) / float64(st.Lookups)
	}
	return msg(fmt.Sprintf("entries: %d\nstored: %d\nlookups: %d\nhits: %d (%.1f%%)",
		tt.Len(), st.Created, st.Lookups, st.Hits, math.Round(hitRate*1000)/10)), nil
}
