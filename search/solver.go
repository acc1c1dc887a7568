// Package search picks a move by fixed-depth minimax with alpha-beta
// pruning and a transposition cache keyed by the exact board layout.
package search

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/evaluation"
	"github.com/domino14/rookery/move"
	"github.com/domino14/rookery/movegen"
	"github.com/domino14/rookery/piece"
)

// Infinity bounds every score. Evaluations stay far below it.
const Infinity = math.MaxInt

// A table holding more than this fraction of system memory gets a warning
// after each search.
const memoryWarnFraction = 0.5

// RootValue is the minimax value computed for one root move.
type RootValue struct {
	Move  move.Move
	Value int
}

type Solver struct {
	movegen   movegen.MoveGenerator
	evaluator evaluation.Evaluator
	ttable    TranspositionTable

	threads   int
	sideAware bool
	nodes     atomic.Uint64

	lastRootValues []RootValue
	logStream      io.Writer
}

// NewSolver returns a single-threaded solver with an empty MapTable.
func NewSolver(gen movegen.MoveGenerator, ev evaluation.Evaluator) *Solver {
	return &Solver{
		movegen:   gen,
		evaluator: ev,
		ttable:    NewMapTable(),
		threads:   1,
	}
}

// SetThreads splits the root moves over this many goroutines. Anything
// above one swaps in a ShardedTable, dropping the current cache contents.
func (s *Solver) SetThreads(threads int) {
	switch {
	case threads < 2:
		if s.threads > 1 {
			s.ttable = NewMapTable()
		}
		s.threads = 1
	default:
		if _, ok := s.ttable.(*ShardedTable); !ok {
			s.ttable = NewShardedTable()
		}
		s.threads = threads
	}
}

func (s *Solver) Threads() int {
	return s.threads
}

// SetSideAware makes the search flip the side to move at every ply and
// minimize at the root when black is on move. Off by default: the side to
// move stays fixed for the whole tree and the root always maximizes.
func (s *Solver) SetSideAware(b bool) {
	s.sideAware = b
}

func (s *Solver) SideAware() bool {
	return s.sideAware
}

// SetLogStream makes every search append a YAML record of its root values.
func (s *Solver) SetLogStream(w io.Writer) {
	s.logStream = w
}

// SetTranspositionTable replaces the cache. A MapTable must not be used
// with more than one thread.
func (s *Solver) SetTranspositionTable(tt TranspositionTable) {
	s.ttable = tt
}

func (s *Solver) TranspositionTable() TranspositionTable {
	return s.ttable
}

// ClearCache empties the transposition table.
func (s *Solver) ClearCache() {
	s.ttable.Reset()
}

// Nodes is the number of Minimax calls made by the last search.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// LastRootValues are the root moves of the last search, in generation
// order, with their values.
func (s *Solver) LastRootValues() []RootValue {
	return s.lastRootValues
}

// Search returns the best move for the stored side to move, or false if
// there is none. The board is back in its original state on return.
func (s *Solver) Search(pos *board.Position, depth int) (move.Move, bool) {
	m, _, ok := s.SearchWithValue(pos, depth)
	return m, ok
}

// SearchWithValue is Search that also returns the chosen move's value.
func (s *Solver) SearchWithValue(pos *board.Position, depth int) (move.Move, int, bool) {
	if depth < 1 {
		log.Warn().Int("depth", depth).Msg("search-depth-too-low-using-1")
		depth = 1
	}
	tstart := time.Now()
	s.nodes.Store(0)

	// The root maximizes unless side-aware search has black on move.
	rootMaximizing := !(s.sideAware && pos.SideToMove() == piece.Black)

	moves := s.movegen.GenAll(pos)
	log.Debug().Int("depth", depth).Int("root-moves", len(moves)).
		Int("threads", s.threads).Bool("side-aware", s.sideAware).
		Msg("search-config")

	values := make([]int, len(moves))
	if s.threads > 1 && len(moves) > 1 {
		s.searchRootParallel(pos, moves, depth, rootMaximizing, values)
	} else {
		for i, m := range moves {
			values[i] = s.child(pos, m, depth-1, -Infinity, Infinity, !rootMaximizing)
		}
	}

	s.lastRootValues = make([]RootValue, len(moves))
	var bestMove move.Move
	found := false
	bestValue := -Infinity
	if !rootMaximizing {
		bestValue = Infinity
	}
	for i, m := range moves {
		s.lastRootValues[i] = RootValue{Move: m, Value: values[i]}
		if (rootMaximizing && values[i] > bestValue) ||
			(!rootMaximizing && values[i] < bestValue) {
			bestValue = values[i]
			bestMove = m
			found = true
		}
	}

	s.writeLog(pos, depth, bestMove, found)

	stats := s.ttable.Stats()
	log.Info().
		Str("best", bestMove.String()).
		Int("value", bestValue).
		Bool("found", found).
		Uint64("nodes", s.Nodes()).
		Int("tt-entries", s.ttable.Len()).
		Uint64("tt-lookups", stats.Lookups).
		Uint64("tt-hits", stats.Hits).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("search-returning")
	if footprintTooLarge(s.ttable.Len(), memoryWarnFraction) {
		log.Warn().Int("tt-entries", s.ttable.Len()).Msg("transposition-table-very-large")
	}
	if !found {
		return move.Move{}, 0, false
	}
	return bestMove, bestValue, true
}

// Each worker gets its own copy of the board. Values land in generation
// order so the pick matches the sequential scan.
func (s *Solver) searchRootParallel(pos *board.Position, moves []move.Move,
	depth int, rootMaximizing bool, values []int) {

	g := errgroup.Group{}
	g.SetLimit(s.threads)
	for i, m := range moves {
		g.Go(func() error {
			local := pos.Copy()
			values[i] = s.child(local, m, depth-1, -Infinity, Infinity, !rootMaximizing)
			return nil
		})
	}
	// Workers never return errors.
	_ = g.Wait()
}

func (s *Solver) child(pos *board.Position, m move.Move, depth, alpha, beta int,
	maximizing bool) int {

	undo := pos.Apply(m.From, m.To)
	defer undo()
	if s.sideAware {
		pos.ToggleSideToMove()
		defer pos.ToggleSideToMove()
	}
	return s.Minimax(pos, depth, alpha, beta, maximizing)
}

// Minimax is fixed-depth minimax with alpha-beta pruning. Interior node
// values are cached by board layout and a cached value is returned no
// matter what depth or window produced it. A node whose side has no moves
// is worth -Infinity when maximizing and +Infinity when minimizing.
func (s *Solver) Minimax(pos *board.Position, depth, alpha, beta int, maximizing bool) int {
	s.nodes.Add(1)
	if depth <= 0 {
		return s.evaluator.Evaluate(pos)
	}
	key := pos.Snapshot()
	if v, ok := s.ttable.Lookup(key); ok {
		return v
	}

	moves := s.movegen.GenAll(pos)
	var value int
	if maximizing {
		value = -Infinity
		for _, m := range moves {
			value = max(value, s.child(pos, m, depth-1, alpha, beta, false))
			alpha = max(alpha, value)
			if beta <= alpha {
				break
			}
		}
	} else {
		value = Infinity
		for _, m := range moves {
			value = min(value, s.child(pos, m, depth-1, alpha, beta, true))
			beta = min(beta, value)
			if beta <= alpha {
				break
			}
		}
	}
	s.ttable.Store(key, value)
	return value
}

type rootLog struct {
	Move  string `yaml:"move"`
	Value int    `yaml:"value"`
}

type searchLog struct {
	Depth int       `yaml:"depth"`
	Side  string    `yaml:"side"`
	Nodes uint64    `yaml:"nodes"`
	Moves []rootLog `yaml:"moves"`
	Best  string    `yaml:"best,omitempty"`
}

func (s *Solver) writeLog(pos *board.Position, depth int, best move.Move, found bool) {
	if s.logStream == nil {
		return
	}
	entry := searchLog{
		Depth: depth,
		Side:  piece.ColorName(pos.SideToMove()),
		Nodes: s.Nodes(),
		Moves: make([]rootLog, len(s.lastRootValues)),
	}
	for i, rv := range s.lastRootValues {
		entry.Moves[i] = rootLog{Move: rv.Move.String(), Value: rv.Value}
	}
	if found {
		entry.Best = best.String()
	}
	// A one-element list per search so that the stream stays one YAML list.
	out, err := yaml.Marshal([]searchLog{entry})
	if err != nil {
		log.Err(err).Msg("marshalling-search-log")
		return
	}
	if _, err := s.logStream.Write(out); err != nil {
		log.Err(err).Msg("writing-search-log")
	}
}
