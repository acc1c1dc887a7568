package movegen

import (
	"sync"

	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/move"
)

// Perft counts the leaves of the pseudo-legal move tree to the given depth,
// flipping the side to move at every ply. It is a generator sanity check;
// the search itself does not flip sides this way.
func Perft(gen MoveGenerator, pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := gen.GenAll(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += perftChild(gen, pos, m, depth-1)
	}
	return nodes
}

func perftChild(gen MoveGenerator, pos *board.Position, m move.Move, depth int) uint64 {
	undo := pos.Apply(m.From, m.To)
	pos.ToggleSideToMove()
	defer func() {
		pos.ToggleSideToMove()
		undo()
	}()
	return Perft(gen, pos, depth)
}

// PerftThreaded splits the root moves across goroutines. Each goroutine
// gets its own copy of the position.
func PerftThreaded(gen MoveGenerator, pos *board.Position, depth, threads int) uint64 {
	if threads < 2 || depth < 2 {
		return Perft(gen, pos, depth)
	}
	moves := gen.GenAll(pos)
	work := make([][]move.Move, threads)
	for i, m := range moves {
		t := i % threads
		work[t] = append(work[t], m)
	}

	counts := make([]uint64, threads)
	var wg sync.WaitGroup
	for t := range work {
		wg.Add(1)
		go func(t int) {
			defer wg.Done()
			local := pos.Copy()
			for _, m := range work[t] {
				counts[t] += perftChild(gen, local, m, depth-1)
			}
		}(t)
	}
	wg.Wait()

	var nodes uint64
	for _, c := range counts {
		nodes += c
	}
	return nodes
}
