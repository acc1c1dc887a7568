package search

import (
	"sync"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/piece"
)

func keyWithPawnAt(idx int) board.Snapshot {
	var k board.Snapshot
	k[idx] = piece.New(piece.Pawn, piece.White)
	return k
}

func TestMapTable(t *testing.T) {
	is := is.New(t)
	tt := NewMapTable()
	_, ok := tt.Lookup(keyWithPawnAt(3))
	is.True(!ok)

	tt.Store(keyWithPawnAt(3), 42)
	v, ok := tt.Lookup(keyWithPawnAt(3))
	is.True(ok)
	is.Equal(v, 42)

	// overwrite
	tt.Store(keyWithPawnAt(3), -7)
	v, _ = tt.Lookup(keyWithPawnAt(3))
	is.Equal(v, -7)
	is.Equal(tt.Len(), 1)
	is.Equal(tt.Stats(), TableStats{Created: 2, Lookups: 3, Hits: 2})

	tt.Reset()
	is.Equal(tt.Len(), 0)
	is.Equal(tt.Stats(), TableStats{})
	_, ok = tt.Lookup(keyWithPawnAt(3))
	is.True(!ok)
}

func TestSnapshotKeyIgnoresSideToMove(t *testing.T) {
	is := is.New(t)
	tt := NewMapTable()
	w := board.NewStartingPosition()
	b := board.NewStartingPosition()
	b.SetSideToMove(piece.Black)
	tt.Store(w.Snapshot(), 99)
	v, ok := tt.Lookup(b.Snapshot())
	is.True(ok)
	is.Equal(v, 99)
}

func TestShardedTableConcurrent(t *testing.T) {
	is := is.New(t)
	tt := NewShardedTable()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < board.Dim*board.Dim; i++ {
				tt.Store(keyWithPawnAt(i), i)
				_, _ = tt.Lookup(keyWithPawnAt(i))
			}
		}()
	}
	wg.Wait()

	is.Equal(tt.Len(), 64)
	for i := 0; i < 64; i++ {
		v, ok := tt.Lookup(keyWithPawnAt(i))
		is.True(ok)
		is.Equal(v, i)
	}
	st := tt.Stats()
	is.Equal(st.Created, uint64(8*64))
	is.Equal(st.Lookups, uint64(8*64+64))
	is.Equal(st.Hits, st.Lookups)

	tt.Reset()
	is.Equal(tt.Len(), 0)
}

func TestFootprintEstimate(t *testing.T) {
	is := is.New(t)
	is.Equal(estimatedBytes(10), uint64(10*entrySize))
	is.True(!footprintTooLarge(0, memoryWarnFraction))
}
