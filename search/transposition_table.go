package search

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/domino14/rookery/board"
)

// Rough per-entry cost of a map[board.Snapshot]int entry: the 64-byte key,
// the value, and map overhead.
const entrySize = 96

const numShards = 64

// TranspositionTable maps an exact board layout to a score. Entries carry no
// depth and no bound type, so a hit is trusted whatever depth or window it
// was stored at. Nothing is ever evicted.
type TranspositionTable interface {
	Lookup(key board.Snapshot) (int, bool)
	Store(key board.Snapshot, val int)
	Len() int
	Reset()
	Stats() TableStats
}

// TableStats are cumulative since the last Reset.
type TableStats struct {
	Created uint64
	Lookups uint64
	Hits    uint64
}

type tableCounters struct {
	created atomic.Uint64
	lookups atomic.Uint64
	hits    atomic.Uint64
}

func (c *tableCounters) stats() TableStats {
	return TableStats{
		Created: c.created.Load(),
		Lookups: c.lookups.Load(),
		Hits:    c.hits.Load(),
	}
}

func (c *tableCounters) reset() {
	c.created.Store(0)
	c.lookups.Store(0)
	c.hits.Store(0)
}

// MapTable is a plain map. It is not safe for concurrent use.
type MapTable struct {
	tableCounters
	table map[board.Snapshot]int
}

func NewMapTable() *MapTable {
	return &MapTable{table: make(map[board.Snapshot]int)}
}

func (t *MapTable) Lookup(key board.Snapshot) (int, bool) {
	t.lookups.Add(1)
	v, ok := t.table[key]
	if ok {
		t.hits.Add(1)
	}
	return v, ok
}

func (t *MapTable) Store(key board.Snapshot, val int) {
	// just overwrite whatever is there.
	t.table[key] = val
	t.created.Add(1)
}

func (t *MapTable) Len() int {
	return len(t.table)
}

func (t *MapTable) Reset() {
	logFootprint(len(t.table))
	clear(t.table)
	t.reset()
}

func (t *MapTable) Stats() TableStats {
	return t.stats()
}

type shard struct {
	sync.RWMutex
	table map[board.Snapshot]int
}

// ShardedTable splits the map into lock-guarded shards picked by an xxhash
// of the layout, so several search goroutines can share it.
type ShardedTable struct {
	tableCounters
	shards [numShards]shard
}

func NewShardedTable() *ShardedTable {
	t := &ShardedTable{}
	for i := range t.shards {
		t.shards[i].table = make(map[board.Snapshot]int)
	}
	return t
}

func (t *ShardedTable) shardFor(key board.Snapshot) *shard {
	var buf [len(key)]byte
	for i, c := range key {
		buf[i] = byte(c)
	}
	return &t.shards[xxhash.Sum64(buf[:])%numShards]
}

func (t *ShardedTable) Lookup(key board.Snapshot) (int, bool) {
	t.lookups.Add(1)
	s := t.shardFor(key)
	s.RLock()
	v, ok := s.table[key]
	s.RUnlock()
	if ok {
		t.hits.Add(1)
	}
	return v, ok
}

func (t *ShardedTable) Store(key board.Snapshot, val int) {
	s := t.shardFor(key)
	s.Lock()
	s.table[key] = val
	s.Unlock()
	t.created.Add(1)
}

func (t *ShardedTable) Len() int {
	n := 0
	for i := range t.shards {
		t.shards[i].RLock()
		n += len(t.shards[i].table)
		t.shards[i].RUnlock()
	}
	return n
}

func (t *ShardedTable) Reset() {
	logFootprint(t.Len())
	for i := range t.shards {
		t.shards[i].Lock()
		clear(t.shards[i].table)
		t.shards[i].Unlock()
	}
	t.reset()
}

func (t *ShardedTable) Stats() TableStats {
	return t.stats()
}

// estimatedBytes is a rough size of a table with n entries.
func estimatedBytes(n int) uint64 {
	return uint64(n) * entrySize
}

func logFootprint(n int) {
	log.Debug().Int("num-elems", n).
		Uint64("estimated-total-memory-bytes", estimatedBytes(n)).
		Uint64("total-system-memory-bytes", memory.TotalMemory()).
		Msg("transposition-table-reset")
}

// footprintTooLarge reports whether a table of n entries is estimated to use
// more than the given fraction of system memory.
func footprintTooLarge(n int, fraction float64) bool {
	total := memory.TotalMemory()
	if total == 0 {
		return false
	}
	return float64(estimatedBytes(n)) > fraction*float64(total)
}
