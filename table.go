package brc

import (
	"bytes"
	"fmt"
)

const (
	// tableBits sizes every worker table at 2^17 slots. The live set is
	// a few hundred stations, so the load factor stays near zero and
	// probe chains are a handful of slots. The table never grows.
	tableBits = 17

	// maxProbe bounds a probe chain. Reaching it means the table or
	// the hash is corrupted, not that the input is bad.
	maxProbe = 256
)

// A Stat accumulates measurements for one station, in deci-degrees.
// Count == 0 marks an uninitialized Stat and never leaves the engine.
type Stat struct {
	Min, Max int32
	Sum      int64
	Count    uint64
}

func (s *Stat) add(v int32) {
	s.Min = min(s.Min, v)
	s.Max = max(s.Max, v)
	s.Sum += int64(v)
	s.Count++
}

// merge folds o into s. min/max/sum/count merging is associative and
// commutative, so partials can arrive in any order.
func (s *Stat) merge(o Stat) {
	s.Min = min(s.Min, o.Min)
	s.Max = max(s.Max, o.Max)
	s.Sum += o.Sum
	s.Count += o.Count
}

// An Entry is one drained station with its key copied out of the
// input mapping.
type Entry struct {
	Station string
	Stat    Stat
}

type slot struct {
	key  []byte // borrowed from the input mapping; nil marks an empty slot
	stat Stat
}

// A Table is a worker-private open-addressed aggregation table with
// linear probing. Keys are borrowed slices into the shared input
// mapping and are only copied at Drain time, so the hot path never
// allocates. Capacity is fixed; with 2^17 slots over a few hundred
// stations there is nothing to grow.
type Table struct {
	slots []slot
	mask  uint64
	live  int
}

// NewTable returns an empty table at the standard capacity.
func NewTable() *Table { return newTable(tableBits) }

func newTable(bits uint) *Table {
	n := 1 << bits
	return &Table{slots: make([]slot, n), mask: uint64(n - 1)}
}

// Upsert records one measurement for key, whose hash the caller already
// computed. A new key installs {v, v, v, 1}; an existing key folds v in.
// The key slice must stay valid until Drain.
func (t *Table) Upsert(key []byte, hash uint64, v int32) error {
	i := hash & t.mask
	limit := maxProbe
	if n := len(t.slots); n < limit {
		limit = n
	}
	for probes := 0; probes < limit; probes++ {
		s := &t.slots[i]
		if s.key == nil {
			s.key = key
			s.stat = Stat{Min: v, Max: v, Sum: int64(v), Count: 1}
			t.live++
			return nil
		}
		if bytes.Equal(s.key, key) {
			s.stat.add(v)
			return nil
		}
		i = (i + 1) & t.mask
	}
	return fmt.Errorf("station %q: probe chain exceeded %d slots: %w", key, limit, ErrTableFull)
}

// Drain copies every occupied slot out, keys owned, order unspecified.
// The table is not usable afterwards once the input mapping goes away.
func (t *Table) Drain() []Entry {
	out := make([]Entry, 0, t.live)
	for i := range t.slots {
		s := &t.slots[i]
		if s.key != nil {
			out = append(out, Entry{Station: string(s.key), Stat: s.stat})
		}
	}
	return out
}
