package brc

import (
	"bufio"
	"io"
	"slices"
	"strconv"

	"github.com/dolthub/swiss"
)

// reduce folds every worker partial into one aggregate keyed by owned
// station name. Each partial entry is seen exactly once.
func reduce(partials [][]Entry) *swiss.Map[string, *Stat] {
	agg := swiss.NewMap[string, *Stat](1 << 10)
	for _, part := range partials {
		for i := range part {
			e := &part[i]
			if s, ok := agg.Get(e.Station); ok {
				s.merge(e.Stat)
			} else {
				st := e.Stat
				agg.Put(e.Station, &st)
			}
		}
	}
	return agg
}

// emit writes the canonical report: stations in ascending byte order,
// min/mean/max each with exactly one fractional digit, ", " between
// entries, a single trailing newline. Output is buffered and flushed
// once.
func emit(out io.Writer, agg *swiss.Map[string, *Stat]) error {
	names := make([]string, 0, agg.Count())
	agg.Iter(func(name string, _ *Stat) bool {
		names = append(names, name)
		return false
	})
	slices.Sort(names)

	w := bufio.NewWriter(out)
	w.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			w.WriteString(", ")
		}
		s, _ := agg.Get(name)
		mean := meanDeci(s.Sum, s.Count)
		w.WriteString(name)
		w.WriteByte('=')
		writeDeci(w, int64(s.Min), false)
		w.WriteByte('/')
		writeDeci(w, mean, s.Sum < 0 && mean == 0)
		w.WriteByte('/')
		writeDeci(w, int64(s.Max), false)
	}
	w.WriteString("}\n")
	return w.Flush()
}

// meanDeci rounds sum/count to the nearest deci-degree with ties toward
// positive infinity: floor((2*sum + count) / (2*count)), in exact
// integer arithmetic so the result is identical on every platform.
func meanDeci(sum int64, count uint64) int64 {
	n := 2*sum + int64(count)
	d := 2 * int64(count)
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}

// writeDeci prints a deci-degree value as fixed point with one
// fractional digit. negZero forces a minus sign on a zero value; a
// negative sum whose mean rounds to zero prints as -0.0.
func writeDeci(w *bufio.Writer, dd int64, negZero bool) {
	if dd < 0 || negZero {
		w.WriteByte('-')
		dd = -dd
	}
	w.WriteString(strconv.FormatInt(dd/10, 10))
	w.WriteByte('.')
	w.WriteByte(byte('0' + dd%10))
}
