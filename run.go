package brc

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
)

// Run processes the measurements file at path and writes the canonical
// report to out. workers <= 0 means one worker per CPU. Nothing is
// written to out unless the whole run succeeds.
func Run(path string, workers int, out io.Writer) error {
	data, release, err := openMapped(path)
	if err != nil {
		return err
	}
	defer release()

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	ranges, err := planChunks(data, workers)
	if err != nil {
		return err
	}

	partials, err := execute(data, ranges)
	if err != nil {
		return err
	}
	return emit(out, reduce(partials))
}

// execute fans one goroutine out per range and collects every drained
// partial. The chunks are equal-sized in bytes and the work per byte is
// uniform, so there is no work stealing; each worker is pinned to its
// chunk. All workers run to completion even when one fails, and every
// failure is reported.
func execute(data []byte, ranges []Range) ([][]Entry, error) {
	partials := make([][]Entry, len(ranges))
	errs := make([]error, len(ranges))

	var wg sync.WaitGroup
	for i, r := range ranges {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tab := NewTable()
			if err := processChunk(data[r.Start:r.End], r.Start, tab); err != nil {
				errs[i] = err
				return
			}
			partials[i] = tab.Drain()
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWorkerFailure, err)
	}
	return partials, nil
}
