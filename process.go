package brc

import (
	"bytes"
	"fmt"
)

// processChunk aggregates every line of one line-aligned chunk into tab.
// base is the absolute offset of the chunk within the input, used only
// for error reporting. The planner guarantees the chunk ends with a
// newline, so there is never an unterminated tail.
func processChunk(chunk []byte, base int, tab *Table) error {
	nl := NewScanner(chunk, '\n')
	lineStart := 0
	for {
		end, ok := nl.Next()
		if !ok {
			return nil
		}
		line := chunk[lineStart:end]

		semi, hash := splitStation(line)
		if semi < 0 {
			return fmt.Errorf("line at byte %d: no field separator: %w", base+lineStart, ErrMalformedLine)
		}
		if semi == 0 {
			return fmt.Errorf("line at byte %d: empty station: %w", base+lineStart, ErrMalformedLine)
		}

		temp, err := parseTemp(line[semi+1:])
		if err != nil {
			if bytes.IndexByte(line[semi+1:], ';') >= 0 {
				return fmt.Errorf("line at byte %d: more than one field separator: %w", base+lineStart, ErrMalformedLine)
			}
			return fmt.Errorf("line at byte %d: %w", base+lineStart, err)
		}

		if err := tab.Upsert(line[:semi], hash, temp); err != nil {
			return err
		}
		lineStart = end + 1
	}
}
