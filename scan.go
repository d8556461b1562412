package brc

import (
	"encoding/binary"
	"math/bits"
)

// scanWidth is the scanner's block width: one 64-bit word.
const scanWidth = 8

const (
	swarLows  = 0x7f7f7f7f7f7f7f7f
	swarOnes  = 0x0101010101010101
	swarHighs = 0x8080808080808080
)

// A Scanner lazily yields the offsets of a delimiter byte within a slice,
// strictly ascending. It walks the slice one word at a time and keeps a
// bitmask of the matches not yet handed out for the current block, so a
// line full of delimiters costs one compare per word, not per byte.
// Single pass; not restartable.
type Scanner struct {
	h     []byte
	delim byte
	splat uint64 // delimiter repeated in every lane
	mask  uint64 // high bit set per unconsumed match in the current block
	base  int    // offset of the current block
	off   int    // offset of the next block to load
}

// NewScanner returns a scanner over h for the delimiter d.
func NewScanner(h []byte, d byte) Scanner {
	return Scanner{h: h, delim: d, splat: swarOnes * uint64(d)}
}

// Next returns the offset of the next occurrence of the delimiter.
// ok is false once the slice is exhausted.
func (s *Scanner) Next() (i int, ok bool) {
	for s.mask == 0 {
		if s.off >= len(s.h) {
			return -1, false
		}
		s.loadBlock()
	}
	i = s.base + bits.TrailingZeros64(s.mask)>>3
	s.mask &= s.mask - 1
	return i, true
}

// loadBlock loads the next word and derives its match mask: xor against
// the splatted delimiter turns matches into zero bytes, and the zero
// bytes light up exactly their lane's high bit. The carry-free form is
// used so a match never corrupts the lane above it. A short tail is
// padded with a non-matching byte, so the pad lanes cannot match.
func (s *Scanner) loadBlock() {
	var w uint64
	if rest := s.h[s.off:]; len(rest) >= scanWidth {
		w = binary.LittleEndian.Uint64(rest)
	} else {
		var buf [scanWidth]byte
		pad := ^s.delim
		for i := range buf {
			buf[i] = pad
		}
		copy(buf[:], rest)
		w = binary.LittleEndian.Uint64(buf[:])
	}
	x := w ^ s.splat
	s.mask = ^(((x & swarLows) + swarLows) | x | swarLows)
	s.base = s.off
	s.off += scanWidth
}
