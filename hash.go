package brc

// FNV-1a, 64 bit. The table only needs a stable, well-mixed hash for
// short keys; collisions are absorbed by probing plus full key compare.
const (
	fnvOffset64 = 0xcbf29ce484222325
	fnvPrime64  = 0x100000001b3
)

// hashStation returns the FNV-1a hash of a station name.
func hashStation(b []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

// splitStation scans line up to the first ';', accumulating the FNV-1a
// hash of the station bytes in the same pass. It returns the index of
// the ';' and the hash of everything before it, or (-1, 0) when the
// line has no separator. Station names are short and variable length,
// so one fused pass beats scanning and hashing separately.
func splitStation(line []byte) (int, uint64) {
	h := uint64(fnvOffset64)
	for i, c := range line {
		if c == ';' {
			return i, h
		}
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return -1, 0
}
