package brc

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// openMapped maps path read-only and shared. The mapping is created
// once and observed by every worker; release unmaps it and must only be
// called after every worker table holding borrowed keys has been
// drained. A zero-length
// file yields a nil slice and a no-op release, since mapping zero bytes
// is an error.
func openMapped(path string) (data []byte, release func(), err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w: %w", path, ErrInputUnavailable, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("statting %s: %w: %w", path, ErrInputUnavailable, err)
	}
	size := fi.Size()
	if size == 0 {
		return nil, func() {}, nil
	}
	if size != int64(int(size)) {
		return nil, nil, fmt.Errorf("%s: size %d overflows the address space: %w", path, size, ErrInputUnavailable)
	}

	data, err = unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap %s: %w: %w", path, ErrInputUnavailable, err)
	}
	return data, func() { _ = unix.Munmap(data) }, nil
}
