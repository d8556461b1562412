package brc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashStationVectors(t *testing.T) {
	// published FNV-1a 64 test vectors
	cases := []struct {
		in   string
		want uint64
	}{
		{"", 0xcbf29ce484222325},
		{"a", 0xaf63dc4c8601ec8c},
		{"foobar", 0x85944171f73967e8},
	}
	for _, c := range cases {
		require.Equal(t, c.want, hashStation([]byte(c.in)), "%q", c.in)
	}
}

func TestSplitStation(t *testing.T) {
	semi, h := splitStation([]byte("Hamburg;12.0"))
	require.Equal(t, 7, semi)
	require.Equal(t, hashStation([]byte("Hamburg")), h)

	semi, h = splitStation([]byte(";12.0"))
	require.Equal(t, 0, semi)
	require.Equal(t, uint64(fnvOffset64), h)

	semi, _ = splitStation([]byte("no separator here"))
	require.Equal(t, -1, semi)

	// first separator wins
	semi, h = splitStation([]byte("a;b;c"))
	require.Equal(t, 1, semi)
	require.Equal(t, hashStation([]byte("a")), h)
}
