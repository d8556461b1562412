package brc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measurements.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runToString(t *testing.T, path string, workers int) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := Run(path, workers, &buf)
	return buf.String(), err
}

func TestRunSingleLine(t *testing.T) {
	path := writeInput(t, "Hamburg;12.0\n")
	out, err := runToString(t, path, 1)
	require.NoError(t, err)
	require.Equal(t, "{Hamburg=12.0/12.0/12.0}\n", out)
}

func TestRunTwoStations(t *testing.T) {
	path := writeInput(t, "Hamburg;12.0\nBulawayo;8.9\nHamburg;-1.5\nBulawayo;18.2\n")
	for workers := 1; workers <= 4; workers++ {
		out, err := runToString(t, path, workers)
		require.NoError(t, err)
		require.Equal(t, "{Bulawayo=8.9/13.6/18.2, Hamburg=-1.5/5.3/12.0}\n", out, "workers=%d", workers)
	}
}

func TestRunNegativeZeroMean(t *testing.T) {
	path := writeInput(t, "X;-9.9\nX;-0.1\nX;0.0\nX;9.9\n")
	out, err := runToString(t, path, 1)
	require.NoError(t, err)
	require.Equal(t, "{X=-9.9/-0.0/9.9}\n", out)
}

func TestRunWorkerCountInvariance(t *testing.T) {
	// ~1 MiB of uniform length lines over a handful of stations
	var sb strings.Builder
	for i := 0; i < 1<<16; i++ {
		fmt.Fprintf(&sb, "station-%d;%d%d.%d\n", i%4, i%2, i%10, i%10)
	}
	path := writeInput(t, sb.String())

	ref, err := runToString(t, path, 1)
	require.NoError(t, err)
	for _, workers := range []int{2, 4, 8} {
		out, err := runToString(t, path, workers)
		require.NoError(t, err)
		require.Equal(t, ref, out, "workers=%d", workers)
	}

	// same input, same output
	again, err := runToString(t, path, 4)
	require.NoError(t, err)
	ref4, err := runToString(t, path, 4)
	require.NoError(t, err)
	require.Equal(t, ref4, again)
}

func TestRunChunkBoundaryEdges(t *testing.T) {
	// equal length lines put nominal boundaries exactly on and next to
	// newlines for some worker counts
	var sb strings.Builder
	for i := 0; i < 64; i++ {
		fmt.Fprintf(&sb, "ST%02d;%d.%d\n", i%8, i%10, i%10)
	}
	path := writeInput(t, sb.String())

	ref, err := runToString(t, path, 1)
	require.NoError(t, err)
	for workers := 2; workers <= 16; workers++ {
		out, err := runToString(t, path, workers)
		require.NoError(t, err)
		require.Equal(t, ref, out, "workers=%d", workers)
	}
}

func TestRunUTF8Stations(t *testing.T) {
	path := writeInput(t, "Zürich;10.0\nSan José;5.5\nZürich;-3.0\n")
	out, err := runToString(t, path, 2)
	require.NoError(t, err)
	require.Equal(t, "{San José=5.5/5.5/5.5, Zürich=-3.0/3.5/10.0}\n", out)
}

func TestRunOutputOrdering(t *testing.T) {
	stations := map[string]string{
		"b":       "1.0",
		"a":       "2.0",
		"aa":      "3.0",
		"A":       "4.0",
		"Ab":      "5.0",
		"éz": "6.0", // éz: multibyte, sorts after ASCII bytewise
	}
	var sb strings.Builder
	for name, temp := range stations {
		fmt.Fprintf(&sb, "%s;%s\n", name, temp)
	}
	path := writeInput(t, sb.String())

	out, err := runToString(t, path, 2)
	require.NoError(t, err)

	body := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSuffix(out, "\n"), "{"), "}")
	var names []string
	for _, entry := range strings.Split(body, ", ") {
		name, _, ok := strings.Cut(entry, "=")
		require.True(t, ok, "entry %q", entry)
		names = append(names, name)
	}

	want := maps.Keys(stations)
	require.ElementsMatch(t, want, names)
	for i := 1; i < len(names); i++ {
		require.Less(t, names[i-1], names[i], "output out of order")
	}
}

func TestRunUnterminatedInput(t *testing.T) {
	path := writeInput(t, "A;1.0\nB;2.0")
	var buf bytes.Buffer
	err := Run(path, 2, &buf)
	require.ErrorIs(t, err, ErrMalformedInput)
	require.Zero(t, buf.Len(), "no output on failure")
}

func TestRunMalformedLineFailsRun(t *testing.T) {
	path := writeInput(t, "A;1.0\nbogus\nB;2.0\n")
	var buf bytes.Buffer
	err := Run(path, 1, &buf)
	require.ErrorIs(t, err, ErrWorkerFailure)
	require.ErrorIs(t, err, ErrMalformedLine)
	require.Zero(t, buf.Len())
}

func TestRunEmptyFile(t *testing.T) {
	path := writeInput(t, "")
	out, err := runToString(t, path, 4)
	require.NoError(t, err)
	require.Equal(t, "{}\n", out)
}

func TestRunMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := Run(filepath.Join(t.TempDir(), "nope.txt"), 1, &buf)
	require.ErrorIs(t, err, ErrInputUnavailable)
}
