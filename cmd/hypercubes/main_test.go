package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestIndexAndCoord(t *testing.T) {
	out, _, err := run(t, "index", "--preset", "line42", "20")
	require.NoError(t, err)
	assert.Equal(t, "[1 1 2 0 1]\n", out)

	out, _, err = run(t, "coord", "--preset", "line42", "1", "1", "2", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, "[20]\n", out)

	out, _, err = run(t, "index", "20", "13", "23", "4")
	require.NoError(t, err)
	assert.Equal(t, "[1 1 2 0 1 0 0 0 2 2 2 2 0 74]\n", out)
}

func TestIndexGhosts(t *testing.T) {
	out, _, err := run(t, "index", "--preset", "line42", "--ghosts", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "ghosts=0")
	assert.Contains(t, out, "ghosts=1")
}

func TestIterate(t *testing.T) {
	out, _, err := run(t, "iterate", "--preset", "line42", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "total 58\n")
	assert.Contains(t, out, "0 [0 0 0 1 0]\n")
	assert.NotContains(t, out, "\n2 ")

	out, _, err = run(t, "iterate", "--preset", "line42", "--rank", "3", "--halo-at-most", "0", "--limit", "0")
	require.NoError(t, err)
	assert.Equal(t, "total 9\n", out)
}

func TestDepsFromLayoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line40.yaml")
	require.NoError(t, os.WriteFile(path, []byte("standard: {sizes: [40], ranks: [2], lanes: [2], halo: 1}\n"), 0o600))

	out, _, err := run(t, "deps", "--layout", path, "--first", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "level 4 (EO-flattened): after [2 3]\n")
	assert.Contains(t, out, "level 0 (MPI X): after []\n")
	assert.Contains(t, out, "order [2 3 4 0 1]\n")
}

func TestTreeAndLogging(t *testing.T) {
	out, logs, err := run(t, "tree", "--preset", "line42", "--depth", "1", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "+MPI X\n")
	assert.NotContains(t, out, "VECTOR")
	assert.Contains(t, logs, "decomposition tree built")
}

func TestErrors(t *testing.T) {
	tests := [][]string{
		{"index", "--preset", "nope", "1"},
		{"index", "x"},
		{"coord", "--preset", "line42", "9"},
		{"tree", "--log-level", "loud"},
		{"tree", "--layout", "/does/not/exist.yaml"},
		{"coord"},
	}
	for _, args := range tests {
		_, _, err := run(t, args...)
		assert.Error(t, err, "%v", args)
	}
}
