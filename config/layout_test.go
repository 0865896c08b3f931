package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/config"
	"github.com/mmesiti/hypercubes/geometry"
	"github.com/mmesiti/hypercubes/indexing"
	"github.com/mmesiti/hypercubes/internal/presets"
)

const line42 = `
geometry:
  - size: 42
rules:
  - {name: MPI X, kind: qper, axis: 0, parts: 4}
  - {name: VECTOR X, kind: qopen, axis: 0, parts: 2}
  - {name: halos X, kind: hbb, axis: 0, halo: 1}
  - {name: EO, kind: eo, axes: [true]}
  - {name: EO-flattened, kind: leaf, axis: 1}
`

func TestParseExplicit(t *testing.T) {
	l, err := config.Parse([]byte(line42))
	require.NoError(t, err)
	got, err := l.Resolve()
	require.NoError(t, err)
	assert.Equal(t, presets.Line42(), got)

	root, err := builder.Build(got.Geometry, got.Rules)
	require.NoError(t, err)
	path, err := indexing.IndexPath(root, []int{20})
	require.NoError(t, err)
	assert.Len(t, path, 5)
}

func TestParseStandard(t *testing.T) {
	doc := `
standard:
  sizes: [42, 42, 42, 42]
  ranks: [4, 4, 4, 4]
  lanes: [2, 2, 2, 2]
  halo: 1
`
	l, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	got, err := l.Resolve()
	require.NoError(t, err)
	assert.Equal(t, presets.Lattice4D(), got)

	l, err = config.Parse([]byte("standard: {sizes: [8, 6]}"))
	require.NoError(t, err)
	got, err = l.Resolve()
	require.NoError(t, err)
	assert.Equal(t, presets.Standard([]int{8, 6}, []int{1, 1}, []int{1, 1}, 0), got)
}

func TestParity(t *testing.T) {
	doc := `
geometry:
  - {size: 5, parity: odd}
  - {size: 3, parity: unknown}
  - {size: 2}
rules:
  - {name: END, kind: end}
`
	l, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	got, err := l.Resolve()
	require.NoError(t, err)
	assert.Equal(t, geometry.Geometry{
		{Size: 5, Parity: geometry.Odd},
		{Size: 3, Parity: geometry.Unknown},
		{Size: 2, Parity: geometry.Even},
	}, got.Geometry)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"not yaml", "geometry: [size: 4"},
		{"unknown field", "geometry: [{size: 4, colour: red}]\nrules: [{name: L, kind: leaf}]"},
		{"no rules", "geometry: [{size: 4}]"},
		{"unknown kind", "geometry: [{size: 4}]\nrules: [{name: A, kind: zigzag}]"},
		{"bad parity", "geometry: [{size: 4, parity: purple}]\nrules: [{name: L, kind: leaf}]"},
		{"negative size", "geometry: [{size: -4}]\nrules: [{name: L, kind: leaf}]"},
		{"missing name", "geometry: [{size: 4}]\nrules: [{kind: leaf}]"},
		{"qper without parts", "geometry: [{size: 4}]\nrules: [{name: A, kind: qper}]"},
		{"hbb without halo", "geometry: [{size: 4}]\nrules: [{name: A, kind: hbb}]"},
		{"eo without axes", "geometry: [{size: 4}]\nrules: [{name: A, kind: eo, axes: [false]}]"},
		{"standard mismatch", "standard: {sizes: [4, 4], ranks: [2]}"},
		{"standard and rules", "standard: {sizes: [4]}\nrules: [{name: L, kind: leaf}]"},
		{"standard zero size", "standard: {sizes: [0]}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, config.ErrInvalidLayout)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "line.yaml")
	require.NoError(t, os.WriteFile(path, []byte(line42), 0o600))

	l, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, l.Rules, 5)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rules: []"), 0o600))
	_, err = config.Load(bad)
	assert.ErrorIs(t, err, config.ErrInvalidLayout)
	assert.Contains(t, err.Error(), "bad.yaml")
}
