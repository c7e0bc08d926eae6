package gridfile_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridfile"
	"github.com/katalvlaran/gridnav/gridgraph"
)

func TestUnmarshal_Structured(t *testing.T) {
	g, err := gridfile.Unmarshal([]byte(`
rows: 5
cols: 5
start: [0, 0]
end: [4, 4]
walls: [[2, 0], [2, 1]]
`))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, gridgraph.Cell{Row: 4, Col: 4}, g.End())
	assert.Equal(t, []gridgraph.Cell{{Row: 2, Col: 0}, {Row: 2, Col: 1}}, g.Walls())
}

func TestUnmarshal_Map(t *testing.T) {
	g, err := gridfile.Unmarshal([]byte(`
map: |
  S....
  .....
  ##...
  .....
  ....E
`))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, g.Start())
	assert.True(t, g.IsWall(gridgraph.Cell{Row: 2, Col: 1}))
}

// TestParseMap_CollectsProblems checks that every layout problem is
// reported at once.
func TestParseMap_CollectsProblems(t *testing.T) {
	_, err := gridfile.ParseMap(`
		S.x.
		S..
		....`)
	require.Error(t, err)
	assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	// bad rune, ragged row, two starts, no end
	assert.Len(t, merr.Errors, 4)
	assert.Contains(t, err.Error(), `unexpected 'x' at (0,2)`)
	assert.Contains(t, err.Error(), "row 1 has 3 columns, want 4")
}

func TestDocument_Conflicts(t *testing.T) {
	_, err := gridfile.Unmarshal([]byte("map: \"S.E\"\nstart: [0, 0]\n"))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)

	_, err = gridfile.Unmarshal([]byte("rows: 2\nmap: \"S.E\"\n"))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
	assert.Contains(t, err.Error(), "rows=2 but map has 1 rows")

	_, err = gridfile.Unmarshal([]byte("rows: 2\ncols: 2\nstart: [0]\nend: [1, 1]\nwalls: [[0, 1, 2]]\n"))
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
}

func TestUnmarshal_ModelErrors(t *testing.T) {
	// Well-formed document, but the end sits on a wall.
	_, err := gridfile.Unmarshal([]byte("rows: 2\ncols: 2\nstart: [0, 0]\nend: [1, 1]\nwalls: [[1, 1]]\n"))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)

	_, err = gridfile.Unmarshal([]byte("rows: [oops"))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
}

// TestUnmarshal_HugeDimensions rejects boards whose cell count overflows
// or exceeds the model limit instead of allocating them.
func TestUnmarshal_HugeDimensions(t *testing.T) {
	for _, doc := range []string{
		"rows: 4294967296\ncols: 4294967296\nstart: [0, 0]\nend: [0, 1]\n",
		"rows: 4611686018427387905\ncols: 3\nstart: [0, 0]\nend: [0, 1]\n",
		"rows: 100000\ncols: 100000\nstart: [0, 0]\nend: [0, 1]\n",
	} {
		g, err := gridfile.Unmarshal([]byte(doc))
		assert.Nil(t, g)
		assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g, err := gridgraph.FromMatrix([][]int{
		{2, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 3},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gridfile.Encode(&buf, g))
	assert.Contains(t, buf.String(), "rows: 3")
	assert.Contains(t, buf.String(), "S.#.")

	back, err := gridfile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Matrix(), back.Matrix())
}

func TestFormatMap(t *testing.T) {
	g, err := gridgraph.New(2, 3, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 2},
		[]gridgraph.Cell{{Row: 0, Col: 1}})
	require.NoError(t, err)
	assert.Equal(t, "S#.\n..E\n", gridfile.FormatMap(g))
}

func TestSaveLoad(t *testing.T) {
	g, err := gridfile.ParseMap("S..\n.#.\n..E")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, gridfile.Save(path, g))
	back, err := gridfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, g.Walls(), back.Walls())

	_, err = gridfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeMatrix(t *testing.T) {
	g, err := gridfile.DecodeMatrix([]byte("[[2, 0], [1, 3]]"))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 1}, g.End())

	_, err = gridfile.DecodeMatrix([]byte("[[2, 0], [1, 7]]"))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)

	_, err = gridfile.DecodeMatrix([]byte(strings.Repeat("[", 3)))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
}

func TestEncodeNil(t *testing.T) {
	assert.ErrorIs(t, gridfile.Encode(&bytes.Buffer{}, nil), gridgraph.ErrInvalidGrid)
}
