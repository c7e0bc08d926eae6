// Package gridtest holds grid fixtures and Result assertions shared by the
// search package tests.
package gridtest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Parse builds a Grid from an ASCII picture: '.' open, '#' wall, 'S' start,
// 'E' end. Leading/trailing blank lines and indentation are ignored.
func Parse(t testing.TB, picture string) *gridgraph.Grid {
	t.Helper()
	var m [][]int
	for _, line := range strings.Split(strings.TrimSpace(picture), "\n") {
		line = strings.TrimSpace(line)
		row := make([]int, 0, len(line))
		for _, r := range line {
			switch r {
			case '.':
				row = append(row, gridgraph.CodeEmpty)
			case '#':
				row = append(row, gridgraph.CodeWall)
			case 'S':
				row = append(row, gridgraph.CodeStart)
			case 'E':
				row = append(row, gridgraph.CodeEnd)
			default:
				t.Fatalf("gridtest: unexpected rune %q", r)
			}
		}
		m = append(m, row)
	}
	g, err := gridgraph.FromMatrix(m)
	require.NoError(t, err)

	return g
}

// Open returns a wall-free rows×cols grid.
func Open(t testing.TB, rows, cols int, start, end gridgraph.Cell) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.New(rows, cols, start, end, nil)
	require.NoError(t, err)

	return g
}

// RequireValid checks the invariants every Result must satisfy:
// Visited has no duplicates, walls or out-of-bounds cells and begins at the
// start; a non-empty Path runs start→end through 4-adjacent, open, distinct
// cells that were all visited or discovered.
func RequireValid(t testing.TB, g *gridgraph.Grid, res *gridgraph.Result) {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Visited, "visited order must contain the start")
	require.Equal(t, g.Start(), res.Visited[0], "first visited cell")

	seen := make(map[gridgraph.Cell]bool, len(res.Visited))
	for _, c := range res.Visited {
		require.False(t, seen[c], "duplicate visited cell %v", c)
		require.True(t, g.IsOpen(c), "visited cell %v is not open", c)
		seen[c] = true
	}

	if len(res.Path) == 0 {
		return
	}
	require.Equal(t, g.Start(), res.Path[0], "path must begin at start")
	require.Equal(t, g.End(), res.Path[len(res.Path)-1], "path must end at end")
	onPath := make(map[gridgraph.Cell]bool, len(res.Path))
	for i, c := range res.Path {
		require.False(t, onPath[c], "duplicate path cell %v", c)
		require.True(t, g.IsOpen(c), "path cell %v is not open", c)
		onPath[c] = true
		if i > 0 {
			require.True(t, res.Path[i-1].Adjacent(c), "path cells %v and %v are not adjacent", res.Path[i-1], c)
		}
	}
}

// SameCells reports whether a and b hold the same cells, ignoring order.
func SameCells(a, b []gridgraph.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[gridgraph.Cell]int, len(a))
	for _, c := range a {
		set[c]++
	}
	for _, c := range b {
		set[c]--
		if set[c] < 0 {
			return false
		}
	}

	return true
}
