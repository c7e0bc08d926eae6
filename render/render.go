// Package render draws grids and search results for the terminal.
//
// Each cell is classified into a Kind with the precedence start, end,
// wall, path, visited, empty, so a path cell is always drawn over its
// visited mark. Renderer writes one glyph per cell, styled with lipgloss
// when colour is enabled. Player is a bubbletea model that reveals a
// Result following a replay.Timeline.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Kind is the presentation state of a cell.
type Kind int

// Cell kinds.
const (
	KindEmpty Kind = iota
	KindWall
	KindStart
	KindEnd
	KindVisited
	KindPath
)

// Glyph returns the character drawn for k.
func (k Kind) Glyph() byte {
	switch k {
	case KindWall:
		return '#'
	case KindStart:
		return 'S'
	case KindEnd:
		return 'E'
	case KindVisited:
		return 'o'
	case KindPath:
		return '*'
	default:
		return '.'
	}
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWall:
		return "wall"
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindVisited:
		return "visited"
	case KindPath:
		return "path"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Overlay marks the visited and path cells of a (possibly partial) Result.
type Overlay struct {
	visited map[gridgraph.Cell]struct{}
	path    map[gridgraph.Cell]struct{}
}

// NewOverlay indexes visited and path.
func NewOverlay(visited, path []gridgraph.Cell) Overlay {
	o := Overlay{
		visited: make(map[gridgraph.Cell]struct{}, len(visited)),
		path:    make(map[gridgraph.Cell]struct{}, len(path)),
	}
	for _, c := range visited {
		o.visited[c] = struct{}{}
	}
	for _, c := range path {
		o.path[c] = struct{}{}
	}

	return o
}

// Classify returns the Kind of c on g under o.
func Classify(g *gridgraph.Grid, o Overlay, c gridgraph.Cell) Kind {
	switch {
	case c == g.Start():
		return KindStart
	case c == g.End():
		return KindEnd
	case g.IsWall(c):
		return KindWall
	}
	if _, ok := o.path[c]; ok {
		return KindPath
	}
	if _, ok := o.visited[c]; ok {
		return KindVisited
	}

	return KindEmpty
}

// Renderer draws grids as text.
type Renderer struct {
	color bool
}

// New returns a Renderer; color enables lipgloss styling.
func New(color bool) *Renderer {
	return &Renderer{color: color}
}

// Grid draws g with visited and path overlaid, one line per row.
func (r *Renderer) Grid(g *gridgraph.Grid, visited, path []gridgraph.Cell) string {
	o := NewOverlay(visited, path)
	var b strings.Builder
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			k := Classify(g, o, gridgraph.Cell{Row: row, Col: col})
			if r.color {
				b.WriteString(StyleForKind(k).Render(string(k.Glyph())))
			} else {
				b.WriteByte(k.Glyph())
			}
		}
		if row < g.Rows()-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Result draws g with the whole of res overlaid. A nil res draws the bare
// grid.
func (r *Renderer) Result(g *gridgraph.Grid, res *gridgraph.Result) string {
	if res == nil {
		return r.Grid(g, nil, nil)
	}

	return r.Grid(g, res.Visited, res.Path)
}

// Legend lists the glyphs.
func (r *Renderer) Legend() string {
	kinds := []Kind{KindStart, KindEnd, KindWall, KindVisited, KindPath, KindEmpty}
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		g := string(k.Glyph())
		if r.color {
			g = StyleForKind(k).Render(g)
		}
		parts[i] = g + " " + k.String()
	}

	return strings.Join(parts, "  ")
}
