package gridgraph

// Regions finds all contiguous regions of open (non-wall) cells under
// 4-connectivity. Regions are discovered in row-major order of their first
// cell; each region lists its cells in flood (BFS) order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, g.Size())
	var regions [][]Cell
	for i := range g.walls {
		if g.walls[i] || seen[i] {
			continue
		}
		regions = append(regions, g.flood(g.Coordinate(i), seen))
	}

	return regions
}

// Region returns the open region containing c, or nil if c is a wall or
// out of bounds.
func (g *Grid) Region(c Cell) []Cell {
	if !g.IsOpen(c) {
		return nil
	}

	return g.flood(c, make([]bool, g.Size()))
}

// Connected reports whether start and end lie in the same open region.
func (g *Grid) Connected() bool {
	for _, c := range g.Region(g.start) {
		if c == g.end {
			return true
		}
	}

	return false
}

// flood collects the region of from, marking seen as it goes.
func (g *Grid) flood(from Cell, seen []bool) []Cell {
	queue := []Cell{from}
	seen[g.Index(from)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			ni := g.Index(n)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}

	return queue
}
