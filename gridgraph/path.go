package gridgraph

// Reconstruct walks the predecessor chain backward from end until it reaches
// a cell with no predecessor. If that terminal cell is start, it returns the
// path start..end; otherwise it returns an empty path (end was not reached).
//
// Every search in this module records predecessors only for discovered cells,
// so the walk is bounded by the number of discovered cells.
// Complexity: O(path length).
func Reconstruct(prev map[Cell]Cell, start, end Cell) []Cell {
	path := []Cell{end}
	cur := end
	for {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
		if len(path) > len(prev)+1 {
			// malformed chain (cycle); treat as unreachable
			return []Cell{}
		}
	}
	if cur != start {
		return []Cell{}
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
