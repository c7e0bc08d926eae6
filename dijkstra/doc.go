// Package dijkstra provides uniform-cost (Dijkstra) search over a
// gridgraph.Grid where every move between 4-adjacent open cells costs 1.
//
// Overview:
//
//   - A min-heap frontier always pops the globally closest unfinalized entry.
//   - A cell may sit in the heap several times with different candidate
//     distances; entries for already-finalized cells are skipped on pop.
//   - On first pop a cell is finalized, appended to Result.Visited, and, if
//     it is the end cell, the search stops.
//   - Neighbors (East, South, West, North) are relaxed with dist+1; a new entry
//     is pushed only on strict improvement.
//
// Relationship to BFS:
//
//   - Path lengths always equal the BFS ones.
//   - Visit order and the chosen path among equally short ones may differ,
//     because ties are broken by heap insertion order, not FIFO discovery.
//
// Performance and complexity:
//
//   - Time:  O(W·H log(W·H))
//   - Space: O(W·H) for distances, predecessors and heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrGridNil:
//     Returned if you pass a nil *gridgraph.Grid to Dijkstra.
//   - Errors returned by an OnFinalize hook abort the search and are wrapped.
//
// API reference:
//
//	func Dijkstra(g *gridgraph.Grid, opts ...Option) (*gridgraph.Result, error)
//
// Thread safety:
//
//   - Grid is immutable, so concurrent Dijkstra calls on one Grid are safe;
//     each call allocates its own state.
package dijkstra
