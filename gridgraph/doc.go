// Package gridgraph treats a 2D obstacle grid as an unweighted 4-connected
// graph and provides the shared building blocks for grid searches.
//
// What:
//
//   - Grid is an immutable snapshot: dimensions, one start, one end, a wall set.
//   - Construction validates eagerly: start/end in bounds, distinct, not walls.
//   - Neighbors expands in a fixed order (East, South, West, North) so that
//     every search over the same Grid is reproducible.
//   - Regions finds contiguous areas of open cells.
//   - Reconstruct turns a predecessor map into a start→end path.
//   - Result carries the visit order and the recovered path of one search.
//
// Why:
//
//   - Pathfinding visualisers: feed Result.Visited and Result.Path to a renderer.
//   - Level design: check that start and end share a region before publishing a map.
//   - Algorithm comparison: BFS, Dijkstra and DFS all consume the same Grid.
//
// Complexity:
//
//   - New, FromMatrix:  O(W×H + walls), Memory: O(W×H).
//   - Neighbors:        O(1).
//   - Regions, Region:  O(W×H), Memory: O(W×H).
//   - Reconstruct:      O(path length).
//
// Matrix codes (FromMatrix, Matrix):
//
//	0 = empty, 1 = wall, 2 = start, 3 = end
//
// Errors:
//
//   - ErrInvalidGrid: wrapped by every construction failure.
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCellCode: matrix value outside 0..3.
package gridgraph
