// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning the visit order and an unweighted shortest path.
//
// What
//
//   - Explore cells in non-decreasing distance (edge count) from Grid.Start.
//   - Stop as soon as Grid.End is dequeued.
//   - Returns a gridgraph.Result containing:
//   - Visited: dequeue sequence, no duplicates
//   - Path:    Start..End inclusive, empty when End is unreachable
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a cell is discovered)
//   - OnVisit   (when visiting; may abort with an error)
//
// Why
//
//   - Shortest paths on uniform-cost grids in O(W·H) time.
//   - Step-by-step visit order for visualisers.
//
// Determinism
//
//	Neighbors are expanded East, South, West, North, so the visit sequence
//	and the recovered path are fully reproducible for a given Grid.
//
// Complexity (W·H = cells)
//
//   - Time:   O(W·H)
//   - Memory: O(W·H)   (queue, visited mask, predecessor map)
//
// Usage
//
//	res, err := bfs.BFS(g)
//	if err != nil {
//		// ErrGridNil or a wrapped OnVisit error
//	}
//	if !res.Found() {
//		// end unreachable; res.Visited is the start's region
//	}
//
// Errors
//
//   - ErrGridNil if the grid pointer is nil.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
