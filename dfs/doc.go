// Package dfs implements depth‑first search over a gridgraph.Grid.
//
// What:
//
//   - DFS explores as far as possible along one branch before backtracking,
//     using an explicit stack. It records the order in which cells are
//     finalized and a predecessor for every discovered cell, then rebuilds a
//     start→end path with gridgraph.Reconstruct.
//   - DFS gives no shortest-path guarantee; it exists to visualise
//     exploration order next to BFS and Dijkstra.
//
// Key Types & Constants:
//
//   - White, Gray, Black: per-cell visitation states
//   - Option / DFSOptions: OnVisit and OnPush hooks
//
// Determinism:
//
//   - Neighbors are pushed East, South, West, North; the same Grid always
//     yields the same Result.
//
// Errors:
//
//   - ErrGridNil               if g is nil.
//   - any error returned by OnVisit, wrapped with the cell.
package dfs
