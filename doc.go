// Package gridnav finds paths on 2-D obstacle grids.
//
// 🚀 What is gridnav?
//
//	A small search engine over rectangular grids of open and wall cells:
//		• Grid Model: validated rows×cols board with a start, an end and walls
//		• Dijkstra: uniform-cost search with a lazy min-heap frontier
//		• BFS: breadth-first search in East, South, West, North order
//		• DFS: stack-based depth-first search (any path, not the shortest)
//		• Results: the exact visited order plus the reconstructed path
//
// Every search is synchronous and self-contained: it takes a Grid Model and
// an algorithm selector and returns a Search Result. Nothing survives
// between calls, so independent grids may be searched concurrently.
//
// ✨ Around the core
//
//   - gridfile: YAML documents with an ASCII map or a numeric matrix
//   - gridgen: seeded random boards and perfect mazes
//   - cache: memory and Redis memoisation of Results
//   - replay, render: timed terminal replays with lipgloss and bubbletea
//   - server: a gin HTTP API
//   - cmd/gridnav: the command line
//
// Layout:
//
//	gridgraph/ — Cell, Grid, Result, region analysis & path reconstruction
//	bfs/       — breadth-first search
//	dijkstra/  — uniform-cost search
//	dfs/       — depth-first search
//	pathfind/  — selector parsing, dispatch & side-by-side comparison
//
// Quick ASCII example:
//
//	S#..E      BFS and Dijkstra visit the left column first and go
//	.#.#.      around the walls; the path is reported start to end,
//	...#.      or empty when the end is walled off.
//
//	go install github.com/katalvlaran/gridnav/cmd/gridnav@latest
package gridnav
