// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// unit-cost obstacle grid.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap entries carry an insertion sequence number; equal distances pop in insertion order.
//   - We stop as soon as the end cell is finalized.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Dijkstra computes the shortest path from g.Start() to g.End() and the
// order in which cells were finalized.
//
// Returns:
//
//   - res: Visited in finalize order; Path empty if End is unreachable.
//   - err: ErrGridNil, or a wrapped OnFinalize error.
//
// Complexity:
//
//   - Time:  O(W·H log(W·H))
//   - Space: O(W·H)
func Dijkstra(g *gridgraph.Grid, opts ...Option) (*gridgraph.Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int, n),
		prev:    make(map[gridgraph.Cell]gridgraph.Cell, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
		order:   make([]gridgraph.Cell, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &gridgraph.Result{
		Visited: r.order,
		Path:    gridgraph.Reconstruct(r.prev, g.Start(), g.End()),
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid                   // The input grid; read-only.
	options Options                           // Hooks.
	dist    []int                             // Row-major best-known distance from Start.
	prev    map[gridgraph.Cell]gridgraph.Cell // Predecessor on the best-known path.
	visited []bool                            // Finalized flags.
	pq      nodePQ                            // Min-heap with stale entries.
	seq     int                               // Next insertion sequence number.
	order   []gridgraph.Cell                  // Finalize order.
}

// init sets every distance to +∞ and pushes Start at distance 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.MaxInt
	}
	start := r.g.Start()
	r.dist[r.g.Index(start)] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// push adds a frontier entry stamped with the next sequence number.
func (r *runner) push(c gridgraph.Cell, d int) {
	heap.Push(&r.pq, &nodeItem{cell: c, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the closest unfinalized cell and relaxes its
// neighbors, until the heap empties or End is finalized.
func (r *runner) process() error {
	end := r.g.End()
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.cell
		ui := r.g.Index(u)

		// Skip stale heap entry.
		if r.visited[ui] {
			continue
		}
		r.visited[ui] = true
		r.order = append(r.order, u)
		if err := r.options.OnFinalize(u, item.dist); err != nil {
			return fmt.Errorf("dijkstra: OnFinalize error at %v: %w", u, err)
		}
		if u == end {
			return nil
		}
		r.relax(u, item.dist)
	}

	return nil
}

// relax offers d+1 to every open, unfinalized neighbor of u and pushes a new
// heap entry whenever that strictly improves the neighbor's distance.
func (r *runner) relax(u gridgraph.Cell, d int) {
	for _, v := range r.g.Neighbors(u) {
		vi := r.g.Index(v)
		if r.visited[vi] {
			continue
		}
		newDist := d + 1
		if newDist >= r.dist[vi] {
			continue
		}
		r.dist[vi] = newDist
		r.prev[v] = u
		r.options.OnRelax(u, v, newDist)
		r.push(v, newDist)
	}
}

// nodeItem is a frontier entry: a cell, its candidate distance and the
// order in which it was pushed.
type nodeItem struct {
	cell gridgraph.Cell
	dist int
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
