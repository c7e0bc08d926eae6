package server

import (
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/pathfind"
)

// GridRequest describes one grid, either structurally or as an ASCII map.
type GridRequest struct {
	Rows  int              `json:"rows"`
	Cols  int              `json:"cols"`
	Start *gridgraph.Cell  `json:"start"`
	End   *gridgraph.Cell  `json:"end"`
	Walls []gridgraph.Cell `json:"walls"`
	Map   string           `json:"map"`
}

// SearchRequest asks for one algorithm on one grid.
type SearchRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
	GridRequest
}

// SearchResponse carries a Search Result.
type SearchResponse struct {
	Algorithm pathfind.Algorithm `json:"algorithm"`
	Visited   []gridgraph.Cell   `json:"visited"`
	Path      []gridgraph.Cell   `json:"path"`
	Found     bool               `json:"found"`
	Length    int                `json:"length"`
	Cached    bool               `json:"cached"`
}

// CompareResponse lists one summary per algorithm.
type CompareResponse struct {
	Results []pathfind.Summary `json:"results"`
}

// InspectResponse describes the open regions of a grid.
type InspectResponse struct {
	Rows      int  `json:"rows"`
	Cols      int  `json:"cols"`
	Walls     int  `json:"walls"`
	Regions   int  `json:"regions"`
	Reachable int  `json:"reachable"`
	Connected bool `json:"connected"`
}

// AlgorithmsResponse lists the supported selectors.
type AlgorithmsResponse struct {
	Algorithms []pathfind.Algorithm `json:"algorithms"`
}
