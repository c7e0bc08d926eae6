// Package gridgen generates random grid layouts for gridnav.
//
// What:
//
//	Random(rows, cols, density, opts...) samples a rows×cols Grid in which
//	every cell other than the two endpoints becomes a wall independently
//	with probability density.
//
// Determinism:
//
//	Cells are sampled in row-major order from the *rand.Rand supplied by
//	WithSeed or WithRand, so a fixed seed always yields the same layout.
//	Endpoints are drawn first, unless fixed with WithStart / WithEnd.
//
// Errors:
//
//	ErrTooFewCells         - rows or cols < 1, or fewer than two cells.
//	ErrInvalidProbability  - density outside [0,1].
//	ErrNeedRandSource      - sampling needs an RNG and none was supplied.
//	gridgraph.ErrInvalidGrid - fixed endpoints out of bounds or equal.
//
// Complexity: O(rows·cols) time and space.
package gridgen
