package gridgen

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

const (
	methodRandom = "Random"
	minCells     = 2
	probMin      = 0.0
	probMax      = 1.0
)

// Random samples a rows×cols grid whose non-endpoint cells are walls with
// independent probability density.
//
// Without WithStart/WithEnd the endpoints are drawn uniformly from distinct
// cells; the walls are then sampled in row-major order. An RNG is required
// whenever something is drawn, i.e. an endpoint is not pinned or
// 0 < density < 1.
func Random(rows, cols int, density float64, opts ...Option) (*gridgraph.Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodRandom, rows, cols, ErrTooFewCells)
	}
	if rows > gridgraph.MaxCells/cols {
		return nil, fmt.Errorf("%s: %dx%d: %w: %w", methodRandom, rows, cols, gridgraph.ErrInvalidGrid, gridgraph.ErrTooLarge)
	}
	if rows*cols < minCells {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodRandom, rows, cols, ErrTooFewCells)
	}
	if density < probMin || density > probMax {
		return nil, fmt.Errorf("%s: density=%.6f not in [%.1f,%.1f]: %w",
			methodRandom, density, probMin, probMax, ErrInvalidProbability)
	}

	cfg := newConfig(opts...)
	stochastic := cfg.start == nil || cfg.end == nil || (density > probMin && density < probMax)
	if stochastic && cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	size := rows * cols
	start, end := cfg.start, cfg.end
	if start == nil {
		// Avoid the pinned end so the draw never collides.
		start = drawCell(cfg, cols, size, end)
	}
	if end == nil {
		end = drawCell(cfg, cols, size, start)
	}

	var walls []gridgraph.Cell
	for i := 0; i < size; i++ {
		c := gridgraph.Cell{Row: i / cols, Col: i % cols}
		if c == *start || c == *end {
			continue
		}
		if wallDraw(cfg, density) {
			walls = append(walls, c)
		}
	}

	g, err := gridgraph.New(rows, cols, *start, *end, walls)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}

	return g, nil
}

// drawCell picks a cell uniformly, skipping avoid when set.
func drawCell(cfg config, cols, size int, avoid *gridgraph.Cell) *gridgraph.Cell {
	if avoid == nil || avoid.Row < 0 || avoid.Col < 0 || avoid.Row*cols+avoid.Col >= size || avoid.Col >= cols {
		i := cfg.rng.Intn(size)
		return &gridgraph.Cell{Row: i / cols, Col: i % cols}
	}
	skip := avoid.Row*cols + avoid.Col
	i := cfg.rng.Intn(size - 1)
	if i >= skip {
		i++
	}

	return &gridgraph.Cell{Row: i / cols, Col: i % cols}
}

func wallDraw(cfg config, density float64) bool {
	switch density {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < density
}
