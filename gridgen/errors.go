package gridgen

import "errors"

// ErrTooFewCells indicates rows or cols below one, or a grid too small to
// hold distinct start and end cells.
var ErrTooFewCells = errors.New("gridgen: too few cells")

// ErrInvalidProbability indicates a wall density outside [0,1].
var ErrInvalidProbability = errors.New("gridgen: probability out of range")

// ErrNeedRandSource indicates a stochastic draw without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("gridgen: rng is required")
