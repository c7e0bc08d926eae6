package pathfind

import "github.com/katalvlaran/gridnav/gridgraph"

// Summary condenses one algorithm's Result.
type Summary struct {
	Algorithm Algorithm `json:"algorithm"`
	Visited   int       `json:"visited"`
	Length    int       `json:"length"`
	Found     bool      `json:"found"`
}

// Summarize condenses res into a Summary for algorithm a.
func Summarize(a Algorithm, res *gridgraph.Result) Summary {
	return Summary{
		Algorithm: a,
		Visited:   len(res.Visited),
		Length:    res.Length(),
		Found:     res.Found(),
	}
}

// Compare runs every supported algorithm on g, one after another, and
// returns their summaries in canonical order.
func Compare(g *gridgraph.Grid) ([]Summary, error) {
	out := make([]Summary, 0, len(Algorithms()))
	for _, a := range Algorithms() {
		res, err := Run(g, a)
		if err != nil {
			return nil, err
		}
		out = append(out, Summarize(a, res))
	}

	return out, nil
}
