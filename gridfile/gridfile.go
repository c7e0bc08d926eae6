package gridfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Map alphabet.
const (
	RuneOpen  = '.'
	RuneWall  = '#'
	RuneStart = 'S'
	RuneEnd   = 'E'
)

// Document is the YAML shape of a grid. Either Map or the structured
// fields (Start, End, Walls) describe the layout; Rows and Cols may
// accompany a Map and must then agree with it.
type Document struct {
	Rows  int     `yaml:"rows,omitempty"`
	Cols  int     `yaml:"cols,omitempty"`
	Start []int   `yaml:"start,omitempty,flow"`
	End   []int   `yaml:"end,omitempty,flow"`
	Walls [][]int `yaml:"walls,omitempty,flow"`
	Map   string  `yaml:"map,omitempty"`
}

// Decode reads one YAML document from r and builds its Grid.
func Decode(r io.Reader) (*gridgraph.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gridfile: read: %w", err)
	}

	return Unmarshal(data)
}

// Unmarshal parses a YAML document and builds its Grid.
func Unmarshal(data []byte) (*gridgraph.Grid, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: gridfile: %v", gridgraph.ErrInvalidGrid, err)
	}

	return doc.Grid()
}

// Load decodes the document stored at path.
func Load(path string) (*gridgraph.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Grid validates the document and builds the Grid it describes.
func (d Document) Grid() (*gridgraph.Grid, error) {
	if strings.TrimSpace(d.Map) != "" {
		if len(d.Start) > 0 || len(d.End) > 0 || len(d.Walls) > 0 {
			return nil, invalid(multierror.Append(nil,
				fmt.Errorf("map cannot be combined with start, end or walls")))
		}
		g, err := ParseMap(d.Map)
		if err != nil {
			return nil, err
		}
		var merr *multierror.Error
		if d.Rows != 0 && d.Rows != g.Rows() {
			merr = multierror.Append(merr, fmt.Errorf("rows=%d but map has %d rows", d.Rows, g.Rows()))
		}
		if d.Cols != 0 && d.Cols != g.Cols() {
			merr = multierror.Append(merr, fmt.Errorf("cols=%d but map has %d columns", d.Cols, g.Cols()))
		}
		if merr != nil {
			return nil, invalid(merr)
		}

		return g, nil
	}

	var merr *multierror.Error
	start, err := pair("start", d.Start)
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	end, err := pair("end", d.End)
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	walls := make([]gridgraph.Cell, 0, len(d.Walls))
	for i, w := range d.Walls {
		c, err := pair(fmt.Sprintf("walls[%d]", i), w)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		walls = append(walls, c)
	}
	if merr != nil {
		return nil, invalid(merr)
	}

	return gridgraph.New(d.Rows, d.Cols, start, end, walls)
}

// ParseMap builds a Grid from an ASCII picture. Surrounding blank lines and
// per-line indentation are ignored.
func ParseMap(picture string) (*gridgraph.Grid, error) {
	lines := strings.Split(strings.TrimSpace(picture), "\n")
	var (
		merr         *multierror.Error
		walls        []gridgraph.Cell
		starts, ends []gridgraph.Cell
	)
	width := -1
	for r, line := range lines {
		line = strings.TrimSpace(line)
		n := 0
		for _, ch := range line {
			c := gridgraph.Cell{Row: r, Col: n}
			switch ch {
			case RuneOpen:
			case RuneWall:
				walls = append(walls, c)
			case RuneStart:
				starts = append(starts, c)
			case RuneEnd:
				ends = append(ends, c)
			default:
				merr = multierror.Append(merr, fmt.Errorf("unexpected %q at %v", ch, c))
			}
			n++
		}
		switch {
		case n == 0:
			merr = multierror.Append(merr, fmt.Errorf("row %d is empty", r))
		case width < 0:
			width = n
		case n != width:
			merr = multierror.Append(merr, fmt.Errorf("row %d has %d columns, want %d", r, n, width))
		}
	}
	if len(starts) != 1 {
		merr = multierror.Append(merr, fmt.Errorf("want exactly one %q, found %d", RuneStart, len(starts)))
	}
	if len(ends) != 1 {
		merr = multierror.Append(merr, fmt.Errorf("want exactly one %q, found %d", RuneEnd, len(ends)))
	}
	if merr != nil {
		return nil, invalid(merr)
	}

	return gridgraph.New(len(lines), width, starts[0], ends[0], walls)
}

// FormatMap renders g in the map alphabet, one line per row.
func FormatMap(g *gridgraph.Grid) string {
	var b strings.Builder
	b.Grow(g.Size() + g.Rows())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := gridgraph.Cell{Row: r, Col: c}
			switch {
			case cell == g.Start():
				b.WriteByte(RuneStart)
			case cell == g.End():
				b.WriteByte(RuneEnd)
			case g.IsWall(cell):
				b.WriteByte(RuneWall)
			default:
				b.WriteByte(RuneOpen)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Marshal returns the map-shaped YAML document for g.
func Marshal(g *gridgraph.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Encode writes g to w as a map-shaped YAML document.
func Encode(w io.Writer, g *gridgraph.Grid) error {
	if g == nil {
		return fmt.Errorf("%w: grid is nil", gridgraph.ErrInvalidGrid)
	}
	doc := Document{Rows: g.Rows(), Cols: g.Cols(), Map: FormatMap(g)}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("gridfile: encode: %w", err)
	}

	return enc.Close()
}

// Save writes g to path, creating or truncating the file.
func Save(path string, g *gridgraph.Grid) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("gridfile: %w", err)
	}

	return nil
}

// DecodeMatrix parses a YAML or JSON array of rows in the numeric
// encoding and builds its Grid.
func DecodeMatrix(data []byte) (*gridgraph.Grid, error) {
	var m [][]int
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: gridfile: %v", gridgraph.ErrInvalidGrid, err)
	}

	return gridgraph.FromMatrix(m)
}

func pair(field string, v []int) (gridgraph.Cell, error) {
	if len(v) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("%s: want [row, col], got %v", field, v)
	}

	return gridgraph.Cell{Row: v[0], Col: v[1]}, nil
}

func invalid(merr *multierror.Error) error {
	merr.ErrorFormat = listFormat

	return fmt.Errorf("%w: %w", gridgraph.ErrInvalidGrid, merr)
}

func listFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}

	return strings.Join(msgs, "; ")
}
