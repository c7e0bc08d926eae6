package render

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/replay"
)

const defaultFrameInterval = 20 * time.Millisecond

// TickMsg advances the replay clock. Gen identifies the tick chain that
// scheduled it; ticks from an older chain are dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// TickCmd fires a TickMsg of chain gen after interval.
func TickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// Player is a bubbletea model that replays a Result on its grid.
// Keys: q / ctrl+c / esc quit, r restarts, space pauses.
type Player struct {
	title    string
	grid     *gridgraph.Grid
	res      *gridgraph.Result
	timeline *replay.Timeline
	renderer *Renderer
	interval time.Duration

	last    time.Time
	elapsed time.Duration
	paused  bool
	done    bool
	gen     int // current tick chain
}

// NewPlayer prepares a replay of res on g.
func NewPlayer(title string, g *gridgraph.Grid, res *gridgraph.Result, t replay.Timing, r *Renderer) Player {
	if res == nil {
		res = &gridgraph.Result{}
	}
	interval := t.VisitedStep
	if interval <= 0 {
		interval = defaultFrameInterval
	}

	return Player{
		title:    title,
		grid:     g,
		res:      res,
		timeline: replay.New(res, t),
		renderer: r,
		interval: interval,
	}
}

// Done reports whether the replay reached its final frame.
func (m Player) Done() bool { return m.done }

// Elapsed is the replay clock.
func (m Player) Elapsed() time.Duration { return m.elapsed }

// Init implements tea.Model.
func (m Player) Init() tea.Cmd {
	return TickCmd(m.interval, m.gen)
}

// Update implements tea.Model.
func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.elapsed, m.last, m.done, m.paused = 0, time.Time{}, false, false
			return m.restartTicks()
		case " ":
			m.paused = !m.paused
			m.last = time.Time{}
			if m.paused || m.done {
				m.gen++
				return m, nil
			}
			return m.restartTicks()
		}
	}

	return m, nil
}

// restartTicks abandons any pending tick and starts a new chain.
func (m Player) restartTicks() (tea.Model, tea.Cmd) {
	m.gen++

	return m, TickCmd(m.interval, m.gen)
}

func (m Player) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.paused || m.done {
		return m, nil
	}
	if !m.last.IsZero() {
		m.elapsed += msg.Time.Sub(m.last)
	}
	m.last = msg.Time
	if m.timeline.At(m.elapsed).Done {
		m.done = true
		return m, nil
	}

	return m, TickCmd(m.interval, m.gen)
}

// View implements tea.Model.
func (m Player) View() string {
	s := m.timeline.At(m.elapsed)
	visited, path := m.res.Visited[:s.Visited], m.res.Path[:s.Path]

	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(BoardStyle.Render(m.renderer.Grid(m.grid, visited, path)))
	b.WriteString("\n")
	b.WriteString(m.status(s))
	b.WriteString("\n")

	return b.String()
}

func (m Player) status(s replay.Snapshot) string {
	line := fmt.Sprintf("visited %d/%d  path %d/%d  %s",
		s.Visited, len(m.res.Visited), s.Path, len(m.res.Path), m.elapsed.Truncate(time.Millisecond))
	switch {
	case s.Done && m.res.Found():
		line += "  " + FoundStyle.Render(fmt.Sprintf("path length %d", m.res.Length()))
	case s.Done:
		line += "  " + MissStyle.Render("no path")
	case m.paused:
		line += "  paused"
	}

	return StatusStyle.Render(line) + "\n" + StatusStyle.Render("q quit  r restart  space pause")
}
