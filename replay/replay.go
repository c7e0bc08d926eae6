// Package replay turns a Search Result into a timed reveal schedule.
//
// Visited cell i appears at i·VisitedStep. Path cell j appears at
// len(Visited)·VisitedStep + PathDelay + j·PathStep. The replay is done
// FinishDelay after the last path slot, even when the path is empty.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// ErrInvalidTiming indicates a negative duration in Timing.
var ErrInvalidTiming = errors.New("replay: invalid timing")

// Timing holds the pacing of a replay.
type Timing struct {
	VisitedStep time.Duration `mapstructure:"visited_step" yaml:"visited_step"`
	PathDelay   time.Duration `mapstructure:"path_delay" yaml:"path_delay"`
	PathStep    time.Duration `mapstructure:"path_step" yaml:"path_step"`
	FinishDelay time.Duration `mapstructure:"finish_delay" yaml:"finish_delay"`
}

// DefaultTiming returns the classic pacing: 20ms per visited cell, a
// 500ms pause, 50ms per path cell and a final 500ms.
func DefaultTiming() Timing {
	return Timing{
		VisitedStep: 20 * time.Millisecond,
		PathDelay:   500 * time.Millisecond,
		PathStep:    50 * time.Millisecond,
		FinishDelay: 500 * time.Millisecond,
	}
}

// Validate rejects negative durations.
func (t Timing) Validate() error {
	for name, d := range map[string]time.Duration{
		"visited_step": t.VisitedStep,
		"path_delay":   t.PathDelay,
		"path_step":    t.PathStep,
		"finish_delay": t.FinishDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%w: %s=%s", ErrInvalidTiming, name, d)
		}
	}

	return nil
}

// Event classifies a Frame.
type Event int

// Frame events.
const (
	EventVisit Event = iota
	EventPath
	EventDone
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventVisit:
		return "visit"
	case EventPath:
		return "path"
	case EventDone:
		return "done"
	}

	return fmt.Sprintf("Event(%d)", int(e))
}

// Frame is one reveal step.
type Frame struct {
	At    time.Duration
	Event Event
	Cell  gridgraph.Cell
}

// Snapshot counts how much of a Result is revealed at some instant.
type Snapshot struct {
	Visited int
	Path    int
	Done    bool
}

// Timeline is the full schedule for one Result.
type Timeline struct {
	timing    Timing
	visited   int
	path      int
	pathStart time.Duration
	total     time.Duration
	frames    []Frame
}

// New schedules res with timing t. A nil res schedules only the final
// frame.
func New(res *gridgraph.Result, t Timing) *Timeline {
	var visited, path []gridgraph.Cell
	if res != nil {
		visited, path = res.Visited, res.Path
	}
	tl := &Timeline{
		timing:  t,
		visited: len(visited),
		path:    len(path),
		frames:  make([]Frame, 0, len(visited)+len(path)+1),
	}
	for i, c := range visited {
		tl.frames = append(tl.frames, Frame{At: time.Duration(i) * t.VisitedStep, Event: EventVisit, Cell: c})
	}
	tl.pathStart = time.Duration(len(visited))*t.VisitedStep + t.PathDelay
	for j, c := range path {
		tl.frames = append(tl.frames, Frame{At: tl.pathStart + time.Duration(j)*t.PathStep, Event: EventPath, Cell: c})
	}
	tl.total = tl.pathStart + time.Duration(len(path))*t.PathStep + t.FinishDelay
	tl.frames = append(tl.frames, Frame{At: tl.total, Event: EventDone})

	return tl
}

// Frames returns the schedule in time order.
func (tl *Timeline) Frames() []Frame { return tl.frames }

// PathStart is the instant of the first path frame.
func (tl *Timeline) PathStart() time.Duration { return tl.pathStart }

// Duration is the instant of the done frame.
func (tl *Timeline) Duration() time.Duration { return tl.total }

// At reports what is revealed at elapsed time d.
func (tl *Timeline) At(d time.Duration) Snapshot {
	var s Snapshot
	if d < 0 {
		return s
	}
	s.Visited = countDue(tl.visited, d, 0, tl.timing.VisitedStep)
	if d >= tl.pathStart {
		s.Path = countDue(tl.path, d, tl.pathStart, tl.timing.PathStep)
	}
	s.Done = d >= tl.total

	return s
}

// countDue returns how many of n frames spaced step apart from base are due
// by d.
func countDue(n int, d, base, step time.Duration) int {
	if n == 0 || d < base {
		return 0
	}
	if step <= 0 {
		return n
	}
	k := int((d-base)/step) + 1
	if k > n {
		return n
	}

	return k
}
