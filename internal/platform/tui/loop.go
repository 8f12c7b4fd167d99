// Package tui provides the Bubble Tea integration for Color Runner.
// It handles the frame loop, input mapping, rendering and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is delivered on every display refresh scheduled by a Loop.
type FrameMsg struct {
	At  time.Time
	gen uint64
}

// Loop drives the per-frame update. Every accepted frame schedules exactly
// the next one, so at most one frame is pending per loop. Frames scheduled
// before the latest Start or Stop are recognised by their generation and
// dropped.
//
// The requested frame rate only sets how often frames are asked for; the
// elapsed time handed to the game is always measured between frames.
type Loop struct {
	interval time.Duration
	gen      uint64
	running  bool
	last     time.Time
	hasLast  bool
}

// NewLoop creates a stopped loop requesting fps frames per second.
func NewLoop(fps int) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{interval: time.Second / time.Duration(fps)}
}

// Start arms the loop and returns the command for the first frame.
// The first frame after Start only records a baseline timestamp.
// Calling Start on a running loop re-arms it.
func (l *Loop) Start() tea.Cmd {
	l.gen++
	l.running = true
	l.hasLast = false
	return l.schedule()
}

// Stop cancels the pending frame. Safe to call repeatedly or before Start.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.hasLast = false
	l.gen++
}

// Running reports whether the loop is armed.
func (l *Loop) Running() bool {
	return l.running
}

// Frame consumes a FrameMsg. ok is false for stale frames and for the
// baseline frame; next is nil only for stale frames.
func (l *Loop) Frame(msg FrameMsg) (dt time.Duration, ok bool, next tea.Cmd) {
	if !l.running || msg.gen != l.gen {
		return 0, false, nil
	}

	next = l.schedule()
	if !l.hasLast {
		l.last = msg.At
		l.hasLast = true
		return 0, false, next
	}

	dt = max(msg.At.Sub(l.last), 0)
	l.last = msg.At
	return dt, true, next
}

func (l *Loop) schedule() tea.Cmd {
	gen := l.gen
	return tea.Tick(l.interval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t, gen: gen}
	})
}
