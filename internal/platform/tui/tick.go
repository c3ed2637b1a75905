// Package tui provides the Bubble Tea integration for the game.
// It owns the frame loop, input mapping and terminal rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(stepDuration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func stepDuration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// FrameDriver converts elapsed wall-clock time into whole simulation ticks.
// Leftover time carries into the next frame; a long stall is capped at
// maxTicks so the game never fast-forwards through a hiccup.
type FrameDriver struct {
	step     time.Duration
	maxTicks int
	acc      time.Duration
	last     time.Time
}

// NewFrameDriver creates a driver for the given tick rate.
func NewFrameDriver(tickRate, maxTicks int) *FrameDriver {
	if maxTicks <= 0 {
		maxTicks = 1
	}
	return &FrameDriver{step: stepDuration(tickRate), maxTicks: maxTicks}
}

// Due returns the number of ticks owed at now.
// The first call only records the start time.
func (d *FrameDriver) Due(now time.Time) int {
	if d.last.IsZero() {
		d.last = now
		return 0
	}

	if elapsed := now.Sub(d.last); elapsed > 0 {
		d.acc += elapsed
	}
	d.last = now

	n := int(d.acc / d.step)
	if n > d.maxTicks {
		d.acc = 0
		return d.maxTicks
	}
	d.acc -= time.Duration(n) * d.step
	return n
}
