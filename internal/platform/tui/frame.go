// Package tui provides the Bubble Tea integration for the tetra arcade.
// It handles the terminal UI, key bindings, and bridges the game loop
// goroutine into the Bubble Tea update cycle.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetra-arcade/internal/loop"
)

// FrameMsg carries a frame published by the game loop. Source is the
// channel it was read from; a model ignores frames from any other game.
type FrameMsg struct {
	loop.Frame
	Source *loop.FrameChannel
}

// loopDoneMsg is sent when the game loop goroutine returns.
type loopDoneMsg struct {
	loop *loop.Loop
	err  error
}

// waitForFrame blocks until the loop publishes the next frame.
func waitForFrame(frames *loop.FrameChannel) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-frames.Frames():
			return FrameMsg{Frame: f, Source: frames}
		case <-frames.Done():
			return nil
		}
	}
}
