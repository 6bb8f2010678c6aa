package loop

import "sync"

// FrameChannel delivers frames from the loop goroutine to a reader that may
// fall behind. When the buffer is full the oldest frame is dropped, so the
// reader always catches up to the latest state.
type FrameChannel struct {
	frames   chan Frame
	done     chan struct{}
	doneOnce sync.Once
}

// NewFrameChannel creates a frame channel with the given buffer size.
func NewFrameChannel(size int) *FrameChannel {
	if size < 1 {
		size = 1
	}
	return &FrameChannel{
		frames: make(chan Frame, size),
		done:   make(chan struct{}),
	}
}

// Publish sends f without blocking. Use it as Options.OnFrame.
func (c *FrameChannel) Publish(f Frame) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.frames <- f:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-c.frames:
		default:
		}
		select {
		case c.frames <- f:
		default:
		}
	}
}

// Frames returns the receive side.
func (c *FrameChannel) Frames() <-chan Frame {
	return c.frames
}

// Close stops further publishing. The frames channel is left open so a
// pending reader does not see a zero frame.
func (c *FrameChannel) Close() {
	c.doneOnce.Do(func() {
		close(c.done)
	})
}

// Done is closed by Close.
func (c *FrameChannel) Done() <-chan struct{} {
	return c.done
}
