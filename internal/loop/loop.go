// Package loop runs a tetris session in real time: one goroutine owns the
// session, the gravity ticker and the input queue, and publishes a frame
// after every change.
package loop

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetra-arcade/internal/config"
	"github.com/vovakirdan/tetra-arcade/internal/core"
	"github.com/vovakirdan/tetra-arcade/internal/tetris"
)

// DefaultInterval is the gravity interval used when none is configured.
const DefaultInterval = 500 * time.Millisecond

// DefaultInputBuffer is the input queue size used when none is configured.
const DefaultInputBuffer = 64

// Frame is a consistent view of the session after one tick or action.
type Frame struct {
	Grid     [][]core.Color
	Snapshot tetris.Snapshot
	Paused   bool
	Interval time.Duration
	Level    float64
	Tick     uint64
}

// Options configure a Loop.
type Options struct {
	// Interval is the base gravity interval.
	Interval time.Duration

	// Difficulty shortens the interval as the game progresses. Optional.
	Difficulty *config.DifficultyManager

	// InputBuffer is the capacity of the action queue.
	InputBuffer int

	// OnFrame receives every published frame. Called on the loop goroutine.
	OnFrame func(Frame)

	// OnEvent receives every engine event. Called on the loop goroutine.
	OnEvent func(tetris.Event)

	// Logger receives structured event logs. Nil discards them.
	Logger *log.Logger
}

// Loop serializes gravity ticks and player actions onto one session.
type Loop struct {
	session *tetris.Session
	opts    Options
	logger  *log.Logger

	input    chan core.Action
	done     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once

	// Owned by the Run goroutine (or the Step caller).
	ticker    *time.Ticker
	interval  time.Duration
	level     float64
	paused    bool
	tick      uint64
	gameTicks int
}

// New creates a loop for session. The loop does not start until Run.
func New(session *tetris.Session, opts Options) *Loop {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.InputBuffer < 1 {
		opts.InputBuffer = DefaultInputBuffer
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	l := &Loop{
		session: session,
		opts:    opts,
		logger:  logger,
		input:   make(chan core.Action, opts.InputBuffer),
		done:    make(chan struct{}),
		stop:    make(chan struct{}),
	}
	l.interval, l.level = l.currentInterval()
	return l
}

// Send queues an action for the loop.
// Non-blocking: returns false and drops the action when the queue is full.
func (l *Loop) Send(a core.Action) bool {
	select {
	case l.input <- a:
		return true
	default:
		return false
	}
}

// Stop ends Run. Safe to call more than once and before Run.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Interval returns the current gravity interval.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run drives the session until ctx is cancelled or Stop is called.
// It publishes an initial frame before the first tick.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	l.ticker = time.NewTicker(l.interval)
	defer l.ticker.Stop()

	l.logger.Debug("loop started", "interval", l.interval)
	l.publish()

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop stopped", "reason", ctx.Err())
			return ctx.Err()

		case <-l.stop:
			l.logger.Debug("loop stopped", "reason", "stop")
			return nil

		case <-l.ticker.C:
			l.handleTick()

		case a := <-l.input:
			l.handleAction(a)
		}
	}
}

// Step applies actions in order and then one gravity tick, synchronously.
// It is for headless drivers and must not be used while Run is active.
func (l *Loop) Step(actions ...core.Action) Frame {
	for _, a := range actions {
		l.handleAction(a)
	}
	l.handleTick()
	return l.frame()
}

// handleTick applies gravity unless paused.
func (l *Loop) handleTick() {
	if l.paused {
		return
	}
	res := l.session.Tick()
	l.tick++
	l.gameTicks++
	l.handleResult(res)
	l.publish()
}

// handleAction routes one queued action.
func (l *Loop) handleAction(a core.Action) {
	switch {
	case a == core.ActionPause:
		l.paused = !l.paused
		l.logger.Debug("pause toggled", "paused", l.paused)
		l.publish()

	case a == core.ActionRestart:
		l.paused = false
		l.gameTicks = 0
		l.handleResult(l.session.Reset())
		l.publish()

	case a.Directional():
		if l.paused {
			return
		}
		if res := l.session.Apply(a); res.Moved {
			l.publish()
		}
	}
}

// handleResult logs and forwards events, then retunes the ticker.
func (l *Loop) handleResult(res tetris.Result) {
	for _, e := range res.Events {
		switch e.Kind {
		case tetris.EventLinesCleared:
			l.logger.Info("lines cleared", "lines", e.Lines, "score", e.Score, "game", e.Game)
		case tetris.EventGameOver:
			l.gameTicks = 0
			l.logger.Info("game over", "score", e.Score, "lines", e.Lines, "game", e.Game)
		case tetris.EventSpawned:
			l.logger.Debug("piece spawned", "shape", e.Shape, "game", e.Game)
		case tetris.EventLocked:
			l.logger.Debug("piece locked", "shape", e.Shape, "score", e.Score)
		}
		if l.opts.OnEvent != nil {
			l.opts.OnEvent(e)
		}
	}
	l.retune()
}

// retune resets the ticker when the difficulty curve moves the interval.
func (l *Loop) retune() {
	interval, level := l.currentInterval()
	l.level = level
	if interval == l.interval {
		return
	}
	l.interval = interval
	if l.ticker != nil {
		l.ticker.Reset(interval)
	}
	l.logger.Debug("interval changed", "interval", interval, "level", level)
}

func (l *Loop) currentInterval() (time.Duration, float64) {
	if l.opts.Difficulty == nil {
		return l.opts.Interval, 0
	}
	lines := l.session.Stats().Lines
	return l.opts.Difficulty.Interval(l.opts.Interval, lines, l.gameTicks),
		l.opts.Difficulty.Level(lines, l.gameTicks)
}

func (l *Loop) frame() Frame {
	return Frame{
		Grid:     l.session.Grid(),
		Snapshot: l.session.Snapshot(),
		Paused:   l.paused,
		Interval: l.interval,
		Level:    l.level,
		Tick:     l.tick,
	}
}

func (l *Loop) publish() {
	if l.opts.OnFrame != nil {
		l.opts.OnFrame(l.frame())
	}
}
