package engine

import (
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TickScheduler runs the single cooperative game loop at a fixed target
// interval: poll input, update the world when playing, render, then pace
// to the frame budget. Frames that overrun the budget run long; they are
// never skipped, caught up, or reported.
type TickScheduler struct {
	session *SessionState
	clock   TimeProvider

	events      <-chan tcell.Event
	pollTimeout time.Duration

	frameInterval time.Duration
	spinReserve   time.Duration

	handleEvent func(ev tcell.Event)
	update      func(now time.Time)
	render      func(now time.Time)

	frameCount uint64
}

// SchedulerConfig wires the scheduler's collaborators
type SchedulerConfig struct {
	Session     *SessionState
	Clock       TimeProvider
	Events      <-chan tcell.Event
	PollTimeout time.Duration
	FrameRate   int
	SpinReserve time.Duration
	HandleEvent func(ev tcell.Event)
	Update      func(now time.Time)
	Render      func(now time.Time)
}

// NewTickScheduler creates a scheduler targeting cfg.FrameRate frames per
// second
func NewTickScheduler(cfg SchedulerConfig) *TickScheduler {
	interval := time.Second / time.Duration(cfg.FrameRate)
	return &TickScheduler{
		session:       cfg.Session,
		clock:         cfg.Clock,
		events:        cfg.Events,
		pollTimeout:   cfg.PollTimeout,
		frameInterval: interval,
		spinReserve:   cfg.SpinReserve,
		handleEvent:   cfg.HandleEvent,
		update:        cfg.Update,
		render:        cfg.Render,
	}
}

// FrameCount returns the number of completed frames
func (s *TickScheduler) FrameCount() uint64 {
	return s.frameCount
}

// Run executes the loop until the session's running flag is cleared.
// Per-frame ordering is fixed: input, world update, render, pace.
func (s *TickScheduler) Run() {
	for s.session.Running {
		start := time.Now()

		s.pollInput()
		if !s.session.Running {
			break
		}

		// Single sampled now for every timer comparison this frame
		now := s.clock.Now()
		if s.session.Playing() {
			s.update(now)
		}
		s.render(now)

		s.frameCount++
		s.pace(start)
	}
}

// pollInput performs one short-timeout poll, then drains any queued
// events without blocking. Every event is dispatched exactly once.
func (s *TickScheduler) pollInput() {
	select {
	case ev, ok := <-s.events:
		if !ok {
			s.session.Stop()
			return
		}
		s.handleEvent(ev)
	case <-time.After(s.pollTimeout):
		return
	}

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.session.Stop()
				return
			}
			s.handleEvent(ev)
		default:
			return
		}
	}
}

// pace sleeps out the remaining frame budget: a coarse sleep for most of
// it, then a spin-wait for the final fraction. The hybrid is a deliberate
// latency/precision trade-off for platforms with coarse timer resolution.
func (s *TickScheduler) pace(start time.Time) {
	deadline := start.Add(s.frameInterval)
	remaining := time.Until(deadline)
	if remaining <= 0 {
		// Overrun: run long, no catch-up
		return
	}

	if remaining > s.spinReserve {
		time.Sleep(remaining - s.spinReserve)
	}

	for time.Now().Before(deadline) {
		runtime.Gosched()
	}
}
