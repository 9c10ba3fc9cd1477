package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/duckling/core"
)

type cadenceKind int

const (
	cadencePerFrame cadenceKind = iota
	cadencePerTick
	cadenceInterval
)

// entry is one scheduled collaborator or check
type entry struct {
	name    string
	kind    cadenceKind
	period  time.Duration
	lastRun time.Time
	update  func(now time.Time, delta time.Duration) []core.Message
}

// SubsystemCoordinator drives collaborator updates at three cadences:
// per-frame, fixed-tick, and independent slow intervals. Registration
// order is the call order within a cadence, so mood/need mutations are
// reproducible. Each entry runs at most once per its cadence window.
// Collaborator updates are assumed non-blocking; this precondition is
// not enforced here.
type SubsystemCoordinator struct {
	log          *slog.Logger
	tickInterval time.Duration

	lastFrame time.Time
	lastTick  time.Time
	started   bool

	entries []*entry

	// sink receives user-facing messages for the renderer collaborator
	sink func([]core.Message)
}

// NewSubsystemCoordinator creates a coordinator with the given fixed-tick
// interval and message sink
func NewSubsystemCoordinator(log *slog.Logger, tickInterval time.Duration, sink func([]core.Message)) *SubsystemCoordinator {
	if sink == nil {
		sink = func([]core.Message) {}
	}
	return &SubsystemCoordinator{
		log:          log,
		tickInterval: tickInterval,
		sink:         sink,
	}
}

// RegisterPerFrame schedules a collaborator on the per-frame cadence
func (c *SubsystemCoordinator) RegisterPerFrame(collab Collaborator) {
	c.entries = append(c.entries, &entry{name: collab.Name(), kind: cadencePerFrame, update: collab.Update})
}

// RegisterPerTick schedules a collaborator on the fixed-tick cadence
func (c *SubsystemCoordinator) RegisterPerTick(collab Collaborator) {
	c.entries = append(c.entries, &entry{name: collab.Name(), kind: cadencePerTick, update: collab.Update})
}

// RegisterEvery schedules a collaborator on an independent slow interval
func (c *SubsystemCoordinator) RegisterEvery(period time.Duration, collab Collaborator) {
	c.entries = append(c.entries, &entry{name: collab.Name(), kind: cadenceInterval, period: period, update: collab.Update})
}

// RegisterCheck schedules a bare periodic check (e.g. autosave) that is
// not a full collaborator
func (c *SubsystemCoordinator) RegisterCheck(name string, period time.Duration, check func(now time.Time) []core.Message) {
	c.entries = append(c.entries, &entry{
		name:   name,
		kind:   cadenceInterval,
		period: period,
		update: func(now time.Time, _ time.Duration) []core.Message {
			return check(now)
		},
	})
}

// RegisterFrameHook schedules a per-frame func that is not a full
// collaborator (animation advance, interaction drain)
func (c *SubsystemCoordinator) RegisterFrameHook(name string, hook func(now time.Time, delta time.Duration) []core.Message) {
	c.entries = append(c.entries, &entry{name: name, kind: cadencePerFrame, update: hook})
}

// RegisterTickHook schedules a fixed-tick func that is not a full
// collaborator (need decay on a collaborator already registered per-frame)
func (c *SubsystemCoordinator) RegisterTickHook(name string, hook func(now time.Time, delta time.Duration) []core.Message) {
	c.entries = append(c.entries, &entry{name: name, kind: cadencePerTick, update: hook})
}

// Update runs one coordination pass against a single sampled now
func (c *SubsystemCoordinator) Update(now time.Time) {
	if !c.started {
		c.lastFrame = now
		c.lastTick = now
		for _, e := range c.entries {
			e.lastRun = now
		}
		c.started = true
		return
	}

	frameDelta := now.Sub(c.lastFrame)
	c.lastFrame = now

	tickDue := now.Sub(c.lastTick) >= c.tickInterval
	tickDelta := now.Sub(c.lastTick)
	if tickDue {
		c.lastTick = now
	}

	for _, e := range c.entries {
		switch e.kind {
		case cadencePerFrame:
			c.runEntry(e, now, frameDelta)
		case cadencePerTick:
			if tickDue {
				c.runEntry(e, now, tickDelta)
			}
		case cadenceInterval:
			if elapsed := now.Sub(e.lastRun); elapsed >= e.period {
				e.lastRun = now
				c.runEntry(e, now, elapsed)
			}
		}
	}
}

// ResetTimers re-anchors every cadence window, used after load or a long
// modal pause so slow checks do not all fire at once
func (c *SubsystemCoordinator) ResetTimers(now time.Time) {
	c.lastFrame = now
	c.lastTick = now
	for _, e := range c.entries {
		e.lastRun = now
	}
	c.started = true
}

// runEntry invokes one entry, isolating faults: a panicking collaborator
// is logged with full context and skipped for the frame, never fatal
func (c *SubsystemCoordinator) runEntry(e *entry, now time.Time, delta time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			if c.log != nil {
				c.log.Error("collaborator update failed",
					"collaborator", e.name,
					"panic", fmt.Sprint(r),
					"delta", delta,
				)
			}
		}
	}()

	if msgs := e.update(now, delta); len(msgs) > 0 {
		c.sink(msgs)
	}
}
