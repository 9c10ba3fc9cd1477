package engine

import (
	"log/slog"
	"testing"
	"time"

	"github.com/lixenwraith/duckling/core"
)

// recordingCollaborator counts update calls and records deltas
type recordingCollaborator struct {
	name    string
	calls   int
	deltas  []time.Duration
	panicky bool
	emit    []core.Message
}

func (r *recordingCollaborator) Name() string { return r.name }

func (r *recordingCollaborator) Update(now time.Time, delta time.Duration) []core.Message {
	if r.panicky {
		panic("collaborator fault")
	}
	r.calls++
	r.deltas = append(r.deltas, delta)
	return r.emit
}

func (r *recordingCollaborator) Serialize() ([]byte, error) { return []byte("{}"), nil }
func (r *recordingCollaborator) Deserialize([]byte) error   { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCoordinator_PerFrameCadence(t *testing.T) {
	c := NewSubsystemCoordinator(discardLogger(), time.Second, nil)
	collab := &recordingCollaborator{name: "anim"}
	c.RegisterPerFrame(collab)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.Update(now) // anchors windows, no updates yet
	for i := 1; i <= 5; i++ {
		c.Update(now.Add(time.Duration(i) * 33 * time.Millisecond))
	}

	if collab.calls != 5 {
		t.Errorf("per-frame collaborator ran %d times, want 5", collab.calls)
	}
}

func TestCoordinator_TickCadence(t *testing.T) {
	c := NewSubsystemCoordinator(discardLogger(), time.Second, nil)
	collab := &recordingCollaborator{name: "decay"}
	c.RegisterPerTick(collab)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.Update(now)

	// 30 frames over one second: exactly one tick fires
	for i := 1; i <= 30; i++ {
		c.Update(now.Add(time.Duration(i) * 33 * time.Millisecond))
	}

	if collab.calls != 1 {
		t.Errorf("tick collaborator ran %d times in one window, want 1", collab.calls)
	}
	if len(collab.deltas) == 1 && collab.deltas[0] < time.Second {
		t.Errorf("tick delta %v shorter than the tick interval", collab.deltas[0])
	}
}

func TestCoordinator_SlowIntervalCadence(t *testing.T) {
	c := NewSubsystemCoordinator(discardLogger(), time.Second, nil)
	events := &recordingCollaborator{name: "events"}
	weather := &recordingCollaborator{name: "weather"}
	c.RegisterEvery(10*time.Second, events)
	c.RegisterEvery(30*time.Second, weather)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.Update(now)
	for i := 1; i <= 60; i++ {
		c.Update(now.Add(time.Duration(i) * time.Second))
	}

	if events.calls != 6 {
		t.Errorf("10s check ran %d times in 60s, want 6", events.calls)
	}
	if weather.calls != 2 {
		t.Errorf("30s check ran %d times in 60s, want 2", weather.calls)
	}
}

func TestCoordinator_DeterministicOrder(t *testing.T) {
	c := NewSubsystemCoordinator(discardLogger(), time.Second, nil)

	var order []string
	for _, name := range []string{"interaction", "duck", "weather"} {
		n := name
		c.RegisterFrameHook(n, func(time.Time, time.Duration) []core.Message {
			order = append(order, n)
			return nil
		})
	}

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.Update(now)
	c.Update(now.Add(33 * time.Millisecond))

	want := []string{"interaction", "duck", "weather"}
	for i, name := range want {
		if order[i] != name {
			t.Fatalf("call order %v, want %v", order, want)
		}
	}
}

func TestCoordinator_PanicIsolation(t *testing.T) {
	c := NewSubsystemCoordinator(discardLogger(), time.Second, nil)
	faulty := &recordingCollaborator{name: "faulty", panicky: true}
	healthy := &recordingCollaborator{name: "healthy"}
	c.RegisterPerFrame(faulty)
	c.RegisterPerFrame(healthy)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.Update(now)
	c.Update(now.Add(33 * time.Millisecond))

	if healthy.calls != 1 {
		t.Errorf("healthy collaborator skipped after sibling fault, calls = %d", healthy.calls)
	}
}

func TestCoordinator_MessagesReachSink(t *testing.T) {
	var got []core.Message
	c := NewSubsystemCoordinator(discardLogger(), time.Second, func(msgs []core.Message) {
		got = append(got, msgs...)
	})
	c.RegisterPerFrame(&recordingCollaborator{
		name: "dialogue",
		emit: []core.Message{core.Info("quack quack")},
	})

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.Update(now)
	c.Update(now.Add(33 * time.Millisecond))

	if len(got) != 1 || got[0].Text != "quack quack" {
		t.Errorf("sink received %v", got)
	}
}

func TestCoordinator_ResetTimers(t *testing.T) {
	c := NewSubsystemCoordinator(discardLogger(), time.Second, nil)
	events := &recordingCollaborator{name: "events"}
	c.RegisterEvery(10*time.Second, events)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.Update(now)

	// A long gap (load/pause) followed by a reset must not fire the check
	later := now.Add(time.Hour)
	c.ResetTimers(later)
	c.Update(later.Add(time.Second))

	if events.calls != 0 {
		t.Errorf("slow check fired immediately after reset, calls = %d", events.calls)
	}
}
