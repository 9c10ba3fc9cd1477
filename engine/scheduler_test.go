package engine

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func schedulerFixture(mode SessionMode) (*TickScheduler, *SessionState, chan tcell.Event, *[]string) {
	session := NewSessionState(time.Now())
	session.Mode = mode
	events := make(chan tcell.Event, 16)
	var calls []string

	sched := NewTickScheduler(SchedulerConfig{
		Session:     session,
		Clock:       NewMonotonicTimeProvider(),
		Events:      events,
		PollTimeout: time.Millisecond,
		FrameRate:   200,
		SpinReserve: 100 * time.Microsecond,
		HandleEvent: func(ev tcell.Event) { calls = append(calls, "input") },
		Update:      func(now time.Time) { calls = append(calls, "update") },
		Render:      func(now time.Time) { calls = append(calls, "render") },
	})
	return sched, session, events, &calls
}

func TestScheduler_ExitsWhenRunningCleared(t *testing.T) {
	sched, session, _, _ := schedulerFixture(ModePlaying)

	frames := 0
	sched.update = func(now time.Time) {
		frames++
		if frames >= 3 {
			session.Stop()
		}
	}

	done := make(chan struct{})
	go func() {
		sched.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not exit after running flag cleared")
	}

	if frames < 3 {
		t.Errorf("expected at least 3 update frames, got %d", frames)
	}
}

func TestScheduler_SkipsUpdateOutsidePlayMode(t *testing.T) {
	sched, session, _, calls := schedulerFixture(ModeTitle)

	renders := 0
	sched.render = func(now time.Time) {
		renders++
		if renders >= 2 {
			session.Stop()
		}
	}

	sched.Run()

	for _, c := range *calls {
		if c == "update" {
			t.Fatal("world update ran outside active-play mode")
		}
	}
	if renders < 2 {
		t.Errorf("render ran %d times, want >= 2", renders)
	}
}

func TestScheduler_InputBeforeUpdateBeforeRender(t *testing.T) {
	sched, session, events, calls := schedulerFixture(ModePlaying)
	events <- tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone)

	sched.render = func(now time.Time) {
		*calls = append(*calls, "render")
		session.Stop()
	}

	sched.Run()

	got := *calls
	if len(got) < 3 || got[0] != "input" || got[1] != "update" || got[2] != "render" {
		t.Errorf("frame ordering = %v, want input, update, render", got)
	}
}

func TestScheduler_StopsOnClosedEventChannel(t *testing.T) {
	sched, _, events, _ := schedulerFixture(ModePlaying)
	close(events)

	done := make(chan struct{})
	go func() {
		sched.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop when event source closed")
	}
}

func TestScheduler_PacesFrames(t *testing.T) {
	sched, session, _, _ := schedulerFixture(ModePlaying)

	frames := 0
	sched.update = func(now time.Time) {
		frames++
		if frames >= 10 {
			session.Stop()
		}
	}

	start := time.Now()
	sched.Run()
	elapsed := time.Since(start)

	// 10 frames at 200fps is 50ms; generous lower bound guards against a
	// free-spinning loop without flaking on slow machines
	if elapsed < 30*time.Millisecond {
		t.Errorf("10 frames completed in %v, pacing appears disabled", elapsed)
	}
}
