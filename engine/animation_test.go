package engine

import (
	"testing"
	"time"
)

func testAnimation(start time.Time) *TimedAnimation {
	return &TimedAnimation{
		ID:            "test",
		Start:         start,
		Duration:      1 * time.Second,
		FrameInterval: 250 * time.Millisecond,
		Frames:        []string{"a", "b", "c", "d"},
	}
}

func TestTimedAnimation_FrameIndex(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	anim := testAnimation(start)

	cases := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 0},
		{100 * time.Millisecond, 0},
		{250 * time.Millisecond, 1},
		{600 * time.Millisecond, 2},
		{900 * time.Millisecond, 3},
		// Clamped to last frame past the end
		{5 * time.Second, 3},
	}

	for _, tc := range cases {
		if got := anim.FrameIndex(start.Add(tc.elapsed)); got != tc.want {
			t.Errorf("elapsed %v: frame index = %d, want %d", tc.elapsed, got, tc.want)
		}
	}
}

func TestAnimationRegistry_PruneAfterDuration(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg := NewAnimationRegistry()
	reg.Add(testAnimation(start))

	// Present while elapsed <= duration
	reg.Advance(start.Add(1 * time.Second))
	if got := len(reg.Active(start.Add(1 * time.Second))); got != 1 {
		t.Fatalf("animation at exactly duration should survive, active = %d", got)
	}

	// Absent once elapsed > duration
	reg.Advance(start.Add(1*time.Second + time.Millisecond))
	if reg.Len() != 0 {
		t.Errorf("expected pruned registry, len = %d", reg.Len())
	}
}

func TestAnimationRegistry_CompletionFiresOnce(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg := NewAnimationRegistry()

	fired := 0
	anim := testAnimation(start)
	anim.OnComplete = func() { fired++ }
	reg.Add(anim)

	after := start.Add(2 * time.Second)
	reg.Advance(after)
	reg.Advance(after)
	reg.Advance(after.Add(time.Second))

	if fired != 1 {
		t.Errorf("completion callback fired %d times, want 1", fired)
	}
}

func TestAnimationRegistry_QueryIsIdempotent(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg := NewAnimationRegistry()
	reg.Add(testAnimation(start))

	// Repeated polling within the same frame must not mutate anything
	at := start.Add(500 * time.Millisecond)
	for i := 0; i < 5; i++ {
		if got := len(reg.Active(at)); got != 1 {
			t.Fatalf("poll %d: active = %d, want 1", i, got)
		}
	}
	if reg.Len() != 1 {
		t.Errorf("queries must not prune, len = %d", reg.Len())
	}
}

func TestAnimationRegistry_IndependentTimings(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg := NewAnimationRegistry()

	short := testAnimation(start)
	short.ID = "short"
	short.Duration = 200 * time.Millisecond

	long := testAnimation(start)
	long.ID = "long"
	long.Duration = 5 * time.Second

	reg.Add(short)
	reg.Add(long)

	reg.Advance(start.Add(1 * time.Second))
	active := reg.Active(start.Add(1 * time.Second))
	if len(active) != 1 || active[0].ID != "long" {
		t.Errorf("expected only the long animation to survive, got %d", len(active))
	}
}
