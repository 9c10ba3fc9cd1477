package engine

import "time"

// TimedAnimation is an independently timed ephemeral animation. It is
// never restarted in place; a replacement is a new instance.
type TimedAnimation struct {
	ID            string
	Start         time.Time
	Duration      time.Duration
	FrameInterval time.Duration
	Frames        []string

	// OnComplete fires exactly once when the animation is pruned
	OnComplete func()
}

// FrameIndex computes the current frame as floor(elapsed/interval),
// clamped to the last available frame. Side-effect free.
func (a *TimedAnimation) FrameIndex(now time.Time) int {
	if len(a.Frames) == 0 || a.FrameInterval <= 0 {
		return 0
	}
	elapsed := now.Sub(a.Start)
	if elapsed < 0 {
		return 0
	}
	idx := int(elapsed / a.FrameInterval)
	if idx >= len(a.Frames) {
		idx = len(a.Frames) - 1
	}
	return idx
}

// Frame returns the current frame content
func (a *TimedAnimation) Frame(now time.Time) string {
	if len(a.Frames) == 0 {
		return ""
	}
	return a.Frames[a.FrameIndex(now)]
}

// Expired reports whether elapsed time exceeds the total duration
func (a *TimedAnimation) Expired(now time.Time) bool {
	return now.Sub(a.Start) > a.Duration
}

// AnimationRegistry holds zero or more independent timed animations.
// Queries are side-effect free; only Advance mutates, so repeated polling
// within the same frame is idempotent.
type AnimationRegistry struct {
	animations []*TimedAnimation
}

// NewAnimationRegistry creates an empty registry
func NewAnimationRegistry() *AnimationRegistry {
	return &AnimationRegistry{}
}

// Add registers an animation
func (r *AnimationRegistry) Add(a *TimedAnimation) {
	r.animations = append(r.animations, a)
}

// Active returns the animations still running at now
func (r *AnimationRegistry) Active(now time.Time) []*TimedAnimation {
	active := make([]*TimedAnimation, 0, len(r.animations))
	for _, a := range r.animations {
		if !a.Expired(now) {
			active = append(active, a)
		}
	}
	return active
}

// Len returns the number of registered animations
func (r *AnimationRegistry) Len() int {
	return len(r.animations)
}

// Advance prunes expired animations, firing completion callbacks once
// per animation. Called once per frame by the coordinator.
func (r *AnimationRegistry) Advance(now time.Time) {
	kept := r.animations[:0]
	for _, a := range r.animations {
		if a.Expired(now) {
			if a.OnComplete != nil {
				a.OnComplete()
			}
			continue
		}
		kept = append(kept, a)
	}
	// Release pruned tails
	for i := len(kept); i < len(r.animations); i++ {
		r.animations[i] = nil
	}
	r.animations = kept
}
