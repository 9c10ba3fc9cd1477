package engine

import "time"

// ActionKind identifies a cooldown-gated player action
type ActionKind int

const (
	ActionFeed ActionKind = iota
	ActionPlay
	ActionClean
	ActionPet
	ActionSleep
)

// String returns the display name for an action kind
func (k ActionKind) String() string {
	switch k {
	case ActionFeed:
		return "feed"
	case ActionPlay:
		return "play"
	case ActionClean:
		return "clean"
	case ActionPet:
		return "pet"
	case ActionSleep:
		return "sleep"
	default:
		return "unknown"
	}
}

// CooldownTracker records per-action-kind last-used timestamps.
// State is session-local and intentionally not part of the persisted
// snapshot; reloading resets cooldowns.
type CooldownTracker struct {
	durations map[ActionKind]time.Duration
	lastUsed  map[ActionKind]time.Time
}

// NewCooldownTracker creates a tracker with the given per-kind durations
func NewCooldownTracker(durations map[ActionKind]time.Duration) *CooldownTracker {
	d := make(map[ActionKind]time.Duration, len(durations))
	for k, v := range durations {
		d[k] = v
	}
	return &CooldownTracker{
		durations: d,
		lastUsed:  make(map[ActionKind]time.Time),
	}
}

// TryUse checks whether an action of the given kind is permitted at now.
// The use is recorded only when permitted. The caller must pass the same
// sampled now for all checks within one frame.
func (c *CooldownTracker) TryUse(kind ActionKind, now time.Time) (bool, time.Duration) {
	cooldown, ok := c.durations[kind]
	if !ok {
		// Unknown kinds are never gated
		c.lastUsed[kind] = now
		return true, 0
	}

	last, used := c.lastUsed[kind]
	if used {
		elapsed := now.Sub(last)
		if elapsed < cooldown {
			return false, cooldown - elapsed
		}
	}

	c.lastUsed[kind] = now
	return true, 0
}

// Remaining reports the time left before the kind is usable again,
// without recording anything
func (c *CooldownTracker) Remaining(kind ActionKind, now time.Time) time.Duration {
	cooldown, ok := c.durations[kind]
	if !ok {
		return 0
	}
	last, used := c.lastUsed[kind]
	if !used {
		return 0
	}
	remaining := cooldown - now.Sub(last)
	if remaining < 0 {
		return 0
	}
	return remaining
}
