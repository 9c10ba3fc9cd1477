package constants

import "time"

// Frame and tick timing for the cooperative loop
const (
	// DefaultFPS is the render frame target; overridable via --fps
	DefaultFPS = 30

	// GameTickInterval is the fixed world-update tick (need decay, growth)
	GameTickInterval = 1 * time.Second

	// InputPollTimeout bounds the per-frame input poll
	InputPollTimeout = 1 * time.Millisecond

	// SpinReserve is the tail of the frame budget handled by spin-wait
	// instead of coarse sleep, to stay accurate on coarse-timer platforms
	SpinReserve = 2 * time.Millisecond
)

// Slow-interval check periods driven by the coordinator
const (
	RandomEventInterval = 10 * time.Second
	WeatherInterval     = 30 * time.Second
	AutosaveInterval    = 60 * time.Second
	StormDamageInterval = 60 * time.Second
)

// SnapshotVersion is the persisted envelope schema version
const SnapshotVersion = 1

// OfflineDecayMultiplier compresses elapsed real time into simulated
// decay minutes during offline catch-up
const OfflineDecayMultiplier = 0.25
