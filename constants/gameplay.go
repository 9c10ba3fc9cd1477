package constants

import "time"

// Action cooldowns. A use is recorded only on success.
const (
	FeedCooldown  = 30 * time.Second
	PlayCooldown  = 45 * time.Second
	CleanCooldown = 60 * time.Second
	PetCooldown   = 10 * time.Second
	SleepCooldown = 120 * time.Second
)

// Need decay rates in points per simulated minute
const (
	HungerDecayPerMin      = 0.8
	HappinessDecayPerMin   = 0.5
	CleanlinessDecayPerMin = 0.3
	EnergyDecayPerMin      = 0.4

	// SleepEnergyPerMin is energy regained per minute while asleep
	SleepEnergyPerMin = 2.0
)

// Growth stage thresholds in simulated age minutes
const (
	HatchAgeMin    = 30.0
	JuvenileAgeMin = 24 * 60.0
	AdultAgeMin    = 72 * 60.0
)

// Duck movement speed in cells per second while walking to a target
const DuckWalkSpeed = 8.0

// Interaction animation timing
const (
	InteractionFrameInterval = 120 * time.Millisecond
	InteractionDuration      = 1200 * time.Millisecond
)

// Starting wallet balance
const StartingCrumbs = 20
