// Package duck implements the pet itself: needs, mood, growth, movement,
// and the compressed offline catch-up that reconstructs time spent away.
package duck

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/duckling/constants"
	"github.com/lixenwraith/duckling/core"
)

// Stage is the duck's growth stage, derived from simulated age
type Stage int

const (
	StageEgg Stage = iota
	StageDuckling
	StageJuvenile
	StageAdult
)

// String returns the display name for a stage
func (s Stage) String() string {
	switch s {
	case StageEgg:
		return "egg"
	case StageDuckling:
		return "duckling"
	case StageJuvenile:
		return "juvenile"
	default:
		return "adult"
	}
}

// Duck is the pet. Position advances per frame; needs decay per tick.
type Duck struct {
	petName    string
	needs      core.Needs
	ageMinutes float64
	asleep     bool

	pos  core.Point
	home core.Point

	// Sub-cell movement accumulator
	fx, fy float64

	target   *core.Point
	onArrive func()
}

// New creates a freshly hatched-to-be duck resting at home
func New(name string, home core.Point) *Duck {
	return &Duck{
		petName: name,
		needs:   core.FullNeeds(),
		pos:     home,
		home:    home,
		fx:      float64(home.X),
		fy:      float64(home.Y),
	}
}

// PetName returns the duck's given name
func (d *Duck) PetName() string { return d.petName }

// Rename sets the duck's given name
func (d *Duck) Rename(name string) { d.petName = name }

// Needs returns a copy of the current need values
func (d *Duck) Needs() core.Needs { return d.needs }

// Mood returns the mood band for the current needs
func (d *Duck) Mood() core.Mood { return core.MoodFor(d.needs) }

// Stage returns the growth stage for the current age
func (d *Duck) Stage() Stage {
	switch {
	case d.ageMinutes < constants.HatchAgeMin:
		return StageEgg
	case d.ageMinutes < constants.JuvenileAgeMin:
		return StageDuckling
	case d.ageMinutes < constants.AdultAgeMin:
		return StageJuvenile
	default:
		return StageAdult
	}
}

// AgeMinutes returns the simulated age in minutes
func (d *Duck) AgeMinutes() float64 { return d.ageMinutes }

// Position returns the duck's current cell
func (d *Duck) Position() core.Point { return d.pos }

// Home returns the duck's resting spot
func (d *Duck) Home() core.Point { return d.home }

// SetHome relocates the resting spot (screen resize)
func (d *Duck) SetHome(p core.Point) { d.home = p }

// Asleep reports whether the duck is sleeping
func (d *Duck) Asleep() bool { return d.asleep }

// Sleep puts the duck to sleep; it wakes on full energy
func (d *Duck) Sleep() { d.asleep = true }

// Wake wakes the duck
func (d *Duck) Wake() { d.asleep = false }

// ApplyEffects applies a clamped need delta (interaction effects)
func (d *Duck) ApplyEffects(delta core.Needs) {
	d.needs.Add(delta)
}

// MoveTo starts walking toward target, firing onArrive on arrival.
// A new move replaces any in-progress one.
func (d *Duck) MoveTo(target core.Point, onArrive func()) {
	d.target = &target
	d.onArrive = onArrive
}

// CancelMove stops walking without firing the arrival callback
func (d *Duck) CancelMove() {
	d.target = nil
	d.onArrive = nil
}

// Moving reports whether a walk is in progress
func (d *Duck) Moving() bool { return d.target != nil }

// Name implements the collaborator contract
func (d *Duck) Name() string { return "duck" }

// Update advances movement on the per-frame cadence
func (d *Duck) Update(now time.Time, delta time.Duration) []core.Message {
	if d.target == nil {
		return nil
	}

	step := constants.DuckWalkSpeed * delta.Seconds()
	dx := float64(d.target.X) - d.fx
	dy := float64(d.target.Y) - d.fy
	dist := math.Hypot(dx, dy)

	if dist <= step {
		d.fx = float64(d.target.X)
		d.fy = float64(d.target.Y)
		d.pos = *d.target
		d.target = nil
		if cb := d.onArrive; cb != nil {
			d.onArrive = nil
			cb()
		}
		return nil
	}

	d.fx += dx / dist * step
	d.fy += dy / dist * step
	d.pos = core.Point{X: int(math.Round(d.fx)), Y: int(math.Round(d.fy))}
	return nil
}

// TickDecay advances needs and age on the fixed-tick cadence
func (d *Duck) TickDecay(now time.Time, delta time.Duration) []core.Message {
	before := d.Stage()
	msgs := d.applyMinutes(delta.Minutes())
	if after := d.Stage(); after != before {
		msgs = append(msgs, core.Event(fmt.Sprintf("%s grew into a %s!", d.petName, after)))
	}
	return msgs
}

// applyMinutes is the decay function shared by live ticks and offline
// catch-up: one linear application over the given simulated minutes
func (d *Duck) applyMinutes(minutes float64) []core.Message {
	var msgs []core.Message

	d.needs.Hunger -= constants.HungerDecayPerMin * minutes
	d.needs.Happiness -= constants.HappinessDecayPerMin * minutes
	d.needs.Cleanliness -= constants.CleanlinessDecayPerMin * minutes

	if d.asleep {
		d.needs.Energy += constants.SleepEnergyPerMin * minutes
		if d.needs.Energy >= 100 {
			d.asleep = false
			msgs = append(msgs, core.Info(fmt.Sprintf("%s wakes up refreshed.", d.petName)))
		}
	} else {
		d.needs.Energy -= constants.EnergyDecayPerMin * minutes
	}

	d.needs.Clamp()
	d.ageMinutes += minutes
	return msgs
}

// OfflineReport is the deterministic "what changed while away" delta
type OfflineReport struct {
	Away       time.Duration
	SimMinutes float64
	Before     core.Needs
	After      core.Needs
	Messages   []core.Message
}

// CatchUp replays elapsed real time in compressed form: elapsed wall
// minutes scaled by the decay multiplier, applied through the same decay
// function as live ticks. Equivalent to direct per-tick decay over the
// scaled minutes.
func (d *Duck) CatchUp(elapsed time.Duration, multiplier float64) OfflineReport {
	if elapsed < 0 {
		elapsed = 0
	}
	minutes := elapsed.Minutes() * multiplier

	report := OfflineReport{
		Away:       elapsed,
		SimMinutes: minutes,
		Before:     d.needs,
	}
	report.Messages = d.applyMinutes(minutes)
	report.After = d.needs
	return report
}

// duckState is the versioned snapshot schema for the duck collaborator
type duckState struct {
	Name       string     `json:"name"`
	Needs      core.Needs `json:"needs"`
	AgeMinutes float64    `json:"age_minutes"`
	Asleep     bool       `json:"asleep"`
}

// Serialize implements the collaborator contract
func (d *Duck) Serialize() ([]byte, error) {
	return json.Marshal(duckState{
		Name:       d.petName,
		Needs:      d.needs,
		AgeMinutes: d.ageMinutes,
		Asleep:     d.asleep,
	})
}

// Deserialize implements the collaborator contract; decoding happens at
// this one boundary with defaults for missing fields
func (d *Duck) Deserialize(data []byte) error {
	state := duckState{Needs: core.FullNeeds()}
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("decoding duck state: %w", err)
	}
	if state.Name != "" {
		d.petName = state.Name
	}
	d.needs = state.Needs
	d.needs.Clamp()
	d.ageMinutes = state.AgeMinutes
	d.asleep = state.Asleep
	return nil
}
