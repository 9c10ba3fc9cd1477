// Package world holds the content collaborators the core drives through
// the update/serialize contract: weather, garden, shop, events,
// dialogue, stats, achievements, and the crumb-catch minigame.
package world

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/duckling/core"
)

// WeatherState is the pond's current weather
type WeatherState int

const (
	WeatherClear WeatherState = iota
	WeatherCloudy
	WeatherRain
	WeatherStorm
)

// String returns the display name for a weather state
func (w WeatherState) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherCloudy:
		return "cloudy"
	case WeatherRain:
		return "rain"
	default:
		return "storm"
	}
}

// weatherTransitions maps each state to its possible successors with
// weights; the table always includes staying put
var weatherTransitions = map[WeatherState][]struct {
	next   WeatherState
	weight int
}{
	WeatherClear:  {{WeatherClear, 6}, {WeatherCloudy, 3}, {WeatherRain, 1}},
	WeatherCloudy: {{WeatherCloudy, 4}, {WeatherClear, 3}, {WeatherRain, 3}},
	WeatherRain:   {{WeatherRain, 4}, {WeatherCloudy, 3}, {WeatherStorm, 2}, {WeatherClear, 1}},
	WeatherStorm:  {{WeatherStorm, 3}, {WeatherRain, 5}, {WeatherCloudy, 2}},
}

// Weather runs the pond atmosphere on the slow 30s cadence
type Weather struct {
	state WeatherState
	rng   *rand.Rand

	// onCue receives an ambience cue name when the weather changes
	onCue func(cue string)
}

// NewWeather creates clear weather with the given random source
func NewWeather(rng *rand.Rand, onCue func(cue string)) *Weather {
	if onCue == nil {
		onCue = func(string) {}
	}
	return &Weather{rng: rng, onCue: onCue}
}

// State returns the current weather
func (w *Weather) State() WeatherState { return w.state }

// Storming reports whether structural damage rolls apply
func (w *Weather) Storming() bool { return w.state == WeatherStorm }

// Name implements the collaborator contract
func (w *Weather) Name() string { return "weather" }

// Update rolls one weather transition
func (w *Weather) Update(now time.Time, delta time.Duration) []core.Message {
	choices := weatherTransitions[w.state]
	total := 0
	for _, c := range choices {
		total += c.weight
	}

	roll := w.rng.Intn(total)
	next := w.state
	for _, c := range choices {
		if roll < c.weight {
			next = c.next
			break
		}
		roll -= c.weight
	}

	if next == w.state {
		return nil
	}

	w.state = next
	w.onCue("weather_" + next.String())
	return []core.Message{core.Event(fmt.Sprintf("The weather turns %s.", next))}
}

type weatherSnapshot struct {
	State WeatherState `json:"state"`
}

// Serialize implements the collaborator contract
func (w *Weather) Serialize() ([]byte, error) {
	return json.Marshal(weatherSnapshot{State: w.state})
}

// Deserialize implements the collaborator contract
func (w *Weather) Deserialize(data []byte) error {
	var snap weatherSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding weather state: %w", err)
	}
	if snap.State < WeatherClear || snap.State > WeatherStorm {
		snap.State = WeatherClear
	}
	w.state = snap.State
	return nil
}
