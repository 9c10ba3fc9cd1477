package world

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/duckling/core"
)

// PlotCount is the fixed number of garden plots
const PlotCount = 4

// Plot is one garden bed
type Plot struct {
	Seed string `json:"seed,omitempty"`

	// RemainingMin is simulated minutes until harvest; zero with a seed
	// present means ready
	RemainingMin float64 `json:"remaining_min,omitempty"`

	Watered bool `json:"watered,omitempty"`
}

// Empty reports whether the plot has nothing planted
func (p *Plot) Empty() bool { return p.Seed == "" }

// Ready reports whether the plot can be harvested
func (p *Plot) Ready() bool { return p.Seed != "" && p.RemainingMin <= 0 }

// seedGrowthMinutes maps seed kinds to growth time
var seedGrowthMinutes = map[string]float64{
	"cress":     30,
	"duckweed":  60,
	"sunflower": 180,
}

// Garden tracks plots on the fixed-tick cadence
type Garden struct {
	plots [PlotCount]Plot
}

// NewGarden creates an empty garden
func NewGarden() *Garden {
	return &Garden{}
}

// Plots returns a copy of the current plots
func (g *Garden) Plots() [PlotCount]Plot { return g.plots }

// Name implements the collaborator contract
func (g *Garden) Name() string { return "garden" }

// Plant sows a seed in the first empty plot
func (g *Garden) Plant(seed string) error {
	minutes, ok := seedGrowthMinutes[seed]
	if !ok {
		return fmt.Errorf("unknown seed %q", seed)
	}
	for i := range g.plots {
		if g.plots[i].Empty() {
			g.plots[i] = Plot{Seed: seed, RemainingMin: minutes}
			return nil
		}
	}
	return fmt.Errorf("no empty plot")
}

// Water halves the remaining growth time of every growing plot
func (g *Garden) Water() {
	for i := range g.plots {
		if !g.plots[i].Empty() && !g.plots[i].Watered {
			g.plots[i].RemainingMin /= 2
			g.plots[i].Watered = true
		}
	}
}

// Harvest clears a ready plot and returns its seed kind
func (g *Garden) Harvest(idx int) (string, bool) {
	if idx < 0 || idx >= PlotCount || !g.plots[idx].Ready() {
		return "", false
	}
	seed := g.plots[idx].Seed
	g.plots[idx] = Plot{}
	return seed, true
}

// Update advances growth timers one tick
func (g *Garden) Update(now time.Time, delta time.Duration) []core.Message {
	var msgs []core.Message
	minutes := delta.Minutes()
	for i := range g.plots {
		p := &g.plots[i]
		if p.Empty() || p.Ready() {
			continue
		}
		p.RemainingMin -= minutes
		if p.RemainingMin <= 0 {
			p.RemainingMin = 0
			msgs = append(msgs, core.Event(fmt.Sprintf("The %s in plot %d is ready to harvest.", p.Seed, i+1)))
		}
	}
	return msgs
}

// ApplyStormDamage rolls structural damage against one growing plot
func (g *Garden) ApplyStormDamage(rng *rand.Rand) []core.Message {
	var growing []int
	for i := range g.plots {
		if !g.plots[i].Empty() {
			growing = append(growing, i)
		}
	}
	if len(growing) == 0 || rng.Intn(3) != 0 {
		return nil
	}

	idx := growing[rng.Intn(len(growing))]
	seed := g.plots[idx].Seed
	g.plots[idx] = Plot{}
	return []core.Message{core.Warning(fmt.Sprintf("The storm flattened the %s in plot %d!", seed, idx+1))}
}

type gardenSnapshot struct {
	Plots []Plot `json:"plots"`
}

// Serialize implements the collaborator contract
func (g *Garden) Serialize() ([]byte, error) {
	return json.Marshal(gardenSnapshot{Plots: g.plots[:]})
}

// Deserialize implements the collaborator contract; extra plots from an
// older schema are dropped, missing ones stay empty
func (g *Garden) Deserialize(data []byte) error {
	var snap gardenSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding garden state: %w", err)
	}
	g.plots = [PlotCount]Plot{}
	for i := 0; i < len(snap.Plots) && i < PlotCount; i++ {
		g.plots[i] = snap.Plots[i]
	}
	return nil
}
