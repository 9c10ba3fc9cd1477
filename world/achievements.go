package world

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lixenwraith/duckling/core"
)

// achievementDef is one threshold achievement over a stats counter
type achievementDef struct {
	id        string
	title     string
	stat      string
	threshold int
}

var achievementTable = []achievementDef{
	{id: "first_meal", title: "First Meal", stat: "feed", threshold: 1},
	{id: "good_provider", title: "Good Provider", stat: "feed", threshold: 25},
	{id: "playmate", title: "Playmate", stat: "play", threshold: 10},
	{id: "squeaky_clean", title: "Squeaky Clean", stat: "clean", threshold: 10},
	{id: "best_friend", title: "Best Friend", stat: "pet", threshold: 50},
	{id: "green_bill", title: "Green Bill", stat: "harvest", threshold: 5},
	{id: "event_magnet", title: "Event Magnet", stat: "event", threshold: 20},
}

// Achievements checks threshold achievements on the fixed-tick cadence
type Achievements struct {
	stats    *Stats
	unlocked map[string]bool
}

// NewAchievements creates the checker over the given stats
func NewAchievements(stats *Stats) *Achievements {
	return &Achievements{
		stats:    stats,
		unlocked: make(map[string]bool),
	}
}

// Unlocked reports whether an achievement id has been earned
func (a *Achievements) Unlocked(id string) bool { return a.unlocked[id] }

// Entries returns title and unlocked state for every achievement, in
// table order
func (a *Achievements) Entries() []struct {
	Title    string
	Unlocked bool
} {
	out := make([]struct {
		Title    string
		Unlocked bool
	}, 0, len(achievementTable))
	for _, def := range achievementTable {
		out = append(out, struct {
			Title    string
			Unlocked bool
		}{def.title, a.unlocked[def.id]})
	}
	return out
}

// Name implements the collaborator contract
func (a *Achievements) Name() string { return "achievements" }

// Update unlocks any achievement whose threshold is now met
func (a *Achievements) Update(now time.Time, delta time.Duration) []core.Message {
	var msgs []core.Message
	for _, def := range achievementTable {
		if a.unlocked[def.id] {
			continue
		}
		if a.stats.Count(def.stat) >= def.threshold {
			a.unlocked[def.id] = true
			msgs = append(msgs, core.Event(fmt.Sprintf("Achievement unlocked: %s!", def.title)))
		}
	}
	return msgs
}

type achievementsSnapshot struct {
	Unlocked []string `json:"unlocked"`
}

// Serialize implements the collaborator contract
func (a *Achievements) Serialize() ([]byte, error) {
	ids := make([]string, 0, len(a.unlocked))
	for _, def := range achievementTable {
		if a.unlocked[def.id] {
			ids = append(ids, def.id)
		}
	}
	return json.Marshal(achievementsSnapshot{Unlocked: ids})
}

// Deserialize implements the collaborator contract; ids no longer in
// the table are dropped
func (a *Achievements) Deserialize(data []byte) error {
	var snap achievementsSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding achievements state: %w", err)
	}
	a.unlocked = make(map[string]bool)
	for _, id := range snap.Unlocked {
		for _, def := range achievementTable {
			if def.id == id {
				a.unlocked[id] = true
			}
		}
	}
	return nil
}
