package world

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/duckling/core"
)

// EffectSink receives the need and wallet effects of a random event;
// implemented by the game context over the duck, shop, and stats
type EffectSink interface {
	ApplyNeedEffects(delta core.Needs)
	AddCrumbs(n int)

	// NoteEvent records that a random event fired, feeding the lifetime
	// event counter
	NoteEvent()
}

// eventDef is one weighted entry in the random event table
type eventDef struct {
	id     string
	text   string
	weight int
	needs  core.Needs
	crumbs int
}

var eventTable = []eventDef{
	{id: "visitor", text: "A friendly goose paddles by and honks hello.", weight: 3, needs: core.Needs{Happiness: 5}},
	{id: "crumbs", text: "A picnicker drops a handful of crumbs!", weight: 3, crumbs: 5},
	{id: "dragonfly", text: "A dragonfly lands on the duck's bill.", weight: 2, needs: core.Needs{Happiness: 3}},
	{id: "mud", text: "The duck waddles through a mud puddle.", weight: 2, needs: core.Needs{Cleanliness: -8}},
	{id: "feather", text: "A shiny feather drifts down. Lucky!", weight: 1, crumbs: 10, needs: core.Needs{Happiness: 8}},
}

// EventInstance is one occurrence, tagged for the memory log
type EventInstance struct {
	ID   string    `json:"id"`
	Kind string    `json:"kind"`
	At   time.Time `json:"at"`
}

// Events rolls random pond events on the 10s check cadence
type Events struct {
	rng  *rand.Rand
	sink EffectSink

	// chance per check window, out of 100
	chance int

	recent []EventInstance
}

// NewEvents creates the event roller
func NewEvents(rng *rand.Rand, sink EffectSink) *Events {
	return &Events{rng: rng, sink: sink, chance: 20}
}

// Recent returns the occurrences retained for the memories page
func (e *Events) Recent() []EventInstance { return e.recent }

// Name implements the collaborator contract
func (e *Events) Name() string { return "events" }

// Update rolls at most one event per check window
func (e *Events) Update(now time.Time, delta time.Duration) []core.Message {
	if e.rng.Intn(100) >= e.chance {
		return nil
	}

	total := 0
	for _, def := range eventTable {
		total += def.weight
	}
	roll := e.rng.Intn(total)

	var picked eventDef
	for _, def := range eventTable {
		if roll < def.weight {
			picked = def
			break
		}
		roll -= def.weight
	}

	if e.sink != nil {
		if picked.needs != (core.Needs{}) {
			e.sink.ApplyNeedEffects(picked.needs)
		}
		if picked.crumbs != 0 {
			e.sink.AddCrumbs(picked.crumbs)
		}
		e.sink.NoteEvent()
	}

	e.recent = append(e.recent, EventInstance{
		ID:   uuid.NewString(),
		Kind: picked.id,
		At:   now,
	})
	const keep = 50
	if len(e.recent) > keep {
		e.recent = e.recent[len(e.recent)-keep:]
	}

	return []core.Message{core.Event(picked.text)}
}

type eventsSnapshot struct {
	Recent []EventInstance `json:"recent"`
}

// Serialize implements the collaborator contract
func (e *Events) Serialize() ([]byte, error) {
	return json.Marshal(eventsSnapshot{Recent: e.recent})
}

// Deserialize implements the collaborator contract
func (e *Events) Deserialize(data []byte) error {
	var snap eventsSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding events state: %w", err)
	}
	e.recent = snap.Recent
	return nil
}
