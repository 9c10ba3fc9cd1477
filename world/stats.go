package world

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/duckling/core"
)

// Memory is one remembered moment shown on the memories page
type Memory struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// memoryCap bounds the memories ring
const memoryCap = 30

// Stats tracks lifetime counters and the memories ring
type Stats struct {
	counters map[string]int
	memories []Memory
}

// NewStats creates empty statistics
func NewStats() *Stats {
	return &Stats{counters: make(map[string]int)}
}

// Increment bumps a named counter
func (s *Stats) Increment(key string) {
	s.counters[key]++
}

// Count returns a named counter's value
func (s *Stats) Count(key string) int { return s.counters[key] }

// Counters returns the counter map (read-only by convention)
func (s *Stats) Counters() map[string]int { return s.counters }

// Remember appends a memory, evicting the oldest past the cap
func (s *Stats) Remember(text string, at time.Time) {
	s.memories = append(s.memories, Memory{
		ID:   uuid.NewString(),
		Text: text,
		At:   at,
	})
	if len(s.memories) > memoryCap {
		s.memories = s.memories[len(s.memories)-memoryCap:]
	}
}

// Memories returns the remembered moments, oldest first
func (s *Stats) Memories() []Memory { return s.memories }

// Name implements the collaborator contract
func (s *Stats) Name() string { return "stats" }

// Update is a no-op; stats change through explicit recording
func (s *Stats) Update(now time.Time, delta time.Duration) []core.Message {
	return nil
}

type statsSnapshot struct {
	Counters map[string]int `json:"counters"`
	Memories []Memory       `json:"memories"`
}

// Serialize implements the collaborator contract
func (s *Stats) Serialize() ([]byte, error) {
	return json.Marshal(statsSnapshot{Counters: s.counters, Memories: s.memories})
}

// Deserialize implements the collaborator contract
func (s *Stats) Deserialize(data []byte) error {
	var snap statsSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding stats state: %w", err)
	}
	if snap.Counters != nil {
		s.counters = snap.Counters
	} else {
		s.counters = make(map[string]int)
	}
	s.memories = snap.Memories
	return nil
}
