package world

import (
	"math/rand"
	"testing"
	"time"
)

func TestWeather_TransitionsStayInTable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := NewWeather(rng, nil)

	for i := 0; i < 500; i++ {
		w.Update(time.Time{}, 30*time.Second)
		if w.State() < WeatherClear || w.State() > WeatherStorm {
			t.Fatalf("weather left the table: %v", w.State())
		}
	}
}

func TestWeather_ChangeEmitsMessageAndCue(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var cues []string
	w := NewWeather(rng, func(cue string) { cues = append(cues, cue) })

	changes := 0
	for i := 0; i < 200; i++ {
		if msgs := w.Update(time.Time{}, 30*time.Second); len(msgs) > 0 {
			changes++
		}
	}

	if changes == 0 {
		t.Fatal("200 rolls produced no weather change")
	}
	if len(cues) != changes {
		t.Errorf("cues %d != changes %d", len(cues), changes)
	}
}

func TestWeather_SerializeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := NewWeather(rng, nil)
	w.state = WeatherStorm

	data, err := w.Serialize()
	if err != nil {
		t.Fatal(err)
	}

	restored := NewWeather(rng, nil)
	if err := restored.Deserialize(data); err != nil {
		t.Fatal(err)
	}
	if restored.State() != WeatherStorm {
		t.Errorf("state = %v, want storm", restored.State())
	}
	if !restored.Storming() {
		t.Error("restored storm should report storming")
	}
}

func TestWeather_DeserializeRejectsOutOfRange(t *testing.T) {
	w := NewWeather(rand.New(rand.NewSource(1)), nil)
	if err := w.Deserialize([]byte(`{"state": 99}`)); err != nil {
		t.Fatal(err)
	}
	if w.State() != WeatherClear {
		t.Errorf("out-of-range state should default to clear, got %v", w.State())
	}
}
