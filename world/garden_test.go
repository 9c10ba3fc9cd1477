package world

import (
	"math/rand"
	"testing"
	"time"
)

func TestGarden_PlantGrowHarvest(t *testing.T) {
	g := NewGarden()

	if err := g.Plant("cress"); err != nil {
		t.Fatal(err)
	}

	// cress takes 30 simulated minutes
	var ready bool
	for i := 0; i < 30; i++ {
		for _, m := range g.Update(time.Time{}, time.Minute) {
			_ = m
			ready = true
		}
	}
	if !ready {
		t.Fatal("cress never ripened")
	}

	seed, ok := g.Harvest(0)
	if !ok || seed != "cress" {
		t.Errorf("harvest = %q, %v", seed, ok)
	}
	plots := g.Plots()
	if !plots[0].Empty() {
		t.Error("harvested plot should be empty")
	}
}

func TestGarden_UnknownSeedRejected(t *testing.T) {
	g := NewGarden()
	if err := g.Plant("kudzu"); err == nil {
		t.Error("unknown seed accepted")
	}
}

func TestGarden_FullGardenRejected(t *testing.T) {
	g := NewGarden()
	for i := 0; i < PlotCount; i++ {
		if err := g.Plant("cress"); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.Plant("cress"); err == nil {
		t.Error("fifth plant accepted into a full garden")
	}
}

func TestGarden_WaterHalvesOnce(t *testing.T) {
	g := NewGarden()
	g.Plant("duckweed") // 60 min

	g.Water()
	g.Water() // second watering must not stack

	if got := g.Plots()[0].RemainingMin; got != 30 {
		t.Errorf("remaining = %v, want 30", got)
	}
}

func TestGarden_HarvestNotReady(t *testing.T) {
	g := NewGarden()
	g.Plant("sunflower")
	if _, ok := g.Harvest(0); ok {
		t.Error("unripe plot harvested")
	}
	if _, ok := g.Harvest(9); ok {
		t.Error("out-of-range plot harvested")
	}
}

func TestGarden_StormDamage(t *testing.T) {
	g := NewGarden()
	g.Plant("cress")

	// rng.Intn(3)==0 gates damage; a fixed seed that rolls zero
	var hit bool
	for seed := int64(0); seed < 20 && !hit; seed++ {
		g2 := NewGarden()
		g2.Plant("cress")
		if msgs := g2.ApplyStormDamage(rand.New(rand.NewSource(seed))); len(msgs) > 0 {
			hit = true
			plots := g2.Plots()
			if !plots[0].Empty() {
				t.Error("damaged plot not cleared")
			}
		}
	}
	if !hit {
		t.Fatal("no seed in 20 produced storm damage")
	}

	// Empty garden never takes damage
	empty := NewGarden()
	if msgs := empty.ApplyStormDamage(rand.New(rand.NewSource(0))); len(msgs) != 0 {
		t.Error("empty garden damaged")
	}
}

func TestGarden_SerializeRoundTrip(t *testing.T) {
	g := NewGarden()
	g.Plant("cress")
	g.Water()

	data, err := g.Serialize()
	if err != nil {
		t.Fatal(err)
	}

	restored := NewGarden()
	if err := restored.Deserialize(data); err != nil {
		t.Fatal(err)
	}

	got := restored.Plots()[0]
	if got.Seed != "cress" || got.RemainingMin != 15 || !got.Watered {
		t.Errorf("restored plot = %+v", got)
	}
}
