package core

// Needs holds the duck's aggregate need values, each clamped to [0,100].
// Shared and mutated by multiple collaborators (interactions, aging,
// weather, autonomous behavior); the coordinator fixes the call order so
// resulting values are reproducible.
type Needs struct {
	Hunger      float64 `json:"hunger"`
	Happiness   float64 `json:"happiness"`
	Cleanliness float64 `json:"cleanliness"`
	Energy      float64 `json:"energy"`
}

// FullNeeds returns a needs set with every value at the cap
func FullNeeds() Needs {
	return Needs{Hunger: 100, Happiness: 100, Cleanliness: 100, Energy: 100}
}

// Clamp bounds every need to [0,100] in place
func (n *Needs) Clamp() {
	n.Hunger = clamp(n.Hunger)
	n.Happiness = clamp(n.Happiness)
	n.Cleanliness = clamp(n.Cleanliness)
	n.Energy = clamp(n.Energy)
}

// Add applies a delta to each need and clamps the result
func (n *Needs) Add(d Needs) {
	n.Hunger += d.Hunger
	n.Happiness += d.Happiness
	n.Cleanliness += d.Cleanliness
	n.Energy += d.Energy
	n.Clamp()
}

// Average returns the mean of the four needs
func (n Needs) Average() float64 {
	return (n.Hunger + n.Happiness + n.Cleanliness + n.Energy) / 4
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Mood is derived from the needs average
type Mood int

const (
	MoodMiserable Mood = iota
	MoodGrumpy
	MoodContent
	MoodHappy
)

// MoodFor maps a needs set to a mood band
func MoodFor(n Needs) Mood {
	switch avg := n.Average(); {
	case avg >= 75:
		return MoodHappy
	case avg >= 50:
		return MoodContent
	case avg >= 25:
		return MoodGrumpy
	default:
		return MoodMiserable
	}
}

// String returns the display name for a mood
func (m Mood) String() string {
	switch m {
	case MoodHappy:
		return "happy"
	case MoodContent:
		return "content"
	case MoodGrumpy:
		return "grumpy"
	default:
		return "miserable"
	}
}
