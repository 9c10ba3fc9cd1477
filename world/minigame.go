package world

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duckling/core"
)

// minigame board dimensions
const (
	boardWidth  = 30
	boardHeight = 10
	gameLength  = 30 * time.Second
)

// fallingCrumb is one crumb in flight
type fallingCrumb struct {
	x     int
	y     float64
	speed float64 // cells per second
}

// Minigame is the crumb-catch game: a modal that owns input while open
// and updates on the per-frame cadence. Caught crumbs are credited to
// the wallet when the round ends.
type Minigame struct {
	rng  *rand.Rand
	sink EffectSink

	active   bool
	basketX  int
	crumbs   []fallingCrumb
	score    int
	started  time.Time
	spawnAcc float64

	highScore int
}

// NewMinigame creates the crumb-catch game
func NewMinigame(rng *rand.Rand, sink EffectSink) *Minigame {
	return &Minigame{rng: rng, sink: sink}
}

// Open starts a round
func (m *Minigame) Open(now time.Time) {
	m.active = true
	m.basketX = boardWidth / 2
	m.crumbs = nil
	m.score = 0
	m.started = now
	m.spawnAcc = 0
}

// Active implements the modal contract
func (m *Minigame) Active() bool { return m.active }

// Score returns the current round score
func (m *Minigame) Score() int { return m.score }

// HighScore returns the best round score
func (m *Minigame) HighScore() int { return m.highScore }

// HandleKey implements the modal contract: arrows steer, escape ends
func (m *Minigame) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		if m.basketX > 0 {
			m.basketX--
		}
	case tcell.KeyRight:
		if m.basketX < boardWidth-1 {
			m.basketX++
		}
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		m.finish()
	}
}

// Name implements the collaborator contract
func (m *Minigame) Name() string { return "minigame" }

// Update advances falling crumbs one frame
func (m *Minigame) Update(now time.Time, delta time.Duration) []core.Message {
	if !m.active {
		return nil
	}

	if now.Sub(m.started) >= gameLength {
		msg := fmt.Sprintf("Time! You caught %d crumbs.", m.score)
		m.finish()
		return []core.Message{core.Event(msg)}
	}

	// Spawn roughly one crumb per second
	m.spawnAcc += delta.Seconds()
	for m.spawnAcc >= 1 {
		m.spawnAcc--
		m.crumbs = append(m.crumbs, fallingCrumb{
			x:     m.rng.Intn(boardWidth),
			speed: 3 + m.rng.Float64()*3,
		})
	}

	kept := m.crumbs[:0]
	for _, c := range m.crumbs {
		c.y += c.speed * delta.Seconds()
		if int(c.y) >= boardHeight-1 {
			if c.x == m.basketX {
				m.score++
			}
			continue
		}
		kept = append(kept, c)
	}
	m.crumbs = kept
	return nil
}

// finish ends the round, banking the score
func (m *Minigame) finish() {
	if m.score > m.highScore {
		m.highScore = m.score
	}
	if m.sink != nil && m.score > 0 {
		m.sink.AddCrumbs(m.score)
	}
	m.active = false
}

// Render implements the modal contract
func (m *Minigame) Render(width int) []string {
	lines := make([]string, 0, boardHeight+2)
	lines = append(lines, fmt.Sprintf("CRUMB CATCH  score %d  (arrows move, esc ends)", m.score))

	board := make([][]rune, boardHeight)
	for y := range board {
		board[y] = make([]rune, boardWidth)
		for x := range board[y] {
			board[y][x] = ' '
		}
	}
	for _, c := range m.crumbs {
		y := int(c.y)
		if y >= 0 && y < boardHeight {
			board[y][c.x] = '*'
		}
	}
	board[boardHeight-1][m.basketX] = 'U'

	for _, row := range board {
		lines = append(lines, string(row))
	}
	return lines
}

type minigameSnapshot struct {
	HighScore int `json:"high_score"`
}

// Serialize implements the collaborator contract; an in-progress round
// is not persisted
func (m *Minigame) Serialize() ([]byte, error) {
	return json.Marshal(minigameSnapshot{HighScore: m.highScore})
}

// Deserialize implements the collaborator contract
func (m *Minigame) Deserialize(data []byte) error {
	var snap minigameSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding minigame state: %w", err)
	}
	m.highScore = snap.HighScore
	return nil
}
