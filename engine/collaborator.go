package engine

import (
	"time"

	"github.com/lixenwraith/duckling/core"
)

// Collaborator is the narrow contract every content subsystem exposes to
// the core. Updates must be non-blocking; the coordinator assumes this
// and does not enforce it.
type Collaborator interface {
	// Name identifies the subsystem's blob in the persisted snapshot
	Name() string

	// Update advances the subsystem and returns user-facing messages for
	// the coordinator to surface through the renderer
	Update(now time.Time, delta time.Duration) []core.Message

	// Serialize returns the subsystem's snapshot blob
	Serialize() ([]byte, error)

	// Deserialize restores the subsystem from a snapshot blob
	Deserialize(data []byte) error
}
