// Package persist implements the snapshot envelope: a single versioned
// document holding one blob per collaborator plus the last-active
// timestamp driving offline catch-up.
package persist

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Subsystem is the serialize half of the collaborator contract
type Subsystem interface {
	Name() string
	Serialize() ([]byte, error)
	Deserialize(data []byte) error
}

// Envelope is the persisted document. Unknown sub-blobs are ignored on
// load; missing ones leave the collaborator at its fresh default.
type Envelope struct {
	Version    int                        `json:"version"`
	LastPlayed time.Time                  `json:"last_played"`
	Subsystems map[string]json.RawMessage `json:"subsystems"`
}

// Manager handles snapshot save/load against a single flat file
type Manager struct {
	path    string
	version int
	log     *slog.Logger
}

// NewManager creates a manager writing snapshots at path
func NewManager(path string, version int, log *slog.Logger) *Manager {
	return &Manager{path: path, version: version, log: log}
}

// Path returns the snapshot file path
func (m *Manager) Path() string { return m.path }

// Exists checks whether a snapshot file is present
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

// Save aggregates every subsystem's blob into an envelope stamped with
// now and writes it to disk. A subsystem that fails to serialize is
// logged and omitted; the save itself still completes.
func (m *Manager) Save(subsystems []Subsystem, now time.Time) error {
	env := Envelope{
		Version:    m.version,
		LastPlayed: now.UTC(),
		Subsystems: make(map[string]json.RawMessage, len(subsystems)),
	}

	for _, s := range subsystems {
		blob, err := s.Serialize()
		if err != nil {
			if m.log != nil {
				m.log.Error("serializing subsystem", "subsystem", s.Name(), "error", err)
			}
			continue
		}
		env.Subsystems[s.Name()] = blob
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating save directory: %w", err)
		}
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Load reads the envelope and distributes sub-blobs back to the given
// freshly constructed subsystems. A missing or corrupt blob leaves that
// subsystem at its default; the load never aborts wholesale. Returns the
// envelope for offline-time computation.
func (m *Manager) Load(subsystems []Subsystem) (*Envelope, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	for _, s := range subsystems {
		blob, ok := env.Subsystems[s.Name()]
		if !ok {
			if m.log != nil {
				m.log.Info("subsystem missing from snapshot, using defaults", "subsystem", s.Name())
			}
			continue
		}
		if err := s.Deserialize(blob); err != nil {
			if m.log != nil {
				m.log.Error("restoring subsystem, using defaults", "subsystem", s.Name(), "error", err)
			}
			continue
		}
	}

	return &env, nil
}

// Elapsed computes the real time spent away, never negative
func (e *Envelope) Elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(e.LastPlayed)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
