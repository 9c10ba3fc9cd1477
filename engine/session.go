package engine

import "time"

// SessionMode is the top-level mode of the session
type SessionMode int

const (
	ModeTitle SessionMode = iota
	ModePlaying
	ModePaused
	ModeOfflineSummary
)

// SessionState holds the top-level loop state. Mutated only by the
// scheduler and top-level mode transitions; destroyed at process exit.
type SessionState struct {
	Mode    SessionMode
	Running bool

	// Wall-clock anchors
	LastTick       time.Time
	LastSave       time.Time
	LastEventCheck time.Time
}

// NewSessionState creates a running session in title mode
func NewSessionState(now time.Time) *SessionState {
	return &SessionState{
		Mode:           ModeTitle,
		Running:        true,
		LastTick:       now,
		LastSave:       now,
		LastEventCheck: now,
	}
}

// Playing reports whether world updates should run this frame
func (s *SessionState) Playing() bool {
	return s.Mode == ModePlaying
}

// Stop clears the running flag; the loop exits at the end of the frame
func (s *SessionState) Stop() {
	s.Running = false
}
