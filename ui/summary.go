package ui

import "github.com/gdamore/tcell/v2"

// Summary is a dismiss-on-any-key overlay, used for the welcome-back
// report after time away
type Summary struct {
	open      bool
	lines     []string
	onDismiss func()
}

// NewSummary creates a closed summary overlay
func NewSummary() *Summary { return &Summary{} }

// Show displays the given lines until any key is pressed
func (s *Summary) Show(lines []string, onDismiss func()) {
	s.lines = lines
	s.onDismiss = onDismiss
	s.open = true
}

// Active implements the modal contract
func (s *Summary) Active() bool { return s.open }

// HandleKey implements the modal contract
func (s *Summary) HandleKey(ev *tcell.EventKey) {
	s.open = false
	if s.onDismiss != nil {
		s.onDismiss()
	}
}

// Render implements the modal contract
func (s *Summary) Render(width int) []string {
	out := make([]string, 0, len(s.lines)+2)
	out = append(out, s.lines...)
	out = append(out, "", "press any key")
	return out
}
