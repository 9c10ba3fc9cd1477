package ui

import "github.com/gdamore/tcell/v2"

// Confirm is a yes/no prompt. Yes runs the pending callback; anything
// else cancels.
type Confirm struct {
	open   bool
	prompt string
	onYes  func()
}

// NewConfirm creates a closed confirmation prompt
func NewConfirm() *Confirm { return &Confirm{} }

// Ask shows the prompt with a fresh callback
func (c *Confirm) Ask(prompt string, onYes func()) {
	c.prompt = prompt
	c.onYes = onYes
	c.open = true
}

// Active implements the modal contract
func (c *Confirm) Active() bool { return c.open }

// HandleKey implements the modal contract
func (c *Confirm) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y') {
		c.open = false
		if c.onYes != nil {
			c.onYes()
		}
		return
	}
	c.open = false
}

// Render implements the modal contract
func (c *Confirm) Render(width int) []string {
	return []string{c.prompt, "", "y confirm · any other key cancels"}
}
