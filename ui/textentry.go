package ui

import "github.com/gdamore/tcell/v2"

const maxEntryLen = 24

// TextEntry is a one-line input prompt, used for naming the duck
type TextEntry struct {
	open     bool
	prompt   string
	buffer   []rune
	onSubmit func(string)

	// dismissable is false for mandatory prompts (first-run naming)
	dismissable bool
}

// NewTextEntry creates a closed text prompt
func NewTextEntry() *TextEntry { return &TextEntry{} }

// Ask shows the prompt; a non-dismissable prompt ignores escape
func (t *TextEntry) Ask(prompt, initial string, dismissable bool, onSubmit func(string)) {
	t.prompt = prompt
	t.buffer = []rune(initial)
	t.dismissable = dismissable
	t.onSubmit = onSubmit
	t.open = true
}

// Active implements the modal contract
func (t *TextEntry) Active() bool { return t.open }

// Value returns the current buffer contents
func (t *TextEntry) Value() string { return string(t.buffer) }

// HandleKey implements the modal contract
func (t *TextEntry) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		if t.dismissable {
			t.open = false
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(t.buffer) > 0 {
			t.buffer = t.buffer[:len(t.buffer)-1]
		}
	case tcell.KeyEnter:
		if len(t.buffer) == 0 {
			return
		}
		t.open = false
		if t.onSubmit != nil {
			t.onSubmit(string(t.buffer))
		}
	case tcell.KeyRune:
		if len(t.buffer) < maxEntryLen {
			t.buffer = append(t.buffer, ev.Rune())
		}
	}
}

// Render implements the modal contract
func (t *TextEntry) Render(width int) []string {
	return []string{t.prompt, "", "> " + string(t.buffer) + "_", "", "enter submit"}
}
