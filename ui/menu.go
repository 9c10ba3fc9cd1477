// Package ui implements the overlay widgets: list menus, confirmation
// prompts, text entry, and the away-time summary. Every widget satisfies
// the input modal contract and owns input exclusively while open.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/reflow/wordwrap"
)

// Item is one selectable menu entry. Selecting a disabled entry does
// nothing.
type Item struct {
	Label    string
	Detail   string
	Disabled bool
	OnSelect func()
}

// ListMenu is a paged list modal. Items are rebuilt from the refresh
// callback on open and after every selection, so entries always reflect
// live game state.
type ListMenu struct {
	title    string
	refresh  func() []Item
	pageSize int

	open   bool
	items  []Item
	cursor int
}

// NewListMenu creates a closed menu over the given item source
func NewListMenu(title string, pageSize int, refresh func() []Item) *ListMenu {
	if pageSize < 1 {
		pageSize = 8
	}
	return &ListMenu{title: title, pageSize: pageSize, refresh: refresh}
}

// Open rebuilds the items and shows the menu
func (m *ListMenu) Open() {
	m.items = m.refresh()
	m.cursor = 0
	m.open = true
}

// Close hides the menu
func (m *ListMenu) Close() { m.open = false }

// Active implements the modal contract
func (m *ListMenu) Active() bool { return m.open }

// HandleKey implements the modal contract
func (m *ListMenu) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		m.open = false
	case tcell.KeyUp:
		m.move(-1)
	case tcell.KeyDown:
		m.move(1)
	case tcell.KeyEnter:
		m.selectCurrent()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			m.move(-1)
		case 'j':
			m.move(1)
		case ' ':
			m.selectCurrent()
		}
	}
}

func (m *ListMenu) move(dir int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = (m.cursor + dir + len(m.items)) % len(m.items)
}

func (m *ListMenu) selectCurrent() {
	if m.cursor >= len(m.items) {
		return
	}
	item := m.items[m.cursor]
	if item.Disabled || item.OnSelect == nil {
		return
	}
	item.OnSelect()
	if m.open {
		// Rebuild so labels reflect whatever the selection changed
		m.items = m.refresh()
		if m.cursor >= len(m.items) && len(m.items) > 0 {
			m.cursor = len(m.items) - 1
		}
	}
}

// Cursor returns the highlighted index, for tests
func (m *ListMenu) Cursor() int { return m.cursor }

// Render implements the modal contract
func (m *ListMenu) Render(width int) []string {
	lines := []string{m.title, ""}

	page := m.cursor / m.pageSize
	start := page * m.pageSize
	end := start + m.pageSize
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := start; i < end; i++ {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		label := m.items[i].Label
		if m.items[i].Disabled {
			label += " (unavailable)"
		}
		lines = append(lines, marker+label)
		if i == m.cursor && m.items[i].Detail != "" {
			lines = append(lines, wordwrap.String("    "+m.items[i].Detail, width))
		}
	}

	if len(m.items) > m.pageSize {
		pages := (len(m.items) + m.pageSize - 1) / m.pageSize
		lines = append(lines, "", fmt.Sprintf("page %d/%d", page+1, pages))
	}
	lines = append(lines, "", "↑↓ move · enter select · esc close")
	return lines
}
