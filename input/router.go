// Package input implements the modal dispatch chain: a fixed priority
// list of overlays, then bare gameplay hotkeys, then an action fallback.
package input

import "github.com/gdamore/tcell/v2"

// Modal is a UI mode that, while open, exclusively owns input handling
type Modal interface {
	// Active reports whether the modal is currently open
	Active() bool

	// HandleKey consumes a key event. The event is never re-dispatched.
	HandleKey(ev *tcell.EventKey)

	// Render returns the modal's overlay lines for the given width
	Render(width int) []string
}

// Router resolves exactly one consumer for each raw input event by
// walking the modal priority list in fixed order. The first open modal
// owns the event completely. Callers opening a modal are responsible
// for closing conflicting ones first; the router never arbitrates.
type Router struct {
	modals []Modal
	keymap *Keymap

	// onAction receives gameplay actions when no modal is open
	onAction func(a Action)
}

// NewRouter creates a router over the given priority-ordered modals
func NewRouter(modals []Modal, keymap *Keymap, onAction func(a Action)) *Router {
	return &Router{
		modals:   modals,
		keymap:   keymap,
		onAction: onAction,
	}
}

// ActiveModal returns the highest-priority open modal, or nil
func (r *Router) ActiveModal() Modal {
	for _, m := range r.modals {
		if m.Active() {
			return m
		}
	}
	return nil
}

// Dispatch routes one key event to exactly one consumer. With no modal
// open and no matching hotkey, the event is dropped silently.
func (r *Router) Dispatch(ev *tcell.EventKey) {
	if m := r.ActiveModal(); m != nil {
		m.HandleKey(ev)
		return
	}

	if a := r.keymap.Resolve(ev); a != ActionNone {
		r.onAction(a)
	}
}
