package input

import "github.com/gdamore/tcell/v2"

// Action is a bare gameplay command, the final fallback of the dispatch
// chain
type Action int

const (
	ActionNone Action = iota
	ActionFeed
	ActionPlay
	ActionClean
	ActionPet
	ActionSleep
	ActionMasterMenu
	ActionDebugMenu
	ActionQuit
)

// actionNames maps keymap-file identifiers to actions
var actionNames = map[string]Action{
	"feed":        ActionFeed,
	"play":        ActionPlay,
	"clean":       ActionClean,
	"pet":         ActionPet,
	"sleep":       ActionSleep,
	"master_menu": ActionMasterMenu,
	"debug_menu":  ActionDebugMenu,
	"quit":        ActionQuit,
}

// defaultRuneBindings is the CLI surface contract; bindings are
// preserved bit-for-bit. Each action keeps a letter and a numeric alias.
var defaultRuneBindings = map[rune]Action{
	'f': ActionFeed, 'F': ActionFeed, '1': ActionFeed,
	'p': ActionPlay, 'P': ActionPlay, '2': ActionPlay,
	'l': ActionClean, 'L': ActionClean, '3': ActionClean,
	'd': ActionPet, 'D': ActionPet, '4': ActionPet,
	'z': ActionSleep, 'Z': ActionSleep, '5': ActionSleep,
	'`': ActionDebugMenu,
	'q': ActionQuit, 'Q': ActionQuit,
}

// Keymap resolves key events to gameplay actions
type Keymap struct {
	runes map[rune]Action
}

// NewKeymap creates the default keymap
func NewKeymap() *Keymap {
	runes := make(map[rune]Action, len(defaultRuneBindings))
	for r, a := range defaultRuneBindings {
		runes[r] = a
	}
	return &Keymap{runes: runes}
}

// Resolve maps a key event to an action; ActionNone when unbound
func (k *Keymap) Resolve(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyTab:
		return ActionMasterMenu
	case tcell.KeyRune:
		if a, ok := k.runes[ev.Rune()]; ok {
			return a
		}
	}
	return ActionNone
}

// Bind overrides a rune binding
func (k *Keymap) Bind(r rune, a Action) {
	k.runes[r] = a
}
