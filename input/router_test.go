package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// stubModal records key events while open
type stubModal struct {
	open bool
	keys []rune
}

func (s *stubModal) Active() bool { return s.open }

func (s *stubModal) HandleKey(ev *tcell.EventKey) {
	s.keys = append(s.keys, ev.Rune())
}

func (s *stubModal) Render(width int) []string { return nil }

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestRouter_FirstOpenModalOwnsEvent(t *testing.T) {
	textEntry := &stubModal{}
	shop := &stubModal{open: true}
	master := &stubModal{open: true}

	var actions []Action
	r := NewRouter([]Modal{textEntry, shop, master}, NewKeymap(), func(a Action) {
		actions = append(actions, a)
	})

	r.Dispatch(keyEvent('f'))

	if len(shop.keys) != 1 {
		t.Errorf("shop received %d events, want 1", len(shop.keys))
	}
	if len(master.keys) != 0 {
		t.Error("lower-priority open modal must not see a claimed event")
	}
	if len(textEntry.keys) != 0 {
		t.Error("closed modal must not see events")
	}
	if len(actions) != 0 {
		t.Error("gameplay fallback must not fire while a modal is open")
	}
}

func TestRouter_FallbackToGameplayHotkeys(t *testing.T) {
	var actions []Action
	r := NewRouter([]Modal{&stubModal{}}, NewKeymap(), func(a Action) {
		actions = append(actions, a)
	})

	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{keyEvent('f'), ActionFeed},
		{keyEvent('1'), ActionFeed},
		{keyEvent('p'), ActionPlay},
		{keyEvent('2'), ActionPlay},
		{keyEvent('l'), ActionClean},
		{keyEvent('3'), ActionClean},
		{keyEvent('d'), ActionPet},
		{keyEvent('4'), ActionPet},
		{keyEvent('z'), ActionSleep},
		{keyEvent('5'), ActionSleep},
		{keyEvent('`'), ActionDebugMenu},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionMasterMenu},
	}

	for i, tc := range cases {
		actions = actions[:0]
		r.Dispatch(tc.ev)
		if len(actions) != 1 || actions[0] != tc.want {
			t.Errorf("case %d: got %v, want [%v]", i, actions, tc.want)
		}
	}
}

func TestRouter_UnmatchedEventDroppedSilently(t *testing.T) {
	var actions []Action
	r := NewRouter(nil, NewKeymap(), func(a Action) {
		actions = append(actions, a)
	})

	r.Dispatch(keyEvent('x'))
	r.Dispatch(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))

	if len(actions) != 0 {
		t.Errorf("unbound events produced actions: %v", actions)
	}
}

func TestRouter_ActiveModal(t *testing.T) {
	a := &stubModal{}
	b := &stubModal{open: true}
	r := NewRouter([]Modal{a, b}, NewKeymap(), func(Action) {})

	if r.ActiveModal() != b {
		t.Error("wrong active modal")
	}

	b.open = false
	if r.ActiveModal() != nil {
		t.Error("expected no active modal")
	}
}

func TestLoadKeymapOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.toml")
	content := "[bindings]\nsleep = \"s\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	keymap := NewKeymap()
	if err := LoadKeymapOverrides(path, keymap); err != nil {
		t.Fatal(err)
	}

	if got := keymap.Resolve(keyEvent('s')); got != ActionSleep {
		t.Errorf("override binding resolved to %v", got)
	}
	// Defaults survive alongside overrides
	if got := keymap.Resolve(keyEvent('z')); got != ActionSleep {
		t.Errorf("default binding lost: %v", got)
	}
}

func TestLoadKeymapOverrides_MissingFileIsFine(t *testing.T) {
	if err := LoadKeymapOverrides(filepath.Join(t.TempDir(), "absent.toml"), NewKeymap()); err != nil {
		t.Errorf("missing keymap file should not error: %v", err)
	}
}

func TestLoadKeymapOverrides_RejectsUnknownAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.toml")
	os.WriteFile(path, []byte("[bindings]\nfly = \"w\"\n"), 0644)

	if err := LoadKeymapOverrides(path, NewKeymap()); err == nil {
		t.Error("unknown action name should be rejected")
	}
}
