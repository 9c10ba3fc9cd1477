package input

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// keymapFile is the TOML schema for user binding overrides:
//
//	[bindings]
//	feed = "f"
//	sleep = "s"
type keymapFile struct {
	Bindings map[string]string `toml:"bindings"`
}

// LoadKeymapOverrides applies a TOML binding file over the defaults.
// A missing file is not an error; the defaults stand.
func LoadKeymapOverrides(path string, keymap *Keymap) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading keymap file: %w", err)
	}

	var file keymapFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing keymap file: %w", err)
	}

	for name, key := range file.Bindings {
		action, ok := actionNames[name]
		if !ok {
			return fmt.Errorf("unknown action %q in keymap file", name)
		}
		runes := []rune(key)
		if len(runes) != 1 {
			return fmt.Errorf("binding for %q must be a single key, got %q", name, key)
		}
		keymap.Bind(runes[0], action)
	}
	return nil
}
