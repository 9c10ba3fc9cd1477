package game

import (
	"fmt"

	"github.com/lixenwraith/duckling/core"
	"github.com/lixenwraith/duckling/ui"
)

// buildOverlays constructs every menu and prompt with live item sources
func (c *Context) buildOverlays() {
	c.confirm = ui.NewConfirm()
	c.textEntry = ui.NewTextEntry()
	c.summary = ui.NewSummary()

	c.shopMenu = ui.NewListMenu("POND SHOP", 8, c.shopItems)
	c.gardenMenu = ui.NewListMenu("GARDEN", 8, c.gardenItems)
	c.achievementsMenu = ui.NewListMenu("ACHIEVEMENTS", 8, c.achievementItems)
	c.memoriesMenu = ui.NewListMenu("MEMORIES", 6, c.memoryItems)
	c.debugMenu = ui.NewListMenu("DEBUG", 8, c.debugItems)
	c.masterMenu = ui.NewListMenu("POND MENU", 8, c.masterItems)
}

// masterItems is the Tab menu: one entry per sub-surface
func (c *Context) masterItems() []ui.Item {
	return []ui.Item{
		{Label: fmt.Sprintf("Shop (%d crumbs)", c.shop.Crumbs()), OnSelect: func() {
			c.masterMenu.Close()
			c.shopMenu.Open()
		}},
		{Label: "Garden", OnSelect: func() {
			c.masterMenu.Close()
			c.gardenMenu.Open()
		}},
		{Label: "Achievements", OnSelect: func() {
			c.masterMenu.Close()
			c.achievementsMenu.Open()
		}},
		{Label: "Memories", OnSelect: func() {
			c.masterMenu.Close()
			c.memoriesMenu.Open()
		}},
		{Label: fmt.Sprintf("Crumb catch (best %d)", c.minigame.HighScore()), OnSelect: func() {
			c.masterMenu.Close()
			c.minigame.Open(c.clock.Now())
		}},
		{Label: fmt.Sprintf("Rename %s", c.duck.PetName()), OnSelect: func() {
			c.masterMenu.Close()
			c.textEntry.Ask("New name?", c.duck.PetName(), true, c.duck.Rename)
		}},
		{Label: "Save now", OnSelect: func() {
			c.masterMenu.Close()
			c.pushMessages(c.autosave(c.clock.Now()))
			c.pushMessages([]core.Message{core.Info("Saved.")})
		}},
		{Label: "Quit", OnSelect: func() {
			c.masterMenu.Close()
			c.confirm.Ask("Quit? The pond will be saved.", c.saveAndQuit)
		}},
	}
}

// shopItems lists the catalog with live affordability
func (c *Context) shopItems() []ui.Item {
	items := make([]ui.Item, 0, len(c.shop.Catalog())+1)
	items = append(items, ui.Item{
		Label:    fmt.Sprintf("Wallet: %d crumbs", c.shop.Crumbs()),
		Disabled: true,
	})
	for _, entry := range c.shop.Catalog() {
		entry := entry
		label := fmt.Sprintf("%-16s %3d crumbs", entry.Label, entry.Price)
		if held := c.shop.Count(entry.ID); held > 0 {
			label += fmt.Sprintf("  (held: %d)", held)
		}
		items = append(items, ui.Item{
			Label:    label,
			Disabled: c.shop.Crumbs() < entry.Price,
			OnSelect: func() {
				if err := c.shop.Buy(entry.ID); err != nil {
					c.pushMessages([]core.Message{core.Info(err.Error())})
					return
				}
				c.pushMessages([]core.Message{core.Info(fmt.Sprintf("Bought %s.", entry.Label))})
			},
		})
	}
	return items
}

// gardenItems lists each plot with its contextual action plus one
// planting entry per held seed
func (c *Context) gardenItems() []ui.Item {
	var items []ui.Item

	plots := c.garden.Plots()
	for i := range plots {
		i := i
		p := plots[i]
		switch {
		case p.Empty():
			items = append(items, ui.Item{
				Label:    fmt.Sprintf("Plot %d: empty", i+1),
				Disabled: true,
			})
		case p.Ready():
			items = append(items, ui.Item{
				Label:    fmt.Sprintf("Plot %d: %s ready, harvest!", i+1, p.Seed),
				OnSelect: func() { c.harvestPlot(i) },
			})
		default:
			items = append(items, ui.Item{
				Label:    fmt.Sprintf("Plot %d: %s, %.0f min left", i+1, p.Seed, p.RemainingMin),
				Disabled: true,
			})
		}
	}

	items = append(items, ui.Item{
		Label:    "Water the garden",
		OnSelect: func() { c.garden.Water() },
	})

	for _, seed := range []string{"cress", "duckweed", "sunflower"} {
		seed := seed
		if held := c.shop.Count(seed); held > 0 {
			items = append(items, ui.Item{
				Label:    fmt.Sprintf("Plant %s (held: %d)", seed, held),
				OnSelect: func() { c.plantSeed(seed) },
			})
		}
	}
	return items
}

// achievementItems lists every achievement with its unlocked state
func (c *Context) achievementItems() []ui.Item {
	entries := c.achievements.Entries()
	items := make([]ui.Item, 0, len(entries))
	for _, e := range entries {
		mark := "[ ]"
		if e.Unlocked {
			mark = "[x]"
		}
		items = append(items, ui.Item{Label: mark + " " + e.Title, Disabled: true})
	}
	return items
}

// memoryItems lists remembered moments and recent events, newest first
func (c *Context) memoryItems() []ui.Item {
	var items []ui.Item
	memories := c.stats.Memories()
	for i := len(memories) - 1; i >= 0; i-- {
		m := memories[i]
		items = append(items, ui.Item{
			Label:    m.At.Format("Jan 2 15:04") + "  " + m.Text,
			Disabled: true,
		})
	}
	recent := c.events.Recent()
	for i := len(recent) - 1; i >= 0; i-- {
		e := recent[i]
		items = append(items, ui.Item{
			Label:    e.At.Format("Jan 2 15:04") + "  " + e.Kind,
			Disabled: true,
		})
	}
	if len(items) == 0 {
		items = append(items, ui.Item{Label: "Nothing memorable yet.", Disabled: true})
	}
	return items
}

// debugItems is the backtick menu, only reachable with --debug
func (c *Context) debugItems() []ui.Item {
	return []ui.Item{
		{Label: "Fill all needs", OnSelect: func() {
			c.duck.ApplyEffects(core.Needs{Hunger: 100, Happiness: 100, Cleanliness: 100, Energy: 100})
		}},
		{Label: "Drain all needs", OnSelect: func() {
			c.duck.ApplyEffects(core.Needs{Hunger: -100, Happiness: -100, Cleanliness: -100, Energy: -100})
		}},
		{Label: "Grant 50 crumbs", OnSelect: func() { c.shop.AddCrumbs(50) }},
		{Label: "Advance age one day", OnSelect: c.debugAdvanceAge},
		{Label: fmt.Sprintf("Weather: %s (reroll)", c.weather.State()), OnSelect: func() {
			c.pushMessages(c.weather.Update(c.clock.Now(), 0))
		}},
		{Label: "Roll a random event", OnSelect: func() {
			c.pushMessages(c.events.Update(c.clock.Now(), 0))
		}},
	}
}
