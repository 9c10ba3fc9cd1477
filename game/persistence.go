package game

import (
	"fmt"
	"time"

	"github.com/lixenwraith/duckling/constants"
	"github.com/lixenwraith/duckling/duck"
	"github.com/lixenwraith/duckling/engine"
	"github.com/lixenwraith/duckling/persist"
)

// subsystems returns every persisted collaborator in a fixed order
func (c *Context) subsystems() []persist.Subsystem {
	return []persist.Subsystem{
		c.duck,
		c.weather,
		c.garden,
		c.shop,
		c.events,
		c.dialogue,
		c.stats,
		c.achievements,
		c.minigame,
	}
}

// Start brings the session from title mode into play: restore a snapshot
// with offline catch-up when one exists, otherwise prompt for a name.
func (c *Context) Start() {
	if !c.saves.Exists() {
		c.textEntry.Ask("Name your duckling:", "", false, func(name string) {
			c.duck.Rename(name)
			c.beginPlay()
		})
		return
	}

	now := c.clock.Now()
	env, err := c.saves.Load(c.subsystems())
	if err != nil {
		c.log.Error("snapshot unreadable, starting fresh", "error", err)
		c.textEntry.Ask("Name your duckling:", "", false, func(name string) {
			c.duck.Rename(name)
			c.beginPlay()
		})
		return
	}

	elapsed := env.Elapsed(now)
	report := c.duck.CatchUp(elapsed, constants.OfflineDecayMultiplier)

	// Garden growth advances by the same compressed minutes
	simDelta := time.Duration(report.SimMinutes * float64(time.Minute))
	growth := c.garden.Update(now, simDelta)

	c.session.Mode = engine.ModeOfflineSummary
	c.summary.Show(c.offlineLines(report, len(growth)), c.beginPlay)
}

// beginPlay enters playing mode with freshly anchored cadence windows
func (c *Context) beginPlay() {
	now := c.clock.Now()
	c.session.Mode = engine.ModePlaying
	c.session.LastTick = now
	c.session.LastSave = now
	c.coord.ResetTimers(now)
}

// offlineLines formats the welcome-back report
func (c *Context) offlineLines(report duck.OfflineReport, ripened int) []string {
	lines := []string{
		fmt.Sprintf("Welcome back! You were away %s.", formatAway(report.Away)),
		"",
		fmt.Sprintf("%s aged %.0f minutes while you were gone.", c.duck.PetName(), report.SimMinutes),
		fmt.Sprintf("  hunger  %3.0f -> %3.0f", report.Before.Hunger, report.After.Hunger),
		fmt.Sprintf("  happy   %3.0f -> %3.0f", report.Before.Happiness, report.After.Happiness),
		fmt.Sprintf("  clean   %3.0f -> %3.0f", report.Before.Cleanliness, report.After.Cleanliness),
		fmt.Sprintf("  energy  %3.0f -> %3.0f", report.Before.Energy, report.After.Energy),
	}
	for _, m := range report.Messages {
		lines = append(lines, m.Text)
	}
	if ripened > 0 {
		lines = append(lines, fmt.Sprintf("%d garden plot(s) ripened while you were away.", ripened))
	}
	return lines
}

// formatAway renders an away duration in the largest useful unit
func formatAway(d time.Duration) string {
	switch {
	case d >= 48*time.Hour:
		return fmt.Sprintf("%d days", int(d.Hours()/24))
	case d >= 2*time.Hour:
		return fmt.Sprintf("%d hours", int(d.Hours()))
	case d >= 2*time.Minute:
		return fmt.Sprintf("%d minutes", int(d.Minutes()))
	default:
		return "barely a moment"
	}
}

// EmergencySave is the crash-path save, best effort only
func (c *Context) EmergencySave() {
	if err := c.saves.Save(c.subsystems(), c.clock.Now()); err != nil {
		c.log.Error("emergency save failed", "error", err)
	}
}
