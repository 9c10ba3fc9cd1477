package game

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duckling/duck"
	"github.com/lixenwraith/duckling/engine"
	"github.com/lixenwraith/duckling/input"
	"github.com/lixenwraith/duckling/render"
)

// HandleEvent consumes one raw terminal event from the scheduler
func (c *Context) HandleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		c.width, c.height = w, h
		c.renderer.Resize(w, h)
		c.layoutSpots()
		c.duck.SetHome(c.spots["pet"])
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC || e.Key() == tcell.KeyCtrlQ {
			c.confirm.Ask("Quit? The pond will be saved.", c.saveAndQuit)
			c.syncPause()
			return
		}
		c.router.Dispatch(e)
		c.syncPause()
	}
}

// syncPause suspends world updates while a menu overlay is open. The
// minigame keeps the world running since it updates per frame itself;
// the title and offline-summary modes are not touched.
func (c *Context) syncPause() {
	if c.session.Mode != engine.ModePlaying && c.session.Mode != engine.ModePaused {
		return
	}

	modal := c.router.ActiveModal()
	paused := modal != nil && modal != input.Modal(c.minigame)

	switch {
	case paused && c.session.Mode == engine.ModePlaying:
		c.session.Mode = engine.ModePaused
	case !paused && c.session.Mode == engine.ModePaused:
		c.session.Mode = engine.ModePlaying
		// Re-anchor so slow checks do not all fire for the paused gap
		c.coord.ResetTimers(c.clock.Now())
	}
}

// Update runs one coordination pass for the sampled now
func (c *Context) Update(now time.Time) {
	c.coord.Update(now)
}

// Render draws the frame for the sampled now
func (c *Context) Render(screen tcell.Screen, now time.Time) {
	c.renderer.Draw(screen, c.buildFrame(now))
}

// buildFrame assembles the renderer's input from live state
func (c *Context) buildFrame(now time.Time) render.Frame {
	f := render.Frame{
		DuckName:  c.duck.PetName(),
		Stage:     c.duck.Stage().String(),
		Mood:      c.duck.Mood().String(),
		MoodGlyph: duck.MoodGlyph(c.duck.Mood()),
		Needs:     c.duck.Needs(),
		DuckPos:   c.duck.Position(),
		Pose:      c.duck.Pose(),
		Weather:   c.weather.State().String(),
		Crumbs:    c.shop.Crumbs(),
		Paused:    !c.session.Playing(),
	}

	if active := c.anims.Active(now); len(active) > 0 {
		f.AnimFrame = active[0].Frame(now)
	}

	for _, m := range c.messages {
		f.Messages = append(f.Messages, m.Text)
	}

	if modal := c.router.ActiveModal(); modal != nil {
		f.Overlay = modal.Render(c.width - 8)
	}

	if c.cfg.Debug {
		f.Debug = c.debugLines(now)
	}
	return f
}

// debugLines is the HUD shown with --debug
func (c *Context) debugLines(now time.Time) []string {
	return []string{
		fmt.Sprintf("phase=%s pos=%v age=%.1fm anims=%d msgs=%d",
			c.interact.Phase(), c.duck.Position(), c.duck.AgeMinutes(), c.anims.Len(), len(c.messages)),
	}
}
