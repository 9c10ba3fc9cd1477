package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/duckling/constants"
	"github.com/lixenwraith/duckling/core"
	"github.com/lixenwraith/duckling/duck"
	"github.com/lixenwraith/duckling/engine"
	"github.com/lixenwraith/duckling/input"
)

// careAction binds a gameplay hotkey to its cooldown kind, interaction
// target, animation category, and base need effects
type careAction struct {
	kind     engine.ActionKind
	targetID string
	category string
	effects  core.Needs
}

var careActions = map[input.Action]careAction{
	input.ActionFeed: {
		kind:     engine.ActionFeed,
		targetID: "feed",
		category: "eat",
		effects:  core.Needs{Hunger: 30, Energy: 5},
	},
	input.ActionPlay: {
		kind:     engine.ActionPlay,
		targetID: "play",
		category: "bounce",
		effects:  core.Needs{Happiness: 25, Energy: -10},
	},
	input.ActionClean: {
		kind:     engine.ActionClean,
		targetID: "clean",
		category: "splash",
		effects:  core.Needs{Cleanliness: 40},
	},
	input.ActionPet: {
		kind:     engine.ActionPet,
		targetID: "pet",
		category: "shake",
		effects:  core.Needs{Happiness: 10},
	},
}

// handleAction is the hotkey fallback of the dispatch chain
func (c *Context) handleAction(a input.Action) {
	switch a {
	case input.ActionMasterMenu:
		c.masterMenu.Open()
	case input.ActionDebugMenu:
		if c.cfg.Debug {
			c.debugMenu.Open()
		}
	case input.ActionQuit:
		c.confirm.Ask("Quit? The pond will be saved.", c.saveAndQuit)
	case input.ActionSleep:
		c.handleSleep()
	default:
		if care, ok := careActions[a]; ok {
			c.handleCare(care)
		}
	}
}

// handleCare runs the cooldown gate and hands the action to the
// interaction machine. The use is recorded only after the machine
// accepts the request; a rejected request leaves the cooldown unspent.
func (c *Context) handleCare(care careAction) {
	now := c.clock.Now()

	if remaining := c.cooldowns.Remaining(care.kind, now); remaining > 0 {
		c.sound.Cue("denied")
		c.pushMessages([]core.Message{core.Info(fmt.Sprintf(
			"Too soon to %s again, try again in %ds.", care.kind, int(remaining.Seconds())+1))})
		return
	}

	err := c.interact.Request(engine.InteractionRequest{
		Kind:     engine.TargetLocation,
		TargetID: care.targetID,
		Source:   engine.SourcePlayerCommand,
		Snapshot: c.duck.Needs(),
	})
	switch {
	case errors.Is(err, engine.ErrInteractionBusy):
		c.pushMessages([]core.Message{core.Info(fmt.Sprintf("%s is busy right now.", c.duck.PetName()))})
		return
	case errors.Is(err, engine.ErrBehaviorConflict):
		c.pushMessages([]core.Message{core.Info(fmt.Sprintf("Shh, %s is sleeping.", c.duck.PetName()))})
		return
	case err != nil:
		c.pushMessages([]core.Message{core.Warning("That spot seems to be gone.")})
		return
	}

	c.cooldowns.TryUse(care.kind, now)
}

// handleSleep toggles sleep directly; sleep is not a move-to interaction
func (c *Context) handleSleep() {
	if c.duck.Asleep() {
		c.duck.Wake()
		c.pushMessages([]core.Message{core.Info(fmt.Sprintf("%s blinks awake.", c.duck.PetName()))})
		return
	}

	now := c.clock.Now()
	allowed, remaining := c.cooldowns.TryUse(engine.ActionSleep, now)
	if !allowed {
		c.sound.Cue("denied")
		c.pushMessages([]core.Message{core.Info(fmt.Sprintf(
			"Not sleepy yet, try again in %ds.", int(remaining.Seconds())+1))})
		return
	}

	c.interact.Cancel()
	c.duck.Sleep()
	c.sound.Cue("sleep")
	c.pushMessages([]core.Message{core.Info(fmt.Sprintf("%s settles down for a nap.", c.duck.PetName()))})
}

// beginInteraction applies a care action's effects on arrival and starts
// its animation
func (c *Context) beginInteraction(req engine.InteractionRequest) (*engine.TimedAnimation, []core.Message) {
	var care careAction
	found := false
	for _, ca := range careActions {
		if ca.targetID == req.TargetID {
			care = ca
			found = true
			break
		}
	}
	if !found {
		return nil, nil
	}

	effects, msgs := c.applyCareEffects(care)
	c.duck.ApplyEffects(effects)
	c.stats.Increment(care.kind.String())
	c.sound.Cue(care.kind.String())

	// Low-need snapshots make the moment worth remembering
	if req.Snapshot.Average() < 25 {
		c.stats.Remember(fmt.Sprintf("You took care of %s when things looked grim.", c.duck.PetName()), c.clock.Now())
	}

	anim := &engine.TimedAnimation{
		ID:            care.targetID,
		Start:         c.clock.Now(),
		Duration:      constants.InteractionDuration,
		FrameInterval: constants.InteractionFrameInterval,
		Frames:        duck.AnimationFrames(care.category),
	}
	return anim, msgs
}

// applyCareEffects folds held items into the base effects. Consumables
// are spent; the ball is a durable.
func (c *Context) applyCareEffects(care careAction) (core.Needs, []core.Message) {
	effects := care.effects
	var msgs []core.Message

	switch care.kind {
	case engine.ActionFeed:
		switch {
		case c.shop.Consume("cake"):
			effects.Hunger += 30
			effects.Happiness += 10
			msgs = append(msgs, core.Event(fmt.Sprintf("%s devours the crumb cake!", c.duck.PetName())))
		case c.shop.Consume("bread"):
			effects.Hunger += 15
			msgs = append(msgs, core.Event(fmt.Sprintf("%s happily munches the bread crust.", c.duck.PetName())))
		default:
			msgs = append(msgs, core.Info(fmt.Sprintf("%s nibbles some pond weed.", c.duck.PetName())))
		}
	case engine.ActionPlay:
		if c.shop.Count("ball") > 0 {
			effects.Happiness += 10
			msgs = append(msgs, core.Event(fmt.Sprintf("%s chases the bouncy ball around!", c.duck.PetName())))
		} else {
			msgs = append(msgs, core.Info(fmt.Sprintf("%s splashes about with you.", c.duck.PetName())))
		}
	case engine.ActionClean:
		if c.shop.Consume("soap") {
			effects.Cleanliness += 20
			msgs = append(msgs, core.Event(fmt.Sprintf("%s gets a proper soapy scrub.", c.duck.PetName())))
		} else {
			msgs = append(msgs, core.Info(fmt.Sprintf("%s preens in the shallows.", c.duck.PetName())))
		}
	case engine.ActionPet:
		msgs = append(msgs, core.Info(fmt.Sprintf("%s leans into the head pats.", c.duck.PetName())))
	}

	return effects, msgs
}

// saveAndQuit persists the snapshot and ends the loop
func (c *Context) saveAndQuit() {
	now := c.clock.Now()
	if err := c.saves.Save(c.subsystems(), now); err != nil {
		c.log.Error("final save failed", "error", err)
	}
	c.session.Stop()
}

// harvestEffects is the wallet value per harvested crop
var harvestCrumbs = map[string]int{
	"cress":     8,
	"duckweed":  14,
	"sunflower": 25,
}

// harvestPlot is shared by the garden menu entries
func (c *Context) harvestPlot(idx int) {
	seed, ok := c.garden.Harvest(idx)
	if !ok {
		return
	}
	crumbs := harvestCrumbs[seed]
	c.shop.AddCrumbs(crumbs)
	c.stats.Increment("harvest")
	c.sound.Cue("event")
	c.pushMessages([]core.Message{core.Event(fmt.Sprintf("Harvested the %s for %d crumbs.", seed, crumbs))})
}

// plantSeed is shared by the garden menu entries; the seed must be held
func (c *Context) plantSeed(seed string) {
	if c.shop.Count(seed) == 0 {
		return
	}
	if err := c.garden.Plant(seed); err != nil {
		c.pushMessages([]core.Message{core.Info("The garden is full.")})
		return
	}
	c.shop.Consume(seed)
	c.pushMessages([]core.Message{core.Info(fmt.Sprintf("Planted %s.", seed))})
}

// debugAdvanceAge fast-forwards growth by one simulated day
func (c *Context) debugAdvanceAge() {
	report := c.duck.CatchUp(24*time.Hour, 1.0)
	c.pushMessages(report.Messages)
}
