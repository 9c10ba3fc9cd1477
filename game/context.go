// Package game is the composition root: it wires the duck, world
// collaborators, engine machinery, overlays, renderer, and persistence
// into one context driven by the tick scheduler.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/lixenwraith/duckling/audio"
	"github.com/lixenwraith/duckling/config"
	"github.com/lixenwraith/duckling/constants"
	"github.com/lixenwraith/duckling/core"
	"github.com/lixenwraith/duckling/duck"
	"github.com/lixenwraith/duckling/engine"
	"github.com/lixenwraith/duckling/input"
	"github.com/lixenwraith/duckling/persist"
	"github.com/lixenwraith/duckling/render"
	"github.com/lixenwraith/duckling/ui"
	"github.com/lixenwraith/duckling/world"
)

const messageCap = 20

// Context owns every live part of the game. All mutation happens on the
// scheduler goroutine; nothing here is safe for concurrent use.
type Context struct {
	cfg config.Config
	log *slog.Logger
	rng *rand.Rand

	clock   engine.TimeProvider
	session *engine.SessionState

	duck         *duck.Duck
	weather      *world.Weather
	garden       *world.Garden
	shop         *world.Shop
	events       *world.Events
	dialogue     *world.Dialogue
	stats        *world.Stats
	achievements *world.Achievements
	minigame     *world.Minigame

	cooldowns *engine.CooldownTracker
	anims     *engine.AnimationRegistry
	interact  *engine.InteractionStateMachine
	coord     *engine.SubsystemCoordinator
	saves     *persist.Manager

	keymap *input.Keymap
	router *input.Router

	masterMenu       *ui.ListMenu
	shopMenu         *ui.ListMenu
	gardenMenu       *ui.ListMenu
	achievementsMenu *ui.ListMenu
	memoriesMenu     *ui.ListMenu
	debugMenu        *ui.ListMenu
	confirm          *ui.Confirm
	textEntry        *ui.TextEntry
	summary          *ui.Summary

	renderer *render.Renderer
	sound    *audio.Player

	// Named interaction spots, recomputed on resize
	spots  map[string]core.Point
	width  int
	height int

	messages []core.Message
}

// New wires a complete game context for the given screen size
func New(cfg config.Config, log *slog.Logger, clock engine.TimeProvider, rng *rand.Rand, width, height int) (*Context, error) {
	now := clock.Now()

	ctx := &Context{
		cfg:     cfg,
		log:     log,
		rng:     rng,
		clock:   clock,
		session: engine.NewSessionState(now),
		width:   width,
		height:  height,
	}

	ctx.duck = duck.New("Duckling", core.Point{X: width / 2, Y: height / 2})
	ctx.weather = world.NewWeather(rng, func(cue string) { ctx.sound.Cue(cue) })
	ctx.garden = world.NewGarden()
	ctx.shop = world.NewShop()
	ctx.events = world.NewEvents(rng, ctx)
	ctx.stats = world.NewStats()
	ctx.achievements = world.NewAchievements(ctx.stats)
	ctx.minigame = world.NewMinigame(rng, ctx)

	dialogue, err := world.NewDialogue(rng,
		ctx.duck.PetName,
		func() string { return ctx.duck.Mood().String() },
		func() string { return ctx.weather.State().String() },
	)
	if err != nil {
		return nil, err
	}
	ctx.dialogue = dialogue

	ctx.cooldowns = engine.NewCooldownTracker(map[engine.ActionKind]time.Duration{
		engine.ActionFeed:  constants.FeedCooldown,
		engine.ActionPlay:  constants.PlayCooldown,
		engine.ActionClean: constants.CleanCooldown,
		engine.ActionPet:   constants.PetCooldown,
		engine.ActionSleep: constants.SleepCooldown,
	})

	ctx.anims = engine.NewAnimationRegistry()
	ctx.interact = engine.NewInteractionStateMachine(ctx.duck, ctx.anims, engine.InteractionHooks{
		Resolve: ctx.resolveTarget,
		Busy:    ctx.duck.Asleep,
		Begin:   ctx.beginInteraction,
		Home: func() (core.Point, bool) {
			return ctx.duck.Home(), true
		},
	})

	ctx.saves = persist.NewManager(cfg.SavePath, constants.SnapshotVersion, log)
	ctx.sound = audio.NewPlayer(cfg.Mute)
	ctx.renderer = render.NewRenderer(width, height)

	ctx.keymap = input.NewKeymap()
	if err := input.LoadKeymapOverrides(cfg.KeymapPath, ctx.keymap); err != nil {
		return nil, err
	}

	ctx.buildOverlays()
	ctx.layoutSpots()
	ctx.registerCadences()

	ctx.router = input.NewRouter([]input.Modal{
		ctx.confirm,
		ctx.textEntry,
		ctx.summary,
		ctx.minigame,
		ctx.debugMenu,
		ctx.shopMenu,
		ctx.gardenMenu,
		ctx.achievementsMenu,
		ctx.memoriesMenu,
		ctx.masterMenu,
	}, ctx.keymap, ctx.handleAction)

	return ctx, nil
}

// Session returns the loop state shared with the scheduler
func (c *Context) Session() *engine.SessionState { return c.session }

// ApplyNeedEffects implements the event effect sink
func (c *Context) ApplyNeedEffects(delta core.Needs) {
	c.duck.ApplyEffects(delta)
}

// AddCrumbs implements the event effect sink
func (c *Context) AddCrumbs(n int) {
	c.shop.AddCrumbs(n)
}

// NoteEvent implements the event effect sink
func (c *Context) NoteEvent() {
	c.stats.Increment("event")
}

// pushMessages appends to the rolling log, trimming the oldest
func (c *Context) pushMessages(msgs []core.Message) {
	c.messages = append(c.messages, msgs...)
	if len(c.messages) > messageCap {
		c.messages = c.messages[len(c.messages)-messageCap:]
	}
}

// layoutSpots places the named interaction spots for the current size
func (c *Context) layoutSpots() {
	w, h := c.width, c.height
	c.spots = map[string]core.Point{
		"feed":  {X: w / 4, Y: h / 2},
		"play":  {X: 3 * w / 4, Y: h / 2},
		"clean": {X: w / 2, Y: h / 3},
		"pet":   {X: w / 2, Y: h / 2},
	}
}

// resolveTarget maps an interaction target to its position
func (c *Context) resolveTarget(kind engine.TargetKind, id string) (core.Point, bool) {
	p, ok := c.spots[id]
	return p, ok
}

// registerCadences wires every collaborator into the coordinator in a
// fixed order so need mutations replay identically
func (c *Context) registerCadences() {
	c.coord = engine.NewSubsystemCoordinator(c.log, constants.GameTickInterval, c.pushMessages)

	// Per frame: movement, minigame, interaction drain, animation prune
	c.coord.RegisterPerFrame(c.duck)
	c.coord.RegisterPerFrame(c.minigame)
	c.coord.RegisterFrameHook("interaction", c.interact.Update)
	c.coord.RegisterFrameHook("animations", func(now time.Time, _ time.Duration) []core.Message {
		c.anims.Advance(now)
		return nil
	})

	// Fixed tick: need decay, garden growth, achievement thresholds
	c.coord.RegisterTickHook("duck_decay", c.duck.TickDecay)
	c.coord.RegisterPerTick(c.garden)
	c.coord.RegisterTickHook("achievements", func(now time.Time, delta time.Duration) []core.Message {
		msgs := c.achievements.Update(now, delta)
		if len(msgs) > 0 {
			c.sound.Cue("achievement")
		}
		return msgs
	})

	// Slow intervals
	c.coord.RegisterEvery(constants.RandomEventInterval, c.events)
	c.coord.RegisterEvery(constants.WeatherInterval, c.weather)
	c.coord.RegisterEvery(constants.WeatherInterval, c.dialogue)
	c.coord.RegisterCheck("autosave", constants.AutosaveInterval, c.autosave)
	c.coord.RegisterCheck("storm_damage", constants.StormDamageInterval, c.stormDamage)
}

// autosave persists the full snapshot on its slow cadence
func (c *Context) autosave(now time.Time) []core.Message {
	if err := c.saves.Save(c.subsystems(), now); err != nil {
		c.log.Error("autosave failed", "error", err)
		return []core.Message{core.Warning("Autosave failed; progress is not being saved.")}
	}
	c.session.LastSave = now
	return nil
}

// stormDamage rolls garden damage while a storm is overhead
func (c *Context) stormDamage(now time.Time) []core.Message {
	if !c.weather.Storming() {
		return nil
	}
	return c.garden.ApplyStormDamage(c.rng)
}
