package engine

import (
	"errors"
	"time"

	"github.com/lixenwraith/duckling/core"
)

// InteractionPhase is the state of the single duck-to-target interaction
type InteractionPhase int

const (
	PhaseIdle InteractionPhase = iota
	PhaseMovingToTarget
	PhaseInteracting
	PhaseReturning
)

// String returns the display name for a phase
func (p InteractionPhase) String() string {
	switch p {
	case PhaseMovingToTarget:
		return "moving"
	case PhaseInteracting:
		return "interacting"
	case PhaseReturning:
		return "returning"
	default:
		return "idle"
	}
}

// TargetKind classifies the interaction target
type TargetKind int

const (
	TargetItem TargetKind = iota
	TargetFriend
	TargetLocation
)

// RequestSource identifies who asked for the interaction
type RequestSource int

const (
	SourcePlayerCommand RequestSource = iota
	SourceAutonomous
	SourceProximity
)

// InteractionRequest is consumed by the state machine and never retained
// after completion
type InteractionRequest struct {
	Kind     TargetKind
	TargetID string
	Source   RequestSource

	// Snapshot of duck needs at request time
	Snapshot core.Needs
}

// Mover walks the duck toward a target and fires the arrival callback.
// Implemented by the duck collaborator.
type Mover interface {
	MoveTo(target core.Point, onArrive func())
	CancelMove()
}

// InteractionHooks bind the machine to its collaborators via constructor
// injection
type InteractionHooks struct {
	// Resolve maps a target to a concrete position; false if it vanished
	Resolve func(kind TargetKind, id string) (core.Point, bool)

	// Busy reports whether a conflicting autonomous behavior is mid-action
	Busy func() bool

	// Begin applies interaction effects and returns the interaction
	// animation plus any user-facing messages
	Begin func(req InteractionRequest) (*TimedAnimation, []core.Message)

	// Home returns the duck's resting spot for the RETURNING leg;
	// false skips the leg
	Home func() (core.Point, bool)
}

// Request rejection reasons
var (
	ErrInteractionBusy  = errors.New("interaction already in progress")
	ErrTargetUnresolved = errors.New("target has no position")
	ErrBehaviorConflict = errors.New("autonomous behavior mid-action")
)

// InteractionStateMachine runs the single active duck-to-target
// interaction. At most one instance system-wide is non-IDLE at any
// instant; while non-IDLE, new requests from any source are rejected.
type InteractionStateMachine struct {
	phase InteractionPhase
	req   InteractionRequest

	mover Mover
	hooks InteractionHooks
	anims *AnimationRegistry

	pending []core.Message
}

// NewInteractionStateMachine creates an idle machine
func NewInteractionStateMachine(mover Mover, anims *AnimationRegistry, hooks InteractionHooks) *InteractionStateMachine {
	return &InteractionStateMachine{
		mover: mover,
		hooks: hooks,
		anims: anims,
	}
}

// Phase returns the current interaction phase
func (m *InteractionStateMachine) Phase() InteractionPhase {
	return m.phase
}

// Idle reports whether the machine can accept a request
func (m *InteractionStateMachine) Idle() bool {
	return m.phase == PhaseIdle
}

// Request starts a new interaction. Rejected outright when the machine is
// non-IDLE, the target does not resolve, or a conflicting autonomous
// behavior is mid-action. On rejection the machine state is unchanged.
func (m *InteractionStateMachine) Request(req InteractionRequest) error {
	if m.phase != PhaseIdle {
		return ErrInteractionBusy
	}
	if m.hooks.Busy != nil && m.hooks.Busy() {
		return ErrBehaviorConflict
	}
	pos, ok := m.hooks.Resolve(req.Kind, req.TargetID)
	if !ok {
		return ErrTargetUnresolved
	}

	m.req = req
	m.phase = PhaseMovingToTarget
	m.mover.MoveTo(pos, m.onArrival)
	return nil
}

// onArrival transitions MOVING_TO_TARGET -> INTERACTING. A vanished
// target short-circuits directly to IDLE rather than raising an error.
func (m *InteractionStateMachine) onArrival() {
	if m.phase != PhaseMovingToTarget {
		return
	}

	if _, ok := m.hooks.Resolve(m.req.Kind, m.req.TargetID); !ok {
		m.reset()
		return
	}

	anim, msgs := m.hooks.Begin(m.req)
	m.pending = append(m.pending, msgs...)

	if anim == nil {
		m.finish()
		return
	}

	m.phase = PhaseInteracting
	anim.OnComplete = m.finish
	m.anims.Add(anim)
}

// finish transitions INTERACTING -> RETURNING or IDLE, clearing all
// target and result references
func (m *InteractionStateMachine) finish() {
	if m.hooks.Home != nil {
		if home, ok := m.hooks.Home(); ok {
			m.phase = PhaseReturning
			m.req = InteractionRequest{}
			m.mover.MoveTo(home, m.reset)
			return
		}
	}
	m.reset()
}

// reset returns the machine to IDLE with no dangling state
func (m *InteractionStateMachine) reset() {
	m.phase = PhaseIdle
	m.req = InteractionRequest{}
}

// Cancel explicitly clears the machine; the only preemption path
func (m *InteractionStateMachine) Cancel() {
	if m.phase == PhaseMovingToTarget || m.phase == PhaseReturning {
		m.mover.CancelMove()
	}
	m.reset()
}

// DrainMessages returns and clears messages produced by interactions
func (m *InteractionStateMachine) DrainMessages() []core.Message {
	msgs := m.pending
	m.pending = nil
	return msgs
}

// Update is the machine's per-frame entry point. Transitions are driven
// by the mover and animation callbacks; nothing is polled here, but the
// hook keeps the machine on the coordinator's per-frame cadence.
func (m *InteractionStateMachine) Update(now time.Time, delta time.Duration) []core.Message {
	return m.DrainMessages()
}
