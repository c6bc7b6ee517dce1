package game

import (
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/event"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/parameter"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/scene"
)

// Session is the aggregate root of one play-through
// Owns every piece of mutable game state; lifecycle is New -> Step* -> (Reset | discard)
// Not safe for concurrent use, hand Snapshot copies to other goroutines
type Session struct {
	catalog *scene.Catalog

	player Player
	goals  []Goal
	props  []PropAnimator

	remaining float64
	outcome   Outcome
	intent    InputIntent

	goalSpin  float64
	wallPhase float64

	lowTimeWarned bool
	tick          int64

	outbox event.Outbox
}

// New creates a session over the catalog and resets it into Playing
// A nil catalog selects the reference room
func New(c *scene.Catalog) *Session {
	if c == nil {
		c = scene.Default()
	} else {
		c = c.Clone()
	}
	s := &Session{catalog: c}
	s.Reset()
	return s
}

// Reset restores the full initial state and emits EventSessionReset
// Pending undrained events are discarded
func (s *Session) Reset() {
	s.player = Player{Position: s.catalog.Spawn.Vec()}

	s.goals = make([]Goal, len(s.catalog.Goals))
	for i, g := range s.catalog.Goals {
		s.goals[i] = Goal{Position: g.Vec()}
	}

	s.props = make([]PropAnimator, len(s.catalog.Props))
	for i, p := range s.catalog.Props {
		s.props[i] = PropAnimator{Speed: p.Speed}
	}

	s.remaining = parameter.TimeLimit
	s.outcome = OutcomePlaying
	s.intent = InputIntent{}
	s.goalSpin = 0
	s.wallPhase = 0
	s.lowTimeWarned = false
	s.tick = 0

	s.outbox.Clear()
	s.emit(event.EventSessionReset, 0)
}

func (s *Session) emit(t event.EventType, index int) {
	s.outbox.Push(event.GameEvent{Type: t, Index: index, Tick: s.tick})
}

// Drain returns events emitted since the last drain
func (s *Session) Drain() []event.GameEvent {
	return s.outbox.Drain()
}

// Player returns the avatar state
func (s *Session) Player() Player {
	return s.player
}

// Goals returns a copy of the goal list
func (s *Session) Goals() []Goal {
	out := make([]Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Prop returns the animator at index, ok is false when out of range
func (s *Session) Prop(index int) (PropAnimator, bool) {
	if index < 0 || index >= len(s.props) {
		return PropAnimator{}, false
	}
	return s.props[index], true
}

// PropCount returns the number of animators
func (s *Session) PropCount() int {
	return len(s.props)
}

// Remaining returns the countdown in seconds
func (s *Session) Remaining() float64 {
	return s.remaining
}

// Outcome returns the current classification
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Intent returns the intent consumed by the last advancing step
func (s *Session) Intent() InputIntent {
	return s.intent
}

// Tick returns the number of advancing steps since reset
func (s *Session) Tick() int64 {
	return s.tick
}

// GoalsRemaining counts uncollected goals
func (s *Session) GoalsRemaining() int {
	n := 0
	for _, g := range s.goals {
		if !g.Collected {
			n++
		}
	}
	return n
}

// Snapshot copies the state for presentation
func (s *Session) Snapshot() Snapshot {
	props := make([]PropView, len(s.props))
	for i, a := range s.props {
		placed := s.catalog.Props[i]
		props[i] = PropView{
			Kind:         placed.Kind,
			Position:     placed.Position.Vec(),
			PropAnimator: a,
		}
	}

	return Snapshot{
		Player:         s.player,
		Goals:          s.Goals(),
		Props:          props,
		Remaining:      s.remaining,
		Outcome:        s.outcome,
		GoalsRemaining: s.GoalsRemaining(),
		Intent:         s.intent,
		GoalSpin:       s.goalSpin,
		WallPhase:      s.wallPhase,
		Tick:           s.tick,
	}
}
