package engine

import (
	"github.com/rs/zerolog"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/event"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/game"
)

// Sink consumes game events after every session call
type Sink interface {
	Play(t event.EventType)
}

// Driver runs one session against a clock and fans its events out
// Owned by the main loop goroutine
type Driver struct {
	session *game.Session
	clock   *GameClock
	sink    Sink
	log     zerolog.Logger
}

// NewDriver wires a session to its clock and sink
// Events already pending on the session, such as the construction reset, are delivered on the first flush
func NewDriver(s *game.Session, clock *GameClock, sink Sink, log zerolog.Logger) *Driver {
	return &Driver{
		session: s,
		clock:   clock,
		sink:    sink,
		log:     log,
	}
}

// Frame advances the session to nowMillis with the held intent
func (d *Driver) Frame(nowMillis int64, in game.InputIntent) game.Snapshot {
	dt := d.clock.Tick(nowMillis)
	d.session.Step(dt, in)
	d.flush()
	return d.session.Snapshot()
}

// Reset starts a new session and rebases the clock
func (d *Driver) Reset(nowMillis int64) {
	d.session.Reset()
	d.clock.Start(nowMillis)
	d.log.Info().Int("goals", d.session.GoalsRemaining()).Float64("time_limit", d.session.Remaining()).Msg("session reset")
	d.flush()
}

// ToggleProp flips one prop animator
func (d *Driver) ToggleProp(index int) {
	d.session.ToggleOne(index)
	d.flush()
}

// ActivateAllProps starts every prop animator
func (d *Driver) ActivateAllProps() {
	d.session.ActivateAll()
	d.flush()
}

// DeactivateAllProps freezes every prop animator
func (d *Driver) DeactivateAllProps() {
	d.session.DeactivateAll()
	d.flush()
}

// Snapshot returns the current session copy without stepping
func (d *Driver) Snapshot() game.Snapshot {
	return d.session.Snapshot()
}

// Flush delivers pending events, used once after construction
func (d *Driver) Flush() {
	d.flush()
}

func (d *Driver) flush() {
	for _, ev := range d.session.Drain() {
		switch ev.Type {
		case event.EventSessionWon, event.EventSessionLost:
			d.log.Info().
				Str("event", ev.Type.String()).
				Int64("tick", ev.Tick).
				Int("goals_left", d.session.GoalsRemaining()).
				Float64("remaining", d.session.Remaining()).
				Msg("session finished")
		default:
			d.log.Debug().
				Str("event", ev.Type.String()).
				Int("index", ev.Index).
				Int64("tick", ev.Tick).
				Msg("game event")
		}
		if d.sink != nil {
			d.sink.Play(ev.Type)
		}
	}
}
