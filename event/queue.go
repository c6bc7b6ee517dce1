package event

// GameEvent is a fire-and-forget notification for external collaborators
type GameEvent struct {
	Type EventType

	// Index identifies the goal or prop, IndexAll or 0 when unused
	Index int

	// Tick is the session step counter at emission
	Tick int64
}

// Outbox collects events emitted between drains
// Single-threaded: owned by the session, drained by the driver after each call
type Outbox struct {
	events []GameEvent
}

// Push appends an event
func (o *Outbox) Push(ev GameEvent) {
	o.events = append(o.events, ev)
}

// Len returns the number of pending events
func (o *Outbox) Len() int {
	return len(o.events)
}

// Drain returns pending events in emission order and empties the outbox
// Returns nil when nothing is pending
func (o *Outbox) Drain() []GameEvent {
	if len(o.events) == 0 {
		return nil
	}
	out := o.events
	o.events = nil
	return out
}

// Clear drops pending events
func (o *Outbox) Clear() {
	o.events = nil
}
