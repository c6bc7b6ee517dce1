package event

// EventType represents the kind of notification emitted by the session
type EventType int

const (
	// EventGoalCollected signals a goal entered pickup range
	// Trigger: Session.Step goal collection | Payload: goal index
	EventGoalCollected EventType = iota

	// EventLowTimeWarning signals the countdown crossed the low-time threshold
	// Trigger: Session.Step timer, at most once per session | Payload: none
	EventLowTimeWarning

	// EventPropToggled signals a prop animator changed activation
	// Trigger: ToggleOne, ActivateAll, DeactivateAll | Payload: prop index, -1 for all
	EventPropToggled

	// EventSessionWon signals the transition to the won outcome
	// Trigger: Session.Step | Payload: none
	EventSessionWon

	// EventSessionLost signals the transition to the lost outcome
	// Trigger: Session.Step timer expiry | Payload: none
	EventSessionLost

	// EventSessionReset signals a fresh session started
	// Trigger: Session.Reset | Payload: none
	EventSessionReset
)

// IndexAll marks an event that applies to every prop
const IndexAll = -1

func (t EventType) String() string {
	switch t {
	case EventGoalCollected:
		return "goal_collected"
	case EventLowTimeWarning:
		return "low_time_warning"
	case EventPropToggled:
		return "prop_toggled"
	case EventSessionWon:
		return "session_won"
	case EventSessionLost:
		return "session_lost"
	case EventSessionReset:
		return "session_reset"
	default:
		return "unknown"
	}
}
