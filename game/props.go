package game

import "github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/event"

// ToggleOne flips one animator, phase is kept
// Out-of-range index is ignored
func (s *Session) ToggleOne(index int) {
	if index < 0 || index >= len(s.props) {
		return
	}
	s.props[index].Active = !s.props[index].Active
	s.emit(event.EventPropToggled, index)
}

// ActivateAll starts every animator from its current phase
func (s *Session) ActivateAll() {
	s.setAll(true)
}

// DeactivateAll freezes every animator at its current phase
func (s *Session) DeactivateAll() {
	s.setAll(false)
}

func (s *Session) setAll(active bool) {
	for i := range s.props {
		s.props[i].Active = active
	}
	s.emit(event.EventPropToggled, event.IndexAll)
}
