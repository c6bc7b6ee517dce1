package audio

import (
	"errors"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/event"
)

// ErrAudioUnavailable is wrapped when the output device cannot be opened
var ErrAudioUnavailable = errors.New("audio unavailable")

// Sink turns game events into sound
// Implementations must tolerate any event type, unknown ones are ignored
type Sink interface {
	Play(t event.EventType)
	Close()
}

// NopSink discards everything, used when audio is disabled or failed to start
type NopSink struct{}

func (NopSink) Play(event.EventType) {}
func (NopSink) Close()               {}
