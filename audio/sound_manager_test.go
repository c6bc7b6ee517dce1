package audio

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/event"
)

var allEvents = []event.EventType{
	event.EventSessionReset,
	event.EventGoalCollected,
	event.EventPropToggled,
	event.EventLowTimeWarning,
	event.EventSessionWon,
	event.EventSessionLost,
	event.EventType(99),
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.8, zerolog.Nop())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for _, e := range allEvents {
		sm.Play(e)
	}
	sm.Close()
}

// TestSoundManagerInitialization verifies the full event cycle when a device exists
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(0.5, zerolog.Nop())

	err := sm.Initialize()
	if err != nil {
		if !errors.Is(err, ErrAudioUnavailable) {
			t.Errorf("Expected ErrAudioUnavailable wrap, got %v", err)
		}
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	for _, e := range allEvents {
		sm.Play(e)
	}
	sm.Close()

	// After close everything is a no-op again
	sm.Play(event.EventGoalCollected)
	sm.Close()
}

// TestSoundManagerVolumeClamp keeps master volume in range
func TestSoundManagerVolumeClamp(t *testing.T) {
	if v := NewSoundManager(3, zerolog.Nop()).volume; v != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", v)
	}
	if v := NewSoundManager(-1, zerolog.Nop()).volume; v != 0 {
		t.Errorf("Expected volume clamped to 0, got %v", v)
	}
}

func TestSinkImplementations(t *testing.T) {
	var _ Sink = NopSink{}
	var _ Sink = &SoundManager{}

	var s Sink = NopSink{}
	for _, e := range allEvents {
		s.Play(e)
	}
	s.Close()
}
