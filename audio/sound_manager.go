package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/event"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays game events through the beep speaker
// Every method is a silent no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ambient     *beep.Ctrl
	volume      float64
	initialized bool
	log         zerolog.Logger
}

// NewSoundManager creates a sound manager at master volume (0..1)
func NewSoundManager(volume float64, log zerolog.Logger) *SoundManager {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		log:    log,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info().Int("sample_rate", int(sampleRate)).Float64("volume", sm.volume).Msg("audio initialized")
	return nil
}

// Play maps one game event to its sound
func (sm *SoundManager) Play(t event.EventType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	switch t {
	case event.EventSessionReset:
		sm.startAmbientLocked()
		return
	case event.EventSessionWon, event.EventSessionLost:
		sm.stopAmbientLocked()
	}

	s := effectFor(t, sampleRate, sm.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.stopAmbientLocked()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

func (sm *SoundManager) startAmbientLocked() {
	if sm.ambient != nil && !sm.ambient.Paused {
		return
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(NewAmbientGenerator(sampleRate), sm.volume)}

	speaker.Lock()
	sm.ambient = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

func (sm *SoundManager) stopAmbientLocked() {
	if sm.ambient == nil {
		return
	}
	speaker.Lock()
	sm.ambient.Paused = true
	sm.ambient.Streamer = nil
	speaker.Unlock()
	sm.ambient = nil
}

// effectFor returns the finite effect for an event, nil when the event has none
func effectFor(t event.EventType, rate beep.SampleRate, volume float64) beep.Streamer {
	switch t {
	case event.EventGoalCollected:
		return CreateBubbleSound(rate, volume)
	case event.EventPropToggled:
		return CreateServoSound(rate, volume)
	case event.EventLowTimeWarning:
		return CreateBuzzerSound(rate, volume)
	case event.EventSessionWon:
		return CreateChimeSound(rate, volume)
	case event.EventSessionLost:
		return CreateDroneSound(rate, volume)
	default:
		return nil
	}
}
