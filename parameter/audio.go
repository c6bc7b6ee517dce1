package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Effect Durations
const (
	BubbleSoundDuration = 450 * time.Millisecond
	ServoSoundDuration  = 350 * time.Millisecond
	BuzzerSoundDuration = 900 * time.Millisecond
	ChimeSoundDuration  = 1200 * time.Millisecond
	DroneSoundDuration  = 1500 * time.Millisecond
)

// Effect Envelopes
const (
	// EffectFadeIn removes the click at the start of a tone
	EffectFadeIn = 5 * time.Millisecond

	// ChimeNoteStagger is the delay between successive win arpeggio notes
	ChimeNoteStagger = ChimeSoundDuration / 4

	DroneFadeIn = 20 * time.Millisecond

	// DroneFadeOut covers the back half of the loss drone
	DroneFadeOut = DroneSoundDuration / 2
)

// Ambient Track
const (
	// AmbientCycle is the period of the looping ambient pad
	AmbientCycle = 4 * time.Second

	// AmbientGain keeps the pad under the effects
	AmbientGain = 0.08
)
