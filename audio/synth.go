package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/parameter"
)

// WaveType selects the shape sampled by waveAt
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// waveAt samples a unit wave at phase in [0, 1)
func waveAt(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// fadeGain is the linear fade in/out gain at sample pos of a total-sample sound
// Overlapping fades take the quieter of the two
func fadeGain(pos, total, fadeIn, fadeOut int) float64 {
	g := 1.0
	if fadeIn > 0 && pos < fadeIn {
		g = float64(pos) / float64(fadeIn)
	}
	if left := total - pos; fadeOut > 0 && left < fadeOut {
		g = math.Min(g, math.Max(0, float64(left)/float64(fadeOut)))
	}
	return g
}

// tone is a finite periodic wave with its own fades
type tone struct {
	wave    WaveType
	step    float64
	phase   float64
	pos     int
	total   int
	fadeIn  int
	fadeOut int
}

// NewTone creates a wave of length d, fades of zero leave it unshaped
func NewTone(freq float64, wave WaveType, d, fadeIn, fadeOut time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:    wave,
		step:    freq / float64(rate),
		total:   rate.N(d),
		fadeIn:  rate.N(fadeIn),
		fadeOut: rate.N(fadeOut),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && t.pos < t.total {
		v := waveAt(t.wave, t.phase) * fadeGain(t.pos, t.total, t.fadeIn, t.fadeOut)
		samples[n] = [2]float64{v, v}

		_, t.phase = math.Modf(t.phase + t.step)
		t.pos++
		n++
	}
	return n, n > 0
}

func (t *tone) Err() error { return nil }

// fade bounds any streamer to d and applies fadeGain over it
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	fadeIn   int
	fadeOut  int
}

// NewFade shapes s, ending it after d
func NewFade(s beep.Streamer, d, fadeIn, fadeOut time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, total: rate.N(d), fadeIn: rate.N(fadeIn), fadeOut: rate.N(fadeOut)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	if left := f.total - f.pos; left < len(samples) {
		samples = samples[:left]
	}
	if len(samples) == 0 {
		return 0, false
	}

	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := fadeGain(f.pos, f.total, f.fadeIn, f.fadeOut)
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume wraps s in a linear gain, zero or below is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// BubbleGenerator emits three rising pops
type BubbleGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewBubbleGenerator creates a finite bubble burst
func NewBubbleGenerator(sr beep.SampleRate) *BubbleGenerator {
	return &BubbleGenerator{sr: sr, samples: sr.N(parameter.BubbleSoundDuration)}
}

func (g *BubbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	pop := g.samples / 3
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}

		idx := g.pos / pop
		local := float64(g.pos%pop) / float64(g.sr)

		// Each pop sweeps up faster than the last
		base := 320.0 + 140*float64(idx)
		freq := base * (1 + 6*local)
		sample := 0.35 * math.Exp(-local*30) * math.Sin(2*math.Pi*freq*local)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BubbleGenerator) Err() error { return nil }

// ServoGenerator is a sawtooth whine with fast tremolo
type ServoGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewServoGenerator creates a finite servo sound
func NewServoGenerator(sr beep.SampleRate) *ServoGenerator {
	return &ServoGenerator{sr: sr, samples: sr.N(parameter.ServoSoundDuration)}
}

func (g *ServoGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}

		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.samples)

		freq := 180 + 90*progress
		phase := freq * t
		saw := 2 * (phase - math.Floor(phase) - 0.5)
		tremolo := 0.5 + 0.5*math.Sin(2*math.Pi*18*t)
		fade := 1 - progress

		sample := 0.18 * saw * tremolo * fade

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ServoGenerator) Err() error { return nil }

// BuzzGenerator generates an endless low-pitch buzz, bound it with beep.Take
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		// Two pulses per second
		gate := 0.0
		if math.Mod(t, 0.5) < 0.3 {
			gate = 1.0
		}
		attack := math.Min(t/0.02, 1.0)
		sample *= gate * attack * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error { return nil }

// AmbientGenerator is an endless detuned pad swelling once per cycle
type AmbientGenerator struct {
	sr    beep.SampleRate
	pos   int
	cycle int
}

// NewAmbientGenerator creates the background pad
func NewAmbientGenerator(sr beep.SampleRate) *AmbientGenerator {
	return &AmbientGenerator{sr: sr, cycle: sr.N(parameter.AmbientCycle)}
}

func (g *AmbientGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		cyclePos := float64(g.pos%g.cycle) / float64(g.cycle)

		swell := 0.6 + 0.4*math.Sin(2*math.Pi*cyclePos)
		left := math.Sin(2*math.Pi*73.4*t) + 0.5*math.Sin(2*math.Pi*110*t)
		right := math.Sin(2*math.Pi*73.9*t) + 0.5*math.Sin(2*math.Pi*110.6*t)

		samples[i][0] = parameter.AmbientGain * swell * left
		samples[i][1] = parameter.AmbientGain * swell * right
		g.pos++
	}
	return len(samples), true
}

func (g *AmbientGenerator) Err() error { return nil }

// Sound builders, each returns a finite streamer at master volume

// CreateBubbleSound plays on goal pickup
func CreateBubbleSound(rate beep.SampleRate, master float64) beep.Streamer {
	return newVolume(NewBubbleGenerator(rate), master)
}

// CreateServoSound plays on prop toggles
func CreateServoSound(rate beep.SampleRate, master float64) beep.Streamer {
	return newVolume(NewServoGenerator(rate), master)
}

// CreateBuzzerSound plays once when time runs low
func CreateBuzzerSound(rate beep.SampleRate, master float64) beep.Streamer {
	return newVolume(beep.Take(rate.N(parameter.BuzzerSoundDuration), NewBuzzGenerator(rate, 140)), master)
}

// CreateChimeSound is a rising major arpeggio for a win
func CreateChimeSound(rate beep.SampleRate, master float64) beep.Streamer {
	d := parameter.ChimeSoundDuration

	note := func(freq float64, delay time.Duration) beep.Streamer {
		length := d - delay
		var src beep.Streamer
		if sine, err := generators.SineTone(rate, freq); err == nil {
			src = sine
		} else {
			src = NewTone(freq, WaveSine, length, 0, 0, rate)
		}
		shaped := NewFade(src, length, parameter.EffectFadeIn, length-parameter.EffectFadeIn, rate)
		return beep.Seq(beep.Silence(rate.N(delay)), shaped)
	}

	step := parameter.ChimeNoteStagger
	mixed := beep.Mix(
		newVolume(note(523.25, 0), 0.3),
		newVolume(note(659.25, step), 0.3),
		newVolume(note(783.99, 2*step), 0.3),
	)
	return newVolume(beep.Take(rate.N(d), mixed), master)
}

// CreateDroneSound is a falling low saw for a loss
func CreateDroneSound(rate beep.SampleRate, master float64) beep.Streamer {
	d := parameter.DroneSoundDuration
	low := NewTone(55, WaveSaw, d, parameter.DroneFadeIn, parameter.DroneFadeOut, rate)
	sub := NewTone(41.2, WaveSine, d, parameter.DroneFadeIn, parameter.DroneFadeOut, rate)

	mixed := beep.Mix(newVolume(low, 0.25), newVolume(sub, 0.35))
	return newVolume(beep.Take(rate.N(d), mixed), master)
}
