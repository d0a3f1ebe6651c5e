package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/drillerjoe/space/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave with an optional linear frequency sweep
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		freq:     from,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	if duration > 0 {
		o.sweep = (to - from) / duration.Seconds()
	}
	if wave == WaveNoise {
		o.noise = vmath.NewFastRand(uint64(from*1000) + 1)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if rem := e.totalSamples - e.position; len(samples) > rem {
		samples = samples[:rem]
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one shaped note of a sound effect
type tone struct {
	From, To float64
	Dur      time.Duration
	Wave     WaveType
	Attack   time.Duration
	Release  time.Duration
	Gain     float64
}

func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(t.From, t.To, t.Dur, t.Wave, rate)
	return newVolume(NewEnvelope(osc, t.Dur, t.Attack, t.Release, rate), t.Gain)
}

const ms = time.Millisecond

// sfxRecipes lists the tones played in sequence for each effect
var sfxRecipes = [soundCount][]tone{
	SoundLaser:          {{From: 1400, To: 400, Dur: 90 * ms, Wave: WaveSquare, Attack: 2 * ms, Release: 40 * ms, Gain: 0.35}},
	SoundEnemyShot:      {{From: 300, To: 180, Dur: 120 * ms, Wave: WaveSaw, Attack: 5 * ms, Release: 60 * ms, Gain: 0.3}},
	SoundExplosion:      {{From: 1, To: 1, Dur: 450 * ms, Wave: WaveNoise, Attack: 2 * ms, Release: 380 * ms, Gain: 0.5}},
	SoundPlayerHit:      {{From: 160, To: 60, Dur: 250 * ms, Wave: WaveSaw, Attack: 2 * ms, Release: 150 * ms, Gain: 0.5}},
	SoundAlert:          {{From: 880, To: 880, Dur: 150 * ms, Wave: WaveSquare, Attack: 5 * ms, Release: 30 * ms, Gain: 0.3}, {From: 660, To: 660, Dur: 150 * ms, Wave: WaveSquare, Attack: 5 * ms, Release: 30 * ms, Gain: 0.3}, {From: 880, To: 880, Dur: 150 * ms, Wave: WaveSquare, Attack: 5 * ms, Release: 30 * ms, Gain: 0.3}},
	SoundAsteroidBreak:  {{From: 2, To: 2, Dur: 220 * ms, Wave: WaveNoise, Attack: 2 * ms, Release: 180 * ms, Gain: 0.4}},
	SoundUFOShot:        {{From: 600, To: 1200, Dur: 100 * ms, Wave: WaveSine, Attack: 2 * ms, Release: 50 * ms, Gain: 0.3}},
	SoundMissileWarning: {{From: 1000, To: 1000, Dur: 80 * ms, Wave: WaveSquare, Attack: 2 * ms, Release: 20 * ms, Gain: 0.25}, {From: 1000, To: 1000, Dur: 80 * ms, Wave: WaveSquare, Attack: 2 * ms, Release: 20 * ms, Gain: 0.25}},
	SoundMenuMove:       {{From: 660, To: 660, Dur: 40 * ms, Wave: WaveSine, Attack: 2 * ms, Release: 20 * ms, Gain: 0.25}},
	SoundMenuSelect:     {{From: 660, To: 660, Dur: 60 * ms, Wave: WaveSine, Attack: 2 * ms, Release: 20 * ms, Gain: 0.3}, {From: 990, To: 990, Dur: 90 * ms, Wave: WaveSine, Attack: 2 * ms, Release: 50 * ms, Gain: 0.3}},
	SoundWarp:           {{From: 100, To: 1600, Dur: 600 * ms, Wave: WaveSaw, Attack: 50 * ms, Release: 200 * ms, Gain: 0.3}},
	SoundHeal:           {{From: 523.25, To: 523.25, Dur: 100 * ms, Wave: WaveSine, Attack: 5 * ms, Release: 40 * ms, Gain: 0.3}, {From: 783.99, To: 783.99, Dur: 160 * ms, Wave: WaveSine, Attack: 5 * ms, Release: 90 * ms, Gain: 0.3}},
	SoundVictory:        {{From: 523.25, To: 523.25, Dur: 120 * ms, Wave: WaveSquare, Attack: 5 * ms, Release: 40 * ms, Gain: 0.25}, {From: 659.25, To: 659.25, Dur: 120 * ms, Wave: WaveSquare, Attack: 5 * ms, Release: 40 * ms, Gain: 0.25}, {From: 783.99, To: 783.99, Dur: 300 * ms, Wave: WaveSquare, Attack: 5 * ms, Release: 200 * ms, Gain: 0.25}},
	SoundOrbit:          {{From: 220, To: 110, Dur: 700 * ms, Wave: WaveSine, Attack: 80 * ms, Release: 300 * ms, Gain: 0.3}, {From: 330, To: 165, Dur: 500 * ms, Wave: WaveSine, Attack: 40 * ms, Release: 300 * ms, Gain: 0.25}},
}

// NewSound builds the streamer for a sound effect at the given volume, nil for an unknown id
func NewSound(id SoundID, vol float64, rate beep.SampleRate) beep.Streamer {
	if id >= soundCount {
		return nil
	}
	recipe := sfxRecipes[id]
	parts := make([]beep.Streamer, len(recipe))
	for i, t := range recipe {
		parts[i] = t.streamer(rate)
	}
	return newVolume(beep.Seq(parts...), vol)
}
