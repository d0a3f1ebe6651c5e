package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// NoteFreq converts a MIDI note number to Hz in equal temperament around A4 = 440 Hz
func NoteFreq(midi int) float64 {
	if midi < 0 || midi > 127 {
		return 0
	}
	return 440 * math.Exp2(float64(midi-69)/12)
}

// track is a looping step sequence; a zero note is a rest
type track struct {
	Step  time.Duration
	Wave  WaveType
	Lead  []int
	Bass  []int
	Drive float64
}

var tracks = [musicCount]track{
	MusicMenu: {
		Step: 250 * ms, Wave: WaveSine, Drive: 0.3,
		Lead: []int{69, 0, 72, 0, 76, 0, 72, 0, 67, 0, 71, 0, 74, 0, 71, 0},
		Bass: []int{45, 45, 45, 45, 43, 43, 43, 43},
	},
	MusicStarMap: {
		Step: 400 * ms, Wave: WaveSine, Drive: 0.25,
		Lead: []int{64, 67, 71, 0, 62, 66, 69, 0},
		Bass: []int{40, 0, 38, 0},
	},
	MusicCombat: {
		Step: 125 * ms, Wave: WaveSquare, Drive: 0.2,
		Lead: []int{57, 57, 60, 57, 62, 57, 64, 62, 57, 57, 60, 57, 55, 57, 59, 60},
		Bass: []int{33, 33, 33, 33, 36, 36, 31, 31},
	},
	MusicStorm: {
		Step: 150 * ms, Wave: WaveSaw, Drive: 0.18,
		Lead: []int{62, 0, 65, 0, 69, 68, 0, 65, 62, 0, 60, 0, 61, 0, 0, 0},
		Bass: []int{38, 38, 41, 41, 37, 37, 36, 36},
	},
	MusicMission: {
		Step: 140 * ms, Wave: WaveSquare, Drive: 0.2,
		Lead: []int{64, 64, 67, 64, 69, 67, 64, 62, 60, 62, 64, 0, 64, 62, 60, 59},
		Bass: []int{40, 40, 43, 43, 45, 45, 43, 43},
	},
	MusicVictory: {
		Step: 200 * ms, Wave: WaveSquare, Drive: 0.25,
		Lead: []int{72, 76, 79, 84, 0, 79, 84, 0},
		Bass: []int{48, 48, 55, 55},
	},
	MusicGameOver: {
		Step: 450 * ms, Wave: WaveSine, Drive: 0.3,
		Lead: []int{64, 63, 62, 61, 60, 0, 0, 0},
		Bass: []int{40, 39, 38, 37},
	},
}

// voice renders one pass of a note line; each note spans stepsPer steps
func voice(notes []int, stepsPer int, t track, rate beep.SampleRate) beep.Streamer {
	dur := t.Step * time.Duration(stepsPer)
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n == 0 {
			parts = append(parts, beep.Silence(rate.N(dur)))
			continue
		}
		f := NoteFreq(n)
		parts = append(parts, tone{From: f, To: f, Dur: dur, Wave: t.Wave, Attack: 5 * ms, Release: dur / 3, Gain: 1}.streamer(rate))
	}
	return beep.Seq(parts...)
}

// pass renders one full loop of the track with lead and bass mixed
func (t track) pass(rate beep.SampleRate) beep.Streamer {
	if len(t.Lead) == 0 {
		return nil
	}
	lead := newVolume(voice(t.Lead, 1, t, rate), t.Drive)
	if len(t.Bass) == 0 {
		return lead
	}
	stepsPer := len(t.Lead) / len(t.Bass)
	if stepsPer < 1 {
		stepsPer = 1
	}
	bass := newVolume(voice(t.Bass, stepsPer, track{Step: t.Step, Wave: WaveSine}, rate), t.Drive*0.8)
	return beep.Mix(lead, bass)
}

// NewMusic builds an endless streamer for a track at the given volume, nil for MusicNone
func NewMusic(id MusicID, vol float64, rate beep.SampleRate) beep.Streamer {
	if id == MusicNone || id >= musicCount {
		return nil
	}
	t := tracks[id]
	return newVolume(beep.Iterate(func() beep.Streamer {
		return t.pass(rate)
	}), vol)
}
