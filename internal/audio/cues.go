// Package audio synthesizes short sound cues for session events and plays
// them through the beep speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/bounce-shield/internal/core"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer producing a fixed-frequency tone for the
// given duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
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
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with linear fade in and fade out over the given
// total duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain. Zero or negative gain is silent
// since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped tone in a cue.
type note struct {
	freq float64
	dur  time.Duration
	wave WaveType
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(n.freq, n.dur, n.wave, rate)
	return NewEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/2, rate)
}

// sequence plays notes back to back.
func sequence(rate beep.SampleRate, notes ...note) beep.Streamer {
	streams := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		streams[i] = n.streamer(rate)
	}
	return beep.Seq(streams...)
}

// Cue returns the streamer for an event kind, or nil when the kind has no
// sound.
func Cue(kind core.EventKind, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch kind {
	case core.EventPaddleHit:
		s = note{freq: 660, dur: 60 * time.Millisecond, wave: WaveSquare}.streamer(rate)
		volume *= 0.5
	case core.EventPowerUpCollected:
		s = sequence(rate,
			note{freq: 523.25, dur: 70 * time.Millisecond, wave: WaveTriangle},
			note{freq: 659.25, dur: 70 * time.Millisecond, wave: WaveTriangle},
			note{freq: 783.99, dur: 90 * time.Millisecond, wave: WaveTriangle},
		)
	case core.EventHeartAwarded:
		// Fundamental plus octave
		s = beep.Mix(
			newVolume(note{freq: 880, dur: 250 * time.Millisecond, wave: WaveSine}.streamer(rate), 0.7),
			newVolume(note{freq: 1760, dur: 150 * time.Millisecond, wave: WaveSine}.streamer(rate), 0.3),
		)
	case core.EventGameStart:
		s = sequence(rate,
			note{freq: 392, dur: 80 * time.Millisecond, wave: WaveSquare},
			note{freq: 784, dur: 120 * time.Millisecond, wave: WaveSquare},
		)
		volume *= 0.6
	case core.EventGameOver:
		s = sequence(rate,
			note{freq: 392, dur: 150 * time.Millisecond, wave: WaveTriangle},
			note{freq: 311.13, dur: 150 * time.Millisecond, wave: WaveTriangle},
			note{freq: 261.63, dur: 300 * time.Millisecond, wave: WaveTriangle},
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}
