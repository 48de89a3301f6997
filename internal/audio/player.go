package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bounce-shield/internal/config"
	"github.com/vovakirdan/bounce-shield/internal/core"
)

const defaultSampleRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
	speakerRate beep.SampleRate
)

// initSpeaker opens the output device once per process. Later calls report
// the first result.
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerOnce.Do(func() {
		speakerRate = rate
		speakerErr = speaker.Init(rate, rate.N(100*time.Millisecond))
	})
	return speakerRate, speakerErr
}

// Player turns session events into sound cues. A nil or silent Player
// accepts every call and does nothing.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	silent bool
	played int
}

// NewSilent returns a player that never touches the audio device.
func NewSilent() *Player {
	return &Player{rate: defaultSampleRate, silent: true}
}

// NewPlayer opens the speaker according to cfg. When audio is disabled the
// player is silent and the error is nil. When the device cannot be opened
// the player is silent and the error says why, so callers can log it and
// carry on.
func NewPlayer(cfg config.AudioConfig) (*Player, error) {
	if !cfg.Enabled || cfg.Volume <= 0 {
		return NewSilent(), nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = defaultSampleRate
	}

	actual, err := initSpeaker(rate)
	if err != nil {
		return NewSilent(), fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	return &Player{rate: actual, volume: core.ClampF(cfg.Volume, 0, 1)}, nil
}

// Silent reports whether the player discards all cues.
func (p *Player) Silent() bool {
	if p == nil {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.silent
}

// Mute stops future cues from playing.
func (p *Player) Mute() {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.silent = true
	p.mu.Unlock()
}

// Played returns the number of cues handed to the speaker.
func (p *Player) Played() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Play queues the cue for kind. It returns immediately; mixing happens on
// the speaker goroutine.
func (p *Player) Play(kind core.EventKind) {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.silent {
		p.mu.Unlock()
		return
	}
	cue := Cue(kind, p.rate, p.volume)
	if cue != nil {
		p.played++
	}
	p.mu.Unlock()

	if cue != nil {
		speaker.Play(cue)
	}
}

// PlayEvents plays a cue for each event in order.
func (p *Player) PlayEvents(events []core.Event) {
	for _, ev := range events {
		p.Play(ev.Kind)
	}
}
