// Package audio plays the short sound cues that acknowledge player actions.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue names a sound effect.
type Cue int

const (
	CuePickup Cue = iota
	CueCycle
	CueDrop
	CueMenu
)

func (c Cue) String() string {
	switch c {
	case CuePickup:
		return "pickup"
	case CueCycle:
		return "cycle"
	case CueDrop:
		return "drop"
	case CueMenu:
		return "menu"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Player mixes cues into the speaker behind a master volume. Until Init
// succeeds it stays silent, which is how SSH sessions and tests run.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// New returns a silent Player with the given master volume.
func New(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the audio device and starts the mixer. The speaker is process
// wide, so only one Player per process should call it.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// SetVolume changes the master volume for cues played from now on.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = v
}

// Volume returns the master volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Enabled reports whether cues reach a speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues cue c. It is a no-op while the Player is silent or muted.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.volume <= 0 {
		return
	}
	s := cueStreamer(c, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}
