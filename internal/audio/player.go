// Package audio plays the game's sound cues through gopxl/beep.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/blocks/internal/games/breakout"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferTime = 50 * time.Millisecond
)

// Player plays cues on the default output device. Play never fails: cues
// that cannot be produced are logged and dropped.
type Player struct {
	mu          sync.Mutex
	logger      *log.Logger
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. It stays silent until Init succeeds.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the output device and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferTime)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts a cue and returns immediately.
func (p *Player) Play(s breakout.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer, err := Cue(s)
	if err != nil {
		p.logger.Warn("cannot play sound", "sound", s, "err", err)
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Close drops any cue still playing. The player is silent afterwards.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Nop discards every cue. SSH sessions use it.
type Nop struct{}

// Play does nothing.
func (Nop) Play(breakout.Sound) {}
