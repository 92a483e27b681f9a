package audio

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/blocks/internal/games/breakout"
)

const (
	blockHitFreq   = 1320.0
	blockHitLength = 60 * time.Millisecond

	paddleClickLength = 8 * time.Millisecond
	paddleToneFreq    = 440.0
	paddleToneLength  = 45 * time.Millisecond
)

// Cue builds a fresh streamer for a sound.
func Cue(s breakout.Sound) (beep.Streamer, error) {
	switch s {
	case breakout.SoundBlockHit:
		tone, err := generators.SineTone(sampleRate, blockHitFreq)
		if err != nil {
			return nil, fmt.Errorf("audio: block hit tone: %w", err)
		}
		return quieter(fadeOut(tone, sampleRate.N(blockHitLength))), nil

	case breakout.SoundPaddleHit:
		tone, err := generators.SineTone(sampleRate, paddleToneFreq)
		if err != nil {
			return nil, fmt.Errorf("audio: paddle tone: %w", err)
		}
		return beep.Seq(
			fadeOut(&noise{}, sampleRate.N(paddleClickLength)),
			quieter(fadeOut(tone, sampleRate.N(paddleToneLength))),
		), nil

	default:
		return nil, fmt.Errorf("audio: unknown sound %v", s)
	}
}

func quieter(s beep.Streamer) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: -1}
}

// fade plays the first total samples of a streamer with a linear fade-out.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func fadeOut(s beep.Streamer, samples int) beep.Streamer {
	return &fade{streamer: s, total: samples}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := f.total - f.pos
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(f.pos)/float64(f.total)
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok || n > 0
}

func (f *fade) Err() error { return f.streamer.Err() }

// noise is an endless white noise source.
type noise struct{}

func (noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := rand.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (noise) Err() error { return nil }
