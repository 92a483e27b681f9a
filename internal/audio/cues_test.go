package audio

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/blocks/internal/games/breakout"
)

func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for _, frame := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(frame[0]), math.Abs(frame[1])))
		}
		if !ok {
			return total, peak
		}
	}
	t.Fatal("cue never finished")
	return 0, 0
}

func TestCuesAreShortAndBounded(t *testing.T) {
	tests := []struct {
		name    string
		sound   breakout.Sound
		samples int
	}{
		{"block hit", breakout.SoundBlockHit, sampleRate.N(blockHitLength)},
		{"paddle hit", breakout.SoundPaddleHit, sampleRate.N(paddleClickLength) + sampleRate.N(paddleToneLength)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Cue(tc.sound)
			if err != nil {
				t.Fatalf("Cue() error = %v", err)
			}

			total, peak := drain(t, s)
			if total != tc.samples {
				t.Errorf("streamed %d samples, expected %d", total, tc.samples)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak amplitude = %f, expected (0, 1]", peak)
			}
			if err := s.Err(); err != nil {
				t.Errorf("Err() = %v", err)
			}
		})
	}
}

func TestCueUnknownSound(t *testing.T) {
	if _, err := Cue(breakout.Sound(99)); err == nil {
		t.Error("expected an error for an unknown sound")
	}
}

func TestFadeOutEndsSilent(t *testing.T) {
	s := fadeOut(noise{}, 100)
	buf := make([][2]float64, 150)

	n, ok := s.Stream(buf)
	if n != 100 || !ok {
		t.Fatalf("Stream() = %d, %v; expected 100, true", n, ok)
	}
	if math.Abs(buf[99][0]) > 0.01+1e-9 {
		t.Errorf("last sample should be nearly silent, got %f", buf[99][0])
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("drained fade returned %d, %v", n, ok)
	}
}

func TestPlayerWithoutDeviceIsSilent(t *testing.T) {
	p := NewPlayer(log.New(io.Discard))

	// Not initialised: every call is a no-op.
	p.Play(breakout.SoundBlockHit)
	p.Play(breakout.Sound(99))
	p.Close()

	Nop{}.Play(breakout.SoundPaddleHit)
}
