package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-chase/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// sweep is a square-ish tone whose pitch slides from one frequency to another.
type sweep struct {
	from, to float64
	total    int
	pos      int
	phase    float64
	rate     beep.SampleRate
}

// Sweep creates a tone gliding from `from` to `to` Hz over d.
// The volume ramps down over the last quarter to avoid clicks.
func Sweep(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		// Soft square: sine pushed through tanh.
		val := math.Tanh(3*math.Sin(2*math.Pi*s.phase)) * 0.8

		if tail := 0.75; progress > tail {
			val *= (1 - progress) / (1 - tail)
		}

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue returns the streamer played for a game event, or nil for silent events.
func Cue(e core.Event) beep.Streamer {
	switch e {
	case core.EventPellet:
		return withVolume(Sweep(520, 660, 45*time.Millisecond, sampleRate), 0.25)
	case core.EventPowerUp:
		return withVolume(beep.Seq(
			Sweep(330, 660, 90*time.Millisecond, sampleRate),
			Sweep(660, 990, 90*time.Millisecond, sampleRate),
		), 0.4)
	case core.EventAdversaryEaten:
		return withVolume(Sweep(1200, 300, 160*time.Millisecond, sampleRate), 0.45)
	case core.EventWon:
		return withVolume(beep.Seq(
			Sweep(523, 523, 120*time.Millisecond, sampleRate),
			Sweep(659, 659, 120*time.Millisecond, sampleRate),
			Sweep(784, 784, 240*time.Millisecond, sampleRate),
		), 0.5)
	case core.EventLost:
		return withVolume(Sweep(440, 110, 600*time.Millisecond, sampleRate), 0.5)
	}
	return nil
}
