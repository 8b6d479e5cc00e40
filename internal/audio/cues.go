// Package audio plays short synthesized sound cues for game events.
// Sound is opt-in; without an initialized speaker every call is a no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Cues reacts to game events.
type Cues interface {
	Play(events ...core.Event)
}

// Silent is a Cues that does nothing.
type Silent struct{}

// Play implements Cues.
func (Silent) Play(...core.Event) {}

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates an uninitialized speaker.
func NewSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

// Init opens the audio device. Calling it twice is a no-op.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes in the cue for each event.
func (s *Speaker) Play(events ...core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	for _, e := range events {
		cue := Cue(e)
		if cue == nil {
			continue
		}
		speaker.Lock()
		s.mixer.Add(cue)
		speaker.Unlock()
	}
}

// Close silences everything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Open returns a Speaker when enabled and the device opens, Silent otherwise.
// The error is returned so callers can log why sound is off.
func Open(enabled bool) (Cues, func(), error) {
	if !enabled {
		return Silent{}, func() {}, nil
	}
	s := NewSpeaker()
	if err := s.Init(); err != nil {
		return Silent{}, func() {}, err
	}
	return s, s.Close, nil
}
