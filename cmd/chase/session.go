package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chase/internal/audio"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/platform/tui"
	"github.com/vovakirdan/tui-chase/internal/storage"
)

// runtimeConfig builds the runtime from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// session holds the side channels shared by every game of one process.
type session struct {
	hooks   tui.Hooks
	cleanup []func()
}

// openSession prepares the scoreboard, sound and debug log.
// Failures here never stop the game; they are logged and the hook is left out.
func openSession() *session {
	s := &session{}

	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("scoreboard unavailable", "err", err)
	} else {
		s.hooks.Store = store
		s.cleanup = append(s.cleanup, func() { store.Close() })
	}

	cues, closeCues, err := audio.Open(flagSound)
	if err != nil {
		logger.Warn("sound unavailable", "err", err)
	}
	s.hooks.Cues = cues
	s.cleanup = append(s.cleanup, closeCues)

	if env.DebugLog != "" {
		f, err := os.OpenFile(env.DebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			logger.Warn("debug log unavailable", "path", env.DebugLog, "err", err)
		} else {
			s.hooks.Log = log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Prefix:          "chase",
				Level:           log.DebugLevel,
			})
			s.cleanup = append(s.cleanup, func() { f.Close() })
		}
	}

	if user := os.Getenv("USER"); user != "" {
		s.hooks.Player = user
	}
	return s
}

func (s *session) close() {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
