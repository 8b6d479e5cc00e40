package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick mazes from the lobby and play a whole session",
	Long: `Start chase in the lobby.

The lobby lists every maze with a preview of its starting board and how
this session has gone on it. Leaving a game (Q, or B when paused or over)
returns to the lobby. Runs are kept in memory until you quit.

Controls:
  Up/Down/j/k  - Choose a maze
  Enter/Space  - Play it
  Tab          - Run log for the highlighted maze
  Q            - Quit (from the lobby or the run log)

Examples:
  chase menu
  chase menu --fps 30 --difficulty easy`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	applyGameFlags()

	sess := openSession()
	defer sess.close()

	// runtimeConfig carries --seed; zero lets every game pick a fresh one.
	if err := tui.RunSession(runtimeConfig(), sess.hooks); err != nil {
		logger.Error("session failed", "err", err)
	}
}
