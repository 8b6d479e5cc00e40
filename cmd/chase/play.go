package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/platform/tui"
	"github.com/vovakirdan/tui-chase/internal/registry"
	"github.com/vovakirdan/tui-chase/internal/replay"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMaze       string
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a maze",
	Long: `Start playing the specified maze.

Controls:
  Arrows/WASD - Move (the last pressed direction wins)
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot to ~/.chase/screenshots
  Q/Ctrl+C    - Quit

Difficulty options (monster speed):
  easy   - Start slow, speed up as you score
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  chase play chase
  chase play chase_tiny --difficulty hard
  chase play chase --config ./my-chase.yaml
  chase play chase --maze ./my-maze.yaml
  chase play chase --seed 42 --record run.chase`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Path to a maze definition YAML")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay journal to this file")
}

// applyGameFlags hands the per-game flags to the chase package before games are created.
func applyGameFlags() {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			fail("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	chase.SetConfigPath(flagConfig)
	chase.SetDifficultyPreset(flagDifficulty)
	chase.SetMazePath(flagMaze)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chase list' to see available games.")
		os.Exit(1)
	}
	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	cfg := runtimeConfig()

	// A dry reset surfaces maze and config errors before the screen switches.
	cg, _ := game.(*chase.Game)
	if cg != nil {
		cg.Reset(cfg)
		if err := cg.Err(); err != nil {
			fail("%v", err)
		}
	}

	sess := openSession()
	defer sess.close()

	hooks := sess.hooks
	if flagRecord != "" && cg != nil {
		hooks.Recorder = replay.NewRecorder(cg.ID(), cg.Definition(), cg.Config())
	}

	final, runErr := tui.Run(game, cfg, hooks)
	if runErr != nil {
		sess.close()
		fail("running game: %v", runErr)
	}

	if hooks.Recorder != nil {
		saveJournal(hooks.Recorder, cg)
	}

	state := final.State()
	logger.Info("game over", "game", gameID, "score", state.Score, "won", state.Won, "ticks", state.Ticks)
}

func saveJournal(rec *replay.Recorder, g *chase.Game) {
	final, err := replay.FinalOf(g)
	if err != nil {
		logger.Warn("replay not saved", "err", err)
		return
	}
	j := rec.Finish(final)
	if err := j.Save(flagRecord); err != nil {
		logger.Warn("replay not saved", "err", err)
		return
	}
	logger.Info("replay saved", "path", flagRecord, "frames", len(j.Frames), "hash", final.Hash)
}
