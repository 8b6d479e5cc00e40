// chase is a maze chase game for the terminal.
//
// Usage:
//
//	chase list              - List available mazes
//	chase play <game>       - Play a maze
//	chase menu              - Pick mazes interactively
//	chase replay <file>     - Re-simulate a recorded session
//	chase inspect <game>    - Show maze statistics
//	chase serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--sound         - Enable sound cues
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-chase/internal/games/chase"
)

var (
	// Global flags
	flagFPS   int
	flagSeed  int64
	flagSound bool

	env    config.Env
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chase",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase",
	Short: "Chase - eat every pellet before the monsters catch you",
	Long: `Chase is a maze game for the terminal. Steer through the maze, eat every
pellet and avoid the monsters. Power-ups make monsters edible for a while.

Available commands:
  list     - Show all available mazes
  play     - Play a specific maze directly
  menu     - Interactive maze picker menu
  replay   - Re-simulate a recorded session
  inspect  - Show maze statistics and layout
  serve    - Start SSH server for remote play

Environment (also read from ./.env):
  CHASE_FPS, CHASE_SEED, CHASE_SOUND, CHASE_SSH_ADDR, CHASE_DEBUG_LOG

Examples:
  chase list
  chase play chase
  chase play chase_tiny --record run.chase
  chase replay run.chase
  chase serve --ssh :2222`,
	PersistentPreRun: loadEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound cues")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadEnv applies CHASE_* variables to flags the user did not set explicitly.
func loadEnv(cmd *cobra.Command, _ []string) {
	var err error
	env, err = config.LoadEnv(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if env.FPS > 0 && !flags.Changed("fps") {
		flagFPS = env.FPS
	}
	if env.Seed != 0 && !flags.Changed("seed") {
		flagSeed = env.Seed
	}
	if env.Sound && !flags.Changed("sound") {
		flagSound = true
	}
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}
}
