package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/replay"
)

var flagShowBoard bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded session",
	Long: `Load a journal written by 'chase play --record' and run it again without
a terminal UI. The outcome and snapshot hash are printed; a journal that
reproduces its recorded hash exits 0, a diverging one exits 2.

Examples:
  chase replay run.chase
  chase replay run.chase --board`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagShowBoard, "board", false, "Print the final board")
}

func runReplay(_ *cobra.Command, args []string) {
	j, err := replay.Load(args[0])
	if err != nil {
		fail("%v", err)
	}

	res, err := replay.Play(j)
	if err != nil {
		fail("%v", err)
	}

	outcome := "running"
	if res.State.GameOver {
		outcome = "lost"
		if res.State.Won {
			outcome = "won"
		}
	}

	fmt.Printf("Game:     %s (%s)\n", j.GameID, j.Maze.Title)
	fmt.Printf("Seed:     %d\n", j.Seed)
	fmt.Printf("Frames:   %d (%d restarts)\n", res.Frames, res.Restarts)
	fmt.Printf("Outcome:  %s after %d ticks\n", outcome, res.State.Ticks)
	fmt.Printf("Score:    %d\n", res.State.Score)
	fmt.Printf("Events:   %d pellets, %d power-ups, %d monsters eaten\n",
		res.Events[core.EventPellet], res.Events[core.EventPowerUp], res.Events[core.EventAdversaryEaten])
	fmt.Printf("Hash:     %s\n", res.Hash)

	if flagShowBoard {
		fmt.Println()
		fmt.Println(chase.RenderPlain(res.World))
	}

	if j.Final == nil {
		fmt.Println("Verdict:  no recorded final state")
		return
	}
	if !res.Matches {
		fmt.Printf("Verdict:  DIVERGED (recorded score %d, hash %s)\n", j.Final.Score, j.Final.Hash)
		os.Exit(2)
	}
	fmt.Println("Verdict:  reproduced")
}
