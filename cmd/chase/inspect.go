package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <game>",
	Short: "Show maze statistics and layout",
	Long: `Build the maze for a game and print its size, collectibles, spawns and
the effective tuning, followed by a plain-text render of the starting board.

Examples:
  chase inspect chase
  chase inspect chase --maze ./my-maze.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	inspectCmd.Flags().StringVar(&flagMaze, "maze", "", "Path to a maze definition YAML")
}

func runInspect(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fail("unknown game %q", gameID)
	}
	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	cg, ok := game.(*chase.Game)
	if !ok {
		fail("%s is not a chase game", gameID)
	}

	cg.Reset(core.RuntimeConfig{ScreenW: 200, ScreenH: 100, TickRate: flagFPS, Seed: 1})
	if err := cg.Err(); err != nil {
		fail("%v", err)
	}

	w := cg.World()
	def := cg.Definition()
	cfg := cg.Config()
	size := w.Maze.WorldSize()

	fmt.Printf("%s (%s)\n", cg.Title(), gameID)
	if def.Description != "" {
		fmt.Println(def.Description)
	}
	fmt.Println()
	fmt.Printf("  Grid:        %d cols x %d rows, tile %.0f\n", w.Maze.Cols(), w.Maze.Rows(), w.Maze.TileSize())
	fmt.Printf("  World:       %.0f x %.0f\n", size.X, size.Y)
	fmt.Printf("  Walls:       %d\n", len(w.Maze.Walls()))
	fmt.Printf("  Pellets:     %d (worth %d)\n", w.Pellets.Len(), w.Pellets.Len()*cfg.Items.PelletValue)
	fmt.Printf("  Power-ups:   %d (worth %d, %dms)\n", w.PowerUps.Len(), w.PowerUps.Len()*cfg.Items.PowerUpValue, cfg.Items.VulnerableMS)
	fmt.Printf("  Player:      spawn (%.0f, %.0f), speed %.1f\n", w.Player.Pos.X, w.Player.Pos.Y, w.Player.Speed)
	fmt.Printf("  Monsters:    %d, speed %.1f\n", len(w.Adversaries), cfg.Adversary.Speed)
	minW, minH := cg.MinSize()
	fmt.Printf("  Min screen:  %dx%d\n", minW, minH)
	fmt.Println()
	fmt.Println(chase.RenderPlain(w))
}
