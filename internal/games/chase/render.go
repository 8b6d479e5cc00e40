package chase

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
)

// Each maze tile is two screen cells wide so the board keeps a square-ish aspect.
const cellsPerTile = 2

// wallCells returns the two runes that draw one wall tile.
func wallCells(k WallKind) (rune, rune) {
	g := k.Glyph()
	switch k {
	case WallHorizontal, WallCornerTL, WallCornerBL, WallCapLeft, WallCross,
		WallConnectorTop, WallConnectorBottom, WallConnectorRight:
		return g, '═'
	case WallBlock:
		return g, g
	default:
		return g, ' '
	}
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot load maze")
		if g.loadErr != nil {
			dst.DrawTextCentered(dst.Height()/2+1, g.loadErr.Error())
		}
		return
	}

	if g.tooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minW, g.minH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	offX, offY := g.boardOrigin(dst)

	g.renderHUD(dst)
	RenderBoard(dst, g.world, offX, offY)
	dst.DrawTextCentered(dst.Height()-1, "Arrows/WASD move  P pause  R restart  Q quit")
	g.renderOverlay(dst)
}

func (g *Game) boardOrigin(dst *core.Screen) (int, int) {
	m := g.world.Maze
	offX := (dst.Width() - m.Cols()*cellsPerTile) / 2
	offY := 1 + (dst.Height()-2-m.Rows())/2
	return core.Max(offX, 0), core.Max(offY, 1)
}

// RenderBoard paints the maze, collectibles and actors with the board's
// top-left corner at (offX, offY).
func RenderBoard(dst *core.Screen, w *World, offX, offY int) {
	tile := w.Maze.TileSize()

	for _, seg := range w.Maze.Walls() {
		x := offX + int(seg.Pos.X/tile)*cellsPerTile
		y := offY + int(seg.Pos.Y/tile)
		a, b := wallCells(seg.Kind)
		dst.SetColored(x, y, a, core.ColorNavy)
		dst.SetColored(x+1, y, b, core.ColorNavy)
	}

	for _, p := range w.Pellets.Items() {
		x, y := toScreen(p.Pos, tile, offX, offY)
		dst.SetColored(x, y, '·', core.ColorWhite)
	}
	for _, p := range w.PowerUps.Items() {
		x, y := toScreen(p.Pos, tile, offX, offY)
		dst.SetColored(x, y, '●', core.ColorWhite)
	}

	for _, a := range w.Adversaries {
		x, y := toScreen(a.Pos, tile, offX, offY)
		if a.Vulnerable {
			dst.SetColored(x, y, 'm', core.ColorBlue)
		} else {
			dst.SetColored(x, y, 'M', a.Color)
		}
	}

	px, py := toScreen(w.Player.Pos, tile, offX, offY)
	dst.SetColored(px, py, playerGlyph(w.Player), core.ColorYellow)
}

// toScreen maps a world position to a cell with half-tile horizontal resolution.
func toScreen(pos core.Vec2, tile float64, offX, offY int) (int, int) {
	x := offX + int(math.Round(pos.X/tile*cellsPerTile)) - 1
	y := offY + int(math.Floor(pos.Y/tile))
	return x, y
}

func playerGlyph(p *Player) rune {
	if !p.MouthOpen() {
		return 'O'
	}
	switch p.Facing {
	case DirLeft:
		return 'Ↄ'
	case DirUp:
		return 'U'
	case DirDown:
		return 'n'
	default:
		return 'C'
	}
}

// renderHUD draws the score, pellets left and the power-up countdown.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", w.State.Score))

	pellets := fmt.Sprintf("Pellets: %d", w.Pellets.Len())
	dst.DrawTextCentered(0, pellets)

	if left := w.Vuln.Remaining(w.TimerNow()); left > 0 && w.AnyVulnerable() {
		power := fmt.Sprintf("Power %.1fs", left.Seconds())
		dst.DrawTextColored(dst.Width()-len(power)-1, 0, power, core.ColorBlue)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.world.State.Phase == PhaseLost:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.world.State.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.world.State.Phase == PhaseWon:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.world.State.Score)
		drawCenteredBox(dst, "YOU WIN!", subtitle)
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// RenderPlain draws the bare board one row per maze row, for inspection output.
func RenderPlain(w *World) string {
	s := core.NewScreen(w.Maze.Cols()*cellsPerTile, w.Maze.Rows())
	RenderBoard(s, w, 0, 0)
	return s.String()
}

// Preview builds the starting position of a maze with the default tuning and
// draws it on a screen that fits the board exactly.
func Preview(def mazes.Definition) (*core.Screen, *World) {
	cfg := config.DefaultChaseConfig()
	m := BuildMaze(def.Layout, cfg.World.TileSize, itemSpec(cfg))
	w := NewWorld(m, TuningFromConfig(cfg, def), nil, nil)
	s := core.NewScreen(m.Cols()*cellsPerTile, m.Rows())
	RenderBoard(s, w, 0, 0)
	return s, w
}
