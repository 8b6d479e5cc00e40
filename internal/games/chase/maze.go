package chase

import "github.com/vovakirdan/tui-chase/internal/core"

// WallKind is the visual sub-kind of a wall segment. It has no effect on physics.
type WallKind int

const (
	WallHorizontal WallKind = iota
	WallVertical
	WallCornerTL
	WallCornerTR
	WallCornerBR
	WallCornerBL
	WallBlock
	WallCapLeft
	WallCapRight
	WallCapTop
	WallCapBottom
	WallCross
	WallConnectorTop
	WallConnectorRight
	WallConnectorBottom
	WallConnectorLeft
)

// Glyph returns the box-drawing rune used to paint the wall kind.
func (k WallKind) Glyph() rune {
	switch k {
	case WallHorizontal:
		return '═'
	case WallVertical:
		return '║'
	case WallCornerTL:
		return '╔'
	case WallCornerTR:
		return '╗'
	case WallCornerBR:
		return '╝'
	case WallCornerBL:
		return '╚'
	case WallCapLeft, WallCapRight:
		return '═'
	case WallCapTop, WallCapBottom:
		return '║'
	case WallCross:
		return '╬'
	case WallConnectorTop:
		return '╩'
	case WallConnectorRight:
		return '╠'
	case WallConnectorBottom:
		return '╦'
	case WallConnectorLeft:
		return '╣'
	default:
		return '█'
	}
}

// Cell is what a single maze grid position holds.
type Cell int

const (
	CellEmpty Cell = iota
	CellWall
	CellPellet
	CellPowerUp
	CellPlayer
	CellAdversary
)

var wallSymbols = map[byte]WallKind{
	'-': WallHorizontal,
	'|': WallVertical,
	'1': WallCornerTL,
	'2': WallCornerTR,
	'3': WallCornerBR,
	'4': WallCornerBL,
	'b': WallBlock,
	'#': WallBlock,
	'[': WallCapLeft,
	']': WallCapRight,
	'^': WallCapTop,
	'_': WallCapBottom,
	'+': WallCross,
	'5': WallConnectorTop,
	'6': WallConnectorRight,
	'7': WallConnectorBottom,
	'8': WallConnectorLeft,
}

// Classify maps one layout symbol to its cell content.
// Unknown symbols are empty space.
func Classify(sym byte) (Cell, WallKind) {
	if kind, ok := wallSymbols[sym]; ok {
		return CellWall, kind
	}
	switch sym {
	case '.':
		return CellPellet, 0
	case 'p':
		return CellPowerUp, 0
	case 'P':
		return CellPlayer, 0
	case 'G':
		return CellAdversary, 0
	}
	return CellEmpty, 0
}

// Maze is the static geometry and the initial collectibles derived from a layout.
type Maze struct {
	tileSize   float64
	cols, rows int
	cells      [][]Cell

	walls       []WallSegment
	pellets     []Collectible
	powerUps    []Collectible
	playerSpawn core.Vec2
	advSpawns   []core.Vec2
}

// BuildMaze derives the maze from a symbol grid. Ragged rows are padded with empty cells.
func BuildMaze(layout []string, tileSize float64, items ItemSpec) *Maze {
	m := &Maze{tileSize: tileSize, rows: len(layout)}
	for _, row := range layout {
		if len(row) > m.cols {
			m.cols = len(row)
		}
	}

	hasPlayer := false
	firstOpen := core.Vec2{}
	hasOpen := false

	m.cells = make([][]Cell, m.rows)
	for r, row := range layout {
		m.cells[r] = make([]Cell, m.cols)
		for c := 0; c < m.cols; c++ {
			var sym byte = ' '
			if c < len(row) {
				sym = row[c]
			}
			cell, kind := Classify(sym)
			m.cells[r][c] = cell

			origin := core.V(float64(c)*tileSize, float64(r)*tileSize)
			center := origin.Add(core.V(tileSize/2, tileSize/2))

			if cell != CellWall && !hasOpen {
				firstOpen = center
				hasOpen = true
			}

			switch cell {
			case CellWall:
				m.walls = append(m.walls, WallSegment{Pos: origin, Size: tileSize, Kind: kind})
			case CellPellet:
				m.pellets = append(m.pellets, Collectible{
					Pos: center, Radius: items.PelletRadius, Kind: KindPellet, Value: items.PelletValue,
				})
			case CellPowerUp:
				m.powerUps = append(m.powerUps, Collectible{
					Pos: center, Radius: items.PowerUpRadius, Kind: KindPowerUp, Value: items.PowerUpValue,
				})
			case CellPlayer:
				if !hasPlayer {
					m.playerSpawn = center
					hasPlayer = true
				}
			case CellAdversary:
				m.advSpawns = append(m.advSpawns, center)
			}
		}
	}

	if !hasPlayer {
		m.playerSpawn = firstOpen
	}
	return m
}

// Walls returns the wall segments. Callers must not modify the slice.
func (m *Maze) Walls() []WallSegment { return m.walls }

// Pellets returns a fresh copy of the initial pellets.
func (m *Maze) Pellets() []Collectible {
	return append([]Collectible(nil), m.pellets...)
}

// PowerUps returns a fresh copy of the initial power-ups.
func (m *Maze) PowerUps() []Collectible {
	return append([]Collectible(nil), m.powerUps...)
}

// PlayerSpawn returns the player start position.
func (m *Maze) PlayerSpawn() core.Vec2 { return m.playerSpawn }

// AdversarySpawns returns the adversary start positions in layout order.
func (m *Maze) AdversarySpawns() []core.Vec2 {
	return append([]core.Vec2(nil), m.advSpawns...)
}

func (m *Maze) Cols() int            { return m.cols }
func (m *Maze) Rows() int            { return m.rows }
func (m *Maze) TileSize() float64    { return m.tileSize }
func (m *Maze) WorldSize() core.Vec2 { return core.V(float64(m.cols)*m.tileSize, float64(m.rows)*m.tileSize) }

// CellAt returns the content of a grid cell. Out-of-range cells are empty.
func (m *Maze) CellAt(col, row int) Cell {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return CellEmpty
	}
	return m.cells[row][col]
}

// WallAt returns the wall segment at a grid cell, if there is one.
func (m *Maze) WallAt(col, row int) (WallSegment, bool) {
	if m.CellAt(col, row) != CellWall {
		return WallSegment{}, false
	}
	x, y := float64(col)*m.tileSize, float64(row)*m.tileSize
	for _, w := range m.walls {
		if w.Pos.X == x && w.Pos.Y == y {
			return w, true
		}
	}
	return WallSegment{}, false
}
