package chase

import "github.com/vovakirdan/tui-chase/internal/core"

// Kind distinguishes pellets from power-ups.
type Kind int

const (
	KindPellet Kind = iota
	KindPowerUp
)

func (k Kind) String() string {
	if k == KindPowerUp {
		return "power-up"
	}
	return "pellet"
}

// Collectible is a pickup placed at the center of its tile.
type Collectible struct {
	Pos      core.Vec2
	Radius   float64
	Kind     Kind
	Value    int
	Consumed bool
}

// ItemSpec holds the sizes and score values used when building collectibles.
type ItemSpec struct {
	PelletRadius  float64
	PelletValue   int
	PowerUpRadius float64
	PowerUpValue  int
}

// DefaultItemSpec returns the stock pellet and power-up settings.
func DefaultItemSpec() ItemSpec {
	return ItemSpec{
		PelletRadius:  3,
		PelletValue:   10,
		PowerUpRadius: 8,
		PowerUpValue:  50,
	}
}

// Collectibles is an active set of pickups. It only ever shrinks.
type Collectibles struct {
	items []Collectible
}

// NewCollectibles wraps an initial set.
func NewCollectibles(items []Collectible) *Collectibles {
	return &Collectibles{items: items}
}

// Len returns how many are still active.
func (c *Collectibles) Len() int { return len(c.items) }

// Items returns the active pickups. Callers must not modify the slice.
func (c *Collectibles) Items() []Collectible { return c.items }

// Consume removes every pickup the player circle touches and returns them.
// The scan runs from the end so removals never shift an unvisited index.
func (c *Collectibles) Consume(player Actor) []Collectible {
	var taken []Collectible
	for i := len(c.items) - 1; i >= 0; i-- {
		it := c.items[i]
		if it.Pos.Dist(player.Pos) < player.Radius+it.Radius {
			it.Consumed = true
			taken = append(taken, it)
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
	}
	return taken
}
