package chase

import (
	"math"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// AllDirections lists every direction in a fixed order.
// Random choices index into slices built in this order so runs are reproducible.
var AllDirections = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "?"
	}
}

// Delta returns the unit vector for d in screen coordinates (y grows downward).
func (d Direction) Delta() core.Vec2 {
	switch d {
	case DirUp:
		return core.V(0, -1)
	case DirDown:
		return core.V(0, 1)
	case DirLeft:
		return core.V(-1, 0)
	case DirRight:
		return core.V(1, 0)
	default:
		return core.Vec2{}
	}
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Rotation returns the facing angle in radians for a sprite heading in d.
func (d Direction) Rotation() float64 {
	switch d {
	case DirLeft:
		return math.Pi
	case DirDown:
		return math.Pi / 2
	case DirUp:
		return math.Pi * 1.5
	default:
		return 0
	}
}

// DirectionOf derives the heading from the sign of a velocity.
// The x component is checked first, matching how headings are recorded at junctions.
func DirectionOf(v core.Vec2) (Direction, bool) {
	switch {
	case v.X > 0:
		return DirRight, true
	case v.X < 0:
		return DirLeft, true
	case v.Y < 0:
		return DirUp, true
	case v.Y > 0:
		return DirDown, true
	}
	return DirUp, false
}

// DirectionFromAction maps a movement action to a direction.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirUp, false
}

// DirSet is a set of directions.
type DirSet struct {
	set mapset.Set[Direction]
}

// NewDirSet returns a set holding dirs.
func NewDirSet(dirs ...Direction) DirSet {
	s := DirSet{set: mapset.New[Direction]()}
	for _, d := range dirs {
		s.set.Put(d)
	}
	return s
}

// Add inserts d.
func (s DirSet) Add(d Direction) {
	s.set.Put(d)
}

// Has reports whether d is in the set.
func (s DirSet) Has(d Direction) bool {
	return s.set.Has(d)
}

// Len returns the number of directions in the set.
func (s DirSet) Len() int {
	return s.set.Size()
}

// Equal reports whether both sets hold the same directions.
func (s DirSet) Equal(o DirSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, d := range AllDirections {
		if s.Has(d) != o.Has(d) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s DirSet) Clone() DirSet {
	return NewDirSet(s.Slice()...)
}

// Minus returns the directions in s that are not in o, in AllDirections order.
func (s DirSet) Minus(o DirSet) []Direction {
	var out []Direction
	for _, d := range AllDirections {
		if s.Has(d) && !o.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Complement returns every direction not in s, in AllDirections order.
func (s DirSet) Complement() []Direction {
	var out []Direction
	for _, d := range AllDirections {
		if !s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Slice returns the members in AllDirections order.
func (s DirSet) Slice() []Direction {
	var out []Direction
	for _, d := range AllDirections {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s DirSet) String() string {
	names := make([]string, 0, 4)
	for _, d := range s.Slice() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
