package chase

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// ActorSnapshot is the serializable view of one actor.
type ActorSnapshot struct {
	X          float64 `msgpack:"x"`
	Y          float64 `msgpack:"y"`
	VX         float64 `msgpack:"vx"`
	VY         float64 `msgpack:"vy"`
	Vulnerable bool    `msgpack:"vulnerable,omitempty"`
}

// Snapshot captures everything observable about a world at one tick.
type Snapshot struct {
	Ticks       int             `msgpack:"ticks"`
	Score       int             `msgpack:"score"`
	Phase       string          `msgpack:"phase"`
	Player      ActorSnapshot   `msgpack:"player"`
	Adversaries []ActorSnapshot `msgpack:"adversaries"`
	Pellets     int             `msgpack:"pellets"`
	PowerUps    int             `msgpack:"power_ups"`
}

// Snapshot returns the current observable state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Ticks:    w.Ticks,
		Score:    w.State.Score,
		Phase:    w.State.Phase.String(),
		Pellets:  w.Pellets.Len(),
		PowerUps: w.PowerUps.Len(),
		Player: ActorSnapshot{
			X: w.Player.Pos.X, Y: w.Player.Pos.Y,
			VX: w.Player.Vel.X, VY: w.Player.Vel.Y,
		},
	}
	for _, a := range w.Adversaries {
		s.Adversaries = append(s.Adversaries, ActorSnapshot{
			X: a.Pos.X, Y: a.Pos.Y,
			VX: a.Vel.X, VY: a.Vel.Y,
			Vulnerable: a.Vulnerable,
		})
	}
	return s
}

// Hash returns a stable fingerprint of the snapshot.
// Adversary ids are random per run, so they are left out.
func (s Snapshot) Hash() (string, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("chase: encode snapshot: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
