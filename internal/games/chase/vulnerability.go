package chase

import (
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/heap"
)

// DefaultVulnerableFor is how long a power-up keeps adversaries vulnerable.
const DefaultVulnerableFor = 3000 * time.Millisecond

type revokeTask struct {
	fireAt    time.Time
	adversary uuid.UUID
	seq       uint64
}

func revokeFirst(a, b revokeTask) bool {
	if a.fireAt.Equal(b.fireAt) {
		return a.seq < b.seq
	}
	return a.fireAt.Before(b.fireAt)
}

// Vulnerability schedules the end of each power-up grant.
// Every grant pushes one revoke task per adversary; an adversary stays
// vulnerable while it has at least one grant that has not fired yet.
type Vulnerability struct {
	duration time.Duration
	tasks    *heap.Heap[revokeTask]
	grants   map[uuid.UUID]int
	seq      uint64
	latest   time.Time
}

// NewVulnerability creates a scheduler with the given grant duration.
func NewVulnerability(d time.Duration) *Vulnerability {
	if d <= 0 {
		d = DefaultVulnerableFor
	}
	return &Vulnerability{
		duration: d,
		tasks:    heap.New(revokeFirst),
		grants:   make(map[uuid.UUID]int),
	}
}

// Duration returns the length of one grant.
func (v *Vulnerability) Duration() time.Duration { return v.duration }

// Grant makes every adversary vulnerable until now+duration.
func (v *Vulnerability) Grant(now time.Time, advs []*Adversary) {
	fireAt := now.Add(v.duration)
	for _, a := range advs {
		a.Vulnerable = true
		v.grants[a.ID]++
		v.seq++
		v.tasks.Push(revokeTask{fireAt: fireAt, adversary: a.ID, seq: v.seq})
	}
	if len(advs) > 0 && fireAt.After(v.latest) {
		v.latest = fireAt
	}
}

// Poll fires every task due at now and returns how many fired.
// lookup resolves an id to a live adversary; tasks for adversaries that are
// gone only settle the bookkeeping.
func (v *Vulnerability) Poll(now time.Time, lookup func(uuid.UUID) *Adversary) int {
	fired := 0
	for {
		next, ok := v.tasks.Peek()
		if !ok || next.fireAt.After(now) {
			return fired
		}
		v.tasks.Pop()
		fired++

		n := v.grants[next.adversary] - 1
		if n <= 0 {
			delete(v.grants, next.adversary)
			n = 0
		} else {
			v.grants[next.adversary] = n
		}

		if a := lookup(next.adversary); a != nil {
			a.Vulnerable = n > 0
		}
	}
}

// Forget drops the grant count of a removed adversary.
// Its queued tasks are discarded when they come due.
func (v *Vulnerability) Forget(id uuid.UUID) {
	delete(v.grants, id)
}

// Pending returns how many revoke tasks are queued.
func (v *Vulnerability) Pending() int {
	return v.tasks.Size()
}

// Delay pushes every pending expiry back by d, for time the world spent frozen.
func (v *Vulnerability) Delay(d time.Duration) {
	if d <= 0 || v.tasks.Size() == 0 {
		return
	}
	shifted := heap.New(revokeFirst)
	for {
		t, ok := v.tasks.Pop()
		if !ok {
			break
		}
		t.fireAt = t.fireAt.Add(d)
		shifted.Push(t)
	}
	v.tasks = shifted
	v.latest = v.latest.Add(d)
}

// Remaining returns the time until the last live grant expires, or zero
// once no adversary holds a grant.
func (v *Vulnerability) Remaining(now time.Time) time.Duration {
	if len(v.grants) == 0 || !v.latest.After(now) {
		return 0
	}
	return v.latest.Sub(now)
}

// Clear discards every pending task and grant.
func (v *Vulnerability) Clear() {
	v.tasks = heap.New(revokeFirst)
	v.grants = make(map[uuid.UUID]int)
	v.latest = time.Time{}
}
