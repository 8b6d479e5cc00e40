package chase

import "github.com/vovakirdan/tui-chase/internal/core"

// InputState is the four-direction input contract: which directions are held
// and which one was pressed most recently.
type InputState struct {
	held    [4]bool
	last    Direction
	hasLast bool
}

// Press marks d as held and makes it the most recent direction.
func (s *InputState) Press(d Direction) {
	s.held[d] = true
	s.last = d
	s.hasLast = true
}

// Release clears the held flag for d. It does not touch any velocity.
func (s *InputState) Release(d Direction) {
	s.held[d] = false
}

// Held reports whether d is currently held.
func (s *InputState) Held(d Direction) bool {
	return s.held[d]
}

// Active returns the direction that drives the player this frame:
// the last pressed direction, as long as it is still held.
func (s *InputState) Active() (Direction, bool) {
	if s.hasLast && s.held[s.last] {
		return s.last, true
	}
	return DirUp, false
}

// Reset releases everything.
func (s *InputState) Reset() {
	*s = InputState{}
}

// Apply presses every movement action in the frame, in arrival order.
// Terminals report key presses but not releases, so a direction stays held
// until another one is pressed and becomes the last.
func (s *InputState) Apply(frame core.InputFrame) {
	for _, a := range frame.Order {
		if d, ok := DirectionFromAction(a); ok {
			s.Press(d)
		}
	}
}
