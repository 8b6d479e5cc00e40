package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Error("new frame should not have ActionUp")
	}

	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Has(ActionUp) = false after Set")
	}

	f.Clear()
	if f.Has(ActionUp) || !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
}

func TestInputFrameLastDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Action
		ok       bool
	}{
		{"empty", nil, ActionNone, false},
		{"single", []Action{ActionLeft}, ActionLeft, true},
		{"last wins", []Action{ActionUp, ActionRight}, ActionRight, true},
		{"ignores non-directions", []Action{ActionDown, ActionPause}, ActionDown, true},
		{"only non-directions", []Action{ActionPause, ActionRestart}, ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			got, ok := f.LastDirection()
			if got != tc.expected || ok != tc.ok {
				t.Errorf("LastDirection() = (%v, %v), expected (%v, %v)", got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)
	f.Set(ActionLeft)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionDown) || !c.Has(ActionLeft) {
		t.Error("clone should keep actions after original is cleared")
	}
	if got, _ := c.LastDirection(); got != ActionLeft {
		t.Errorf("clone LastDirection() = %v, expected Left", got)
	}
}

func TestActionString(t *testing.T) {
	if ActionRight.String() != "Right" {
		t.Errorf("ActionRight.String() = %q", ActionRight.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
