package core

import "testing"

func TestInputFramePressedAndHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Hold(ActionLeft)

	if !f.Has(ActionPause) || f.Has(ActionLeft) {
		t.Errorf("pressed = %v, expected only Pause", f.Actions)
	}
	if !f.IsHeld(ActionLeft) || f.IsHeld(ActionPause) {
		t.Errorf("held = %v, expected only Left", f.Held)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionPause) || f.IsHeld(ActionLeft) {
		t.Error("Clear() left actions behind")
	}
	if !clone.Has(ActionPause) || !clone.IsHeld(ActionLeft) {
		t.Error("Clone() should not share maps with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) || f.IsHeld(ActionRight) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionQuit)
	f.Hold(ActionRight)
	if !f.Has(ActionQuit) || !f.IsHeld(ActionRight) {
		t.Error("zero frame should accept writes")
	}
}

func TestNames(t *testing.T) {
	actions := map[Action]string{
		ActionLeft:       "Left",
		ActionFullscreen: "Fullscreen",
		Action(99):       "Unknown",
	}
	for a, want := range actions {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}

	events := map[EventKind]string{
		EventPaddleHit:        "paddle-hit",
		EventPowerUpCollected: "power-up",
		EventHeartAwarded:     "heart",
		EventGameStart:        "game-start",
		EventGameOver:         "game-over",
		EventKind(42):         "unknown",
	}
	for k, want := range events {
		if got := k.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, expected %q", k, got, want)
		}
	}
}
