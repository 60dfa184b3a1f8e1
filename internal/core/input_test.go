package core

import "testing"

func TestPointerAction(t *testing.T) {
	if got := PointerAction(true); got != ActionJump {
		t.Errorf("PointerAction(true) = %v, expected jump", got)
	}
	if got := PointerAction(false); got != ActionStart {
		t.Errorf("PointerAction(false) = %v, expected start", got)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}
	f.Set(ActionJump)
	f.Set(ActionJump)
	if !f.Has(ActionJump) || f.Has(ActionStart) {
		t.Error("frame should hold exactly the jump intent")
	}
	f.Clear()
	if !f.Empty() {
		t.Error("cleared frame should be empty")
	}
}
