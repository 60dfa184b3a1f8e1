package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/space-flappy/internal/core"
	"github.com/vovakirdan/space-flappy/internal/platform/device"
)

// events is one frame of raw input in logical coordinates.
type events struct {
	escape  bool
	space   bool
	enter   bool
	clicks  []image.Point
	touches []image.Point
}

// Input turns ebiten input into intents for a play surface of a fixed
// logical size. Touches also feed the device detector.
type Input struct {
	bounds   image.Rectangle
	detector *device.Detector
	touchIDs []ebiten.TouchID
}

// NewInput creates an input adapter for a width x height play surface.
func NewInput(width, height int, detector *device.Detector) *Input {
	return &Input{
		bounds:   image.Rect(0, 0, width, height),
		detector: detector,
	}
}

// Poll records this frame's intents into frame. Clicks and touches flap
// while running and press the start button otherwise. It reports whether
// the touch-primary answer changed.
func (in *Input) Poll(frame *core.InputFrame, running bool) bool {
	return in.apply(in.read(), frame, running)
}

// read collects presses that started this frame.
func (in *Input) read() events {
	ev := events{
		escape: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		space:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		enter:  inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		ev.enter = true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ev.clicks = append(ev.clicks, image.Pt(ebiten.CursorPosition()))
	}
	in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		ev.touches = append(ev.touches, image.Pt(ebiten.TouchPosition(id)))
	}
	return ev
}

// apply maps raw events to intents.
func (in *Input) apply(ev events, frame *core.InputFrame, running bool) bool {
	if ev.escape {
		frame.Set(core.ActionQuit)
	}
	if ev.space {
		frame.Set(core.ActionJump)
	}
	if ev.enter {
		frame.Set(core.ActionStart)
	}
	for _, p := range ev.clicks {
		if p.In(in.bounds) {
			frame.Set(core.PointerAction(running))
		}
	}

	changed := false
	for _, p := range ev.touches {
		if in.detector != nil && in.detector.Touched() {
			changed = true
		}
		if p.In(in.bounds) {
			frame.Set(core.PointerAction(running))
		}
	}
	return changed
}
