// Package device decides whether the player is on a touch-first device.
// The answer only changes on-screen copy ("Tap" vs "Press Space").
package device

import "runtime"

// MobileBreakpoint is the surface width at or below which a device is
// treated as touch-first.
const MobileBreakpoint = 768

// Signals are the observations the decision is based on.
type Signals struct {
	GOOS         string // Target operating system
	SurfaceWidth int    // Outer width of the play surface in device pixels, 0 if unknown
	TouchSeen    bool   // Whether a touch event has been observed
}

// Current returns signals for the running binary with the given width.
func Current(width int, touchSeen bool) Signals {
	return Signals{GOOS: runtime.GOOS, SurfaceWidth: width, TouchSeen: touchSeen}
}

// TouchPrimary reports whether the signals describe a touch-first device.
func TouchPrimary(s Signals) bool {
	switch s.GOOS {
	case "android", "ios":
		return true
	}
	if s.TouchSeen {
		return true
	}
	return s.SurfaceWidth > 0 && s.SurfaceWidth <= MobileBreakpoint
}

// Detector re-evaluates the signal as the surface resizes and touches arrive.
// It reports changes so hosts can log and forward them.
type Detector struct {
	goos      string
	width     int
	touchSeen bool
	touch     bool
}

// NewDetector creates a detector for the given OS, usually runtime.GOOS.
func NewDetector(goos string) *Detector {
	d := &Detector{goos: goos}
	d.touch = TouchPrimary(d.signals())
	return d
}

func (d *Detector) signals() Signals {
	return Signals{GOOS: d.goos, SurfaceWidth: d.width, TouchSeen: d.touchSeen}
}

// Resize records a new surface width. It returns true if the answer changed.
func (d *Detector) Resize(width int) bool {
	d.width = width
	return d.update()
}

// Touched records a touch. It returns true if the answer changed.
func (d *Detector) Touched() bool {
	d.touchSeen = true
	return d.update()
}

// TouchPrimary returns the current answer.
func (d *Detector) TouchPrimary() bool {
	return d.touch
}

func (d *Detector) update() bool {
	next := TouchPrimary(d.signals())
	changed := next != d.touch
	d.touch = next
	return changed
}
