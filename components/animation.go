package components

import "github.com/lixenwraith/cyber-escape/content"

// Animation cycles through a fixed frame set, holding each frame for a number of ticks
type Animation struct {
	frames  []content.Frame
	hold    int  // ticks per frame
	elapsed int  // ticks since last frame change
	index   int  // always in [0, len(frames)-1]
	loop    bool // wrap to 0, otherwise clamp on the last frame
}

// NewAnimation creates an animation over frames
// An empty frame set is a programmer error and panics
func NewAnimation(frames []content.Frame, hold int, loop bool) *Animation {
	if len(frames) == 0 {
		panic("components: animation requires at least one frame")
	}
	if hold < 1 {
		hold = 1
	}
	return &Animation{
		frames: frames,
		hold:   hold,
		loop:   loop,
	}
}

// Advance steps the animation by one tick and returns the frame to display
// The hold check runs before the counter increments, so with hold 3 each
// index is returned exactly three times in a row
func (a *Animation) Advance() content.Frame {
	if a.elapsed >= a.hold {
		a.index++
		if a.index >= len(a.frames) {
			if a.loop {
				a.index = 0
			} else {
				a.index = len(a.frames) - 1
			}
		}
		a.elapsed = 0
	}
	a.elapsed++
	return a.frames[a.index]
}

// Reset rewinds to the first frame
func (a *Animation) Reset() {
	a.elapsed = 0
	a.index = 0
}

// Index returns the current frame index
func (a *Animation) Index() int {
	return a.index
}

// Frame returns the current frame without advancing
func (a *Animation) Frame() content.Frame {
	return a.frames[a.index]
}

// FrameAt returns frame i, clamped into range
func (a *Animation) FrameAt(i int) content.Frame {
	if i < 0 {
		i = 0
	}
	if i >= len(a.frames) {
		i = len(a.frames) - 1
	}
	return a.frames[i]
}

// Len returns the number of frames
func (a *Animation) Len() int {
	return len(a.frames)
}
