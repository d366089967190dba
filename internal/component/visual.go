// internal/component/visual.go
package component

import "go-turret-sentinel/pkg/geom"

// Animation is a frame counter advanced by a fractional step every tick.
type Animation struct {
	Frame   float64
	Frames  int
	Step    float64
	Playing bool
}

// NewAnimation creates a stopped animation.
func NewAnimation(frames int, step float64) Animation {
	return Animation{Frames: frames, Step: step}
}

// Start rewinds and plays the animation.
func (a *Animation) Start() {
	a.Frame = 0
	a.Playing = true
}

// Advance moves one tick forward and reports whether the last frame was
// passed on this tick. A finished animation rewinds and stops.
func (a *Animation) Advance() bool {
	if !a.Playing {
		return false
	}
	a.Frame += a.Step
	if int(a.Frame) >= a.Frames {
		a.Frame = 0
		a.Playing = false
		return true
	}
	return false
}

// Index is the sprite to draw for the current frame.
func (a Animation) Index() int {
	i := int(a.Frame)
	if i >= a.Frames {
		i = a.Frames - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Explosion is the blast played over a destroyed mob.
type Explosion struct {
	Position geom.Point
	Anim     Animation
}
