package frame

import "github.com/charmbracelet/harmonica"

// Smoother eases a scalar control-state knob toward a target value using a
// critically-damped spring, the same technique the viewer this package is
// adapted from uses to decay rotation velocity smoothly instead of
// snapping it to zero. Here it smooths UI-driven ControlState transitions
// (subdivision depth, animation amplitude/speed) between frames rather
// than the per-point displacement formula in AnimatePoint, which stays
// exactly deterministic.
type Smoother struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewSmoother builds a smoother ticking at fps with the given natural
// frequency (Hz) and damping ratio (1.0 = critically damped, no
// overshoot).
func NewSmoother(fps int, frequency, damping float64) *Smoother {
	return &Smoother{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Set snaps the smoother directly to v with zero velocity, used the first
// time a knob is given a value so it doesn't ease in from zero.
func (s *Smoother) Set(v float64) {
	s.pos, s.vel = v, 0
}

// Update advances the smoother one frame toward target and returns the new
// eased value.
func (s *Smoother) Update(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// Value returns the smoother's current eased value without advancing it.
func (s *Smoother) Value() float64 {
	return s.pos
}

// ControlSmoother eases ControlState's continuous knobs (subdivision
// depth, animation amplitude, animation speed) toward whatever values the
// UI last requested, so a keypress changes the rendered mesh gradually
// over a few frames instead of instantly.
type ControlSmoother struct {
	depth     *Smoother
	amplitude *Smoother
	speed     *Smoother
}

// NewControlSmoother builds a ControlSmoother seeded at cs's current
// values (no easing on the first frame).
func NewControlSmoother(fps int, cs ControlState) *ControlSmoother {
	depth := NewSmoother(fps, 5.0, 1.0)
	amplitude := NewSmoother(fps, 4.0, 1.0)
	speed := NewSmoother(fps, 4.0, 1.0)
	depth.Set(float64(cs.Depth))
	amplitude.Set(cs.AnimationAmplitude)
	speed.Set(cs.AnimationSpeed)
	return &ControlSmoother{depth: depth, amplitude: amplitude, speed: speed}
}

// Update advances all three smoothers toward target's knobs and returns a
// copy of target with Depth, AnimationAmplitude, and AnimationSpeed
// replaced by their eased values.
func (cs *ControlSmoother) Update(target ControlState) ControlState {
	out := target
	out.Depth = int(cs.depth.Update(float64(target.Depth)) + 0.5)
	out.AnimationAmplitude = cs.amplitude.Update(target.AnimationAmplitude)
	out.AnimationSpeed = cs.speed.Update(target.AnimationSpeed)
	out.Clamp()
	return out
}
