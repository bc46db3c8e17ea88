// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit computes the continuous motion of markers that circle
// an anchor point: topics around the home anchor and items around
// their topic.
package orbit

import (
	"cogentcore.org/core/math32"
)

// Params are the orbital parameters of one marker.
// Positions are a pure function of the params, the anchor and the time,
// so any marker can be located at any instant without stored state.
type Params struct {

	// Radius is the distance from the anchor in the XZ plane.
	Radius float32

	// Speed is the angular speed in radians per second.
	// Negative values orbit clockwise when viewed from above.
	Speed float32

	// Phase is the starting angle in radians.
	Phase float32

	// Height is the constant vertical offset from the anchor.
	Height float32

	// Bob is the amplitude of the vertical floating motion.
	Bob float32
}

// TopicDefaults are the base params for topic markers around the home anchor.
var TopicDefaults = Params{Radius: 12, Speed: 0.08, Height: 2, Bob: 0.4}

// ItemDefaults are the base params for item markers around their topic.
var ItemDefaults = Params{Radius: 4.5, Speed: 0.35, Height: 0, Bob: 0.25}

// ForIndex returns the params for the marker at index i of n siblings,
// spreading them evenly in phase and varying radius, speed and height
// by index so neighbors do not move in lockstep.
func ForIndex(i, n int, base Params) Params {
	if n <= 0 {
		n = 1
	}
	p := base
	p.Phase = base.Phase + 2*math32.Pi*float32(i)/float32(n)
	p.Radius = base.Radius + 0.6*float32(i%3)
	p.Speed = base.Speed * (1 + 0.15*float32(i%2))
	p.Height = base.Height + 0.5*float32(i%2) - 0.25
	return p
}

// Through returns the params for the marker at index i of n siblings
// whose orbit around the origin starts at pos, apart from its bob.
func Through(pos math32.Vector3, i, n int, base Params) Params {
	p := ForIndex(i, n, base)
	p.Radius = math32.Hypot(pos.X, pos.Z)
	p.Phase = math32.Atan2(pos.Z, pos.X)
	p.Height = pos.Y
	return p
}

// IsZero returns whether no params have been set.
func (p Params) IsZero() bool {
	return p == Params{}
}

// Angle returns the orbital angle at time t (in seconds).
func (p Params) Angle(t float32) float32 {
	return p.Phase + p.Speed*t
}

// Position returns the world position at time t of a marker
// orbiting the given anchor.
func (p Params) Position(anchor math32.Vector3, t float32) math32.Vector3 {
	ang := p.Angle(t)
	return math32.Vec3(
		anchor.X+p.Radius*math32.Cos(ang),
		anchor.Y+p.Height+p.Bob*math32.Sin(2*t+p.Phase),
		anchor.Z+p.Radius*math32.Sin(ang),
	)
}

// Period returns the time in seconds for one full orbit,
// or 0 for a stationary marker.
func (p Params) Period() float32 {
	if p.Speed == 0 {
		return 0
	}
	return 2 * math32.Pi / math32.Abs(p.Speed)
}

// Spin returns the self-rotation euler angles (in radians) of a marker
// mesh at time t, tumbling slowly on all three axes.
func Spin(t float32) math32.Vector3 {
	return math32.Vec3(0.6*t, 0.9*t, 0.48*t)
}

// Pulse returns a scale factor oscillating around 1 with the
// given amplitude, used for glow shells and rings.
func Pulse(t, amp float32) float32 {
	return 1 + amp*math32.Sin(2*t)
}
