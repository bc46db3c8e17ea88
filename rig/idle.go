// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rig

import (
	"cogentcore.org/core/math32"
	"github.com/orbitfolio/galaxy/nav"
)

// DefaultIdleSpeed is the default idle orbit speed in rad/s,
// one revolution in 75 seconds.
const DefaultIdleSpeed = 0.0838

// Idle slowly orbits the idle framing around its look-at point while
// nothing is selected. It derives a moving goal from a fixed one and
// never modifies the navigation goal itself.
type Idle struct {

	// Speed is the angular speed in rad/s.
	Speed float32

	// Angle is the accumulated angle in radians.
	Angle float32
}

// NewIdle returns an idle orbit with the default speed.
func NewIdle() *Idle {
	return &Idle{Speed: DefaultIdleSpeed}
}

// Goal advances the idle angle by dt seconds and returns the given
// goal with its position rotated about the vertical axis through
// its target.
func (id *Idle) Goal(dt float32, gl nav.Goal) nav.Goal {
	if dt > 0 && !math32.IsInf(dt, 0) {
		id.Angle = math32.Mod(id.Angle+id.Speed*dt, 2*math32.Pi)
	}
	return id.Rotate(gl)
}

// Rotate returns the goal rotated by the current angle.
func (id *Idle) Rotate(gl nav.Goal) nav.Goal {
	d := gl.Pos.Sub(gl.Target)
	s, c := math32.Sin(id.Angle), math32.Cos(id.Angle)
	d = math32.Vec3(d.X*c-d.Z*s, d.Y, d.X*s+d.Z*c)
	return nav.Goal{Pos: gl.Target.Add(d), Target: gl.Target}
}

// Reset sets the angle back to 0.
func (id *Idle) Reset() {
	id.Angle = 0
}
