// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rig provides the camera rig, which every frame moves the
// camera a fraction of the remaining distance toward the current
// navigation goal.
package rig

import (
	"cogentcore.org/core/math32"
	"github.com/orbitfolio/galaxy/nav"
)

// DefaultRate is the default smoothing rate, in 1/s.
// After 1/DefaultRate seconds about 63% of the distance is covered.
const DefaultRate = 2.5

// Rig is the camera pose being smoothed toward a [nav.Goal].
// The smoothing is exponential in elapsed time, so it does not depend on
// the frame rate, and it approaches the goal without ever overshooting it.
// The rig has no memory of previous goals: a new goal simply redirects it.
type Rig struct {

	// Pos is the current camera position.
	Pos math32.Vector3

	// Target is the current look-at point.
	Target math32.Vector3

	// Rate is the smoothing rate k in 1/s, shared by position and target.
	Rate float32
}

// New returns a rig at rest at the given goal.
func New(gl nav.Goal) *Rig {
	return &Rig{Pos: gl.Pos, Target: gl.Target, Rate: DefaultRate}
}

// Pose returns the current pose as a goal value.
func (r *Rig) Pose() nav.Goal {
	return nav.Goal{Pos: r.Pos, Target: r.Target}
}

// Blend returns the fraction of the remaining distance covered in dt
// seconds: 1 - exp(-Rate*dt). Negative and non-finite dt are treated as 0.
func (r *Rig) Blend(dt float32) float32 {
	if dt <= 0 || math32.IsNaN(dt) || math32.IsInf(dt, 0) || r.Rate <= 0 {
		return 0
	}
	return 1 - math32.Exp(-r.Rate*dt)
}

// Step advances the rig by dt seconds toward the given goal.
func (r *Rig) Step(dt float32, gl nav.Goal) {
	a := r.Blend(dt)
	if a == 0 {
		return
	}
	r.Pos = r.Pos.Add(gl.Pos.Sub(r.Pos).MulScalar(a))
	r.Target = r.Target.Add(gl.Target.Sub(r.Target).MulScalar(a))
}

// Distance returns the remaining distance of the position from the goal.
func (r *Rig) Distance(gl nav.Goal) float32 {
	return gl.Pos.Sub(r.Pos).Length()
}

// Converged returns whether both the position and the target are
// within eps of the goal.
func (r *Rig) Converged(gl nav.Goal, eps float32) bool {
	return r.Distance(gl) <= eps && gl.Target.Sub(r.Target).Length() <= eps
}

// Jump moves the rig onto the goal immediately.
func (r *Rig) Jump(gl nav.Goal) {
	r.Pos = gl.Pos
	r.Target = gl.Target
}
