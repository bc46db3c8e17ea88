// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rig

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/orbitfolio/galaxy/nav"
	"github.com/stretchr/testify/assert"
)

var testGoal = nav.Goal{Pos: math32.Vec3(4, 10, 15), Target: math32.Vec3(4, 2, 0)}

func TestNew(t *testing.T) {
	r := New(testGoal)
	assert.Equal(t, testGoal, r.Pose())
	assert.Equal(t, float32(DefaultRate), r.Rate)
	assert.True(t, r.Converged(testGoal, 0))
}

func TestConvergence(t *testing.T) {
	r := New(nav.DefaultFraming().Idle)
	prev := r.Distance(testGoal)
	for range 600 {
		r.Step(1.0/60, testGoal)
		d := r.Distance(testGoal)
		if prev > 1e-4 {
			assert.Less(t, d, prev)
		}
		assert.LessOrEqual(t, d, prev)
		prev = d
	}
	assert.Less(t, prev, float32(1e-3))
	assert.True(t, r.Converged(testGoal, 1e-3))
}

func TestNoOvershoot(t *testing.T) {
	r := &Rig{Rate: 50}
	gl := nav.Goal{Pos: math32.Vec3(1, 0, 0), Target: math32.Vec3(0, 1, 0)}
	for range 20 {
		r.Step(0.5, gl)
		assert.LessOrEqual(t, r.Pos.X, float32(1))
		assert.LessOrEqual(t, r.Target.Y, float32(1))
	}
}

func TestFrameRateIndependence(t *testing.T) {
	a := New(nav.DefaultFraming().Idle)
	b := New(nav.DefaultFraming().Idle)
	a.Step(1.0/30, testGoal)
	a.Step(1.0/30, testGoal)
	b.Step(1.0/15, testGoal)
	tolassert.EqualTol(t, a.Pos.X, b.Pos.X, 1e-4)
	tolassert.EqualTol(t, a.Pos.Y, b.Pos.Y, 1e-4)
	tolassert.EqualTol(t, a.Pos.Z, b.Pos.Z, 1e-4)
	tolassert.EqualTol(t, a.Target.Y, b.Target.Y, 1e-4)
}

func TestBlend(t *testing.T) {
	r := &Rig{Rate: 2}
	tolassert.EqualTol(t, 1-math32.Exp(-1), r.Blend(0.5), 1e-6)
	assert.Equal(t, float32(0), r.Blend(0))
	assert.Equal(t, float32(0), r.Blend(-1))
	assert.Equal(t, float32(0), r.Blend(math32.NaN()))
	assert.Equal(t, float32(0), r.Blend(math32.Inf(1)))
	assert.Equal(t, float32(0), (&Rig{}).Blend(1))
}

func TestStepClampsBadDelta(t *testing.T) {
	r := New(nav.DefaultFraming().Idle)
	start := r.Pose()
	for _, dt := range []float32{-1, math32.NaN(), math32.Inf(1), math32.Inf(-1)} {
		r.Step(dt, testGoal)
		assert.Equal(t, start, r.Pose())
	}
}

func TestRedirect(t *testing.T) {
	r := New(nav.DefaultFraming().Idle)
	r.Step(0.1, testGoal)
	other := nav.Goal{Pos: math32.Vec3(-20, 5, 0)}
	prev := r.Distance(other)
	for range 100 {
		r.Step(1.0/60, other)
		assert.Less(t, r.Distance(other), prev)
		prev = r.Distance(other)
	}
}

func TestJump(t *testing.T) {
	r := New(nav.DefaultFraming().Idle)
	r.Jump(testGoal)
	assert.Equal(t, testGoal, r.Pose())
}

func TestIdle(t *testing.T) {
	id := NewIdle()
	gl := nav.DefaultFraming().Idle
	radius := gl.Pos.Sub(gl.Target).Length()
	for range 100 {
		g := id.Goal(0.5, gl)
		assert.Equal(t, gl.Target, g.Target)
		tolassert.EqualTol(t, radius, g.Pos.Sub(g.Target).Length(), 1e-3)
		tolassert.EqualTol(t, gl.Pos.Y, g.Pos.Y, 1e-5)
	}
	tolassert.EqualTol(t, math32.Mod(DefaultIdleSpeed*50, 2*math32.Pi), id.Angle, 1e-3)

	angle := id.Angle
	id.Goal(math32.NaN(), gl)
	id.Goal(-1, gl)
	assert.Equal(t, angle, id.Angle)

	id.Reset()
	assert.Equal(t, gl, id.Rotate(gl))
}

func TestIdleQuarterTurn(t *testing.T) {
	id := &Idle{Angle: math32.Pi / 2}
	g := id.Rotate(nav.Goal{Pos: math32.Vec3(0, 10, 30)})
	tolassert.EqualTol(t, -30, g.Pos.X, 1e-4)
	tolassert.EqualTol(t, 0, g.Pos.Z, 1e-4)
}
