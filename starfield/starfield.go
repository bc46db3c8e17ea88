// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package starfield generates the background particle field of the galaxy.
package starfield

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
)

// DriftAmp is the amplitude of the vertical drift of each particle.
var DriftAmp float32 = 0.06

// Field is a deterministic cloud of particles in a cube centered on the origin.
type Field struct {

	// Extent is the side of the cube.
	Extent float32

	// Pos are the rest positions of the particles.
	Pos []math32.Vector3

	// Colors are the particle tints: bluish white.
	Colors []color.RGBA
}

// New returns a field of n particles uniformly placed in a cube with
// the given side, generated from the given seed.
func New(n int, extent float32, seed int64) *Field {
	rnd := randx.NewSysRand(seed)
	fd := &Field{
		Extent: extent,
		Pos:    make([]math32.Vector3, n),
		Colors: make([]color.RGBA, n),
	}
	for i := range n {
		fd.Pos[i] = math32.Vec3(
			(rnd.Float32()-0.5)*extent,
			(rnd.Float32()-0.5)*extent,
			(rnd.Float32()-0.5)*extent,
		)
		fd.Colors[i] = color.RGBA{
			R: uint8(255 * (0.5 + 0.5*rnd.Float32())),
			G: uint8(255 * (0.5 + 0.5*rnd.Float32())),
			B: 255,
			A: 255,
		}
	}
	return fd
}

// Len returns the number of particles.
func (fd *Field) Len() int {
	return len(fd.Pos)
}

// Drift returns the position of particle i at time t, which
// bobs vertically with a phase given by its x coordinate.
func (fd *Field) Drift(i int, t float32) math32.Vector3 {
	p := fd.Pos[i]
	p.Y += math32.Sin(t+p.X) * DriftAmp
	return p
}

// Rotation returns the slow euler rotation of the whole field at time t.
func (fd *Field) Rotation(t float32) math32.Vector3 {
	return math32.Vec3(0.0001*t, 0.0002*t, 0)
}
