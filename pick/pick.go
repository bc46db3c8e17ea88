// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pick resolves pointer clicks on the 3D view to the markers
// under them, by projecting marker positions into widget pixels.
package pick

import (
	"image"

	"cogentcore.org/core/math32"
)

// Camera is the pose of the camera.
type Camera struct {

	// Pos is the eye position.
	Pos math32.Vector3

	// Target is the look-at point.
	Target math32.Vector3

	// Up is the up direction; zero means +Y.
	Up math32.Vector3
}

// Lens is the projection of the camera onto the view.
type Lens struct {

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Size is the size of the view in pixels.
	Size image.Point
}

// Candidate is a pickable marker.
type Candidate struct {

	// ID is the topic or item id of the marker.
	ID string

	// Pos is the world position of the marker at the time of the click.
	Pos math32.Vector3

	// Radius is the world radius of the marker.
	Radius float32
}

// basis returns the orthonormal forward, right and up axes of the camera.
func (cam *Camera) basis() (fwd, right, up math32.Vector3) {
	upDir := cam.Up
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	fwd = cam.Target.Sub(cam.Pos).Normal()
	right = fwd.Cross(upDir).Normal()
	up = right.Cross(fwd)
	return
}

// focal returns the distance from the eye to the image plane in pixels.
func (ln *Lens) focal() float32 {
	fov := ln.FOV
	if fov <= 0 {
		fov = 60
	}
	return 0.5 * float32(ln.Size.Y) / math32.Tan(math32.DegToRad(fov)/2)
}

// Project returns the pixel position of the world point p in the view,
// with the origin at the top left, and its depth along the view
// direction. ok is false if the point is at or behind the eye.
func Project(cam Camera, lens Lens, p math32.Vector3) (px image.Point, depth float32, ok bool) {
	fwd, right, up := cam.basis()
	d := p.Sub(cam.Pos)
	depth = d.Dot(fwd)
	if depth <= 1e-6 {
		return image.Point{}, depth, false
	}
	f := lens.focal() / depth
	x := 0.5*float32(lens.Size.X) + d.Dot(right)*f
	y := 0.5*float32(lens.Size.Y) - d.Dot(up)*f
	return image.Pt(int(math32.Round(x)), int(math32.Round(y))), depth, true
}

// Nearest returns the front-most candidate whose projected disc contains
// the click position, and whether there was one. A minimum disc radius
// of a few pixels keeps distant markers clickable.
func Nearest(cam Camera, lens Lens, click image.Point, cands []Candidate) (Candidate, bool) {
	const minPixels = 6
	var best Candidate
	bestDepth := math32.Inf(1)
	for _, c := range cands {
		px, depth, ok := Project(cam, lens, c.Pos)
		if !ok {
			continue
		}
		rad := max(c.Radius*lens.focal()/depth, minPixels)
		dx := float32(click.X - px.X)
		dy := float32(click.Y - px.Y)
		if dx*dx+dy*dy > rad*rad || depth >= bestDepth {
			continue
		}
		best = c
		bestDepth = depth
	}
	return best, !math32.IsInf(bestDepth, 1)
}
