// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxy

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/orbitfolio/galaxy/content"
	"github.com/orbitfolio/galaxy/nav"
	"github.com/orbitfolio/galaxy/orbit"
)

// mesh names, shared by all markers
const (
	sphereMesh   = "sphere"
	boxMesh      = "box"
	capsuleMesh  = "capsule"
	cylinderMesh = "cylinder"
	ringMesh     = "ring"
	starMesh     = "star"
	coreMesh     = "core"
)

// background is the deep space color behind the scene.
var background = color.RGBA{3, 2, 12, 255}

// scaleRate is the rate in 1/s at which marker bodies ease to their
// hover scale.
const scaleRate = 10

// ease moves cur toward target by the fraction of the way covered in dt
// seconds at [scaleRate].
func ease(cur, target, dt float32) float32 {
	return cur + (target-cur)*(1-math32.Exp(-scaleRate*dt))
}

// marker is the scene graph of one [nav.Marker]: a group that follows
// the orbit, holding the kind-dependent body, a ring and a label.
type marker struct {
	nav.Marker

	group *xyz.Group

	body *xyz.Solid

	ring *xyz.Solid

	// scale is the current hover scale of the body.
	scale float32
}

// meshes are the meshes shared by all markers, by name.
type meshes map[string]xyz.Mesh

// configMeshes adds the meshes shared by all markers to the scene.
func configMeshes(sc *xyz.Scene) meshes {
	return meshes{
		sphereMesh:   xyz.NewSphere(sc, sphereMesh, 1, 32),
		boxMesh:      xyz.NewBox(sc, boxMesh, 1.4, 1.4, 1.4),
		capsuleMesh:  xyz.NewCapsule(sc, capsuleMesh, 1.2, 0.6, 24, 1),
		cylinderMesh: xyz.NewCylinder(sc, cylinderMesh, 1.4, 0.8, 24, 1, true, true),
		ringMesh:     xyz.NewTorus(sc, ringMesh, 1.4, 0.04, 48),
		coreMesh:     xyz.NewSphere(sc, coreMesh, CoreRadius, 48),
		starMesh:     xyz.NewBox(sc, starMesh, 0.08, 0.08, 0.08),
	}
}

// configLights sets the background and adds the lights: a dim
// ambient fill, a key light above and a point light at the home anchor.
func configLights(sc *xyz.Scene, home math32.Vector3) {
	sc.Background = colors.Uniform(background)
	xyz.NewAmbient(sc, "ambient", 0.4, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "key", 1, xyz.DirectSun)
	dir.Pos.Set(10, 10, 5)
	pt := xyz.NewPoint(sc, "home", 1, xyz.DirectSun)
	pt.Pos = home
}

// shapeOf returns the mesh of the body of a marker of the given kind.
func shapeOf(k content.Kinds) string {
	switch k {
	case content.Skill:
		return sphereMesh
	case content.Project:
		return boxMesh
	case content.Performance:
		return capsuleMesh
	case content.Practice:
		return cylinderMesh
	case content.Award:
		return sphereMesh
	}
	return sphereMesh
}

// styleBody sets the material of the body of a marker of the given
// kind: awards glow, skills are glossy and the rest are matte.
func styleBody(sld *xyz.Solid, k content.Kinds, clr color.RGBA, active bool) {
	sld.SetColor(clr).SetEmissive(color.RGBA{})
	switch k {
	case content.Skill:
		sld.SetShiny(60).SetReflective(0.8)
	case content.Project:
		sld.SetShiny(20).SetReflective(0.4)
	case content.Performance:
		sld.SetShiny(40).SetReflective(0.6)
	case content.Practice:
		sld.SetShiny(10).SetReflective(0.2)
	case content.Award:
		sld.SetEmissive(colors.WithAF32(clr, 0.6)).SetShiny(80)
	}
	if active {
		sld.SetEmissive(colors.WithAF32(clr, 0.8))
	}
}

// newMarker adds the scene graph for the given marker to the parent.
func newMarker(parent *xyz.Group, ms meshes, mk nav.Marker) *marker {
	m := &marker{Marker: mk, scale: 1}
	m.group = xyz.NewGroup(parent)
	m.group.SetName(mk.ID)
	r := Radius(&mk)

	m.body = xyz.NewSolid(m.group).SetMesh(ms[shapeOf(mk.Kind)])
	m.body.SetName("body")
	m.body.Pose.Scale.SetScalar(r)
	styleBody(m.body, mk.Kind, mk.Color, mk.Active)

	m.ring = xyz.NewSolid(m.group).SetMesh(ms[ringMesh])
	m.ring.SetName("ring")
	m.ring.Pose.Scale.SetScalar(r)
	m.ring.SetColor(colors.WithAF32(mk.Color, 0.5))
	m.ring.Pose.SetEulerRotation(90, 0, 0)

	lbl := xyz.NewText2D(m.group).SetText(mk.Title)
	lbl.SetName("label")
	lbl.Pose.Pos.Set(0, r*1.6+0.4, 0)
	lbl.Pose.Scale.SetScalar(0.3)
	lbl.Styles.Color = colors.Uniform(colors.White)
	return m
}

// update moves the marker along its orbit to the time of the world,
// and eases its body toward the hover scale over dt seconds.
func (m *marker) update(w *World, dt float32) {
	t := w.Time
	m.group.Pose.Pos = m.Position(t)
	sp := orbit.Spin(t)
	m.body.Pose.SetEulerRotation(math32.RadToDeg(sp.X), math32.RadToDeg(sp.Y), math32.RadToDeg(sp.Z))
	m.scale = ease(m.scale, w.Scale(&m.Marker), dt)
	r := Radius(&m.Marker) * m.scale
	if m.Active {
		r *= orbit.Pulse(t, 0.08)
	}
	m.body.Pose.Scale.SetScalar(r)
	m.ring.Pose.Scale.SetScalar(Radius(&m.Marker) * m.scale * orbit.Pulse(t, 0.05))
}

// stars is the scene graph of the star field.
type stars struct {
	group *xyz.Group

	solids []*xyz.Solid
}

func (w *World) newStars(sc *xyz.Scene, ms meshes) *stars {
	st := &stars{group: xyz.NewGroup(sc)}
	st.group.SetName("stars")
	fd := w.Field
	st.solids = make([]*xyz.Solid, fd.Len())
	for i := range fd.Len() {
		sld := xyz.NewSolid(st.group).SetMesh(ms[starMesh])
		sld.SetColor(fd.Colors[i]).SetEmissive(fd.Colors[i])
		sld.Pose.Pos = fd.Pos[i]
		st.solids[i] = sld
	}
	return st
}

func (st *stars) update(w *World) {
	rot := w.Field.Rotation(w.Time)
	st.group.Pose.SetEulerRotation(math32.RadToDeg(rot.X), math32.RadToDeg(rot.Y), 0)
	for i, sld := range st.solids {
		sld.Pose.Pos = w.Field.Drift(i, w.Time)
	}
}

// markers is the scene graph of the visible markers.
type markers struct {

	// group holds the markers, and is rebuilt on each change of
	// mode or topic.
	group *xyz.Group

	// core is the sphere of the selected topic at the anchor.
	core *xyz.Solid

	// coreID is the id of the topic of the core.
	coreID string

	// coreScale is the current hover scale of the core.
	coreScale float32

	list []*marker

	// built is the state the markers were built for.
	built nav.State
}

// build rebuilds the markers for the current view.
func (mr *markers) build(sc *xyz.Scene, ms meshes, v *nav.View) {
	if mr.group == nil {
		mr.group = xyz.NewGroup(sc)
		mr.group.SetName("markers")
	}
	mr.group.DeleteChildren()
	mr.list = mr.list[:0]
	mr.core = nil
	mks := v.Topics
	if v.Mode == nav.TopicDetail {
		mks = v.Items
		tp := v.SelectedTopic
		mr.core = xyz.NewSolid(mr.group).SetMesh(ms[coreMesh])
		mr.core.SetName("core")
		styleBody(mr.core, tp.Kind, tp.Accent(), true)
		mr.core.Pose.Pos = v.Anchor
		mr.coreID = tp.ID
		mr.coreScale = 1
		lbl := xyz.NewText2D(mr.group).SetText(tp.Title)
		lbl.SetName("core-label")
		lbl.Pose.Pos = mr.core.Pose.Pos.Add(math32.Vec3(0, 2.2, 0))
		lbl.Pose.Scale.SetScalar(0.45)
		lbl.Styles.Color = colors.Uniform(colors.White)
	}
	for _, mk := range mks {
		mr.list = append(mr.list, newMarker(mr.group, ms, mk))
	}
	mr.built = v.State
	sc.Rebuild()
}

// sync applies the active flags of the view without rebuilding,
// which is all that changes when an item is opened or closed.
func (mr *markers) sync(v *nav.View) {
	mks := v.Topics
	if v.Mode == nav.TopicDetail {
		mks = v.Items
	}
	for i, m := range mr.list {
		if i >= len(mks) {
			break
		}
		m.Active = mks[i].Active
		styleBody(m.body, m.Kind, m.Color, m.Active)
	}
	mr.built = v.State
}

// needsBuild returns whether the view shows different markers than
// those that were built.
func (mr *markers) needsBuild(v *nav.View) bool {
	return mr.group == nil || v.Mode != mr.built.Mode || v.Topic != mr.built.Topic
}

func (mr *markers) update(w *World, dt float32) {
	for _, m := range mr.list {
		m.update(w, dt)
	}
	if mr.core == nil {
		return
	}
	target := float32(1)
	if w.Hovered == mr.coreID {
		target = HoverScale
	}
	mr.coreScale = ease(mr.coreScale, target, dt)
	mr.core.Pose.Scale.SetScalar(mr.coreScale)
	mr.core.Pose.SetEulerRotation(0, math32.RadToDeg(0.2*w.Time), 0)
}

// glowLumens is the brightness of the highlight light at full glow.
const glowLumens = 1.5

// updateGlow moves the highlight light onto the focused marker and
// sets its brightness and color, or turns it off when nothing is focused.
func updateGlow(sc *xyz.Scene, lt *xyz.Point, w *World) {
	mk, ok := w.Focus()
	lt.On = ok
	if ok {
		lt.Pos = mk.Position(w.Time)
		lt.Color = mk.Color
		lt.Lumens = glowLumens * w.Glow(&mk)
	}
	sc.ConfigLights()
}
