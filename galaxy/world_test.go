// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxy

import (
	"image"
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/orbitfolio/galaxy/content"
	"github.com/orbitfolio/galaxy/nav"
	"github.com/orbitfolio/galaxy/pick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewSize = image.Pt(1200, 800)

func testWorld(t *testing.T) *World {
	opts := DefaultOptions()
	opts.Stars = 20
	w, err := NewWorld(content.Default(), opts)
	require.NoError(t, err)
	return w
}

// clickOn clicks on the projected position of the marker with the given id.
func clickOn(t *testing.T, w *World, id string) {
	for _, c := range w.Candidates() {
		if c.ID != id {
			continue
		}
		px, _, ok := pick.Project(w.Camera(), w.Lens(viewSize), c.Pos)
		require.True(t, ok, "marker %q is behind the camera", id)
		got, err := w.Click(viewSize, px)
		require.NoError(t, err)
		require.Equal(t, id, got)
		return
	}
	t.Fatalf("marker %q is not clickable", id)
}

func TestNewWorld(t *testing.T) {
	w := testWorld(t)
	assert.Equal(t, nav.Overview, w.View().Mode)
	assert.Equal(t, w.Framing.Idle, w.Rig.Pose())
	assert.Len(t, w.Markers(), 6)
	assert.Equal(t, 20, w.Field.Len())

	_, err := NewWorld(nil, DefaultOptions())
	assert.Error(t, err)
}

func TestTickInvalid(t *testing.T) {
	w := testWorld(t)
	w.Tick(1)
	pose := w.Rig.Pose()
	tm := w.Time
	for _, dt := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		w.Tick(dt)
	}
	assert.Equal(t, pose, w.Rig.Pose())
	assert.Equal(t, tm, w.Time)
}

func TestIdleOrbit(t *testing.T) {
	w := testWorld(t)
	for range 100 {
		w.Tick(0.1)
	}
	assert.InDelta(t, 10, w.Time, 1e-3)
	assert.NotEqual(t, w.Framing.Idle.Pos, w.Rig.Pos)
	// the auto-orbit keeps the idle distance from the target
	d := w.Rig.Pos.Sub(w.Rig.Target).Length()
	assert.InDelta(t, w.Framing.Idle.Pos.Length(), d, 0.5)
	assert.Equal(t, w.Framing.Idle, w.Machine.Goal())
}

func TestClickTopicAndItem(t *testing.T) {
	w := testWorld(t)
	w.Tick(0.5)
	clickOn(t, w, "music")
	st := w.View().State
	assert.Equal(t, nav.State{Mode: nav.TopicDetail, Topic: "music"}, st)
	assert.Len(t, w.Markers(), 3)

	for range 300 {
		w.Tick(1.0 / 60)
	}
	assert.True(t, w.Rig.Converged(w.Machine.Goal(), 0.05))

	clickOn(t, w, "violin")
	assert.Equal(t, "violin", w.View().Item)
	assert.True(t, w.View().Panel.Visible)
	assert.Equal(t, "Violin", w.View().Panel.Title)

	// empty space closes the item
	id, err := w.Click(viewSize, image.Pt(0, 0))
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Empty(t, w.View().Item)
	assert.Equal(t, nav.TopicDetail, w.View().Mode)
}

// converge ticks the world until the camera has settled on its goal.
func converge(t *testing.T, w *World) {
	for range 300 {
		w.Tick(1.0 / 60)
	}
	require.True(t, w.Rig.Converged(w.Machine.Goal(), 0.05))
}

func TestClickActiveTopic(t *testing.T) {
	w := testWorld(t)
	w.Tick(0.5)
	clickOn(t, w, "music")
	converge(t, w)

	anchor := w.View().Anchor
	assert.Equal(t, w.Machine.Anchor(), anchor)
	cands := w.Candidates()
	require.Len(t, cands, 4)
	core := cands[3]
	assert.Equal(t, "music", core.ID)
	assert.Equal(t, anchor, core.Pos)

	px, _, ok := pick.Project(w.Camera(), w.Lens(viewSize), anchor)
	require.True(t, ok)
	id, err := w.Click(viewSize, px)
	require.NoError(t, err)
	assert.Equal(t, "music", id)
	assert.Equal(t, nav.State{Mode: nav.Overview}, w.View().State)
	assert.Equal(t, w.Framing.Idle, w.Machine.Goal())
}

func TestHover(t *testing.T) {
	w := testWorld(t)
	w.Tick(0.5)
	var music pick.Candidate
	for _, c := range w.Candidates() {
		if c.ID == "music" {
			music = c
		}
	}
	px, _, ok := pick.Project(w.Camera(), w.Lens(viewSize), music.Pos)
	require.True(t, ok)

	assert.True(t, w.Hover(viewSize, px))
	assert.Equal(t, "music", w.Hovered)
	assert.False(t, w.Hover(viewSize, px))

	mk, ok := w.Focus()
	require.True(t, ok)
	assert.Equal(t, "music", mk.ID)
	assert.Equal(t, float32(HoverScale), w.Scale(&mk))
	assert.InDelta(t, 2.0/3, w.Glow(&mk), 1e-6)
	other := w.Markers()[0]
	require.NotEqual(t, "music", other.ID)
	assert.Equal(t, float32(1), w.Scale(&other))
	assert.InDelta(t, 1.0/3, w.Glow(&other), 1e-6)

	assert.True(t, w.Hover(viewSize, image.Pt(1, 1)))
	assert.Empty(t, w.Hovered)
	_, ok = w.Focus()
	assert.False(t, ok)

	// transitions clear the hover
	w.Hover(viewSize, px)
	_, err := w.Click(viewSize, px)
	require.NoError(t, err)
	assert.Empty(t, w.Hovered)
}

func TestFocusActiveItem(t *testing.T) {
	w := testWorld(t)
	require.NoError(t, w.Choose(content.Match{Topic: "music", Item: "violin"}))
	mk, ok := w.Focus()
	require.True(t, ok)
	assert.Equal(t, "violin", mk.ID)
	assert.True(t, mk.Active)
	assert.Equal(t, float32(HoverScale), w.Scale(&mk))
	assert.Equal(t, float32(1), w.Glow(&mk))
}

func TestClickMissInOverview(t *testing.T) {
	w := testWorld(t)
	id, err := w.Click(viewSize, image.Pt(1, 1))
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Equal(t, nav.Overview, w.View().Mode)
}

func TestChoose(t *testing.T) {
	w := testWorld(t)
	w.Machine.ToggleMenu()
	require.NoError(t, w.Choose(content.Match{Topic: "archery"}))
	assert.Equal(t, nav.State{Mode: nav.TopicDetail, Topic: "archery"}, w.View().State)

	require.NoError(t, w.Choose(content.Match{Topic: "engineering", Item: "power-distribution"}))
	assert.Equal(t, "engineering", w.View().Topic)
	assert.Equal(t, "power-distribution", w.View().Item)

	// choosing the open item again keeps it open
	require.NoError(t, w.Choose(content.Match{Topic: "engineering", Item: "power-distribution"}))
	assert.Equal(t, "power-distribution", w.View().Item)

	assert.Error(t, w.Choose(content.Match{Topic: "nope"}))
	assert.Error(t, w.Choose(content.Match{Topic: "music", Item: "racing"}))
}

func TestSetCatalog(t *testing.T) {
	w := testWorld(t)
	require.NoError(t, w.Choose(content.Match{Topic: "music", Item: "violin"}))
	cat, err := content.NewCatalog("Small", []content.Topic{
		{ID: "music", Title: "Music", Color: "#ec4899", Items: []content.Item{{ID: "vocals", Title: "Vocals"}}},
	})
	require.NoError(t, err)
	require.NoError(t, w.SetCatalog(cat))
	assert.Equal(t, nav.State{Mode: nav.TopicDetail, Topic: "music"}, w.View().State)
	assert.Len(t, w.Markers(), 1)
	assert.Same(t, cat, w.Machine.Catalog())

	require.NoError(t, w.SetCatalog(content.Default()))
	assert.Equal(t, nav.State{Mode: nav.TopicDetail, Topic: "music"}, w.View().State)
	assert.Error(t, w.SetCatalog(nil))
}

func TestRadius(t *testing.T) {
	mk := nav.Marker{Kind: content.Skill, Size: 4}
	assert.InDelta(t, 1, Radius(&mk), 1e-6)
	mk.Size = 0
	assert.InDelta(t, 0.5, Radius(&mk), 1e-6)
	mk.Kind = content.Award
	assert.Less(t, Radius(&mk), float32(0.5))
}

func TestHint(t *testing.T) {
	w := testWorld(t)
	h0 := w.Hint()
	require.NoError(t, w.Machine.SelectTopic("music", math32.Vec3(1, 0, 1)))
	h1 := w.Hint()
	require.NoError(t, w.Machine.SelectItem("violin", math32.Vec3(2, 0, 1)))
	h2 := w.Hint()
	assert.NotEqual(t, h0, h1)
	assert.NotEqual(t, h1, h2)
}
