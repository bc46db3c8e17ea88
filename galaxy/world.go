// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxy

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
	"github.com/orbitfolio/galaxy/content"
	"github.com/orbitfolio/galaxy/nav"
	"github.com/orbitfolio/galaxy/pick"
	"github.com/orbitfolio/galaxy/rig"
	"github.com/orbitfolio/galaxy/starfield"
)

// Options are the tunable parameters of a [World].
type Options struct {

	// Rate is the smoothing rate of the camera rig, in 1/s.
	Rate float32

	// Stars is the number of background particles.
	Stars int

	// Extent is the side of the star field cube.
	Extent float32

	// Seed seeds the star field.
	Seed int64

	// FOV is the vertical field of view of the camera, in degrees.
	FOV float32

	// Framing are the camera constants.
	Framing nav.Framing
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Rate:    rig.DefaultRate,
		Stars:   400,
		Extent:  100,
		Seed:    1,
		FOV:     60,
		Framing: nav.DefaultFraming(),
	}
}

// World is the frame-driven model of the galaxy, independent of any
// GUI: it owns the navigation machine, the camera rig and the clock
// that drives the orbits, and it resolves clicks to transitions.
// It lives on the GUI goroutine.
type World struct {
	Options

	// Machine is the navigation state machine.
	Machine *nav.Machine

	// Rig is the camera rig following the machine's goal.
	Rig *rig.Rig

	// Idle is the auto-orbit applied in [nav.Overview].
	Idle *rig.Idle

	// Field is the star field.
	Field *starfield.Field

	// Time is the scene clock in seconds, which drives the orbits.
	Time float32

	// Hovered is the id of the marker under the pointer, if any.
	// The selected topic's core is hovered under its topic id.
	Hovered string

	// view is the cached projection of the machine.
	view nav.View
}

// NewWorld returns a new world over the given catalog.
func NewWorld(cat *content.Catalog, opts Options) (*World, error) {
	m, err := nav.NewMachine(cat, opts.Framing)
	if err != nil {
		return nil, err
	}
	w := &World{Options: opts, Machine: m, Idle: rig.NewIdle()}
	w.Rig = rig.New(m.Goal())
	if opts.Rate > 0 {
		w.Rig.Rate = opts.Rate
	}
	w.Field = starfield.New(opts.Stars, opts.Extent, opts.Seed)
	w.view = m.View()
	m.OnChange(func(st nav.State, gl nav.Goal) {
		if st.Mode == nav.Overview {
			w.Idle.Reset()
		}
		w.Hovered = ""
		w.view = m.View()
	})
	return w, nil
}

// View returns the current projection of the machine.
func (w *World) View() *nav.View {
	return &w.view
}

// Tick advances the clock and the camera by dt seconds.
// Invalid dt values leave everything unchanged.
func (w *World) Tick(dt float32) {
	if !(dt > 0) || math32.IsInf(dt, 1) {
		return
	}
	w.Time += dt
	gl := w.Machine.Goal()
	if w.view.Mode == nav.Overview {
		gl = w.Idle.Goal(dt, gl)
	}
	w.Rig.Step(dt, gl)
}

// Camera returns the current camera pose.
func (w *World) Camera() pick.Camera {
	return pick.Camera{Pos: w.Rig.Pos, Target: w.Rig.Target, Up: math32.Vec3(0, 1, 0)}
}

// Lens returns the camera lens for a view of the given size.
func (w *World) Lens(size image.Point) pick.Lens {
	return pick.Lens{FOV: w.FOV, Size: size}
}

// Markers returns the markers that are currently clickable:
// the topics in [nav.Overview] and the items in [nav.TopicDetail].
func (w *World) Markers() []nav.Marker {
	if w.view.Mode == nav.Overview {
		return w.view.Topics
	}
	return w.view.Items
}

// CoreRadius is the radius of the selected topic's core sphere,
// drawn at the anchor in [nav.TopicDetail].
const CoreRadius = 1.2

// HoverScale is the scale of the body of a hovered or active marker.
const HoverScale = 1.4

// Candidates returns the pick candidates of the clickable markers
// at the current time. In [nav.TopicDetail] the core of the selected
// topic is a candidate too, under the topic id.
func (w *World) Candidates() []pick.Candidate {
	mks := w.Markers()
	cands := make([]pick.Candidate, len(mks), len(mks)+1)
	for i := range mks {
		mk := &mks[i]
		cands[i] = pick.Candidate{ID: mk.ID, Pos: mk.Position(w.Time), Radius: Radius(mk) * HoverScale}
	}
	if w.view.Mode == nav.TopicDetail {
		cands = append(cands, pick.Candidate{ID: w.view.Topic, Pos: w.view.Anchor, Radius: CoreRadius * HoverScale})
	}
	return cands
}

// isCore returns whether the given candidate is the core of the selected topic.
func (w *World) isCore(c pick.Candidate) bool {
	return w.view.Mode == nav.TopicDetail && c.ID == w.view.Topic && c.Pos == w.view.Anchor
}

// Click resolves a click at the given pixel of a view of the given
// size and applies the resulting transition. It returns the id of the
// marker that was hit, if any. Clicking the core of the selected topic
// returns to the overview, and a click that misses everything closes
// the open item.
func (w *World) Click(size image.Point, px image.Point) (string, error) {
	c, ok := pick.Nearest(w.Camera(), w.Lens(size), px, w.Candidates())
	if !ok {
		if w.view.Item != "" {
			w.Machine.DeselectItem()
		}
		return "", nil
	}
	logx.PrintlnDebug("galaxy: clicked", c.ID)
	if w.view.Mode == nav.Overview || w.isCore(c) {
		return c.ID, w.Machine.SelectTopic(c.ID, c.Pos)
	}
	return c.ID, w.Machine.SelectItem(c.ID, c.Pos)
}

// Hover resolves the marker under the pointer at the given pixel of a
// view of the given size, and returns whether [World.Hovered] changed.
func (w *World) Hover(size image.Point, px image.Point) bool {
	id := ""
	if c, ok := pick.Nearest(w.Camera(), w.Lens(size), px, w.Candidates()); ok {
		id = c.ID
	}
	if id == w.Hovered {
		return false
	}
	w.Hovered = id
	return true
}

// Scale returns the scale the body of the given marker eases to:
// [HoverScale] when it is hovered or active, and 1 otherwise.
func (w *World) Scale(mk *nav.Marker) float32 {
	if mk.Active || (mk.ID != "" && mk.ID == w.Hovered) {
		return HoverScale
	}
	return 1
}

// Glow returns the brightness in [0, 1] of the light on the given
// marker: full when active, two thirds when hovered, and a third otherwise.
func (w *World) Glow(mk *nav.Marker) float32 {
	switch {
	case mk.Active:
		return 1
	case mk.ID != "" && mk.ID == w.Hovered:
		return 2.0 / 3
	}
	return 1.0 / 3
}

// Focus returns the marker that the highlight light follows: the
// hovered marker if there is one, and otherwise the open item.
func (w *World) Focus() (nav.Marker, bool) {
	var active *nav.Marker
	mks := w.Markers()
	for i := range mks {
		mk := &mks[i]
		if w.Hovered != "" && mk.ID == w.Hovered {
			return *mk, true
		}
		if mk.Active {
			active = mk
		}
	}
	if active != nil {
		return *active, true
	}
	return nav.Marker{}, false
}

// Choose applies a menu pick: it selects the topic of the match from
// the menu, and opens the item of the match, if any.
func (w *World) Choose(mt content.Match) error {
	cat := w.Machine.Catalog()
	i := cat.TopicIndex(mt.Topic)
	if i < 0 {
		return fmt.Errorf("galaxy.Choose: unknown topic %q", mt.Topic)
	}
	tp := cat.TopicAt(i)
	pos := tp.Orbit.Position(w.Framing.Home, w.Time)
	if w.view.Mode == nav.TopicDetail && w.view.Topic == tp.ID {
		pos = w.Machine.Anchor()
	}
	if err := w.Machine.SelectFromMenu(tp.ID, pos); err != nil {
		return err
	}
	if mt.Item == "" || w.view.Item == mt.Item {
		return nil
	}
	for i := range w.view.Items {
		mk := &w.view.Items[i]
		if mk.ID == mt.Item {
			return w.Machine.SelectItem(mk.ID, mk.Position(w.Time))
		}
	}
	return fmt.Errorf("galaxy.Choose: unknown item %q", mt.Item)
}

// SetCatalog replaces the catalog of the machine and refreshes the view.
func (w *World) SetCatalog(cat *content.Catalog) error {
	if err := w.Machine.SetCatalog(cat); err != nil {
		return err
	}
	w.view = w.Machine.View()
	return nil
}

// Radius returns the world radius of the body of a marker.
func Radius(mk *nav.Marker) float32 {
	r := float32(0.5)
	if mk.Size > 0 {
		r *= math32.Sqrt(mk.Size)
	}
	switch mk.Kind {
	case content.Award:
		r *= 0.9
	case content.Performance:
		r *= 1.1
	}
	return r
}

// Hint returns the instruction line for the current state.
func (w *World) Hint() string {
	switch {
	case w.view.Mode == nav.Overview:
		return "Click a planet to explore"
	case w.view.Item != "":
		return "Click the item again or empty space to close, Esc to return"
	default:
		return "Click an item for details, or the core or Esc to return to the galaxy"
	}
}
