// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package galaxy composes the navigation machine, the camera rig and
// the supporting components into the interactive portfolio scene.
package galaxy

import (
	"context"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/keymap"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/orbitfolio/galaxy/content"
	"github.com/orbitfolio/galaxy/nav"
	"github.com/orbitfolio/galaxy/preload"
)

// App is the galaxy application: a [World] and the widgets that show
// it. All of its state is owned by the GUI goroutine; background
// goroutines reach it only under the scene's AsyncLock.
type App struct {
	*World

	// Intro is whether to show the greeting intro before the galaxy.
	Intro bool

	// Greetings are the greetings of the intro.
	Greetings []string

	// Step is the hold time of each greeting.
	Step time.Duration

	scene *xyzcore.Scene

	meshes meshes

	stars *stars

	markers markers

	// glow is the light on the hovered or active marker.
	glow *xyz.Point

	toolbar *core.Toolbar

	main *core.Frame

	menu *core.Frame

	results *core.Frame

	panel *core.Frame

	// query is the menu search text.
	query string

	// rendered is the topic and item the panel was last built for.
	rendered string

	intro *intro

	// closed is set when the window closes, after which background
	// callbacks must not touch the widgets.
	closed bool

	cancelWatch context.CancelFunc
}

// NewApp returns a new app showing the given world.
func NewApp(w *World) *App {
	return &App{World: w, Intro: true, Greetings: preload.Greetings, Step: preload.DefaultStep}
}

// Build builds the widgets of the app in the given body.
func (a *App) Build(b *core.Body) {
	b.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})
	b.AddTopBar(func(bar *core.Frame) {
		a.toolbar = core.NewToolbar(bar)
		a.toolbar.Maker(a.makeToolbar)
	})
	if a.Intro {
		a.makeIntro(b)
	}

	a.main = core.NewFrame(b)
	a.main.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 1)
		if a.intro != nil && !a.intro.done {
			s.Display = styles.DisplayNone
		}
	})
	a.menu = core.NewFrame(a.main)
	a.makeMenu(a.menu)

	a.scene = xyzcore.NewScene(a.main)
	a.scene.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 1)
	})
	sc := a.scene.XYZ
	configLights(sc, a.Framing.Home)
	a.meshes = configMeshes(sc)
	a.stars = a.newStars(sc, a.meshes)
	a.markers.build(sc, a.meshes, a.View())
	a.glow = xyz.NewPoint(sc, "glow", 0, xyz.DirectSun)
	a.applyCamera()

	a.panel = core.NewFrame(a.main)
	a.makePanel(a.panel)

	a.Machine.OnChange(func(st nav.State, gl nav.Goal) {
		a.refresh()
	})
	a.scene.Animate(func(an *core.Animation) {
		a.tick(float32(an.Delta.Seconds()))
	})
	a.scene.OnClick(func(e events.Event) {
		bb := a.scene.Geom.ContentBBox
		_, err := a.Click(bb.Size(), e.Pos().Sub(bb.Min))
		errors.Log(err)
	})
	a.scene.On(events.MouseMove, func(e events.Event) {
		bb := a.scene.Geom.ContentBBox
		if a.Hover(bb.Size(), e.Pos().Sub(bb.Min)) {
			a.scene.NeedsRender()
		}
	})
	a.scene.OnKeyChord(func(e events.Event) {
		if keymap.Of(e.KeyChord()) == keymap.Abort {
			e.SetHandled()
			a.Machine.Reset()
		}
	})
	b.On(events.Close, func(e events.Event) {
		a.close()
	})
}

// tick is the per-frame callback: it advances the world, moves the
// scene graph and applies the rig to the camera.
func (a *App) tick(dt float32) {
	if !(dt > 0) || math32.IsInf(dt, 1) {
		dt = 0
	}
	a.World.Tick(dt)
	a.markers.update(a.World, dt)
	a.stars.update(a.World)
	updateGlow(a.scene.XYZ, a.glow, a.World)
	a.applyCamera()
	a.scene.XYZ.SetNeedsUpdate()
	a.scene.NeedsRender()
}

// applyCamera writes the rig pose to the scene camera.
func (a *App) applyCamera() {
	cam := &a.scene.XYZ.Camera
	cam.FOV = a.FOV
	cam.Pose.Pos = a.Rig.Pos
	cam.LookAt(a.Rig.Target, math32.Vec3(0, 1, 0))
}

// refresh updates the scene graph and the widgets after a transition
// or a catalog reload.
func (a *App) refresh() {
	v := a.View()
	if a.markers.needsBuild(v) {
		a.markers.build(a.scene.XYZ, a.meshes, v)
	} else {
		a.markers.sync(v)
	}
	if a.toolbar != nil {
		a.toolbar.Update()
	}
	a.menu.Update()
	a.panel.Update()
	a.scene.NeedsRender()
}

// WatchCatalog reloads the catalog whenever the given file changes,
// until the window is closed.
func (a *App) WatchCatalog(filename string) error {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelWatch = cancel
	return content.Watch(ctx, filename, func(cat *content.Catalog) {
		a.scene.AsyncLock()
		defer a.scene.AsyncUnlock()
		if a.closed {
			return
		}
		if errors.Log(a.SetCatalog(cat)) != nil {
			return
		}
		a.rendered = ""
		a.markers.build(a.scene.XYZ, a.meshes, a.View())
		a.refresh()
	})
}

// close stops everything that runs in the background.
func (a *App) close() {
	a.closed = true
	if a.intro != nil {
		a.intro.seq.Stop()
	}
	if a.cancelWatch != nil {
		a.cancelWatch()
	}
}

func (a *App) makeToolbar(p *tree.Plan) {
	tree.Add(p, func(w *core.Button) {
		w.SetType(core.ButtonText)
		w.SetTooltip("Back to the galaxy")
		w.Updater(func() {
			w.SetText(a.Machine.Catalog().Name)
		})
		w.OnClick(func(e events.Event) {
			a.Machine.Reset()
		})
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.Menu).SetTooltip("Topics")
		w.OnClick(func(e events.Event) {
			a.Machine.ToggleMenu()
		})
	})
	tree.Add(p, func(w *core.Text) {
		w.SetType(core.TextBodySmall)
		w.Updater(func() {
			w.SetText(a.Hint())
		})
	})
}
