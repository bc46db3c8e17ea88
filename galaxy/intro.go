// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxy

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"github.com/orbitfolio/galaxy/preload"
)

// introFinish is the fade between the last greeting and the galaxy.
const introFinish = preload.DefaultFinish

// intro is the greeting overlay shown before the galaxy.
type intro struct {
	seq *preload.Sequencer

	frame *core.Frame

	text *core.Text

	bar *core.Frame

	// greeting is the greeting currently shown.
	greeting string

	// done is set once the sequence has completed.
	done bool
}

// makeIntro adds the intro overlay to the body. The sequence starts
// when the body is shown. Sequencer callbacks run on timer
// goroutines and update the widgets under AsyncLock.
func (a *App) makeIntro(b *core.Body) {
	in := &intro{seq: preload.New(a.Greetings, a.Step, introFinish, nil)}
	a.intro = in
	in.frame = core.NewFrame(b)
	in.frame.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
		s.Align.Items = styles.Center
		s.Justify.Content = styles.Center
		s.Gap.Y.Em(1)
		s.Background = colors.Uniform(background)
		if in.done {
			s.Display = styles.DisplayNone
		}
	})
	in.text = core.NewText(in.frame).SetType(core.TextDisplaySmall)
	in.text.Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(colors.White)
	})
	in.text.Updater(func() {
		in.text.SetText(in.greeting)
	})
	in.bar = core.NewFrame(in.frame)
	in.bar.Styler(func(s *styles.Style) {
		s.Min.X.Dp(240 * in.seq.Progress())
		s.Min.Y.Dp(3)
		s.Background = colors.Scheme.Primary.Base
	})

	in.seq.OnHide = func() {
		a.introUpdate(func() { in.greeting = "" })
	}
	b.OnFinal(events.Show, func(e events.Event) {
		go func() {
			errors.Log(in.seq.Start(func(i int, greeting string) {
				a.introUpdate(func() { in.greeting = greeting })
			}, func() {
				a.introUpdate(func() {
					in.done = true
					a.main.Update()
				})
			}))
		}()
	})
}

// introUpdate applies f to the intro and updates the overlay, unless
// the window has been closed.
func (a *App) introUpdate(f func()) {
	in := a.intro
	in.frame.AsyncLock()
	defer in.frame.AsyncUnlock()
	if a.closed {
		return
	}
	f()
	in.frame.Update()
}
