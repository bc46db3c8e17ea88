// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxy

import (
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/htmlcore"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
	"github.com/orbitfolio/galaxy/content"
)

// menuSummary is the length of item teasers in the menu tooltips.
const menuSummary = 120

// makeMenu configures the menu: a search field over a list of
// matching topics and items.
func (a *App) makeMenu(fr *core.Frame) {
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Min.X.Em(16)
		s.Grow.Set(0, 1)
		if !a.View().MenuOpen {
			s.Display = styles.DisplayNone
		}
	})
	tf := core.NewTextField(fr).SetPlaceholder("Search topics and items")
	tf.SetLeadingIcon(icons.Search)
	tf.OnInput(func(e events.Event) {
		a.query = tf.Text()
		a.results.Update()
	})

	a.results = core.NewFrame(fr)
	a.results.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
		s.Overflow.Y = styles.OverflowAuto
	})
	a.results.Maker(func(p *tree.Plan) {
		for _, mt := range content.Search(a.Machine.Catalog(), a.query) {
			tree.AddAt(p, mt.Topic+"/"+mt.Item, func(w *core.Button) {
				w.Styler(func(s *styles.Style) {
					s.Justify.Content = styles.Start
				})
				w.Updater(func() {
					a.configMatch(w, mt)
				})
				w.OnClick(func(e events.Event) {
					errors.Log(a.Choose(mt))
				})
			})
		}
	})
}

// configMatch sets the button of a menu match from the current catalog.
func (a *App) configMatch(w *core.Button, mt content.Match) {
	v := a.View()
	cat := a.Machine.Catalog()
	active := v.Topic == mt.Topic && v.Item == mt.Item
	if active {
		w.SetType(core.ButtonTonal)
	} else {
		w.SetType(core.ButtonText)
	}
	if mt.Item == "" {
		w.SetText(mt.Title).SetIcon(icons.Circle)
		if tp := cat.Topic(mt.Topic); tp != nil {
			w.SetTooltip(tp.SummaryN(menuSummary))
		}
		return
	}
	w.SetText(mt.Title).SetIcon(icons.ChevronRight)
	if it := cat.Item(mt.Item); it != nil {
		w.SetTooltip(it.Summary(menuSummary))
	}
}

// makePanel configures the information panel: that of the open item,
// or that of the selected topic while no item is open.
func (a *App) makePanel(fr *core.Frame) {
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Min.X.Em(20)
		s.Max.X.Em(28)
		s.Grow.Set(0, 1)
		s.Gap.Y.Em(0.5)
		s.Overflow.Y = styles.OverflowAuto
		v := a.View()
		if !v.Panel.Visible && !v.TopicPanel.Visible {
			s.Display = styles.DisplayNone
		}
	})
	fr.Updater(func() {
		v := a.View()
		key := v.Topic + "/" + v.Item
		if key == a.rendered {
			return
		}
		fr.DeleteChildren()
		a.rendered = key
		switch {
		case v.Panel.Visible:
			a.buildPanel(fr)
		case v.TopicPanel.Visible:
			a.buildTopicPanel(fr)
		}
	})
}

// panelHeader adds the title of a panel in the accent color, with a
// close button calling onClose.
func panelHeader(fr *core.Frame, title string, accent color.RGBA, onClose func()) {
	head := core.NewFrame(fr)
	head.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Center
	})
	tt := core.NewText(head).SetType(core.TextHeadlineSmall).SetText(title)
	tt.Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(accent)
		s.Grow.Set(1, 0)
	})
	core.NewButton(head).SetType(core.ButtonAction).SetIcon(icons.Close).
		SetTooltip("Close").OnClick(func(e events.Event) {
		onClose()
	})
}

// addHTML adds the given sanitized html to fr.
func addHTML(fr *core.Frame, html string) {
	body := core.NewFrame(fr)
	body.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})
	errors.Log(htmlcore.ReadHTMLString(htmlcore.NewContext(), body, html))
}

// addChips adds the given labels to fr as chips tinted with the accent color.
func addChips(fr *core.Frame, labels []string, accent color.RGBA) {
	if len(labels) == 0 {
		return
	}
	chips := core.NewFrame(fr)
	chips.Styler(func(s *styles.Style) {
		s.Wrap = true
		s.Gap.Set(units.Em(0.3))
	})
	for _, lb := range labels {
		chip := core.NewText(chips).SetType(core.TextLabelMedium).SetText(lb)
		chip.Styler(func(s *styles.Style) {
			s.Background = colors.Uniform(colors.WithAF32(accent, 0.2))
			s.Border.Radius = styles.BorderRadiusFull
			s.Padding.Set(units.Em(0.2), units.Em(0.6))
		})
	}
}

// addLinks adds the contact links of the catalog to fr as buttons
// that open them.
func (a *App) addLinks(fr *core.Frame) {
	links := a.Machine.Catalog().Links()
	if len(links) == 0 {
		return
	}
	row := core.NewFrame(fr)
	row.Styler(func(s *styles.Style) {
		s.Wrap = true
		s.Gap.Set(units.Em(0.5))
	})
	for _, ln := range links {
		bt := core.NewButton(row).SetType(core.ButtonTonal).SetText(ln.Title)
		if ln.IsMail() {
			bt.SetIcon(icons.Mail)
		} else {
			bt.SetIcon(icons.OpenInNew)
		}
		bt.SetTooltip(ln.URL)
		bt.OnClick(func(e events.Event) {
			core.TheApp.OpenURL(ln.URL)
		})
	}
}

// buildPanel adds the widgets showing the open item to fr.
func (a *App) buildPanel(fr *core.Frame) {
	pn := a.View().Panel
	panelHeader(fr, pn.Title, pn.Color, a.Machine.DeselectItem)
	core.NewText(fr).SetType(core.TextTitleMedium).SetText(pn.Topic + " · " + pn.Kind.String())
	addHTML(fr, pn.HTML)
	addChips(fr, pn.Tags, pn.Color)
	for _, bl := range pn.Bullets {
		core.NewText(fr).SetText("• " + bl)
	}
	a.addLinks(fr)
}

// buildTopicPanel adds the widgets showing the selected topic to fr.
func (a *App) buildTopicPanel(fr *core.Frame) {
	pn := a.View().TopicPanel
	panelHeader(fr, pn.Title, pn.Color, a.Machine.Reset)
	if pn.Heading != "" {
		hd := core.NewText(fr).SetType(core.TextTitleMedium).SetText(pn.Heading)
		hd.Styler(func(s *styles.Style) {
			s.Color = colors.Uniform(pn.Color)
		})
	}
	addHTML(fr, pn.HTML)
	addChips(fr, pn.Highlights, pn.Color)
	a.addLinks(fr)
}
