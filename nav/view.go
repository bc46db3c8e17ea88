// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"image/color"
	"slices"

	"cogentcore.org/core/math32"
	"github.com/orbitfolio/galaxy/content"
	"github.com/orbitfolio/galaxy/orbit"
)

// Marker is a visible orbiting object in the scene.
type Marker struct {

	// ID is the topic or item id.
	ID string

	// Title is the label of the marker.
	Title string

	// Color is the accent color.
	Color color.RGBA

	// Kind selects the shape and material.
	Kind content.Kinds

	// Size is the relative size of the marker.
	Size float32

	// Orbit are the orbital params of the marker around Anchor.
	Orbit orbit.Params

	// Anchor is the point the marker orbits.
	Anchor math32.Vector3

	// Active is whether the marker is the current selection.
	Active bool
}

// Position returns the world position of the marker at time t.
func (mk *Marker) Position(t float32) math32.Vector3 {
	return mk.Orbit.Position(mk.Anchor, t)
}

// Panel is the information panel bound to the open item.
type Panel struct {

	// Visible is whether an item is open.
	Visible bool

	// Topic is the title of the topic owning the item.
	Topic string

	// Title is the title of the item.
	Title string

	// Color is the accent color of the item.
	Color color.RGBA

	// Kind is the kind of the item.
	Kind content.Kinds

	// HTML is the sanitized detail body.
	HTML string

	// Tags are the tag chips.
	Tags []string

	// Bullets are the bullet points.
	Bullets []string
}

// TopicPanel is the information panel of the selected topic,
// shown while no item is open.
type TopicPanel struct {

	// Visible is whether a topic is selected with no item open.
	Visible bool

	// Title is the title of the topic.
	Title string

	// Heading is the long-form heading of the topic.
	Heading string

	// Color is the accent color of the topic.
	Color color.RGBA

	// Kind is the kind of the topic.
	Kind content.Kinds

	// HTML is the sanitized summary.
	HTML string

	// Highlights are the highlight chips.
	Highlights []string
}

// View is a read-only projection of the machine for the renderer:
// which markers are visible and what the information panel shows.
type View struct {
	State

	// SelectedTopic is the selected topic, or nil.
	SelectedTopic *content.Topic

	// SelectedItem is the open item, or nil.
	SelectedItem *content.Item

	// Topics are the visible topic markers: all of them in [Overview]
	// and none in [TopicDetail].
	Topics []Marker

	// Items are the visible item markers: those of the selected topic.
	Items []Marker

	// Anchor is the position the items orbit, where the selected
	// topic is shown. It is zero in [Overview].
	Anchor math32.Vector3

	// Panel is the information panel of the open item.
	Panel Panel

	// TopicPanel is the information panel of the selected topic.
	TopicPanel TopicPanel
}

// View returns the current projection.
func (m *Machine) View() View {
	v := View{State: m.state}
	if m.state.Mode == Overview {
		n := m.cat.Len()
		v.Topics = make([]Marker, n)
		for i := range n {
			tp := m.cat.TopicAt(i)
			v.Topics[i] = Marker{ID: tp.ID, Title: tp.Title, Color: tp.Accent(), Kind: tp.Kind, Size: 1, Orbit: tp.Orbit, Anchor: m.Framing.Home}
		}
		return v
	}
	tp := m.cat.Topic(m.state.Topic)
	v.SelectedTopic = tp
	v.Anchor = m.anchor
	v.Items = make([]Marker, len(tp.Items))
	for i := range tp.Items {
		it := &tp.Items[i]
		v.Items[i] = Marker{
			ID:     it.ID,
			Title:  it.Title,
			Color:  it.Accent(),
			Kind:   it.Kind,
			Size:   it.Weight,
			Orbit:  orbit.ForIndex(i, len(tp.Items), orbit.ItemDefaults),
			Anchor: m.anchor,
			Active: it.ID == m.state.Item,
		}
	}
	if m.state.Item == "" {
		v.TopicPanel = TopicPanel{
			Visible:    true,
			Title:      tp.Title,
			Heading:    tp.Heading,
			Color:      tp.Accent(),
			Kind:       tp.Kind,
			HTML:       content.ToHTML(tp.Summary),
			Highlights: slices.Clone(tp.Highlights),
		}
		return v
	}
	it := m.cat.Item(m.state.Item)
	v.SelectedItem = it
	v.Panel = Panel{
		Visible: true,
		Topic:   tp.Title,
		Title:   it.Title,
		Color:   it.Accent(),
		Kind:    it.Kind,
		HTML:    it.HTML(),
		Tags:    slices.Clone(it.Tags),
		Bullets: slices.Clone(it.Bullets),
	}
	return v
}
