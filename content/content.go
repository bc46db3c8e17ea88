// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package content provides the static showcase configuration:
// the topics of the galaxy and the items within each topic.
// A [Catalog] is validated once at construction and never mutated
// afterwards, so it can be shared freely by the navigation state
// machine and the renderer.
package content

import (
	"image/color"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/orbitfolio/galaxy/orbit"
)

// Topic is a top-level showcase category.
type Topic struct {

	// ID is the stable identifier of the topic, unique in the catalog.
	ID string `toml:"id" yaml:"id"`

	// Title is the display title shown on the marker and in the menu.
	Title string `toml:"title" yaml:"title"`

	// Color is the accent color as a hex string, such as "#06b6d4".
	Color string `toml:"color" yaml:"color"`

	// Kind is the visual variant of the topic marker.
	Kind Kinds `toml:"kind" yaml:"kind"`

	// Heading is the long-form heading shown in the information panel.
	Heading string `toml:"heading" yaml:"heading"`

	// Summary is a one-line description of the topic.
	Summary string `toml:"summary" yaml:"summary"`

	// Highlights are short labels shown as chips.
	Highlights []string `toml:"highlights" yaml:"highlights"`

	// Home is a point the orbit of the topic passes through, used to
	// derive the orbit when Orbit is zero. Items orbit the position of
	// the topic captured when it is selected, not Home.
	Home math32.Vector3 `toml:"home" yaml:"home"`

	// Orbit are the orbital params around the home anchor of the galaxy.
	// If zero, params are derived from Home, or else from the topic's index.
	Orbit orbit.Params `toml:"orbit" yaml:"orbit"`

	// Items are the ordered showcase entries of the topic.
	Items []Item `toml:"items" yaml:"items"`

	// accent is the parsed Color.
	accent color.RGBA
}

// Item is a leaf showcase entry belonging to exactly one [Topic].
type Item struct {

	// ID is the stable identifier of the item, unique in the catalog.
	ID string `toml:"id" yaml:"id"`

	// Title is the display title.
	Title string `toml:"title" yaml:"title"`

	// Color is the accent color as a hex string. If empty,
	// the color of the owning topic is used.
	Color string `toml:"color" yaml:"color"`

	// Kind is the visual variant of the item marker.
	Kind Kinds `toml:"kind" yaml:"kind"`

	// Body is the free-text detail, in markdown.
	Body string `toml:"body" yaml:"body"`

	// Tags are short labels shown as chips.
	Tags []string `toml:"tags" yaml:"tags"`

	// Bullets are the bullet points of the detail panel.
	Bullets []string `toml:"bullets" yaml:"bullets"`

	// Weight is the relative marker size; 0 means 1.
	Weight float32 `toml:"weight" yaml:"weight"`

	accent color.RGBA
}

// Accent returns the parsed accent color of the topic.
func (tp *Topic) Accent() color.RGBA {
	return tp.accent
}

// Accent returns the parsed accent color of the item,
// which is that of its topic when the item has none.
func (it *Item) Accent() color.RGBA {
	return it.accent
}

// HasItem returns whether the item with the given id belongs to the topic.
func (tp *Topic) HasItem(id string) bool {
	return tp.ItemIndex(id) >= 0
}

// ItemIndex returns the index of the item with the given id, or -1.
func (tp *Topic) ItemIndex(id string) int {
	for i := range tp.Items {
		if tp.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Link is a contact link shown in the information panel.
type Link struct {

	// Title is the label of the link, such as "GitHub".
	Title string `toml:"title" yaml:"title"`

	// URL is the target of the link: an http, https or mailto URL.
	URL string `toml:"url" yaml:"url"`
}

// IsMail returns whether the link is an email address.
func (ln *Link) IsMail() bool {
	return strings.HasPrefix(ln.URL, "mailto:")
}
