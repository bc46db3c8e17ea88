// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/orbitfolio/galaxy/orbit"
)

// Catalog is the immutable set of topics and items.
// It is constructed once with [NewCatalog] and only read afterwards.
type Catalog struct {

	// Name is the name of the portfolio owner, shown in the header.
	Name string

	topics []Topic

	topicIndex map[string]int

	// itemTopic maps item id to the index of its topic.
	itemTopic map[string]int

	links []Link
}

// file is the on-disk layout of a catalog.
type file struct {
	Name   string  `toml:"name" yaml:"name"`
	Links  []Link  `toml:"links,omitempty" yaml:"links,omitempty"`
	Topics []Topic `toml:"topics" yaml:"topics"`
}

// NewCatalog validates the given topics and contact links and returns
// a catalog holding a private copy of them. Ids must be non-empty and
// unique: topic ids among topics, and item ids across the whole catalog.
func NewCatalog(name string, topics []Topic, links ...Link) (*Catalog, error) {
	if len(topics) == 0 {
		return nil, errors.New("content.NewCatalog: no topics")
	}
	cat := &Catalog{
		Name:       name,
		topics:     make([]Topic, len(topics)),
		topicIndex: make(map[string]int, len(topics)),
		itemTopic:  map[string]int{},
	}
	var errs []error
	for ti := range topics {
		tp := topics[ti]
		tp.Highlights = clone(tp.Highlights)
		tp.Items = clone(tp.Items)
		if strings.TrimSpace(tp.ID) == "" {
			errs = append(errs, fmt.Errorf("topic %d: empty id", ti))
			continue
		}
		if _, dup := cat.topicIndex[tp.ID]; dup {
			errs = append(errs, fmt.Errorf("topic %q: duplicate id", tp.ID))
			continue
		}
		if tp.Title == "" {
			tp.Title = tp.ID
		}
		if err := validKind(tp.Kind); err != nil {
			errs = append(errs, fmt.Errorf("topic %q: %w", tp.ID, err))
		}
		clr, err := colors.FromHex(tp.Color)
		if err != nil {
			errs = append(errs, fmt.Errorf("topic %q: color %q: %w", tp.ID, tp.Color, err))
		}
		tp.accent = clr
		switch {
		case !tp.Orbit.IsZero():
		case tp.Home != (math32.Vector3{}):
			tp.Orbit = orbit.Through(tp.Home, ti, len(topics), orbit.TopicDefaults)
		default:
			tp.Orbit = orbit.ForIndex(ti, len(topics), orbit.TopicDefaults)
		}
		for ii := range tp.Items {
			it := &tp.Items[ii]
			it.Tags = clone(it.Tags)
			it.Bullets = clone(it.Bullets)
			if strings.TrimSpace(it.ID) == "" {
				errs = append(errs, fmt.Errorf("topic %q item %d: empty id", tp.ID, ii))
				continue
			}
			if _, dup := cat.itemTopic[it.ID]; dup {
				errs = append(errs, fmt.Errorf("item %q: duplicate id", it.ID))
				continue
			}
			cat.itemTopic[it.ID] = ti
			if it.Title == "" {
				it.Title = it.ID
			}
			if err := validKind(it.Kind); err != nil {
				errs = append(errs, fmt.Errorf("item %q: %w", it.ID, err))
			}
			switch {
			case it.Weight < 0:
				errs = append(errs, fmt.Errorf("item %q: negative weight %g", it.ID, it.Weight))
			case it.Weight == 0:
				it.Weight = 1
			}
			if it.Color == "" {
				it.accent = tp.accent
				continue
			}
			ic, err := colors.FromHex(it.Color)
			if err != nil {
				errs = append(errs, fmt.Errorf("item %q: color %q: %w", it.ID, it.Color, err))
			}
			it.accent = ic
		}
		cat.topicIndex[tp.ID] = ti
		cat.topics[ti] = tp
	}
	for li, ln := range links {
		if err := validLink(&ln); err != nil {
			errs = append(errs, fmt.Errorf("link %d: %w", li, err))
			continue
		}
		if ln.Title == "" {
			ln.Title = strings.TrimPrefix(ln.URL, "mailto:")
		}
		cat.links = append(cat.links, ln)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("content.NewCatalog: %w", errors.Join(errs...))
	}
	return cat, nil
}

// clone returns a copy of s, or nil when s is empty, so that catalogs
// compare equal after a round trip through a file.
func clone[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

func validKind(k Kinds) error {
	if k < 0 || k >= KindsN {
		return fmt.Errorf("invalid kind %d", k)
	}
	return nil
}

func validLink(ln *Link) error {
	u, err := url.Parse(ln.URL)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("url %q: no host", ln.URL)
		}
	case "mailto":
		if u.Opaque == "" {
			return fmt.Errorf("url %q: no address", ln.URL)
		}
	default:
		return fmt.Errorf("url %q: unsupported scheme", ln.URL)
	}
	return nil
}

// Links returns a copy of the contact links.
func (cat *Catalog) Links() []Link {
	return slices.Clone(cat.links)
}

// Len returns the number of topics.
func (cat *Catalog) Len() int {
	return len(cat.topics)
}

// Topics returns a copy of the ordered topics.
func (cat *Catalog) Topics() []Topic {
	return slices.Clone(cat.topics)
}

// TopicAt returns the topic at the given index.
func (cat *Catalog) TopicAt(i int) *Topic {
	return &cat.topics[i]
}

// Topic returns the topic with the given id, or nil.
// The returned topic must not be modified.
func (cat *Catalog) Topic(id string) *Topic {
	ti, ok := cat.topicIndex[id]
	if !ok {
		return nil
	}
	return &cat.topics[ti]
}

// TopicIndex returns the index of the topic with the given id, or -1.
func (cat *Catalog) TopicIndex(id string) int {
	ti, ok := cat.topicIndex[id]
	if !ok {
		return -1
	}
	return ti
}

// TopicOf returns the topic owning the item with the given id, or nil.
func (cat *Catalog) TopicOf(itemID string) *Topic {
	ti, ok := cat.itemTopic[itemID]
	if !ok {
		return nil
	}
	return &cat.topics[ti]
}

// Item returns the item with the given id, or nil.
// The returned item must not be modified.
func (cat *Catalog) Item(id string) *Item {
	tp := cat.TopicOf(id)
	if tp == nil {
		return nil
	}
	return &tp.Items[tp.ItemIndex(id)]
}
