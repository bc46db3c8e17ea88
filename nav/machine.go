// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nav provides the navigation state machine, which is the
// single source of truth for what the user is looking at and the sole
// producer of camera goals.
package nav

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
	"github.com/orbitfolio/galaxy/content"
)

// Machine owns the navigation [State] and computes the camera [Goal]
// for every transition. Transitions are total over the catalog:
// referencing an unknown topic or an item outside the selected topic
// returns an error and leaves the state unchanged. A Machine is not
// safe for concurrent use; it lives on the GUI goroutine.
type Machine struct {

	// Framing are the camera constants for computing goals.
	Framing Framing

	cat *content.Catalog

	state State

	goal Goal

	// anchor is the topic position captured when the topic was selected,
	// around which its items orbit.
	anchor math32.Vector3

	listeners []func(st State, gl Goal)
}

// NewMachine returns a new machine in [Overview] over the given catalog.
func NewMachine(cat *content.Catalog, fr Framing) (*Machine, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, errors.New("nav.NewMachine: empty catalog")
	}
	m := &Machine{Framing: fr, cat: cat}
	m.goal = fr.Idle
	return m, nil
}

// Catalog returns the catalog the machine navigates.
func (m *Machine) Catalog() *content.Catalog {
	return m.cat
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Goal returns the current camera goal.
func (m *Machine) Goal() Goal {
	return m.goal
}

// Anchor returns the position the items of the selected topic orbit.
// It is only meaningful in [TopicDetail].
func (m *Machine) Anchor() math32.Vector3 {
	return m.anchor
}

// OnChange adds a function that is called after every transition that
// changes the state or the goal, with both already updated.
// Functions are called synchronously in the order they were added.
func (m *Machine) OnChange(fun func(st State, gl Goal)) {
	m.listeners = append(m.listeners, fun)
}

func (m *Machine) set(st State, gl Goal) {
	if st == m.state && gl == m.goal {
		return
	}
	m.state = st
	m.goal = gl
	logx.PrintlnDebug("nav:", st)
	for _, fun := range m.listeners {
		fun(st, gl)
	}
}

// SelectTopic selects the topic with the given id, whose marker is at
// the given world position at the time of the click. Selecting the
// topic that is already selected toggles back to [Overview].
// Any open menu is closed.
func (m *Machine) SelectTopic(id string, pos math32.Vector3) error {
	return m.selectTopic(id, pos, true)
}

// SelectFromMenu selects the topic with the given id from the menu,
// which always closes the menu. Unlike [Machine.SelectTopic], picking
// the active topic re-selects it instead of toggling it off.
func (m *Machine) SelectFromMenu(id string, pos math32.Vector3) error {
	return m.selectTopic(id, pos, false)
}

func (m *Machine) selectTopic(id string, pos math32.Vector3, toggle bool) error {
	if m.cat.Topic(id) == nil {
		return fmt.Errorf("nav.SelectTopic: unknown topic %q", id)
	}
	if toggle && m.state.Mode == TopicDetail && m.state.Topic == id {
		m.Reset()
		return nil
	}
	m.anchor = pos
	m.set(State{Mode: TopicDetail, Topic: id}, m.Framing.TopicGoal(pos))
	return nil
}

// SelectItem opens the item with the given id, whose marker is at the
// given world position at the time of the click. The item must belong
// to the selected topic. Selecting the open item again closes it.
func (m *Machine) SelectItem(id string, pos math32.Vector3) error {
	if m.state.Mode != TopicDetail {
		return fmt.Errorf("nav.SelectItem: item %q selected with no topic selected", id)
	}
	tp := m.cat.Topic(m.state.Topic)
	if !tp.HasItem(id) {
		return fmt.Errorf("nav.SelectItem: item %q is not in topic %q", id, tp.ID)
	}
	if m.state.Item == id {
		m.DeselectItem()
		return nil
	}
	st := m.state
	st.Item = id
	m.set(st, m.Framing.ItemGoal(pos))
	return nil
}

// DeselectItem closes the open item, if any, keeping the topic selected.
// The goal stays where it is, so the panel closes in place.
func (m *Machine) DeselectItem() {
	st := m.state
	st.Item = ""
	m.set(st, m.goal)
}

// Reset returns to [Overview] with the idle framing.
// Calling it again has no further effect.
func (m *Machine) Reset() {
	m.set(State{Mode: Overview, MenuOpen: m.state.MenuOpen}, m.Framing.Idle)
}

// ToggleMenu opens or closes the menu without changing the selection.
func (m *Machine) ToggleMenu() {
	st := m.state
	st.MenuOpen = !st.MenuOpen
	m.set(st, m.goal)
}

// SetCatalog replaces the catalog, for example after it was reloaded.
// If the selected topic or item no longer exists, or the item moved to
// another topic, the selection is cleared accordingly.
func (m *Machine) SetCatalog(cat *content.Catalog) error {
	if cat == nil || cat.Len() == 0 {
		return errors.New("nav.SetCatalog: empty catalog")
	}
	m.cat = cat
	st := m.state
	if st.Mode != TopicDetail {
		return nil
	}
	tp := cat.Topic(st.Topic)
	switch {
	case tp == nil:
		m.Reset()
	case st.Item != "" && !tp.HasItem(st.Item):
		m.DeselectItem()
	}
	return nil
}
