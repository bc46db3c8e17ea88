// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Modes are the navigation modes.
type Modes int32 //enums:enum

const (
	// Overview shows all topics orbiting the home anchor, with nothing selected.
	Overview Modes = iota

	// TopicDetail shows the items of the selected topic orbiting its anchor.
	TopicDetail
)

// State is what the user is currently looking at.
// Only the [Machine] transitions change it, and every reachable
// state satisfies: Item != "" implies Topic != "" and the item belongs
// to the topic; Mode == Overview implies Topic == "" and Item == "".
type State struct {

	// Mode is the navigation mode.
	Mode Modes

	// Topic is the id of the selected topic, or "" in Overview.
	Topic string

	// Item is the id of the selected item, or "" when no item is open.
	Item string

	// MenuOpen is whether the topic menu is open, independent of Mode.
	MenuOpen bool
}

func (st State) String() string {
	return fmt.Sprintf("%v topic=%q item=%q menu=%v", st.Mode, st.Topic, st.Item, st.MenuOpen)
}

// Goal is the camera pose the camera rig steers toward.
type Goal struct {

	// Pos is the target camera position.
	Pos math32.Vector3

	// Target is the target look-at point.
	Target math32.Vector3
}

// Framing are the camera constants used to compute goals.
type Framing struct {

	// Idle is the default framing when nothing is selected.
	Idle Goal

	// Home is the anchor that topics orbit in Overview.
	Home math32.Vector3

	// TopicOffset is added to a topic's position to get the camera
	// position when the topic is selected.
	TopicOffset math32.Vector3

	// ItemOffset is added to an item's position to get the camera
	// position when the item is selected. It is closer than TopicOffset.
	ItemOffset math32.Vector3
}

// DefaultFraming returns the standard framing.
func DefaultFraming() Framing {
	return Framing{
		Idle:        Goal{Pos: math32.Vec3(0, 10, 30)},
		TopicOffset: math32.Vec3(0, 8, 15),
		ItemOffset:  math32.Vec3(0, 2.5, 6),
	}
}

// TopicGoal returns the goal framing a topic at the given position.
func (fr *Framing) TopicGoal(pos math32.Vector3) Goal {
	return Goal{Pos: pos.Add(fr.TopicOffset), Target: pos}
}

// ItemGoal returns the goal framing an item at the given position.
func (fr *Framing) ItemGoal(pos math32.Vector3) Goal {
	return Goal{Pos: pos.Add(fr.ItemOffset), Target: pos}
}
