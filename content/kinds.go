// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

//go:generate core generate

// Kinds are the visual variants of topics and items.
// The renderer switches over every value to pick a marker
// shape and material, so adding a kind requires a matching style.
type Kinds int32 //enums:enum

const (
	// Skill is a professional or technical capability.
	Skill Kinds = iota

	// Project is a concrete piece of work with an outcome.
	Project

	// Performance is something done in front of an audience.
	Performance

	// Practice is an ongoing discipline or hobby.
	Practice

	// Award is a recognition or achievement.
	Award
)
