// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"image/color"

	"cogentcore.org/core/tree"

	"github.com/chronoglobe/chronoglobe/anim"
	"github.com/chronoglobe/chronoglobe/scene"
	"github.com/chronoglobe/chronoglobe/timeline"
)

// Marker is the scene node for one event subject: a colored sphere
// anchored to its surface by a [PinLine]. Markers are created by the
// [Factory], tracked by the [Manager], and locked / unlocked by the
// [Locker] as the filter set changes.
type Marker struct {
	scene.Solid

	// Subject is the event or variant this marker represents.
	Subject *timeline.Subject

	// Event is the timeline entry the subject belongs to.
	Event *timeline.Event

	// MainVariant is true for the single primary marker of an event.
	// Non-main variant markers start invisible and are revealed only
	// while their event is focused.
	MainVariant bool

	// Locked is the intended lock end-state. The visual state converges
	// to it over the lock transition; it is authoritative the moment a
	// transition starts.
	Locked bool

	// Animating is true while a lock / unlock or lifecycle animation is
	// driving this marker's scale or color.
	Animating bool

	// OriginalScale and OriginalColor are the unlocked steady-state
	// visuals, captured at build time.
	OriginalScale float32
	OriginalColor color.RGBA

	// Pin is the line from the surface anchor to this marker.
	Pin *PinLine

	// lockAnim is the in-flight lock transition, canceled when a newer
	// transition supersedes it.
	lockAnim *anim.Anim
}

// NewMarker adds a new [Marker] under the given parent surface node.
func NewMarker(parent tree.Node) *Marker {
	return tree.New[Marker](parent)
}

// SteadyScale returns the scale the marker settles at for its current
// lock state.
func (mk *Marker) SteadyScale() float32 {
	if mk.Locked {
		return mk.OriginalScale * LockedScale
	}
	return mk.OriginalScale
}

// PinLine is the line segment from a surface anchor point to its
// [Marker]. It lives and dies with the marker and follows the marker's
// color through lock transitions.
type PinLine struct {
	scene.Solid

	// Marker is the marker this pin belongs to.
	Marker *Marker

	// OriginalColor is the unlocked steady-state pin color.
	OriginalColor color.RGBA
}

// NewPinLine adds a new [PinLine] under the given parent surface node.
func NewPinLine(parent tree.Node) *PinLine {
	return tree.New[PinLine](parent)
}
