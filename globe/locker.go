// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"image/color"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"

	"github.com/chronoglobe/chronoglobe/anim"
	"github.com/chronoglobe/chronoglobe/timeline"
)

const (
	// LockDuration is the length of the lock / unlock transition.
	LockDuration = 300 * time.Millisecond

	// LockedScale is the steady-state scale of a locked marker,
	// relative to its original scale.
	LockedScale = 0.75
)

// LockedColor is the steady-state color of a locked marker and its pin.
var LockedColor = color.RGBA{R: 22, G: 22, B: 26, A: 255}

// IsLocked reports whether a subject is locked out by the active filter
// set: false when no filters are selected, otherwise false iff any of
// the subject's filter or faction tags is selected.
func IsLocked(sb *timeline.Subject, filters timeline.FilterSet) bool {
	if filters.IsEmpty() {
		return false
	}
	return !filters.Matches(sb)
}

// Locker drives the animated lock / unlock transition on markers.
// A locked marker shrinks to [LockedScale] and darkens to [LockedColor];
// unlocking restores the marker's original scale and color. A newer
// transition on a marker supersedes any in-flight one.
type Locker struct {
	// Sched steps the transitions, one per marker.
	Sched *anim.Scheduler
}

// NewLocker returns a [Locker] scheduling on the given scheduler.
func NewLocker(sched *anim.Scheduler) *Locker {
	return &Locker{Sched: sched}
}

// ApplyFilters reconciles every given marker's lock state against the
// filter set, starting a transition only where the state changes.
// An empty filter set unlocks everything.
func (lk *Locker) ApplyFilters(filters timeline.FilterSet, markers []*Marker) {
	for _, mk := range markers {
		locked := IsLocked(mk.Subject, filters)
		if locked != mk.Locked {
			lk.transition(mk, locked)
		}
	}
}

// Lock starts the lock transition on the given marker.
func (lk *Locker) Lock(mk *Marker) {
	lk.transition(mk, true)
}

// Unlock starts the unlock transition on the given marker.
func (lk *Locker) Unlock(mk *Marker) {
	lk.transition(mk, false)
}

// UnlockAll unlocks every locked marker in the list.
func (lk *Locker) UnlockAll(markers []*Marker) {
	for _, mk := range markers {
		if mk.Locked {
			lk.transition(mk, false)
		}
	}
}

// SnapLocked puts a marker directly into its locked steady state,
// without animation. Used for markers born locked.
func SnapLocked(mk *Marker) {
	mk.Locked = true
	mk.SetScale(mk.OriginalScale * LockedScale)
	mk.Material.Color = LockedColor
	if mk.Pin != nil {
		mk.Pin.Material.Color = LockedColor
	}
}

// transition animates the marker from its current visual state to the
// given lock end-state. The end-state flag is set immediately; the tick
// re-checks it so a superseding transition aborts this one.
func (lk *Locker) transition(mk *Marker, locked bool) {
	if mk.lockAnim != nil {
		mk.lockAnim.Cancel()
	}
	mk.Locked = locked
	mk.Animating = true

	startScale := mk.Pose.Scale.X
	startColor := mk.Material.Color
	var startPin color.RGBA
	if mk.Pin != nil {
		startPin = mk.Pin.Material.Color
	}

	targetScale := mk.SteadyScale()
	targetColor := mk.OriginalColor
	targetPin := color.RGBA{}
	if mk.Pin != nil {
		targetPin = mk.Pin.OriginalColor
	}
	ease := anim.OutQuad
	if locked {
		targetColor = LockedColor
		targetPin = LockedColor
		ease = anim.InQuad
	}

	var tok *anim.Anim
	tok = lk.Sched.Schedule(LockDuration, func(p float32) {
		if mk.Locked != locked {
			tok.Cancel()
			return
		}
		t := ease(p)
		mk.SetScale(math32.Lerp(startScale, targetScale, t))
		mk.Material.Color = colors.Blend(colors.RGB, 100*(1-t), startColor, targetColor)
		if mk.Pin != nil {
			mk.Pin.Material.Color = colors.Blend(colors.RGB, 100*(1-t), startPin, targetPin)
		}
	}, func() {
		mk.SetScale(targetScale)
		mk.Material.Color = targetColor
		if mk.Pin != nil {
			mk.Pin.Material.Color = targetPin
		}
		mk.Animating = false
		mk.lockAnim = nil
	})
	mk.lockAnim = tok
}
