// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"log/slog"
	"time"

	"cogentcore.org/core/colors"

	"github.com/chronoglobe/chronoglobe/anim"
	"github.com/chronoglobe/chronoglobe/geo"
	"github.com/chronoglobe/chronoglobe/scene"
	"github.com/chronoglobe/chronoglobe/timeline"
)

const (
	// GrowDuration is the length of the bulk marker grow / shrink pass.
	GrowDuration = 600 * time.Millisecond

	// FlashBrightness is the extra material brightness at the midpoint
	// of the grow flash.
	FlashBrightness = 0.6

	// CityDotRadius sizes the decorative city dots, as a fraction of
	// the globe radius.
	CityDotRadius = 0.006
)

// Manager owns the marker lifecycle for the current page of events:
// bulk animated add and remove, the remove-add-filter refresh sequence,
// and the tracked marker list the [Locker] reconciles against.
type Manager struct {
	// Surfaces are the marker placement targets.
	Surfaces *Surfaces

	// Provider supplies the current page of events and the live
	// filter set.
	Provider timeline.Provider

	// Sched steps all lifecycle and lock animations.
	Sched *anim.Scheduler

	// Factory builds markers.
	Factory *Factory

	// Locker drives lock / unlock transitions.
	Locker *Locker

	// Markers is the tracked list of live event markers, across all
	// surfaces. City dots are not tracked here.
	Markers []*Marker

	// bulkAnim is the in-flight shared grow or shrink pass; a newer bulk
	// operation supersedes it. bulkEnd finalizes the superseded pass
	// (snap or detach) without resolving its future.
	bulkAnim *anim.Anim
	bulkEnd  func()
}

// NewManager returns a [Manager] wiring the given collaborators.
func NewManager(sf *Surfaces, pv timeline.Provider, sched *anim.Scheduler, device DeviceClass) *Manager {
	return &Manager{
		Surfaces: sf,
		Provider: pv,
		Sched:    sched,
		Factory:  NewFactory(sf, device),
		Locker:   NewLocker(sched),
	}
}

// ready reports whether the globe is constructed; lifecycle methods
// log and no-op when it is not, since construction order between the
// globe and the event library is not guaranteed.
func (mm *Manager) ready(op string) bool {
	if mm.Surfaces == nil || mm.Surfaces.Globe == nil {
		slog.Warn("globe: called before globe is initialized, ignoring", "op", op)
		return false
	}
	return true
}

// cancelBulk supersedes any in-flight shared grow or shrink pass,
// finalizing it immediately. Its future is left unresolved: a superseded
// pass is stale and its continuations must not run.
func (mm *Manager) cancelBulk() {
	if mm.bulkAnim == nil {
		return
	}
	mm.bulkAnim.Cancel()
	mm.bulkAnim = nil
	end := mm.bulkEnd
	mm.bulkEnd = nil
	if end != nil {
		end()
	}
}

// AddMarkers creates a marker (and pin line) for every given event, or
// for each of its variants when it has any, with lock state computed up
// front so markers are born in their correct visual state. With animate,
// all new markers grow from scale 0 with a midpoint brightness flash
// while their pins fade in, and the returned future resolves when that
// shared pass completes; otherwise everything snaps to steady state and
// the future is already resolved. Any bulk pass still in flight is
// superseded first.
func (mm *Manager) AddMarkers(events []*timeline.Event, animate bool) *anim.Future {
	if !mm.ready("add markers") {
		return anim.Resolved()
	}
	mm.cancelBulk()
	filters := mm.Provider.ActiveFilters()
	var added []*Marker
	for _, ev := range events {
		for i, sb := range ev.SubjectsToPlace() {
			mk := mm.Factory.Build(ev, sb, i == 0)
			if mk == nil {
				continue
			}
			if IsLocked(sb, filters) {
				SnapLocked(mk)
			}
			added = append(added, mk)
		}
	}
	mm.Markers = append(mm.Markers, added...)
	if len(added) == 0 {
		return anim.Resolved()
	}

	if !animate {
		// the factory and the locked snap already leave everything at
		// steady state
		return anim.Resolved()
	}

	for _, mk := range added {
		mk.SetScale(0)
		mk.Pin.Material.Opacity = 0
		mk.Animating = true
	}
	// a lock transition started mid-grow owns the marker's scale; the
	// grow keeps driving only the uncontested pin opacity and brightness,
	// and the snap recomputes the steady scale from the final lock state
	finish := func() {
		for _, mk := range added {
			mk.Pin.Material.Opacity = 1
			mk.Material.Bright = 1
			if mk.lockAnim != nil {
				continue
			}
			mk.SetScale(mk.SteadyScale())
			mk.Animating = false
		}
	}
	ft := anim.NewFuture()
	mm.bulkEnd = finish
	mm.bulkAnim = mm.Sched.Schedule(GrowDuration, func(p float32) {
		t := anim.OutCubic(p)
		flash := FlashBrightness * anim.Bell(p)
		for _, mk := range added {
			mk.Pin.Material.Opacity = t
			mk.Material.Bright = 1 + flash
			if mk.lockAnim == nil {
				mk.SetScale(mk.SteadyScale() * t)
			}
		}
	}, func() {
		mm.bulkAnim = nil
		mm.bulkEnd = nil
		finish()
		ft.Resolve()
	})
	return ft
}

// RemoveMarkers detaches every tracked event marker and its pin. With
// animate, markers first shrink from their current scale to 0 while
// pins fade out, and detachment happens when the shared pass completes.
// Immediately resolved, with no animation scheduled, when no markers
// are present. Any bulk pass still in flight is superseded first; a
// superseded shrink still detaches its markers.
func (mm *Manager) RemoveMarkers(animate bool) *anim.Future {
	if !mm.ready("remove markers") {
		return anim.Resolved()
	}
	mm.cancelBulk()
	marks := mm.Markers
	if len(marks) == 0 {
		return anim.Resolved()
	}
	mm.Markers = nil
	for _, mk := range marks {
		mk.lockAnim.Cancel()
		mk.lockAnim = nil
		mk.Animating = true
	}
	detach := func() {
		for _, mk := range marks {
			if mk.Pin != nil {
				mk.Pin.Delete()
			}
			mk.Delete()
		}
	}
	if !animate {
		detach()
		return anim.Resolved()
	}

	scales := make([]float32, len(marks))
	pinOps := make([]float32, len(marks))
	for i, mk := range marks {
		scales[i] = mk.Pose.Scale.X
		pinOps[i] = mk.Pin.Material.Opacity
	}
	ft := anim.NewFuture()
	mm.bulkEnd = detach
	mm.bulkAnim = mm.Sched.Schedule(GrowDuration, func(p float32) {
		t := anim.InCubic(p)
		for i, mk := range marks {
			mk.SetScale(scales[i] * (1 - t))
			mk.Pin.Material.Opacity = pinOps[i] * (1 - t)
		}
	}, func() {
		mm.bulkAnim = nil
		mm.bulkEnd = nil
		detach()
		ft.Resolve()
	})
	return ft
}

// Refresh rebuilds the markers for the current page: animated remove,
// then animated add of the provider's current page, then a filter pass
// over the final marker set. The stages run in strict sequence, so no
// stale marker ever coexists with a fresh one and filters are never
// evaluated against a transient set.
func (mm *Manager) Refresh() *anim.Future {
	if !mm.ready("refresh") {
		return anim.Resolved()
	}
	ft := anim.NewFuture()
	mm.RemoveMarkers(true).OnDone(func() {
		mm.AddMarkers(mm.Provider.EventsForCurrentPage(), true).OnDone(func() {
			mm.ApplyFilters()
			ft.Resolve()
		})
	})
	return ft
}

// ApplyFilters reconciles every tracked marker's lock state against the
// provider's live filter set.
func (mm *Manager) ApplyFilters() {
	if !mm.ready("apply filters") {
		return
	}
	mm.Locker.ApplyFilters(mm.Provider.ActiveFilters(), mm.Markers)
}

// Lock starts the lock transition on one marker.
func (mm *Manager) Lock(mk *Marker) {
	mm.Locker.Lock(mk)
}

// Unlock starts the unlock transition on one marker.
func (mm *Manager) Unlock(mk *Marker) {
	mm.Locker.Unlock(mk)
}

// UnlockAll unlocks every locked tracked marker.
func (mm *Manager) UnlockAll() {
	mm.Locker.UnlockAll(mm.Markers)
}

// MarkerFor returns the tracked marker for the given subject, or nil.
func (mm *Manager) MarkerFor(sb *timeline.Subject) *Marker {
	for _, mk := range mm.Markers {
		if mk.Subject == sb {
			return mk
		}
	}
	return nil
}

// RevealVariants makes all of an event's variant markers visible,
// called when the event is focused.
func (mm *Manager) RevealVariants(ev *timeline.Event) {
	mm.setVariantsVisible(ev, true)
}

// HideVariants hides an event's non-main variant markers again, called
// when the event is closed.
func (mm *Manager) HideVariants(ev *timeline.Event) {
	mm.setVariantsVisible(ev, false)
}

func (mm *Manager) setVariantsVisible(ev *timeline.Event, vis bool) {
	for _, mk := range mm.Markers {
		if mk.Event != ev || mk.MainVariant {
			continue
		}
		mk.Invisible = !vis
		if mk.Pin != nil {
			mk.Pin.Invisible = !vis
		}
	}
}

// AddCityDots places the decorative city layer on the globe. City dots
// are not event markers: they are never tracked, filtered, or removed
// by the lifecycle.
func (mm *Manager) AddCityDots(cities []timeline.City) {
	if !mm.ready("add city dots") {
		return
	}
	sf := mm.Surfaces
	ms := sf.Stage.MeshByName("city-dot")
	if ms == nil {
		ms = scene.NewSphere(sf.Stage, "city-dot", sf.Radius*CityDotRadius, 12)
	}
	for _, ct := range cities {
		dot := scene.NewSolid(sf.Globe)
		dot.Name = "city-" + ct.Name
		dot.SetMesh(ms)
		dot.SetColor(colors.White)
		dot.Pose.Pos = geo.SpherePosition(ct.Lat, ct.Lon, sf.Radius*1.002)
	}
}
