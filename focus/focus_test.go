// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package focus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoglobe/chronoglobe/anim"
	"github.com/chronoglobe/chronoglobe/geo"
	"github.com/chronoglobe/chronoglobe/globe"
	"github.com/chronoglobe/chronoglobe/timeline"
)

type fakeOverlay struct {
	visible bool
	shows   int
}

func (f *fakeOverlay) Show()         { f.visible = true; f.shows++ }
func (f *fakeOverlay) Hide()         { f.visible = false }
func (f *fakeOverlay) Visible() bool { return f.visible }

func newTestDetector(t *testing.T) (*Detector, *globe.Marker, *fakeOverlay, *anim.Scheduler) {
	t.Helper()
	ev := &timeline.Event{Subject: timeline.Subject{
		Name: "e1", Location: timeline.Earth, Lat: 35.68, Lon: 139.69,
	}}
	lb := timeline.NewLibrary(10)
	lb.Events = []*timeline.Event{ev}
	sched := anim.NewScheduler()
	mm := globe.NewManager(globe.NewSurfaces(10), lb, sched, globe.Desktop)
	mm.AddMarkers([]*timeline.Event{ev}, false)
	require.Len(t, mm.Markers, 1)

	ov := &fakeOverlay{}
	dt := NewDetector(mm.Surfaces, sched, ov)
	return dt, mm.Markers[0], ov, sched
}

func run(sched *anim.Scheduler) {
	now := time.Now()
	for i := 0; sched.Active() > 0 && i < 1000; i++ {
		sched.Step(now)
		now = now.Add(50 * time.Millisecond)
	}
}

func TestEpsilonRelationship(t *testing.T) {
	assert.Greater(t, float32(RecenterEpsilon), float32(RotateStopEpsilon))
}

func TestFocusRotatesToMarker(t *testing.T) {
	dt, mk, _, sched := newTestDetector(t)
	cam := &dt.Surfaces.Stage.Camera
	startDist := cam.Pose.Pos.Length()

	dt.Focus(mk)
	assert.False(t, dt.Recentered())
	run(sched)

	camDir := cam.Pose.Pos.Normal()
	assert.Less(t, geo.AngularDistance(camDir, dt.TargetDir()), float32(RotateStopEpsilon))
	assert.InDelta(t, startDist, cam.Pose.Pos.Length(), 1e-3)
	assert.True(t, dt.Recentered())
}

func TestStillnessShowsOverlayOnce(t *testing.T) {
	dt, mk, ov, sched := newTestDetector(t)
	dt.Focus(mk)
	run(sched)

	t0 := time.Now()
	dt.Check(t0) // motion since focus, clears the timer
	dt.Check(t0.Add(16 * time.Millisecond))
	dt.Check(t0.Add(200 * time.Millisecond))
	assert.Equal(t, 0, ov.shows)

	dt.Check(t0.Add(600 * time.Millisecond))
	assert.Equal(t, 1, ov.shows)
	assert.True(t, ov.visible)

	// overlay visible: no retrigger while it stays up
	dt.Check(t0.Add(2 * time.Second))
	dt.Check(t0.Add(4 * time.Second))
	assert.Equal(t, 1, ov.shows)

	// a hide restarts the cycle
	ov.Hide()
	dt.Check(t0.Add(5 * time.Second))
	dt.Check(t0.Add(6 * time.Second))
	assert.Equal(t, 2, ov.shows)
}

func TestDragCancelsPendingShow(t *testing.T) {
	dt, mk, ov, sched := newTestDetector(t)
	dt.Focus(mk)
	run(sched)

	t0 := time.Now()
	dt.Check(t0)
	dt.Check(t0.Add(16 * time.Millisecond)) // timer starts
	dt.OnDragStart()

	// past the window, but dragging: no show
	dt.Check(t0.Add(700 * time.Millisecond))
	dt.Check(t0.Add(1400 * time.Millisecond))
	assert.Equal(t, 0, ov.shows)

	dt.OnDragEnd()
	dt.Check(t0.Add(1500 * time.Millisecond)) // timer restarts from here
	dt.Check(t0.Add(1700 * time.Millisecond))
	assert.Equal(t, 0, ov.shows)
	dt.Check(t0.Add(2100 * time.Millisecond))
	assert.Equal(t, 1, ov.shows)
}

func TestDragTemporarilyHidesOverlay(t *testing.T) {
	dt, mk, ov, sched := newTestDetector(t)
	dt.Focus(mk)
	run(sched)
	ov.Show()

	dt.OnDragStart()
	assert.False(t, ov.visible)
	assert.True(t, dt.Toggle()) // persistent preference untouched
}

func TestToggleOffSuppressesShow(t *testing.T) {
	dt, mk, ov, sched := newTestDetector(t)
	dt.Focus(mk)
	run(sched)
	dt.SetToggle(false)

	t0 := time.Now()
	dt.Check(t0)
	dt.Check(t0.Add(16 * time.Millisecond))
	dt.Check(t0.Add(time.Second))
	assert.Equal(t, 0, ov.shows)

	ov.Show()
	dt.SetToggle(false)
	assert.False(t, ov.visible)
}

func TestReleaseRestoresView(t *testing.T) {
	dt, mk, ov, sched := newTestDetector(t)
	cam := &dt.Surfaces.Stage.Camera
	origPos := cam.Pose.Pos
	origRot := dt.Surfaces.GlobeRotation()

	dt.Focus(mk)
	run(sched)
	assert.NotEqual(t, origPos, cam.Pose.Pos)
	ov.Show()

	dt.Release()
	assert.Nil(t, dt.Marker)
	assert.False(t, ov.visible)
	run(sched)
	assert.InDelta(t, origPos.X, cam.Pose.Pos.X, 1e-4)
	assert.InDelta(t, origPos.Y, cam.Pose.Pos.Y, 1e-4)
	assert.InDelta(t, origPos.Z, cam.Pose.Pos.Z, 1e-4)
	assert.InDelta(t, origRot.Y, dt.Surfaces.GlobeRotation().Y, 1e-4)

	// releasing when idle is a no-op
	dt.Release()
	assert.Equal(t, 0, sched.Active())
}
