// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package focus tracks the "event open" camera session: rotating the
// view to the focused marker, detecting when the camera and globe have
// actually come to rest on it, and showing the event's fullscreen image
// overlay only after the view has been continuously still. Everything is
// evaluated per frame by the owning render loop; there are no threads.
package focus

import (
	"time"

	"cogentcore.org/core/math32"

	"github.com/chronoglobe/chronoglobe/anim"
	"github.com/chronoglobe/chronoglobe/geo"
	"github.com/chronoglobe/chronoglobe/globe"
)

const (
	// RotateStopEpsilon is the angular distance at which the
	// rotate-to-target animation stops driving the camera.
	RotateStopEpsilon = 0.002

	// RecenterEpsilon is the angular distance under which the view
	// counts as recentered on the focused marker. Deliberately looser
	// than [RotateStopEpsilon] so the stillness detector can never fire
	// before the rotation has actually stopped.
	RecenterEpsilon = 4 * RotateStopEpsilon

	// MotionEpsilon is the per-tick camera-position / globe-rotation
	// delta under which the view counts as settled, filtering out
	// residual damping momentum.
	MotionEpsilon = 1e-4

	// StillnessWindow is how long the view must be continuously still
	// before the image overlay auto-shows.
	StillnessWindow = 500 * time.Millisecond

	// RotateDuration is the length of the rotate-to-target animation.
	RotateDuration = 800 * time.Millisecond

	// RestoreDuration is the length of the camera restore animation
	// when the event is closed.
	RestoreDuration = 600 * time.Millisecond
)

// Overlay is the fullscreen event image. The detector only ever shows
// and temporarily hides it; the persistent show / hide preference
// belongs to the user via [Detector.SetToggle].
type Overlay interface {
	Show()
	Hide()
	Visible() bool
}

// Detector is the per-frame camera recenter and stillness evaluator for
// one focused event marker. [Detector.Focus] opens a session and
// [Detector.Release] closes it, restoring the pre-focus view.
type Detector struct {
	// Surfaces give access to the stage, camera, and globe rotation.
	Surfaces *globe.Surfaces

	// Sched steps the rotate and restore animations.
	Sched *anim.Scheduler

	// Overlay is the image overlay being auto-shown.
	Overlay Overlay

	// Marker is the currently focused marker; nil when idle.
	Marker *globe.Marker

	toggle bool

	savedCamPos   math32.Vector3
	savedCamQuat  math32.Quat
	savedGlobeRot math32.Vector3

	lastCamPos   math32.Vector3
	lastGlobeRot math32.Vector3
	stillSince   time.Time
	dragging     bool

	moveAnim *anim.Anim
}

// NewDetector returns an idle [Detector]. The overlay toggle starts on.
func NewDetector(sf *globe.Surfaces, sched *anim.Scheduler, ov Overlay) *Detector {
	return &Detector{Surfaces: sf, Sched: sched, Overlay: ov, toggle: true}
}

// Toggle reports the user's persistent overlay preference.
func (dt *Detector) Toggle() bool {
	return dt.toggle
}

// SetToggle sets the user's persistent overlay preference. Turning it
// off hides the overlay; turning it on lets the stillness timer
// re-show it.
func (dt *Detector) SetToggle(on bool) {
	dt.toggle = on
	if !on && dt.Overlay.Visible() {
		dt.Overlay.Hide()
	}
}

// TargetDir returns the normalized world-space direction from the globe
// center to the focused marker.
func (dt *Detector) TargetDir() math32.Vector3 {
	dt.Surfaces.Stage.UpdateWorldMatrices()
	return dt.Marker.WorldPos().Normal()
}

// Focus opens a session on the given marker: the current camera pose
// and globe rotation are stored for the later restore, and the camera
// starts an eased rotation toward the marker's bearing, stopping early
// once within [RotateStopEpsilon].
func (dt *Detector) Focus(mk *globe.Marker) {
	cam := &dt.Surfaces.Stage.Camera
	if dt.Marker == nil {
		// keep the original pre-focus view across focus-to-focus jumps
		dt.savedCamPos = cam.Pose.Pos
		dt.savedCamQuat = cam.Pose.Quat
		dt.savedGlobeRot = dt.Surfaces.GlobeRotation()
	}
	dt.Marker = mk
	dt.stillSince = time.Time{}
	dt.lastCamPos = cam.Pose.Pos
	dt.lastGlobeRot = dt.Surfaces.GlobeRotation()

	dt.moveAnim.Cancel()
	startPos := cam.Pose.Pos
	dist := startPos.Length()
	startDir := startPos.Normal()
	targetDir := dt.TargetDir()
	var tok *anim.Anim
	tok = dt.Sched.Schedule(RotateDuration, func(p float32) {
		t := anim.InOutQuad(p)
		dir := startDir.MulScalar(1 - t).Add(targetDir.MulScalar(t)).Normal()
		cam.Pose.Pos = dir.MulScalar(dist)
		cam.LookAtOrigin()
		if geo.AngularDistance(dir, targetDir) < RotateStopEpsilon {
			cam.Pose.Pos = targetDir.MulScalar(dist)
			cam.LookAtOrigin()
			tok.Cancel()
		}
	}, func() {
		cam.Pose.Pos = targetDir.MulScalar(dist)
		cam.LookAtOrigin()
	})
	dt.moveAnim = tok
}

// OnDragStart is invoked by the render loop when the user starts
// dragging. The overlay is temporarily hidden without touching the
// persistent toggle, the stillness timer resets, and any in-flight
// rotate animation stops fighting the drag.
func (dt *Detector) OnDragStart() {
	dt.dragging = true
	dt.stillSince = time.Time{}
	dt.moveAnim.Cancel()
	if dt.Overlay.Visible() {
		dt.Overlay.Hide()
	}
}

// OnDragEnd is invoked by the render loop when the drag ends.
func (dt *Detector) OnDragEnd() {
	dt.dragging = false
}

// Recentered reports whether the camera direction is within
// [RecenterEpsilon] of the focused marker's bearing.
func (dt *Detector) Recentered() bool {
	if dt.Marker == nil {
		return false
	}
	camDir := dt.Surfaces.Stage.Camera.Pose.Pos.Normal()
	return geo.AngularDistance(camDir, dt.TargetDir()) < RecenterEpsilon
}

// Check is the per-frame evaluation: it measures camera and globe
// motion since the previous tick and, once the view has been
// recentered, settled, and not dragged continuously for
// [StillnessWindow] with the toggle on and the overlay hidden, shows
// the overlay exactly once. A later hide restarts the cycle.
func (dt *Detector) Check(now time.Time) {
	cam := &dt.Surfaces.Stage.Camera
	camPos := cam.Pose.Pos
	globeRot := dt.Surfaces.GlobeRotation()
	settled := camPos.Sub(dt.lastCamPos).Length() < MotionEpsilon &&
		globeRot.Sub(dt.lastGlobeRot).Length() < MotionEpsilon
	dt.lastCamPos = camPos
	dt.lastGlobeRot = globeRot

	if dt.Marker == nil {
		return
	}
	if !dt.toggle || dt.Overlay.Visible() || dt.dragging || !settled || !dt.Recentered() {
		dt.stillSince = time.Time{}
		return
	}
	if dt.stillSince.IsZero() {
		dt.stillSince = now
		return
	}
	if now.Sub(dt.stillSince) >= StillnessWindow {
		dt.Overlay.Show()
		dt.stillSince = time.Time{}
	}
}

// Release closes the session: all transient state clears, the overlay
// hides, and the camera and globe ease back to their pre-focus pose.
func (dt *Detector) Release() {
	if dt.Marker == nil {
		return
	}
	dt.Marker = nil
	dt.stillSince = time.Time{}
	dt.dragging = false
	if dt.Overlay.Visible() {
		dt.Overlay.Hide()
	}
	dt.moveAnim.Cancel()

	cam := &dt.Surfaces.Stage.Camera
	startPos := cam.Pose.Pos
	startRot := dt.Surfaces.GlobeRotation()
	targetPos := dt.savedCamPos
	targetQuat := dt.savedCamQuat
	targetRot := dt.savedGlobeRot
	globeNode := dt.Surfaces.Globe
	var tok *anim.Anim
	tok = dt.Sched.Schedule(RestoreDuration, func(p float32) {
		t := anim.OutCubic(p)
		cam.Pose.Pos = startPos.MulScalar(1 - t).Add(targetPos.MulScalar(t))
		cam.LookAtOrigin()
		globeNode.Pose.SetEulerRotationRad(
			math32.Lerp(startRot.X, targetRot.X, t),
			math32.Lerp(startRot.Y, targetRot.Y, t),
			math32.Lerp(startRot.Z, targetRot.Z, t),
		)
	}, func() {
		cam.Pose.Pos = targetPos
		cam.Pose.Quat = targetQuat
		globeNode.Pose.SetEulerRotationRad(targetRot.X, targetRot.Y, targetRot.Z)
	})
	dt.moveAnim = tok
}
