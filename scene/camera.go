// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

// Camera defines the properties of the perspective camera.
type Camera struct {
	// Pose is the overall orientation and direction of the camera,
	// relative to pointing at the negative Z axis with positive Y up.
	Pose Pose

	// Target is the location the camera is pointing at. It defaults to
	// the origin and is reset by a call to [Camera.LookAt].
	Target math32.Vector3

	// UpDir is the up direction for the camera. It defaults to positive
	// Y and is reset by a call to [Camera.LookAt].
	UpDir math32.Vector3

	// FOV is the field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width / height).
	Aspect float32

	// Near plane Z coordinate.
	Near float32

	// Far plane Z coordinate.
	Far float32
}

func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = .01
	cm.Far = 1000
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to the default location and
// orientation, looking at the origin from (0, 0, 10) with Y up.
func (cm *Camera) DefaultPose() {
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAtOrigin()
}

// LookAt points the camera at the given target location using the given
// up direction, and sets the Target and UpDir fields for future moves.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
}

// LookAtOrigin points the camera at the origin with Y up.
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// LookAtTarget points the camera at the current target using the
// current up direction.
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewVector is the vector between the camera position and target.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Pos.Sub(cm.Target)
}

// ViewDir is the normalized direction the camera is looking in,
// from the camera position toward the target.
func (cm *Camera) ViewDir() math32.Vector3 {
	return cm.Target.Sub(cm.Pose.Pos).Normal()
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left / right, delY = up / down), keeping the same distance
// from the target and rotating the up direction to keep looking at it.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir == (math32.Vector3{}) {
		ctdir.Set(0, 0, 1)
	}
	up := cm.UpDir
	right := cm.UpDir.Cross(ctdir.Normal()).Normal()

	// delX rotates around the up vector, delY around the right vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pose.Pos = cm.Pose.Pos.Add(dx).Add(dy)
	cm.UpDir = cm.UpDir.MulQuat(dyq)

	cm.LookAtTarget()
}

// Zoom moves the camera along the view axis by the given percent closer
// (positive) or further (negative) from the target. It also moves the
// target back if the distance drops below 1.
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis == (math32.Vector3{}) {
		ctaxis.Set(0, 0, 1)
	}
	dist := ctaxis.Length()
	del := ctaxis.MulScalar(zoomPct)
	cm.Pose.Pos = cm.Pose.Pos.Add(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target = cm.Target.Add(del)
	}
}
