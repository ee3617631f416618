// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

// Pose contains the full specification of position, orientation, and scale,
// always relative to the parent element.
type Pose struct {
	// Pos is the position of the center of the element, relative to parent.
	Pos math32.Vector3

	// Scale is the scale relative to parent.
	Scale math32.Vector3

	// Quat is the rotation specified as a quaternion, relative to parent.
	Quat math32.Quat

	// Matrix is the local matrix: all position, rotation, and scale
	// information relative to the parent.
	Matrix math32.Matrix4

	// ParMatrix is the parent's world matrix, cached so the world matrix
	// can be updated independently.
	ParMatrix math32.Matrix4

	// WorldMatrix contains all absolute position, rotation, and scale
	// information, relative to the top of the scene tree.
	WorldMatrix math32.Matrix4
}

// Defaults sets defaults only if current values are nil.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// UpdateMatrix updates the local matrix from the position, quaternion,
// and scale, checking for degenerate nil values first.
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world matrix from the local matrix and
// the given parent world matrix (nil = identity, for root nodes).
// It does not call UpdateMatrix.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld == nil {
		ps.ParMatrix.SetIdentity()
	} else {
		ps.ParMatrix = *parWorld
	}
	ps.WorldMatrix.MulMatrices(&ps.ParMatrix, &ps.Matrix)
}

// CopyFrom copies just the pose information from the other pose,
// critically not copying the ParMatrix, so that is preserved.
func (ps *Pose) CopyFrom(op *Pose) {
	ps.Pos = op.Pos
	ps.Scale = op.Scale
	ps.Quat = op.Quat
	ps.UpdateMatrix()
}

// SetAxisRotation sets the rotation from a local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// SetEulerRotation sets the rotation in Euler angles (degrees).
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor))
}

// SetEulerRotationRad sets the rotation in Euler angles (radians).
func (ps *Pose) SetEulerRotationRad(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z))
}

// EulerRotationRad returns the current rotation in Euler angles (radians).
func (ps *Pose) EulerRotationRad() math32.Vector3 {
	return ps.Quat.ToEuler()
}

// LookAt points the element at the given target location using the
// given up direction.
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(ps.Pos, target, upDir))
}
