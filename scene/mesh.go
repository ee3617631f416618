// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Mesh parametrizes the shape used by a [Solid]. Meshes are registered
// by name on the [Stage] and shared across solids. As this package is
// headless, meshes carry shape parameters only, no vertex data.
type Mesh interface {
	// AsMeshBase returns the [MeshBase] for this mesh.
	AsMeshBase() *MeshBase
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {
	// Name is the name of the mesh. Solids link to meshes by name.
	Name string
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// Sphere is a sphere mesh with the given radius.
type Sphere struct {
	MeshBase

	// Radius of the sphere.
	Radius float32

	// Segments is the number of segments around and along the sphere.
	Segments int
}

// NewSphere adds a sphere mesh with the given name, radius, and number
// of segments to the stage.
func NewSphere(st *Stage, name string, radius float32, segments int) *Sphere {
	sp := &Sphere{MeshBase: MeshBase{Name: name}, Radius: radius, Segments: segments}
	st.SetMesh(sp)
	return sp
}

// Lines is a polyline mesh connecting the given points with the
// given line width.
type Lines struct {
	MeshBase

	// Points along the line, in local coordinates.
	Points []math32.Vector3

	// Width of the line.
	Width float32
}

// NewLines adds a lines mesh with the given name, points, and width
// to the stage.
func NewLines(st *Stage, name string, points []math32.Vector3, width float32) *Lines {
	ln := &Lines{MeshBase: MeshBase{Name: name}, Points: points, Width: width}
	st.SetMesh(ln)
	return ln
}

// Plane is a flat 2D plane mesh with the given width and height,
// with a normal pointing in the +Z direction.
type Plane struct {
	MeshBase

	// Width of the plane, along X.
	Width float32

	// Height of the plane, along Y.
	Height float32
}

// NewPlane adds a plane mesh with the given name and size to the stage.
func NewPlane(st *Stage, name string, width, height float32) *Plane {
	pl := &Plane{MeshBase: MeshBase{Name: name}, Width: width, Height: height}
	st.SetMesh(pl)
	return pl
}

// SetMesh sets / updates the given mesh, replacing any existing mesh
// of the same name.
func (st *Stage) SetMesh(ms Mesh) {
	if st.Meshes == nil {
		st.Meshes = map[string]Mesh{}
	}
	st.Meshes[ms.AsMeshBase().Name] = ms
}

// MeshByName looks for a mesh by name, returning nil if not found.
func (st *Stage) MeshByName(name string) Mesh {
	return st.Meshes[name]
}

// MeshByNameTry looks for a mesh by name, returning an error if not found.
func (st *Stage) MeshByNameTry(name string) (Mesh, error) {
	ms, ok := st.Meshes[name]
	if ok {
		return ms, nil
	}
	return nil, fmt.Errorf("scene.Stage: mesh named %q not found in stage %q", name, st.Name)
}
