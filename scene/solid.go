// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/tree"
)

// Solid is an individual 3D element with its own unique spatial transform
// and material properties, pointing to a mesh defining its shape.
type Solid struct {
	NodeBase

	// MeshName is the name of the mesh used for this solid;
	// all meshes are collected on the [Stage].
	MeshName string

	// Mesh is the cached [Mesh] object set from MeshName.
	Mesh Mesh

	// Material contains the surface properties (color, brightness).
	Material Material
}

// NewSolid adds a new [Solid] to the given parent.
func NewSolid(parent tree.Node) *Solid {
	return tree.New[Solid](parent)
}

func (sld *Solid) Init() {
	sld.Pose.Defaults()
	sld.Material.Defaults()
}

func (sld *Solid) IsSolid() bool {
	return true
}

func (sld *Solid) AsSolid() *Solid {
	return sld
}

// SetMesh sets the mesh for this solid.
func (sld *Solid) SetMesh(ms Mesh) *Solid {
	sld.Mesh = ms
	if sld.Mesh != nil {
		sld.MeshName = sld.Mesh.AsMeshBase().Name
	} else {
		sld.MeshName = ""
	}
	return sld
}

// SetColor sets the [Material.Color].
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	sld.Material.Color = v
	return sld
}

// SetPos sets the [Pose.Pos] position of the solid.
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.Pos.Set(x, y, z)
	return sld
}

// SetScale sets the [Pose.Scale] scale of the solid uniformly.
func (sld *Solid) SetScale(s float32) *Solid {
	sld.Pose.Scale.Set(s, s, s)
	return sld
}

var _ Node = &Solid{}
