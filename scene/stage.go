// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/tree"
)

// Stage is the root of the scene graph, containing nodes as children.
// It owns the camera and the registry of named meshes.
type Stage struct {
	NodeBase

	// Camera determines the view onto the scene.
	Camera Camera

	// Background color of the scene.
	Background color.RGBA

	// Meshes holds all mesh shape data, accessed by name.
	Meshes map[string]Mesh
}

// NewStage creates a new root [Stage] with the given name.
func NewStage(name string) *Stage {
	st := tree.New[Stage]()
	st.Name = name
	return st
}

func (st *Stage) Init() {
	st.NodeBase.Init()
	st.Camera.Defaults()
	st.Background = colors.Black
	st.Meshes = map[string]Mesh{}
}

// UpdateWorldMatrices updates the local and world matrices of every node
// in the scene, top-down, so parent matrices are current before children.
// Call once per frame after poses have changed and before any use of
// world positions.
func (st *Stage) UpdateWorldMatrices() {
	st.WalkDown(func(n tree.Node) bool {
		ni, nb := AsNode(n)
		if ni == nil {
			return tree.Break
		}
		if nb.Parent == nil {
			nb.UpdateWorldMatrix(nil)
			return tree.Continue
		}
		_, pb := AsNode(nb.Parent)
		if pb == nil {
			nb.UpdateWorldMatrix(nil)
		} else {
			nb.UpdateWorldMatrix(&pb.Pose.WorldMatrix)
		}
		return tree.Continue
	})
}

var _ Node = &Stage{}
