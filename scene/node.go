// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a headless retained-mode 3D scene graph:
// tree-structured groups and solids with poses, materials, named meshes,
// and a perspective camera. It holds the spatial state that marker
// placement, animation, and camera logic operate on; rendering it to
// pixels is outside the scope of this package.
package scene

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// Node is the interface satisfied by all scene-graph nodes.
type Node interface {
	tree.Node

	// AsNodeBase returns the [NodeBase] for this node, which provides
	// the core pose and visibility functionality.
	AsNodeBase() *NodeBase

	// IsSolid returns whether the node is a [Solid],
	// with its own mesh and material.
	IsSolid() bool

	// AsSolid returns the node as a [Solid], or nil if it is not one.
	AsSolid() *Solid
}

// NodeBase provides the core functionality for all scene nodes.
// Higher-level node types must embed it.
type NodeBase struct {
	tree.NodeBase

	// Pose is the complete specification of position, orientation, and
	// scale, always relative to the parent node.
	Pose Pose

	// Invisible excludes the node and everything under it from display.
	Invisible bool
}

func (nb *NodeBase) Init() {
	nb.Pose.Defaults()
}

// AsNodeBase returns the [NodeBase] for this node.
func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

func (nb *NodeBase) AsSolid() *Solid {
	return nil
}

// AsNode returns the given tree node as a scene [Node] and [NodeBase].
// Both are nil if it is not a scene node.
func AsNode(n tree.Node) (Node, *NodeBase) {
	ni, ok := n.(Node)
	if !ok || ni == nil {
		return nil, nil
	}
	return ni, ni.AsNodeBase()
}

// IsVisible returns whether this node and all of its parents are visible.
func (nb *NodeBase) IsVisible() bool {
	if nb == nil || nb.This == nil || nb.Invisible {
		return false
	}
	if nb.Parent == nil {
		return true
	}
	_, pb := AsNode(nb.Parent)
	if pb == nil {
		return true
	}
	return pb.IsVisible()
}

// WorldPos returns the node's current world position. It is valid
// after [Stage.UpdateWorldMatrices] has run for the current frame.
func (nb *NodeBase) WorldPos() math32.Vector3 {
	pos := math32.Vector3{}
	pos.SetFromMatrixPos(&nb.Pose.WorldMatrix)
	return pos
}

// UpdateWorldMatrix updates the local and world matrices from the pose
// and the given parent world matrix (nil = identity, for root nodes).
func (nb *NodeBase) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	nb.Pose.UpdateMatrix()
	nb.Pose.UpdateWorldMatrix(parWorld)
}

// Group collects nodes in a scene but has no mesh or material of its own.
// Its pose applies to all nodes under it.
type Group struct {
	NodeBase
}

// NewGroup adds a new [Group] to the given parent.
func NewGroup(parent tree.Node) *Group {
	return tree.New[Group](parent)
}

// SetPos sets the [Pose.Pos] position of the group.
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pose.Pos.Set(x, y, z)
	return gp
}

var _ Node = &Group{}
