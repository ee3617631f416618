// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package globe manages the event markers on the timeline's surfaces:
// the globe itself, the moon and mars panels, and the station satellite.
// It builds markers for the current page of events, locks and unlocks
// them as the filter set changes, and choreographs the animated bulk
// add / remove lifecycle. Everything runs on the single frame loop.
package globe

import (
	"cogentcore.org/core/math32"

	"github.com/chronoglobe/chronoglobe/scene"
	"github.com/chronoglobe/chronoglobe/timeline"
)

// Panel is a flat auxiliary surface (moon or mars) positioned next to
// the globe, addressed by normalized 0..100 coordinates.
type Panel struct {
	// Group is the scene node the panel's markers are parented under.
	Group *scene.Group

	// Width and Height of the panel in scene units.
	Width  float32
	Height float32
}

// Surfaces holds the scene nodes markers can be placed on. Moon, Mars,
// and Satellite may be nil; events targeting a missing surface are
// skipped at placement time.
type Surfaces struct {
	// Stage is the scene root, which owns meshes and the camera.
	Stage *scene.Stage

	// Globe is the rotating earth group; earth markers and city dots
	// are parented under it so they rotate with it.
	Globe *scene.Group

	// Radius of the globe sphere.
	Radius float32

	// Moon and Mars panels, if present.
	Moon *Panel
	Mars *Panel

	// Satellite is the node for station events, if present.
	Satellite *scene.Group
}

// NewSurfaces builds the standard surface layout on a new stage: a globe
// of the given radius at the origin, moon and mars panels to either
// side, and a satellite above the globe.
func NewSurfaces(radius float32) *Surfaces {
	st := scene.NewStage("chronoglobe")
	sf := &Surfaces{Stage: st, Radius: radius}

	sf.Globe = scene.NewGroup(st)
	sf.Globe.Name = "globe"
	globe := scene.NewSolid(sf.Globe)
	globe.Name = "globe-sphere"
	globe.SetMesh(scene.NewSphere(st, "globe-sphere", radius, 64))

	pw, ph := radius*0.8, radius*0.6

	moon := scene.NewGroup(st)
	moon.Name = "moon-panel"
	moon.SetPos(-radius*2.2, radius*0.6, 0)
	moonBack := scene.NewSolid(moon)
	moonBack.Name = "moon-backing"
	moonBack.SetMesh(scene.NewPlane(st, "moon-backing", pw, ph))
	sf.Moon = &Panel{Group: moon, Width: pw, Height: ph}

	mars := scene.NewGroup(st)
	mars.Name = "mars-panel"
	mars.SetPos(radius*2.2, radius*0.6, 0)
	marsBack := scene.NewSolid(mars)
	marsBack.Name = "mars-backing"
	marsBack.SetMesh(scene.NewPlane(st, "mars-backing", pw, ph))
	sf.Mars = &Panel{Group: mars, Width: pw, Height: ph}

	sat := scene.NewGroup(st)
	sat.Name = "satellite"
	sat.SetPos(0, radius*1.6, 0)
	satBody := scene.NewSolid(sat)
	satBody.Name = "satellite-body"
	satBody.SetMesh(scene.NewSphere(st, "satellite-body", radius*0.06, 16))
	sf.Satellite = sat

	return sf
}

// Panel returns the panel for the given location type, or nil.
func (sf *Surfaces) Panel(lt timeline.LocationType) *Panel {
	switch lt {
	case timeline.Moon:
		return sf.Moon
	case timeline.Mars:
		return sf.Mars
	}
	return nil
}

// GlobeRotation returns the globe's current rotation as Euler angles
// in radians.
func (sf *Surfaces) GlobeRotation() math32.Vector3 {
	return sf.Globe.Pose.EulerRotationRad()
}
