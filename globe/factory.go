// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"

	"github.com/chronoglobe/chronoglobe/geo"
	"github.com/chronoglobe/chronoglobe/scene"
	"github.com/chronoglobe/chronoglobe/timeline"
)

// DeviceClass selects the marker sizing for the current device. Mobile
// markers render larger for touch targets.
type DeviceClass int32

const (
	Desktop DeviceClass = iota
	Mobile
)

// Marker sizing and surface offsets, in fractions of the globe radius.
const (
	// MainMarkerRadius and VariantMarkerRadius size the marker spheres.
	MainMarkerRadius    float32 = 0.022
	VariantMarkerRadius float32 = 0.016

	// MobileSizeFactor scales markers up on mobile devices.
	MobileSizeFactor float32 = 1.5

	// MarkerElevation lifts earth markers above the surface so the pin
	// line below them is visible.
	MarkerElevation float32 = 1.12

	// PanelMarkerOffset lifts panel markers off their backing plane.
	PanelMarkerOffset float32 = 0.03

	// PinWidth is the pin line width.
	PinWidth float32 = 0.002
)

// MainMarkerColor and VariantMarkerColor are the unlocked steady-state
// marker colors by role.
var (
	MainMarkerColor    = colors.Orange
	VariantMarkerColor = colors.Pink
)

// Placement is a resolved marker position: the surface node to parent
// under, the marker position in that node's local space, and the anchor
// the pin line starts from.
type Placement struct {
	// Parent is the surface node the marker attaches to.
	Parent *scene.Group

	// Pos is the marker position, local to Parent.
	Pos math32.Vector3

	// Anchor is the pin line start point, local to Parent. A geodesic
	// surface point for earth, the surface origin otherwise.
	Anchor math32.Vector3
}

// Factory builds markers for event subjects on the registered surfaces.
type Factory struct {
	// Surfaces are the placement targets.
	Surfaces *Surfaces

	// Device selects marker sizing.
	Device DeviceClass

	nmark int
}

// NewFactory returns a [Factory] placing markers on the given surfaces.
func NewFactory(sf *Surfaces, device DeviceClass) *Factory {
	return &Factory{Surfaces: sf, Device: device}
}

// PositionFor resolves the surface placement for the given subject.
// Returns false, with a logged warning, if the subject's surface is not
// registered; the caller skips that marker.
func (fc *Factory) PositionFor(sb *timeline.Subject) (Placement, bool) {
	sf := fc.Surfaces
	switch sb.Location {
	case timeline.Earth:
		r := sf.Radius
		return Placement{
			Parent: sf.Globe,
			Pos:    geo.SpherePosition(sb.Lat, sb.Lon, r*MarkerElevation),
			Anchor: geo.SpherePosition(sb.Lat, sb.Lon, r),
		}, true
	case timeline.Moon, timeline.Mars:
		pn := sf.Panel(sb.Location)
		if pn == nil {
			slog.Warn("globe: no panel for subject, skipping marker",
				"subject", sb.Name, "location", sb.Location)
			return Placement{}, false
		}
		pos := geo.PanelPosition(sb.X, sb.Y, pn.Width, pn.Height)
		pos.Z = sf.Radius * PanelMarkerOffset
		return Placement{Parent: pn.Group, Pos: pos}, true
	case timeline.Station:
		if sf.Satellite == nil {
			slog.Warn("globe: no satellite for subject, skipping marker",
				"subject", sb.Name, "location", sb.Location)
			return Placement{}, false
		}
		return Placement{
			Parent: sf.Satellite,
			Pos:    math32.Vec3(0, sf.Radius*PanelMarkerOffset*2, 0),
		}, true
	}
	slog.Warn("globe: unknown location type, skipping marker",
		"subject", sb.Name, "location", sb.Location)
	return Placement{}, false
}

// Build creates the [Marker] and [PinLine] for one subject, sized and
// colored by role and device class. Non-main variant markers start
// invisible. Returns nil if the subject's surface is not registered.
func (fc *Factory) Build(ev *timeline.Event, sb *timeline.Subject, main bool) *Marker {
	pl, ok := fc.PositionFor(sb)
	if !ok {
		return nil
	}
	fc.nmark++

	mk := NewMarker(pl.Parent)
	mk.Name = sb.Name
	mk.Subject = sb
	mk.Event = ev
	mk.MainVariant = main
	mk.OriginalScale = 1
	mk.OriginalColor = fc.roleColor(main)
	mk.SetMesh(fc.roleMesh(main))
	mk.SetColor(mk.OriginalColor)
	mk.Pose.Pos = pl.Pos
	if !main {
		mk.Invisible = true
	}

	pin := NewPinLine(pl.Parent)
	pin.Name = fmt.Sprintf("pin-%d", fc.nmark)
	pin.Marker = mk
	pin.OriginalColor = colors.WithAF32(mk.OriginalColor, 0.6)
	pin.SetMesh(scene.NewLines(fc.Surfaces.Stage, pin.Name,
		[]math32.Vector3{pl.Anchor, pl.Pos}, fc.Surfaces.Radius*PinWidth))
	pin.SetColor(pin.OriginalColor)
	pin.Invisible = mk.Invisible
	mk.Pin = pin

	return mk
}

// roleColor returns the steady-state unlocked color for a role.
func (fc *Factory) roleColor(main bool) color.RGBA {
	if main {
		return MainMarkerColor
	}
	return VariantMarkerColor
}

// roleMesh returns the shared marker mesh for a role and the current
// device class, registering it on the stage on first use.
func (fc *Factory) roleMesh(main bool) scene.Mesh {
	name, radius := "marker-variant", VariantMarkerRadius
	if main {
		name, radius = "marker-main", MainMarkerRadius
	}
	if fc.Device == Mobile {
		name += "-mobile"
		radius *= MobileSizeFactor
	}
	if ms := fc.Surfaces.Stage.MeshByName(name); ms != nil {
		return ms
	}
	return scene.NewSphere(fc.Surfaces.Stage, name, fc.Surfaces.Radius*radius, 24)
}
