// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo converts geographic and panel coordinates into 3D scene
// positions, and compares view directions angularly. All functions are
// pure and have no error paths: undefined inputs fall back to the
// documented center constants.
package geo

import "cogentcore.org/core/math32"

// PanelCenter is the normalized coordinate used for a missing panel
// coordinate: the center of the panel.
const PanelCenter = 50

// SpherePosition converts latitude and longitude in degrees into a 3D
// position on a sphere of the given radius centered at the origin,
// with the north pole on +Y and lon 0 facing the -X axis.
func SpherePosition(lat, lon, radius float32) math32.Vector3 {
	phi := math32.DegToRad(90 - lat)
	theta := math32.DegToRad(lon + 180)
	return math32.Vec3(
		-radius*math32.Sin(phi)*math32.Cos(theta),
		radius*math32.Cos(phi),
		radius*math32.Sin(phi)*math32.Sin(theta),
	)
}

// PanelPosition maps normalized 0..100 panel coordinates into the local
// frame of a panel of the given width and height, centered at the panel
// origin with +X right and +Y up. A nil coordinate defaults to the panel
// center, [PanelCenter].
func PanelPosition(x, y *float32, width, height float32) math32.Vector3 {
	xv := float32(PanelCenter)
	if x != nil {
		xv = *x
	}
	yv := float32(PanelCenter)
	if y != nil {
		yv = *y
	}
	return math32.Vec3(
		(xv/100-0.5)*width,
		(0.5-yv/100)*height,
		0,
	)
}

// LatLon converts a direction vector into latitude and longitude
// equivalents in radians. The vector need not be normalized.
func LatLon(dir math32.Vector3) (lat, lon float32) {
	d := dir.Normal()
	lat = math32.Asin(math32.Clamp(d.Y, -1, 1))
	lon = math32.Atan2(d.Z, d.X)
	return lat, lon
}

// AngularDistance returns the sum of the absolute latitude-equivalent
// and longitude-equivalent angular differences between two direction
// vectors, in radians, with longitude wrapping at ±π so directions on
// either side of the antimeridian compare as close.
func AngularDistance(a, b math32.Vector3) float32 {
	latA, lonA := LatLon(a)
	latB, lonB := LatLon(b)
	dlon := math32.Abs(lonA - lonB)
	if dlon > math32.Pi {
		dlon = 2*math32.Pi - dlon
	}
	return math32.Abs(latA-latB) + dlon
}
