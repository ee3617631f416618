// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/colors"
)

// Material describes the surface properties of a [Solid]. The main color
// is used for both ambient and diffuse color. The Emissive color is only
// for glowing objects.
type Material struct {
	// Color is the main color of the surface. The alpha component
	// determines its base transparency.
	Color color.RGBA

	// Opacity is a 0..1 multiplier on the color's alpha at display time.
	// It is a separate field so fade animations never rewrite Color:
	// alpha round-trips through premultiplied RGBA are lossy, and a
	// fade to 0 would destroy the color's RGB channels.
	Opacity float32

	// Emissive is the color the surface emits independent of any
	// lighting; it can be used for marking highlighted objects.
	Emissive color.RGBA

	// Bright is an overall multiplier on the final computed color value,
	// for tuning overall brightness relative to other surfaces.
	Bright float32
}

// Defaults sets default material parameters.
func (mt *Material) Defaults() {
	mt.Color = colors.Gray
	mt.Opacity = 1
	mt.Bright = 1
}
