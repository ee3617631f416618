// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "cogentcore.org/core/math32"

// Easing functions map linear progress 0..1 to eased progress 0..1.
// Callers pass the raw progress from a [TickFunc] through one of these
// before interpolating values.

// InQuad accelerates from zero velocity.
func InQuad(p float32) float32 {
	return p * p
}

// OutQuad decelerates to zero velocity.
func OutQuad(p float32) float32 {
	return 1 - (1-p)*(1-p)
}

// InCubic accelerates from zero velocity, more sharply than [InQuad].
func InCubic(p float32) float32 {
	return p * p * p
}

// OutCubic decelerates to zero velocity, more sharply than [OutQuad].
func OutCubic(p float32) float32 {
	q := 1 - p
	return 1 - q*q*q
}

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(p float32) float32 {
	if p < 0.5 {
		return 2 * p * p
	}
	q := 1 - p
	return 1 - 2*q*q
}

// Bell rises from 0 to 1 and back to 0, peaking at the midpoint.
// Used for transient effects such as the marker brightness flash.
func Bell(p float32) float32 {
	return math32.Sin(math32.Pi * p)
}
