// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestSpherePosition(t *testing.T) {
	np := SpherePosition(90, 0, 10)
	assert.InDelta(t, 0, np.X, 1e-3)
	assert.InDelta(t, 10, np.Y, 1e-3)
	assert.InDelta(t, 0, np.Z, 1e-3)

	sp := SpherePosition(-90, 135, 10)
	assert.InDelta(t, -10, sp.Y, 1e-3)

	eq := SpherePosition(0, 0, 10)
	assert.InDelta(t, 0, eq.Y, 1e-3)
	assert.InDelta(t, 10, eq.Length(), 1e-3)

	// same point regardless of longitude representation
	a := SpherePosition(30, 180, 5)
	b := SpherePosition(30, -180, 5)
	assert.InDelta(t, 0, a.Sub(b).Length(), 1e-3)
}

func TestPanelPosition(t *testing.T) {
	x, y := float32(0), float32(0)
	tl := PanelPosition(&x, &y, 20, 10)
	assert.InDelta(t, -10, tl.X, 1e-4)
	assert.InDelta(t, 5, tl.Y, 1e-4)

	cx, cy := float32(50), float32(50)
	c := PanelPosition(&cx, &cy, 20, 10)
	assert.Equal(t, math32.Vector3{}, c)

	// missing coordinates default to the panel center
	assert.Equal(t, math32.Vector3{}, PanelPosition(nil, nil, 20, 10))
	only := PanelPosition(&x, nil, 20, 10)
	assert.InDelta(t, -10, only.X, 1e-4)
	assert.InDelta(t, 0, only.Y, 1e-4)
}

func TestAngularDistance(t *testing.T) {
	a := math32.Vec3(1, 0, 0)
	assert.InDelta(t, 0, AngularDistance(a, a), 1e-5)

	b := math32.Vec3(0, 1, 0)
	assert.InDelta(t, math32.Pi/2, AngularDistance(a, b), 1e-4)

	// wraparound at the antimeridian: directions just either side of
	// lon = ±π are close, not 2π apart
	c := math32.Vec3(-1, 0, 0.01)
	d := math32.Vec3(-1, 0, -0.01)
	assert.Less(t, AngularDistance(c, d), float32(0.05))

	// magnitude does not matter
	assert.InDelta(t, AngularDistance(a, b), AngularDistance(a.MulScalar(7), b.MulScalar(0.2)), 1e-4)
}
