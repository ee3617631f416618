// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLibrary = `
[[events]]
name = "Omnic Crisis Begins"
description = "The omnics turn on their creators."
location = "earth"
lat = 35.68
lon = 139.69
filters = ["Tracer"]
factions = ["Overwatch"]

[[events]]
name = "Lunar Uprising"
image = "horizon.png"
location = "moon"
x = 42.0
factions = ["Lucheng"]

[[events]]
name = "Fall of the Watchpoint"
location = "earth"
lat = 36.14
lon = -5.35
filters = ["Reaper", "Soldier76"]

  [[events.variants]]
  name = "Fall of the Watchpoint: Inside"
  location = "earth"
  lat = 36.14
  lon = -5.35
  filters = ["Reaper"]

[[events]]
name = "Station Incident"
location = "station"
factions = ["Overwatch"]
`

func TestLoadEvents(t *testing.T) {
	lb := NewLibrary(2)
	require.NoError(t, lb.LoadEvents([]byte(testLibrary)))
	require.Len(t, lb.Events, 4)

	ev := lb.Events[0]
	assert.Equal(t, "Omnic Crisis Begins", ev.Name)
	assert.Equal(t, Earth, ev.Location)
	assert.InDelta(t, 35.68, ev.Lat, 1e-4)
	assert.Equal(t, []string{"Tracer"}, ev.Filters)

	moon := lb.Events[1]
	assert.Equal(t, Moon, moon.Location)
	require.NotNil(t, moon.X)
	assert.InDelta(t, 42, *moon.X, 1e-4)
	assert.Nil(t, moon.Y)

	multi := lb.Events[2]
	require.Len(t, multi.Variants, 1)
	assert.Equal(t, "Fall of the Watchpoint: Inside", multi.Variants[0].Name)

	assert.Equal(t, Station, lb.Events[3].Location)
}

func TestLoadEventsBadLocation(t *testing.T) {
	lb := NewLibrary(2)
	err := lb.LoadEvents([]byte("[[events]]\nname = \"x\"\nlocation = \"venus\"\n"))
	assert.Error(t, err)
}

func TestPagination(t *testing.T) {
	lb := NewLibrary(2)
	require.NoError(t, lb.LoadEvents([]byte(testLibrary)))

	assert.Equal(t, 2, lb.NumPages())
	page := lb.EventsForCurrentPage()
	require.Len(t, page, 2)
	assert.Equal(t, "Omnic Crisis Begins", page[0].Name)

	lb.NextPage()
	page = lb.EventsForCurrentPage()
	require.Len(t, page, 2)
	assert.Equal(t, "Fall of the Watchpoint", page[0].Name)

	lb.NextPage() // clamped at last page
	assert.Equal(t, 1, lb.Page())
	lb.PrevPage()
	lb.PrevPage()
	assert.Equal(t, 0, lb.Page())

	empty := NewLibrary(5)
	assert.Equal(t, 0, empty.NumPages())
	assert.Nil(t, empty.EventsForCurrentPage())
}

func TestFilterSet(t *testing.T) {
	fs := NewFilterSet("Tracer", "Overwatch")
	assert.True(t, fs.Has("Tracer"))
	assert.False(t, fs.Has("Genji"))
	assert.False(t, fs.IsEmpty())
	assert.True(t, FilterSet{}.IsEmpty())

	sb := &Subject{Filters: []string{"Genji"}, Factions: []string{"Shimada"}}
	assert.False(t, fs.Matches(sb))
	assert.True(t, NewFilterSet("Shimada").Matches(sb))
	assert.True(t, NewFilterSet("Genji").Matches(sb))
}

func TestLibraryFilters(t *testing.T) {
	lb := NewLibrary(10)
	assert.True(t, lb.ActiveFilters().IsEmpty())
	lb.SetFilters("Genji")
	assert.True(t, lb.ActiveFilters().Has("Genji"))
	lb.ClearFilters()
	assert.True(t, lb.ActiveFilters().IsEmpty())
}

func TestEventByName(t *testing.T) {
	lb := NewLibrary(2)
	require.NoError(t, lb.LoadEvents([]byte(testLibrary)))
	assert.NotNil(t, lb.EventByName("Lunar Uprising"))
	assert.Nil(t, lb.EventByName("nope"))
}

func TestLoadCities(t *testing.T) {
	data := `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [139.69, 35.68]},
     "properties": {"name": "Tokyo"}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0,0],[1,1]]},
     "properties": {"name": "not a city"}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [-0.12, 51.5]},
     "properties": {}}
  ]
}`
	cities, err := LoadCities([]byte(data))
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Tokyo", cities[0].Name)
	assert.InDelta(t, 35.68, cities[0].Lat, 1e-4)
	assert.InDelta(t, 139.69, cities[0].Lon, 1e-4)
	assert.Equal(t, "", cities[1].Name)

	_, err = LoadCities([]byte("{"))
	assert.Error(t, err)
}
