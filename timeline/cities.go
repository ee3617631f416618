// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"
)

// City is one entry of the decorative city layer drawn on the globe.
// Cities are not events: they carry no tags and are never filtered.
type City struct {
	Name string
	Lat  float32
	Lon  float32
}

// LoadCities parses a GeoJSON FeatureCollection of point features into
// a city list. Non-point features are skipped; a missing name property
// yields an unnamed city.
func LoadCities(data []byte) ([]City, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("timeline: load cities: %w", err)
	}
	var cities []City
	for _, ft := range fc.Features {
		if ft.Geometry == nil || !ft.Geometry.IsPoint() || len(ft.Geometry.Point) < 2 {
			continue
		}
		name, _ := ft.PropertyString("name")
		cities = append(cities, City{
			Name: name,
			Lon:  float32(ft.Geometry.Point[0]),
			Lat:  float32(ft.Geometry.Point[1]),
		})
	}
	return cities, nil
}

// OpenCities loads a city list from the GeoJSON file at the given path.
func OpenCities(filename string) ([]City, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("timeline: open cities: %w", err)
	}
	return LoadCities(data)
}
