// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timeline holds the historical-event data model: events with
// optional variants, tag-based filter sets, and the paginated library
// that supplies the current page of events to the globe. Events are
// immutable once loaded; the library owns them.
package timeline

import "fmt"

// LocationType is the surface an event is located on.
type LocationType int32

const (
	// Earth events carry latitude / longitude coordinates and are
	// placed on the globe.
	Earth LocationType = iota

	// Moon events carry normalized 0..100 panel coordinates and are
	// placed on the moon panel.
	Moon

	// Mars events carry normalized 0..100 panel coordinates and are
	// placed on the mars panel.
	Mars

	// Station events are placed on the orbiting station node;
	// they carry no coordinates of their own.
	Station
)

func (lt LocationType) String() string {
	switch lt {
	case Earth:
		return "earth"
	case Moon:
		return "moon"
	case Mars:
		return "mars"
	case Station:
		return "station"
	}
	return fmt.Sprintf("LocationType(%d)", int32(lt))
}

// MarshalText implements [encoding.TextMarshaler].
func (lt LocationType) MarshalText() ([]byte, error) {
	return []byte(lt.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (lt *LocationType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "earth":
		*lt = Earth
	case "moon":
		*lt = Moon
	case "mars":
		*lt = Mars
	case "station":
		*lt = Station
	default:
		return fmt.Errorf("timeline: unknown location type %q", text)
	}
	return nil
}

// Subject is the common shape of an [Event] and of each of its variants:
// one datable, placeable occurrence with its own tags.
type Subject struct {
	// Name of the occurrence, also its identity within the library.
	Name string `toml:"name"`

	// Description shown in the event detail panel.
	Description string `toml:"description,omitempty"`

	// Image is the optional fullscreen image asset name.
	Image string `toml:"image,omitempty"`

	// Location is the surface this subject is placed on.
	Location LocationType `toml:"location,omitempty"`

	// Lat and Lon position earth subjects on the globe, in degrees.
	Lat float32 `toml:"lat,omitempty"`
	Lon float32 `toml:"lon,omitempty"`

	// X and Y position moon / mars subjects on their panel, normalized
	// 0..100. A missing coordinate defaults to the panel center.
	X *float32 `toml:"x,omitempty"`
	Y *float32 `toml:"y,omitempty"`

	// Filters are the hero tags this subject matches.
	Filters []string `toml:"filters,omitempty"`

	// Factions are the faction tags this subject matches.
	Factions []string `toml:"factions,omitempty"`
}

// Event is one timeline entry: a [Subject], optionally with an ordered
// list of variants (e.g. the same battle seen from different sides).
// An event without variants is placed as a single main marker; an event
// with variants gets one marker per variant, the first being the main.
type Event struct {
	Subject

	// Variants are the additional variants of this event, in order.
	Variants []*Subject `toml:"variants,omitempty"`
}

// SubjectsToPlace returns the subjects to place as markers for this
// event: the variants when it has any, otherwise the event's own
// subject. The first returned subject is the main variant.
func (ev *Event) SubjectsToPlace() []*Subject {
	if len(ev.Variants) > 0 {
		return ev.Variants
	}
	return []*Subject{&ev.Subject}
}

// FilterSet is a set of hero / faction tags selected in the filter
// panel. The empty set means no filtering is active.
type FilterSet map[string]struct{}

// NewFilterSet returns a [FilterSet] holding the given tags.
func NewFilterSet(tags ...string) FilterSet {
	fs := make(FilterSet, len(tags))
	for _, tag := range tags {
		fs[tag] = struct{}{}
	}
	return fs
}

// Has reports whether the set contains the given tag.
func (fs FilterSet) Has(tag string) bool {
	_, ok := fs[tag]
	return ok
}

// IsEmpty reports whether no tags are selected.
func (fs FilterSet) IsEmpty() bool {
	return len(fs) == 0
}

// Matches reports whether any of the subject's filter or faction tags
// is in the set.
func (fs FilterSet) Matches(sb *Subject) bool {
	for _, tag := range sb.Filters {
		if fs.Has(tag) {
			return true
		}
	}
	for _, tag := range sb.Factions {
		if fs.Has(tag) {
			return true
		}
	}
	return false
}

// Provider supplies the current page of events and the live filter set.
// The globe packages consume it; the [Library] implements it.
type Provider interface {
	// EventsForCurrentPage returns the events on the current page.
	EventsForCurrentPage() []*Event

	// ActiveFilters returns the live filter set. Read on every filter
	// application; never modified by consumers.
	ActiveFilters() FilterSet
}
