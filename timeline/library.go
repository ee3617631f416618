// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Library is the concrete event [Provider]: the full ordered event list
// loaded from a TOML file, a page window onto it, and the active filter
// set owned by the filter panel.
type Library struct {
	// Events is the full event list, in timeline order.
	Events []*Event

	// PageSize is the number of events per page.
	PageSize int

	page    int
	filters FilterSet
}

// libraryFile is the on-disk shape of an event library.
type libraryFile struct {
	Events []*Event `toml:"events"`
}

// NewLibrary returns an empty [Library] with the given page size.
func NewLibrary(pageSize int) *Library {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Library{PageSize: pageSize, filters: FilterSet{}}
}

// OpenLibrary loads an event library from the TOML file at the
// given path.
func OpenLibrary(filename string, pageSize int) (*Library, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("timeline: open library: %w", err)
	}
	lb := NewLibrary(pageSize)
	if err := lb.LoadEvents(data); err != nil {
		return nil, err
	}
	return lb, nil
}

// LoadEvents parses TOML event data into the library, replacing any
// existing events and resetting the page to 0.
func (lb *Library) LoadEvents(data []byte) error {
	var lf libraryFile
	if err := toml.Unmarshal(data, &lf); err != nil {
		return fmt.Errorf("timeline: load events: %w", err)
	}
	lb.Events = lf.Events
	lb.page = 0
	return nil
}

// NumPages returns the number of pages in the library.
func (lb *Library) NumPages() int {
	if len(lb.Events) == 0 {
		return 0
	}
	return (len(lb.Events) + lb.PageSize - 1) / lb.PageSize
}

// Page returns the current page index.
func (lb *Library) Page() int {
	return lb.page
}

// SetPage sets the current page, clamped to the valid range.
func (lb *Library) SetPage(page int) {
	last := lb.NumPages() - 1
	if last < 0 {
		last = 0
	}
	if page < 0 {
		page = 0
	}
	if page > last {
		page = last
	}
	lb.page = page
}

// NextPage advances to the next page, if any.
func (lb *Library) NextPage() {
	lb.SetPage(lb.page + 1)
}

// PrevPage goes back to the previous page, if any.
func (lb *Library) PrevPage() {
	lb.SetPage(lb.page - 1)
}

// EventsForCurrentPage returns the events in the current page window.
func (lb *Library) EventsForCurrentPage() []*Event {
	start := lb.page * lb.PageSize
	if start >= len(lb.Events) {
		return nil
	}
	end := start + lb.PageSize
	if end > len(lb.Events) {
		end = len(lb.Events)
	}
	return lb.Events[start:end]
}

// ActiveFilters returns the live filter set.
func (lb *Library) ActiveFilters() FilterSet {
	return lb.filters
}

// SetFilters replaces the active filter set with the given tags.
func (lb *Library) SetFilters(tags ...string) {
	lb.filters = NewFilterSet(tags...)
}

// ClearFilters empties the active filter set.
func (lb *Library) ClearFilters() {
	lb.filters = FilterSet{}
}

// EventByName returns the event with the given name, or nil.
func (lb *Library) EventByName(name string) *Event {
	for _, ev := range lb.Events {
		if ev.Name == name {
			return ev
		}
	}
	return nil
}
