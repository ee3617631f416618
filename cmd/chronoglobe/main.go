// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chronoglobe runs a headless demonstration of the timeline
// globe: it loads an event library, builds the marker scene, and drives
// the frame loop through a scripted page-change, filter, and focus
// session, logging what the renderer would show.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/chronoglobe/chronoglobe/anim"
	"github.com/chronoglobe/chronoglobe/focus"
	"github.com/chronoglobe/chronoglobe/globe"
	"github.com/chronoglobe/chronoglobe/timeline"
)

// logOverlay stands in for the fullscreen image overlay in the
// headless demo.
type logOverlay struct {
	visible bool
	image   string
}

func (ov *logOverlay) Show() {
	ov.visible = true
	slog.Info("overlay shown", "image", ov.image)
}

func (ov *logOverlay) Hide() {
	if ov.visible {
		slog.Info("overlay hidden")
	}
	ov.visible = false
}

func (ov *logOverlay) Visible() bool {
	return ov.visible
}

func main() {
	libFile := flag.String("events", "events.toml", "event library TOML file")
	cityFile := flag.String("cities", "", "optional city layer GeoJSON file")
	pageSize := flag.Int("page-size", 10, "events per page")
	filterTag := flag.String("filter", "", "hero / faction tag to filter by in the demo")
	mobile := flag.Bool("mobile", false, "use mobile marker sizing")
	flag.Parse()

	lb, err := timeline.OpenLibrary(*libFile, *pageSize)
	if err != nil {
		slog.Error("cannot load event library", "err", err)
		os.Exit(1)
	}
	slog.Info("library loaded", "events", len(lb.Events), "pages", lb.NumPages())

	device := globe.Desktop
	if *mobile {
		device = globe.Mobile
	}
	sched := anim.NewScheduler()
	sf := globe.NewSurfaces(10)
	mgr := globe.NewManager(sf, lb, sched, device)

	if *cityFile != "" {
		cities, err := timeline.OpenCities(*cityFile)
		if err != nil {
			slog.Error("cannot load city layer", "err", err)
			os.Exit(1)
		}
		mgr.AddCityDots(cities)
		slog.Info("city layer added", "cities", len(cities))
	}

	overlay := &logOverlay{}
	det := focus.NewDetector(sf, sched, overlay)

	// scripted demo actions, by frame number at ~60fps
	frame := 0
	actions := map[int]func(){
		0: func() {
			mgr.Refresh().OnDone(func() {
				slog.Info("markers built", "markers", len(mgr.Markers))
			})
		},
		120: func() {
			if *filterTag == "" {
				return
			}
			lb.SetFilters(*filterTag)
			mgr.ApplyFilters()
			slog.Info("filter applied", "tag", *filterTag)
		},
		180: func() {
			if len(mgr.Markers) == 0 {
				return
			}
			mk := mgr.Markers[0]
			overlay.image = mk.Subject.Image
			mgr.RevealVariants(mk.Event)
			det.Focus(mk)
			slog.Info("event focused", "event", mk.Subject.Name)
		},
		420: func() {
			if det.Marker != nil {
				mgr.HideVariants(det.Marker.Event)
			}
			det.Release()
			slog.Info("event released")
		},
		480: func() {
			if lb.NumPages() > 1 {
				lb.NextPage()
				mgr.Refresh().OnDone(func() {
					slog.Info("page changed", "page", lb.Page(), "markers", len(mgr.Markers))
				})
			}
		},
	}

	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()
	for now := range tick.C {
		if act, ok := actions[frame]; ok {
			act()
		}
		sched.Step(now)
		sf.Stage.UpdateWorldMatrices()
		det.Check(now)
		frame++
		if frame > 600 && sched.Active() == 0 {
			break
		}
	}
	slog.Info("demo complete", "frames", frame)
}
