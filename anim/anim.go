// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides a frame-stepped animation scheduler. All
// animation in the app is advanced cooperatively by one render loop
// calling [Scheduler.Step] once per frame; there are no goroutines or
// timers. Every scheduled animation is self-contained, carrying its own
// start time and tick function, so independent animations interleave
// freely, and a [Anim.Cancel] token lets a newer animation supersede an
// older one on the same state.
package anim

import "time"

// TickFunc is called on every frame of an animation with the eased-input
// progress p in 0..1. Apply an easing function to p to shape the motion.
type TickFunc func(p float32)

// Anim is one scheduled animation. It is returned by
// [Scheduler.Schedule] as a cancellation token.
type Anim struct {
	start    time.Time
	dur      time.Duration
	tick     TickFunc
	done     func()
	canceled bool
}

// Cancel aborts the animation: it will not tick again and its completion
// function will not run. State already written by earlier ticks is left
// as is, to be continued by whatever superseding animation follows.
func (an *Anim) Cancel() {
	if an == nil {
		return
	}
	an.canceled = true
}

// Canceled reports whether the animation has been canceled.
func (an *Anim) Canceled() bool {
	return an != nil && an.canceled
}

// Scheduler advances scheduled animations from a frame callback.
// It is not safe for concurrent use; everything runs on the frame loop.
type Scheduler struct {
	anims []*Anim
}

// NewScheduler returns a new empty [Scheduler].
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule registers an animation of the given duration. tick is called
// with progress 0..1 on every subsequent [Scheduler.Step]; done (may be
// nil) is called once after the tick at progress 1. The animation's
// clock starts at the first Step that sees it. A non-positive duration
// completes on the first Step.
func (sc *Scheduler) Schedule(dur time.Duration, tick TickFunc, done func()) *Anim {
	an := &Anim{dur: dur, tick: tick, done: done}
	sc.anims = append(sc.anims, an)
	return an
}

// Active returns the number of animations currently scheduled.
func (sc *Scheduler) Active() int {
	return len(sc.anims)
}

// Step advances every live animation to the given time, dropping those
// that complete or have been canceled. A tick may cancel other
// animations; cancellation is honored before their tick runs.
func (sc *Scheduler) Step(now time.Time) {
	anims := sc.anims
	live := sc.anims[:0]
	for _, an := range anims {
		if an.canceled {
			continue
		}
		if an.start.IsZero() {
			an.start = now
		}
		p := float32(1)
		if an.dur > 0 {
			p = float32(now.Sub(an.start)) / float32(an.dur)
		}
		if p < 1 {
			if an.tick != nil {
				an.tick(p)
			}
			if !an.canceled {
				live = append(live, an)
			}
			continue
		}
		if an.tick != nil {
			an.tick(1)
		}
		if !an.canceled && an.done != nil {
			an.done()
		}
	}
	// anims scheduled during ticks land beyond the original slice
	sc.anims = append(live, sc.anims[len(anims):]...)
}
