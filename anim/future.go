// Copyright (c) 2026, ChronoGlobe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

// Future is a single-threaded completion handle for an operation that
// finishes on a later frame, such as a bulk marker animation. Callbacks
// registered on an already-resolved future run synchronously, so
// immediate no-op operations chain without waiting a frame.
type Future struct {
	done bool
	fns  []func()
}

// NewFuture returns a new unresolved [Future].
func NewFuture() *Future {
	return &Future{}
}

// Resolved returns an already-resolved [Future].
func Resolved() *Future {
	return &Future{done: true}
}

// Done reports whether the future has resolved.
func (f *Future) Done() bool {
	return f.done
}

// OnDone registers fn to run when the future resolves. If it already
// has, fn runs immediately.
func (f *Future) OnDone(fn func()) {
	if f.done {
		fn()
		return
	}
	f.fns = append(f.fns, fn)
}

// Resolve marks the future done and runs all registered callbacks in
// registration order. Resolving more than once is a no-op.
func (f *Future) Resolve() {
	if f.done {
		return
	}
	f.done = true
	fns := f.fns
	f.fns = nil
	for _, fn := range fns {
		fn()
	}
}
