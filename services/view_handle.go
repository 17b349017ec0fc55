package services

import "sync/atomic"

// ViewHandle is the liveness token for a mounted view. Asynchronous
// continuations (decision responses, poll results) check Live before
// touching anything presentation-facing, so work that outlives its view
// degrades to a no-op instead of mutating a detached surface.
type ViewHandle struct {
	closed atomic.Bool
}

// NewViewHandle returns a live handle for a freshly mounted view.
func NewViewHandle() *ViewHandle {
	return &ViewHandle{}
}

// Live reports whether the view is still mounted.
func (v *ViewHandle) Live() bool {
	return !v.closed.Load()
}

// Close marks the view unmounted. Idempotent.
func (v *ViewHandle) Close() {
	v.closed.Store(true)
}
