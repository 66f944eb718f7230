// Package scroll owns the viewport state of a virtualized table: scroll
// offset, container height, and the near-end detection that drives
// infinite loading.
package scroll

import (
	"tableau/heights"
	"tableau/window"
)

// Config tunes a Controller.
type Config struct {
	// MaxHeight caps the container height; zero or negative means no cap.
	MaxHeight int
	// Overscan is the number of extra rows materialized on each side of
	// the visible run.
	Overscan int
	// InfiniteLoading arms near-end load triggering.
	InfiniteLoading bool
	// LoadThreshold is the remaining scrollable height, in height units,
	// below which a load is requested.
	LoadThreshold int
}

// Controller holds the mutable viewport state. It is the only writer of
// that state; range computation itself stays in the window package.
type Controller struct {
	cfg   Config
	model heights.Model

	offset   int
	viewH    int
	rowCount int

	loading bool
	armed   bool
	hasMore bool
	closed  bool
}

// New returns a Controller over the given height model.
func New(cfg Config, model heights.Model) *Controller {
	if cfg.LoadThreshold < 0 {
		cfg.LoadThreshold = 0
	}

	return &Controller{
		cfg:     cfg,
		model:   model,
		armed:   true,
		hasMore: true,
	}
}

// Offset returns the current scroll offset.
func (ctl *Controller) Offset() int {
	return ctl.offset
}

// ViewHeight returns the current container height.
func (ctl *Controller) ViewHeight() int {
	return ctl.viewH
}

// Loading reports whether a load is in flight.
func (ctl *Controller) Loading() bool {
	return ctl.loading
}

// Range returns the visible range for the current viewport state.
func (ctl *Controller) Range() window.Range {
	return window.Visible(ctl.offset, ctl.viewH, ctl.model, ctl.rowCount, ctl.cfg.Overscan)
}

// SetRowCount updates the dataset size, re-clamps the offset, and re-arms
// near-end detection once there is scroll room above the threshold again.
func (ctl *Controller) SetRowCount(rowCount int) window.Range {
	if ctl.closed {
		return window.None()
	}
	if rowCount < 0 {
		rowCount = 0
	}
	ctl.rowCount = rowCount
	ctl.offset = ctl.clampOffset(ctl.offset)

	if ctl.remaining() >= ctl.cfg.LoadThreshold {
		ctl.armed = true
	}
	return ctl.Range()
}

// SetOffset stores a new scroll offset and reports the resulting range,
// plus whether the caller should start a load. A load fires at most once
// per crossing of the threshold and never while one is in flight.
func (ctl *Controller) SetOffset(offset int) (rng window.Range, load bool) {
	if ctl.closed {
		return window.None(), false
	}

	ctl.offset = ctl.clampOffset(offset)
	return ctl.Range(), ctl.checkNearEnd()
}

// ScrollBy adjusts the offset by delta height units.
func (ctl *Controller) ScrollBy(delta int) (window.Range, bool) {
	return ctl.SetOffset(ctl.offset + delta)
}

// Resize stores a new container height, clamped to [0, MaxHeight].
func (ctl *Controller) Resize(viewHeight int) (window.Range, bool) {
	if ctl.closed {
		return window.None(), false
	}

	if viewHeight < 0 {
		viewHeight = 0
	}
	if ctl.cfg.MaxHeight > 0 && viewHeight > ctl.cfg.MaxHeight {
		viewHeight = ctl.cfg.MaxHeight
	}
	ctl.viewH = viewHeight
	ctl.offset = ctl.clampOffset(ctl.offset)

	return ctl.Range(), ctl.checkNearEnd()
}

// SetLoading forces the in-flight flag, for callers that start with a load
// already underway.
func (ctl *Controller) SetLoading(loading bool) {
	ctl.loading = loading
}

// SetHasMore tells the controller whether the source still has records
// beyond the loaded ones. While false, near-end detection never fires.
func (ctl *Controller) SetHasMore(hasMore bool) {
	ctl.hasMore = hasMore
}

// LoadFinished clears the in-flight flag once the load settles, whether it
// succeeded or not. After Close it does nothing.
func (ctl *Controller) LoadFinished() {
	if ctl.closed {
		return
	}
	ctl.loading = false
}

// Close tears the controller down; every later mutation is a no-op.
func (ctl *Controller) Close() {
	ctl.closed = true
	ctl.loading = false
}

// Closed reports whether Close has been called.
func (ctl *Controller) Closed() bool {
	return ctl.closed
}

// unexported

// remaining is the scrollable height left below the viewport.
func (ctl *Controller) remaining() int {
	return ctl.model.TotalHeight(ctl.rowCount) - (ctl.offset + ctl.viewH)
}

func (ctl *Controller) clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}

	max := ctl.model.TotalHeight(ctl.rowCount) - ctl.viewH
	if max < 0 {
		max = 0
	}
	if offset > max {
		return max
	}
	return offset
}

func (ctl *Controller) checkNearEnd() bool {
	if !ctl.cfg.InfiniteLoading || !ctl.hasMore || ctl.rowCount < 1 {
		return false
	}

	if ctl.remaining() >= ctl.cfg.LoadThreshold {
		ctl.armed = true
		return false
	}

	if !ctl.armed || ctl.loading {
		return false
	}

	ctl.armed = false
	ctl.loading = true
	return true
}
