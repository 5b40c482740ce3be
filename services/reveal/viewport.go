package reveal

import (
	"sync"
)

// Viewport is a Platform that computes intersections from page layout
// geometry. It models a scrollable window over a laid-out page: callers place
// targets in page coordinates and scroll the viewport.
//
// Measurements are delivered synchronously and serially: one on Observe and
// one per registration after each layout or scroll change. Callbacks must
// not call back into the Viewport.
type Viewport struct {
	mu            sync.Mutex
	width         float64
	height        float64
	scrollY       float64
	layout        map[string]Rect
	registrations map[*viewportRegistration]struct{}

	// dispatch serializes callback delivery across goroutines.
	dispatch sync.Mutex
}

type viewportRegistration struct {
	viewport *Viewport
	target   Target
	cb       Callback
	margin   Margin

	once sync.Once
}

// NewViewport creates a viewport of the given size scrolled to the top.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{
		width:         width,
		height:        height,
		layout:        make(map[string]Rect),
		registrations: make(map[*viewportRegistration]struct{}),
	}
}

// Observe registers target and immediately delivers its current measurement.
func (v *Viewport) Observe(target Target, cb Callback, opts Options) (Observation, error) {
	margin, err := ParseRootMargin(opts.RootMargin)
	if err != nil {
		return nil, err
	}
	reg := &viewportRegistration{viewport: v, target: target, cb: cb, margin: margin}

	v.mu.Lock()
	v.registrations[reg] = struct{}{}
	entry := v.measureLocked(reg)
	v.mu.Unlock()

	v.deliver([]pendingEntry{{reg: reg, entry: entry}})
	return reg, nil
}

// Unobserve removes the registration from the viewport.
func (r *viewportRegistration) Unobserve() {
	r.once.Do(func() {
		r.viewport.mu.Lock()
		delete(r.viewport.registrations, r)
		r.viewport.mu.Unlock()
	})
}

// Place lays out target at rect in page coordinates.
func (v *Viewport) Place(target Target, rect Rect) {
	v.mu.Lock()
	v.layout[target.ID()] = rect
	pending := v.measureAllLocked()
	v.mu.Unlock()
	v.deliver(pending)
}

// Remove takes target out of the layout. Observed targets that are not laid
// out never intersect.
func (v *Viewport) Remove(target Target) {
	v.mu.Lock()
	delete(v.layout, target.ID())
	pending := v.measureAllLocked()
	v.mu.Unlock()
	v.deliver(pending)
}

// ScrollTo moves the top of the viewport to page offset y.
func (v *Viewport) ScrollTo(y float64) {
	v.mu.Lock()
	v.scrollY = y
	pending := v.measureAllLocked()
	v.mu.Unlock()
	v.deliver(pending)
}

// Resize changes the viewport dimensions.
func (v *Viewport) Resize(width, height float64) {
	v.mu.Lock()
	v.width, v.height = width, height
	pending := v.measureAllLocked()
	v.mu.Unlock()
	v.deliver(pending)
}

// Bounds returns the visible page region.
func (v *Viewport) Bounds() Rect {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.boundsLocked()
}

// Registrations returns the number of live registrations.
func (v *Viewport) Registrations() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.registrations)
}

func (v *Viewport) boundsLocked() Rect {
	return RectFromLTWH(0, v.scrollY, v.width, v.height)
}

type pendingEntry struct {
	reg   *viewportRegistration
	entry Entry
}

func (v *Viewport) measureLocked(reg *viewportRegistration) Entry {
	entry := Entry{Target: reg.target}
	rect, ok := v.layout[reg.target.ID()]
	if !ok {
		return entry
	}
	root := reg.margin.Apply(v.boundsLocked())
	entry.Ratio, entry.IsIntersecting = intersectionRatio(rect, root)
	return entry
}

func (v *Viewport) measureAllLocked() []pendingEntry {
	pending := make([]pendingEntry, 0, len(v.registrations))
	for reg := range v.registrations {
		pending = append(pending, pendingEntry{reg: reg, entry: v.measureLocked(reg)})
	}
	return pending
}

func (v *Viewport) deliver(pending []pendingEntry) {
	v.dispatch.Lock()
	defer v.dispatch.Unlock()
	for _, p := range pending {
		v.mu.Lock()
		_, live := v.registrations[p.reg]
		v.mu.Unlock()
		// A callback earlier in this batch may have released this one.
		if live {
			p.reg.cb(p.entry)
		}
	}
}
