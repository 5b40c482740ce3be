package reveal

import (
	"errors"
	"log"
	"sync"
)

// Release tears down an observer. It is safe to call more than once.
type Release func()

// Observer turns platform measurements of one target into a single boolean
// visibility signal. Each consumer owns its own Observer.
type Observer struct {
	platform Platform

	mu       sync.Mutex
	target   Target
	opts     Options
	visible  bool
	latched  bool
	closed   bool
	active   *registration
	onChange func(bool)
	warned   bool
}

// registration tracks one call to Platform.Observe. Measurements that arrive
// for a released registration are dropped.
type registration struct {
	handle   Observation
	released bool
}

// Observe starts watching target and returns the observer together with its
// teardown function. A nil target is watched as soon as SetTarget provides
// one. The signal starts false.
func Observe(platform Platform, target Target, opts Options) (*Observer, Release) {
	o := NewObserver(platform, target, opts)
	o.Start()
	return o, o.Close
}

// NewObserver prepares an observer without registering it with the platform.
// Callers that need every transition, including one delivered by the first
// measurement, register OnChange and then call Start.
func NewObserver(platform Platform, target Target, opts Options) *Observer {
	o := &Observer{
		platform: platform,
		target:   target,
		opts:     opts.normalized(),
	}
	if _, err := ParseRootMargin(o.opts.RootMargin); err != nil {
		log.Printf("[WARNING] reveal: %v, using no root margin", err)
		o.opts.RootMargin = ""
	}
	return o
}

// Start registers the target with the platform. It does nothing once the
// observer is observing, latched or closed.
func (o *Observer) Start() {
	o.attach()
}

// Visible returns the current visibility signal.
func (o *Observer) Visible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible
}

// Latched reports whether a once observer has made its final transition.
func (o *Observer) Latched() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.latched
}

// Observing reports whether a platform registration is currently live.
func (o *Observer) Observing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active != nil
}

// OnChange registers fn to run after every transition of the signal. It is
// never called for a measurement that leaves the signal unchanged.
func (o *Observer) OnChange(fn func(visible bool)) {
	o.mu.Lock()
	o.onChange = fn
	o.mu.Unlock()
}

// SetTarget replaces the observed target. The previous registration is
// released first and the signal drops back to false until the new target is
// measured, unless it is latched.
func (o *Observer) SetTarget(target Target) {
	o.mu.Lock()
	if o.closed || sameTarget(o.target, target) {
		o.mu.Unlock()
		return
	}
	o.target = target
	handle := o.detachLocked()
	changed := false
	if o.visible && !o.latched {
		o.visible = false
		changed = true
	}
	fn := o.onChange
	o.mu.Unlock()

	if handle != nil {
		handle.Unobserve()
	}
	if changed && fn != nil {
		fn(false)
	}
	o.attach()
}

// SetOptions re-establishes observation with new options. The previous
// registration is released before the new one is made. A latched observer
// keeps its signal and does not observe again.
func (o *Observer) SetOptions(opts Options) {
	opts = opts.normalized()
	if _, err := ParseRootMargin(opts.RootMargin); err != nil {
		log.Printf("[WARNING] reveal: %v, using no root margin", err)
		opts.RootMargin = ""
	}

	o.mu.Lock()
	if o.closed || opts == o.opts {
		o.mu.Unlock()
		return
	}
	o.opts = opts
	handle := o.detachLocked()
	o.mu.Unlock()

	if handle != nil {
		handle.Unobserve()
	}
	o.attach()
}

// Close stops observation and releases platform resources. No further
// transitions happen after Close, whatever the platform delivers.
func (o *Observer) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.onChange = nil
	handle := o.detachLocked()
	o.mu.Unlock()

	if handle != nil {
		handle.Unobserve()
	}
}

func (o *Observer) attach() {
	o.mu.Lock()
	if o.closed || o.latched || o.target == nil || o.active != nil {
		o.mu.Unlock()
		return
	}
	if o.platform == nil {
		o.warnLocked(ErrUnsupported)
		o.mu.Unlock()
		return
	}
	reg := &registration{}
	o.active = reg
	target, opts := o.target, o.opts
	o.mu.Unlock()

	// Platforms may deliver the first measurement before Observe returns, so
	// no lock is held here.
	handle, err := o.platform.Observe(target, func(e Entry) { o.deliver(reg, e) }, opts)

	o.mu.Lock()
	if err != nil {
		if o.active == reg {
			o.active = nil
		}
		reg.released = true
		o.warnLocked(err)
		o.mu.Unlock()
		return
	}
	reg.handle = handle
	released := reg.released
	o.mu.Unlock()

	// Released while Observe was in flight: Close, SetTarget or a once latch
	// could not reach the handle yet.
	if released && handle != nil {
		handle.Unobserve()
	}
}

func (o *Observer) deliver(reg *registration, e Entry) {
	o.mu.Lock()
	if o.closed || reg.released || o.active != reg {
		o.mu.Unlock()
		return
	}
	visible := o.opts.qualifies(e)
	if visible == o.visible {
		o.mu.Unlock()
		return
	}
	o.visible = visible

	var handle Observation
	if visible && o.opts.Once {
		o.latched = true
		handle = o.detachLocked()
	}
	fn := o.onChange
	o.mu.Unlock()

	if handle != nil {
		handle.Unobserve()
	}
	if fn != nil {
		fn(visible)
	}
}

// detachLocked marks the active registration released and returns its handle
// for the caller to unobserve after unlocking. The handle is nil while
// Observe is still in flight; attach releases it in that case.
func (o *Observer) detachLocked() Observation {
	reg := o.active
	if reg == nil {
		return nil
	}
	o.active = nil
	reg.released = true
	return reg.handle
}

func (o *Observer) warnLocked(err error) {
	if o.warned {
		return
	}
	o.warned = true
	id := ""
	if o.target != nil {
		id = o.target.ID()
	}
	if errors.Is(err, ErrUnsupported) {
		log.Printf("[INFO] reveal: no intersection observation for %q, signal stays hidden", id)
		return
	}
	log.Printf("[WARNING] reveal: failed to observe %q: %v", id, err)
}

func sameTarget(a, b Target) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}
