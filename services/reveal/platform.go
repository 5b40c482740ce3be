package reveal

import (
	"errors"
	"strconv"
)

// ErrUnsupported is returned by a Platform that has no intersection
// observation capability.
var ErrUnsupported = errors.New("intersection observation not supported")

// Target is an opaque handle to a renderable element. A nil Target is an
// element that is not attached to any surface yet.
type Target interface {
	ID() string
}

// Element is a Target identified by its DOM id.
type Element string

// ID returns the element id.
func (e Element) ID() string {
	return string(e)
}

// Options configures when a target counts as in view.
type Options struct {
	// Threshold is the fraction (0..1) of the target's area that must be
	// visible.
	Threshold float64
	// RootMargin adjusts the viewport bounds before intersection is computed,
	// in CSS margin shorthand.
	RootMargin string
	// Once latches the signal at true after the first qualifying measurement.
	Once bool
}

// normalized clamps the threshold into [0,1].
func (o Options) normalized() Options {
	switch {
	case o.Threshold < 0 || o.Threshold != o.Threshold:
		o.Threshold = 0
	case o.Threshold > 1:
		o.Threshold = 1
	}
	return o
}

// qualifies reports whether a measurement puts the target in view.
func (o Options) qualifies(e Entry) bool {
	return e.IsIntersecting && e.Ratio >= o.Threshold
}

// String renders the options as used in data attributes and logs.
func (o Options) String() string {
	margin := o.RootMargin
	if margin == "" {
		margin = "0px"
	}
	return "threshold=" + strconv.FormatFloat(o.Threshold, 'f', -1, 64) +
		" rootMargin=" + margin +
		" once=" + strconv.FormatBool(o.Once)
}

// Entry is a single intersection measurement delivered by a Platform.
type Entry struct {
	Target         Target
	Ratio          float64
	IsIntersecting bool
}

// Callback receives measurements for one registration. Platforms deliver
// measurements serially per registration.
type Callback func(Entry)

// Observation is one live registration of a target with a Platform.
type Observation interface {
	// Unobserve releases the registration. No callbacks are delivered for it
	// afterwards. Calling it more than once is a no-op.
	Unobserve()
}

// Platform is the host-provided intersection observation capability.
type Platform interface {
	// Observe starts delivering measurements of target to cb. Platforms
	// without the capability return ErrUnsupported.
	Observe(target Target, cb Callback, opts Options) (Observation, error)
}

// Unsupported is a Platform with no intersection observation capability,
// such as a server render with no viewport.
var Unsupported Platform = unsupported{}

type unsupported struct{}

func (unsupported) Observe(Target, Callback, Options) (Observation, error) {
	return nil, ErrUnsupported
}
