package sections

import (
	"strings"
	"sync"

	"autobot_site_go/services/reveal"
)

// Transition holds the two static visual states of a revealable block.
type Transition struct {
	Hidden   string
	Revealed string
}

// FadeUp is the default reveal transition used across the landing page.
var FadeUp = Transition{
	Hidden:   "opacity-0 translate-y-10",
	Revealed: "opacity-100 translate-y-0",
}

// FadeIn only animates opacity.
var FadeIn = Transition{
	Hidden:   "opacity-0",
	Revealed: "opacity-100",
}

// Classes maps the visibility signal to CSS classes. It depends on nothing
// but its input.
func (t Transition) Classes(visible bool) string {
	if visible {
		return t.Revealed
	}
	return t.Hidden
}

// With prefixes the state classes with static base classes.
func (t Transition) With(base string, visible bool) string {
	return strings.TrimSpace(base + " " + t.Classes(visible))
}

// Section is one page section. It owns its root element handle and the
// observer watching it, and only ever reads the signal.
type Section struct {
	ID         string
	Title      string
	Subtitle   string
	Options    reveal.Options
	Transition Transition

	mu       sync.Mutex
	observer *reveal.Observer
	release  reveal.Release
	onRender func(*Section)
}

// Target returns the handle of the section's root element.
func (s *Section) Target() reveal.Target {
	return reveal.Element(s.ID)
}

// OnRender registers fn to run whenever the section's visible state changes
// and it needs rendering again.
func (s *Section) OnRender(fn func(*Section)) {
	s.mu.Lock()
	s.onRender = fn
	s.mu.Unlock()
}

// Mount starts observing the section root on platform. Mounting an already
// mounted section remounts it on the new platform.
func (s *Section) Mount(platform reveal.Platform) {
	s.Unmount()

	observer := reveal.NewObserver(platform, s.Target(), s.Options)
	observer.OnChange(func(bool) {
		s.mu.Lock()
		fn := s.onRender
		s.mu.Unlock()
		if fn != nil {
			fn(s)
		}
	})

	s.mu.Lock()
	s.observer, s.release = observer, observer.Close
	s.mu.Unlock()

	// A section already in view reveals during Start.
	observer.Start()
}

// Unmount releases the section's observer. The section renders hidden
// afterwards.
func (s *Section) Unmount() {
	s.mu.Lock()
	release := s.release
	s.observer, s.release = nil, nil
	s.mu.Unlock()

	if release != nil {
		release()
	}
}

// Visible reads the current visibility signal. Unmounted sections are not
// visible.
func (s *Section) Visible() bool {
	s.mu.Lock()
	observer := s.observer
	s.mu.Unlock()

	if observer == nil {
		return false
	}
	return observer.Visible()
}

// Classes returns the section's current reveal classes.
func (s *Section) Classes() string {
	return s.Transition.Classes(s.Visible())
}

// Page is an ordered set of independently observed sections.
type Page struct {
	Sections []*Section
}

// Mount mounts every section on platform.
func (p *Page) Mount(platform reveal.Platform) {
	for _, s := range p.Sections {
		s.Mount(platform)
	}
}

// Unmount releases every section's observer.
func (p *Page) Unmount() {
	for _, s := range p.Sections {
		s.Unmount()
	}
}

// Section looks a section up by id.
func (p *Page) Section(id string) *Section {
	for _, s := range p.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Revealed returns the ids of currently visible sections in page order.
func (p *Page) Revealed() []string {
	var ids []string
	for _, s := range p.Sections {
		if s.Visible() {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
