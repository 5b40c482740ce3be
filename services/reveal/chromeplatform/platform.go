// Package chromeplatform drives reveal observers from a real browser
// IntersectionObserver running in headless Chrome.
package chromeplatform

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"

	"autobot_site_go/services/reveal"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// bindingName is the page function that forwards intersection entries to Go.
const bindingName = "__revealEntry"

// Platform implements reveal.Platform on top of a chromedp browser context.
// Entries reported by the page are delivered to callbacks serially from a
// single dispatch goroutine. Entries that pile up before dispatch are
// coalesced per registration, keeping only the latest one.
type Platform struct {
	ctx    context.Context
	notify chan struct{}

	mu   sync.Mutex
	next int
	regs map[string]*registration

	qmu     sync.Mutex
	pending map[string]entryPayload
	order   []string
}

type registration struct {
	platform *Platform
	key      string
	target   reveal.Target
	cb       reveal.Callback
	once     sync.Once
}

type entryPayload struct {
	Key          string  `json:"key"`
	Ratio        float64 `json:"ratio"`
	Intersecting bool    `json:"intersecting"`
}

// New installs the entry binding in the browser tab behind ctx and starts
// dispatching. Dispatch stops when ctx is cancelled.
func New(ctx context.Context) (*Platform, error) {
	p := &Platform{
		ctx:     ctx,
		notify:  make(chan struct{}, 1),
		regs:    make(map[string]*registration),
		pending: make(map[string]entryPayload),
	}

	chromedp.ListenTarget(ctx, func(ev interface{}) {
		if called, ok := ev.(*runtime.EventBindingCalled); ok && called.Name == bindingName {
			p.enqueue(called.Payload)
		}
	})

	if err := chromedp.Run(ctx, runtime.AddBinding(bindingName)); err != nil {
		return nil, fmt.Errorf("failed to install reveal binding: %w", err)
	}

	go p.loop()
	return p, nil
}

// Observe creates a browser IntersectionObserver for the element with the
// target's id.
func (p *Platform) Observe(target reveal.Target, cb reveal.Callback, opts reveal.Options) (reveal.Observation, error) {
	p.mu.Lock()
	p.next++
	reg := &registration{
		platform: p,
		key:      "r" + strconv.Itoa(p.next),
		target:   target,
		cb:       cb,
	}
	p.regs[reg.key] = reg
	p.mu.Unlock()

	var status string
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(observeScript(reg.key, target.ID(), opts), &status)); err != nil {
		p.forget(reg.key)
		return nil, fmt.Errorf("failed to observe %q: %w", target.ID(), err)
	}

	switch status {
	case "ok":
		return reg, nil
	case "unsupported":
		p.forget(reg.key)
		return nil, reveal.ErrUnsupported
	default:
		p.forget(reg.key)
		return nil, fmt.Errorf("element %q not found in page", target.ID())
	}
}

// Unobserve disconnects the browser observer.
func (r *registration) Unobserve() {
	r.once.Do(func() {
		r.platform.forget(r.key)
		var disconnected bool
		if err := chromedp.Run(r.platform.ctx, chromedp.Evaluate(unobserveScript(r.key), &disconnected)); err != nil {
			log.Printf("[WARNING] chromeplatform: failed to disconnect %s: %v", r.key, err)
		}
	})
}

func (p *Platform) forget(key string) {
	p.mu.Lock()
	delete(p.regs, key)
	p.mu.Unlock()
}

// enqueue runs on the chromedp event goroutine and must not block. A newer
// entry for a key replaces one still waiting for dispatch.
func (p *Platform) enqueue(payload string) {
	entry, err := decodeEntry(payload)
	if err != nil {
		log.Printf("[WARNING] chromeplatform: %v", err)
		return
	}

	p.qmu.Lock()
	if _, queued := p.pending[entry.Key]; !queued {
		p.order = append(p.order, entry.Key)
	}
	p.pending[entry.Key] = entry
	p.qmu.Unlock()

	select {
	case p.notify <- struct{}{}:
	default:
	}
}

// drain takes the queued entries in arrival order of their keys.
func (p *Platform) drain() []entryPayload {
	p.qmu.Lock()
	defer p.qmu.Unlock()

	entries := make([]entryPayload, 0, len(p.order))
	for _, key := range p.order {
		entries = append(entries, p.pending[key])
		delete(p.pending, key)
	}
	p.order = p.order[:0]
	return entries
}

func (p *Platform) loop() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-p.notify:
			for _, entry := range p.drain() {
				p.dispatch(entry)
			}
		}
	}
}

func (p *Platform) dispatch(entry entryPayload) {
	p.mu.Lock()
	reg, ok := p.regs[entry.Key]
	p.mu.Unlock()
	if !ok {
		return
	}

	reg.cb(reveal.Entry{
		Target:         reg.target,
		Ratio:          entry.Ratio,
		IsIntersecting: entry.Intersecting,
	})
}

func decodeEntry(payload string) (entryPayload, error) {
	var entry entryPayload
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		return entry, fmt.Errorf("malformed intersection entry: %w", err)
	}
	if entry.Key == "" {
		return entry, fmt.Errorf("intersection entry without key")
	}
	return entry, nil
}

func observeScript(key, elementID string, opts reveal.Options) string {
	margin := opts.RootMargin
	if margin == "" {
		margin = "0px"
	}
	return fmt.Sprintf(`(() => {
  if (typeof IntersectionObserver === 'undefined') return 'unsupported';
  const el = document.getElementById(%s);
  if (!el) return 'missing';
  const key = %s;
  window.__reveal = window.__reveal || {};
  const io = new IntersectionObserver((entries) => {
    for (const e of entries) {
      %s(JSON.stringify({key: key, ratio: e.intersectionRatio, intersecting: e.isIntersecting}));
    }
  }, {threshold: %s, rootMargin: %s});
  io.observe(el);
  window.__reveal[key] = io;
  return 'ok';
})()`, jsString(elementID), jsString(key), bindingName,
		strconv.FormatFloat(opts.Threshold, 'f', -1, 64), jsString(margin))
}

func unobserveScript(key string) string {
	return fmt.Sprintf(`(() => {
  const io = window.__reveal && window.__reveal[%[1]s];
  if (!io) return false;
  io.disconnect();
  delete window.__reveal[%[1]s];
  return true;
})()`, jsString(key))
}

func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
