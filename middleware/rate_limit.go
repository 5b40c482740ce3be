package middleware

import (
	"html"
	"net/http"
	"strconv"
	"sync"
	"time"

	"autobot_site_go/config"
	"autobot_site_go/services"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc is a function that returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
	// OnLimit runs for every rejected request
	OnLimit func(c echo.Context, key string)
}

// rateLimitEntry tracks request count and window expiration
type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// RateLimiter is a fixed-window limiter keyed per client
type RateLimiter struct {
	config RateLimitConfig
	store  map[string]*rateLimitEntry
	mu     sync.Mutex
	now    func() time.Time
	done   chan struct{}
	stop   sync.Once
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}

	rl := &RateLimiter{
		config: config,
		store:  make(map[string]*rateLimitEntry),
		now:    time.Now,
		done:   make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// NewLeadFormRateLimiter limits contact form submissions per IP using the
// configured budget
func NewLeadFormRateLimiter(cfg *config.Config) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Requests: cfg.LeadRateLimit,
		Window:   time.Duration(cfg.LeadRateWindow) * time.Minute,
		Message:  "Too many messages from your network. Please try again later.",
		OnLimit: func(c echo.Context, key string) {
			services.Monitor.TrackRejection(key, services.RejectRateLimit)
		},
	})
}

// NewSubscribeRateLimiter limits newsletter signups to 10 per hour per IP
func NewSubscribeRateLimiter() *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Requests: 10,
		Window:   time.Hour,
		Message:  "Too many signups. Please try again later.",
	})
}

// Allow records a request for key and reports whether it is within budget.
// When it is not, retryAfter is the time left in the current window.
func (rl *RateLimiter) Allow(key string) (ok bool, retryAfter time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, exists := rl.store[key]
	if !exists || !now.Before(entry.expiresAt) {
		rl.store[key] = &rateLimitEntry{
			count:     1,
			expiresAt: now.Add(rl.config.Window),
		}
		return true, 0
	}

	if entry.count >= rl.config.Requests {
		return false, entry.expiresAt.Sub(now)
	}

	entry.count++
	return true, 0
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rl.config.KeyFunc(c)
			ok, retryAfter := rl.Allow(key)
			if ok {
				return next(c)
			}
			if rl.config.OnLimit != nil {
				rl.config.OnLimit(c, key)
			}

			seconds := int(retryAfter.Round(time.Second) / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
			c.Logger().Warnf("rate limit exceeded for %s on %s", c.RealIP(), c.Path())

			if c.Request().Header.Get("HX-Request") == "true" {
				return c.HTML(http.StatusTooManyRequests, `<div class="bg-red-500/10 border border-red-500/20 text-red-400 px-4 py-3 rounded-xl flex items-center gap-3" role="alert"><svg class="w-5 h-5 flex-shrink-0" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M12 8v4m0 4h.01M21 12a9 9 0 11-18 0 9 9 0 0118 0z"></path></svg><span class="text-sm font-medium">`+html.EscapeString(rl.config.Message)+`</span></div>`)
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, rl.config.Message)
		}
	}
}

// Stop ends the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stop.Do(func() { close(rl.done) })
}

// cleanup removes expired entries every minute
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.prune()
		}
	}
}

func (rl *RateLimiter) prune() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	for key, entry := range rl.store {
		if !now.Before(entry.expiresAt) {
			delete(rl.store, key)
		}
	}
}
