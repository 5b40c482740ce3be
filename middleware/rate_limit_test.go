package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autobot_site_go/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})
	defer rl.Stop()

	assert.NotNil(t, rl)
	assert.Equal(t, 10, rl.config.Requests)
	assert.Equal(t, time.Minute, rl.config.Window)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.Equal(t, "Too many requests. Please try again later.", rl.config.Message)
}

func TestNewLeadFormRateLimiter(t *testing.T) {
	rl := NewLeadFormRateLimiter(&config.Config{LeadRateLimit: 3, LeadRateWindow: 30})
	defer rl.Stop()

	assert.Equal(t, 3, rl.config.Requests)
	assert.Equal(t, 30*time.Minute, rl.config.Window)
}

func TestRateLimiterAllowWindow(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Minute})
	defer rl.Stop()

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	ok, _ := rl.Allow("1.2.3.4")
	assert.True(t, ok)
	ok, _ = rl.Allow("1.2.3.4")
	assert.True(t, ok)

	now = now.Add(20 * time.Second)
	ok, retry := rl.Allow("1.2.3.4")
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, retry)

	ok, _ = rl.Allow("5.6.7.8")
	assert.True(t, ok, "keys are independent")

	now = now.Add(40 * time.Second)
	ok, _ = rl.Allow("1.2.3.4")
	assert.True(t, ok, "window resets")

	now = now.Add(2 * time.Minute)
	rl.prune()
	assert.Empty(t, rl.store)
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()

	t.Run("WithinLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 2,
			Window:   time.Second,
		})
		defer rl.Stop()

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodPost, "/contact", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("ExceededLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 1,
			Window:   time.Minute,
		})
		defer rl.Stop()

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})

		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		rec := httptest.NewRecorder()
		assert.NoError(t, handler(e.NewContext(req, rec)))

		req = httptest.NewRequest(http.MethodPost, "/contact", nil)
		rec = httptest.NewRecorder()
		err := handler(e.NewContext(req, rec))

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("HXRequestExceeded", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 1,
			Window:   time.Minute,
			Message:  "Slow <down>",
		})
		defer rl.Stop()

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})

		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		rec := httptest.NewRecorder()
		assert.NoError(t, handler(e.NewContext(req, rec)))

		req = httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.Header.Set("HX-Request", "true")
		rec = httptest.NewRecorder()

		assert.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Slow &lt;down&gt;")
	})

	t.Run("OnLimitHook", func(t *testing.T) {
		var limited []string
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 1,
			Window:   time.Minute,
			OnLimit:  func(c echo.Context, key string) { limited = append(limited, key) },
		})
		defer rl.Stop()

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/contact", nil)
			req.RemoteAddr = "203.0.113.9:4000"
			_ = handler(e.NewContext(req, httptest.NewRecorder()))
		}
		assert.Equal(t, []string{"203.0.113.9", "203.0.113.9"}, limited)
	})
}
