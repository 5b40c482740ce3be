package handlers

import (
	"net/http"
	"strings"
	"testing"

	"autobot_site_go/templates/sections"

	"github.com/stretchr/testify/assert"
)

func TestLandingHandler(t *testing.T) {
	t.Run("Renders every section hidden until observed", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		c.Set("csrf", "token-123")

		err := LandingHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		for _, id := range []string{sections.HeroID, sections.ServicesID, sections.AboutID, sections.CaseStudiesID, sections.FAQID, sections.ContactID} {
			assert.Contains(t, body, `<section id="`+id+`"`)
		}
		assert.Equal(t, 6, strings.Count(body, " data-reveal "))
		assert.Contains(t, body, "opacity-0 translate-y-10")
		assert.NotContains(t, body, "opacity-100 translate-y-0\" data-reveal")
		assert.Contains(t, body, "&#34;threshold&#34;:0.1")
		assert.Contains(t, body, "<noscript>")
		assert.Contains(t, body, `name="_csrf" value="token-123"`)
		assert.Contains(t, body, `data-form-state="idle"`)
		assert.Contains(t, body, `<link rel="canonical" href="https://autobot.test/"/>`)
		assert.Contains(t, body, `content="noindex, nofollow"`)
		assert.Contains(t, body, `<script type="application/ld+json"`)
		assert.Contains(t, body, `"addressLocality":"Tech District, NY 10001"`)
		assert.NotContains(t, body, "cf-turnstile")
	})

	t.Run("Submitted redirect shows the thank you card", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/?submitted=1", nil)

		err := LandingHandler(c)
		assert.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "Thank You!")
		assert.Contains(t, rec.Body.String(), `data-form-state="submitted"`)
	})

	t.Run("Turnstile widget rendered when configured", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		cfg := testConfig()
		cfg.TurnstileSiteKey, cfg.TurnstileSecretKey = "site-key", "secret"
		c.Set("config", cfg)

		err := LandingHandler(c)
		assert.NoError(t, err)
		assert.Contains(t, rec.Body.String(), `data-sitekey="site-key"`)
		assert.Contains(t, rec.Body.String(), "challenges.cloudflare.com/turnstile")
	})
}
