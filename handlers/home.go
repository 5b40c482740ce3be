package handlers

import (
	"net/http"

	"autobot_site_go/config"
	"autobot_site_go/middleware"
	"autobot_site_go/services"
	"autobot_site_go/templates/components"
	"autobot_site_go/templates/pages"
	"autobot_site_go/templates/sections"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the landing page. Sections are rendered unmounted,
// which is their hidden state; static/js/reveal.js observes them in the browser.
func LandingHandler(c echo.Context) error {
	form := services.NewLeadForm(services.LeadInput{})
	if c.QueryParam("submitted") == "1" {
		form.State = services.LeadFormSubmitted
	}
	return renderLanding(c, http.StatusOK, form)
}

// renderLanding renders the full page with the contact form in the given state
func renderLanding(c echo.Context, status int, form *services.LeadForm) error {
	cfg := c.Get("config").(*config.Config)

	data := pages.LandingData{
		SEO:       LandingSEO(cfg),
		Page:      sections.Landing(),
		Form:      form,
		CSRFToken: middleware.GetCSRFToken(c),
		Theme:     components.DefaultTheme,
	}
	if cfg.TurnstileEnabled() {
		data.TurnstileSiteKey = cfg.TurnstileSiteKey
	}
	return renderStatus(c, status, pages.Landing(data))
}
