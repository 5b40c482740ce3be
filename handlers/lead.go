package handlers

import (
	"errors"
	"net/http"
	"strings"

	"autobot_site_go/config"
	"autobot_site_go/db"
	"autobot_site_go/middleware"
	"autobot_site_go/models"
	"autobot_site_go/services"
	"autobot_site_go/templates/components"
	"autobot_site_go/templates/partials"

	"github.com/labstack/echo/v4"
)

const (
	captchaMissingMessage = "Please complete the verification challenge."
	captchaFailedMessage  = "We could not verify your request. Please try again."
)

// ContactPostHandler stores a strategy call request from the contact form.
// HTMX requests get the form partial back; plain posts are redirected on
// success and re-rendered in full on failure.
func ContactPostHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	form := services.NewLeadForm(services.LeadInput{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Company: c.FormValue("company"),
		Message: c.FormValue("message"),
	})

	// Validate Turnstile CAPTCHA (if configured)
	if cfg.TurnstileEnabled() {
		token := c.FormValue("cf-turnstile-response")
		if token == "" {
			middleware.RecordLeadSubmission(middleware.LeadOutcomeCaptcha)
			services.Monitor.TrackRejection(c.RealIP(), services.RejectCaptcha)
			form.State, form.Error = services.LeadFormError, captchaMissingMessage
			return respondContactForm(c, http.StatusBadRequest, form)
		}
		valid, err := services.VerifyTurnstileToken(token, cfg.TurnstileSecretKey, c.RealIP())
		if err != nil || !valid {
			c.Logger().Warnf("Turnstile verification failed: %v", err)
			middleware.RecordLeadSubmission(middleware.LeadOutcomeCaptcha)
			services.Monitor.TrackRejection(c.RealIP(), services.RejectCaptcha)
			form.State, form.Error = services.LeadFormError, captchaFailedMessage
			return respondContactForm(c, http.StatusBadRequest, form)
		}
	}

	lead, err := form.Submit(c.Request().Context(), services.NewGormLeadStore(db.DB), services.LeadMeta{
		Source:    models.LeadSourceContactForm,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidLead) {
			middleware.RecordLeadSubmission(middleware.LeadOutcomeInvalid)
			status = http.StatusUnprocessableEntity
		} else {
			middleware.RecordLeadSubmission(middleware.LeadOutcomeFailed)
			c.Logger().Errorf("Failed to store lead: %v", err)
		}
		return respondContactForm(c, status, form)
	}

	middleware.RecordLeadSubmission(middleware.LeadOutcomeStored)
	notifyLead(cfg, lead)

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/?submitted=1#contact")
	}
	return respondContactForm(c, http.StatusOK, form)
}

// ContactResetHandler returns the form to idle after a successful submission
func ContactResetHandler(c echo.Context) error {
	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/#contact")
	}
	form := services.NewLeadForm(services.LeadInput{})
	form.State = services.LeadFormSubmitted
	form.Reset()
	return respondContactForm(c, http.StatusOK, form)
}

// SubscribePostHandler records a newsletter signup from the footer
func SubscribePostHandler(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))

	created, err := services.Subscribe(c.Request().Context(), db.DB, email, c.RealIP())
	var status int
	var ok bool
	var message, outcome string
	switch {
	case errors.Is(err, services.ErrInvalidLead):
		status, message, outcome = http.StatusUnprocessableEntity, "Please enter a valid email address.", "invalid"
	case err != nil:
		c.Logger().Errorf("Failed to subscribe %s: %v", email, err)
		status, message, outcome = http.StatusInternalServerError, "Something went wrong. Please try again.", "failed"
	case created:
		status, ok, message, outcome = http.StatusOK, true, "Thanks for subscribing!", "created"
	default:
		status, ok, message, outcome = http.StatusOK, true, "You're already subscribed.", "existing"
	}
	middleware.RecordSubscription(outcome)

	if !isHTMX(c) {
		if !ok {
			return echo.NewHTTPError(status, message)
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return renderStatus(c, status, components.SubscribeResult(ok, message))
}

func respondContactForm(c echo.Context, status int, form *services.LeadForm) error {
	if !isHTMX(c) {
		return renderLanding(c, status, form)
	}

	cfg := c.Get("config").(*config.Config)
	data := partials.ContactFormData{
		Form:      form,
		CSRFToken: middleware.GetCSRFToken(c),
		Theme:     components.DefaultTheme,
	}
	if cfg.TurnstileEnabled() {
		data.TurnstileSiteKey = cfg.TurnstileSiteKey
	}
	return renderStatus(c, status, partials.ContactForm(data))
}

// notifyLead sends the sales notification and the requester confirmation.
// Neither affects the submission outcome.
func notifyLead(cfg *config.Config, lead *models.Lead) {
	if cfg.SalesNotifyEmail != "" {
		services.SendEmailAsync(cfg, services.BuildLeadNotificationEmail(cfg.SalesNotifyEmail, lead, cfg.AppURL))
	}
	services.SendEmailAsync(cfg, services.BuildLeadConfirmationEmail(lead, cfg.AppURL))
}
