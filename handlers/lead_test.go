package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"autobot_site_go/models"
	"autobot_site_go/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactForm(name, email, company, message string) *strings.Reader {
	f := url.Values{}
	f.Add("name", name)
	f.Add("email", email)
	f.Add("company", company)
	f.Add("message", message)
	return strings.NewReader(f.Encode())
}

func TestContactPostHandler(t *testing.T) {
	t.Run("HTMX success stores lead and shows thank you", func(t *testing.T) {
		database := setupTestDB(t)
		_, c, rec := setupEcho(http.MethodPost, "/contact", contactForm("Ada Lovelace", "Ada@Example.com", "Analytical Engines", "Automate our <b>sales</b> follow-up"))
		c.Request().Header.Set("HX-Request", "true")

		err := ContactPostHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `data-form-state="submitted"`)
		assert.Contains(t, body, "Thank You!")
		assert.Contains(t, body, "Send Another Message")
		assert.NotContains(t, body, "<html")

		var leads []models.Lead
		require.NoError(t, database.Find(&leads).Error)
		require.Len(t, leads, 1)
		assert.Equal(t, "ada@example.com", leads[0].Email)
		assert.Equal(t, "Analytical Engines", leads[0].CompanyName())
		assert.Equal(t, "Automate our sales follow-up", leads[0].MessageText())
		assert.Equal(t, models.LeadSourceContactForm, leads[0].Source)
	})

	t.Run("Plain post redirects after success", func(t *testing.T) {
		setupTestDB(t)
		_, c, rec := setupEcho(http.MethodPost, "/contact", contactForm("Grace", "grace@example.com", "", ""))

		err := ContactPostHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/?submitted=1#contact", rec.Header().Get("Location"))
	})

	t.Run("Validation failure keeps values", func(t *testing.T) {
		database := setupTestDB(t)
		_, c, rec := setupEcho(http.MethodPost, "/contact", contactForm("", "not-an-email", "Acme", "Hello there"))
		c.Request().Header.Set("HX-Request", "true")

		err := ContactPostHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `data-form-state="error"`)
		assert.Contains(t, body, "Name is required")
		assert.Contains(t, body, "Please enter a valid email address")
		assert.Contains(t, body, `value="not-an-email"`)
		assert.Contains(t, body, "Hello there")

		var count int64
		database.Model(&models.Lead{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("Store failure shows generic error and keeps values", func(t *testing.T) {
		database := setupTestDB(t)
		require.NoError(t, database.Migrator().DropTable(&models.Lead{}))

		_, c, rec := setupEcho(http.MethodPost, "/contact", contactForm("Ada", "ada@example.com", "Acme", "Call me"))
		c.Request().Header.Set("HX-Request", "true")

		err := ContactPostHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `data-form-state="error"`)
		assert.Contains(t, body, "Something went wrong sending your message")
		assert.Contains(t, body, `value="ada@example.com"`)
		assert.Contains(t, body, "Call me")
		assert.NotContains(t, body, "no such table")
	})

	t.Run("Plain post failure renders the full page", func(t *testing.T) {
		setupTestDB(t)
		_, c, rec := setupEcho(http.MethodPost, "/contact", contactForm("Ada", "", "", ""))

		err := ContactPostHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
		assert.Contains(t, rec.Body.String(), "Email is required")
	})

	t.Run("Turnstile token required when enabled", func(t *testing.T) {
		database := setupTestDB(t)
		_, c, rec := setupEcho(http.MethodPost, "/contact", contactForm("Ada", "ada@example.com", "", ""))
		c.Request().Header.Set("HX-Request", "true")
		cfg := testConfig()
		cfg.TurnstileSiteKey, cfg.TurnstileSecretKey = "site-key", "secret-key"
		c.Set("config", cfg)

		err := ContactPostHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), captchaMissingMessage)
		assert.Contains(t, rec.Body.String(), `data-sitekey="site-key"`)

		var count int64
		database.Model(&models.Lead{}).Count(&count)
		assert.Zero(t, count)
	})
}

func TestContactResetHandler(t *testing.T) {
	t.Run("HTMX returns an empty idle form", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/contact/reset", nil)
		c.Request().Header.Set("HX-Request", "true")

		err := ContactResetHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-form-state="`+string(services.LeadFormIdle)+`"`)
		assert.Contains(t, rec.Body.String(), "Book Your Call")
	})

	t.Run("Plain post redirects to the form", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/contact/reset", nil)

		err := ContactResetHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#contact", rec.Header().Get("Location"))
	})
}

func TestSubscribePostHandler(t *testing.T) {
	database := setupTestDB(t)

	subscribe := func(email string) (int, string) {
		f := url.Values{}
		f.Add("email", email)
		_, c, rec := setupEcho(http.MethodPost, "/subscribe", strings.NewReader(f.Encode()))
		c.Request().Header.Set("HX-Request", "true")
		assert.NoError(t, SubscribePostHandler(c))
		return rec.Code, rec.Body.String()
	}

	code, body := subscribe("reader@example.com")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Thanks for subscribing!")

	code, body = subscribe("Reader@Example.com")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "already subscribed")

	code, body = subscribe("nope")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, body, "valid email")

	var count int64
	database.Model(&models.Subscriber{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
