package handlers

import (
	"strings"

	"autobot_site_go/config"
	"autobot_site_go/models"
	"autobot_site_go/templates/sections"
)

const (
	siteName           = "AutoBot AI"
	landingTitle       = "AutoBot AI - AI-Powered Business Automation"
	landingDescription = "Automate lead generation, integrate your CEM and deploy custom AI agents. Book a free strategy call with AutoBot AI's automation experts."
	landingKeywords    = "AI automation, AI agents, lead generation automation, CEM integration, business process automation"
)

// LandingSEO returns the landing page metadata. Non-production sites are
// kept out of search indexes.
func LandingSEO(cfg *config.Config) *models.SEO {
	home := cfg.AppURL + "/"
	return models.NewSEO(landingTitle, landingDescription).
		WithKeywords(landingKeywords).
		WithCanonical(home).
		WithSiteName(siteName).
		WithImage(cfg.AppURL + "/static/images/og-image.png").
		WithNoIndex(!cfg.IsProduction()).
		WithOrganization(&models.Organization{
			Name:      siteName,
			URL:       home,
			Logo:      cfg.AppURL + "/static/images/favicon.svg",
			Email:     sections.ContactInfo.Email,
			Telephone: strings.TrimPrefix(sections.ContactInfo.PhoneURI, "tel:"),
			Street:    sections.ContactInfo.Address[0],
			Locality:  sections.ContactInfo.Address[1],
		})
}
