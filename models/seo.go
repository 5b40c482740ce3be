package models

// SEO is the search and social metadata of a page
type SEO struct {
	Title       string
	Description string
	Keywords    string // comma-separated
	Canonical   string
	SiteName    string
	Image       string // absolute URL of the social preview image
	NoIndex     bool

	// Organization is published as schema.org JSON-LD when set
	Organization *Organization
}

// Organization is the business behind the site
type Organization struct {
	Name      string
	URL       string
	Logo      string
	Email     string
	Telephone string
	Street    string
	Locality  string
}

// NewSEO returns page metadata with a title and description
func NewSEO(title, description string) *SEO {
	return &SEO{Title: title, Description: description}
}

func (s *SEO) WithKeywords(keywords string) *SEO {
	s.Keywords = keywords
	return s
}

func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

func (s *SEO) WithSiteName(name string) *SEO {
	s.SiteName = name
	return s
}

func (s *SEO) WithImage(url string) *SEO {
	s.Image = url
	return s
}

// WithNoIndex asks crawlers to skip the page when noIndex is set
func (s *SEO) WithNoIndex(noIndex bool) *SEO {
	s.NoIndex = noIndex
	return s
}

func (s *SEO) WithOrganization(org *Organization) *SEO {
	s.Organization = org
	return s
}

// TwitterCard picks the large card only when there is an image to show
func (s *SEO) TwitterCard() string {
	if s.Image != "" {
		return "summary_large_image"
	}
	return "summary"
}

// StructuredData returns the schema.org Organization document, or nil
func (s *SEO) StructuredData() map[string]interface{} {
	org := s.Organization
	if org == nil {
		return nil
	}

	doc := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     org.Name,
		"url":      org.URL,
	}
	if org.Logo != "" {
		doc["logo"] = org.Logo
	}
	if org.Email != "" || org.Telephone != "" {
		doc["contactPoint"] = map[string]interface{}{
			"@type":       "ContactPoint",
			"contactType": "sales",
			"email":       org.Email,
			"telephone":   org.Telephone,
		}
	}
	if org.Street != "" {
		doc["address"] = map[string]interface{}{
			"@type":           "PostalAddress",
			"streetAddress":   org.Street,
			"addressLocality": org.Locality,
		}
	}
	return doc
}
