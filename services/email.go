package services

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"log"
	"strings"
	texttemplate "text/template"
	"time"

	"autobot_site_go/config"
	"autobot_site_go/models"

	"github.com/resend/resend-go/v2"
)

//go:embed emails/*.html emails/*.txt
var emailTemplates embed.FS

// Email represents an email message
type Email struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// loadTemplate renders the HTML and text variants of an embedded email template
func loadTemplate(templateName string, data interface{}) (html string, text string, err error) {
	htmlTmpl, err := htmltemplate.ParseFS(emailTemplates, "emails/"+templateName+".html")
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s.html: %w", templateName, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s.html: %w", templateName, err)
	}

	textTmpl, err := texttemplate.ParseFS(emailTemplates, "emails/"+templateName+".txt")
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s.txt: %w", templateName, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s.txt: %w", templateName, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (test mode - not actually sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		ReplyTo: email.ReplyTo,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in test mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Test Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// SendEmailAsync sends an email in a goroutine so handlers never wait on the
// email provider
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		ReplyTo:  email.ReplyTo,
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func(cfg *config.Config, email *Email) {
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("Error sending async email: %v", err)
		}
	}(cfg, emailCopy)
}

// LeadEmailData contains data for the lead email templates
type LeadEmailData struct {
	Name    string
	Email   string
	Company string
	Message string
	AppURL  string
}

func newLeadEmailData(lead *models.Lead, appURL string) LeadEmailData {
	return LeadEmailData{
		Name:    lead.Name,
		Email:   lead.Email,
		Company: lead.CompanyName(),
		Message: lead.MessageText(),
		AppURL:  appURL,
	}
}

// BuildLeadNotificationEmail tells the sales inbox about a new strategy call request
func BuildLeadNotificationEmail(salesEmail string, lead *models.Lead, appURL string) *Email {
	data := newLeadEmailData(lead, appURL)
	email := &Email{
		To:      []string{salesEmail},
		ReplyTo: lead.Email,
		Subject: fmt.Sprintf("New strategy call request from %s", lead.Name),
	}

	html, text, err := loadTemplate("lead_notification", data)
	if err != nil {
		log.Printf("Error loading lead_notification email template: %v", err)
		email.TextBody = fmt.Sprintf("New lead: %s <%s>\nCompany: %s\n\n%s", data.Name, data.Email, data.Company, data.Message)
		return email
	}
	email.HTMLBody, email.TextBody = html, text
	return email
}

// BuildLeadConfirmationEmail thanks the requester and sets expectations
func BuildLeadConfirmationEmail(lead *models.Lead, appURL string) *Email {
	data := newLeadEmailData(lead, appURL)
	email := &Email{
		To:      []string{lead.Email},
		Subject: "We received your strategy call request",
	}

	html, text, err := loadTemplate("lead_confirmation", data)
	if err != nil {
		log.Printf("Error loading lead_confirmation email template: %v", err)
		email.TextBody = fmt.Sprintf("Hi %s,\n\nThanks for reaching out. Our team will contact you shortly to schedule your strategy call.", data.Name)
		return email
	}
	email.HTMLBody, email.TextBody = html, text
	return email
}

// LeadDigestEmailData contains data for the daily lead digest
type LeadDigestEmailData struct {
	Date      string
	Count     int
	Leads     []LeadEmailData
	ExportURL string
	AppURL    string
}

// BuildLeadDigestEmail summarizes the leads received in the last day
func BuildLeadDigestEmail(salesEmail string, leads []models.Lead, date time.Time, exportURL, appURL string) *Email {
	data := LeadDigestEmailData{
		Date:      date.Format("Monday, January 2, 2006"),
		Count:     len(leads),
		ExportURL: exportURL,
		AppURL:    appURL,
	}
	for i := range leads {
		data.Leads = append(data.Leads, newLeadEmailData(&leads[i], appURL))
	}

	email := &Email{
		To:      []string{salesEmail},
		Subject: fmt.Sprintf("Lead digest for %s: %d new", date.Format("Jan 2"), len(leads)),
	}

	html, text, err := loadTemplate("lead_digest", data)
	if err != nil {
		log.Printf("Error loading lead_digest email template: %v", err)
		var b strings.Builder
		fmt.Fprintf(&b, "%d new leads on %s\n\n", data.Count, data.Date)
		for _, l := range data.Leads {
			fmt.Fprintf(&b, "- %s <%s>\n", l.Name, l.Email)
		}
		email.TextBody = b.String()
		return email
	}
	email.HTMLBody, email.TextBody = html, text
	return email
}
