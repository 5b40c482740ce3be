package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/mail"
	"sort"
	"strings"
	"time"

	"autobot_site_go/models"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Field length limits for lead submissions
const (
	MaxLeadNameLength    = 200
	MaxLeadEmailLength   = 254
	MaxLeadCompanyLength = 200
	MaxLeadMessageLength = 5000
)

// ErrInvalidLead is wrapped by every lead validation failure
var ErrInvalidLead = errors.New("invalid lead")

// LeadValidationError lists the offending fields and their messages
type LeadValidationError struct {
	Fields map[string]string
}

func (e *LeadValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%v: %s", ErrInvalidLead, strings.Join(names, ", "))
}

func (e *LeadValidationError) Unwrap() error {
	return ErrInvalidLead
}

// LeadInput is the raw contact form payload
type LeadInput struct {
	Name    string
	Email   string
	Company string
	Message string
}

// LeadMeta carries request details stored alongside a lead
type LeadMeta struct {
	Source    string
	IPAddress string
	UserAgent string
}

// strictPolicy strips all markup from free text
var strictPolicy = bluemonday.StrictPolicy()

// sanitizeText removes markup while keeping the plain text readable
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// Normalize trims whitespace from every field and strips markup from the
// free-text ones, so Validate sees exactly what ToLead stores.
func (in LeadInput) Normalize() LeadInput {
	return LeadInput{
		Name:    sanitizeText(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Company: sanitizeText(in.Company),
		Message: sanitizeText(in.Message),
	}
}

// Validate checks required fields, email syntax and length limits
func (in LeadInput) Validate() error {
	fields := make(map[string]string)

	switch {
	case in.Name == "":
		fields["name"] = "Name is required"
	case len(in.Name) > MaxLeadNameLength:
		fields["name"] = fmt.Sprintf("Name must be at most %d characters", MaxLeadNameLength)
	}

	switch {
	case in.Email == "":
		fields["email"] = "Email is required"
	case len(in.Email) > MaxLeadEmailLength || !IsValidEmail(in.Email):
		fields["email"] = "Please enter a valid email address"
	}

	if len(in.Company) > MaxLeadCompanyLength {
		fields["company"] = fmt.Sprintf("Company must be at most %d characters", MaxLeadCompanyLength)
	}
	if len(in.Message) > MaxLeadMessageLength {
		fields["message"] = fmt.Sprintf("Message must be at most %d characters", MaxLeadMessageLength)
	}

	if len(fields) > 0 {
		return &LeadValidationError{Fields: fields}
	}
	return nil
}

// IsValidEmail reports whether s is a bare email address
func IsValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@")+1:], ".")
}

// ToLead builds the record to insert from normalized input. Optional fields
// left empty stay absent.
func (in LeadInput) ToLead(meta LeadMeta) *models.Lead {
	lead := &models.Lead{
		Name:      in.Name,
		Email:     strings.ToLower(in.Email),
		Source:    meta.Source,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	}
	if lead.Source == "" {
		lead.Source = models.LeadSourceContactForm
	}
	if company := in.Company; company != "" {
		lead.Company = &company
	}
	if message := in.Message; message != "" {
		lead.Message = &message
	}
	return lead
}

// LeadInserter performs the single remote insertion of a lead
type LeadInserter interface {
	InsertLead(ctx context.Context, lead *models.Lead) error
}

// GormLeadStore inserts leads into the hosted database
type GormLeadStore struct {
	DB *gorm.DB
}

// NewGormLeadStore creates a lead store on the given connection
func NewGormLeadStore(db *gorm.DB) *GormLeadStore {
	return &GormLeadStore{DB: db}
}

// InsertLead writes one lead. There is no retry.
func (s *GormLeadStore) InsertLead(ctx context.Context, lead *models.Lead) error {
	if s.DB == nil {
		return fmt.Errorf("failed to insert lead: database not initialized")
	}
	if err := s.DB.WithContext(ctx).Create(lead).Error; err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

// ListLeads returns leads created at or after since, newest first
func ListLeads(ctx context.Context, db *gorm.DB, since time.Time) ([]models.Lead, error) {
	var leads []models.Lead
	query := db.WithContext(ctx).Order("created_at DESC")
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}
	if err := query.Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// Subscribe records a newsletter signup. Repeat signups are accepted
// without creating a duplicate; created reports whether a row was added.
func Subscribe(ctx context.Context, db *gorm.DB, email, ip string) (created bool, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !IsValidEmail(email) {
		return false, &LeadValidationError{Fields: map[string]string{"email": "Please enter a valid email address"}}
	}

	subscriber := models.Subscriber{Email: email, IPAddress: ip}
	result := db.WithContext(ctx).Where("email = ?", email).FirstOrCreate(&subscriber)
	if result.Error != nil {
		return false, fmt.Errorf("failed to subscribe: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
