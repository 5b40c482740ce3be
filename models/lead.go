package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead sources
const (
	LeadSourceContactForm = "contact_form"
	LeadSourceImport      = "import"
)

// Lead is a strategy-call request captured by the contact form
type Lead struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// Requester information
	Name    string  `gorm:"not null" json:"name"`
	Email   string  `gorm:"not null;index" json:"email"`
	Company *string `json:"company,omitempty"`
	Message *string `gorm:"type:text" json:"message,omitempty"`

	// Audit fields
	Source    string `gorm:"not null;default:contact_form" json:"source"`
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `gorm:"type:text" json:"user_agent,omitempty"`
}

// BeforeCreate hook to generate UUID
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// CompanyName returns the company or an empty string
func (l *Lead) CompanyName() string {
	if l.Company == nil {
		return ""
	}
	return *l.Company
}

// MessageText returns the message or an empty string
func (l *Lead) MessageText() string {
	if l.Message == nil {
		return ""
	}
	return *l.Message
}
