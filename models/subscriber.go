package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscriber is a newsletter signup from the site footer
type Subscriber struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Email     string    `gorm:"not null;uniqueIndex" json:"email"`
	IPAddress string    `json:"ip_address,omitempty"`
}

// BeforeCreate hook to generate UUID
func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
