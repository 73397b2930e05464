package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial represents a customer review. Publicly submitted testimonials
// stay hidden until an admin approves them.
type Testimonial struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CustomerName string    `json:"customerName" gorm:"size:255;not null"`
	Location     string    `json:"location" gorm:"size:255;not null"`
	Content      string    `json:"content" gorm:"type:text;not null"`
	Rating       int       `json:"rating" gorm:"not null;default:5"`
	IsApproved   bool      `json:"isApproved" gorm:"default:false;index"`
	CreatedAt    time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt    time.Time `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
