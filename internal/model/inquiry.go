package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InquiryStatus tracks how far an inquiry has been worked.
type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "pending"
	InquiryContacted InquiryStatus = "contacted"
	InquiryResolved  InquiryStatus = "resolved"
)

// Inquiry represents a customer inquiry submitted from the public contact form.
type Inquiry struct {
	ID          uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string        `json:"name" gorm:"size:255;not null"`
	Email       string        `json:"email,omitempty" gorm:"size:255"`
	Phone       string        `json:"phone,omitempty" gorm:"size:50"`
	Requirement string        `json:"requirement" gorm:"type:text;not null"`
	ProductID   *uuid.UUID    `json:"productId,omitempty" gorm:"type:char(36);index"`
	Status      InquiryStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time     `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time     `json:"-"`

	// Relations
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
