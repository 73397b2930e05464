package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateType identifies the registration a certificate documents.
type CertificateType string

const (
	CertificateGST   CertificateType = "gst"
	CertificateIEC   CertificateType = "iec"
	CertificateUdyam CertificateType = "udyam"
	CertificateOther CertificateType = "other"
)

// Certificate represents a business registration certificate shown on the site.
type Certificate struct {
	ID                 uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name               string          `json:"name" gorm:"size:255;not null"`
	Type               CertificateType `json:"type" gorm:"type:varchar(20);not null"`
	RegistrationNumber string          `json:"registrationNumber" gorm:"size:255;not null"`
	ImageURL           string          `json:"imageUrl" gorm:"size:1024;not null"`
	DownloadURL        string          `json:"downloadUrl,omitempty" gorm:"size:1024"`
	CreatedAt          time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt          time.Time       `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
