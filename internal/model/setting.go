package model

import "time"

// SiteSetting is one entry of the flat key-value store backing contact info
// and display statistics. Keys are unique; writes are upserts.
type SiteSetting struct {
	Key         string    `json:"key" gorm:"size:255;primaryKey"`
	Value       string    `json:"value" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"size:512"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
