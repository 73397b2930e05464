package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductCategory represents the catalog section a product belongs to.
type ProductCategory string

const (
	CategoryReseller    ProductCategory = "reseller"
	CategoryNew         ProductCategory = "new"
	CategoryAccessories ProductCategory = "accessories"
)

// ProductCondition grades a resold cart. Meaningful only for reseller products.
type ProductCondition string

const (
	ConditionExcellent ProductCondition = "excellent"
	ConditionGood      ProductCondition = "good"
	ConditionFair      ProductCondition = "fair"
)

// StringList is a string slice persisted as a JSON column.
type StringList []string

// Product represents a food cart, cabin, or accessory in the catalog.
// Prices are integers in the smallest currency unit.
type Product struct {
	ID            uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string           `json:"name" gorm:"size:255;not null;index"`
	Description   string           `json:"description" gorm:"type:text;not null"`
	Category      ProductCategory  `json:"category" gorm:"type:varchar(20);not null;index"`
	Price         int64            `json:"price" gorm:"not null;index"`
	OriginalPrice *int64           `json:"originalPrice,omitempty"`
	Discount      int              `json:"discount" gorm:"default:0"`
	Condition     ProductCondition `json:"condition,omitempty" gorm:"type:varchar(20)"`
	Images        StringList       `json:"images" gorm:"serializer:json"`
	Features      StringList       `json:"features" gorm:"serializer:json"`
	InStock       bool             `json:"inStock" gorm:"default:true"`
	CreatedAt     time.Time        `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time        `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
