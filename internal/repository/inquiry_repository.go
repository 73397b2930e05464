package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodcart/internal/model"
)

// InquiryRepository defines inquiry persistence operations. Reads populate
// the linked product when one is referenced.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *model.Inquiry) error
	Save(ctx context.Context, inquiry *model.Inquiry) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Inquiry, error)
	List(ctx context.Context) ([]model.Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository builds a GORM-backed repository.
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *inquiryRepository) Save(ctx context.Context, inquiry *model.Inquiry) error {
	return r.db.WithContext(ctx).Save(inquiry).Error
}

func (r *inquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	if err := r.db.WithContext(ctx).Preload("Product").Where("id = ?", id).First(&inquiry).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) List(ctx context.Context) ([]model.Inquiry, error) {
	var inquiries []model.Inquiry
	if err := r.db.WithContext(ctx).Preload("Product").Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *inquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Inquiry{}).Error
}
