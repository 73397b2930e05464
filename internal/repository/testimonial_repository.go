package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodcart/internal/model"
)

// TestimonialRepository defines testimonial persistence operations.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *model.Testimonial) error
	Save(ctx context.Context, testimonial *model.Testimonial) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Testimonial, error)
	ListApproved(ctx context.Context) ([]model.Testimonial, error)
	ListAll(ctx context.Context) ([]model.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository builds a GORM-backed repository.
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r *testimonialRepository) Save(ctx context.Context, testimonial *model.Testimonial) error {
	return r.db.WithContext(ctx).Save(testimonial).Error
}

func (r *testimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Testimonial, error) {
	var testimonial model.Testimonial
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&testimonial).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	if err := r.db.WithContext(ctx).Where("is_approved = ?", true).
		Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *testimonialRepository) ListAll(ctx context.Context) ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Testimonial{}).Error
}
