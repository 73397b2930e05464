package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "foodcart/internal/errors"
	"foodcart/internal/model"
	"foodcart/internal/repository"
)

// CreateTestimonial is the payload of a public testimonial submission.
type CreateTestimonial struct {
	CustomerName string
	Location     string
	Content      string
	Rating       int
}

// TestimonialService exposes testimonial operations. Submissions are public
// but invisible until approved; listing all, approving, and deleting are
// admin-only at the router.
type TestimonialService interface {
	ListApproved(ctx context.Context) ([]model.Testimonial, error)
	ListAll(ctx context.Context) ([]model.Testimonial, error)
	Create(ctx context.Context, in CreateTestimonial) (*model.Testimonial, error)
	Approve(ctx context.Context, id uuid.UUID) (*model.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(testimonialRepo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{testimonialRepo: testimonialRepo}
}

func (s *testimonialService) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	return s.testimonialRepo.ListApproved(ctx)
}

func (s *testimonialService) ListAll(ctx context.Context) ([]model.Testimonial, error) {
	return s.testimonialRepo.ListAll(ctx)
}

// Create stores the testimonial unapproved regardless of caller input, so it
// stays out of public listings until an admin approves it.
func (s *testimonialService) Create(ctx context.Context, in CreateTestimonial) (*model.Testimonial, error) {
	rating := in.Rating
	if rating == 0 {
		rating = 5
	}

	testimonial := &model.Testimonial{
		CustomerName: in.CustomerName,
		Location:     in.Location,
		Content:      in.Content,
		Rating:       rating,
		IsApproved:   false,
	}
	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return testimonial, nil
}

func (s *testimonialService) Approve(ctx context.Context, id uuid.UUID) (*model.Testimonial, error) {
	testimonial, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	testimonial.IsApproved = true
	if err := s.testimonialRepo.Save(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("save testimonial: %w", err)
	}
	return testimonial, nil
}

func (s *testimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.testimonialRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}

func (s *testimonialService) get(ctx context.Context, id uuid.UUID) (*model.Testimonial, error) {
	testimonial, err := s.testimonialRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("find testimonial: %w", err)
	}
	return testimonial, nil
}
