package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "foodcart/internal/errors"
	"foodcart/internal/mailer"
	"foodcart/internal/model"
	"foodcart/internal/repository"
)

// InquiryNotifier is the slice of mailer.Notifier the inquiry flow needs.
type InquiryNotifier interface {
	NotifyInquiry(in mailer.InquiryNotification)
}

// CreateInquiry is the payload of a public inquiry submission.
type CreateInquiry struct {
	Name        string
	Email       string
	Phone       string
	Requirement string
	ProductID   *uuid.UUID
}

// InquiryService handles customer inquiries. Creation is public; everything
// else is admin-only at the router.
type InquiryService interface {
	Create(ctx context.Context, in CreateInquiry) (*model.Inquiry, error)
	List(ctx context.Context) ([]model.Inquiry, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Inquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.InquiryStatus) (*model.Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	productRepo repository.ProductRepository
	notifier    InquiryNotifier
}

// NewInquiryService creates a new inquiry service.
func NewInquiryService(inquiryRepo repository.InquiryRepository, productRepo repository.ProductRepository, notifier InquiryNotifier) InquiryService {
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		productRepo: productRepo,
		notifier:    notifier,
	}
}

// Create persists the inquiry, then hands the admin notification to the
// background notifier. The notification outcome never affects the result.
func (s *inquiryService) Create(ctx context.Context, in CreateInquiry) (*model.Inquiry, error) {
	inquiry := &model.Inquiry{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Requirement: in.Requirement,
		ProductID:   in.ProductID,
		Status:      model.InquiryPending,
	}
	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	var productName string
	if in.ProductID != nil {
		if product, err := s.productRepo.FindByID(ctx, *in.ProductID); err == nil {
			productName = product.Name
			inquiry.Product = product
		}
	}

	s.notifier.NotifyInquiry(mailer.InquiryNotification{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Requirement: in.Requirement,
		ProductName: productName,
	})

	return inquiry, nil
}

func (s *inquiryService) List(ctx context.Context) ([]model.Inquiry, error) {
	return s.inquiryRepo.List(ctx)
}

func (s *inquiryService) Get(ctx context.Context, id uuid.UUID) (*model.Inquiry, error) {
	inquiry, err := s.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("find inquiry: %w", err)
	}
	return inquiry, nil
}

func (s *inquiryService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.InquiryStatus) (*model.Inquiry, error) {
	inquiry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	inquiry.Status = status
	if err := s.inquiryRepo.Save(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("save inquiry: %w", err)
	}
	return inquiry, nil
}

func (s *inquiryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.inquiryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}
	return nil
}
