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

// CertificateUpdate carries a partial certificate mutation.
type CertificateUpdate struct {
	Name               *string
	Type               *model.CertificateType
	RegistrationNumber *string
	ImageURL           *string
	DownloadURL        *string
}

// CertificateService exposes certificate operations. Reads are public;
// mutations are admin-only at the router.
type CertificateService interface {
	List(ctx context.Context) ([]model.Certificate, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Certificate, error)
	Create(ctx context.Context, certificate *model.Certificate) error
	Update(ctx context.Context, id uuid.UUID, update CertificateUpdate) (*model.Certificate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type certificateService struct {
	certificateRepo repository.CertificateRepository
}

// NewCertificateService creates a new certificate service.
func NewCertificateService(certificateRepo repository.CertificateRepository) CertificateService {
	return &certificateService{certificateRepo: certificateRepo}
}

func (s *certificateService) List(ctx context.Context) ([]model.Certificate, error) {
	return s.certificateRepo.List(ctx)
}

func (s *certificateService) Get(ctx context.Context, id uuid.UUID) (*model.Certificate, error) {
	certificate, err := s.certificateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("find certificate: %w", err)
	}
	return certificate, nil
}

func (s *certificateService) Create(ctx context.Context, certificate *model.Certificate) error {
	if err := s.certificateRepo.Create(ctx, certificate); err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}
	return nil
}

func (s *certificateService) Update(ctx context.Context, id uuid.UUID, update CertificateUpdate) (*model.Certificate, error) {
	certificate, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		certificate.Name = *update.Name
	}
	if update.Type != nil {
		certificate.Type = *update.Type
	}
	if update.RegistrationNumber != nil {
		certificate.RegistrationNumber = *update.RegistrationNumber
	}
	if update.ImageURL != nil {
		certificate.ImageURL = *update.ImageURL
	}
	if update.DownloadURL != nil {
		certificate.DownloadURL = *update.DownloadURL
	}

	if err := s.certificateRepo.Save(ctx, certificate); err != nil {
		return nil, fmt.Errorf("save certificate: %w", err)
	}
	return certificate, nil
}

func (s *certificateService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.certificateRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	return nil
}
