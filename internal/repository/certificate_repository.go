package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodcart/internal/model"
)

// CertificateRepository defines certificate persistence operations.
type CertificateRepository interface {
	Create(ctx context.Context, certificate *model.Certificate) error
	Save(ctx context.Context, certificate *model.Certificate) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error)
	List(ctx context.Context) ([]model.Certificate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type certificateRepository struct {
	db *gorm.DB
}

// NewCertificateRepository builds a GORM-backed repository.
func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(ctx context.Context, certificate *model.Certificate) error {
	return r.db.WithContext(ctx).Create(certificate).Error
}

func (r *certificateRepository) Save(ctx context.Context, certificate *model.Certificate) error {
	return r.db.WithContext(ctx).Save(certificate).Error
}

func (r *certificateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error) {
	var certificate model.Certificate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&certificate).Error; err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (r *certificateRepository) List(ctx context.Context) ([]model.Certificate, error) {
	var certificates []model.Certificate
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}

func (r *certificateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Certificate{}).Error
}
