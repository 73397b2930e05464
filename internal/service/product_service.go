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

// ProductUpdate carries a partial product mutation. Nil fields keep the
// stored value.
type ProductUpdate struct {
	Name          *string
	Description   *string
	Category      *model.ProductCategory
	Price         *int64
	OriginalPrice *int64
	Discount      *int
	Condition     *model.ProductCondition
	Images        *model.StringList
	Features      *model.StringList
	InStock       *bool
}

// ProductService exposes catalog operations. Reads are public; mutations are
// gated to admins at the router.
type ProductService interface {
	List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, id uuid.UUID, update ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.List(ctx, filter)
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, product *model.Product) error {
	if err := s.productRepo.Create(ctx, product); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// Update applies the set fields of update and saves the record. The discount
// value is stored as supplied; it is not recomputed from the prices.
func (s *productService) Update(ctx context.Context, id uuid.UUID, update ProductUpdate) (*model.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.OriginalPrice != nil {
		product.OriginalPrice = update.OriginalPrice
	}
	if update.Discount != nil {
		product.Discount = *update.Discount
	}
	if update.Condition != nil {
		product.Condition = *update.Condition
	}
	if update.Images != nil {
		product.Images = *update.Images
	}
	if update.Features != nil {
		product.Features = *update.Features
	}
	if update.InStock != nil {
		product.InStock = *update.InStock
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
