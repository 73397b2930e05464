package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "foodcart/internal/errors"
	"foodcart/internal/model"
)

func TestProductService_UpdateAppliesOnlySetFields(t *testing.T) {
	id := uuid.New()
	stored := &model.Product{
		ID:          id,
		Name:        "Momos Cart",
		Description: "Compact cart",
		Category:    model.CategoryReseller,
		Price:       45000,
		Discount:    10,
		Condition:   model.ConditionGood,
		InStock:     true,
	}

	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", mock.Anything, id).Return(stored, nil)
	productRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	newPrice := int64(52000)
	inStock := false
	svc := NewProductService(productRepo)
	updated, err := svc.Update(context.Background(), id, ProductUpdate{
		Price:   &newPrice,
		InStock: &inStock,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(52000), updated.Price)
	assert.False(t, updated.InStock)
	assert.Equal(t, "Momos Cart", updated.Name)
	assert.Equal(t, model.CategoryReseller, updated.Category)
	// Discount is taken as given by the caller, never derived from prices.
	assert.Equal(t, 10, updated.Discount)
}

func TestProductService_GetMissing(t *testing.T) {
	id := uuid.New()
	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewProductService(productRepo)
	_, err := svc.Get(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestProductService_DeleteMissingSkipsDelete(t *testing.T) {
	id := uuid.New()
	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewProductService(productRepo)
	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductService_Delete(t *testing.T) {
	id := uuid.New()
	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", mock.Anything, id).Return(&model.Product{ID: id}, nil)
	productRepo.On("Delete", mock.Anything, id).Return(nil)

	svc := NewProductService(productRepo)
	err := svc.Delete(context.Background(), id)

	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
}
