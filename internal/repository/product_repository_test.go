package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"foodcart/internal/model"
)

// Both price bounds are inclusive: a product priced exactly at the shared
// bound is selected by minPrice=maxPrice=that price.
func TestProductRepository_ListPriceBoundsInclusive(t *testing.T) {
	db, mock := newMockDB(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE price >= \\? AND price <= \\? ORDER BY created_at DESC").
		WithArgs(int64(20000), int64(20000)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(id.String(), "Snacks Stall", int64(20000)))

	bound := int64(20000)
	repo := NewProductRepository(db)
	products, err := repo.List(context.Background(), ProductFilter{
		MinPrice: &bound,
		MaxPrice: &bound,
	})

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, int64(20000), products[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_ListComposesFiltersConjunctively(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `products` WHERE category = \\? AND price >= \\? AND LOWER\\(name\\) LIKE \\? AND `condition` = \\? ORDER BY created_at DESC").
		WithArgs("reseller", int64(10000), "%momos%", "good").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}))

	minPrice := int64(10000)
	repo := NewProductRepository(db)
	products, err := repo.List(context.Background(), ProductFilter{
		Category:  model.CategoryReseller,
		MinPrice:  &minPrice,
		Search:    "Momos",
		Condition: model.ConditionGood,
	})

	assert.NoError(t, err)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}
