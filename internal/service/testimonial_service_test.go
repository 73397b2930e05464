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

// MockTestimonialRepository is a mock implementation of TestimonialRepository.
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *MockTestimonialRepository) Save(ctx context.Context, testimonial *model.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *MockTestimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) ListAll(ctx context.Context) ([]model.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestTestimonialService_CreateForcesUnapproved(t *testing.T) {
	repo := new(MockTestimonialRepository)
	var stored *model.Testimonial
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Testimonial")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.Testimonial)
		}).Return(nil)

	svc := NewTestimonialService(repo)
	testimonial, err := svc.Create(context.Background(), CreateTestimonial{
		CustomerName: "Ravi",
		Location:     "Rajkot",
		Content:      "Great cart, great service",
		Rating:       4,
	})

	assert.NoError(t, err)
	assert.False(t, testimonial.IsApproved)
	assert.False(t, stored.IsApproved)
	assert.Equal(t, 4, stored.Rating)
}

func TestTestimonialService_CreateDefaultsRating(t *testing.T) {
	repo := new(MockTestimonialRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Testimonial")).Return(nil)

	svc := NewTestimonialService(repo)
	testimonial, err := svc.Create(context.Background(), CreateTestimonial{
		CustomerName: "Meera",
		Location:     "Surat",
		Content:      "Very happy with the purchase",
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, testimonial.Rating)
}

func TestTestimonialService_Approve(t *testing.T) {
	id := uuid.New()
	repo := new(MockTestimonialRepository)
	repo.On("FindByID", mock.Anything, id).
		Return(&model.Testimonial{ID: id, IsApproved: false}, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(tm *model.Testimonial) bool {
		return tm.IsApproved
	})).Return(nil)

	svc := NewTestimonialService(repo)
	testimonial, err := svc.Approve(context.Background(), id)

	assert.NoError(t, err)
	assert.True(t, testimonial.IsApproved)
	repo.AssertExpectations(t)
}

func TestTestimonialService_ApproveMissing(t *testing.T) {
	id := uuid.New()
	repo := new(MockTestimonialRepository)
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewTestimonialService(repo)
	_, err := svc.Approve(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrTestimonialNotFound)
}

func TestTestimonialService_DeleteMissing(t *testing.T) {
	id := uuid.New()
	repo := new(MockTestimonialRepository)
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewTestimonialService(repo)
	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrTestimonialNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTestimonialService_PublicListOnlyApproved(t *testing.T) {
	approved := []model.Testimonial{{ID: uuid.New(), IsApproved: true}}
	all := append([]model.Testimonial{{ID: uuid.New(), IsApproved: false}}, approved...)

	repo := new(MockTestimonialRepository)
	repo.On("ListApproved", mock.Anything).Return(approved, nil)
	repo.On("ListAll", mock.Anything).Return(all, nil)

	svc := NewTestimonialService(repo)

	public, err := svc.ListApproved(context.Background())
	assert.NoError(t, err)
	assert.Len(t, public, 1)

	admin, err := svc.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, admin, 2)
}
