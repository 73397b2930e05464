package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodcart/internal/auth"
	apperrors "foodcart/internal/errors"
	"foodcart/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		setupMock func(repo *MockUserRepository)
		wantErr   error
	}{
		{
			name:  "fresh email succeeds",
			email: "new@example.com",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "new@example.com").
					Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(nil)
			},
		},
		{
			name:  "email is case-normalized before lookup",
			email: "Mixed@Example.COM",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "mixed@example.com").
					Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(nil)
			},
		},
		{
			name:  "existing email conflicts",
			email: "taken@example.com",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "taken@example.com").
					Return(&model.User{ID: uuid.New(), Email: "taken@example.com"}, nil)
			},
			wantErr: apperrors.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewAuthService(repo, auth.NewTokenService("test-secret"))

			user, token, err := svc.Register(context.Background(), "Test User", tt.email, "password123")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, model.RoleUser, user.Role)
			assert.NotEqual(t, "password123", user.PasswordHash)
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	stored := &model.User{
		ID:           userID,
		Name:         "Test User",
		Email:        "user@example.com",
		PasswordHash: "",
		Role:         model.RoleUser,
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(t *testing.T, repo *MockUserRepository)
		wantErr   error
	}{
		{
			name:     "valid credentials succeed",
			email:    "user@example.com",
			password: "password123",
			setupMock: func(t *testing.T, repo *MockUserRepository) {
				user := *stored
				user.PasswordHash = hashPassword(t, "password123")
				repo.On("FindByEmail", mock.Anything, "user@example.com").Return(&user, nil)
			},
		},
		{
			name:     "unknown email fails",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(t *testing.T, repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "nobody@example.com").
					Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password fails",
			email:    "user@example.com",
			password: "wrong-password",
			setupMock: func(t *testing.T, repo *MockUserRepository) {
				user := *stored
				user.PasswordHash = hashPassword(t, "password123")
				repo.On("FindByEmail", mock.Anything, "user@example.com").Return(&user, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(t, repo)
			svc := NewAuthService(repo, auth.NewTokenService("test-secret"))

			user, token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, userID, user.ID)
			assert.NotEmpty(t, token)
		})
	}
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestAuthService_LoginFailuresIndistinguishable(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	user := &model.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: hashPassword(t, "password123"),
	}
	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(user, nil)

	svc := NewAuthService(repo, auth.NewTokenService("test-secret"))

	_, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "password123")
	_, _, errWrongPass := svc.Login(context.Background(), "user@example.com", "wrong")

	assert.Equal(t, errUnknown, errWrongPass)
}

func TestAuthService_RegisterThenLoginRoundTrip(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := auth.NewTokenService("test-secret")

	var created *model.User
	repo.On("FindByEmail", mock.Anything, "round@example.com").
		Return(nil, gorm.ErrRecordNotFound).Once()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.User)
			created.ID = uuid.New()
		}).Return(nil)

	svc := NewAuthService(repo, tokens)
	user, token, err := svc.Register(context.Background(), "Round Trip", "round@example.com", "password123")
	assert.NoError(t, err)

	// The registered credentials log in, and the issued token validates back
	// to the same user id.
	repo.On("FindByEmail", mock.Anything, "round@example.com").Return(created, nil)
	loggedIn, loginToken, err := svc.Login(context.Background(), "round@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, loginToken)

	tokenUserID, err := tokens.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, tokenUserID)
}
