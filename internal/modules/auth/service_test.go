package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"motorent/internal/domain"
	"motorent/internal/repository"
)

// Mock repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64) (string, error) { return "token-for-test", nil }

func TestService_Register_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockUsers, stubJWT{})

	res, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Admin",
		Email:    "  Admin@Example.COM ",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-for-test", res.Token)
	assert.Equal(t, "admin@example.com", res.User.Email)
	assert.Equal(t, int64(999), res.User.ID)
}

func TestService_Register_EmailExists(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateKey)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "admin@example.com").
		Return(&domain.User{ID: 1, Email: "admin@example.com", PasswordHash: string(hash)}, nil)

	service := NewService(mockUsers, stubJWT{})

	res, err := service.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-for-test", res.Token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "admin@example.com").
		Return(&domain.User{ID: 1, Email: "admin@example.com", PasswordHash: string(hash)}, nil)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Me_NotFound(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByID", mock.Anything, int64(5)).Return(nil, nil)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.Me(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}
