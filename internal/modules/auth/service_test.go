package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"creatorhub/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 101 // simulate DB insert
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

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwt.On("GenerateToken", int64(101), "creator").Return("token-abc", nil)

	svc := NewService(users, jwt)
	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "  NEW@example.com ",
		Password: "password123",
		Name:     "New Creator",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", resp.AccessToken)
	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.Equal(t, domain.RoleCreator, resp.User.Role)
	users.AssertExpectations(t)
}

func TestService_Register_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("GetByEmail", mock.Anything, "taken@example.com").Return(&domain.User{ID: 5}, nil)

	svc := NewService(users, jwt)
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
		Name:     "Dup",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "demo@example.com").Return(&domain.User{
		ID:           101,
		Email:        "demo@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCreator,
	}, nil)
	jwt.On("GenerateToken", int64(101), "creator").Return("token-abc", nil)

	svc := NewService(users, jwt)
	resp, err := svc.Login(context.Background(), LoginRequest{Email: "demo@example.com", Password: "password123"})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", resp.AccessToken)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "demo@example.com").Return(&domain.User{
		ID:           101,
		Email:        "demo@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc := NewService(users, jwt)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "demo@example.com", Password: "nope-nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	svc := NewService(users, jwt)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "password123"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
