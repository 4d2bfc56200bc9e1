package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/identity"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/infrastructure/auth"
	"github.com/invoicing/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func newAuthService(userRepo *MockUserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-for-auth-service-tests",
		TokenExpiration: time.Hour,
		Issuer:          "invoicing-backend",
		Audience:        "invoicing-api",
	})
	return NewAuthService(userRepo, jwtService, zap.NewNop())
}

func testUser(t *testing.T, username, password string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, password, "Test User")
	require.NoError(t, err)
	return user
}

func TestAuthService_Login(t *testing.T) {
	t.Run("returns bearer token for valid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		user := testUser(t, "alice", "password1")
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)

		result, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "password1"})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.True(t, result.ExpiresAt.After(time.Now()))
		assert.Equal(t, user.ID, result.User.ID)
		assert.Equal(t, "alice", result.User.Username)
		userRepo.AssertExpectations(t)
	})

	t.Run("records the login time", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		user := testUser(t, "alice", "password1")
		require.Nil(t, user.LastLoginAt)
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)

		_, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "password1"})

		require.NoError(t, err)
		assert.NotNil(t, user.LastLoginAt)
	})

	t.Run("succeeds even when recording the login time fails", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		user := testUser(t, "alice", "password1")
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(errors.New("db down"))

		result, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "password1"})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		user := testUser(t, "alice", "password1")
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
		userRepo.On("FindByUsername", mock.Anything, "nobody").Return(nil, shared.ErrNotFound)

		_, wrongPassErr := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "wrong-pass"})
		_, unknownUserErr := svc.Login(context.Background(), LoginInput{Username: "nobody", Password: "password1"})

		var wrongPass, unknownUser *shared.DomainError
		require.ErrorAs(t, wrongPassErr, &wrongPass)
		require.ErrorAs(t, unknownUserErr, &unknownUser)
		assert.Equal(t, "INVALID_CREDENTIALS", wrongPass.Code)
		assert.Equal(t, wrongPass.Code, unknownUser.Code)
		assert.Equal(t, wrongPass.Message, unknownUser.Message)
	})

	t.Run("does not save on failed password check", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		user := testUser(t, "alice", "password1")
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)

		_, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "wrong-pass"})

		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	t.Run("returns the user profile", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		user := testUser(t, "alice", "password1")
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		info, err := svc.CurrentUser(context.Background(), user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID, info.ID)
		assert.Equal(t, "alice", info.Username)
		assert.Equal(t, "Test User", info.DisplayName)
	})

	t.Run("propagates not found", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		id := uuid.New()
		userRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := svc.CurrentUser(context.Background(), id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
