package services

import (
	"context"
	"testing"
	"time"

	"github.com/joshua-takyi/kost/internal/helpers"
	"github.com/joshua-takyi/kost/internal/mocks"
	"github.com/joshua-takyi/kost/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-test-secret-test-secret"

func newUserService(repo *mocks.UserRepo) (*UserService, *helpers.TokenManager) {
	tokens := helpers.NewTokenManager(testSecret, time.Hour)
	return NewUserService(repo, tokens, fixedClock{now: testNow}), tokens
}

func TestUserService_Register(t *testing.T) {
	repo := new(mocks.UserRepo)
	svc, _ := newUserService(repo)

	repo.On("GetUserByEmail", mock.Anything, "sari@example.com").Return(nil, models.ErrNotFound)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "sari@example.com" &&
			u.Role == models.RoleOwner &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Secret123")) == nil
	})).Return(&models.User{ID: primitive.NewObjectID(), Email: "sari@example.com", Role: models.RoleOwner}, nil)

	user, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Sari",
		Email:    " Sari@Example.com ",
		Password: "Secret123",
		Phone:    "08123456789",
		Role:     models.RoleOwner,
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, user.Role)
	repo.AssertExpectations(t)
}

func TestUserService_Register_Rejections(t *testing.T) {
	base := RegisterInput{FullName: "Budi", Email: "budi@example.com", Password: "Secret123", Phone: "0812"}

	t.Run("admin self registration", func(t *testing.T) {
		svc, _ := newUserService(new(mocks.UserRepo))
		in := base
		in.Role = models.RoleAdmin
		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("weak password", func(t *testing.T) {
		svc, _ := newUserService(new(mocks.UserRepo))
		in := base
		in.Password = "password"
		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := new(mocks.UserRepo)
		svc, _ := newUserService(repo)
		repo.On("GetUserByEmail", mock.Anything, "budi@example.com").Return(&models.User{}, nil)

		_, err := svc.Register(context.Background(), base)
		assert.ErrorIs(t, err, models.ErrConflict)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestUserService_Login(t *testing.T) {
	repo := new(mocks.UserRepo)
	svc, tokens := newUserService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: primitive.NewObjectID(), Email: "budi@example.com", Password: string(hash), Role: models.RoleRenter}
	repo.On("GetUserByEmail", mock.Anything, "budi@example.com").Return(stored, nil)
	repo.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, models.ErrNotFound)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := svc.Login(context.Background(), "budi@example.com", "Secret123")
		require.NoError(t, err)
		assert.Equal(t, models.RoleRenter, res.Role)

		claims, err := tokens.ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, stored.ID.Hex(), claims.UserID)
		assert.Equal(t, "renter", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "budi@example.com", "Wrong1234")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "Secret123")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "not-an-email", "Secret123")
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestUserService_UpdateProfile_Empty(t *testing.T) {
	repo := new(mocks.UserRepo)
	svc, _ := newUserService(repo)

	_, err := svc.UpdateProfile(context.Background(), primitive.NewObjectID().Hex(), models.ProfileUpdate{})

	assert.ErrorIs(t, err, models.ErrValidation)
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
