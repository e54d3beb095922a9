package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joshua-takyi/kost/internal/helpers"
	"github.com/joshua-takyi/kost/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	IssueToken(userID, role string) (string, error)
}

type RegisterInput struct {
	FullName string      `json:"full_name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	Phone    string      `json:"phone" binding:"required"`
	Role     models.Role `json:"role"`
}

type LoginResult struct {
	Token string       `json:"token"`
	Role  models.Role  `json:"role"`
	User  *models.User `json:"user"`
}

type UserService struct {
	userRepo models.UserRepo
	tokens   TokenIssuer
	clock    Clock
}

func NewUserService(userRepo models.UserRepo, tokens TokenIssuer, clock Clock) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
		clock:    clock,
	}
}

func (us *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	role := in.Role
	if role == "" {
		role = models.RoleRenter
	}
	if role != models.RoleRenter && role != models.RoleOwner {
		return nil, fmt.Errorf("%w: role must be renter or owner", models.ErrValidation)
	}
	if !helpers.IsPasswordStrong(in.Password) {
		return nil, fmt.Errorf("%w: password is not strong enough", models.ErrValidation)
	}

	now := us.clock.Now()
	user := &models.User{
		FullName:  strings.TrimSpace(in.FullName),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Role:      role,
		Gender:    "unspecified",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := models.Validate.Struct(user); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	if _, err := us.userRepo.GetUserByEmail(ctx, user.Email); err == nil {
		return nil, fmt.Errorf("%w: email already in use", models.ErrConflict)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)

	return us.userRepo.CreateUser(ctx, user)
}

func (us *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", models.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", models.ErrValidation)
	}

	user, err := us.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", models.ErrUnauthorized)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", models.ErrUnauthorized)
	}

	token, err := us.tokens.IssueToken(user.ID.Hex(), string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &LoginResult{Token: token, Role: user.Role, User: user}, nil
}

func (us *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	id, err := models.ParseObjectID("user id", userID)
	if err != nil {
		return nil, err
	}
	return us.userRepo.GetUserByID(ctx, id)
}

func (us *UserService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error) {
	id, err := models.ParseObjectID("user id", userID)
	if err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", models.ErrValidation)
	}
	if err := models.Validate.Struct(update); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return us.userRepo.UpdateUser(ctx, id, update, us.clock.Now())
}
