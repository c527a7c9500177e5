package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/repository"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"
)

var errInvalidCredentials = newError(ErrUnauthorized, "invalid credentials")

type AuthService struct {
	store  repository.Store
	tokens *utils.TokenManager
}

func NewAuthService(store repository.Store, tokens *utils.TokenManager) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// Register creates a patient account and logs it in.
func (s *AuthService) Register(ctx context.Context, input models.RegisterInput) (*models.LoginResponse, error) {
	email := normalizeEmail(input.Email)

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Email: email, PasswordHash: hash, Role: models.RoleUser}
	if err := s.store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, newError(ErrConflict, "email already registered")
		}
		return nil, err
	}

	log.Printf("[Auth] user %d registered", user.ID)
	return s.Login(ctx, models.LoginInput{Email: email, Password: input.Password})
}

// Login answers the same error for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, input models.LoginInput) (*models.LoginResponse, error) {
	user, err := s.store.Users().FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.EqualizeTiming(input.Password)
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		return nil, errInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
	}, nil
}

func (s *AuthService) ResolveUser(ctx context.Context, id uint64) (*models.UserView, error) {
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(ErrNotFound, "user not found")
		}
		return nil, err
	}
	return &models.UserView{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
