package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eksiblog/internal/auth"
	apperrors "eksiblog/internal/errors"
	"eksiblog/internal/model"
	"eksiblog/internal/repository"
)

const bcryptCost = 10

// IdentityService handles signup, login, and password changes.
type IdentityService interface {
	Signup(ctx context.Context, firstName, lastName, username, email, password, verifyPassword string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
	ChangePassword(ctx context.Context, callerID uuid.UUID, oldPassword, newPassword, verifyPassword string) error
}

type identityService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewIdentityService creates a new identity service.
func NewIdentityService(userRepo repository.UserRepository, jwtService *auth.JWTService) IdentityService {
	return &identityService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup creates a new user with a bcrypt-hashed password. The existence
// check is advisory; the unique indexes on email and username close the
// window where two concurrent signups pass it simultaneously.
func (s *identityService) Signup(ctx context.Context, firstName, lastName, username, email, password, verifyPassword string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmailOrUsername(ctx, email, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	if password != verifyPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:      firstName,
		LastName:       lastName,
		Username:       username,
		Email:          email,
		HashedPassword: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a session token.
func (s *identityService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", apperrors.ErrWrongPassword
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// ChangePassword re-verifies the caller's current password and overwrites the
// stored hash. The caller row is re-loaded here because the token guard never
// checks that the referenced user still exists.
func (s *identityService) ChangePassword(ctx context.Context, callerID uuid.UUID, oldPassword, newPassword, verifyPassword string) error {
	if newPassword != verifyPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	// Reject reuse of the current password before checking the old one.
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(newPassword)); err == nil {
		return apperrors.ErrInvalidInfo
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(oldPassword)); err != nil {
		return apperrors.ErrInvalidInfo
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, callerID, string(hashedPassword)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
