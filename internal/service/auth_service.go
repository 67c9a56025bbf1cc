package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelops/internal/auth"
	"hostelops/internal/errors"
	"hostelops/internal/model"
	"hostelops/internal/repository"
)

const bcryptCost = 12

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	RoomNumber  string
	HostelBlock string
	Phone       string
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a student account with a hashed password and returns it
// with a signed token. Emails are stored lowercased, making uniqueness
// case-insensitive.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	if in.Name == "" {
		return nil, "", errors.NewValidation("name", "name is required")
	}
	if in.Email == "" {
		return nil, "", errors.NewValidation("email", "email is required")
	}
	if len(in.Password) < 6 {
		return nil, "", errors.NewValidation("password", "password must be at least 6 characters")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleStudent,
		RoomNumber:   in.RoomNumber,
		HostelBlock:  in.HostelBlock,
		Phone:        in.Phone,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Login verifies the credential, stamps lastLogin, and returns the user with
// a signed token.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.userRepo.StampLastLogin(ctx, user.ID, now); err != nil {
		return nil, "", fmt.Errorf("stamp last login: %w", err)
	}
	user.LastLogin = &now

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}
