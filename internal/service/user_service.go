package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelops/internal/errors"
	"hostelops/internal/model"
	"hostelops/internal/repository"
)

// ProfileInput carries the profile fields a user may change themselves.
type ProfileInput struct {
	Name        string
	Phone       string
	RoomNumber  string
	HostelBlock string
}

// UserService handles profile and notification operations.
type UserService interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (*model.User, error)
	Notifications(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID uuid.UUID) error
	ListStudents(ctx context.Context) ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// UpdateProfile updates the caller's own name/phone/room/block. Profile edits
// never touch historical snapshots on complaints or announcements.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Omitted fields keep their prior value.
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.RoomNumber != "" {
		user.RoomNumber = in.RoomNumber
	}
	if in.HostelBlock != "" {
		user.HostelBlock = in.HostelBlock
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Notifications returns the caller's notifications, newest first.
func (s *userService) Notifications(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return s.userRepo.ListNotifications(ctx, userID)
}

// MarkNotificationsRead marks all of the caller's notifications read.
func (s *userService) MarkNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	return s.userRepo.MarkNotificationsRead(ctx, userID)
}

// ListStudents lists all student accounts, newest first.
func (s *userService) ListStudents(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListStudents(ctx)
}
