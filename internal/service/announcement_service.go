package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hostelops/internal/errors"
	"hostelops/internal/model"
	"hostelops/internal/repository"
)

// CreateAnnouncementInput carries the fields of a new announcement.
type CreateAnnouncementInput struct {
	Title     string
	Message   string
	Type      string
	ExpiresAt *time.Time
}

// AnnouncementService handles the admin broadcast board.
type AnnouncementService interface {
	Create(ctx context.Context, author *model.User, in CreateAnnouncementInput) (*model.Announcement, error)
	ListActive(ctx context.Context) ([]model.Announcement, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service.
func NewAnnouncementService(announcementRepo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{announcementRepo: announcementRepo}
}

// Create inserts an announcement with the author's name snapshotted.
func (s *announcementService) Create(ctx context.Context, author *model.User, in CreateAnnouncementInput) (*model.Announcement, error) {
	if in.Title == "" {
		return nil, errors.NewValidation("title", "title is required")
	}
	if in.Message == "" {
		return nil, errors.NewValidation("message", "message is required")
	}

	announcementType := in.Type
	if announcementType == "" {
		announcementType = model.AnnouncementInfo
	}
	if !model.ValidAnnouncementType(announcementType) {
		return nil, errors.NewValidation("type", "unrecognized announcement type")
	}

	announcement := &model.Announcement{
		Title:      in.Title,
		Message:    in.Message,
		Type:       announcementType,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		IsActive:   true,
		ExpiresAt:  in.ExpiresAt,
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	return announcement, nil
}

// ListActive returns up to 10 active announcements, newest first.
func (s *announcementService) ListActive(ctx context.Context) ([]model.Announcement, error) {
	return s.announcementRepo.ListActive(ctx)
}

// Deactivate soft-deletes an announcement. Any admin may deactivate any
// announcement; the operation is idempotent.
func (s *announcementService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.announcementRepo.Deactivate(ctx, id)
}
