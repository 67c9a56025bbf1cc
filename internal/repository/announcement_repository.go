package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelops/internal/model"
)

// activeAnnouncementLimit caps the active-announcement listing.
const activeAnnouncementLimit = 10

// AnnouncementRepository defines announcement persistence operations.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	ListActive(ctx context.Context) ([]model.Announcement, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository.
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Create creates a new announcement.
func (r *announcementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

// ListActive returns up to 10 active announcements, newest first.
func (r *announcementRepository) ListActive(ctx context.Context) ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(activeAnnouncementLimit).
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// Deactivate soft-deletes an announcement. Deactivating an already-inactive
// or absent announcement is a no-op.
func (r *announcementRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Announcement{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
