package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Announcement types.
const (
	AnnouncementInfo        = "info"
	AnnouncementWarning     = "warning"
	AnnouncementMaintenance = "maintenance"
	AnnouncementUrgent      = "urgent"
)

// Announcement is an admin broadcast shown to all residents. Deactivation is
// a soft delete; records are never removed or otherwise mutated.
type Announcement struct {
	ID         uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title      string     `json:"title" gorm:"size:255;not null"`
	Message    string     `json:"message" gorm:"type:text;not null"`
	Type       string     `json:"type" gorm:"size:20;default:'info'"`
	AuthorID   uuid.UUID  `json:"author" gorm:"type:char(36)"`
	AuthorName string     `json:"authorName" gorm:"size:255"`
	IsActive   bool       `json:"isActive" gorm:"default:true;index"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"index"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ValidAnnouncementType reports whether t is a recognized announcement type.
func ValidAnnouncementType(t string) bool {
	switch t {
	case AnnouncementInfo, AnnouncementWarning, AnnouncementMaintenance, AnnouncementUrgent:
		return true
	}
	return false
}
