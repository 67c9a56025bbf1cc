package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification types.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification is an in-store mailbox entry owned by exactly one user.
// Entries are append-only; the only mutation is the bulk mark-all-read.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	Message   string    `json:"message" gorm:"size:512;not null"`
	Type      string    `json:"type" gorm:"size:20;default:'info'"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidNotificationType reports whether t is a recognized notification type.
func ValidNotificationType(t string) bool {
	switch t {
	case NotificationInfo, NotificationSuccess, NotificationWarning, NotificationError:
		return true
	}
	return false
}
