package service

import (
	"context"

	"github.com/google/uuid"

	"hostelops/internal/model"
	"hostelops/internal/repository"
)

// Notifier appends notifications to a user's in-store mailbox. Delivery is
// best-effort: callers triggering a notification as a side effect of another
// mutation do not fail the primary operation when the append fails.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, message, notificationType string) error
}

type notifier struct {
	userRepo repository.UserRepository
}

// NewNotifier creates a Notifier backed by the user repository.
func NewNotifier(userRepo repository.UserRepository) Notifier {
	return &notifier{userRepo: userRepo}
}

// Notify appends an unread notification stamped with the current time.
// An unrecognized type falls back to info.
func (n *notifier) Notify(ctx context.Context, userID uuid.UUID, message, notificationType string) error {
	if !model.ValidNotificationType(notificationType) {
		notificationType = model.NotificationInfo
	}
	return n.userRepo.AppendNotification(ctx, &model.Notification{
		UserID:  userID,
		Message: message,
		Type:    notificationType,
	})
}
