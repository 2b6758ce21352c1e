package service

import (
	"context"

	"hospital-booking/internal/models"

	log "github.com/sirupsen/logrus"
)

const defaultNotificationLimit = 50

type NotificationService struct {
	store NotificationStore
}

func NewNotificationService(store NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

// Notify stores an in-app notification. Failures are logged and swallowed;
// a missing notification never fails the operation that triggered it.
func (s *NotificationService) Notify(ctx context.Context, userID uint, kind, title, message, link string) {
	n := &models.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
		Link:    link,
	}
	if err := s.store.CreateNotification(ctx, n); err != nil {
		log.WithFields(log.Fields{
			"user_id": userID,
			"type":    kind,
		}).WithError(err).Warn("Failed to create notification")
	}
}

// List returns the newest notifications of a user.
func (s *NotificationService) List(ctx context.Context, userID uint, unreadOnly bool, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultNotificationLimit
	}
	return s.store.ListNotifications(ctx, userID, unreadOnly, limit)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.store.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id uint) error {
	return s.store.MarkRead(ctx, userID, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.store.MarkAllRead(ctx, userID)
}
