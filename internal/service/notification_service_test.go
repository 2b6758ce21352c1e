package service

import (
	"context"
	"errors"
	"testing"

	"hospital-booking/internal/models"
	"hospital-booking/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotify(t *testing.T) {
	ctx := context.Background()

	t.Run("stores notification", func(t *testing.T) {
		store := mocks.NewMockNotificationStore(gomock.NewController(t))
		store.EXPECT().CreateNotification(ctx, &models.Notification{
			UserID:  42,
			Type:    models.NotifyBooking,
			Title:   "Booked",
			Message: "Queue #3",
			Link:    "/appointments/1",
		}).Return(nil)

		NewNotificationService(store).Notify(ctx, 42, models.NotifyBooking, "Booked", "Queue #3", "/appointments/1")
	})

	t.Run("failure is swallowed", func(t *testing.T) {
		store := mocks.NewMockNotificationStore(gomock.NewController(t))
		store.EXPECT().CreateNotification(ctx, gomock.Any()).Return(errors.New("insert failed"))

		assert.NotPanics(t, func() {
			NewNotificationService(store).Notify(ctx, 42, models.NotifyBooking, "t", "m", "")
		})
	})
}

func TestNotificationList(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockNotificationStore(gomock.NewController(t))
	svc := NewNotificationService(store)

	store.EXPECT().ListNotifications(ctx, uint(42), true, defaultNotificationLimit).Return([]models.Notification{{ID: 1}}, nil)
	got, err := svc.List(ctx, 42, true, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	store.EXPECT().ListNotifications(ctx, uint(42), false, 120).Return(nil, nil)
	_, err = svc.List(ctx, 42, false, 120)
	require.NoError(t, err)

	store.EXPECT().MarkAllRead(ctx, uint(42)).Return(int64(3), nil)
	n, err := svc.MarkAllRead(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
