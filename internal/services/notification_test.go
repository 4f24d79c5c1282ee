package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
)

func TestGetNotifications(t *testing.T) {
	created := time.Date(2026, 8, 29, 9, 5, 33, 0, time.UTC)
	repo := &fakeNotificationRepo{
		notifications: []entities.Notification{
			{
				ID:        1,
				Title:     "New Maintenance Request",
				Message:   "New request 'Paper jam' assigned to you for Printer",
				Type:      constants.NotificationInfo,
				CreatedAt: created,
				UserID:    7,
			},
		},
	}

	svc := NewNotificationService(repo, zap.NewNop())

	res, err := svc.GetNotifications(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, res, 1)

	// Время отдаётся как HH:MM, секунды и дата отбрасываются
	assert.Equal(t, "09:05", res[0].CreatedAt)
	assert.Equal(t, "New Maintenance Request", res[0].Title)
	assert.False(t, res[0].IsRead)

	assert.Equal(t, uint64(10), repo.requestedLimit)
}

func TestGetNotifications_LimitApplied(t *testing.T) {
	repo := &fakeNotificationRepo{}
	for i := 0; i < 15; i++ {
		repo.notifications = append(repo.notifications, entities.Notification{ID: uint64(i + 1)})
	}

	svc := NewNotificationService(repo, zap.NewNop())

	res, err := svc.GetNotifications(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, res, 10)
}

func TestMarkAllRead(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, zap.NewNop())

	require.NoError(t, svc.MarkAllRead(context.Background(), 7))
	require.NoError(t, svc.MarkAllRead(context.Background(), 7))

	assert.Equal(t, uint64(7), repo.markedUserID)
	assert.Equal(t, 2, repo.markCalls)
}
