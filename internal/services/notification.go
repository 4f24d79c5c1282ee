package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

const notificationsLimit = 10

type NotificationServiceInterface interface {
	GetNotifications(ctx context.Context, userID uint64) ([]dto.NotificationDTO, error)
	MarkAllRead(ctx context.Context, userID uint64) error
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	logger           *zap.Logger
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepositoryInterface,
	logger *zap.Logger,
) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// GetNotifications — последние уведомления пользователя, свежие первыми.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uint64) ([]dto.NotificationDTO, error) {
	notifications, err := s.notificationRepo.GetByUser(ctx, userID, notificationsLimit)
	if err != nil {
		return nil, err
	}

	list := make([]dto.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		list = append(list, dto.NotificationDTO{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format("15:04"),
		})
	}
	return list, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint64) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	s.logger.Debug("Уведомления помечены прочитанными", zap.Uint64("userID", userID))
	return nil
}
