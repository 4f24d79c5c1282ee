package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
)

type NotificationRepositoryInterface interface {
	GetByUser(ctx context.Context, userID uint64, limit uint64) ([]entities.Notification, error)
	MarkAllRead(ctx context.Context, userID uint64) error
}

type NotificationRepository struct {
	storage *pgxpool.Pool
}

func NewNotificationRepository(storage *pgxpool.Pool) NotificationRepositoryInterface {
	return &NotificationRepository{storage: storage}
}

func (r *NotificationRepository) GetByUser(ctx context.Context, userID uint64, limit uint64) ([]entities.Notification, error) {
	query := `
		SELECT id, title, message, type, is_read, created_at, user_id
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.storage.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения уведомлений: %w", err)
	}
	defer rows.Close()

	notifications := make([]entities.Notification, 0)
	for rows.Next() {
		var n entities.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt, &n.UserID); err != nil {
			return nil, fmt.Errorf("ошибка сканирования уведомления: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkAllRead помечает прочитанными только непрочитанные уведомления
// этого пользователя; повторный вызов ничего не меняет.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint64) error {
	_, err := r.storage.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("ошибка пометки уведомлений прочитанными: %w", err)
	}
	return nil
}
