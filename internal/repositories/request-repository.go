package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
)

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context) ([]dto.RequestDTO, error)
	GetRecentRequests(ctx context.Context, limit uint64) ([]dto.RequestDTO, error)
	GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]dto.RequestDTO, error)
	CountOpenByEquipment(ctx context.Context, equipmentID uint64) (uint64, error)
	CreateRequest(ctx context.Context, req entities.MaintenanceRequest, notif *entities.Notification) (uint64, error)
	UpdateRequestStatus(ctx context.Context, id uint64, status string) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

const requestSelect = `
	SELECT
		r.id, r.subject, r.description, r.type, r.status, r.priority,
		r.scheduled_date, r.duration, r.created_at,
		e.id AS equipment_id, e.name AS equipment_name,
		u.id AS assigned_to_id, u.name AS assigned_to_name
	FROM maintenance_requests r
		LEFT JOIN equipments e ON e.id = r.equipment_id
		LEFT JOIN users u ON u.id = r.assigned_to_id`

func (r *RequestRepository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]dto.RequestDTO, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка заявок: %w", err)
	}
	defer rows.Close()

	requests := make([]dto.RequestDTO, 0)
	for rows.Next() {
		req, err := scanRequestRow(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func scanRequestRow(row pgx.Row) (dto.RequestDTO, error) {
	var (
		req           dto.RequestDTO
		scheduledDate null.Time
		duration      null.Float64
		createdAt     null.Time
		assignedID    null.Uint64
		assignedName  null.String
	)

	err := row.Scan(
		&req.ID, &req.Subject, &req.Description, &req.Type, &req.Status, &req.Priority,
		&scheduledDate, &duration, &createdAt,
		&req.Equipment.ID, &req.Equipment.Name,
		&assignedID, &assignedName,
	)
	if err != nil {
		return req, fmt.Errorf("ошибка сканирования заявки: %w", err)
	}

	if scheduledDate.Valid {
		req.ScheduledDate = scheduledDate.Time.Format("2006-01-02")
	}
	if duration.Valid {
		req.Duration = duration.Float64
	}
	if createdAt.Valid {
		req.CreatedAt = createdAt.Time.Format("2006-01-02 15:04:05")
	}
	if assignedID.Valid {
		req.AssignedTo = &dto.ShortUserDTO{ID: assignedID.Uint64, Name: assignedName.String}
	}
	return req, nil
}

func (r *RequestRepository) GetRequests(ctx context.Context) ([]dto.RequestDTO, error) {
	return r.queryRequests(ctx, requestSelect+` ORDER BY r.created_at DESC`)
}

func (r *RequestRepository) GetRecentRequests(ctx context.Context, limit uint64) ([]dto.RequestDTO, error) {
	return r.queryRequests(ctx, requestSelect+` ORDER BY r.created_at DESC LIMIT $1`, limit)
}

func (r *RequestRepository) GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]dto.RequestDTO, error) {
	return r.queryRequests(ctx, requestSelect+` WHERE r.equipment_id = $1 ORDER BY r.created_at DESC`, equipmentID)
}

func (r *RequestRepository) CountOpenByEquipment(ctx context.Context, equipmentID uint64) (uint64, error) {
	var count uint64
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM maintenance_requests WHERE equipment_id = $1 AND status != $2`,
		equipmentID, constants.StatusRepaired,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта открытых заявок: %w", err)
	}
	return count, nil
}

// CreateRequest пишет заявку и, если передано, уведомление назначенному
// технику в одной транзакции: либо сохраняются обе записи, либо ни одной.
func (r *RequestRepository) CreateRequest(ctx context.Context, req entities.MaintenanceRequest, notif *entities.Notification) (uint64, error) {
	var newID uint64

	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		requestInsert := `
			INSERT INTO maintenance_requests (subject, description, type, status, priority, scheduled_date, equipment_id, assigned_to_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`

		status := req.Status
		if status == "" {
			status = constants.StatusNew
		}
		priority := req.Priority
		if priority == "" {
			priority = constants.PriorityMedium
		}

		err := tx.QueryRow(ctx, requestInsert,
			req.Subject, req.Description, req.Type, status, priority,
			req.ScheduledDate, req.EquipmentID, req.AssignedToID,
		).Scan(&newID)
		if err != nil {
			return fmt.Errorf("ошибка создания заявки: %w", err)
		}

		if notif != nil {
			notifInsert := `
				INSERT INTO notifications (title, message, type, user_id)
				VALUES ($1, $2, $3, $4)`
			if _, err := tx.Exec(ctx, notifInsert, notif.Title, notif.Message, notif.Type, notif.UserID); err != nil {
				return fmt.Errorf("ошибка создания уведомления к заявке: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}

// UpdateRequestStatus перезаписывает статус; переход в Scrap каскадно
// списывает оборудование заявки в той же транзакции.
func (r *RequestRepository) UpdateRequestStatus(ctx context.Context, id uint64, status string) error {
	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		var equipmentID uint64
		err := tx.QueryRow(ctx,
			`UPDATE maintenance_requests SET status = $2 WHERE id = $1 RETURNING equipment_id`,
			id, status,
		).Scan(&equipmentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("ошибка обновления статуса заявки: %w", err)
		}

		if status == constants.StatusScrap {
			if _, err := tx.Exec(ctx, `UPDATE equipments SET is_scrapped = TRUE WHERE id = $1`, equipmentID); err != nil {
				return fmt.Errorf("ошибка каскадного списания оборудования: %w", err)
			}
		}
		return nil
	})
}
