package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
)

type RequestServiceInterface interface {
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (uint64, error)
	UpdateRequestStatus(ctx context.Context, id uint64, status string) error
	GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]dto.RequestDTO, error)
}

type RequestService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

// CreateRequest заводит заявку. Исполнитель — техник по умолчанию у
// оборудования; если он есть, уведомление ему сохраняется в одной
// транзакции с заявкой.
func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (uint64, error) {
	eq, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return 0, apperrors.NewNotFoundError("Оборудование не найдено")
		}
		return 0, err
	}

	req := entities.MaintenanceRequest{
		Subject:      payload.Subject,
		Description:  payload.Description,
		Type:         payload.Type,
		Status:       constants.StatusNew,
		Priority:     payload.Priority,
		EquipmentID:  eq.ID,
		AssignedToID: eq.DefaultTechnicianID,
	}

	if payload.ScheduledDate != "" {
		scheduled, err := time.Parse("2006-01-02", payload.ScheduledDate)
		if err != nil {
			return 0, apperrors.NewBadRequestError("Неверный формат планируемой даты, ожидается YYYY-MM-DD")
		}
		req.ScheduledDate = null.TimeFrom(scheduled)
	}

	var notif *entities.Notification
	if req.AssignedToID.Valid {
		notif = &entities.Notification{
			Title:   "New Maintenance Request",
			Message: fmt.Sprintf("New request '%s' assigned to you for %s", payload.Subject, eq.Name),
			Type:    constants.NotificationInfo,
			UserID:  req.AssignedToID.Uint64,
		}
	}

	id, err := s.requestRepo.CreateRequest(ctx, req, notif)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Создана заявка на обслуживание",
		zap.Uint64("requestID", id),
		zap.Uint64("equipmentID", eq.ID),
		zap.Bool("notified", notif != nil),
	)
	return id, nil
}

// UpdateRequestStatus принимает только известные статусы; переход в
// Scrap дополнительно списывает оборудование (это делает репозиторий в
// одной транзакции).
func (s *RequestService) UpdateRequestStatus(ctx context.Context, id uint64, status string) error {
	if !constants.IsKnownStatus(status) {
		return apperrors.NewBadRequestError("Неизвестный статус заявки: " + status)
	}

	if err := s.requestRepo.UpdateRequestStatus(ctx, id, status); err != nil {
		if err == apperrors.ErrNotFound {
			return apperrors.NewNotFoundError("Заявка не найдена")
		}
		return err
	}

	s.logger.Info("Статус заявки обновлён",
		zap.Uint64("requestID", id),
		zap.String("status", status),
	)
	return nil
}

func (s *RequestService) GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]dto.RequestDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.NewNotFoundError("Оборудование не найдено")
		}
		return nil, err
	}
	return s.requestRepo.GetRequestsByEquipment(ctx, equipmentID)
}
