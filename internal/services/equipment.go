package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) ([]dto.EquipmentListItemDTO, error)
	GetActiveEquipments(ctx context.Context) ([]dto.ShortEquipmentDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	FindEquipmentDetails(ctx context.Context, id uint64) (*dto.EquipmentDetailsDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error)
	ScrapEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) ([]dto.EquipmentListItemDTO, error) {
	return s.equipmentRepo.GetEquipments(ctx, filter)
}

func (s *EquipmentService) GetActiveEquipments(ctx context.Context) ([]dto.ShortEquipmentDTO, error) {
	equipments, err := s.equipmentRepo.GetActiveEquipments(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]dto.ShortEquipmentDTO, 0, len(equipments))
	for _, e := range equipments {
		list = append(list, dto.ShortEquipmentDTO{ID: e.ID, Name: e.Name})
	}
	return list, nil
}

// FindEquipment отдаёт карточку актива вместе с числом незакрытых заявок.
func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	eq, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.NewNotFoundError("Оборудование не найдено")
		}
		return nil, err
	}

	openCount, err := s.requestRepo.CountOpenByEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapEquipment(eq, openCount), nil
}

func mapEquipment(eq *entities.Equipment, openCount uint64) *dto.EquipmentDTO {
	return &dto.EquipmentDTO{
		ID:           eq.ID,
		Name:         eq.Name,
		SerialNumber: eq.SerialNumber,
		Department:   eq.Department,
		OwnerName:    eq.OwnerName,
		Location:     eq.Location,
		PurchaseDate: eq.PurchaseDate.Format("2006-01-02"),
		WarrantyInfo: eq.WarrantyInfo,
		IsScrapped:   eq.IsScrapped,
		CategoryID:   eq.CategoryID,
		TeamID:       eq.TeamID,
		TechnicianID: eq.DefaultTechnicianID,

		OpenRequestsCount: openCount,
	}
}

func (s *EquipmentService) FindEquipmentDetails(ctx context.Context, id uint64) (*dto.EquipmentDetailsDTO, error) {
	details, err := s.equipmentRepo.FindEquipmentDetails(ctx, id)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.NewNotFoundError("Оборудование не найдено")
		}
		return nil, err
	}
	return details, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	eq := entities.Equipment{
		Name:                payload.Name,
		SerialNumber:        payload.SerialNumber,
		Department:          payload.Department,
		OwnerName:           payload.OwnerName,
		Location:            payload.Location,
		WarrantyInfo:        payload.WarrantyInfo,
		TeamID:              payload.TeamID,
		CategoryID:          payload.CategoryID,
		DefaultTechnicianID: payload.TechnicianID,
	}

	id, err := s.equipmentRepo.CreateEquipment(ctx, eq)
	if err != nil {
		if err == apperrors.ErrConflict {
			s.logger.Warn("CreateEquipment: дубликат серийного номера",
				zap.String("serial_number", payload.SerialNumber),
			)
			return 0, apperrors.NewConflictError("Серийный номер " + payload.SerialNumber + " уже зарегистрирован")
		}
		return 0, err
	}

	s.logger.Info("Оборудование зарегистрировано",
		zap.Uint64("equipmentID", id),
		zap.String("serial_number", payload.SerialNumber),
	)
	return id, nil
}

func (s *EquipmentService) ScrapEquipment(ctx context.Context, id uint64) error {
	if err := s.equipmentRepo.ScrapEquipment(ctx, id); err != nil {
		if err == apperrors.ErrNotFound {
			return apperrors.NewNotFoundError("Оборудование не найдено")
		}
		return err
	}
	s.logger.Info("Оборудование списано", zap.Uint64("equipmentID", id))
	return nil
}
