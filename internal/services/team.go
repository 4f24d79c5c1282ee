package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	GetTeamDetail(ctx context.Context, id uint64) (*dto.TeamDetailDTO, error)
	UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) error
}

type TeamService struct {
	teamRepo repositories.TeamRepositoryInterface
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	return s.teamRepo.GetTeams(ctx)
}

// GetTeamDetail — команда, её состав и все техники как кандидаты.
func (s *TeamService) GetTeamDetail(ctx context.Context, id uint64) (*dto.TeamDetailDTO, error) {
	team, err := s.teamRepo.FindTeam(ctx, id)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.NewNotFoundError("Команда не найдена")
		}
		return nil, err
	}

	members, err := s.userRepo.GetTeamMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	technicians, err := s.userRepo.GetTechnicians(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.TeamDetailDTO{
		ID:             team.ID,
		Name:           team.Name,
		Members:        mapShortUsers(members),
		AllTechnicians: mapShortUsers(technicians),
	}, nil
}

func mapShortUsers(users []entities.User) []dto.ShortUserDTO {
	list := make([]dto.ShortUserDTO, 0, len(users))
	for _, u := range users {
		list = append(list, dto.ShortUserDTO{ID: u.ID, Name: u.Name, Role: u.Role})
	}
	return list
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) error {
	if err := s.teamRepo.UpdateTeam(ctx, id, payload.Name, payload.Members); err != nil {
		if err == apperrors.ErrNotFound {
			return apperrors.NewNotFoundError("Команда не найдена")
		}
		return err
	}

	s.logger.Info("Состав команды обновлён",
		zap.Uint64("teamID", id),
		zap.Int("members", len(payload.Members)),
	)
	return nil
}
