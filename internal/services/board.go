package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
)

type BoardServiceInterface interface {
	GetKanbanBoard(ctx context.Context) (*dto.KanbanBoardDTO, error)
	GetCalendarEvents(ctx context.Context) ([]dto.CalendarEventDTO, error)
}

type BoardService struct {
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewBoardService(requestRepo repositories.RequestRepositoryInterface, logger *zap.Logger) BoardServiceInterface {
	return &BoardService{requestRepo: requestRepo, logger: logger}
}

func (s *BoardService) GetKanbanBoard(ctx context.Context) (*dto.KanbanBoardDTO, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}
	return GroupRequestsByStatus(requests), nil
}

// GroupRequestsByStatus раскладывает заявки по колонкам. Нераспознанный
// статус попадает в Other, ни одна заявка не теряется.
func GroupRequestsByStatus(requests []dto.RequestDTO) *dto.KanbanBoardDTO {
	board := &dto.KanbanBoardDTO{
		New:        make([]dto.RequestDTO, 0),
		InProgress: make([]dto.RequestDTO, 0),
		Repaired:   make([]dto.RequestDTO, 0),
		Scrap:      make([]dto.RequestDTO, 0),
	}

	for _, req := range requests {
		switch req.Status {
		case constants.StatusNew:
			board.New = append(board.New, req)
		case constants.StatusInProgress:
			board.InProgress = append(board.InProgress, req)
		case constants.StatusRepaired:
			board.Repaired = append(board.Repaired, req)
		case constants.StatusScrap:
			board.Scrap = append(board.Scrap, req)
		default:
			board.Other = append(board.Other, req)
		}
	}
	return board
}

func (s *BoardService) GetCalendarEvents(ctx context.Context) ([]dto.CalendarEventDTO, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCalendarEvents(requests), nil
}

// BuildCalendarEvents — по событию на каждую заявку с планируемой
// датой. Цвет зависит только от типа работ.
func BuildCalendarEvents(requests []dto.RequestDTO) []dto.CalendarEventDTO {
	events := make([]dto.CalendarEventDTO, 0, len(requests))
	for _, req := range requests {
		if req.ScheduledDate == "" {
			continue
		}

		color := constants.CalendarColorPreventive
		if req.Type == constants.RequestTypeCorrective {
			color = constants.CalendarColorCorrective
		}

		events = append(events, dto.CalendarEventDTO{
			ID:    req.ID,
			Title: req.Equipment.Name + ": " + req.Subject,
			Start: req.ScheduledDate,
			Color: color,
		})
	}
	return events
}
