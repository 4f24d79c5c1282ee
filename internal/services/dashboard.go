package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

// Заявка считается просроченной, если она не закрыта дольше трёх дней.
// Порог фиксированный.
const overdueThreshold = 3 * 24 * time.Hour

const recentRequestsLimit = 5

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
	GetTeamAnalytics(ctx context.Context) (*dto.TeamAnalyticsDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		requestRepo:   requestRepo,
		teamRepo:      teamRepo,
		logger:        logger,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	totalEquipment, err := s.dashboardRepo.CountEquipment(ctx)
	if err != nil {
		return nil, err
	}

	counters, err := s.dashboardRepo.GetRequestCounters(ctx, time.Now().UTC().Add(-overdueThreshold))
	if err != nil {
		return nil, err
	}

	recent, err := s.requestRepo.GetRecentRequests(ctx, recentRequestsLimit)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.GetTeams(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		Stats: dto.DashboardStatsDTO{
			TotalEquipment: totalEquipment,
			OpenRequests:   counters.Open,
			OverdueJobs:    counters.Overdue,
			ResolutionRate: FormatResolutionRate(counters.Total, counters.Completed),
		},
		RecentRequests: recent,
		Teams:          teams,
	}, nil
}

// FormatResolutionRate — доля закрытых заявок в процентах. При нуле
// заявок возвращается "100%": это сигнальное значение, чтобы не делить
// на ноль, а не реальный показатель.
func FormatResolutionRate(total, completed uint64) string {
	if total == 0 {
		return "100%"
	}
	rate := math.Round(float64(completed) / float64(total) * 100)
	return fmt.Sprintf("%.0f%%", rate)
}

func (s *DashboardService) GetTeamAnalytics(ctx context.Context) (*dto.TeamAnalyticsDTO, error) {
	counts, err := s.dashboardRepo.GetTeamRequestCounts(ctx)
	if err != nil {
		return nil, err
	}

	analytics := &dto.TeamAnalyticsDTO{
		Labels: make([]string, 0, len(counts)),
		Counts: make([]uint64, 0, len(counts)),
	}
	for _, c := range counts {
		analytics.Labels = append(analytics.Labels, c.TeamName)
		analytics.Counts = append(analytics.Counts, c.Count)
	}
	return analytics, nil
}
