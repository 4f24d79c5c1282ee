package repositories

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/pkg/constants"
)

// RequestCounters — агрегаты по заявкам для дашборда.
type RequestCounters struct {
	Total     uint64
	Completed uint64
	Open      uint64
	Overdue   uint64
}

type TeamRequestCount struct {
	TeamName string
	Count    uint64
}

type DashboardRepositoryInterface interface {
	CountEquipment(ctx context.Context) (uint64, error)
	GetRequestCounters(ctx context.Context, overdueBefore time.Time) (*RequestCounters, error)
	GetTeamRequestCounts(ctx context.Context) ([]TeamRequestCount, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

func (r *DashboardRepository) CountEquipment(ctx context.Context) (uint64, error) {
	var count uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM equipments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта оборудования: %w", err)
	}
	return count, nil
}

// GetRequestCounters считает все агрегаты одним проходом по таблице.
// Просроченной считается незакрытая заявка старше overdueBefore.
func (r *DashboardRepository) GetRequestCounters(ctx context.Context, overdueBefore time.Time) (*RequestCounters, error) {
	query, args, err := sq.Select("COUNT(*)").
		Column(sq.Expr("COUNT(CASE WHEN status = ? THEN 1 END)", constants.StatusRepaired)).
		Column(sq.Expr("COUNT(CASE WHEN status IN (?, ?) THEN 1 END)", constants.StatusNew, constants.StatusInProgress)).
		Column(sq.Expr("COUNT(CASE WHEN status != ? AND created_at < ? THEN 1 END)", constants.StatusRepaired, overdueBefore)).
		From("maintenance_requests").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса агрегатов: %w", err)
	}

	counters := &RequestCounters{}
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&counters.Total, &counters.Completed, &counters.Open, &counters.Overdue,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка подсчёта агрегатов по заявкам: %w", err)
	}
	return counters, nil
}

// GetTeamRequestCounts — для каждой команды число заявок по её
// оборудованию. Команды без заявок тоже попадают в результат.
func (r *DashboardRepository) GetTeamRequestCounts(ctx context.Context) ([]TeamRequestCount, error) {
	query, args, err := sq.Select("t.name", "COUNT(r.id)").
		From("teams t").
		LeftJoin("equipments e ON e.team_id = t.id").
		LeftJoin("maintenance_requests r ON r.equipment_id = e.id").
		GroupBy("t.id", "t.name").
		OrderBy("t.id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса аналитики команд: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения аналитики команд: %w", err)
	}
	defer rows.Close()

	counts := make([]TeamRequestCount, 0)
	for rows.Next() {
		var c TeamRequestCount
		if err := rows.Scan(&c.TeamName, &c.Count); err != nil {
			return nil, fmt.Errorf("ошибка сканирования аналитики команды: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
