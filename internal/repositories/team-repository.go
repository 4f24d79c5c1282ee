package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	FindTeam(ctx context.Context, id uint64) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id uint64, name string, memberIDs []uint64) error
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func (r *TeamRepository) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	query, args, err := sq.Select(
		"t.id", "t.name",
		"COUNT(DISTINCT u.id) AS member_count",
		"COUNT(DISTINCT e.id) AS equipment_count",
	).
		From("teams t").
		LeftJoin("users u ON u.team_id = t.id").
		LeftJoin("equipments e ON e.team_id = t.id").
		GroupBy("t.id", "t.name").
		OrderBy("t.id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка команд: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка команд: %w", err)
	}
	defer rows.Close()

	teams := make([]dto.TeamDTO, 0)
	for rows.Next() {
		var t dto.TeamDTO
		if err := rows.Scan(&t.ID, &t.Name, &t.MemberCount, &t.EquipmentCount); err != nil {
			return nil, fmt.Errorf("ошибка сканирования команды: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uint64) (*entities.Team, error) {
	var t entities.Team
	err := r.storage.QueryRow(ctx, `SELECT id, name FROM teams WHERE id = $1`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования команды: %w", err)
	}
	return &t, nil
}

// UpdateTeam переименовывает команду и синхронизирует состав: текущие
// участники вне нового списка открепляются, id из списка прикрепляются.
// Несуществующие id молча пропускаются — UPDATE по ним не находит строк.
func (r *TeamRepository) UpdateTeam(ctx context.Context, id uint64, name string, memberIDs []uint64) error {
	// для ANY($n) массив передаётся как int8[]
	ids := make([]int64, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		ids = append(ids, int64(memberID))
	}

	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE teams SET name = $2 WHERE id = $1`, id, name)
		if err != nil {
			return fmt.Errorf("ошибка переименования команды: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}

		_, err = tx.Exec(ctx,
			`UPDATE users SET team_id = NULL WHERE team_id = $1 AND NOT (id = ANY($2))`,
			id, ids,
		)
		if err != nil {
			return fmt.Errorf("ошибка открепления участников команды: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE users SET team_id = $1 WHERE id = ANY($2)`,
			id, ids,
		)
		if err != nil {
			return fmt.Errorf("ошибка прикрепления участников команды: %w", err)
		}
		return nil
	})
}
